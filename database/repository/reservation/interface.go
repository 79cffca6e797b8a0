// File: database/repository/reservation/interface.go
package reservationRepo

import (
	"context"

	"innocurve/database"
	"innocurve/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ReservationRepository persists booking requests.
type ReservationRepository interface {
	FindByDateTimePhone(ctx context.Context, date, timeSlot, phone string) (*models.Reservation, error)
	Insert(ctx context.Context, reservation models.Reservation) (string, error)
}

type mongoReservationRepo struct {
	coll *mongo.Collection
}

// NewMongoReservationRepo constructs a new MongoDB ReservationRepository.
func NewMongoReservationRepo() ReservationRepository {
	db := database.MongoClient.Database("innocurve")
	repo := &mongoReservationRepo{
		coll: db.Collection("reservations"),
	}
	repo.ensureIndexes()
	return repo
}
