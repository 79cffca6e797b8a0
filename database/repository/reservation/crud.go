// File: database/repository/reservation/crud.go
package reservationRepo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"innocurve/models"
)

// FindByDateTimePhone returns the reservation matching the exact
// (date, time, phone) triple, or nil when none exists.
func (r *mongoReservationRepo) FindByDateTimePhone(ctx context.Context, date, timeSlot, phone string) (*models.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"date": date, "time": timeSlot, "phone": phone}
	var reservation models.Reservation
	err := r.coll.FindOne(ctx, filter).Decode(&reservation)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &reservation, nil
}

func (r *mongoReservationRepo) Insert(ctx context.Context, reservation models.Reservation) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if reservation.ID == "" {
		reservation.ID = uuid.New().String()
	}
	if _, err := r.coll.InsertOne(ctx, reservation); err != nil {
		return "", err
	}
	return reservation.ID, nil
}
