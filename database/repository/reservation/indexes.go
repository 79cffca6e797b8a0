// File: database/repository/reservation/indexes.go
package reservationRepo

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ensureIndexes creates the unique (date, time, phone) index. The application
// still runs its duplicate check first for the friendlier error message; the
// index closes the check-then-insert race window.
func (r *mongoReservationRepo) ensureIndexes() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	model := mongo.IndexModel{
		Keys: bson.D{
			{Key: "date", Value: 1},
			{Key: "time", Value: 1},
			{Key: "phone", Value: 1},
		},
		Options: options.Index().SetUnique(true).SetName("uniq_date_time_phone"),
	}
	if _, err := r.coll.Indexes().CreateOne(ctx, model); err != nil {
		log.Printf("failed to ensure reservation indexes: %v", err)
	}
}
