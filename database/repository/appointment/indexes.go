// FILE: database/repository/appointment/indexes.go
package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the appointments collection.
func (repo *MongoAppointmentRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		// Unique index on appointment ID
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// Serializes concurrent bookings: at most one slot-holding appointment
		// per (doctorId, date, timeSlot). Partial filters cannot express
		// status != CANCELLED, hence the derived holdsSlot boolean.
		{
			Keys: bson.D{{Key: "doctorId", Value: 1}, {Key: "date", Value: 1}, {Key: "timeSlot", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetName("unique_held_slot").
				SetPartialFilterExpression(bson.M{"holdsSlot": true}),
		},
		// Day-sheet and slot-generation query pattern
		{
			Keys:    bson.D{{Key: "doctorId", Value: 1}, {Key: "date", Value: 1}, {Key: "status", Value: 1}},
			Options: options.Index().SetName("doctor_date_status_idx"),
		},
		// Patient listing
		{
			Keys:    bson.D{{Key: "patientId", Value: 1}, {Key: "startAt", Value: -1}},
			Options: options.Index().SetName("patient_start_idx"),
		},
		// Reminder sweep windows
		{
			Keys:    bson.D{{Key: "startAt", Value: 1}, {Key: "status", Value: 1}},
			Options: options.Index().SetName("start_status_idx"),
		},
	}

	_, err := repo.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create appointment indexes: %w", err)
	}
	return nil
}
