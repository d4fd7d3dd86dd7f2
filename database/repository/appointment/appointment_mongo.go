package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"clinicore/database"
	"clinicore/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoAppointmentRepo implements AppointmentRepository using MongoDB.
type MongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo constructs a new instance of MongoAppointmentRepo.
func NewMongoAppointmentRepo() *MongoAppointmentRepo {
	return &MongoAppointmentRepo{
		coll: database.DB().Collection("appointments"),
	}
}

// denormalize maintains the derived fields that back window queries and the
// partial unique index.
func denormalize(apt *models.Appointment) error {
	startAt, err := apt.StartsAt()
	if err != nil {
		return fmt.Errorf("invalid date/timeSlot on appointment %s: %w", apt.ID, err)
	}
	apt.StartAt = startAt
	apt.HoldsSlot = apt.Status != models.StatusCancelled
	return nil
}

// Create inserts a new appointment document. A duplicate-key rejection from
// the slot index surfaces as ErrDuplicateSlot.
func (repo *MongoAppointmentRepo) Create(ctx context.Context, apt *models.Appointment) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := denormalize(apt); err != nil {
		return err
	}
	now := time.Now()
	apt.CreatedAt = now
	apt.UpdatedAt = now

	if _, err := repo.coll.InsertOne(ctx, apt); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: %s %s %s", ErrDuplicateSlot, apt.DoctorID, apt.Date, apt.TimeSlot)
		}
		return fmt.Errorf("error creating appointment: %w", err)
	}
	return nil
}

// GetByID retrieves an appointment by its ID.
func (repo *MongoAppointmentRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var apt models.Appointment
	if err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&apt); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("error fetching appointment %s: %w", id, err)
	}
	return &apt, nil
}

// Update replaces an existing appointment document.
func (repo *MongoAppointmentRepo) Update(ctx context.Context, apt *models.Appointment) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := denormalize(apt); err != nil {
		return err
	}
	apt.UpdatedAt = time.Now()

	res, err := repo.coll.ReplaceOne(ctx, bson.M{"id": apt.ID}, apt)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: %s %s %s", ErrDuplicateSlot, apt.DoctorID, apt.Date, apt.TimeSlot)
		}
		return fmt.Errorf("error updating appointment %s: %w", apt.ID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, apt.ID)
	}
	return nil
}

// Delete removes an appointment document permanently.
func (repo *MongoAppointmentRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := repo.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("error deleting appointment %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}
