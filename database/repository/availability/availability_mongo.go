package availabilityRepo

import (
	"context"
	"fmt"
	"time"

	"clinicore/database"
	"clinicore/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoAvailabilityRepo implements AvailabilityRepository using MongoDB.
type MongoAvailabilityRepo struct {
	coll *mongo.Collection
}

// NewMongoAvailabilityRepo constructs a new instance of MongoAvailabilityRepo.
func NewMongoAvailabilityRepo() *MongoAvailabilityRepo {
	return &MongoAvailabilityRepo{
		coll: database.DB().Collection("weekly_availability"),
	}
}

// GetWeekly returns all availability rows for a doctor, ordered by weekday.
func (repo *MongoAvailabilityRepo) GetWeekly(ctx context.Context, doctorID string) ([]models.WeeklyAvailability, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "dayOfWeek", Value: 1}})
	cursor, err := repo.coll.Find(ctx, bson.M{"doctorId": doctorID}, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching weekly availability for doctor %s: %w", doctorID, err)
	}
	defer cursor.Close(ctx)

	var rows []models.WeeklyAvailability
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("error decoding weekly availability: %w", err)
	}
	return rows, nil
}

// GetForDay returns the active availability row for a weekday, or nil when
// the doctor is not available that day.
func (repo *MongoAvailabilityRepo) GetForDay(ctx context.Context, doctorID string, dayOfWeek int) (*models.WeeklyAvailability, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"doctorId": doctorID, "dayOfWeek": dayOfWeek, "isActive": true}
	var row models.WeeklyAvailability
	if err := repo.coll.FindOne(ctx, filter).Decode(&row); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching availability for doctor %s day %d: %w", doctorID, dayOfWeek, err)
	}
	return &row, nil
}

// ReplaceWeekly swaps a doctor's whole schedule: delete every row, then insert
// the new set, inside one multi-document transaction so readers never observe
// a half-replaced week.
func (repo *MongoAvailabilityRepo) ReplaceWeekly(ctx context.Context, doctorID string, rows []models.WeeklyAvailability) ([]models.WeeklyAvailability, error) {
	client := repo.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return nil, fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	inserted := make([]models.WeeklyAvailability, 0, len(rows))
	for _, row := range rows {
		row.DoctorID = doctorID
		if row.ID == "" {
			row.ID = uuid.NewString()
		}
		inserted = append(inserted, row)
	}

	txnFn := func(sc mongo.SessionContext) error {
		if _, err := repo.coll.DeleteMany(sc, bson.M{"doctorId": doctorID}); err != nil {
			return fmt.Errorf("delete existing schedule failed: %w", err)
		}
		if len(inserted) == 0 {
			return nil
		}
		docs := make([]interface{}, len(inserted))
		for i := range inserted {
			docs[i] = inserted[i]
		}
		if _, err := repo.coll.InsertMany(sc, docs); err != nil {
			return fmt.Errorf("insert new schedule failed: %w", err)
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		return nil, fmt.Errorf("schedule replace transaction failed: %w", err)
	}

	return inserted, nil
}
