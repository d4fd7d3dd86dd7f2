package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"clinicore/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// reminderFlagField maps a sweep kind to the audit flag it owns.
func reminderFlagField(kind models.SweepKind) (string, error) {
	switch kind {
	case models.Sweep24Hour:
		return "reminder24hSent", nil
	case models.Sweep1Hour:
		return "reminder1hSent", nil
	case models.SweepFollowUp:
		return "followUpSent", nil
	}
	return "", fmt.Errorf("unknown sweep kind %q", kind)
}

// reminderStatuses maps a sweep kind to the statuses it considers.
func reminderStatuses(kind models.SweepKind) []models.AppointmentStatus {
	if kind == models.SweepFollowUp {
		return []models.AppointmentStatus{models.StatusCompleted}
	}
	return []models.AppointmentStatus{models.StatusPending, models.StatusConfirmed}
}

// DueForReminder returns appointments whose start time falls in [from, to],
// whose flag for kind is unset, and whose status is eligible for the sweep.
func (repo *MongoAppointmentRepo) DueForReminder(ctx context.Context, kind models.SweepKind, from, to time.Time) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	flag, err := reminderFlagField(kind)
	if err != nil {
		return nil, err
	}

	filter := bson.M{
		flag:      false,
		"status":  bson.M{"$in": reminderStatuses(kind)},
		"startAt": bson.M{"$gte": from, "$lte": to},
	}
	cursor, err := repo.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error querying %s reminders: %w", kind, err)
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("error decoding %s reminders: %w", kind, err)
	}
	return appts, nil
}

// ClaimReminderFlag atomically flips the flag for kind from false to true.
// Returns false when another sweep already claimed it.
func (repo *MongoAppointmentRepo) ClaimReminderFlag(ctx context.Context, id string, kind models.SweepKind) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	flag, err := reminderFlagField(kind)
	if err != nil {
		return false, err
	}

	res := repo.coll.FindOneAndUpdate(ctx,
		bson.M{"id": id, flag: false},
		bson.M{"$set": bson.M{flag: true}},
	)
	if err := res.Err(); err != nil {
		if err == mongo.ErrNoDocuments {
			return false, nil
		}
		return false, fmt.Errorf("error claiming %s flag for %s: %w", kind, id, err)
	}
	return true, nil
}

// ReleaseReminderFlag clears the flag for kind so the next sweep retries.
func (repo *MongoAppointmentRepo) ReleaseReminderFlag(ctx context.Context, id string, kind models.SweepKind) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	flag, err := reminderFlagField(kind)
	if err != nil {
		return err
	}

	if _, err := repo.coll.UpdateOne(ctx,
		bson.M{"id": id},
		bson.M{"$set": bson.M{flag: false}},
	); err != nil {
		return fmt.Errorf("error releasing %s flag for %s: %w", kind, id, err)
	}
	return nil
}
