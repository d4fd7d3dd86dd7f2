package reminder

import (
	"context"
	"fmt"
	"time"

	appointmentRepo "clinicore/database/repository/appointment"
	"clinicore/models"
	"clinicore/services/notification"
	"clinicore/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// ReminderService runs the three time-windowed reminder sweeps.
type ReminderService interface {
	RunSweep(ctx context.Context, kind models.SweepKind) (*models.SweepResult, error)
}

// DefaultReminderService is the production implementation.
type DefaultReminderService struct {
	Repo     appointmentRepo.AppointmentRepository
	Notifier notification.NotificationService
	// Locker serializes runs of the same sweep kind across instances; nil
	// disables the lease (tests, single-instance deployments).
	Locker *redis.Client
	// Now is injectable for tests; defaults to time.Now.
	Now func() time.Time
}

// Sweep windows. Each sweep is expected to run hourly; the window width is
// the run interval plus slack so an appointment is picked up across
// consecutive runs without being missed, with the audit flag preventing a
// second send.
func sweepWindow(kind models.SweepKind, now time.Time) (from, to time.Time, err error) {
	switch kind {
	case models.Sweep24Hour:
		return now.Add(23 * time.Hour), now.Add(24 * time.Hour), nil
	case models.Sweep1Hour:
		return now.Add(30 * time.Minute), now.Add(time.Hour), nil
	case models.SweepFollowUp:
		return now.Add(-48 * time.Hour), now.Add(-24 * time.Hour), nil
	}
	return time.Time{}, time.Time{}, utils.NewValidationError(fmt.Sprintf("unknown sweep kind %q", kind))
}

const sweepLeaseTTL = 10 * time.Minute

// RunSweep executes one sweep. Failures are per-appointment: a send error
// releases that appointment's flag for retry and is recorded in the result,
// and the sweep continues. Only a failed store query aborts the run.
func (s *DefaultReminderService) RunSweep(ctx context.Context, kind models.SweepKind) (*models.SweepResult, error) {
	logger := utils.GetLogger()
	now := time.Now()
	if s.Now != nil {
		now = s.Now()
	}

	from, to, err := sweepWindow(kind, now)
	if err != nil {
		return nil, err
	}

	if s.Locker != nil {
		held, err := s.Locker.SetNX(ctx, "reminder:sweep:"+string(kind), now.Unix(), sweepLeaseTTL).Result()
		if err != nil {
			logger.Warn("sweep lease check failed, proceeding without lease",
				zap.String("kind", string(kind)), zap.Error(err))
		} else if !held {
			logger.Info("sweep already running elsewhere, skipping",
				zap.String("kind", string(kind)))
			return &models.SweepResult{Kind: kind}, nil
		} else {
			defer s.Locker.Del(context.Background(), "reminder:sweep:"+string(kind))
		}
	}

	due, err := s.Repo.DueForReminder(ctx, kind, from, to)
	if err != nil {
		return nil, fmt.Errorf("reminder sweep %s could not query appointments: %w", kind, err)
	}

	result := &models.SweepResult{Kind: kind}
	for i := range due {
		apt := &due[i]
		sent, err := s.process(ctx, kind, apt)
		if err != nil {
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("appointment %s: %v", apt.ID, err))
			continue
		}
		if sent {
			result.Sent++
		}
	}

	logger.Info("reminder sweep completed",
		zap.String("kind", string(kind)),
		zap.Int("sent", result.Sent),
		zap.Int("failed", result.Failed),
	)
	return result, nil
}

// process claims the appointment's flag before sending so overlapping sweeps
// cannot both send, and releases it on failure so the next sweep retries.
func (s *DefaultReminderService) process(ctx context.Context, kind models.SweepKind, apt *models.Appointment) (bool, error) {
	claimed, err := s.Repo.ClaimReminderFlag(ctx, apt.ID, kind)
	if err != nil {
		return false, err
	}
	if !claimed {
		return false, nil
	}

	if err := s.send(ctx, kind, apt); err != nil {
		if relErr := s.Repo.ReleaseReminderFlag(ctx, apt.ID, kind); relErr != nil {
			utils.GetLogger().Error("could not release reminder flag after failed send",
				zap.String("appointmentId", apt.ID),
				zap.String("kind", string(kind)),
				zap.Error(relErr),
			)
		}
		return false, err
	}
	return true, nil
}
