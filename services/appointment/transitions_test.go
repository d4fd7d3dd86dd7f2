package appointment

import (
	"testing"

	"clinicore/models"

	"github.com/stretchr/testify/assert"
)

func TestValidateTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    models.AppointmentStatus
		to      models.AppointmentStatus
		allowed bool
	}{
		{"pending to confirmed", models.StatusPending, models.StatusConfirmed, true},
		{"pending to cancelled", models.StatusPending, models.StatusCancelled, true},
		{"pending to completed", models.StatusPending, models.StatusCompleted, false},
		{"confirmed to completed", models.StatusConfirmed, models.StatusCompleted, true},
		{"confirmed to missed", models.StatusConfirmed, models.StatusMissed, true},
		{"rescheduled to confirmed", models.StatusRescheduled, models.StatusConfirmed, true},
		{"rescheduled again", models.StatusRescheduled, models.StatusRescheduled, true},
		{"cancelled is terminal", models.StatusCancelled, models.StatusConfirmed, false},
		{"completed is terminal", models.StatusCompleted, models.StatusRescheduled, false},
		{"missed is terminal", models.StatusMissed, models.StatusPending, false},
		{"same status is a no-op", models.StatusCompleted, models.StatusCompleted, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTransition(tt.from, tt.to)
			if tt.allowed {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
