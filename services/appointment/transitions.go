package appointment

import (
	"fmt"

	"clinicore/models"
	"clinicore/utils"
)

// allowedTransitions is the strict transition table. The platform has
// historically accepted any status from any prior state; strict validation is
// gated behind config.StrictTransitions so lenient deployments keep their
// behavior.
var allowedTransitions = map[models.AppointmentStatus][]models.AppointmentStatus{
	models.StatusPending:     {models.StatusConfirmed, models.StatusCancelled, models.StatusRescheduled},
	models.StatusConfirmed:   {models.StatusCancelled, models.StatusRescheduled, models.StatusCompleted, models.StatusMissed},
	models.StatusRescheduled: {models.StatusConfirmed, models.StatusCancelled, models.StatusRescheduled, models.StatusCompleted, models.StatusMissed},
	models.StatusCancelled:   {},
	models.StatusCompleted:   {},
	models.StatusMissed:      {},
}

// ValidateTransition checks whether from -> to is permitted by the strict
// table. Setting the same status again is always a no-op and allowed.
func ValidateTransition(from, to models.AppointmentStatus) error {
	if from == to {
		return nil
	}
	for _, next := range allowedTransitions[from] {
		if next == to {
			return nil
		}
	}
	return utils.NewValidationError(fmt.Sprintf("status transition %s -> %s is not allowed", from, to))
}
