package handlers

import (
	"net/http"

	"clinicore/models"
	"clinicore/services/reminder"
	"clinicore/utils"

	"github.com/gin-gonic/gin"
)

// ReminderHandler exposes a manual trigger for the reminder sweeps, useful
// for operations and backfills. The regular cadence runs through the cron
// scheduler and worker.
type ReminderHandler struct {
	Service reminder.ReminderService
}

func NewReminderHandler(svc reminder.ReminderService) *ReminderHandler {
	return &ReminderHandler{Service: svc}
}

// RunSweepHandler runs one sweep synchronously and returns its counts.
func (h *ReminderHandler) RunSweepHandler(c *gin.Context) {
	kind := models.SweepKind(c.Param("kind"))
	if !kind.IsValid() {
		utils.JSONError(c, http.StatusBadRequest, "kind must be one of 24h, 1h, followup", "")
		return
	}

	result, err := h.Service.RunSweep(c.Request.Context(), kind)
	if err != nil {
		utils.JSONError(c, utils.HTTPStatus(err), err.Error(), "")
		return
	}
	c.JSON(http.StatusOK, result)
}
