package handlers

import (
	"net/http"

	"clinicore/middleware"
	"clinicore/models"
	"clinicore/services/schedule"
	"clinicore/utils"

	"github.com/gin-gonic/gin"
)

// ScheduleHandler exposes slot generation and weekly availability management.
type ScheduleHandler struct {
	Service schedule.ScheduleService
}

func NewScheduleHandler(svc schedule.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{Service: svc}
}

// GetAvailableSlotsHandler returns the bookable slots for a doctor and date.
// Missing query parameters are client errors; an empty day is a successful
// empty response.
func (h *ScheduleHandler) GetAvailableSlotsHandler(c *gin.Context) {
	doctorID := c.Param("doctorId")
	date := c.Query("date")
	if doctorID == "" || date == "" {
		utils.JSONError(c, http.StatusBadRequest, "doctorId and date are required", "")
		return
	}

	resp, err := h.Service.GetAvailableSlots(c.Request.Context(), doctorID, date)
	if err != nil {
		utils.JSONError(c, utils.HTTPStatus(err), err.Error(), "")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetWeeklyAvailabilityHandler returns a doctor's weekly schedule.
func (h *ScheduleHandler) GetWeeklyAvailabilityHandler(c *gin.Context) {
	doctorID := c.Param("doctorId")

	rows, err := h.Service.GetWeeklyAvailability(c.Request.Context(), doctorID)
	if err != nil {
		utils.JSONError(c, utils.HTTPStatus(err), err.Error(), "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"availability": rows})
}

// ReplaceWeeklyAvailabilityHandler swaps a doctor's whole weekly schedule.
// Doctors may only edit their own; admins may edit any.
func (h *ScheduleHandler) ReplaceWeeklyAvailabilityHandler(c *gin.Context) {
	doctorID := c.Param("doctorId")
	session, ok := middleware.CurrentSession(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "No active session", "")
		return
	}
	if session.Role == models.RoleDoctor && session.UserID != doctorID {
		utils.JSONError(c, http.StatusForbidden, "doctors may only edit their own schedule", "")
		return
	}

	var input struct {
		Availability []models.WeeklyAvailability `json:"availability" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	rows, err := h.Service.ReplaceWeeklyAvailability(c.Request.Context(), doctorID, input.Availability)
	if err != nil {
		utils.JSONError(c, utils.HTTPStatus(err), err.Error(), "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"availability": rows})
}
