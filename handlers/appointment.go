package handlers

import (
	"net/http"

	"clinicore/middleware"
	"clinicore/models"
	"clinicore/services/appointment"
	"clinicore/utils"

	"github.com/gin-gonic/gin"
)

// AppointmentHandler exposes the appointment lifecycle endpoints.
type AppointmentHandler struct {
	Service appointment.AppointmentService
}

func NewAppointmentHandler(svc appointment.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{Service: svc}
}

func requireSession(c *gin.Context) (models.Session, bool) {
	session, ok := middleware.CurrentSession(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "No active session", "")
	}
	return session, ok
}

// CreateAppointmentHandler books a new appointment.
func (h *AppointmentHandler) CreateAppointmentHandler(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}

	var req models.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	apt, err := h.Service.Create(c.Request.Context(), session, req)
	if err != nil {
		utils.JSONError(c, utils.HTTPStatus(err), err.Error(), "")
		return
	}
	c.JSON(http.StatusCreated, apt)
}

// GetAppointmentHandler returns one appointment.
func (h *AppointmentHandler) GetAppointmentHandler(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}

	apt, err := h.Service.GetByID(c.Request.Context(), session, c.Param("id"))
	if err != nil {
		utils.JSONError(c, utils.HTTPStatus(err), err.Error(), "")
		return
	}
	c.JSON(http.StatusOK, apt)
}

// UpdateAppointmentHandler applies a status change and/or reschedule.
func (h *AppointmentHandler) UpdateAppointmentHandler(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}

	var upd models.AppointmentUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	apt, err := h.Service.Update(c.Request.Context(), session, c.Param("id"), upd)
	if err != nil {
		utils.JSONError(c, utils.HTTPStatus(err), err.Error(), "")
		return
	}
	c.JSON(http.StatusOK, apt)
}

// DeleteAppointmentHandler removes an appointment permanently.
func (h *AppointmentHandler) DeleteAppointmentHandler(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}

	if err := h.Service.Delete(c.Request.Context(), session, c.Param("id")); err != nil {
		utils.JSONError(c, utils.HTTPStatus(err), err.Error(), "")
		return
	}
	c.Status(http.StatusNoContent)
}

// ListPatientAppointmentsHandler returns a patient's appointment history.
func (h *AppointmentHandler) ListPatientAppointmentsHandler(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}

	appts, err := h.Service.ListForPatient(c.Request.Context(), session, c.Param("patientId"))
	if err != nil {
		utils.JSONError(c, utils.HTTPStatus(err), err.Error(), "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

// DoctorDaySheetHandler returns a doctor's non-cancelled appointments for a date.
func (h *AppointmentHandler) DoctorDaySheetHandler(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}

	appts, err := h.Service.DoctorDaySheet(c.Request.Context(), session, c.Param("doctorId"), c.Query("date"))
	if err != nil {
		utils.JSONError(c, utils.HTTPStatus(err), err.Error(), "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}
