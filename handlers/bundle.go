package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Schedule endpoints.
	GetAvailableSlotsHandler         gin.HandlerFunc
	GetWeeklyAvailabilityHandler     gin.HandlerFunc
	ReplaceWeeklyAvailabilityHandler gin.HandlerFunc

	// Appointment endpoints.
	CreateAppointmentHandler       gin.HandlerFunc
	GetAppointmentHandler          gin.HandlerFunc
	UpdateAppointmentHandler       gin.HandlerFunc
	DeleteAppointmentHandler       gin.HandlerFunc
	ListPatientAppointmentsHandler gin.HandlerFunc
	DoctorDaySheetHandler          gin.HandlerFunc

	// Notification endpoints.
	ListNotificationsHandler    gin.HandlerFunc
	MarkNotificationReadHandler gin.HandlerFunc

	// Reminder endpoints.
	RunSweepHandler gin.HandlerFunc
}
