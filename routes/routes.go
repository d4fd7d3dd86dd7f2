package routes

import (
	"net/http"
	"time"

	"clinicore/handlers"
	"clinicore/middleware"
	"clinicore/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterScheduleRoutes registers slot and weekly availability endpoints.
func RegisterScheduleRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/schedule")
	{
		// Slot listing is readable by any authenticated user (patients browse
		// availability before booking).
		api.Use(middleware.SessionMiddleware())
		api.GET("/doctors/:doctorId/slots", hb.GetAvailableSlotsHandler)
		api.GET("/doctors/:doctorId/weekly", hb.GetWeeklyAvailabilityHandler)

		protected := api.Group("")
		protected.Use(middleware.RequireRoles(models.RoleDoctor, models.RoleAdmin))
		protected.PUT("/doctors/:doctorId/weekly", hb.ReplaceWeeklyAvailabilityHandler)
	}
}

// RegisterAppointmentRoutes registers the appointment lifecycle endpoints.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/appointments")
	{
		api.Use(middleware.SessionMiddleware())
		api.POST("", hb.CreateAppointmentHandler)
		api.GET("/:id", hb.GetAppointmentHandler)
		api.PATCH("/:id", hb.UpdateAppointmentHandler)
		api.DELETE("/:id", hb.DeleteAppointmentHandler)
		api.GET("/patient/:patientId", hb.ListPatientAppointmentsHandler)
		api.GET("/doctor/:doctorId", hb.DoctorDaySheetHandler)
	}
}

// RegisterNotificationRoutes registers the in-app notification feed.
func RegisterNotificationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/notifications")
	{
		api.Use(middleware.SessionMiddleware())
		api.GET("", hb.ListNotificationsHandler)
		api.PUT("/:id/read", hb.MarkNotificationReadHandler)
	}
}

// RegisterReminderRoutes registers the manual sweep trigger (admin only).
func RegisterReminderRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reminders")
	{
		api.Use(middleware.SessionMiddleware())
		api.Use(middleware.RequireRoles(models.RoleAdmin))
		api.POST("/sweeps/:kind", hb.RunSweepHandler)
	}
}

// RegisterRoutes wires CORS, health and all route groups.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", handlers.HealthHandler)
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})

	RegisterScheduleRoutes(r, hb)
	RegisterAppointmentRoutes(r, hb)
	RegisterNotificationRoutes(r, hb)
	RegisterReminderRoutes(r, hb)
}
