// File: clinicore/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinicore/config"
	croncore "clinicore/cron"
	"clinicore/database"
	appointmentRepoPkg "clinicore/database/repository/appointment"
	availabilityRepoPkg "clinicore/database/repository/availability"
	notificationRepoPkg "clinicore/database/repository/notification"
	userRepoPkg "clinicore/database/repository/user"
	"clinicore/handlers"
	"clinicore/middleware"
	"clinicore/routes"
	appointmentSvc "clinicore/services/appointment"
	"clinicore/services/notification"
	"clinicore/services/reminder"
	"clinicore/services/schedule"
	"clinicore/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.InitRateLimitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware(utils.GetRateLimitClient()))

	// repositories.
	aptRepo := appointmentRepoPkg.NewMongoAppointmentRepo()
	availRepo := availabilityRepoPkg.NewMongoAvailabilityRepo()
	notifRepo := notificationRepoPkg.NewMongoNotificationRepo()
	directory := userRepoPkg.NewMongoContactDirectory()

	if err := aptRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure appointment indexes: %v", err)
	}
	if err := availRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure availability indexes: %v", err)
	}
	if err := notifRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure notification indexes: %v", err)
	}

	// services. The mailer is assigned through a typed check so a nil
	// *SendGridMailer never ends up as a non-nil Mailer interface.
	var mailer notification.Mailer
	if m := notification.NewSendGridMailer(); m != nil {
		mailer = m
	}
	notificationService, err := notification.NewDefaultNotificationService(
		notifRepo,
		directory,
		mailer,
	)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize notification service: %v", err)
	}

	scheduleService := &schedule.DefaultScheduleService{
		Availability: availRepo,
		Appointments: aptRepo,
	}

	appointmentService := &appointmentSvc.DefaultAppointmentService{
		Repo:              aptRepo,
		Schedule:          scheduleService,
		Notifier:          notificationService,
		StrictTransitions: config.AppConfig.StrictTransitions,
	}

	reminderService := &reminder.DefaultReminderService{
		Repo:     aptRepo,
		Notifier: notificationService,
		Locker:   utils.GetCacheClient(),
	}

	// Background reminder pipeline: cron enqueues sweeps, asynq runs them.
	croncore.InitSweepWorker(reminderService)
	sweepScheduler := croncore.InitSweepScheduler()

	// handlers.
	scheduleHandler := handlers.NewScheduleHandler(scheduleService)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentService)
	notificationHandler := handlers.NewNotificationHandler(notifRepo)
	reminderHandler := handlers.NewReminderHandler(reminderService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Schedule endpoints.
		GetAvailableSlotsHandler:         scheduleHandler.GetAvailableSlotsHandler,
		GetWeeklyAvailabilityHandler:     scheduleHandler.GetWeeklyAvailabilityHandler,
		ReplaceWeeklyAvailabilityHandler: scheduleHandler.ReplaceWeeklyAvailabilityHandler,

		// Appointment endpoints.
		CreateAppointmentHandler:       appointmentHandler.CreateAppointmentHandler,
		GetAppointmentHandler:          appointmentHandler.GetAppointmentHandler,
		UpdateAppointmentHandler:       appointmentHandler.UpdateAppointmentHandler,
		DeleteAppointmentHandler:       appointmentHandler.DeleteAppointmentHandler,
		ListPatientAppointmentsHandler: appointmentHandler.ListPatientAppointmentsHandler,
		DoctorDaySheetHandler:          appointmentHandler.DoctorDaySheetHandler,

		// Notification endpoints.
		ListNotificationsHandler:    notificationHandler.ListNotificationsHandler,
		MarkNotificationReadHandler: notificationHandler.MarkNotificationReadHandler,

		// Reminder endpoints.
		RunSweepHandler: reminderHandler.RunSweepHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	sweepScheduler.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
