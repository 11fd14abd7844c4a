// File: cityconnect/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cityconnect/config"
	"cityconnect/cron"
	"cityconnect/database"
	amenityRepo "cityconnect/database/repository/amenity"
	issueRepo "cityconnect/database/repository/issue"
	reservationRepo "cityconnect/database/repository/reservation"
	scheduleRepo "cityconnect/database/repository/schedule"
	"cityconnect/handlers"
	"cityconnect/middleware"
	"cityconnect/routes"
	"cityconnect/services/amenity"
	"cityconnect/services/booking"
	"cityconnect/services/chat"
	ai "cityconnect/services/intelligence"
	"cityconnect/services/parks"
	"cityconnect/services/tasks"
	"cityconnect/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	healthChecks := map[string]utils.HealthCheck{}

	// repositories.
	var (
		schedule     scheduleRepo.ScheduleRepository
		reservations reservationRepo.ReservationRepository
		issues       issueRepo.IssueRepository
	)
	switch config.AppConfig.StoreDriver {
	case "mongo":
		if err := database.InitDB(); err != nil {
			logger.Sugar().Fatalf("main: %v", err)
		}
		defer database.CloseDB(context.Background())
		db := database.Database()
		schedule = scheduleRepo.NewMongoScheduleRepo(db)
		reservations = reservationRepo.NewMongoReservationRepo(db)
		issues = issueRepo.NewMongoIssueRepo(db)
		healthChecks["mongo"] = func(ctx context.Context) error {
			return database.MongoClient.Ping(ctx, nil)
		}
		logger.Info("Using MongoDB park store", zap.String("database", config.AppConfig.DatabaseName))
	default:
		schedule = scheduleRepo.NewCSVScheduleRepo(config.DataPath(config.AppConfig.ScheduleFile))
		reservations = reservationRepo.NewCSVReservationRepo(config.DataPath(config.AppConfig.ReservationsFile))
		issues = issueRepo.NewCSVIssueRepo(config.DataPath(config.AppConfig.IssuesFile))
		healthChecks["schedule"] = func(ctx context.Context) error {
			_, err := schedule.ListParks(ctx)
			return err
		}
		logger.Info("Using CSV park store", zap.String("dataDir", config.AppConfig.DataDir))
	}
	amenities := amenityRepo.NewCSVAmenityRepo(
		config.DataPath(config.AppConfig.AmenitiesFile),
		config.DataPath(config.AppConfig.LocationsFile),
	)

	// chat sessions.
	sessionTTL := time.Duration(config.AppConfig.SessionTTLMinutes) * time.Minute
	var sessions chat.SessionStore
	if config.AppConfig.SessionStore == "redis" {
		if err := utils.InitSessionCache(); err != nil {
			logger.Sugar().Fatalf("main: %v", err)
		}
		redisClient := utils.GetSessionCacheClient()
		defer redisClient.Close()
		sessions = chat.NewRedisSessionStore(redisClient, sessionTTL)
		healthChecks["redis"] = func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		}
	} else {
		memStore := chat.NewMemorySessionStore(sessionTTL)
		sessions = memStore
		go sweepSessions(ctx, memStore, logger)
	}

	// booking confirmations.
	var notifier booking.Notifier
	if config.AppConfig.NotificationsEnabled {
		queueClient := asynq.NewClient(cron.RedisOpt())
		defer queueClient.Close()
		notifier = tasks.NewAsynqNotifier(queueClient)

		worker, err := cron.InitConfirmationWorker(logger)
		if err != nil {
			logger.Sugar().Fatalf("main: %v", err)
		}
		defer worker.Shutdown()
	}

	// assistant.
	var assistant ai.Assistant
	if config.AppConfig.GeminiAPIKey != "" {
		gemini, err := ai.NewGeminiAssistant(ctx, config.AppConfig.GeminiAPIKey, config.AppConfig.GeminiModel)
		if err != nil {
			logger.Sugar().Fatalf("main: %v", err)
		}
		defer gemini.Close()
		assistant = gemini
	} else {
		logger.Warn("GEMINI_API_KEY not set, using the offline assistant")
		assistant = ai.NewLocalAssistant()
	}

	// services.
	matcher := amenity.NewMatcher(amenities)
	reservationService := booking.NewReservationService(schedule, reservations, notifier, logger)
	assistantTimeout := time.Duration(config.AppConfig.AssistantTimeoutSeconds) * time.Second
	parkService := parks.NewParkService(schedule, issues, matcher, assistant, assistantTimeout, logger)
	chatService := chat.NewDefaultChatService(
		sessions,
		schedule,
		reservationService,
		matcher,
		assistant,
		assistantTimeout,
		logger,
	)

	chatHandler := handlers.NewChatHandler(chatService, logger)
	parkHandler := handlers.NewParkHandler(parkService, matcher, logger)
	reservationHandler := handlers.NewReservationHandler(reservationService, logger)

	handlerBundle := &handlers.HandlerBundle{
		StartChatSession: chatHandler.StartSession,
		GetChatSession:   chatHandler.GetSession,
		PostChatMessage:  chatHandler.PostMessage,
		EndChatSession:   chatHandler.EndSession,

		ListParks:        parkHandler.ListParks,
		ListSchedule:     parkHandler.ListSchedule,
		GetAvailability:  parkHandler.GetAvailability,
		GetParkAmenities: parkHandler.GetParkAmenities,
		DescribePark:     parkHandler.DescribePark,
		SearchAmenities:  parkHandler.SearchAmenities,
		FilterAmenities:  parkHandler.FilterAmenities,

		CreateReservation: reservationHandler.CreateReservation,

		ReportIssue: parkHandler.ReportIssue,
		ListIssues:  parkHandler.ListIssues,

		Health: handlers.Health,
	}

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin, logger))
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(ctx, time.Minute, healthChecks)

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
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

// sweepSessions drops expired in-memory sessions once a minute.
func sweepSessions(ctx context.Context, store *chat.MemorySessionStore, logger *zap.Logger) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := store.Sweep(); n > 0 {
				logger.Debug("Expired chat sessions removed", zap.Int("count", n))
			}
		}
	}
}
