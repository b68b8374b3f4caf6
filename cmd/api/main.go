package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"lavoro/internal/app"
	"lavoro/internal/config"
	"lavoro/internal/database"
	apphttp "lavoro/internal/http"
	"lavoro/internal/http/handlers"
	"lavoro/internal/http/metrics"
	httpmw "lavoro/internal/http/middleware"
	"lavoro/internal/http/response"
	"lavoro/internal/observability"
	"lavoro/internal/repository/postgres"
	"lavoro/internal/security"
)

func main() {
	cfg := config.Load()
	logger := observability.NewLogger()
	db := database.NewPostgres(database.PostgresConfig{
		DSN:             cfg.PostgresDSN,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxIdle:     cfg.DBConnMaxIdle,
		ConnMaxLifetime: cfg.DBConnMaxLife,
	})
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	candidateRepo := postgres.NewCandidateRepository(db)
	enterpriseRepo := postgres.NewEnterpriseRepository(db)
	jobRepo := postgres.NewJobRepository(db)
	applicationRepo := postgres.NewApplicationRepository(db)
	interviewRepo := postgres.NewInterviewRepository(db)
	notificationRepo := postgres.NewNotificationRepository(db)

	jwtProvider := security.NewJWTProvider(cfg.JWTSecret)

	notificationService := app.NewNotificationService(notificationRepo, userRepo)
	authService := app.NewAuthService(userRepo, candidateRepo, enterpriseRepo, jwtProvider, logger, cfg.AccessTokenTTL)
	profileService := app.NewProfileService(candidateRepo, enterpriseRepo)
	jobService := app.NewJobService(jobRepo, enterpriseRepo, candidateRepo, applicationRepo)
	applicationService := app.NewApplicationService(applicationRepo, candidateRepo, enterpriseRepo, jobRepo, userRepo, interviewRepo, notificationService, logger)
	interviewService := app.NewInterviewService(interviewRepo, applicationRepo, candidateRepo, jobRepo, notificationService, logger)
	userService := app.NewUserService(userRepo, candidateRepo, enterpriseRepo, jobRepo, applicationRepo)

	var rateLimiter httpmw.Limiter = httpmw.NewRateLimiter()
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		rateLimiter = httpmw.NewRedisLimiter(redisClient)
		defer redisClient.Close()
	}

	authHandler := handlers.NewAuthHandler(authService, rateLimiter)
	profileHandler := handlers.NewProfileHandler(profileService)
	jobHandler := handlers.NewJobHandler(jobService)
	applicationHandler := handlers.NewApplicationHandler(applicationService, rateLimiter)
	interviewHandler := handlers.NewInterviewHandler(interviewService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	adminHandler := handlers.NewAdminHandler(userService)
	authMiddleware := httpmw.NewAuthMiddleware(jwtProvider)

	collector := metrics.NewCollector()
	response.SetErrorCollector(collector)
	httpmw.SetLogger(logger)

	router := apphttp.NewRouter(apphttp.RouterDependencies{
		AuthHandler:         authHandler,
		ProfileHandler:      profileHandler,
		JobHandler:          jobHandler,
		ApplicationHandler:  applicationHandler,
		InterviewHandler:    interviewHandler,
		NotificationHandler: notificationHandler,
		AdminHandler:        adminHandler,
		MetricsHandler:      handlers.NewMetricsHandler(collector),
		AuthMiddleware:      authMiddleware,
		Metrics:             collector,
		RequestTimeout:      cfg.RequestTimeout,
	})
	server := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("API started on :" + cfg.HTTPPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatal(err)
	}
}
