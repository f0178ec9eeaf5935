package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/judoclub/clubsite/internal/bootstrap"
	handlerHttp "github.com/judoclub/clubsite/internal/handler/http"
	redisclient "github.com/judoclub/clubsite/internal/infrastructure/cache"
	"github.com/judoclub/clubsite/internal/infrastructure/config"
	"github.com/judoclub/clubsite/internal/infrastructure/export"
	"github.com/judoclub/clubsite/internal/infrastructure/jwt"
	"github.com/judoclub/clubsite/internal/infrastructure/logger"
	passwordservice "github.com/judoclub/clubsite/internal/infrastructure/password_service"
	"github.com/judoclub/clubsite/internal/infrastructure/store"
	"github.com/judoclub/clubsite/internal/infrastructure/uuidgen"
	"github.com/judoclub/clubsite/internal/infrastructure/validator"
	"github.com/judoclub/clubsite/internal/seed"
	"github.com/judoclub/clubsite/internal/usecase"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	appConfig := config.NewConfig()
	if err := appConfig.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	appLogger := logger.NewSlogLogger(appConfig.LogLevel)

	ctx := context.Background()
	storage, err := bootstrap.OpenStorage(ctx, appConfig)
	if err != nil {
		log.Fatalf("Failed to open %s storage: %v", appConfig.StorageDriver, err)
	}
	defer storage.Close()
	repos := storage.Repos

	// Dependency Injection: Services
	hasher := passwordservice.NewHasher()
	jwtManager := jwt.NewJWTManager(appConfig.JWTSecret, appConfig.AccessTokenExpiry, uuidgen.NewGenerator())
	jwtService := jwt.NewJWTService(jwtManager)
	appValidator := validator.NewValidator()

	if appConfig.SeedOnStart {
		res, err := seed.Seed(ctx, repos, hasher)
		if err != nil {
			log.Fatalf("Failed to seed fixtures: %v", err)
		}
		if res.Skipped {
			appLogger.Infof("fixtures already present, seed skipped")
		} else {
			appLogger.Infof("seeded %d users, %d schedules, %d news", res.Users, res.Schedules, res.News)
		}
	}

	// Dependency Injection: Usecases
	newsUsecase := usecase.NewNewsUseCase(repos.News, appValidator, appLogger)
	usecases := handlerHttp.Usecases{
		User:           usecase.NewUserUsecase(repos.Users, hasher, jwtService, appLogger, appValidator),
		Instructor:     usecase.NewInstructorUseCase(repos.Instructors, repos.Schedules, appValidator, appLogger),
		Schedule:       usecase.NewScheduleUseCase(repos.Schedules, repos.Instructors, repos.Registrations, appValidator, appLogger),
		News:           newsUsecase,
		Event:          usecase.NewEventUseCase(repos.Events, appValidator, appLogger),
		Gallery:        usecase.NewGalleryUseCase(repos.Gallery, appValidator, appLogger),
		Registration:   usecase.NewRegistrationUseCase(repos.Registrations, repos.Schedules, repos.Users, export.NewXLSXExporter(), appValidator, appLogger),
		ContactMessage: usecase.NewContactMessageUseCase(repos.ContactMessages, appValidator, appLogger),
		Stats:          usecase.NewStatsUseCase(repos, appLogger),
	}

	// Optional Dependency Injection: Redis cache
	if appConfig.RedisURL != "" {
		rdb, err := redisclient.NewRedisFromURL(ctx, appConfig.RedisURL)
		if err != nil {
			appLogger.Warnf("news cache disabled: %v", err)
		} else {
			defer redisclient.Close(rdb)
			newsUsecase.SetNewsCache(store.NewNewsCacheStore(rdb, appConfig.NewsCacheTTL))
		}
	}

	if appConfig.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Setup API routes
	appRouter := handlerHttp.NewRouter(usecases, appLogger, handlerHttp.Options{
		AllowedOrigins:      appConfig.CORSAllowedOrigins,
		RateLimitRPS:        appConfig.RateLimitRPS,
		ContactRateLimitRPS: appConfig.ContactRateLimitRPS,
		AccessLog:           appLogger.Slog(),
	})
	appRouter.SetupRoutes(router)

	server := &http.Server{
		Addr:              ":" + appConfig.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		appLogger.Infof("server running on port %s (%s storage)", appConfig.Port, appConfig.StorageDriver)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Infof("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Errorf("server forced to shutdown: %v", err)
	}
}
