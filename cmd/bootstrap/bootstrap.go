package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"healthcare-admin/config"
	"healthcare-admin/internal/apiclient"
	deliveryHttp "healthcare-admin/internal/delivery/http"
	"healthcare-admin/internal/delivery/http/handler"
	"healthcare-admin/internal/delivery/http/middleware"
	"healthcare-admin/internal/infrastructure/cache"
	"healthcare-admin/internal/infrastructure/database"
	"healthcare-admin/internal/repository"
	"healthcare-admin/internal/service"
	"healthcare-admin/internal/usecase"
	"healthcare-admin/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	setupLogger()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// The embedded record store only exists in standalone mode
	if cfg.App.Mode == config.ModeStandalone {
		db, err := database.NewPostgresConnection(cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		app.DB = db
		logrus.Info("Database connected successfully")
	}

	// Redis is optional; without it the proxy simply caches nothing
	if cfg.Redis.Host != "" {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		app.RedisClient = redisClient
		logrus.Info("Redis connected successfully")
	}

	server, err := initializeServer(cfg, app.DB, app.RedisClient)
	if err != nil {
		return nil, err
	}
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*http.Server, error) {
	log := logrus.StandardLogger()

	upstreamBaseURL := cfg.Upstream.BaseURL
	if upstreamBaseURL == "" {
		// Standalone mode talks to its own embedded store
		upstreamBaseURL = fmt.Sprintf("http://127.0.0.1:%s/upstream/v1", cfg.App.Port)
	}

	var listCache *service.ListCache
	if redisClient != nil {
		listCache = service.NewListCache(redisClient, cfg.Cache.TTL, log)
	}

	// The console reads through the proxy surface, so its tables exercise
	// the same contract an external caller would
	consoleBaseURL := fmt.Sprintf("http://127.0.0.1:%s/api", cfg.App.Port)
	client := apiclient.NewClient(consoleBaseURL, cfg.Upstream.Timeout, log)

	proxyHandler := handler.NewProxyHandler(upstreamBaseURL, cfg.Upstream.Timeout, listCache, log)
	consoleHandler, err := handler.NewConsoleHandler(client, cfg.Console.PageSize, cfg.Console.SelectLimit, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize console: %w", err)
	}

	var patientHandler *handler.PatientHandler
	var doctorHandler *handler.DoctorHandler
	var appointmentHandler *handler.AppointmentHandler
	if db != nil {
		customValidator := validator.NewValidator()

		patientRepo := repository.NewPatientRepository()
		doctorRepo := repository.NewDoctorRepository()
		appointmentRepo := repository.NewAppointmentRepository()

		patientUsecase := usecase.NewPatientUsecase(db, log, patientRepo)
		doctorUsecase := usecase.NewDoctorUsecase(db, log, doctorRepo)
		appointmentUsecase := usecase.NewAppointmentUsecase(db, log, appointmentRepo)

		patientHandler = handler.NewPatientHandler(patientUsecase, customValidator)
		doctorHandler = handler.NewDoctorHandler(doctorUsecase, customValidator)
		appointmentHandler = handler.NewAppointmentHandler(appointmentUsecase, customValidator)
	}

	corsMiddleware := middleware.NewCORSMiddleware()
	loggerMiddleware := middleware.NewRequestLoggerMiddleware(log)

	router := deliveryHttp.NewRouter(proxyHandler, consoleHandler, patientHandler, doctorHandler, appointmentHandler, corsMiddleware, loggerMiddleware)
	httpRouter := router.Setup()

	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}, nil
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
