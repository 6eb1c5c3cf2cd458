package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinic-records/config"
	deliveryHttp "clinic-records/internal/delivery/http"
	"clinic-records/internal/delivery/http/handler"
	"clinic-records/internal/delivery/http/middleware"
	"clinic-records/internal/delivery/screen"
	"clinic-records/internal/infrastructure/cache"
	"clinic-records/internal/infrastructure/database"
	"clinic-records/internal/repository"
	"clinic-records/internal/usecase"
	"clinic-records/pkg/jwt"
	"clinic-records/pkg/validator"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	Log         *logrus.Logger
	Pool        *pgxpool.Pool
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server

	// Auth is exposed for the operator command, which runs without a server.
	Auth      usecase.AuthUsecase
	Validator *validator.CustomValidator
}

// New creates a new App instance with all dependencies initialized
func New(ctx context.Context, configPath string) (*App, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log := NewLogger(cfg.Log)
	app := &App{Config: cfg, Log: log}
	log.Info("Configuration loaded successfully")

	pool, err := database.NewPostgresPool(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.Pool = pool

	db, err := database.NewGormDB(pool, log)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to open gorm: %w", err)
	}
	app.DB = db
	log.Info("Database connected successfully")

	redisClient, err := cache.NewRedisClient(cfg.Redis, log)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	log.Info("Redis connected successfully")

	app.initializeServer()
	return app, nil
}

// NewLogger returns a JSON logrus logger at the configured level. An
// unknown level falls back to info.
func NewLogger(cfg config.LogConfig) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		log.Warnf("Unknown log level %q, using info", cfg.Level)
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	return log
}

// initializeServer wires every layer and creates the HTTP server.
func (app *App) initializeServer() {
	cfg, log := app.Config, app.Log

	jwtService := jwt.NewJWTService(cfg.JWT)
	app.Validator = validator.NewValidator()
	tokens := cache.NewTokenStore(app.RedisClient)

	// Hierarchy tables go through pgx, flat tables through gorm.
	doctorRepo := repository.NewDoctorRepository(app.Pool)
	patientRepo := repository.NewPatientRepository(app.Pool)
	drugRepo := repository.NewDrugRepository(app.DB)
	insuranceRepo := repository.NewInsuranceRepository(app.DB)
	prescriptionRepo := repository.NewPrescriptionRepository(app.DB)
	visitRepo := repository.NewVisitRepository(app.DB)
	userRepo := repository.NewUserRepository(app.DB)
	roleRepo := repository.NewRoleRepository(app.DB)

	doctorUsecase := usecase.NewDoctorUsecase(log, app.Validator, doctorRepo)
	patientUsecase := usecase.NewPatientUsecase(log, app.Validator, patientRepo, insuranceRepo)
	drugUsecase := usecase.NewDrugUsecase(log, app.Validator, drugRepo)
	insuranceUsecase := usecase.NewInsuranceUsecase(log, app.Validator, insuranceRepo)
	prescriptionUsecase := usecase.NewPrescriptionUsecase(log, app.Validator, prescriptionRepo, drugRepo, doctorRepo, patientRepo)
	visitUsecase := usecase.NewVisitUsecase(log, app.Validator, visitRepo, doctorRepo, patientRepo)
	app.Auth = usecase.NewAuthUsecase(log, userRepo, roleRepo, jwtService, tokens)

	screens := []screen.Screen{
		screen.NewDoctorScreen(doctorUsecase),
		screen.NewPatientScreen(patientUsecase),
		screen.NewDrugScreen(drugUsecase),
		screen.NewInsuranceScreen(insuranceUsecase),
		screen.NewPrescriptionScreen(prescriptionUsecase),
		screen.NewVisitScreen(visitUsecase),
	}
	screenHandlers := make([]*handler.ScreenHandler, len(screens))
	for i, s := range screens {
		screenHandlers[i] = handler.NewScreenHandler(log, s)
	}

	router := deliveryHttp.NewRouter(
		handler.NewAuthHandler(app.Auth, app.Validator, jwtService),
		screenHandlers,
		middleware.NewAuthMiddleware(log, jwtService, tokens),
		middleware.NewCORSMiddleware(),
		middleware.NewLoggingMiddleware(log),
	)

	app.Server = &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.App.Port),
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Run starts the HTTP server and blocks until ctx is cancelled or an
// interrupt arrives, then shuts down gracefully.
func (app *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			app.Close()
			return fmt.Errorf("failed to start server: %w", err)
		}
	case <-ctx.Done():
	}

	app.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.Server.Shutdown(shutdownCtx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()
	app.Log.Info("Server shutdown complete")
	return nil
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	if app.RedisClient != nil {
		if err := app.RedisClient.Close(); err != nil {
			app.Log.Warnf("Failed to close Redis: %v", err)
		}
	}
	if app.DB != nil {
		if sqlDB, err := app.DB.DB(); err == nil {
			sqlDB.Close()
		}
	}
	if app.Pool != nil {
		app.Pool.Close()
	}
}
