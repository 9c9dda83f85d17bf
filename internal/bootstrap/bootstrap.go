package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/yigit/devcamper/internal/app/controllers"
	appMigrations "github.com/yigit/devcamper/internal/app/migrations"
	appRepos "github.com/yigit/devcamper/internal/app/repositories"
	appRoutes "github.com/yigit/devcamper/internal/app/routes"
	appServices "github.com/yigit/devcamper/internal/app/services"
	"github.com/yigit/devcamper/internal/config"
	"github.com/yigit/devcamper/internal/db"
	appMiddleware "github.com/yigit/devcamper/internal/middleware"
	"github.com/yigit/devcamper/internal/pkg/apperrors"
	"github.com/yigit/devcamper/internal/pkg/geocoder"
	"github.com/yigit/devcamper/internal/pkg/helpers"
	"github.com/yigit/devcamper/internal/pkg/logger"
)

// DefaultConfigPath is read relative to the working directory
var DefaultConfigPath = filepath.Join("configs", "config.yaml")

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos              *appRepos.Repositories
	Services           *appServices.Services
	BootcampController *appControllers.BootcampController
	CourseController   *appControllers.CourseController
	HealthController   *appControllers.HealthController
	Geocoder           geocoder.Geocoder
	Registry           *prometheus.Registry
	Logger             zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(DefaultConfigPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	lgr.Info().Msg("Running database migrations...")
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := appMigrations.NewMigrator(database.Pool).Up(ctx); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	if err := cfg.ValidateGeocoder(); err != nil {
		return nil, err
	}

	geo, err := geocoder.New(geocoder.Config{
		Provider: cfg.Geocoder.Provider,
		APIKey:   cfg.Geocoder.APIKey,
		BaseURL:  cfg.Geocoder.BaseURL,
		Timeout:  helpers.ParseDuration(cfg.Geocoder.Timeout, 10*time.Second),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize geocoder: %w", err)
	}

	deps := &Dependencies{
		Repos:    appRepos.NewRepositories(database.Pool),
		Geocoder: geo,
		Logger:   lgr,
	}

	deps.Services = appServices.NewServices(
		deps.Repos.BootcampRepository,
		deps.Repos.CourseRepository,
		appServices.NewTransactor(database),
		geo,
	)

	deps.BootcampController = appControllers.NewBootcampController(deps.Services.BootcampService)
	deps.CourseController = appControllers.NewCourseController(deps.Services.CourseService)
	deps.HealthController = appControllers.NewHealthController(database)

	deps.Registry = prometheus.NewRegistry()
	deps.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return deps, nil
}

// NewEngine creates a gin engine with the middleware chain every route runs
// through: recovery, request logging, metrics and error responses
func NewEngine(metrics *appMiddleware.Metrics) *gin.Engine {
	router := gin.New()
	router.Use(appMiddleware.Recovery(), appMiddleware.RequestLogger())
	if metrics != nil {
		router.Use(metrics.Handler())
	}
	router.Use(appMiddleware.ErrorHandler())

	router.NoRoute(func(c *gin.Context) {
		appMiddleware.HandleAPIError(c,
			apperrors.NewResourceNotFoundError(fmt.Sprintf("Route %s %s not found", c.Request.Method, c.Request.URL.Path)))
	})
	return router
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := NewEngine(appMiddleware.NewMetrics(deps.Registry))

	appRoutes.SetupSwagger(router)
	appRoutes.SetupMetrics(router, deps.Registry)
	appRoutes.SetupRouter(router,
		deps.BootcampController,
		deps.CourseController,
		deps.HealthController,
	)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
