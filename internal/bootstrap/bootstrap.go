package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/skilllink/skilllink/internal/app/controllers"
	appMigrations "github.com/skilllink/skilllink/internal/app/migrations"
	appRepos "github.com/skilllink/skilllink/internal/app/repositories"
	appRoutes "github.com/skilllink/skilllink/internal/app/routes"
	appServices "github.com/skilllink/skilllink/internal/app/services"
	"github.com/skilllink/skilllink/internal/config"
	"github.com/skilllink/skilllink/internal/db"
	"github.com/skilllink/skilllink/internal/metrics"
	appMiddleware "github.com/skilllink/skilllink/internal/middleware"
	pkgAuth "github.com/skilllink/skilllink/internal/pkg/auth"
	"github.com/skilllink/skilllink/internal/pkg/email"
	"github.com/skilllink/skilllink/internal/pkg/filestorage"
	"github.com/skilllink/skilllink/internal/pkg/helpers"
	"github.com/skilllink/skilllink/internal/pkg/logger"
	"github.com/skilllink/skilllink/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService            appServices.IAuthService
	SkillService           appServices.ISkillService
	RequestService         appServices.IRequestService
	AcceptedRequestService appServices.IAcceptedRequestService
	SessionService         appServices.ISessionService
	AdminService           appServices.IAdminService

	AuthController     *appControllers.AuthController
	RequestsController *appControllers.RequestsController
	SkillsController   *appControllers.SkillsController
	SessionsController *appControllers.SessionsController
	AdminController    *appControllers.AdminController

	AuthMiddleware *appMiddleware.AuthMiddleware
	Repos          *appRepos.Repositories
	JWTService     *pkgAuth.JWTService
	FileStorage    *filestorage.LocalStorage
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds default data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	if err := seed.CreateDefaultData(context.Background(), cfg, dbPool, lgr); err != nil {
		// Seeding problems should not block startup
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	// Collectors must exist even when the metrics endpoint is disabled,
	// services increment them unconditionally.
	metrics.Init(cfg.Metrics.Namespace)

	deps.Repos = appRepos.NewRepositories(dbPool)

	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Storage.UploadsDir, storageBaseURL(cfg))
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(
		cfg.JWT.Secret,
		helpers.ParseDuration(cfg.JWT.TokenExpiration, 24*time.Hour),
		cfg.JWT.Issuer,
	)

	passwordService := pkgAuth.NewPasswordService(0)

	emailService := email.NewService(email.Config{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
		BaseURL:  cfg.Server.BaseURL,
	})

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.UserRepository,
		deps.JWTService,
		passwordService,
		emailService,
		deps.FileStorage,
		lgr,
	)
	deps.SkillService = appServices.NewSkillService(deps.Repos.SkillRepository, lgr)
	deps.RequestService = appServices.NewRequestService(deps.Repos.RequestRepository, lgr)
	deps.AcceptedRequestService = appServices.NewAcceptedRequestService(
		deps.Repos.AcceptedRequestRepository,
		deps.Repos.RequestRepository,
		lgr,
	)
	deps.SessionService = appServices.NewSessionService(
		deps.Repos.SessionRepository,
		deps.Repos.RequestRepository,
		lgr,
	)
	deps.AdminService = appServices.NewAdminService(deps.Repos.UserRepository, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.RequestsController = appControllers.NewRequestsController(deps.RequestService, deps.AcceptedRequestService)
	deps.SkillsController = appControllers.NewSkillsController(deps.SkillService)
	deps.SessionsController = appControllers.NewSessionsController(deps.SessionService)
	deps.AdminController = appControllers.NewAdminController(deps.AdminService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger())

	if cfg.Metrics.Enabled {
		router.Use(metrics.Middleware())
		router.GET("/metrics", metrics.Handler())
	}

	appRoutes.SetupSwagger(router)

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.RequestsController,
		deps.SkillsController,
		deps.SessionsController,
		deps.AdminController,
		deps.AuthMiddleware,
	)

	// Serve uploaded profile pictures
	router.Static("/uploads", cfg.Storage.UploadsDir)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return router
}

func storageBaseURL(cfg *config.Config) string {
	if cfg.Storage.BaseURL != "" {
		return cfg.Storage.BaseURL
	}
	return strings.TrimRight(cfg.Server.BaseURL, "/") + "/uploads"
}
