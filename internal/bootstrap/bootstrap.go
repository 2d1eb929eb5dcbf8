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
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	appControllers "github.com/edulink/outreach-admin/internal/app/controllers"
	appMigrations "github.com/edulink/outreach-admin/internal/app/migrations"
	appRepos "github.com/edulink/outreach-admin/internal/app/repositories"
	appRoutes "github.com/edulink/outreach-admin/internal/app/routes"
	appServices "github.com/edulink/outreach-admin/internal/app/services"
	"github.com/edulink/outreach-admin/internal/config"
	"github.com/edulink/outreach-admin/internal/db"
	appMiddleware "github.com/edulink/outreach-admin/internal/middleware"
	pkgAuth "github.com/edulink/outreach-admin/internal/pkg/auth"
	"github.com/edulink/outreach-admin/internal/pkg/filestorage"
	"github.com/edulink/outreach-admin/internal/pkg/helpers"
	"github.com/edulink/outreach-admin/internal/pkg/logger"
	"github.com/edulink/outreach-admin/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService           appServices.AuthService
	SponsorService        appServices.SponsorService
	SchoolService         appServices.SchoolService
	InstructorService     appServices.InstructorService
	ProgramService        appServices.ProgramService
	ScheduleService       appServices.ScheduleService
	ConflictService       appServices.ConflictService
	MatchingService       appServices.MatchingService
	RecommendationService appServices.RecommendationService
	SettlementService     appServices.SettlementService

	AuthController       *appControllers.AuthController
	SponsorController    *appControllers.SponsorController
	SchoolController     *appControllers.SchoolController
	InstructorController *appControllers.InstructorController
	ProgramController    *appControllers.ProgramController
	ScheduleController   *appControllers.ScheduleController
	MatchingController   *appControllers.MatchingController
	SettlementController *appControllers.SettlementController

	AuthMiddleware *appMiddleware.AuthMiddleware
	Repos          *appRepos.Repositories
	JWTService     *pkgAuth.JWTService
	Logger         zerolog.Logger
	FileStorage    *filestorage.LocalStorage
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

// SetupDatabase establishes the database connection and runs migrations.
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
	lgr.Info().Msg("Database connection successfully established.")

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

	lgr.Info().Msg("Database migrations successfully applied.")

	// Create default data (after migrations)
	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		// Log the error but don't fail the startup
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.AdminUserRepository,
		deps.Repos.TokenRepository,
		deps.JWTService,
	)

	deps.SponsorService = appServices.NewSponsorService(deps.Repos.SponsorRepository)
	deps.SchoolService = appServices.NewSchoolService(deps.Repos.SchoolRepository)
	deps.InstructorService = appServices.NewInstructorService(deps.Repos.InstructorRepository)
	deps.ProgramService = appServices.NewProgramService(deps.Repos.ProgramRepository, deps.Repos.SponsorRepository)
	deps.ScheduleService = appServices.NewScheduleService(
		deps.Repos.ScheduleRepository,
		deps.Repos.ProgramRepository,
		deps.Repos.InstructorRepository,
	)
	deps.ConflictService = appServices.NewConflictService(deps.Repos.ScheduleRepository)
	deps.MatchingService = appServices.NewMatchingService(
		deps.Repos.MatchingRepository,
		deps.Repos.ProgramRepository,
		deps.Repos.InstructorRepository,
		deps.Repos.ScheduleRepository,
	)
	deps.RecommendationService = appServices.NewRecommendationService(
		deps.Repos.ProgramRepository,
		deps.Repos.InstructorRepository,
		deps.Repos.MatchingRepository,
		deps.Repos.ScheduleRepository,
	)
	deps.SettlementService = appServices.NewSettlementService(
		deps.Repos.ProgramRepository,
		deps.Repos.SettlementRepository,
		deps.Repos.FileRepository,
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.SponsorController = appControllers.NewSponsorController(deps.SponsorService)
	deps.SchoolController = appControllers.NewSchoolController(deps.SchoolService)
	deps.InstructorController = appControllers.NewInstructorController(deps.InstructorService)
	deps.ProgramController = appControllers.NewProgramController(deps.ProgramService)
	deps.ScheduleController = appControllers.NewScheduleController(deps.ScheduleService, deps.ConflictService)
	deps.MatchingController = appControllers.NewMatchingController(deps.MatchingService, deps.RecommendationService)
	deps.SettlementController = appControllers.NewSettlementController(
		deps.SettlementService,
		deps.Repos.FileRepository,
		deps.FileStorage,
	)

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

	router := gin.Default()

	// Setup Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.SponsorController,
		deps.SchoolController,
		deps.InstructorController,
		deps.ProgramController,
		deps.ScheduleController,
		deps.MatchingController,
		deps.SettlementController,
		deps.AuthMiddleware,
	)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
