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

	_ "github.com/yigit/courseplan/docs" // Import generated swagger docs
	appCatalog "github.com/yigit/courseplan/internal/app/catalog"
	appControllers "github.com/yigit/courseplan/internal/app/controllers"
	appMigrations "github.com/yigit/courseplan/internal/app/migrations"
	appPlanner "github.com/yigit/courseplan/internal/app/planner"
	appRepos "github.com/yigit/courseplan/internal/app/repositories"
	"github.com/yigit/courseplan/internal/app/requirements"
	appRoutes "github.com/yigit/courseplan/internal/app/routes"
	appServices "github.com/yigit/courseplan/internal/app/services"
	"github.com/yigit/courseplan/internal/config"
	"github.com/yigit/courseplan/internal/db"
	appMiddleware "github.com/yigit/courseplan/internal/middleware"
	pkgAuth "github.com/yigit/courseplan/internal/pkg/auth"
	"github.com/yigit/courseplan/internal/pkg/helpers"
	"github.com/yigit/courseplan/internal/pkg/logger"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Catalog           *appCatalog.Catalog
	Resolver          *requirements.Resolver
	Validator         *appPlanner.Validator
	AuthService       *appServices.AuthService
	CatalogService    *appServices.CatalogService
	PlanService       *appServices.PlanService
	AuthController    *appControllers.AuthController
	CatalogController *appControllers.CatalogController
	PlanController    *appControllers.PlanController
	AuthMiddleware    *appMiddleware.AuthMiddleware
	Repos             *appRepos.Repositories
	JWTService        *pkgAuth.JWTService
	Logger            zerolog.Logger
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

	return dbPool, nil
}

// LoadCatalog loads the course catalog and warms up the requirement resolver.
// Resolving every courseset at startup fills the resolver cache and surfaces
// data problems (cycles, malformed expressions) before the first request.
func LoadCatalog(cfg *config.Config, lgr zerolog.Logger) (*appCatalog.Catalog, *requirements.Resolver, error) {
	lgr.Info().Str("path", cfg.Catalog.Path).Msg("Loading course catalog...")

	cat, err := appCatalog.Load(cfg.Catalog.Path, lgr)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to load course catalog")
		return nil, nil, err
	}

	resolver := requirements.NewResolver(cat, lgr)

	diagnosticCount := 0
	for _, id := range cat.CoursesetIDs() {
		_, diags := resolver.Resolve(id)
		diagnosticCount += len(diags)
	}

	lgr.Info().
		Int("courses", cat.Len()).
		Int("coursesets", len(cat.CoursesetIDs())).
		Int("diagnostics", diagnosticCount).
		Msg("Course catalog loaded")

	return cat, resolver, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, cat *appCatalog.Catalog, resolver *requirements.Resolver, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Catalog:  cat,
		Resolver: resolver,
		Logger:   lgr,
	}

	deps.Repos = appRepos.NewRepositories(dbPool)
	deps.Validator = appPlanner.NewValidator(resolver)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.UserRepository,
		deps.Repos.TokenRepository,
		deps.JWTService,
		lgr,
	)
	deps.CatalogService = appServices.NewCatalogService(cat, resolver, lgr)
	deps.PlanService = appServices.NewPlanService(
		deps.Repos.PlanRepository,
		cat,
		deps.Validator,
		cfg.Planner.Semesters,
		cfg.Planner.SlotsPerSemester,
		lgr,
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, deps.Logger)
	deps.CatalogController = appControllers.NewCatalogController(deps.CatalogService, deps.Logger)
	deps.PlanController = appControllers.NewPlanController(deps.PlanService, deps.Logger)

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
	router.Use(appMiddleware.RequestLogger(lgr))
	router.Use(gin.Recovery())

	// Setup Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	// Setup API routes using the dependencies
	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.CatalogController,
		deps.PlanController,
		deps.AuthMiddleware,
	)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
