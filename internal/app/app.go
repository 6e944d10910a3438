package app

import (
	"fmt"
	"time"

	"hustled_backend/internal/auth"
	"hustled_backend/internal/config"
	"hustled_backend/internal/handlers"
	"hustled_backend/internal/logger"
	"hustled_backend/internal/middleware"
	"hustled_backend/internal/models"
	"hustled_backend/internal/repositories"
	"hustled_backend/internal/routes"
	"hustled_backend/internal/services"
	"hustled_backend/internal/validator"
	"hustled_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", "error", err)
	}

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	gormDB, err := OpenDatabase(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	logger.Info("Database connected", "driver", cfg.Database.Driver)

	if err := gormDB.AutoMigrate(&models.User{}, &models.CandidateProfile{}); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// OpenDatabase opens a GORM connection for the configured driver.
// TranslateError is on so unique-constraint violations surface as
// gorm.ErrDuplicatedKey; the repositories rely on that for conflict
// detection.
func OpenDatabase(cfg *config.Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{TranslateError: true}

	switch cfg.Database.Driver {
	case "mysql":
		return gorm.Open(mysql.Open(cfg.Database.DSN), gormCfg)
	case "postgres", "":
		return gorm.Open(postgres.Open(cfg.Database.DSN), gormCfg)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}
}

// SetupRouter builds the gin engine with middleware, services and
// routes wired. Tests call it directly against a test database.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	tokens := auth.NewTokenManager(cfg.JWT.Secret, time.Duration(cfg.JWT.TTL)*time.Minute)

	serviceContainer := initializeServices(cfg, tokens)
	appHandlers := initializeHandlers(cfg, serviceContainer)

	ginRouter := initializeGinRouter(cfg, gormDB)
	routes.RegisterRoutes(ginRouter, appHandlers, tokens)

	return ginRouter
}

func initializeServices(cfg *config.Config, tokens *auth.TokenManager) *services.ServiceContainer {
	userRepo := repositories.NewUserRepository()
	profileRepo := repositories.NewCandidateProfileRepository()

	return &services.ServiceContainer{
		AuthService:             services.NewAuthService(userRepo, tokens),
		CandidateProfileService: services.NewCandidateProfileService(profileRepo, cfg.Auth.AllowBodyUserID),
	}
}

func initializeHandlers(cfg *config.Config, container *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	errHandler := apperrors.NewGinErrorHandler(cfg.Server.Env == "development")
	baseHandler := handlers.NewBaseHandler(customValidator, errHandler)

	return &handlers.AppHandlers{
		AuthHandler:             handlers.NewAuthHandler(baseHandler, container.AuthService),
		CandidateProfileHandler: handlers.NewCandidateProfileHandler(baseHandler, container.CandidateProfileService),
	}
}

func initializeGinRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.CORS))
	router.Use(middleware.DBMiddleware(db))
	return router
}

// seedFirstAdmin creates the initial admin account from config when it
// does not exist yet. Idempotent across restarts.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminUsername := cfg.FirstAdmin.Username
	adminPassword := cfg.FirstAdmin.Password

	if adminUsername == "" || adminPassword == "" {
		logger.Warn("FIRST_ADMIN_USERNAME or FIRST_ADMIN_PASSWORD is not set. Skipping admin seeding.")
		return nil
	}

	var existing models.User
	result := db.Where("username = ?", adminUsername).First(&existing)
	if result.Error == nil {
		logger.Info("Admin user already exists. Skipping creation.", "username", adminUsername)
		return nil
	}
	if !apperrors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", result.Error)
	}

	hashedPassword, err := auth.HashPassword(adminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	newAdmin := &models.User{
		Username:     adminUsername,
		PasswordHash: hashedPassword,
		Email:        cfg.FirstAdmin.Email,
		Role:         models.UserRoleAdmin,
	}

	if err := db.Create(newAdmin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	logger.Info("Created first admin user", "username", adminUsername)
	return nil
}
