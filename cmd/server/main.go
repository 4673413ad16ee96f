package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"card-admin.backend/internal/config"
	"card-admin.backend/internal/infrastructure/models"
	"card-admin.backend/internal/infrastructure/repositories"
	"card-admin.backend/internal/interfaces/http/handlers"
	"card-admin.backend/internal/usecases"
	"card-admin.backend/pkg/jwt"
	"card-admin.backend/pkg/logger"
	"card-admin.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(cfg config.DatabaseConfig) (*gorm.DB, error) {
		if cfg.Driver == "postgres" {
			return gorm.Open(postgres.Open(cfg.URL()), &gorm.Config{})
		}
		return gorm.Open(sqlite.Open(cfg.SQLitePath), &gorm.Config{})
	}
	runServer = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB  = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()

	initLog(cfg.Server.Env)
	ctx := context.Background()
	logger.Info(ctx, "Logger initialized", zap.String("env", cfg.Server.Env))

	if cfg.Redis.Enabled {
		if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
			return fmt.Errorf("failed to initialize redis: %w", err)
		}
		logger.Info(ctx, "Redis initialized")
	}

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := openDB(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := db.AutoMigrate(
		&models.User{},
		&models.AccessKey{},
		&models.UsageLog{},
		&models.LiveCard{},
	); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	logger.Info(ctx, "Database ready", zap.String("driver", cfg.Database.Driver))

	jwtService := jwt.NewJWTService(
		cfg.JWT.Secret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	keyRepo := repositories.NewAccessKeyRepository(db)
	logRepo := repositories.NewUsageLogRepository(db)
	userRepo := repositories.NewUserRepository(db)
	cardRepo := repositories.NewLiveCardRepository(db)
	uow := repositories.NewUnitOfWork(db)

	notifier := usecases.NewHTTPWebhookNotifier(cfg.Webhook.Timeout)

	registryUsecase := usecases.NewKeyRegistryUsecase(keyRepo, logRepo, uow)
	ledgerUsecase := usecases.NewCreditLedgerUsecase(keyRepo, logRepo, uow, notifier)
	auditUsecase := usecases.NewAuditLogUsecase(logRepo)
	authUsecase := usecases.NewAuthUsecase(userRepo, logRepo, uow, jwtService)
	cardUsecase := usecases.NewLiveCardUsecase(cardRepo)

	if err := authUsecase.EnsureBootstrapAdmin(ctx, cfg.Bootstrap.AdminUsername, cfg.Bootstrap.AdminPassword); err != nil {
		return fmt.Errorf("failed to ensure bootstrap admin: %w", err)
	}

	authHandler := handlers.NewAuthHandler(authUsecase)
	keyHandler := handlers.NewKeyHandler(registryUsecase, ledgerUsecase)
	logHandler := handlers.NewLogHandler(auditUsecase)
	cardHandler := handlers.NewLiveCardHandler(cardUsecase)

	r := newRouter(routeDeps{
		authHandler:        authHandler,
		keyHandler:         keyHandler,
		logHandler:         logHandler,
		cardHandler:        cardHandler,
		jwtService:         jwtService,
		idempotencyEnabled: cfg.Redis.Enabled,
	})

	logger.Info(ctx, "Server starting", zap.String("port", cfg.Server.Port))
	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
