package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"ledger-recovery.backend/internal/config"
	"ledger-recovery.backend/internal/domain/entities"
	domainerrors "ledger-recovery.backend/internal/domain/errors"
	drepositories "ledger-recovery.backend/internal/domain/repositories"
	"ledger-recovery.backend/internal/infrastructure/models"
	"ledger-recovery.backend/internal/infrastructure/repositories"
	"ledger-recovery.backend/internal/interfaces/http/handlers"
	"ledger-recovery.backend/internal/interfaces/http/middleware"
	"ledger-recovery.backend/internal/usecases"
	"ledger-recovery.backend/pkg/crypto"
	"ledger-recovery.backend/pkg/jwt"
	"ledger-recovery.backend/pkg/logger"
	"ledger-recovery.backend/pkg/metrics"
	"ledger-recovery.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	newSessionStore = redis.NewSessionStore
	runServer       = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB        = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := loadCfg()

	// Initialize Logger
	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Initialize Redis
	if err := initRedis(cfg.Redis.URL, cfg.Redis.PASSWORD); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	// Set Gin mode
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database using GORM
	dsn := cfg.Database.URL()
	db, err := openDB(dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("Database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("Connected to PostgreSQL via GORM")
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Client{},
		&models.AdminNote{},
		&models.PaymentMessage{},
		&models.RecoveryRequest{},
		&models.AuditLog{},
		&models.KYCDocument{},
		&models.Setting{},
	); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.Session.Secret, cfg.Session.Expiry)

	// Initialize Session Store
	sessionStore, err := newSessionStore(cfg.Security.SessionEncryptionKey)
	if err != nil {
		return fmt.Errorf("failed to initialize session store: %w", err)
	}

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	clientRepo := repositories.NewClientRepository(db)
	recoveryRepo := repositories.NewRecoveryRequestRepository(db)
	auditRepo := repositories.NewAuditLogRepository(db)
	kycRepo := repositories.NewKYCDocumentRepository(db)
	settingRepo := repositories.NewSettingRepository(db)

	// Initialize usecases
	authUsecase := usecases.NewAuthUsecase(userRepo, clientRepo, auditRepo, jwtService, sessionStore)
	adminUsecase := usecases.NewAdminUsecase(userRepo, clientRepo, recoveryRepo, auditRepo, kycRepo, settingRepo, sessionStore)
	sellerUsecase := usecases.NewSellerUsecase(userRepo, clientRepo, auditRepo)
	clientUsecase := usecases.NewClientUsecase(clientRepo, settingRepo)
	recoveryUsecase := usecases.NewRecoveryUsecase(recoveryRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authUsecase)
	adminHandler := handlers.NewAdminHandler(adminUsecase)
	sellerHandler := handlers.NewSellerHandler(sellerUsecase)
	clientHandler := handlers.NewClientHandler(clientUsecase)
	recoveryHandler := handlers.NewRecoveryHandler(recoveryUsecase)

	// Seed demo accounts
	if cfg.Seed.DemoData {
		if err := seedDemoData(context.Background(), userRepo, clientRepo, settingRepo); err != nil {
			logger.Error(context.Background(), "Failed to seed demo data", zap.Error(err))
		}
	}

	// Initialize metrics registry
	registry := prometheus.NewRegistry()
	metrics.Register(registry)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	applyCORSMiddleware(r)
	registerRootRoute(r)
	registerHealthRoute(r)
	r.GET("/metrics", gin.WrapH(metrics.Handler(registry)))
	registerAPIRoutes(r, routeDeps{
		authHandler:     authHandler,
		adminHandler:    adminHandler,
		sellerHandler:   sellerHandler,
		clientHandler:   clientHandler,
		recoveryHandler: recoveryHandler,
		authMiddleware:  middleware.AuthMiddleware(authUsecase),
	})

	// Start server
	log.Printf("Ledger Recovery backend starting on port %s", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

// seedDemoData provisions the demo admin, client and seller accounts on
// first boot. Existing accounts are left untouched.
func seedDemoData(
	ctx context.Context,
	userRepo drepositories.UserRepository,
	clientRepo drepositories.ClientRepository,
	settingRepo drepositories.SettingRepository,
) error {
	if _, err := ensureUser(ctx, userRepo, "admin@ledger.com", "admin123", entities.UserRoleAdmin); err != nil {
		return err
	}

	seller, err := ensureUser(ctx, userRepo, "vendeur@demo.com", "vendeur123", entities.UserRoleSeller)
	if err != nil {
		return err
	}

	client, err := ensureUser(ctx, userRepo, "client@demo.com", "demo123", entities.UserRoleClient)
	if err != nil {
		return err
	}

	if _, err := clientRepo.GetByUserID(ctx, client.ID); errors.Is(err, domainerrors.ErrNotFound) {
		record := &entities.ClientRecord{
			UserID:           client.ID,
			Email:            client.Email,
			Balances:         entities.Balances{"btc": 0.5, "eth": 2.3, "usdt": 1500},
			RiskLevel:        entities.RiskLevelLow,
			IsActive:         true,
			KYCCompleted:     true,
			OnboardingDone:   true,
			AssignedSellerID: null.StringFrom(seller.ID.String()),
			TaxStatus:        entities.TaxStatusUnpaid,
		}
		if err := clientRepo.Create(ctx, record); err != nil {
			return err
		}
	} else if err != nil {
		return err
	}

	if _, err := settingRepo.Get(ctx, entities.SettingKeyGlobalTax); errors.Is(err, domainerrors.ErrNotFound) {
		if err := settingRepo.Set(ctx, entities.SettingKeyGlobalTax, "15"); err != nil {
			return err
		}
	} else if err != nil {
		return err
	}

	return nil
}

func ensureUser(ctx context.Context, userRepo drepositories.UserRepository, email, password string, role entities.UserRole) (*entities.User, error) {
	user, err := userRepo.GetByEmail(ctx, email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	hash, err := crypto.HashPassword(password)
	if err != nil {
		return nil, err
	}
	user = &entities.User{
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}
	if err := userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
