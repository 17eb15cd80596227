package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"k9hope_backend/internal/auth"
	"k9hope_backend/internal/chatbot"
	"k9hope_backend/internal/config"
	"k9hope_backend/internal/email"
	"k9hope_backend/internal/handlers"
	"k9hope_backend/internal/logger"
	"k9hope_backend/internal/middleware"
	"k9hope_backend/internal/models"
	"k9hope_backend/internal/repositories"
	"k9hope_backend/internal/routes"
	"k9hope_backend/internal/services"
	"k9hope_backend/internal/storage"
	"k9hope_backend/internal/workers"
	"k9hope_backend/ws"
)

// Run boots the whole application: config, database, services, HTTP
// server and background workers.
func Run() error {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if cfg.Server.Mode == "release" {
		logger.Init("production")
		gin.SetMode(gin.ReleaseMode)
	} else {
		logger.Init("development")
	}

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("get sql db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	logger.Info("database connected", "host", cfg.Database.Host, "name", cfg.Database.Name)

	if err := autoMigrate(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	if err := seedFirstAdmin(db, cfg.FirstAdmin); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	tokens := auth.NewTokenManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenTTL.Std(),
		cfg.JWT.RefreshTokenTTL.Std(),
	)

	store, err := storage.NewStorage(cfg.Storage)
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}

	var emailProvider email.Provider
	if cfg.Email.Enabled {
		emailProvider = email.NewSMTPProvider(cfg.Email)
	} else {
		emailProvider = email.NewMockProvider()
	}

	wsManager := ws.NewManager()
	go wsManager.Run()

	container := buildServices(db, cfg, tokens, store, emailProvider, wsManager)
	appHandlers := handlers.NewAppHandlers(container)

	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.CORSMiddleware(),
		middleware.DBMiddleware(db),
	)
	routes.RegisterRoutes(router, appHandlers, tokens, wsManager)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	startWorkers(ctx, db, cfg)

	addr := cfg.Server.Host + ":" + cfg.Server.Port
	server := &http.Server{Addr: addr, Handler: router}

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.ListenAndServe()
	}()
	logger.Info("server listening", "addr", addr)

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
	}

	// Let in-flight requests drain before exiting.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	logger.Info("shutting down")
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-serverErr; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func buildServices(
	db *gorm.DB,
	cfg *config.Config,
	tokens *auth.TokenManager,
	store storage.Storage,
	emailProvider email.Provider,
	wsManager *ws.Manager,
) *services.ServiceContainer {
	userRepo := repositories.NewUserRepository(db)
	profileRepo := repositories.NewProfileRepository(db)
	requestRepo := repositories.NewBloodRequestRepository(db)
	appointmentRepo := repositories.NewAppointmentRepository(db)
	donationRepo := repositories.NewDonationRepository(db)
	notificationRepo := repositories.NewNotificationRepository(db)
	documentRepo := repositories.NewDocumentRepository(db)

	geminiClient := chatbot.NewGeminiClient(cfg.Chatbot)

	matchingService := services.NewMatchingService(requestRepo, profileRepo, notificationRepo, wsManager)
	notificationService := services.NewNotificationService(notificationRepo, wsManager)

	return &services.ServiceContainer{
		Auth:         services.NewAuthService(userRepo, profileRepo, tokens, cfg.JWT.AccessTokenTTL.Std()),
		Profile:      services.NewProfileService(userRepo, profileRepo),
		Request:      services.NewRequestService(requestRepo, profileRepo, donationRepo, notificationRepo, matchingService),
		Matching:     matchingService,
		Notification: notificationService,
		Appointment:  services.NewAppointmentService(appointmentRepo, userRepo, notificationService, emailProvider),
		Donation:     services.NewDonationService(donationRepo, profileRepo),
		Chat:         services.NewChatService(geminiClient, geminiClient.Configured()),
		Upload:       services.NewUploadService(documentRepo, requestRepo, store),
	}
}

func startWorkers(ctx context.Context, db *gorm.DB, cfg *config.Config) {
	profileRepo := repositories.NewProfileRepository(db)
	requestRepo := repositories.NewBloodRequestRepository(db)
	notificationRepo := repositories.NewNotificationRepository(db)

	eligibilityWorker := workers.NewEligibilityWorker(
		profileRepo, notificationRepo, cfg.Workers.EligibilityInterval.Std())
	requestWorker := workers.NewRequestWorker(
		requestRepo, notificationRepo,
		cfg.Workers.RequestInterval.Std(), cfg.Workers.RequestTTL.Std())

	go eligibilityWorker.Start(ctx)
	go requestWorker.Start(ctx)
}

func autoMigrate(db *gorm.DB) error {
	// uuid_generate_v4 needs the extension.
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return err
	}
	return db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.DonorProfile{},
		&models.PatientProfile{},
		&models.ClinicProfile{},
		&models.OrganisationProfile{},
		&models.BloodRequest{},
		&models.Appointment{},
		&models.Donation{},
		&models.Notification{},
		&models.Document{},
	)
}

// seedFirstAdmin creates the initial admin account when none exists.
// The credential comes from configuration, never from source.
func seedFirstAdmin(db *gorm.DB, cfg config.FirstAdminConfig) error {
	if cfg.LoginID == "" || cfg.Password == "" {
		logger.Warn("first admin seed skipped: credentials not configured")
		return nil
	}

	var count int64
	if err := db.Model(&models.User{}).Where("role = ?", models.UserRoleAdmin).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := auth.HashPassword(cfg.Password)
	if err != nil {
		return err
	}
	admin := &models.User{
		LoginID:      cfg.LoginID,
		PasswordHash: hash,
		Role:         models.UserRoleAdmin,
		Status:       models.UserStatusActive,
		Onboarded:    true,
	}
	if err := db.Create(admin).Error; err != nil {
		return err
	}
	logger.Info("first admin account seeded", "login_id", cfg.LoginID)
	return nil
}
