package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"start-academy.backend/internal/config"
	"start-academy.backend/internal/infrastructure/email"
	"start-academy.backend/internal/infrastructure/repositories"
	"start-academy.backend/internal/interfaces/http/handlers"
	"start-academy.backend/internal/interfaces/http/middleware"
	"start-academy.backend/internal/usecases"
	"start-academy.backend/pkg/jwt"
	"start-academy.backend/pkg/logger"
	"start-academy.backend/pkg/redis"
)

const (
	loginMaxAttempts = 5
	loginWindow      = 15 * time.Minute
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
	runServer = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB  = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
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
	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	// Set Gin mode
	if cfg.Server.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database using GORM
	db, err := openDB(cfg.Database.URL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("⚠️ Database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("✅ Connected to PostgreSQL via GORM")
	}

	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.Expiry)

	// Initialize repositories
	codeRepo := repositories.NewVerificationCodeRepository(db)
	userRepo := repositories.NewUserRepository(db)
	applicationRepo := repositories.NewApplicationRepository(db)

	// Initialize mailer (nil when unconfigured; usecases fall back gracefully)
	var mailer usecases.Mailer
	if cfg.Email.ResendAPIKey != "" {
		mailer = email.NewResendMailer(cfg.Email.ResendAPIKey, cfg.Email.FromEmail, cfg.Email.AdminEmail)
	} else {
		log.Println("⚠️ RESEND_API_KEY not set: email delivery disabled")
	}

	// Initialize usecases
	verificationUsecase := usecases.NewVerificationUsecase(codeRepo, userRepo, mailer, cfg.Server.IsProduction())
	applicationUsecase := usecases.NewApplicationUsecase(applicationRepo, mailer)
	admissionUsecase := usecases.NewAdmissionUsecase(applicationRepo, mailer)
	authUsecase := usecases.NewAuthUsecase(userRepo, jwtService, cfg.Admin.Username, cfg.Admin.PasswordHash)
	subscriptionUsecase := usecases.NewSubscriptionUsecase(mailer)

	loginLimiter := redis.NewLoginLimiter(loginMaxAttempts, loginWindow)

	// Initialize handlers
	verificationHandler := handlers.NewVerificationHandler(verificationUsecase)
	applicationHandler := handlers.NewApplicationHandler(applicationUsecase)
	authHandler := handlers.NewAuthHandler(authUsecase)
	subscriptionHandler := handlers.NewSubscriptionHandler(subscriptionUsecase)
	adminHandler := handlers.NewAdminHandler(authUsecase, applicationUsecase, admissionUsecase, loginLimiter)

	adminAuthMiddleware := middleware.AdminAuthMiddleware(jwtService)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerMetricsRoute(r)

	deps := routeDeps{
		verificationHandler: verificationHandler,
		applicationHandler:  applicationHandler,
		authHandler:         authHandler,
		subscriptionHandler: subscriptionHandler,
		adminHandler:        adminHandler,
		adminAuthMiddleware: adminAuthMiddleware,
	}
	registerRootRoutes(r, deps)
	registerAPIV1Routes(r, deps)

	// Print all registered routes for debugging
	log.Println("📋 Registered Routes:")
	for _, route := range r.Routes() {
		log.Printf("   %s %s", route.Method, route.Path)
	}

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("🛑 Shutting down server...")
		os.Exit(0)
	}()

	// Start server
	log.Printf("🚀 Start Academy Backend starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api/v1", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
