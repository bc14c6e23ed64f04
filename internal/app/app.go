package app

import (
	"context"
	"fmt"

	"stylehomes_backend/internal/config"
	"stylehomes_backend/internal/database"
	"stylehomes_backend/internal/email"
	"stylehomes_backend/internal/handlers"
	"stylehomes_backend/internal/logger"
	"stylehomes_backend/internal/middleware"
	"stylehomes_backend/internal/repositories"
	"stylehomes_backend/internal/routes"
	"stylehomes_backend/internal/services"
	"stylehomes_backend/internal/validator"
	"stylehomes_backend/internal/workers"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	cfg, err := config.Load()
	if err != nil {
		// Logger is not initialized yet, so panic is the only channel.
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	logger.Init(cfg.Server.Env)
	logger.Info("logger initialized", "env", cfg.Server.Env)

	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("database unavailable", "error", err)
	}
	logger.Info("database connected")

	if err := database.Migrate(gormDB); err != nil {
		logger.Fatal("failed to run migrations", "error", err)
	}

	sender, err := email.NewSMTPSender(email.Config{
		SMTPHost:     cfg.Email.SMTPHost,
		SMTPPort:     cfg.Email.SMTPPort,
		SMTPUser:     cfg.Email.SMTPUser,
		SMTPPassword: cfg.Email.SMTPPassword,
		FromEmail:    cfg.Email.FromEmail,
		FromName:     cfg.Email.FromName,
	})
	if err != nil {
		logger.Fatal("failed to initialize mail sender", "error", err)
	}

	ginRouter := SetupRouter(context.Background(), cfg, gormDB, sender)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("server startup error", "error", err)
	}
}

// SetupRouter wires repositories, services, handlers and middleware into a
// gin engine. The notification worker is started here and stops when ctx is
// cancelled.
func SetupRouter(ctx context.Context, cfg *config.Config, gormDB *gorm.DB, sender email.Sender) *gin.Engine {
	dispatcher := workers.NewNotificationWorker(64, 2)
	dispatcher.Start(ctx)

	consultationRepo := repositories.NewConsultationRepository()
	testimonialRepo := repositories.NewTestimonialRepository()

	notificationService := services.NewNotificationService(sender, cfg.Email.AdminEmail)
	consultationService := services.NewConsultationService(consultationRepo, notificationService, dispatcher)
	testimonialService := services.NewTestimonialService(testimonialRepo)

	base := handlers.NewBaseHandler(validator.New())
	appHandlers := &handlers.AppHandlers{
		ConsultationHandler: handlers.NewConsultationHandler(base, consultationService),
		TestimonialHandler:  handlers.NewTestimonialHandler(base, testimonialService),
	}

	if cfg.Server.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	ginRouter := gin.New()
	ginRouter.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.CORSMiddleware(cfg.CORS.AllowedOrigins),
		middleware.DBMiddleware(gormDB),
	)

	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}
