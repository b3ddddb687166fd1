package app

import (
	"context"
	"fmt"
	"time"

	"landscaping_backend/internal/config"
	"landscaping_backend/internal/email"
	"landscaping_backend/internal/handlers"
	"landscaping_backend/internal/logger"
	"landscaping_backend/internal/models"
	"landscaping_backend/internal/repositories"
	"landscaping_backend/internal/routes"
	"landscaping_backend/internal/services"
	"landscaping_backend/internal/storage"
	"landscaping_backend/internal/validator"
	"landscaping_backend/internal/workers"
	"landscaping_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	outboxInterval  = 30 * time.Second
	cleanupInterval = 10 * time.Minute
)

// App owns the wired application: database, router and background workers.
type App struct {
	Router *gin.Engine
	DB     *gorm.DB

	outboxWorker  *workers.OutboxWorker
	cleanupWorker *workers.CleanupWorker
	cancel        context.CancelFunc
}

// New loads configuration and wires every layer together.
func New() (*App, error) {
	config.LoadConfig()
	cfg := config.GetConfig()

	logger.Init(cfg.Server.Env)
	apperrors.SetDebug(cfg.Server.Env != "production")

	db, err := openDatabase(cfg)
	if err != nil {
		return nil, err
	}

	store, err := storage.NewStorage(storage.Config{
		Type:      cfg.Storage.Type,
		BasePath:  cfg.Storage.BasePath,
		BaseURL:   cfg.Storage.BaseURL,
		Bucket:    cfg.Storage.Bucket,
		Region:    cfg.Storage.Region,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Endpoint:  cfg.Storage.Endpoint,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	templates, err := email.NewTemplateManager()
	if err != nil {
		return nil, fmt.Errorf("failed to load email templates: %w", err)
	}

	sender, err := email.NewGomailSender(email.Config{
		SMTPHost:     cfg.Email.SMTPHost,
		SMTPPort:     cfg.Email.SMTPPort,
		SMTPUsername: cfg.Email.SMTPUsername,
		SMTPPassword: cfg.Email.SMTPPassword,
		FromEmail:    cfg.Email.FromEmail,
		FromName:     cfg.Email.FromName,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize email sender: %w", err)
	}

	limits := services.UploadLimits{
		MaxSize:      cfg.Upload.MaxSize,
		AllowedTypes: cfg.Upload.AllowedTypes,
	}

	userRepo := repositories.NewUserRepository()
	categoryRepo := repositories.NewCategoryRepository()
	projectRepo := repositories.NewProjectRepository()
	galleryRepo := repositories.NewGalleryRepository()
	contactRepo := repositories.NewContactRepository()
	quoteRepo := repositories.NewQuoteRepository()
	testimonialRepo := repositories.NewTestimonialRepository()
	outboxRepo := repositories.NewOutboxRepository()

	notifications := services.NewNotificationService(outboxRepo, templates, cfg.Email.AdminEmail, cfg.Email.FromName)

	authService := services.NewAuthService(userRepo)
	userService := services.NewUserService(userRepo)
	categoryService := services.NewCategoryService(categoryRepo, projectRepo)
	projectService := services.NewProjectService(projectRepo, categoryRepo, store, limits)
	galleryService := services.NewGalleryService(galleryRepo, store, limits)
	contactService := services.NewContactService(contactRepo, notifications, store, limits)
	quoteService := services.NewQuoteService(quoteRepo, userRepo, notifications, store, limits)
	testimonialService := services.NewTestimonialService(testimonialRepo)

	if err := seed(db, cfg, userRepo, categoryRepo); err != nil {
		return nil, fmt.Errorf("failed to seed database: %w", err)
	}

	validate := validator.New()
	base := handlers.NewBaseHandler(validate)

	staticDir := ""
	if local, ok := store.(*storage.LocalStorage); ok {
		staticDir = local.BasePath()
	}

	router := routes.SetupRouter(cfg, db, routes.Handlers{
		Health:      handlers.NewHealthHandler(cfg.Server.Env),
		Auth:        handlers.NewAuthHandler(base, authService),
		User:        handlers.NewUserHandler(base, userService),
		Category:    handlers.NewCategoryHandler(base, categoryService),
		Project:     handlers.NewProjectHandler(base, projectService),
		Gallery:     handlers.NewGalleryHandler(base, galleryService),
		Contact:     handlers.NewContactHandler(base, contactService),
		Quote:       handlers.NewQuoteHandler(base, quoteService),
		Testimonial: handlers.NewTestimonialHandler(base, testimonialService),
	}, staticDir)

	return &App{
		Router:        router,
		DB:            db,
		outboxWorker:  workers.NewOutboxWorker(db, outboxRepo, sender, outboxInterval),
		cleanupWorker: workers.NewCleanupWorker(db, cleanupInterval, projectService, galleryService, contactService, quoteService),
	}, nil
}

// StartWorkers launches the background loops.
func (a *App) StartWorkers() {
	ctx, cancel := context.WithCancel(context.Background())
	a.cancel = cancel
	go a.outboxWorker.Start(ctx)
	go a.cleanupWorker.Start(ctx)
}

// StopWorkers signals the background loops to exit.
func (a *App) StopWorkers() {
	if a.cancel != nil {
		a.cancel()
	}
}

// Addr returns the configured listen address.
func (a *App) Addr() string {
	cfg := config.GetConfig()
	return fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
}

func openDatabase(cfg *config.Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	}

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), gormCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Project{},
		&models.GalleryItem{},
		&models.Contact{},
		&models.Quote{},
		&models.Testimonial{},
		&models.EmailOutbox{},
	); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}
