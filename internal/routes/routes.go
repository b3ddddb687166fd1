package routes

import (
	"landscaping_backend/internal/config"
	"landscaping_backend/internal/handlers"
	"landscaping_backend/internal/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Health      *handlers.HealthHandler
	Auth        *handlers.AuthHandler
	User        *handlers.UserHandler
	Category    *handlers.CategoryHandler
	Project     *handlers.ProjectHandler
	Gallery     *handlers.GalleryHandler
	Contact     *handlers.ContactHandler
	Quote       *handlers.QuoteHandler
	Testimonial *handlers.TestimonialHandler
}

// SetupRouter builds the engine with the shared middleware chain and mounts
// every handler under /api.
func SetupRouter(cfg *config.Config, db *gorm.DB, h Handlers, staticDir string) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.CORS.Origin))
	router.Use(middleware.DBMiddleware(db))

	if staticDir != "" {
		// local storage backend serves its uploads directly
		router.Static("/uploads", staticDir)
	}

	api := router.Group("/api")
	h.Health.RegisterRoutes(api)
	h.Auth.RegisterRoutes(api)
	h.User.RegisterRoutes(api)
	h.Category.RegisterRoutes(api)
	h.Project.RegisterRoutes(api)
	h.Gallery.RegisterRoutes(api)
	h.Contact.RegisterRoutes(api)
	h.Quote.RegisterRoutes(api)
	h.Testimonial.RegisterRoutes(api)

	return router
}
