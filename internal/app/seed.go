package app

import (
	"landscaping_backend/internal/auth"
	"landscaping_backend/internal/config"
	"landscaping_backend/internal/logger"
	"landscaping_backend/internal/models"
	"landscaping_backend/internal/repositories"

	"gorm.io/gorm"
)

// defaultCategories are the service categories every fresh install starts
// with.
var defaultCategories = []models.Category{
	{Name: "Diseño de Jardines", Description: "Diseño y planificación de jardines residenciales y comerciales", Icon: "flower"},
	{Name: "Mantenimiento", Description: "Mantenimiento integral de áreas verdes", Icon: "scissors"},
	{Name: "Riego Automático", Description: "Instalación de sistemas de riego automatizado", Icon: "droplet"},
	{Name: "Paisajismo", Description: "Proyectos de paisajismo y arquitectura exterior", Icon: "mountain"},
	{Name: "Poda de Árboles", Description: "Poda y cuidado profesional de árboles", Icon: "tree"},
	{Name: "Césped y Pasto", Description: "Instalación y cuidado de césped natural y sintético", Icon: "leaf"},
}

// seed bootstraps the admin and worker accounts plus the default categories.
// Runs only against an empty users table so existing installs are untouched.
func seed(db *gorm.DB, cfg *config.Config, userRepo repositories.UserRepository, categoryRepo repositories.CategoryRepository) error {
	count, err := userRepo.Count(db)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	adminHash, err := auth.HashPassword(cfg.Seed.AdminPassword)
	if err != nil {
		return err
	}
	workerHash, err := auth.HashPassword(cfg.Seed.WorkerPassword)
	if err != nil {
		return err
	}

	users := []models.User{
		{Name: cfg.Seed.AdminName, Email: cfg.Seed.AdminEmail, PasswordHash: adminHash, Role: models.UserRoleAdmin},
		{Name: cfg.Seed.WorkerName, Email: cfg.Seed.WorkerEmail, PasswordHash: workerHash, Role: models.UserRoleWorker},
	}
	for i := range users {
		if err := userRepo.Create(db, &users[i]); err != nil {
			return err
		}
	}

	for _, category := range defaultCategories {
		category.Slug = models.CategorySlug(category.Name)
		category.IsActive = true
		if err := categoryRepo.Create(db, &category); err != nil {
			return err
		}
	}

	logger.Info("database seeded", "users", len(users), "categories", len(defaultCategories))
	return nil
}
