package repositories

import (
	"errors"
	"time"

	"landscaping_backend/internal/models"

	"gorm.io/gorm"
)

var ErrOutboxEntryNotFound = errors.New("outbox entry not found")

type OutboxRepository interface {
	Enqueue(db *gorm.DB, entry *models.EmailOutbox) error
	FindPending(db *gorm.DB, limit int) ([]models.EmailOutbox, error)
	MarkSent(db *gorm.DB, id string, sentAt time.Time) error
	MarkAttemptFailed(db *gorm.DB, id string, attempts int, lastError string, final bool) error
}

type outboxRepository struct{}

func NewOutboxRepository() OutboxRepository {
	return &outboxRepository{}
}

func (r *outboxRepository) Enqueue(db *gorm.DB, entry *models.EmailOutbox) error {
	return db.Create(entry).Error
}

func (r *outboxRepository) FindPending(db *gorm.DB, limit int) ([]models.EmailOutbox, error) {
	var entries []models.EmailOutbox
	err := db.Where("status = ?", models.OutboxStatusPending).
		Order("created_at asc").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}

func (r *outboxRepository) MarkSent(db *gorm.DB, id string, sentAt time.Time) error {
	result := db.Model(&models.EmailOutbox{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":  models.OutboxStatusSent,
			"sent_at": sentAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrOutboxEntryNotFound
	}
	return nil
}

// MarkAttemptFailed records a delivery failure. When final is true the entry
// leaves the pending pool for good.
func (r *outboxRepository) MarkAttemptFailed(db *gorm.DB, id string, attempts int, lastError string, final bool) error {
	status := models.OutboxStatusPending
	if final {
		status = models.OutboxStatusFailed
	}
	result := db.Model(&models.EmailOutbox{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"attempts":   attempts,
			"last_error": lastError,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrOutboxEntryNotFound
	}
	return nil
}
