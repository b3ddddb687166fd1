package workers

import (
	"context"
	"time"

	"landscaping_backend/internal/logger"

	"gorm.io/gorm"
)

// Sweeper retries the storage sweep for rows stuck in the pending-deletion
// state.
type Sweeper interface {
	SweepDeleted(db *gorm.DB) error
}

// CleanupWorker periodically finishes two-phase deletes whose object-store
// sweep failed during the request.
type CleanupWorker struct {
	db       *gorm.DB
	sweepers []Sweeper
	interval time.Duration
}

func NewCleanupWorker(db *gorm.DB, interval time.Duration, sweepers ...Sweeper) *CleanupWorker {
	return &CleanupWorker{db: db, sweepers: sweepers, interval: interval}
}

func (w *CleanupWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	logger.Info("cleanup worker started", "interval", w.interval.String())
	for {
		select {
		case <-ctx.Done():
			logger.Info("cleanup worker stopped")
			return
		case <-ticker.C:
			w.Run(ctx)
		}
	}
}

// Run executes one sweep pass over every registered entity.
func (w *CleanupWorker) Run(ctx context.Context) {
	db := w.db.WithContext(ctx)
	for _, sweeper := range w.sweepers {
		if err := sweeper.SweepDeleted(db); err != nil {
			logger.CtxError(ctx, "cleanup sweep failed", "error", err)
		}
	}
}
