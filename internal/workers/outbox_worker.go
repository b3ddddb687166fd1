package workers

import (
	"context"
	"time"

	"landscaping_backend/internal/email"
	"landscaping_backend/internal/logger"
	"landscaping_backend/internal/repositories"

	"gorm.io/gorm"
)

const (
	outboxBatchSize   = 20
	outboxMaxAttempts = 5
)

// OutboxWorker drains pending email_outbox rows on a fixed interval. Each row
// is attempted at most outboxMaxAttempts times before being parked as failed.
type OutboxWorker struct {
	db         *gorm.DB
	outboxRepo repositories.OutboxRepository
	provider   email.Provider
	interval   time.Duration
}

func NewOutboxWorker(db *gorm.DB, outboxRepo repositories.OutboxRepository, provider email.Provider, interval time.Duration) *OutboxWorker {
	return &OutboxWorker{
		db:         db,
		outboxRepo: outboxRepo,
		provider:   provider,
		interval:   interval,
	}
}

// Start runs the drain loop until ctx is cancelled.
func (w *OutboxWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	logger.Info("outbox worker started", "interval", w.interval.String())
	for {
		select {
		case <-ctx.Done():
			logger.Info("outbox worker stopped")
			return
		case <-ticker.C:
			w.Drain(ctx)
		}
	}
}

// Drain sends one batch of pending emails.
func (w *OutboxWorker) Drain(ctx context.Context) {
	db := w.db.WithContext(ctx)

	entries, err := w.outboxRepo.FindPending(db, outboxBatchSize)
	if err != nil {
		logger.CtxError(ctx, "failed to load pending outbox entries", "error", err)
		return
	}

	for _, entry := range entries {
		err := w.provider.Send(entry.To, entry.Subject, entry.HTMLBody)
		if err == nil {
			if err := w.outboxRepo.MarkSent(db, entry.ID, time.Now()); err != nil {
				logger.CtxError(ctx, "failed to mark outbox entry sent", "outbox_id", entry.ID, "error", err)
			}
			continue
		}

		attempts := entry.Attempts + 1
		final := attempts >= outboxMaxAttempts
		if final {
			logger.CtxError(ctx, "outbox entry failed permanently",
				"outbox_id", entry.ID, "to", entry.To, "attempts", attempts, "error", err)
		} else {
			logger.CtxWarn(ctx, "outbox delivery attempt failed",
				"outbox_id", entry.ID, "attempts", attempts, "error", err)
		}
		if err := w.outboxRepo.MarkAttemptFailed(db, entry.ID, attempts, err.Error(), final); err != nil {
			logger.CtxError(ctx, "failed to record outbox attempt", "outbox_id", entry.ID, "error", err)
		}
	}
}
