package services

import (
	"context"
	"errors"
	"mime/multipart"

	"landscaping_backend/internal/dto"
	"landscaping_backend/internal/logger"
	"landscaping_backend/internal/models"
	"landscaping_backend/internal/repositories"
	"landscaping_backend/internal/storage"
	"landscaping_backend/pkg/apperrors"

	"gorm.io/gorm"
)

const maxQuoteAttachments = 5

type QuoteService interface {
	Create(db *gorm.DB, req dto.CreateQuoteRequest, attachments []*multipart.FileHeader) (*models.Quote, error)
	GetByID(db *gorm.DB, id string) (*models.Quote, error)
	List(db *gorm.DB, query dto.QuoteListQuery) ([]models.Quote, int64, error)
	Stats(db *gorm.DB) (*dto.QuoteStats, error)
	Update(db *gorm.DB, id string, req dto.UpdateQuoteRequest) (*models.Quote, error)
	Delete(db *gorm.DB, id string) error
	SweepDeleted(db *gorm.DB) error
}

type quoteService struct {
	quoteRepo     repositories.QuoteRepository
	userRepo      repositories.UserRepository
	notifications NotificationService
	store         storage.Storage
	limits        UploadLimits
}

func NewQuoteService(quoteRepo repositories.QuoteRepository, userRepo repositories.UserRepository, notifications NotificationService, store storage.Storage, limits UploadLimits) QuoteService {
	limits.MaxFiles = maxQuoteAttachments
	return &quoteService{
		quoteRepo:     quoteRepo,
		userRepo:      userRepo,
		notifications: notifications,
		store:         store,
		limits:        limits,
	}
}

func (s *quoteService) Create(db *gorm.DB, req dto.CreateQuoteRequest, attachments []*multipart.FileHeader) (*models.Quote, error) {
	ctx := db.Statement.Context
	stored, err := storeFiles(ctx, s.store, "quotes", attachments, s.limits)
	if err != nil {
		return nil, uploadError(err)
	}

	quote := &models.Quote{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Address:     req.Address,
		ServiceType: models.ServiceType(req.ServiceType),
		Description: req.Description,
		Budget:      models.BudgetRange(req.Budget),
		Timeline:    models.Timeline(req.Timeline),
		Attachments: attachmentsFromStored(stored),
		Status:      models.QuoteStatusNew,
	}

	if err := s.quoteRepo.Create(db, quote); err != nil {
		_ = deleteStoredObjects(ctx, s.store, attachmentKeys(quote.Attachments))
		return nil, apperrors.InternalError(err)
	}

	if err := s.notifications.QueueQuoteNotifications(db, quote); err != nil {
		logger.CtxWarn(ctx, "failed to queue quote notifications", "quote_id", quote.ID, "error", err)
	}

	return quote, nil
}

func (s *quoteService) GetByID(db *gorm.DB, id string) (*models.Quote, error) {
	quote, err := s.quoteRepo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrQuoteNotFound) {
			return nil, apperrors.ErrNotFound(err, "quote", "Quote request not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return quote, nil
}

func (s *quoteService) List(db *gorm.DB, query dto.QuoteListQuery) ([]models.Quote, int64, error) {
	filter := repositories.QuoteFilter{
		Status: query.Status,
		Page:   query.Page,
		Limit:  query.Limit,
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}

	quotes, total, err := s.quoteRepo.List(db, filter)
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}
	return quotes, total, nil
}

func (s *quoteService) Stats(db *gorm.DB) (*dto.QuoteStats, error) {
	counts, err := s.quoteRepo.CountByStatus(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	stats := &dto.QuoteStats{ByStatus: counts}
	for _, count := range counts {
		stats.Total += count
	}
	return stats, nil
}

func (s *quoteService) Update(db *gorm.DB, id string, req dto.UpdateQuoteRequest) (*models.Quote, error) {
	quote, err := s.GetByID(db, id)
	if err != nil {
		return nil, err
	}

	if req.Status != nil {
		next := models.QuoteStatus(*req.Status)
		if !quote.Status.CanTransitionTo(next) {
			return nil, apperrors.ErrInvalidStatus("quote", "Cannot change quote status from "+string(quote.Status)+" to "+string(next))
		}
		quote.Status = next
	}
	if req.QuotedAmount != nil {
		quote.QuotedAmount = req.QuotedAmount
	}
	if req.Notes != nil {
		quote.Notes = *req.Notes
	}
	if req.AssignedTo != nil {
		if *req.AssignedTo == "" {
			quote.AssignedToID = nil
			quote.AssignedTo = nil
		} else {
			if _, err := s.userRepo.FindByID(db, *req.AssignedTo); err != nil {
				if errors.Is(err, repositories.ErrUserNotFound) {
					return nil, apperrors.NewBadRequestError("Assigned user does not exist")
				}
				return nil, apperrors.InternalError(err)
			}
			quote.AssignedToID = req.AssignedTo
			quote.AssignedTo = nil
		}
	}

	if err := s.quoteRepo.Update(db, quote); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return s.GetByID(db, quote.ID)
}

func (s *quoteService) Delete(db *gorm.DB, id string) error {
	quote, err := s.GetByID(db, id)
	if err != nil {
		return err
	}

	if err := s.quoteRepo.MarkDeleted(db, id); err != nil {
		if errors.Is(err, repositories.ErrQuoteNotFound) {
			return apperrors.ErrNotFound(err, "quote", "Quote request not found")
		}
		return apperrors.InternalError(err)
	}

	ctx := db.Statement.Context
	if err := deleteStoredObjects(ctx, s.store, attachmentKeys(quote.Attachments)); err != nil {
		logger.CtxWarn(ctx, "quote storage sweep failed, row left for cleanup",
			"quote_id", id, "error", err)
		return nil
	}

	if err := s.quoteRepo.HardDelete(db, id); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *quoteService) SweepDeleted(db *gorm.DB) error {
	quotes, err := s.quoteRepo.FindMarkedDeleted(db)
	if err != nil {
		return err
	}

	ctx := db.Statement.Context
	if ctx == nil {
		ctx = context.Background()
	}
	for _, quote := range quotes {
		if err := deleteStoredObjects(ctx, s.store, attachmentKeys(quote.Attachments)); err != nil {
			logger.CtxWarn(ctx, "quote storage sweep retry failed", "quote_id", quote.ID, "error", err)
			continue
		}
		if err := s.quoteRepo.HardDelete(db, quote.ID); err != nil {
			logger.CtxWarn(ctx, "failed to remove swept quote row", "quote_id", quote.ID, "error", err)
		}
	}
	return nil
}
