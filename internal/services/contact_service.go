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

const maxContactAttachments = 5

type ContactService interface {
	Create(db *gorm.DB, req dto.CreateContactRequest, attachments []*multipart.FileHeader) (*models.Contact, error)
	GetByID(db *gorm.DB, id string) (*models.Contact, error)
	List(db *gorm.DB, query dto.ContactListQuery) ([]models.Contact, int64, error)
	Update(db *gorm.DB, id string, req dto.UpdateContactRequest) (*models.Contact, error)
	Delete(db *gorm.DB, id string) error
	SweepDeleted(db *gorm.DB) error
}

type contactService struct {
	contactRepo   repositories.ContactRepository
	notifications NotificationService
	store         storage.Storage
	limits        UploadLimits
}

func NewContactService(contactRepo repositories.ContactRepository, notifications NotificationService, store storage.Storage, limits UploadLimits) ContactService {
	limits.MaxFiles = maxContactAttachments
	return &contactService{
		contactRepo:   contactRepo,
		notifications: notifications,
		store:         store,
		limits:        limits,
	}
}

func (s *contactService) Create(db *gorm.DB, req dto.CreateContactRequest, attachments []*multipart.FileHeader) (*models.Contact, error) {
	ctx := db.Statement.Context
	stored, err := storeFiles(ctx, s.store, "contacts", attachments, s.limits)
	if err != nil {
		return nil, uploadError(err)
	}

	contact := &models.Contact{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Message:     req.Message,
		Attachments: attachmentsFromStored(stored),
		Status:      models.ContactStatusNew,
	}

	if err := s.contactRepo.Create(db, contact); err != nil {
		_ = deleteStoredObjects(ctx, s.store, attachmentKeys(contact.Attachments))
		return nil, apperrors.InternalError(err)
	}

	// Queued, not sent: a broken mail relay must not fail the submission.
	if err := s.notifications.QueueContactNotification(db, contact); err != nil {
		logger.CtxWarn(ctx, "failed to queue contact notification", "contact_id", contact.ID, "error", err)
	}

	return contact, nil
}

// GetByID moves a new contact to read the first time staff opens it.
func (s *contactService) GetByID(db *gorm.DB, id string) (*models.Contact, error) {
	contact, err := s.contactRepo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrContactNotFound) {
			return nil, apperrors.ErrNotFound(err, "contact", "Contact not found")
		}
		return nil, apperrors.InternalError(err)
	}

	if contact.Status == models.ContactStatusNew {
		contact.Status = models.ContactStatusRead
		if err := s.contactRepo.Update(db, contact); err != nil {
			return nil, apperrors.InternalError(err)
		}
	}

	return contact, nil
}

func (s *contactService) List(db *gorm.DB, query dto.ContactListQuery) ([]models.Contact, int64, error) {
	filter := repositories.ContactFilter{
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

	contacts, total, err := s.contactRepo.List(db, filter)
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}
	return contacts, total, nil
}

func (s *contactService) Update(db *gorm.DB, id string, req dto.UpdateContactRequest) (*models.Contact, error) {
	contact, err := s.contactRepo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrContactNotFound) {
			return nil, apperrors.ErrNotFound(err, "contact", "Contact not found")
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Status != nil {
		next := models.ContactStatus(*req.Status)
		if !contact.Status.CanTransitionTo(next) {
			return nil, apperrors.ErrInvalidStatus("contact", "Cannot change contact status from "+string(contact.Status)+" to "+string(next))
		}
		contact.Status = next
	}
	if req.Notes != nil {
		contact.Notes = *req.Notes
	}

	if err := s.contactRepo.Update(db, contact); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return contact, nil
}

func (s *contactService) Delete(db *gorm.DB, id string) error {
	contact, err := s.contactRepo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrContactNotFound) {
			return apperrors.ErrNotFound(err, "contact", "Contact not found")
		}
		return apperrors.InternalError(err)
	}

	if err := s.contactRepo.MarkDeleted(db, id); err != nil {
		return apperrors.InternalError(err)
	}

	ctx := db.Statement.Context
	if err := deleteStoredObjects(ctx, s.store, attachmentKeys(contact.Attachments)); err != nil {
		logger.CtxWarn(ctx, "contact storage sweep failed, row left for cleanup",
			"contact_id", id, "error", err)
		return nil
	}

	if err := s.contactRepo.HardDelete(db, id); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *contactService) SweepDeleted(db *gorm.DB) error {
	contacts, err := s.contactRepo.FindMarkedDeleted(db)
	if err != nil {
		return err
	}

	ctx := db.Statement.Context
	if ctx == nil {
		ctx = context.Background()
	}
	for _, contact := range contacts {
		if err := deleteStoredObjects(ctx, s.store, attachmentKeys(contact.Attachments)); err != nil {
			logger.CtxWarn(ctx, "contact storage sweep retry failed", "contact_id", contact.ID, "error", err)
			continue
		}
		if err := s.contactRepo.HardDelete(db, contact.ID); err != nil {
			logger.CtxWarn(ctx, "failed to remove swept contact row", "contact_id", contact.ID, "error", err)
		}
	}
	return nil
}

func attachmentKeys(attachments []models.Attachment) []string {
	keys := make([]string, 0, len(attachments))
	for _, a := range attachments {
		keys = append(keys, a.StorageID)
	}
	return keys
}
