package services

import (
	"time"

	"landscaping_backend/internal/email"
	"landscaping_backend/internal/models"
	"landscaping_backend/internal/repositories"

	"gorm.io/gorm"
)

// NotificationService renders transactional emails and queues them on the
// outbox. Nothing here talks to SMTP; the outbox worker does delivery.
type NotificationService interface {
	QueueContactNotification(db *gorm.DB, contact *models.Contact) error
	QueueQuoteNotifications(db *gorm.DB, quote *models.Quote) error
}

type notificationService struct {
	outboxRepo repositories.OutboxRepository
	templates  *email.TemplateManager
	adminEmail string
	fromName   string
}

func NewNotificationService(outboxRepo repositories.OutboxRepository, templates *email.TemplateManager, adminEmail, fromName string) NotificationService {
	return &notificationService{
		outboxRepo: outboxRepo,
		templates:  templates,
		adminEmail: adminEmail,
		fromName:   fromName,
	}
}

func (s *notificationService) QueueContactNotification(db *gorm.DB, contact *models.Contact) error {
	body, err := s.templates.Render(email.TemplateContactNotification, email.ContactNotificationData{
		Name:    contact.Name,
		Email:   contact.Email,
		Phone:   contact.Phone,
		Message: contact.Message,
	})
	if err != nil {
		return err
	}

	return s.outboxRepo.Enqueue(db, &models.EmailOutbox{
		To:       s.adminEmail,
		Subject:  "Nuevo mensaje de contacto de " + contact.Name,
		Template: email.TemplateContactNotification,
		HTMLBody: body,
		Status:   models.OutboxStatusPending,
	})
}

// QueueQuoteNotifications queues the staff notification and the requester's
// confirmation as two independent outbox rows.
func (s *notificationService) QueueQuoteNotifications(db *gorm.DB, quote *models.Quote) error {
	adminBody, err := s.templates.Render(email.TemplateQuoteNotification, email.QuoteNotificationData{
		Name:        quote.Name,
		Email:       quote.Email,
		Phone:       quote.Phone,
		Address:     quote.Address,
		ServiceType: string(quote.ServiceType),
		Budget:      string(quote.Budget),
		Description: quote.Description,
		ReceivedAt:  time.Now().Format("02/01/2006 15:04"),
	})
	if err != nil {
		return err
	}

	if err := s.outboxRepo.Enqueue(db, &models.EmailOutbox{
		To:       s.adminEmail,
		Subject:  "Nueva solicitud de cotización de " + quote.Name,
		Template: email.TemplateQuoteNotification,
		HTMLBody: adminBody,
		Status:   models.OutboxStatusPending,
	}); err != nil {
		return err
	}

	confirmBody, err := s.templates.Render(email.TemplateQuoteConfirmation, email.QuoteConfirmationData{
		Name:        quote.Name,
		ServiceType: string(quote.ServiceType),
		Description: quote.Description,
		CompanyName: s.fromName,
	})
	if err != nil {
		return err
	}

	return s.outboxRepo.Enqueue(db, &models.EmailOutbox{
		To:       quote.Email,
		Subject:  "Hemos recibido tu solicitud de cotización",
		Template: email.TemplateQuoteConfirmation,
		HTMLBody: confirmBody,
		Status:   models.OutboxStatusPending,
	})
}
