package services

import (
	"testing"

	"landscaping_backend/internal/dto"
	"landscaping_backend/internal/email"
	"landscaping_backend/internal/models"
	"landscaping_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContactFixture(t *testing.T) (*fakeContactRepo, *fakeOutboxRepo, ContactService) {
	t.Helper()
	templates, err := email.NewTemplateManager()
	require.NoError(t, err)

	contactRepo := newFakeContactRepo()
	outboxRepo := &fakeOutboxRepo{}
	notifications := NewNotificationService(outboxRepo, templates, "admin@ddlandscaping.com", "D&D Landscaping Pro")
	service := NewContactService(contactRepo, notifications, newFakeStorage(), UploadLimits{})
	return contactRepo, outboxRepo, service
}

func seedContact(repo *fakeContactRepo, id string, status models.ContactStatus) *models.Contact {
	contact := &models.Contact{
		BaseModelWithDeleted: models.BaseModelWithDeleted{
			BaseModel: models.BaseModel{ID: id},
		},
		Name:    "María",
		Email:   "maria@example.com",
		Message: "Hola",
		Status:  status,
	}
	repo.contacts[id] = contact
	return contact
}

func TestContactCreateQueuesAdminNotification(t *testing.T) {
	_, outbox, service := newContactFixture(t)

	contact, err := service.Create(testDB(), dto.CreateContactRequest{
		Name:    "María",
		Email:   "maria@example.com",
		Message: "Necesito presupuesto",
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, models.ContactStatusNew, contact.Status)
	require.Len(t, outbox.entries, 1)
	entry := outbox.entries[0]
	assert.Equal(t, "admin@ddlandscaping.com", entry.To)
	assert.Equal(t, email.TemplateContactNotification, entry.Template)
	assert.Equal(t, models.OutboxStatusPending, entry.Status)
	assert.Contains(t, entry.HTMLBody, "María")
}

func TestContactGetMarksNewAsRead(t *testing.T) {
	repo, _, service := newContactFixture(t)
	seedContact(repo, "c1", models.ContactStatusNew)

	contact, err := service.GetByID(testDB(), "c1")
	require.NoError(t, err)
	assert.Equal(t, models.ContactStatusRead, contact.Status)

	// the side effect happens only on the first open
	contact, err = service.GetByID(testDB(), "c1")
	require.NoError(t, err)
	assert.Equal(t, models.ContactStatusRead, contact.Status)
}

func TestContactGetDoesNotTouchLaterStatuses(t *testing.T) {
	repo, _, service := newContactFixture(t)
	seedContact(repo, "c1", models.ContactStatusResponded)

	contact, err := service.GetByID(testDB(), "c1")
	require.NoError(t, err)
	assert.Equal(t, models.ContactStatusResponded, contact.Status)
}

func TestContactUpdateRejectsBackwardTransition(t *testing.T) {
	repo, _, service := newContactFixture(t)
	seedContact(repo, "c1", models.ContactStatusArchived)

	status := string(models.ContactStatusRead)
	_, err := service.Update(testDB(), "c1", dto.UpdateContactRequest{Status: &status})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeInvalidStatus, appErr.Code)
	assert.Equal(t, 400, appErr.HTTPCode)
}

func TestContactUpdateAllowsForwardTransition(t *testing.T) {
	repo, _, service := newContactFixture(t)
	seedContact(repo, "c1", models.ContactStatusRead)

	status := string(models.ContactStatusResponded)
	notes := "Respondido por teléfono"
	contact, err := service.Update(testDB(), "c1", dto.UpdateContactRequest{Status: &status, Notes: &notes})
	require.NoError(t, err)
	assert.Equal(t, models.ContactStatusResponded, contact.Status)
	assert.Equal(t, notes, contact.Notes)
}

func TestContactDeleteSweepsAttachments(t *testing.T) {
	templates, err := email.NewTemplateManager()
	require.NoError(t, err)

	contactRepo := newFakeContactRepo()
	store := newFakeStorage()
	store.saved["contacts/file.pdf"] = "application/pdf"
	notifications := NewNotificationService(&fakeOutboxRepo{}, templates, "admin@ddlandscaping.com", "D&D")
	service := NewContactService(contactRepo, notifications, store, UploadLimits{})

	contact := seedContact(contactRepo, "c1", models.ContactStatusArchived)
	contact.Attachments = []models.Attachment{{StorageID: "contacts/file.pdf"}}

	require.NoError(t, service.Delete(testDB(), "c1"))
	assert.Contains(t, store.deleted, "contacts/file.pdf")
	_, err = service.GetByID(testDB(), "c1")
	assert.Error(t, err)
}
