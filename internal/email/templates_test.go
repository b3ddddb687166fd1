package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderContactNotification(t *testing.T) {
	tm, err := NewTemplateManager()
	require.NoError(t, err)

	body, err := tm.Render(TemplateContactNotification, ContactNotificationData{
		Name:    "María García",
		Email:   "maria@example.com",
		Phone:   "+34 600 000 000",
		Message: "Necesito un presupuesto",
	})
	require.NoError(t, err)

	assert.Contains(t, body, "María García")
	assert.Contains(t, body, "maria@example.com")
	assert.Contains(t, body, "Necesito un presupuesto")
}

func TestRenderContactNotificationWithoutPhone(t *testing.T) {
	tm, err := NewTemplateManager()
	require.NoError(t, err)

	body, err := tm.Render(TemplateContactNotification, ContactNotificationData{
		Name:    "Juan",
		Email:   "juan@example.com",
		Message: "Hola",
	})
	require.NoError(t, err)
	assert.Contains(t, body, "No proporcionado")
}

func TestRenderQuoteTemplates(t *testing.T) {
	tm, err := NewTemplateManager()
	require.NoError(t, err)

	notification, err := tm.Render(TemplateQuoteNotification, QuoteNotificationData{
		Name:        "Pedro",
		Email:       "pedro@example.com",
		Phone:       "600111222",
		ServiceType: "garden_design",
		Description: "Jardín nuevo",
		ReceivedAt:  "01/09/2026 10:00",
	})
	require.NoError(t, err)
	assert.Contains(t, notification, "Pedro")
	assert.Contains(t, notification, "garden_design")

	confirmation, err := tm.Render(TemplateQuoteConfirmation, QuoteConfirmationData{
		Name:        "Pedro",
		ServiceType: "garden_design",
		Description: "Jardín nuevo",
		CompanyName: "D&D Landscaping Pro",
	})
	require.NoError(t, err)
	assert.Contains(t, confirmation, "Pedro")
	assert.Contains(t, confirmation, "D&amp;D Landscaping Pro")
}

func TestRenderUnknownTemplate(t *testing.T) {
	tm, err := NewTemplateManager()
	require.NoError(t, err)

	_, err = tm.Render("no_such_template", nil)
	assert.Error(t, err)
}

func TestHTMLEscaping(t *testing.T) {
	tm, err := NewTemplateManager()
	require.NoError(t, err)

	body, err := tm.Render(TemplateContactNotification, ContactNotificationData{
		Name:    "<script>alert(1)</script>",
		Email:   "x@example.com",
		Message: "hola",
	})
	require.NoError(t, err)
	assert.NotContains(t, body, "<script>alert(1)</script>")
	assert.Contains(t, body, "&lt;script&gt;")
}
