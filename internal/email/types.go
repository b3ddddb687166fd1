package email

// Template names for the transactional emails.
const (
	TemplateContactNotification = "contact_notification"
	TemplateQuoteNotification   = "quote_notification"
	TemplateQuoteConfirmation   = "quote_confirmation"
)

// Provider sends a single rendered email. Delivery runs from the outbox
// worker, never inside a request.
type Provider interface {
	Send(to, subject, htmlBody string) error
}

// Config is the SMTP sender configuration.
type Config struct {
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromEmail    string
	FromName     string
}

// ContactNotificationData feeds the admin notification for a contact message.
type ContactNotificationData struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

// QuoteNotificationData feeds the admin notification for a quote request.
type QuoteNotificationData struct {
	Name        string
	Email       string
	Phone       string
	Address     string
	ServiceType string
	Budget      string
	Description string
	ReceivedAt  string
}

// QuoteConfirmationData feeds the requester's confirmation email.
type QuoteConfirmationData struct {
	Name        string
	ServiceType string
	Description string
	CompanyName string
}
