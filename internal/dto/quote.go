package dto

// CreateQuoteRequest is the public quote request payload (multipart form
// data; attachment files under the "attachments" field).
type CreateQuoteRequest struct {
	Name        string `json:"name" form:"name" validate:"required,max=100"`
	Email       string `json:"email" form:"email" validate:"required,email"`
	Phone       string `json:"phone" form:"phone" validate:"required,max=40"`
	Address     string `json:"address" form:"address" validate:"omitempty,max=255"`
	ServiceType string `json:"serviceType" form:"serviceType" validate:"required,service-type"`
	Description string `json:"description" form:"description" validate:"required,max=2000"`
	Budget      string `json:"budget" form:"budget" validate:"omitempty,budget-range"`
	Timeline    string `json:"timeline" form:"timeline" validate:"omitempty,timeline"`
}

// UpdateQuoteRequest is the staff-side mutation: pipeline status, pricing,
// notes and assignment.
type UpdateQuoteRequest struct {
	Status       *string  `json:"status" validate:"omitempty,quote-status"`
	QuotedAmount *float64 `json:"quotedAmount" validate:"omitempty,min=0"`
	Notes        *string  `json:"notes"`
	AssignedTo   *string  `json:"assignedTo" validate:"omitempty,uuid"`
}

type QuoteListQuery struct {
	Status string `form:"status" validate:"omitempty,quote-status"`
	Page   int    `form:"page" validate:"omitempty,min=1"`
	Limit  int    `form:"limit" validate:"omitempty,min=1,max=100"`
}

// QuoteStats is the per-status aggregation returned by /stats.
type QuoteStats struct {
	Total    int64            `json:"total"`
	ByStatus map[string]int64 `json:"byStatus"`
}
