package dto

// CreateContactRequest is the public contact form payload (multipart form
// data; attachment files under the "attachments" field).
type CreateContactRequest struct {
	Name    string `json:"name" form:"name" validate:"required,max=100"`
	Email   string `json:"email" form:"email" validate:"required,email"`
	Phone   string `json:"phone" form:"phone" validate:"omitempty,max=40"`
	Message string `json:"message" form:"message" validate:"required,max=1000"`
}

// UpdateContactRequest is the staff-side mutation: status and notes only.
type UpdateContactRequest struct {
	Status *string `json:"status" validate:"omitempty,contact-status"`
	Notes  *string `json:"notes"`
}

type ContactListQuery struct {
	Status string `form:"status" validate:"omitempty,contact-status"`
	Page   int    `form:"page" validate:"omitempty,min=1"`
	Limit  int    `form:"limit" validate:"omitempty,min=1,max=100"`
}
