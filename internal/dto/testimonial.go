package dto

type CreateTestimonialRequest struct {
	Name      string  `json:"name" form:"name" validate:"required,max=100"`
	Email     string  `json:"email" form:"email" validate:"omitempty,email"`
	Content   string  `json:"content" form:"content" validate:"required,max=500"`
	Rating    int     `json:"rating" form:"rating" validate:"omitempty,min=1,max=5"`
	ProjectID *string `json:"project" form:"project" validate:"omitempty,uuid"`
	Location  string  `json:"location" form:"location" validate:"omitempty,max=120"`
	Avatar    string  `json:"avatar" form:"avatar" validate:"omitempty,url"`
}

// UpdateTestimonialRequest is the staff moderation mutation.
type UpdateTestimonialRequest struct {
	Status   *string `json:"status" validate:"omitempty,testimonial-status"`
	Featured *bool   `json:"featured"`
}

type TestimonialListQuery struct {
	Featured string `form:"featured" validate:"omitempty,oneof=true false"`
	Limit    int    `form:"limit" validate:"omitempty,min=1,max=100"`
}

type TestimonialAdminQuery struct {
	Status string `form:"status" validate:"omitempty,testimonial-status"`
	Page   int    `form:"page" validate:"omitempty,min=1"`
	Limit  int    `form:"limit" validate:"omitempty,min=1,max=100"`
}
