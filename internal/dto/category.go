package dto

type CreateCategoryRequest struct {
	Name        string `json:"name" form:"name" validate:"required,max=50"`
	Description string `json:"description" form:"description" validate:"omitempty,max=200"`
	Icon        string `json:"icon" form:"icon" validate:"omitempty,max=50"`
}

type UpdateCategoryRequest struct {
	Name        *string `json:"name" form:"name" validate:"omitempty,min=1,max=50"`
	Description *string `json:"description" form:"description" validate:"omitempty,max=200"`
	Icon        *string `json:"icon" form:"icon" validate:"omitempty,max=50"`
	IsActive    *bool   `json:"isActive" form:"isActive"`
}
