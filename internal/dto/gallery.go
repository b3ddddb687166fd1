package dto

type CreateGalleryItemRequest struct {
	Title       string  `json:"title" form:"title" validate:"required,max=120"`
	Description string  `json:"description" form:"description" validate:"omitempty,max=500"`
	CategoryID  *string `json:"category" form:"category" validate:"omitempty,uuid"`
	ProjectID   *string `json:"project" form:"project" validate:"omitempty,uuid"`
	Order       int     `json:"order" form:"order" validate:"omitempty,min=0"`
	Featured    bool    `json:"featured" form:"featured"`
}

type UpdateGalleryItemRequest struct {
	Title       *string `json:"title" form:"title" validate:"omitempty,min=1,max=120"`
	Description *string `json:"description" form:"description" validate:"omitempty,max=500"`
	CategoryID  *string `json:"category" form:"category" validate:"omitempty,uuid"`
	ProjectID   *string `json:"project" form:"project" validate:"omitempty,uuid"`
	Order       *int    `json:"order" form:"order" validate:"omitempty,min=0"`
	Featured    *bool   `json:"featured" form:"featured"`
	IsActive    *bool   `json:"isActive" form:"isActive"`
}

type GalleryListQuery struct {
	Category string `form:"category" validate:"omitempty,uuid"`
	Featured string `form:"featured" validate:"omitempty,oneof=true false"`
	Limit    int    `form:"limit" validate:"omitempty,min=1,max=100"`
}

// ReorderItem is one {id, order} pair of the bulk reorder batch.
type ReorderItem struct {
	ID    string `json:"id" validate:"required,uuid"`
	Order int    `json:"order" validate:"min=0"`
}

type ReorderGalleryRequest struct {
	Items []ReorderItem `json:"items" validate:"required,min=1,dive"`
}
