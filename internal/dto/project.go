package dto

// CreateProjectRequest arrives as multipart form data; image files travel
// alongside under the "images" field.
type CreateProjectRequest struct {
	Title            string   `json:"title" form:"title" validate:"required,max=100"`
	Description      string   `json:"description" form:"description" validate:"required"`
	ShortDescription string   `json:"shortDescription" form:"shortDescription" validate:"omitempty,max=200"`
	CategoryID       string   `json:"category" form:"category" validate:"required,uuid"`
	Location         string   `json:"location" form:"location" validate:"omitempty,max=120"`
	Client           string   `json:"client" form:"client" validate:"omitempty,max=120"`
	CompletionDate   string   `json:"completionDate" form:"completionDate" validate:"omitempty,datetime=2006-01-02"`
	Status           string   `json:"status" form:"status" validate:"omitempty,project-status"`
	Featured         bool     `json:"featured" form:"featured"`
	Tags             []string `json:"tags" form:"tags"`
	IsPublished      *bool    `json:"isPublished" form:"isPublished"`
}

type UpdateProjectRequest struct {
	Title            *string  `json:"title" form:"title" validate:"omitempty,min=1,max=100"`
	Description      *string  `json:"description" form:"description" validate:"omitempty,min=1"`
	ShortDescription *string  `json:"shortDescription" form:"shortDescription" validate:"omitempty,max=200"`
	CategoryID       *string  `json:"category" form:"category" validate:"omitempty,uuid"`
	Location         *string  `json:"location" form:"location" validate:"omitempty,max=120"`
	Client           *string  `json:"client" form:"client" validate:"omitempty,max=120"`
	CompletionDate   *string  `json:"completionDate" form:"completionDate" validate:"omitempty,datetime=2006-01-02"`
	Status           *string  `json:"status" form:"status" validate:"omitempty,project-status"`
	Featured         *bool    `json:"featured" form:"featured"`
	Tags             []string `json:"tags" form:"tags"`
	IsPublished      *bool    `json:"isPublished" form:"isPublished"`
}

// ProjectListQuery carries the public listing filters.
type ProjectListQuery struct {
	Category string `form:"category" validate:"omitempty,uuid"`
	Status   string `form:"status" validate:"omitempty,project-status"`
	Featured string `form:"featured" validate:"omitempty,oneof=true false"`
	Search   string `form:"search" validate:"omitempty,max=200"`
	Page     int    `form:"page" validate:"omitempty,min=1"`
	Limit    int    `form:"limit" validate:"omitempty,min=1,max=100"`
}
