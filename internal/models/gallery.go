package models

// GalleryItem is one image of the public gallery. Order drives the display
// sequence and is bulk-rewritten by the reorder endpoint.
type GalleryItem struct {
	BaseModelWithDeleted
	Title       string    `gorm:"size:120;not null" json:"title"`
	Description string    `gorm:"size:500" json:"description,omitempty"`
	Image       ImageRef  `gorm:"embedded;embeddedPrefix:image_" json:"image"`
	CategoryID  *string   `gorm:"type:uuid;index" json:"categoryId,omitempty"`
	Category    *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	ProjectID   *string   `gorm:"type:uuid;index" json:"projectId,omitempty"`
	Project     *Project  `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	Order       int       `gorm:"column:display_order;default:0" json:"order"`
	Featured    bool      `gorm:"default:false" json:"featured"`
	IsActive    bool      `gorm:"default:true" json:"isActive"`
}
