package models

// Category is a service category (garden design, irrigation, ...). Disabled
// categories stay referenced by projects but disappear from public listings.
type Category struct {
	BaseModel
	Name        string `gorm:"size:50;uniqueIndex;not null" json:"name"`
	Slug        string `gorm:"size:80;uniqueIndex;not null" json:"slug"`
	Description string `gorm:"size:200" json:"description,omitempty"`
	Icon        string `gorm:"size:50;default:'leaf'" json:"icon"`
	IsActive    bool   `gorm:"default:true" json:"isActive"`
}
