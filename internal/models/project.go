package models

import (
	"time"

	"gorm.io/datatypes"
)

// Project is a showcased landscaping job. Images live as a JSON column: they
// are an ordered sub-record list owned entirely by the project, and every
// entry's StorageID must be deleted from the object store when the entry or
// the project goes away.
type Project struct {
	BaseModelWithDeleted
	Title            string                            `gorm:"size:100;not null" json:"title"`
	Slug             string                            `gorm:"size:160;uniqueIndex;not null" json:"slug"`
	Description      string                            `gorm:"type:text;not null" json:"description"`
	ShortDescription string                            `gorm:"size:200" json:"shortDescription,omitempty"`
	CategoryID       string                            `gorm:"type:uuid;not null;index" json:"categoryId"`
	Category         *Category                         `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Images           datatypes.JSONSlice[ProjectImage] `json:"images"`
	Location         string                            `gorm:"size:120" json:"location,omitempty"`
	Client           string                            `gorm:"size:120" json:"client,omitempty"`
	CompletionDate   *time.Time                        `json:"completionDate,omitempty"`
	Status           ProjectStatus                     `gorm:"type:varchar(20);default:'completed'" json:"status"`
	Featured         bool                              `gorm:"default:false" json:"featured"`
	Tags             datatypes.JSONSlice[string]       `json:"tags"`
	CreatedByID      string                            `gorm:"type:uuid" json:"createdBy,omitempty"`
	CreatedBy        *User                             `gorm:"foreignKey:CreatedByID" json:"createdByUser,omitempty"`
	IsPublished      bool                              `gorm:"default:true" json:"isPublished"`
}

// FeaturedImage returns the image flagged as featured, or the first one.
func (p *Project) FeaturedImage() *ProjectImage {
	for i := range p.Images {
		if p.Images[i].IsFeatured {
			return &p.Images[i]
		}
	}
	if len(p.Images) > 0 {
		return &p.Images[0]
	}
	return nil
}
