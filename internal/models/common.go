package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BaseModel struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (m *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// BaseModelWithDeleted adds GORM soft deletion. Entities owning object-store
// files use it as the mark phase of the two-phase delete: a soft-deleted row
// is invisible to every query, its storage objects are swept, and only then
// is the row removed for good.
type BaseModelWithDeleted struct {
	BaseModel
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// ImageRef is an embedded reference to one stored image.
type ImageRef struct {
	URL       string `json:"url"`
	StorageID string `json:"storageId,omitempty"`
}

// ProjectImage is one entry of a project's ordered image list.
type ProjectImage struct {
	ID         string `json:"id"`
	URL        string `json:"url"`
	StorageID  string `json:"storageId,omitempty"`
	Caption    string `json:"caption,omitempty"`
	IsFeatured bool   `json:"isFeatured"`
}

// Attachment is one uploaded file embedded in a contact or quote submission.
type Attachment struct {
	URL       string `json:"url"`
	StorageID string `json:"storageId,omitempty"`
	Filename  string `json:"filename,omitempty"`
}
