package models

import "gorm.io/datatypes"

// Contact is a message submitted through the public contact form. Status
// moves new -> read automatically the first time staff opens it.
type Contact struct {
	BaseModelWithDeleted
	Name        string                          `gorm:"size:100;not null" json:"name"`
	Email       string                          `gorm:"size:255;not null" json:"email"`
	Phone       string                          `gorm:"size:40" json:"phone,omitempty"`
	Message     string                          `gorm:"size:1000;not null" json:"message"`
	Attachments datatypes.JSONSlice[Attachment] `json:"attachments"`
	Status      ContactStatus                   `gorm:"type:varchar(20);default:'new';index" json:"status"`
	Notes       string                          `gorm:"type:text" json:"notes,omitempty"`
}
