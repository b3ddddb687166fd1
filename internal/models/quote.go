package models

import "gorm.io/datatypes"

// Quote is a quote request submitted through the public form, worked by staff
// through the new -> reviewing -> quoted -> accepted/rejected pipeline.
type Quote struct {
	BaseModelWithDeleted
	Name         string                          `gorm:"size:100;not null" json:"name"`
	Email        string                          `gorm:"size:255;not null" json:"email"`
	Phone        string                          `gorm:"size:40;not null" json:"phone"`
	Address      string                          `gorm:"size:255" json:"address,omitempty"`
	ServiceType  ServiceType                     `gorm:"type:varchar(30);not null" json:"serviceType"`
	Description  string                          `gorm:"size:2000;not null" json:"description"`
	Budget       BudgetRange                     `gorm:"type:varchar(20)" json:"budget,omitempty"`
	Timeline     Timeline                        `gorm:"type:varchar(20)" json:"timeline,omitempty"`
	Attachments  datatypes.JSONSlice[Attachment] `json:"attachments"`
	Status       QuoteStatus                     `gorm:"type:varchar(20);default:'new';index" json:"status"`
	QuotedAmount *float64                        `json:"quotedAmount,omitempty"`
	Notes        string                          `gorm:"type:text" json:"notes,omitempty"`
	AssignedToID *string                         `gorm:"type:uuid" json:"assignedTo,omitempty"`
	AssignedTo   *User                           `gorm:"foreignKey:AssignedToID" json:"assignedToUser,omitempty"`
}
