package models

import "time"

// EmailOutbox is one queued transactional email. Submission endpoints enqueue
// rows in the same request that persists the primary record; the outbox worker
// delivers them afterwards, so a slow or broken mail relay never fails the
// submission.
type EmailOutbox struct {
	BaseModel
	To        string       `gorm:"size:255;not null" json:"to"`
	Subject   string       `gorm:"size:255;not null" json:"subject"`
	Template  string       `gorm:"size:60;not null" json:"template"`
	HTMLBody  string       `gorm:"type:text;not null" json:"-"`
	Status    OutboxStatus `gorm:"type:varchar(20);default:'pending';index" json:"status"`
	Attempts  int          `gorm:"default:0" json:"attempts"`
	LastError string       `gorm:"type:text" json:"lastError,omitempty"`
	SentAt    *time.Time   `json:"sentAt,omitempty"`
}
