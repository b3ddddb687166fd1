package models

// User is a staff account. Role gates the admin-only routes.
type User struct {
	BaseModel
	Name         string   `gorm:"size:100;not null" json:"name"`
	Email        string   `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"not null" json:"-"`
	Role         UserRole `gorm:"type:varchar(20);not null;default:'worker'" json:"role"`
}
