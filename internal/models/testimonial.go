package models

// Testimonial is a public submission that becomes visible only after staff
// approves it.
type Testimonial struct {
	BaseModel
	Name      string            `gorm:"size:100;not null" json:"name"`
	Email     string            `gorm:"size:255" json:"email,omitempty"`
	Content   string            `gorm:"size:500;not null" json:"content"`
	Rating    int               `gorm:"default:5" json:"rating"`
	ProjectID *string           `gorm:"type:uuid" json:"projectId,omitempty"`
	Project   *Project          `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	Avatar    string            `gorm:"size:255" json:"avatar,omitempty"`
	Location  string            `gorm:"size:120" json:"location,omitempty"`
	Status    TestimonialStatus `gorm:"type:varchar(20);default:'pending';index" json:"status"`
	Featured  bool              `gorm:"default:false" json:"featured"`
}
