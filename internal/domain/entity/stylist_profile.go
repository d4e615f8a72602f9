package entity

import "github.com/google/uuid"

// StylistProfile represents stylist-specific profile data
type StylistProfile struct {
	UserID       uuid.UUID          `gorm:"type:uuid;primaryKey" json:"user_id"`
	PhoneNumber  string             `gorm:"type:varchar(20);index" json:"phone_number,omitempty"`
	Specialties  string             `gorm:"type:varchar(255)" json:"specialties,omitempty"`
	Biography    string             `gorm:"type:text" json:"biography,omitempty"`
	Availability WeeklyAvailability `gorm:"type:jsonb;not null" json:"availability"`

	// Relationships
	User         User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Appointments []Appointment `gorm:"foreignKey:StylistID" json:"appointments,omitempty"`
}

func (StylistProfile) TableName() string {
	return "stylist_profiles"
}
