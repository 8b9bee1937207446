package model

import "time"

// Role values for User.Role.
const (
	RoleMonitored = "MONITORED"
	RoleSupport   = "SUPPORT"
)

// User represents an account in the system, either a monitored person
// living with epilepsy or a support contact who receives seizure alerts.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	FirstName    string    `json:"first_name" gorm:"size:255;not null"`
	Surname      string    `json:"surname" gorm:"size:255;not null"`
	Phone        string    `json:"phone" gorm:"size:50"`
	Role         string    `json:"role" gorm:"size:20;not null;index"`
	PushToken    string    `json:"-" gorm:"size:255"` // Device token, hidden from JSON
	IsAvailable  bool      `json:"is_available" gorm:"default:true"`
	SeizureNote  string    `json:"seizure_note,omitempty" gorm:"type:text"` // What to do during a seizure
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
