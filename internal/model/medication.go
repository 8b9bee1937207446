package model

import "time"

// Medication is a scheduled medication entry owned by a user.
// Time is the daily intake time in "HH:MM" 24-hour format.
type Medication struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Dose      string    `json:"dose" gorm:"size:100"`
	Time      string    `json:"time" gorm:"size:5;not null"`
	Enabled   bool      `json:"enabled" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	User User `json:"-" gorm:"foreignKey:UserID"`
}
