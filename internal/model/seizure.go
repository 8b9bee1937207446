package model

import "time"

// Seizure is an append-only event record for a monitored user. Vitals are
// captured at alert time; only the note is mutable afterwards.
type Seizure struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	MonitoredUserID uint      `json:"monitored_user_id" gorm:"not null;index"`
	HeartRate       float64   `json:"heart_rate"`
	SpO2            float64   `json:"sp_o2"`
	Movement        int       `json:"movement"`
	Timestamp       time.Time `json:"timestamp" gorm:"not null;index"`
	Note            string    `json:"note,omitempty" gorm:"type:text"`

	// Relations
	MonitoredUser User `json:"-" gorm:"foreignKey:MonitoredUserID"`
}
