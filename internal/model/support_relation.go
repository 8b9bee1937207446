package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SupportRelation links a monitored user to one of their support contacts.
// Each (monitored, support) pair exists at most once.
type SupportRelation struct {
	ID              uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	MonitoredUserID uint      `json:"monitored_user_id" gorm:"not null;uniqueIndex:idx_relation_pair;index"`
	SupportUserID   uint      `json:"support_user_id" gorm:"not null;uniqueIndex:idx_relation_pair;index"`
	CreatedAt       time.Time `json:"created_at"`

	// Relations
	MonitoredUser User `json:"-" gorm:"foreignKey:MonitoredUserID"`
	SupportUser   User `json:"-" gorm:"foreignKey:SupportUserID"`
}

// BeforeCreate sets UUID before creating the record.
func (r *SupportRelation) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
