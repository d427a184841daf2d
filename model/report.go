package model

import "time"

// Report is a user-submitted complaint against a resource. Append-only and
// readable only by admins.
type Report struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	ResourceID uint      `gorm:"index;not null" json:"resource_id"`
	UserID     uint      `gorm:"not null" json:"user_id"`
	Reason     string    `gorm:"not null" json:"reason"`
	Details    *string   `gorm:"type:text" json:"details"`

	// Relationships
	Resource Resource `gorm:"foreignKey:ResourceID;constraint:OnDelete:CASCADE" json:"-"`
	Author   User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
