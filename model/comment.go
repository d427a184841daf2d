package model

import "time"

// Comment is an append-only remark on a resource. There is no edit or delete.
type Comment struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	ResourceID uint      `gorm:"index;not null" json:"resource_id"`
	UserID     *uint     `json:"user_id"`
	Content    string    `gorm:"type:text;not null" json:"content"`

	// Relationships
	Resource Resource `gorm:"foreignKey:ResourceID;constraint:OnDelete:CASCADE" json:"-"`
	Author   *User    `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL" json:"-"`
}
