package model

import (
	"time"

	"gorm.io/gorm"
)

// Roles a user can hold. Registration always starts at RoleUser; only the
// admin toggle endpoint promotes or demotes.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents a registered user in the system
type User struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
	FullName     string         `gorm:"not null" json:"full_name"`
	Email        string         `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string         `gorm:"not null" json:"-"` // Never expose password in JSON
	Role         string         `gorm:"type:varchar(10);default:'user'" json:"role"`

	// Password recovery. Both fields are cleared on a successful reset.
	ResetToken     *string    `gorm:"uniqueIndex;type:varchar(100)" json:"-"`
	ResetExpiresAt *time.Time `json:"-"`

	// Relationships
	Resources []Resource `gorm:"foreignKey:UserID" json:"-"`
	Comments  []Comment  `gorm:"foreignKey:UserID" json:"-"`
	Ratings   []Rating   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Reports   []Report   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// HasActiveResetToken reports whether a reset token exists and has not expired.
func (u *User) HasActiveResetToken() bool {
	return u.ResetToken != nil && u.ResetExpiresAt != nil && time.Now().Before(*u.ResetExpiresAt)
}
