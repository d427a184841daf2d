package model

import "time"

// Rating is a single user's 1-5 score for a resource. The composite primary
// key enforces at most one row per (resource, user) pair; a second write from
// the same user replaces the first via upsert.
type Rating struct {
	ResourceID uint      `gorm:"primaryKey" json:"resource_id"`
	UserID     uint      `gorm:"primaryKey" json:"user_id"`
	Value      int       `gorm:"not null" json:"rating"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Relationships
	Resource Resource `gorm:"foreignKey:ResourceID;constraint:OnDelete:CASCADE" json:"-"`
	User     User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// Rating bounds accepted by the API.
const (
	RatingMin = 1
	RatingMax = 5
)

// IsValidRating reports whether v is within the accepted 1-5 range.
func IsValidRating(v int) bool {
	return v >= RatingMin && v <= RatingMax
}
