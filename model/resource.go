package model

import "time"

// Resource represents an uploaded academic file (exam, summary, notes) with
// its descriptive metadata. AvgRating is a cached value: it is recomputed
// inside the same transaction as every rating write, so readers always see a
// value consistent with some snapshot of the ratings table.
type Resource struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Course      *string   `json:"course"`
	Cycle       *string   `json:"cycle"`
	Teacher     *string   `json:"teacher"`
	FileURL     string    `gorm:"not null" json:"file_url"`
	FileType    string    `gorm:"type:varchar(100)" json:"file_type"`
	UserID      *uint     `gorm:"index" json:"user_id"`
	AvgRating   *float64  `json:"avg_rating"`

	// Relationships
	Uploader *User     `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL" json:"uploader,omitempty"`
	Comments []Comment `gorm:"foreignKey:ResourceID;constraint:OnDelete:CASCADE" json:"-"`
	Ratings  []Rating  `gorm:"foreignKey:ResourceID;constraint:OnDelete:CASCADE" json:"-"`
	Reports  []Report  `gorm:"foreignKey:ResourceID;constraint:OnDelete:CASCADE" json:"-"`
}
