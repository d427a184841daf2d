package model

import (
	"time"

	"gorm.io/datatypes"
)

// AdminAuditLog records admin write actions (role toggles, resource deletes)
// for traceability. Written asynchronously by the audit middleware.
type AdminAuditLog struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time      `json:"created_at"`
	AdminID     uint           `gorm:"index;not null" json:"admin_id"`
	Action      string         `gorm:"type:varchar(50);not null" json:"action"`
	Resource    string         `gorm:"type:varchar(50);not null" json:"resource"`
	ResourceID  uint           `json:"resource_id"`
	OldValue    datatypes.JSON `json:"old_value,omitempty"`
	NewValue    datatypes.JSON `json:"new_value,omitempty"`
	IPAddress   string         `gorm:"type:varchar(45)" json:"ip_address"`
	UserAgent   string         `gorm:"type:text" json:"user_agent"`
	Description string         `gorm:"type:text" json:"description"`

	// Relationships
	Admin User `gorm:"foreignKey:AdminID;constraint:OnDelete:CASCADE" json:"-"`
}
