package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// EmailNotification is an in-app notification that may also be delivered
// over email. Delivery is best effort; the row is the source of truth.
type EmailNotification struct {
	gorm.Model
	UserID           uint           `json:"user_id" gorm:"index;not null"`
	Subject          string         `json:"subject"`
	Message          string         `json:"message" gorm:"type:text"`
	NotificationType string         `json:"notification_type" gorm:"default:'system'"` // system, course, certificate
	IsRead           bool           `json:"is_read" gorm:"default:false"`
	ReadAt           *time.Time     `json:"read_at"`
	Metadata         datatypes.JSON `json:"metadata"`
	IsDeleted        bool           `gorm:"default:false"`
}
