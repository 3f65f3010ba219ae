package models

import (
	"time"

	"gorm.io/gorm"
)

// Payment records a simulated checkout for a premium course. The gateway
// is a stub that always succeeds, so status is completed on creation.
type Payment struct {
	gorm.Model
	UserID        uint      `json:"user_id" gorm:"index;not null"`
	CourseID      uint      `json:"course_id" gorm:"index;not null"`
	Amount        float64   `json:"amount" gorm:"default:0"`
	Status        string    `json:"status" gorm:"default:'completed'"`
	PaymentMethod string    `json:"payment_method" gorm:"default:'card'"`
	TransactionID string    `json:"transaction_id" gorm:"unique"`
	PaidAt        time.Time `json:"paid_at"`
	IsDeleted     bool      `gorm:"default:false"`
}
