package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name                string `gorm:"default:''"`
	Email               string `gorm:"unique;not null"`
	Phone               string `gorm:"default:''"`
	Role                string `gorm:"default:'user'"` // user, admin
	Password            string `json:"-" gorm:"not null"`
	Interests           string `gorm:"default:''"`
	AvatarURL           string `gorm:"default:''"`
	LastLogin           time.Time
	FailedLoginAttempts int        `gorm:"default:0"`
	LastFailedLogin     *time.Time `json:"last_failed_login"`
	IsBlocked           bool       `gorm:"default:false"`
	BlockedUntil        *time.Time `json:"blocked_until"`
	IsDeleted           bool       `gorm:"default:false"`
}
