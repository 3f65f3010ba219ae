package course

import (
	"time"

	"gorm.io/gorm"
)

// Enrollment statuses
const (
	EnrollmentActive    = "active"
	EnrollmentCompleted = "completed"
	EnrollmentDropped   = "dropped"
	EnrollmentExpired   = "expired"
)

// Enrollment tracks a user's claim on a course with a progress snapshot.
// The progress column is a display copy; the authoritative value is always
// recomputed from lesson_progress rows.
type Enrollment struct {
	gorm.Model
	UserID      uint       `json:"user_id" gorm:"not null;uniqueIndex:idx_enrollment_user_course"`
	CourseID    uint       `json:"course_id" gorm:"not null;uniqueIndex:idx_enrollment_user_course"`
	Status      string     `json:"status" gorm:"default:'active'"`
	Progress    int        `json:"progress" gorm:"default:0"` // 0-100
	EnrolledAt  time.Time  `json:"enrolled_at"`
	CompletedAt *time.Time `json:"completed_at"`
	ExpiresAt   *time.Time `json:"expires_at"`
}

// CanTransition reports whether an enrollment may move between two
// statuses. Every transition is currently allowed so admins can correct
// records freely; tighten the policy here without touching call sites.
func CanTransition(from, to string) bool {
	return true
}

// ValidStatus reports whether s is a known enrollment status
func ValidStatus(s string) bool {
	switch s {
	case EnrollmentActive, EnrollmentCompleted, EnrollmentDropped, EnrollmentExpired:
		return true
	}
	return false
}
