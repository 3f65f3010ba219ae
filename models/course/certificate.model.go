package course

import (
	"time"

	"gorm.io/gorm"
)

// Certificate is an issued credential for a fully completed enrollment.
// The composite unique index on (user_id, course_id) is the real guard
// against two concurrent generations creating duplicates; the
// application-level existence check is only a fast path.
type Certificate struct {
	gorm.Model
	UserID            uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_certificate_user_course"`
	CourseID          uint      `json:"course_id" gorm:"not null;uniqueIndex:idx_certificate_user_course"`
	EnrollmentID      uint      `json:"enrollment_id" gorm:"index;not null"`
	CertificateNumber string    `json:"certificate_number" gorm:"unique"` // CRH-<year>-<5 digits>
	VerificationCode  string    `json:"verification_code" gorm:"unique"`  // 12 chars, uppercase alphanumeric
	InstructorName    string    `json:"instructor_name"`
	CompletionDate    time.Time `json:"completion_date"` // when the last required lesson was finished
	IssuedAt          time.Time `json:"issued_at"`
	IsVerified        bool      `json:"is_verified" gorm:"default:false"`
}
