package course

import (
	"time"

	"gorm.io/gorm"
)

// LessonProgress statuses
const (
	LessonInProgress = "in_progress"
	LessonCompleted  = "completed"
)

// LessonProgress is the fact record "this user reached/finished this
// lesson". At most one row exists per (user, lesson); completion writes
// are upserts against that key.
type LessonProgress struct {
	gorm.Model
	UserID         uint       `json:"user_id" gorm:"not null;uniqueIndex:idx_progress_user_lesson"`
	LessonID       uint       `json:"lesson_id" gorm:"not null;uniqueIndex:idx_progress_user_lesson"`
	CourseID       uint       `json:"course_id" gorm:"index;not null"`
	EnrollmentID   uint       `json:"enrollment_id" gorm:"index;not null"`
	Status         string     `json:"status" gorm:"default:'in_progress'"`
	CompletedAt    *time.Time `json:"completed_at"`
	LastAccessedAt time.Time  `json:"last_accessed_at"`
}
