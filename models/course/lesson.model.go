package course

import "gorm.io/gorm"

// Lesson is a unit of content belonging to exactly one course. Order
// indices within a course are contiguous from 0; admin reorder and delete
// reassign them.
type Lesson struct {
	gorm.Model
	CourseID        uint   `json:"course_id" gorm:"index;not null"`
	Title           string `json:"title"`
	Description     string `json:"description" gorm:"type:text"`
	VideoURL        string `json:"video_url"`
	DurationMinutes int    `json:"duration_minutes" gorm:"default:0"`
	OrderIndex      int    `json:"order_index" gorm:"default:0"`
	IsPreview       bool   `json:"is_preview" gorm:"default:false"` // accessible without enrollment
	IsDeleted       bool   `gorm:"default:false"`
}
