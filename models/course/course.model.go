package course

import "gorm.io/gorm"

// Course represents a learning course
type Course struct {
	gorm.Model
	Title          string  `json:"title"`
	Description    string  `json:"description" gorm:"type:text"`
	InstructorName string  `json:"instructor_name"`
	Level          string  `json:"level" gorm:"default:'beginner'"` // beginner, intermediate, advanced
	Duration       string  `json:"duration"`                        // display string, e.g. "6 weeks"
	Price          float64 `json:"price" gorm:"default:0"`
	IsPremium      bool    `json:"is_premium" gorm:"default:false"`
	IsPublished    bool    `json:"is_published" gorm:"default:false"`
	ThumbnailURL   string  `json:"thumbnail_url"`
	IsDeleted      bool    `gorm:"default:false"`
}
