package models

import "gorm.io/gorm"

// Resource is a downloadable or linked career resource published by admins
type Resource struct {
	gorm.Model
	Title       string `json:"title"`
	Description string `json:"description" gorm:"type:text"`
	Category    string `json:"category" gorm:"default:'general'"`
	FileURL     string `json:"file_url"`     // set when a file was uploaded
	ExternalURL string `json:"external_url"` // set when the resource is a link
	IsDeleted   bool   `gorm:"default:false"`
}
