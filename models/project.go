package models

import (
	"time"

	"gorm.io/datatypes"
)

// Project represents a portfolio project shown in the projects section
type Project struct {
	ID           int64                       `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	Title        string                      `json:"title" db:"title" gorm:"type:text;not null"`
	Description  string                      `json:"description" db:"description" gorm:"type:text;not null"`
	Technologies datatypes.JSONSlice[string] `json:"technologies" db:"technologies" gorm:"not null"`
	DemoURL      *string                     `json:"demo_url" db:"demo_url" gorm:"type:text"`
	GithubURL    *string                     `json:"github_url" db:"github_url" gorm:"type:text"`
	NpmURL       *string                     `json:"npm_url" db:"npm_url" gorm:"type:text"`
	SlidesURL    *string                     `json:"slides_url" db:"slides_url" gorm:"type:text"`
	ImageURL     *string                     `json:"image_url" db:"image_url" gorm:"type:text"`
	DisplayOrder int                         `json:"display_order" db:"display_order" gorm:"not null"`
	CreatedAt    time.Time                   `json:"created_at" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
}
