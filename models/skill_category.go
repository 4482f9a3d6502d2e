package models

import "time"

// SkillCategory represents a group of skills (Programming Languages, Frameworks, ...)
type SkillCategory struct {
	ID           int64     `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	Name         string    `json:"name" db:"name" gorm:"type:text;not null"`
	DisplayOrder int       `json:"display_order" db:"display_order" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
}
