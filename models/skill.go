package models

import "time"

// Skill represents a single skill with its proficiency on a 1-5 scale
type Skill struct {
	ID               int64     `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	Name             string    `json:"name" db:"name" gorm:"type:text;not null"`
	CategoryID       int64     `json:"category_id" db:"category_id" gorm:"not null;index:idx_skill_category_id"`
	ProficiencyLevel int       `json:"proficiency_level" db:"proficiency_level" gorm:"not null"`
	DisplayOrder     int       `json:"display_order" db:"display_order" gorm:"not null"`
	CreatedAt        time.Time `json:"created_at" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`

	Category *SkillCategory `json:"category,omitempty" gorm:"foreignKey:CategoryID;references:ID"`
}
