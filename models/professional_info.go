package models

import "time"

// SingletonKey is the fixed key of the one professional info row. The unique
// index on it keeps the table single-row at the store boundary.
const SingletonKey = "profile"

// ProfessionalInfo represents the about-section data. At most one logical row
// exists; reads take the most recently updated one.
type ProfessionalInfo struct {
	ID              int64     `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	SingletonKey    string    `json:"-" db:"singleton_key" gorm:"type:text;not null;default:'profile';uniqueIndex:idx_professional_info_singleton"`
	FullName        string    `json:"full_name" db:"full_name" gorm:"type:text;not null"`
	Title           string    `json:"title" db:"title" gorm:"type:text;not null"`
	Bio             string    `json:"bio" db:"bio" gorm:"type:text;not null"`
	Location        string    `json:"location" db:"location" gorm:"type:text;not null"`
	YearsExperience int       `json:"years_experience" db:"years_experience" gorm:"not null"`
	CurrentPosition string    `json:"current_position" db:"current_position" gorm:"type:text;not null"`
	CurrentCompany  string    `json:"current_company" db:"current_company" gorm:"type:text;not null"`
	TeamSize        *int      `json:"team_size" db:"team_size"`
	CVURL           *string   `json:"cv_url" db:"cv_url" gorm:"column:cv_url;type:text"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
}
