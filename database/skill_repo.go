package database

import (
	"gorm.io/gorm"

	"github.com/salvodev/portfolio-backend/models"
)

type SkillRepo struct {
	db *gorm.DB
}

func NewSkillRepo(db *gorm.DB) *SkillRepo {
	return &SkillRepo{db}
}

// FindAll returns all skills ordered for display. Grouping by category is a
// presentation concern, so the list stays flat.
func (r *SkillRepo) FindAll() ([]models.Skill, error) {
	skills := make([]models.Skill, 0)
	err := r.db.Order("display_order asc, id asc").Find(&skills).Error
	return skills, err
}

// Add inserts a new skill; category existence is checked by the handler
// before this point
func (r *SkillRepo) Add(skill *models.Skill) error {
	return r.db.Create(skill).Error
}
