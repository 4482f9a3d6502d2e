package database

import (
	"errors"

	"gorm.io/gorm"

	"github.com/salvodev/portfolio-backend/models"
)

type SkillCategoryRepo struct {
	db *gorm.DB
}

func NewSkillCategoryRepo(db *gorm.DB) *SkillCategoryRepo {
	return &SkillCategoryRepo{db}
}

// FindAll returns all skill categories ordered for display
func (r *SkillCategoryRepo) FindAll() ([]models.SkillCategory, error) {
	categories := make([]models.SkillCategory, 0)
	err := r.db.Order("display_order asc, id asc").Find(&categories).Error
	return categories, err
}

// Exists reports whether a category with the given id is present
func (r *SkillCategoryRepo) Exists(id int64) (bool, error) {
	var category models.SkillCategory
	err := r.db.Select("id").First(&category, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Add inserts a new skill category
func (r *SkillCategoryRepo) Add(category *models.SkillCategory) error {
	return r.db.Create(category).Error
}
