package database

import (
	"errors"

	"gorm.io/gorm"

	"github.com/salvodev/portfolio-backend/errs"
	"github.com/salvodev/portfolio-backend/models"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// FindAll returns all projects ordered for display; display_order ties keep
// insertion order via the id tiebreak.
func (r *ProjectRepo) FindAll() ([]models.Project, error) {
	projects := make([]models.Project, 0)
	err := r.db.Order("display_order asc, id asc").Find(&projects).Error
	return projects, err
}

// FindByID returns a project by its ID
func (r *ProjectRepo) FindByID(id int64) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewNotFound("project")
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Add inserts a new project; the store assigns id and created_at
func (r *ProjectRepo) Add(project *models.Project) error {
	return r.db.Create(project).Error
}

// UpdateFields applies only the supplied columns and returns the full updated
// row. created_at is never part of the map. A missing id fails before any
// write happens.
func (r *ProjectRepo) UpdateFields(id int64, fields map[string]any) (*models.Project, error) {
	project, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}

	if len(fields) == 0 {
		return project, nil
	}

	if err := r.db.Model(&models.Project{}).Where("id = ?", id).Updates(fields).Error; err != nil {
		return nil, err
	}

	return r.FindByID(id)
}
