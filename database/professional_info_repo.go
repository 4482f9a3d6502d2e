package database

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/salvodev/portfolio-backend/errs"
	"github.com/salvodev/portfolio-backend/models"
)

type ProfessionalInfoRepo struct {
	db *gorm.DB
}

func NewProfessionalInfoRepo(db *gorm.DB) *ProfessionalInfoRepo {
	return &ProfessionalInfoRepo{db}
}

// Current returns the most recently updated row, or nil when none exists.
// An empty table is a valid state, not an error.
func (r *ProfessionalInfoRepo) Current() (*models.ProfessionalInfo, error) {
	var info models.ProfessionalInfo
	err := r.db.Order("updated_at desc, id desc").First(&info).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &info, nil
}

// UpdateFields merges the supplied columns onto the single existing row and
// always bumps updated_at, even when the map is empty. Fails with NotFound
// when no row exists; this path never creates one.
func (r *ProfessionalInfoRepo) UpdateFields(fields map[string]any) (*models.ProfessionalInfo, error) {
	current, err := r.Current()
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, errs.NewNotFound("professional info")
	}

	updates := make(map[string]any, len(fields)+1)
	for column, value := range fields {
		updates[column] = value
	}
	updates["updated_at"] = time.Now()

	if err := r.db.Model(&models.ProfessionalInfo{}).Where("id = ?", current.ID).Updates(updates).Error; err != nil {
		return nil, err
	}

	var info models.ProfessionalInfo
	if err := r.db.First(&info, current.ID).Error; err != nil {
		return nil, err
	}
	return &info, nil
}

// Put upserts the singleton row by its fixed key. Seed-only write path; the
// unique index keeps the table single-row no matter how often it runs.
func (r *ProfessionalInfoRepo) Put(info *models.ProfessionalInfo) error {
	info.SingletonKey = models.SingletonKey
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "singleton_key"}},
		UpdateAll: true,
	}).Create(info).Error
}
