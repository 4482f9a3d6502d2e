package database

import (
	"gorm.io/gorm"

	"github.com/salvodev/portfolio-backend/models"
)

type ContactFormRepo struct {
	db *gorm.DB
}

func NewContactFormRepo(db *gorm.DB) *ContactFormRepo {
	return &ContactFormRepo{db}
}

// Add inserts a new submission. Append-only, no idempotency key: identical
// resubmissions become distinct rows. replied starts false regardless of input.
func (r *ContactFormRepo) Add(form *models.ContactForm) error {
	form.ID = 0
	form.Replied = false
	return r.db.Create(form).Error
}

// FindAll returns all submissions newest first; created_at ties fall back to
// reverse insertion order via the id tiebreak.
func (r *ContactFormRepo) FindAll() ([]models.ContactForm, error) {
	forms := make([]models.ContactForm, 0)
	err := r.db.Order("created_at desc, id desc").Find(&forms).Error
	return forms, err
}
