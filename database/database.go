package database

import (
	"gorm.io/gorm"

	"github.com/salvodev/portfolio-backend/models"
)

type Database struct {
	projectRepo          *ProjectRepo
	skillRepo            *SkillRepo
	skillCategoryRepo    *SkillCategoryRepo
	professionalInfoRepo *ProfessionalInfoRepo
	contactFormRepo      *ContactFormRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		projectRepo:          NewProjectRepo(db),
		skillRepo:            NewSkillRepo(db),
		skillCategoryRepo:    NewSkillCategoryRepo(db),
		professionalInfoRepo: NewProfessionalInfoRepo(db),
		contactFormRepo:      NewContactFormRepo(db),
	}
}

// Migrate creates or updates the schema for every entity table
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.SkillCategory{},
		&models.Skill{},
		&models.Project{},
		&models.ProfessionalInfo{},
		&models.ContactForm{},
	)
}

// Accessor methods for each repository

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) SkillRepo() *SkillRepo {
	return d.skillRepo
}

func (d Database) SkillCategoryRepo() *SkillCategoryRepo {
	return d.skillCategoryRepo
}

func (d Database) ProfessionalInfoRepo() *ProfessionalInfoRepo {
	return d.professionalInfoRepo
}

func (d Database) ContactFormRepo() *ContactFormRepo {
	return d.contactFormRepo
}
