package validate

import "github.com/salvodev/portfolio-backend/models"

// CreateSkillInput is the validated input shape of the createSkill mutation.
// proficiency_level is rejected outside 1-5, never clamped.
type CreateSkillInput struct {
	Name             string `json:"name" validate:"required,min=1,max=100"`
	CategoryID       int64  `json:"category_id" validate:"required,gt=0"`
	ProficiencyLevel int    `json:"proficiency_level" validate:"gte=1,lte=5"`
	DisplayOrder     int    `json:"display_order" validate:"gte=0"`
}

func (in CreateSkillInput) Validate() error {
	return Struct(in)
}

func (in CreateSkillInput) Model() *models.Skill {
	return &models.Skill{
		Name:             in.Name,
		CategoryID:       in.CategoryID,
		ProficiencyLevel: in.ProficiencyLevel,
		DisplayOrder:     in.DisplayOrder,
	}
}
