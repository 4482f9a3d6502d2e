package validate

import (
	"gorm.io/datatypes"

	"github.com/salvodev/portfolio-backend/errs"
	"github.com/salvodev/portfolio-backend/models"
)

// CreateProjectInput is the validated input shape of the createProject mutation
type CreateProjectInput struct {
	Title        string   `json:"title" validate:"required,min=1"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies" validate:"required,min=1"`
	DemoURL      *string  `json:"demo_url" validate:"omitempty,url"`
	GithubURL    *string  `json:"github_url" validate:"omitempty,url"`
	NpmURL       *string  `json:"npm_url" validate:"omitempty,url"`
	SlidesURL    *string  `json:"slides_url" validate:"omitempty,url"`
	ImageURL     *string  `json:"image_url" validate:"omitempty,url"`
	DisplayOrder int      `json:"display_order" validate:"gte=0"`
}

func (in CreateProjectInput) Validate() error {
	return Struct(in)
}

// Model builds the row to insert; the store assigns id and created_at
func (in CreateProjectInput) Model() *models.Project {
	return &models.Project{
		Title:        in.Title,
		Description:  in.Description,
		Technologies: datatypes.NewJSONSlice(in.Technologies),
		DemoURL:      in.DemoURL,
		GithubURL:    in.GithubURL,
		NpmURL:       in.NpmURL,
		SlidesURL:    in.SlidesURL,
		ImageURL:     in.ImageURL,
		DisplayOrder: in.DisplayOrder,
	}
}

// UpdateProjectInput carries the target id plus tri-state partial fields.
// Absent fields are left unchanged; null clears only nullable columns.
type UpdateProjectInput struct {
	ID           int64              `json:"id"`
	Title        Optional[string]   `json:"title"`
	Description  Optional[string]   `json:"description"`
	Technologies Optional[[]string] `json:"technologies"`
	DemoURL      Optional[string]   `json:"demo_url"`
	GithubURL    Optional[string]   `json:"github_url"`
	NpmURL       Optional[string]   `json:"npm_url"`
	SlidesURL    Optional[string]   `json:"slides_url"`
	ImageURL     Optional[string]   `json:"image_url"`
	DisplayOrder Optional[int]      `json:"display_order"`
}

func (in UpdateProjectInput) Validate() error {
	ve := errs.NewValidationError()

	if in.ID <= 0 {
		ve.Add("id", "required", "is required")
	}
	if in.Title.Set {
		if in.Title.Null {
			ve.Add("title", "required", "cannot be null")
		} else {
			Field(ve, "title", in.Title.Value, "min=1")
		}
	}
	if in.Description.Set && in.Description.Null {
		ve.Add("description", "required", "cannot be null")
	}
	if in.Technologies.Set {
		if in.Technologies.Null {
			ve.Add("technologies", "required", "cannot be null")
		} else {
			Field(ve, "technologies", in.Technologies.Value, "min=1")
		}
	}
	for _, u := range []struct {
		name  string
		field Optional[string]
	}{
		{"demo_url", in.DemoURL},
		{"github_url", in.GithubURL},
		{"npm_url", in.NpmURL},
		{"slides_url", in.SlidesURL},
		{"image_url", in.ImageURL},
	} {
		if u.field.HasValue() {
			Field(ve, u.name, u.field.Value, "url")
		}
	}
	if in.DisplayOrder.Set {
		if in.DisplayOrder.Null {
			ve.Add("display_order", "required", "cannot be null")
		} else {
			Field(ve, "display_order", in.DisplayOrder.Value, "gte=0")
		}
	}

	return ve.OrNil()
}

// Fields returns the column map the store applies; only present fields appear,
// explicit nulls come through as nil values.
func (in UpdateProjectInput) Fields() map[string]any {
	fields := map[string]any{}

	if in.Title.Set {
		fields["title"] = in.Title.Value
	}
	if in.Description.Set {
		fields["description"] = in.Description.Value
	}
	if in.Technologies.Set {
		fields["technologies"] = datatypes.NewJSONSlice(in.Technologies.Value)
	}
	setNullable(fields, "demo_url", in.DemoURL)
	setNullable(fields, "github_url", in.GithubURL)
	setNullable(fields, "npm_url", in.NpmURL)
	setNullable(fields, "slides_url", in.SlidesURL)
	setNullable(fields, "image_url", in.ImageURL)
	if in.DisplayOrder.Set {
		fields["display_order"] = in.DisplayOrder.Value
	}

	return fields
}

func setNullable[T any](fields map[string]any, column string, o Optional[T]) {
	if !o.Set {
		return
	}
	if o.Null {
		fields[column] = nil
		return
	}
	fields[column] = o.Value
}
