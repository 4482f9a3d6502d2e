package validate

import "github.com/salvodev/portfolio-backend/errs"

// UpdateProfessionalInfoInput carries tri-state partial fields for the
// singleton about-section row. team_size and cv_url are nullable; every other
// field rejects explicit null. An entirely empty input is valid and results in
// a timestamp-only touch.
type UpdateProfessionalInfoInput struct {
	FullName        Optional[string] `json:"full_name"`
	Title           Optional[string] `json:"title"`
	Bio             Optional[string] `json:"bio"`
	Location        Optional[string] `json:"location"`
	YearsExperience Optional[int]    `json:"years_experience"`
	CurrentPosition Optional[string] `json:"current_position"`
	CurrentCompany  Optional[string] `json:"current_company"`
	TeamSize        Optional[int]    `json:"team_size"`
	CVURL           Optional[string] `json:"cv_url"`
}

func (in UpdateProfessionalInfoInput) Validate() error {
	ve := errs.NewValidationError()

	for _, f := range []struct {
		name  string
		field Optional[string]
		rules string
	}{
		{"full_name", in.FullName, "min=1,max=100"},
		{"title", in.Title, "min=1,max=100"},
		{"bio", in.Bio, "max=2000"},
		{"location", in.Location, "max=100"},
		{"current_position", in.CurrentPosition, "max=100"},
		{"current_company", in.CurrentCompany, "max=100"},
	} {
		if !f.field.Set {
			continue
		}
		if f.field.Null {
			ve.Add(f.name, "required", "cannot be null")
			continue
		}
		Field(ve, f.name, f.field.Value, f.rules)
	}

	if in.YearsExperience.Set {
		if in.YearsExperience.Null {
			ve.Add("years_experience", "required", "cannot be null")
		} else {
			Field(ve, "years_experience", in.YearsExperience.Value, "gte=0")
		}
	}
	if in.TeamSize.HasValue() {
		Field(ve, "team_size", in.TeamSize.Value, "gte=0")
	}
	if in.CVURL.HasValue() {
		Field(ve, "cv_url", in.CVURL.Value, "url")
	}

	return ve.OrNil()
}

// Fields returns the column map the store applies. The store adds the
// updated_at bump itself so even an empty map advances the timestamp.
func (in UpdateProfessionalInfoInput) Fields() map[string]any {
	fields := map[string]any{}

	if in.FullName.Set {
		fields["full_name"] = in.FullName.Value
	}
	if in.Title.Set {
		fields["title"] = in.Title.Value
	}
	if in.Bio.Set {
		fields["bio"] = in.Bio.Value
	}
	if in.Location.Set {
		fields["location"] = in.Location.Value
	}
	if in.YearsExperience.Set {
		fields["years_experience"] = in.YearsExperience.Value
	}
	if in.CurrentPosition.Set {
		fields["current_position"] = in.CurrentPosition.Value
	}
	if in.CurrentCompany.Set {
		fields["current_company"] = in.CurrentCompany.Value
	}
	setNullable(fields, "team_size", in.TeamSize)
	setNullable(fields, "cv_url", in.CVURL)

	return fields
}
