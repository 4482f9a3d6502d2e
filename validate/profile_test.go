package validate

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateProfessionalInfoInputEmptyPartialIsValid(t *testing.T) {
	var input UpdateProfessionalInfoInput
	require.NoError(t, json.Unmarshal([]byte(`{}`), &input))

	require.NoError(t, input.Validate())
	assert.Empty(t, input.Fields())
}

func TestUpdateProfessionalInfoInputNullableFields(t *testing.T) {
	var input UpdateProfessionalInfoInput
	require.NoError(t, json.Unmarshal([]byte(`{"team_size":null,"cv_url":null}`), &input))

	require.NoError(t, input.Validate())

	fields := input.Fields()
	teamSize, present := fields["team_size"]
	require.True(t, present)
	assert.Nil(t, teamSize)

	cvURL, present := fields["cv_url"]
	require.True(t, present)
	assert.Nil(t, cvURL)
}

func TestUpdateProfessionalInfoInputNullOnRequiredField(t *testing.T) {
	var input UpdateProfessionalInfoInput
	require.NoError(t, json.Unmarshal([]byte(`{"full_name":null,"years_experience":null}`), &input))

	fields := violatedFields(t, input.Validate())
	assert.Contains(t, fields, "full_name")
	assert.Contains(t, fields, "years_experience")
}

func TestUpdateProfessionalInfoInputRules(t *testing.T) {
	var input UpdateProfessionalInfoInput
	require.NoError(t, json.Unmarshal([]byte(`{"full_name":"","years_experience":-1,"team_size":-2,"cv_url":"nope"}`), &input))

	fields := violatedFields(t, input.Validate())
	assert.ElementsMatch(t, []string{"full_name", "years_experience", "team_size", "cv_url"}, fields)
}

func TestUpdateProfessionalInfoInputPartialFields(t *testing.T) {
	var input UpdateProfessionalInfoInput
	require.NoError(t, json.Unmarshal([]byte(`{"location":"Roma, Italia","team_size":16}`), &input))

	require.NoError(t, input.Validate())
	assert.Equal(t, map[string]any{"location": "Roma, Italia", "team_size": 16}, input.Fields())
}
