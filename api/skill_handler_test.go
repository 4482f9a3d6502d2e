package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salvodev/portfolio-backend/models"
)

func addTestCategory(t *testing.T, server testServer, name string, displayOrder int) models.SkillCategory {
	t.Helper()

	category := models.SkillCategory{Name: name, DisplayOrder: displayOrder}
	require.NoError(t, server.db.SkillCategoryRepo().Add(&category))
	return category
}

func TestCreateSkillAndGetSkills(t *testing.T) {
	server := newTestServer(t)

	frameworks := addTestCategory(t, server, "Frameworks", 2)
	languages := addTestCategory(t, server, "Linguaggi", 1)

	rr := server.mutate(t, "createSkill", map[string]any{
		"name":              "React",
		"category_id":       frameworks.ID,
		"proficiency_level": 5,
		"display_order":     1,
	})
	require.Equal(t, http.StatusCreated, rr.Code, "body: %s", rr.Body.String())

	created := decodeBody[models.Skill](t, rr)
	assert.NotZero(t, created.ID)
	assert.Equal(t, frameworks.ID, created.CategoryID)

	rr = server.query(t, "getSkills")
	require.Equal(t, http.StatusOK, rr.Code)

	response := decodeBody[SkillsResponse](t, rr)
	require.Len(t, response.Categories, 2)
	assert.Equal(t, languages.ID, response.Categories[0].ID, "categories ordered by display_order")
	require.Len(t, response.Skills, 1)
	assert.Equal(t, "React", response.Skills[0].Name)
}

func TestCreateSkillDanglingCategory(t *testing.T) {
	server := newTestServer(t)

	rr := server.mutate(t, "createSkill", map[string]any{
		"name":              "Orphan",
		"category_id":       4242,
		"proficiency_level": 3,
		"display_order":     0,
	})
	require.Equal(t, http.StatusBadRequest, rr.Code)

	// the skills collection is untouched
	response := decodeBody[SkillsResponse](t, server.query(t, "getSkills"))
	assert.Empty(t, response.Skills)
}

func TestCreateSkillRejectsOutOfRangeProficiency(t *testing.T) {
	server := newTestServer(t)

	category := addTestCategory(t, server, "Other", 6)

	for _, level := range []int{0, 6} {
		rr := server.mutate(t, "createSkill", map[string]any{
			"name":              "Overconfident",
			"category_id":       category.ID,
			"proficiency_level": level,
			"display_order":     0,
		})
		assert.Equal(t, http.StatusBadRequest, rr.Code, "level %d must be rejected, not clamped", level)
	}
}
