package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salvodev/portfolio-backend/models"
)

func TestSkillCategoryRepoExists(t *testing.T) {
	d := newTestDatabase(t)
	repo := d.SkillCategoryRepo()

	category := &models.SkillCategory{Name: "Frameworks", DisplayOrder: 2}
	require.NoError(t, repo.Add(category))

	exists, err := repo.Exists(category.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.Exists(99999)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestSkillAndCategoryOrdering(t *testing.T) {
	d := newTestDatabase(t)

	second := &models.SkillCategory{Name: "Frameworks", DisplayOrder: 2}
	first := &models.SkillCategory{Name: "Linguaggi", DisplayOrder: 1}
	require.NoError(t, d.SkillCategoryRepo().Add(second))
	require.NoError(t, d.SkillCategoryRepo().Add(first))

	categories, err := d.SkillCategoryRepo().FindAll()
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "Linguaggi", categories[0].Name)
	assert.Equal(t, "Frameworks", categories[1].Name)

	skills := []models.Skill{
		{Name: "React", CategoryID: second.ID, ProficiencyLevel: 5, DisplayOrder: 2},
		{Name: "JavaScript", CategoryID: first.ID, ProficiencyLevel: 5, DisplayOrder: 1},
		{Name: "Node.js", CategoryID: second.ID, ProficiencyLevel: 5, DisplayOrder: 1},
	}
	for i := range skills {
		require.NoError(t, d.SkillRepo().Add(&skills[i]))
	}

	ordered, err := d.SkillRepo().FindAll()
	require.NoError(t, err)
	require.Len(t, ordered, 3)

	// display_order ascending; the tie between the two order-1 skills keeps
	// insertion order
	assert.Equal(t, "JavaScript", ordered[0].Name)
	assert.Equal(t, "Node.js", ordered[1].Name)
	assert.Equal(t, "React", ordered[2].Name)
}
