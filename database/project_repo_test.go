package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/salvodev/portfolio-backend/errs"
	"github.com/salvodev/portfolio-backend/models"
)

func addProject(t *testing.T, repo *ProjectRepo, title string, displayOrder int) *models.Project {
	t.Helper()

	project := &models.Project{
		Title:        title,
		Description:  "d",
		Technologies: datatypes.JSONSlice[string]{"Go"},
		DisplayOrder: displayOrder,
	}
	require.NoError(t, repo.Add(project))
	require.NotZero(t, project.ID)
	require.False(t, project.CreatedAt.IsZero())
	return project
}

func TestProjectRepoOrderingWithTies(t *testing.T) {
	repo := newTestDatabase(t).ProjectRepo()

	// display_order sequence 2, 1, 1: the two ties must keep insertion order
	addProject(t, repo, "third", 2)
	first := addProject(t, repo, "first", 1)
	second := addProject(t, repo, "second", 1)

	projects, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, projects, 3)

	assert.Equal(t, first.ID, projects[0].ID)
	assert.Equal(t, second.ID, projects[1].ID)
	assert.Equal(t, "third", projects[2].Title)
}

func TestProjectRepoTechnologiesRoundTrip(t *testing.T) {
	repo := newTestDatabase(t).ProjectRepo()

	project := &models.Project{
		Title:        "Cubo Pazzesco",
		Description:  "Un cubo pazzesco in 3D",
		Technologies: datatypes.JSONSlice[string]{"JavaScript", "ThreeJS", "JavaScript"},
		DisplayOrder: 0,
	}
	require.NoError(t, repo.Add(project))

	projects, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, projects, 1)

	// exact order, no dedup
	assert.Equal(t, datatypes.JSONSlice[string]{"JavaScript", "ThreeJS", "JavaScript"}, projects[0].Technologies)
}

func TestProjectRepoUpdateFieldsPartial(t *testing.T) {
	repo := newTestDatabase(t).ProjectRepo()

	demo := "https://example.com/demo"
	project := &models.Project{
		Title:        "Original",
		Description:  "original description",
		Technologies: datatypes.JSONSlice[string]{"Vite", "React"},
		DemoURL:      &demo,
		DisplayOrder: 3,
	}
	require.NoError(t, repo.Add(project))

	before, err := repo.FindByID(project.ID)
	require.NoError(t, err)

	updated, err := repo.UpdateFields(project.ID, map[string]any{"title": "Renamed"})
	require.NoError(t, err)

	assert.Equal(t, "Renamed", updated.Title)
	assert.Equal(t, before.Description, updated.Description)
	assert.Equal(t, before.Technologies, updated.Technologies)
	require.NotNil(t, updated.DemoURL)
	assert.Equal(t, *before.DemoURL, *updated.DemoURL)
	assert.Equal(t, before.DisplayOrder, updated.DisplayOrder)
	assert.True(t, before.CreatedAt.Equal(updated.CreatedAt))
}

func TestProjectRepoUpdateFieldsClearsNullable(t *testing.T) {
	repo := newTestDatabase(t).ProjectRepo()

	demo := "https://example.com/demo"
	project := &models.Project{
		Title:        "With demo",
		Technologies: datatypes.JSONSlice[string]{"Go"},
		DemoURL:      &demo,
	}
	require.NoError(t, repo.Add(project))

	updated, err := repo.UpdateFields(project.ID, map[string]any{"demo_url": nil})
	require.NoError(t, err)
	assert.Nil(t, updated.DemoURL)
}

func TestProjectRepoUpdateFieldsNotFound(t *testing.T) {
	repo := newTestDatabase(t).ProjectRepo()

	addProject(t, repo, "only", 1)

	_, err := repo.UpdateFields(99999, map[string]any{"title": "ghost"})
	require.Error(t, err)
	assert.True(t, errs.IsNotFound(err))

	// no write happened
	projects, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "only", projects[0].Title)
}

func TestProjectRepoUpdateFieldsEmptyPartial(t *testing.T) {
	repo := newTestDatabase(t).ProjectRepo()

	project := addProject(t, repo, "untouched", 1)

	updated, err := repo.UpdateFields(project.ID, map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, "untouched", updated.Title)
	assert.True(t, project.CreatedAt.Equal(updated.CreatedAt))
}
