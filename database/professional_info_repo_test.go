package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salvodev/portfolio-backend/errs"
	"github.com/salvodev/portfolio-backend/models"
)

func seedProfile(t *testing.T, repo *ProfessionalInfoRepo) *models.ProfessionalInfo {
	t.Helper()

	info := &models.ProfessionalInfo{
		FullName:        "Salvatore",
		Title:           "Senior Full Stack Developer",
		Bio:             "bio",
		Location:        "Roma, Italia",
		YearsExperience: 9,
		CurrentPosition: "Practice Leader",
		CurrentCompany:  "GotoNext SRL",
	}
	require.NoError(t, repo.Put(info))
	return info
}

func TestProfessionalInfoRepoEmptyIsNotAnError(t *testing.T) {
	repo := newTestDatabase(t).ProfessionalInfoRepo()

	info, err := repo.Current()
	require.NoError(t, err)
	assert.Nil(t, info)
}

func TestProfessionalInfoRepoUpdateWithoutRowIsNotFound(t *testing.T) {
	repo := newTestDatabase(t).ProfessionalInfoRepo()

	_, err := repo.UpdateFields(map[string]any{"location": "Milano"})
	require.Error(t, err)
	assert.True(t, errs.IsNotFound(err))

	// still no row: the update path never creates one
	info, err := repo.Current()
	require.NoError(t, err)
	assert.Nil(t, info)
}

func TestProfessionalInfoRepoEmptyPartialTouchesTimestamp(t *testing.T) {
	repo := newTestDatabase(t).ProfessionalInfoRepo()
	seedProfile(t, repo)

	before, err := repo.Current()
	require.NoError(t, err)
	require.NotNil(t, before)

	time.Sleep(5 * time.Millisecond)

	after, err := repo.UpdateFields(map[string]any{})
	require.NoError(t, err)

	assert.Equal(t, before.FullName, after.FullName)
	assert.Equal(t, before.Bio, after.Bio)
	assert.Equal(t, before.YearsExperience, after.YearsExperience)
	assert.True(t, after.UpdatedAt.After(before.UpdatedAt), "updated_at must strictly advance")
}

func TestProfessionalInfoRepoPartialMerge(t *testing.T) {
	repo := newTestDatabase(t).ProfessionalInfoRepo()
	seedProfile(t, repo)

	after, err := repo.UpdateFields(map[string]any{
		"location":  "Milano, Italia",
		"team_size": 20,
	})
	require.NoError(t, err)

	assert.Equal(t, "Milano, Italia", after.Location)
	require.NotNil(t, after.TeamSize)
	assert.Equal(t, 20, *after.TeamSize)
	assert.Equal(t, "Salvatore", after.FullName)
}

func TestProfessionalInfoRepoPutKeepsSingleRow(t *testing.T) {
	db := openTestDB(t)
	repo := NewProfessionalInfoRepo(db)

	seedProfile(t, repo)
	second := &models.ProfessionalInfo{
		FullName:        "Salvatore Aggiornato",
		Title:           "Senior Full Stack Developer",
		Bio:             "bio",
		Location:        "Roma, Italia",
		YearsExperience: 10,
		CurrentPosition: "Practice Leader",
		CurrentCompany:  "GotoNext SRL",
	}
	require.NoError(t, repo.Put(second))

	var count int64
	require.NoError(t, db.Model(&models.ProfessionalInfo{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	current, err := repo.Current()
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, "Salvatore Aggiornato", current.FullName)
}
