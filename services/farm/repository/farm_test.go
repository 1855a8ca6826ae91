package repository

import (
	"context"
	"testing"

	"rabbitry/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFarmLifecycle(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFarmRepository(db)

	farm, err := repo.CreateFarm(context.Background(), &domain.Farm{
		Name:     "Hilltop Rabbitry",
		Location: "Bandung",
		OwnerID:  1,
	})
	require.NoError(t, err)
	require.NotEmpty(t, farm.FarmID)

	got, err := repo.GetFarmByID(context.Background(), farm.FarmID)
	require.NoError(t, err)
	assert.Equal(t, "Hilltop Rabbitry", got.Name)

	updated, err := repo.UpdateFarm(context.Background(), farm.FarmID, &domain.Farm{
		Location: "Lembang",
	})
	require.NoError(t, err)
	assert.Equal(t, "Lembang", updated.Location)
	assert.Equal(t, "Hilltop Rabbitry", updated.Name)

	require.NoError(t, repo.DeleteFarm(context.Background(), farm.FarmID, 1))

	_, err = repo.GetFarmByID(context.Background(), farm.FarmID)
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}

func TestGetAllFarmsScopedToOwner(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFarmRepository(db)

	_, err := repo.CreateFarm(context.Background(), &domain.Farm{Name: "one", OwnerID: 1})
	require.NoError(t, err)
	_, err = repo.CreateFarm(context.Background(), &domain.Farm{Name: "two", OwnerID: 1})
	require.NoError(t, err)
	_, err = repo.CreateFarm(context.Background(), &domain.Farm{Name: "other", OwnerID: 2})
	require.NoError(t, err)

	farms, err := repo.GetAllFarms(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, *farms, 2)
}

func TestDeleteFarmWrongOwner(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFarmRepository(db)

	farm, err := repo.CreateFarm(context.Background(), &domain.Farm{Name: "one", OwnerID: 1})
	require.NoError(t, err)

	err = repo.DeleteFarm(context.Background(), farm.FarmID, 2)
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))

	// Still there for its owner.
	_, err = repo.GetFarmByID(context.Background(), farm.FarmID)
	require.NoError(t, err)
}
