package store

import (
	"testing"

	"food_storefront/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

func TestNewCatalogStore_SeedsOnFirstRun(t *testing.T) {
	snap := newFakeSnapshotter()

	s, err := NewCatalogStore(snap)
	require.NoError(t, err)

	dishes, err := s.GetAll()
	require.NoError(t, err)
	assert.Len(t, dishes, 6)
	assert.Equal(t, "Пицца Маргарита", dishes[0].Title)
	assert.Equal(t, float64(590), dishes[0].Price)
}

func TestNewCatalogStore_LoadsSnapshotInsteadOfReseeding(t *testing.T) {
	snap := newFakeSnapshotter()
	saved := []models.Dish{{ID: 42, Title: "Борщ", Price: 250}}
	require.NoError(t, snap.SaveSnapshot(dishesKey, saved))

	s, err := NewCatalogStore(snap)
	require.NoError(t, err)

	dishes, err := s.GetAll()
	require.NoError(t, err)
	assert.Len(t, dishes, 1)
	assert.Equal(t, "Борщ", dishes[0].Title)
}

func TestCatalogStore_CreateAssignsIDAndPersists(t *testing.T) {
	snap := newFakeSnapshotter()
	s, err := NewCatalogStore(snap)
	require.NoError(t, err)

	dish := models.Dish{Title: "Борщ", Price: 250}
	require.NoError(t, s.Create(&dish))
	assert.NotZero(t, dish.ID)
	assert.False(t, dish.CreatedAt.IsZero())

	dishes, _ := s.GetAll()
	assert.Len(t, dishes, 7)
	assert.Equal(t, "Борщ", dishes[6].Title)

	// a second store built on the same storage sees the write
	reloaded, err := NewCatalogStore(snap)
	require.NoError(t, err)
	dishes, _ = reloaded.GetAll()
	assert.Len(t, dishes, 7)
}

func TestCatalogStore_UpdateMergesFields(t *testing.T) {
	snap := newFakeSnapshotter()
	s, _ := NewCatalogStore(snap)

	err := s.Update(1, models.DishPatch{Price: floatPtr(640)})
	require.NoError(t, err)

	dishes, _ := s.GetAll()
	assert.Equal(t, float64(640), dishes[0].Price)
	// untouched fields survive the merge
	assert.Equal(t, "Пицца Маргарита", dishes[0].Title)
	assert.Equal(t, "Пицца", dishes[0].Category)
}

func TestCatalogStore_UpdateUnknownIDIsNoop(t *testing.T) {
	snap := newFakeSnapshotter()
	s, _ := NewCatalogStore(snap)
	before, _ := s.GetAll()

	err := s.Update(999999, models.DishPatch{Title: strPtr("призрак")})
	require.NoError(t, err)

	after, _ := s.GetAll()
	assert.Equal(t, before, after)
}

func TestCatalogStore_DeleteRemovesDish(t *testing.T) {
	snap := newFakeSnapshotter()
	s, _ := NewCatalogStore(snap)

	require.NoError(t, s.Delete(1))

	dishes, _ := s.GetAll()
	assert.Len(t, dishes, 5)
	for _, dish := range dishes {
		assert.NotEqual(t, int64(1), dish.ID)
	}
}

func TestCatalogStore_DeleteUnknownIDIsNoop(t *testing.T) {
	snap := newFakeSnapshotter()
	s, _ := NewCatalogStore(snap)
	before, _ := s.GetAll()

	require.NoError(t, s.Delete(999999))

	after, _ := s.GetAll()
	assert.Equal(t, before, after)
}

func TestCatalogStore_EmptyListIsNeverWritten(t *testing.T) {
	snap := newFakeSnapshotter()
	saved := []models.Dish{{ID: 42, Title: "Борщ", Price: 250}}
	require.NoError(t, snap.SaveSnapshot(dishesKey, saved))

	s, _ := NewCatalogStore(snap)
	require.NoError(t, s.Delete(42))

	dishes, _ := s.GetAll()
	assert.Empty(t, dishes)

	// the durable snapshot still holds the last non-empty state
	var persisted []models.Dish
	found, err := snap.LoadSnapshot(dishesKey, &persisted)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Len(t, persisted, 1)
}

func TestCatalogStore_FailedPersistLeavesMemoryUnchanged(t *testing.T) {
	snap := newFakeSnapshotter()
	s, _ := NewCatalogStore(snap)
	before, _ := s.GetAll()

	snap.failSave = true

	dish := models.Dish{Title: "Борщ", Price: 250}
	assert.Error(t, s.Create(&dish))
	assert.Error(t, s.Update(1, models.DishPatch{Price: floatPtr(1)}))
	assert.Error(t, s.Delete(1))

	after, _ := s.GetAll()
	assert.Equal(t, before, after)
}
