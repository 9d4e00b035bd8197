package store

import (
	"testing"

	"food_storefront/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pendingOrder() *models.Order {
	return &models.Order{
		CustomerName:    "Иван",
		CustomerPhone:   "+79990001122",
		DeliveryAddress: "ул. Ленина, 1",
		OrderType:       models.TypeDelivery,
		Items: []models.OrderItem{
			{DishID: 1, DishTitle: "Пицца Маргарита", Quantity: 2, Price: 590},
		},
		TotalPrice: 1180,
		Status:     models.OrderPending,
	}
}

func TestOrderStore_StartsEmpty(t *testing.T) {
	s, err := NewOrderStore(newFakeSnapshotter())
	require.NoError(t, err)

	orders, err := s.GetAll()
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestOrderStore_CreateAssignsIDAndPersists(t *testing.T) {
	snap := newFakeSnapshotter()
	s, _ := NewOrderStore(snap)

	order := pendingOrder()
	require.NoError(t, s.Create(order))
	assert.NotZero(t, order.ID)
	assert.False(t, order.CreatedAt.IsZero())
	assert.Equal(t, order.ID, order.Items[0].OrderID)

	reloaded, err := NewOrderStore(snap)
	require.NoError(t, err)
	orders, _ := reloaded.GetAll()
	require.Len(t, orders, 1)
	assert.Equal(t, "Иван", orders[0].CustomerName)
	assert.Equal(t, float64(1180), orders[0].TotalPrice)
}

func TestOrderStore_ItemsAreSnapshotCopies(t *testing.T) {
	s, _ := NewOrderStore(newFakeSnapshotter())

	items := []models.OrderItem{
		{DishID: 1, DishTitle: "Пицца Маргарита", Quantity: 1, Price: 590},
	}
	order := pendingOrder()
	order.Items = items
	require.NoError(t, s.Create(order))

	// mutating the caller's slice must not reach the store
	items[0].Quantity = 99
	items[0].Price = 1

	orders, _ := s.GetAll()
	assert.Equal(t, 1, orders[0].Items[0].Quantity)
	assert.Equal(t, float64(590), orders[0].Items[0].Price)
}

func TestOrderStore_FrozenAgainstCatalogEdits(t *testing.T) {
	snap := newFakeSnapshotter()
	catalog, _ := NewCatalogStore(snap)
	s, _ := NewOrderStore(snap)

	order := pendingOrder()
	require.NoError(t, s.Create(order))

	// edit and then delete the underlying dish
	price := float64(990)
	require.NoError(t, catalog.Update(1, models.DishPatch{Price: &price}))
	require.NoError(t, catalog.Delete(1))

	orders, _ := s.GetAll()
	require.Len(t, orders, 1)
	assert.Equal(t, float64(590), orders[0].Items[0].Price)
	assert.Equal(t, float64(1180), orders[0].TotalPrice)
}

func TestOrderStore_UpdateStatusIsUnguarded(t *testing.T) {
	s, _ := NewOrderStore(newFakeSnapshotter())
	order := pendingOrder()
	require.NoError(t, s.Create(order))

	// any status may follow any other
	require.NoError(t, s.UpdateStatus(order.ID, models.OrderCompleted))
	orders, _ := s.GetAll()
	assert.Equal(t, models.OrderCompleted, orders[0].Status)

	require.NoError(t, s.UpdateStatus(order.ID, models.OrderPending))
	orders, _ = s.GetAll()
	assert.Equal(t, models.OrderPending, orders[0].Status)
}

func TestOrderStore_UpdateStatusUnknownIDIsNoop(t *testing.T) {
	s, _ := NewOrderStore(newFakeSnapshotter())
	order := pendingOrder()
	require.NoError(t, s.Create(order))
	before, _ := s.GetAll()

	require.NoError(t, s.UpdateStatus(999999, models.OrderCancelled))

	after, _ := s.GetAll()
	assert.Equal(t, before, after)
}

func TestOrderStore_FailedPersistLeavesMemoryUnchanged(t *testing.T) {
	snap := newFakeSnapshotter()
	s, _ := NewOrderStore(snap)
	require.NoError(t, s.Create(pendingOrder()))
	before, _ := s.GetAll()

	snap.failSave = true

	assert.Error(t, s.Create(pendingOrder()))
	assert.Error(t, s.UpdateStatus(before[0].ID, models.OrderCancelled))

	after, _ := s.GetAll()
	assert.Equal(t, before, after)
}
