package store

import (
	"fmt"
	"sync"
	"time"

	"food_storefront/internal/models"
)

// OrderStore keeps submitted orders in memory and mirrors them to a
// single durable snapshot key. Orders are append-only; only the status
// field changes after creation.
type OrderStore struct {
	mu     sync.Mutex
	snap   Snapshotter
	orders []models.Order
}

func NewOrderStore(snap Snapshotter) (*OrderStore, error) {
	s := &OrderStore{snap: snap}

	found, err := snap.LoadSnapshot(ordersKey, &s.orders)
	if err != nil {
		return nil, fmt.Errorf("failed to load order snapshot: %w", err)
	}
	if !found {
		s.orders = nil
	}
	return s, nil
}

func (s *OrderStore) GetAll() ([]models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Order(nil), s.orders...), nil
}

// Create assigns id and creation timestamp, appends and persists. The
// items are copied so the stored order never observes later mutations
// of the caller's slice.
func (s *OrderStore) Create(order *models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	order.ID = now.UnixMilli()
	order.CreatedAt = now
	order.UpdatedAt = now
	order.Items = append([]models.OrderItem(nil), order.Items...)
	for i := range order.Items {
		order.Items[i].OrderID = order.ID
	}

	next := append(append([]models.Order(nil), s.orders...), *order)
	if err := s.persist(next); err != nil {
		return err
	}
	s.orders = next
	return nil
}

// UpdateStatus sets the status of the matching order. Any status may
// follow any other; transitions are not validated. An unknown id is a
// silent no-op.
func (s *OrderStore) UpdateStatus(id int64, status models.OrderStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := append([]models.Order(nil), s.orders...)
	for i := range next {
		if next[i].ID == id {
			next[i].Status = status
			next[i].UpdatedAt = time.Now()
			if err := s.persist(next); err != nil {
				return err
			}
			s.orders = next
			return nil
		}
	}
	return nil
}

// persist rewrites the full order snapshot, skipping empty lists so an
// uninitialized state never overwrites a valid snapshot.
func (s *OrderStore) persist(orders []models.Order) error {
	if len(orders) == 0 {
		return nil
	}
	if err := s.snap.SaveSnapshot(ordersKey, orders); err != nil {
		return fmt.Errorf("failed to persist orders: %w", err)
	}
	return nil
}
