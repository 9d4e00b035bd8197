package store

import (
	"fmt"
	"sync"
	"time"

	"food_storefront/internal/models"
)

// CatalogStore keeps the dish list in memory and mirrors it to a single
// durable snapshot key. On first run, when no snapshot exists, it seeds
// itself with the built-in catalog.
type CatalogStore struct {
	mu     sync.Mutex
	snap   Snapshotter
	dishes []models.Dish
}

func NewCatalogStore(snap Snapshotter) (*CatalogStore, error) {
	s := &CatalogStore{snap: snap}

	var saved []models.Dish
	found, err := snap.LoadSnapshot(dishesKey, &saved)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog snapshot: %w", err)
	}
	if found {
		s.dishes = saved
	} else {
		s.dishes = SeedDishes()
	}
	return s, nil
}

func (s *CatalogStore) GetAll() ([]models.Dish, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Dish(nil), s.dishes...), nil
}

// Create assigns a fresh id and creation timestamp, appends and
// persists. The id generator mirrors the storefront's original
// Date.now() scheme.
func (s *CatalogStore) Create(dish *models.Dish) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	dish.ID = now.UnixMilli()
	dish.CreatedAt = now
	dish.UpdatedAt = now

	next := append(append([]models.Dish(nil), s.dishes...), *dish)
	if err := s.persist(next); err != nil {
		return err
	}
	s.dishes = next
	return nil
}

// Update merges the patch into the matching dish. An unknown id is a
// silent no-op.
func (s *CatalogStore) Update(id int64, patch models.DishPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := append([]models.Dish(nil), s.dishes...)
	for i := range next {
		if next[i].ID == id {
			patch.Apply(&next[i])
			next[i].UpdatedAt = time.Now()
			if err := s.persist(next); err != nil {
				return err
			}
			s.dishes = next
			return nil
		}
	}
	return nil
}

// Delete removes the matching dish. An unknown id is a silent no-op.
func (s *CatalogStore) Delete(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]models.Dish, 0, len(s.dishes))
	for _, dish := range s.dishes {
		if dish.ID != id {
			next = append(next, dish)
		}
	}
	if len(next) == len(s.dishes) {
		return nil
	}
	if err := s.persist(next); err != nil {
		return err
	}
	s.dishes = next
	return nil
}

// persist rewrites the full catalog snapshot. An empty list is never
// written: it would clobber a valid snapshot with uninitialized state.
func (s *CatalogStore) persist(dishes []models.Dish) error {
	if len(dishes) == 0 {
		return nil
	}
	if err := s.snap.SaveSnapshot(dishesKey, dishes); err != nil {
		return fmt.Errorf("failed to persist catalog: %w", err)
	}
	return nil
}
