// Package mocks provides testify mocks for the repository contracts.
package mocks

import (
	"food_storefront/internal/models"

	"github.com/stretchr/testify/mock"
)

type DishRepository struct {
	mock.Mock
}

func (m *DishRepository) GetAll() ([]models.Dish, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Dish), args.Error(1)
}

func (m *DishRepository) Create(dish *models.Dish) error {
	args := m.Called(dish)
	return args.Error(0)
}

func (m *DishRepository) Update(id int64, patch models.DishPatch) error {
	args := m.Called(id, patch)
	return args.Error(0)
}

func (m *DishRepository) Delete(id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

type OrderRepository struct {
	mock.Mock
}

func (m *OrderRepository) GetAll() ([]models.Order, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *OrderRepository) Create(order *models.Order) error {
	args := m.Called(order)
	return args.Error(0)
}

func (m *OrderRepository) UpdateStatus(id int64, status models.OrderStatus) error {
	args := m.Called(id, status)
	return args.Error(0)
}
