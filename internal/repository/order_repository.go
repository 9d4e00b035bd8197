package repository

import (
	"food_storefront/internal/models"

	"gorm.io/gorm"
)

// OrderRepository is the order contract shared by all storage backends.
// Orders are append-only; only the status may change after creation.
type OrderRepository interface {
	GetAll() ([]models.Order, error)
	Create(order *models.Order) error
	UpdateStatus(id int64, status models.OrderStatus) error
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) GetAll() ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Preload("Items").Order("id").Find(&orders).Error
	return orders, err
}

func (r *orderRepository) Create(order *models.Order) error {
	return r.db.Create(order).Error
}

func (r *orderRepository) UpdateStatus(id int64, status models.OrderStatus) error {
	return r.db.Model(&models.Order{}).Where("id = ?", id).Update("status", status).Error
}
