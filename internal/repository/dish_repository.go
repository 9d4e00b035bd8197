package repository

import (
	"food_storefront/internal/models"

	"gorm.io/gorm"
)

// DishRepository is the catalog contract shared by all storage
// backends: Postgres, the Redis snapshot store and the remote API
// client. Update and Delete are silent no-ops when the id is unknown.
type DishRepository interface {
	GetAll() ([]models.Dish, error)
	Create(dish *models.Dish) error
	Update(id int64, patch models.DishPatch) error
	Delete(id int64) error
}

type dishRepository struct {
	db *gorm.DB
}

func NewDishRepository(db *gorm.DB) DishRepository {
	return &dishRepository{db: db}
}

func (r *dishRepository) GetAll() ([]models.Dish, error) {
	var dishes []models.Dish
	err := r.db.Order("id").Find(&dishes).Error
	return dishes, err
}

func (r *dishRepository) Create(dish *models.Dish) error {
	return r.db.Create(dish).Error
}

func (r *dishRepository) Update(id int64, patch models.DishPatch) error {
	fields := patch.Fields()
	if len(fields) == 0 {
		return nil
	}
	return r.db.Model(&models.Dish{}).Where("id = ?", id).Updates(fields).Error
}

// Delete is a soft delete; the dish simply stops being listed.
func (r *dishRepository) Delete(id int64) error {
	return r.db.Delete(&models.Dish{}, id).Error
}
