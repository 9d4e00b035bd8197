package services

import (
	"food_storefront/internal/models"
	"food_storefront/internal/repository"
)

type CatalogService interface {
	ListDishes() ([]models.Dish, error)
	AddDish(dish *models.Dish) error
	UpdateDish(id int64, patch models.DishPatch) error
	DeleteDish(id int64) error
	GetDish(id int64) (*models.Dish, error)
}

type catalogService struct {
	dishRepo         repository.DishRepository
	placeholderImage string
}

func NewCatalogService(dishRepo repository.DishRepository, placeholderImage string) CatalogService {
	return &catalogService{dishRepo: dishRepo, placeholderImage: placeholderImage}
}

func (s *catalogService) ListDishes() ([]models.Dish, error) {
	return s.dishRepo.GetAll()
}

func (s *catalogService) AddDish(dish *models.Dish) error {
	if dish.Image == "" {
		dish.Image = s.placeholderImage
	}
	return s.dishRepo.Create(dish)
}

func (s *catalogService) UpdateDish(id int64, patch models.DishPatch) error {
	return s.dishRepo.Update(id, patch)
}

func (s *catalogService) DeleteDish(id int64) error {
	return s.dishRepo.Delete(id)
}

// GetDish scans the catalog for the id. Returns ErrDishNotFound when
// the dish is not listed.
func (s *catalogService) GetDish(id int64) (*models.Dish, error) {
	dishes, err := s.dishRepo.GetAll()
	if err != nil {
		return nil, err
	}
	for i := range dishes {
		if dishes[i].ID == id {
			return &dishes[i], nil
		}
	}
	return nil, ErrDishNotFound
}
