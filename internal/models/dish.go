package models

import (
	"time"

	"gorm.io/gorm"
)

type Dish struct {
	ID          int64          `json:"id" gorm:"primaryKey"`
	Title       string         `json:"title" gorm:"not null"`
	Ingredients string         `json:"ingredients"`
	Price       float64        `json:"price" gorm:"not null"`
	Image       string         `json:"image"`
	Category    string         `json:"category"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

// DishPatch carries the fields of a partial dish update. Nil fields are
// left untouched; the id is never patchable.
type DishPatch struct {
	Title       *string  `json:"title,omitempty"`
	Ingredients *string  `json:"ingredients,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Image       *string  `json:"image,omitempty"`
	Category    *string  `json:"category,omitempty"`
}

// Apply merges the patch into a dish in place.
func (p DishPatch) Apply(dish *Dish) {
	if p.Title != nil {
		dish.Title = *p.Title
	}
	if p.Ingredients != nil {
		dish.Ingredients = *p.Ingredients
	}
	if p.Price != nil {
		dish.Price = *p.Price
	}
	if p.Image != nil {
		dish.Image = *p.Image
	}
	if p.Category != nil {
		dish.Category = *p.Category
	}
}

// Fields returns the set columns as a map, for database-side updates.
func (p DishPatch) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if p.Title != nil {
		fields["title"] = *p.Title
	}
	if p.Ingredients != nil {
		fields["ingredients"] = *p.Ingredients
	}
	if p.Price != nil {
		fields["price"] = *p.Price
	}
	if p.Image != nil {
		fields["image"] = *p.Image
	}
	if p.Category != nil {
		fields["category"] = *p.Category
	}
	return fields
}
