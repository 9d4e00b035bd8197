package models

// OrderItem is a frozen snapshot of one cart line, taken at submission
// time. Later catalog edits never reach it.
type OrderItem struct {
	ID        int64   `json:"id" gorm:"primaryKey"`
	OrderID   int64   `json:"order_id" gorm:"index"`
	DishID    int64   `json:"dish_id"`
	DishTitle string  `json:"dish_title"`
	Quantity  int     `json:"quantity" gorm:"not null"`
	Price     float64 `json:"price" gorm:"not null"`
}
