// Package cart implements the in-memory cart reducer. All operations
// are pure: the input cart is never mutated, a new value is returned.
package cart

import (
	"food_storefront/internal/models"
)

type Cart []models.CartLine

// AddItem increments the quantity of an existing line for the dish, or
// appends a new line with quantity 1.
func AddItem(c Cart, dish models.Dish) Cart {
	next := clone(c)
	for i := range next {
		if next[i].ID == dish.ID {
			next[i].Quantity++
			return next
		}
	}
	return append(next, models.CartLine{Dish: dish, Quantity: 1})
}

// RemoveItem drops the line matching dishID. Unknown ids are a no-op.
func RemoveItem(c Cart, dishID int64) Cart {
	next := make(Cart, 0, len(c))
	for _, line := range c {
		if line.ID != dishID {
			next = append(next, line)
		}
	}
	return next
}

// AdjustQuantity adds delta to the matching line's quantity, clamped to
// a minimum of 1. Decrementing never removes the line.
func AdjustQuantity(c Cart, dishID int64, delta int) Cart {
	next := clone(c)
	for i := range next {
		if next[i].ID == dishID {
			next[i].Quantity += delta
			if next[i].Quantity < 1 {
				next[i].Quantity = 1
			}
			break
		}
	}
	return next
}

// TotalPrice sums price × quantity over all lines.
func TotalPrice(c Cart) float64 {
	var total float64
	for _, line := range c {
		total += line.Price * float64(line.Quantity)
	}
	return total
}

// TotalCount sums the quantities over all lines. This is the cart badge
// count, not the line count.
func TotalCount(c Cart) int {
	var count int
	for _, line := range c {
		count += line.Quantity
	}
	return count
}

// Clear returns the empty cart.
func Clear() Cart {
	return Cart{}
}

// Snapshot freezes the cart into order items for submission.
func Snapshot(c Cart) []models.OrderItem {
	items := make([]models.OrderItem, 0, len(c))
	for _, line := range c {
		items = append(items, models.OrderItem{
			DishID:    line.ID,
			DishTitle: line.Title,
			Quantity:  line.Quantity,
			Price:     line.Price,
		})
	}
	return items
}

func clone(c Cart) Cart {
	next := make(Cart, len(c))
	copy(next, c)
	return next
}
