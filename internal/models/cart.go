package models

// CartLine is one dish in the active cart. A cart holds at most one
// line per distinct dish id.
type CartLine struct {
	Dish
	Quantity int `json:"quantity"`
}
