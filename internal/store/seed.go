package store

import "food_storefront/internal/models"

// SeedDishes returns the built-in catalog used when no durable snapshot
// exists yet.
func SeedDishes() []models.Dish {
	return []models.Dish{
		{
			ID:          1,
			Title:       "Пицца Маргарита",
			Ingredients: "Томаты, моцарелла, базилик, оливковое масло",
			Price:       590,
			Image:       "/placeholder.svg",
			Category:    "Пицца",
		},
		{
			ID:          2,
			Title:       "Суши Филадельфия",
			Ingredients: "Лосось, сливочный сыр, авокадо, рис",
			Price:       450,
			Image:       "/placeholder.svg",
			Category:    "Суши",
		},
		{
			ID:          3,
			Title:       "Бургер Классик",
			Ingredients: "Говядина, салат, томаты, сыр чеддер, соус",
			Price:       390,
			Image:       "/placeholder.svg",
			Category:    "Бургеры",
		},
		{
			ID:          4,
			Title:       "Паста Карбонара",
			Ingredients: "Спагетти, бекон, сливки, пармезан, яйцо",
			Price:       420,
			Image:       "/placeholder.svg",
			Category:    "Паста",
		},
		{
			ID:          5,
			Title:       "Салат Цезарь",
			Ingredients: "Курица, салат айсберг, пармезан, гренки, соус",
			Price:       340,
			Image:       "/placeholder.svg",
			Category:    "Салаты",
		},
		{
			ID:          6,
			Title:       "Том Ям",
			Ingredients: "Креветки, грибы, лимонник, перец чили",
			Price:       480,
			Image:       "/placeholder.svg",
			Category:    "Супы",
		},
	}
}
