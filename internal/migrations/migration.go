package migrations

import (
	"log"

	"food_storefront/internal/models"
	"food_storefront/internal/store"

	"gorm.io/gorm"
)

// RunMigrations brings the schema up to date and seeds the catalog on
// an empty database.
func RunMigrations(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&models.Dish{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		return err
	}

	if err := seedCatalog(db); err != nil {
		log.Printf("Warning: Failed to seed catalog: %v", err)
	}

	log.Println("Database migrations completed successfully!")
	return nil
}

// seedCatalog inserts the built-in dishes once, on a fresh database.
func seedCatalog(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Dish{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("Catalog already seeded, skipping")
		return nil
	}

	log.Println("Seeding built-in catalog...")
	for _, dish := range store.SeedDishes() {
		dish.ID = 0 // let the database assign ids
		if err := db.Create(&dish).Error; err != nil {
			return err
		}
	}

	log.Println("Catalog seeded successfully")
	return nil
}
