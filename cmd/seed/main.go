// Seeds the fixed category list. Safe to run repeatedly: rows are upserted
// by ID, so existing categories are updated in place.
package main

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"etalase/internal/config"
	"etalase/internal/models"
	"etalase/internal/repositories"
)

var categories = []models.Category{
	{
		ID:          "brass-dhoopdani",
		Name:        "Brass Dhoopdani (Incense Holders)",
		Description: "Traditional brass incense holders and dhoopdani",
		Icon:        "🔴",
	},
	{
		ID:          "brass-products",
		Name:        "Brass Products",
		Description: "Traditional brass boxes, vessels, and storage containers",
		Icon:        "🟡",
	},
	{
		ID:          "iron-lamps",
		Name:        "Iron Lamps",
		Description: "Traditional iron lamps and lighting fixtures",
		Icon:        "🟢",
	},
	{
		ID:          "paintings",
		Name:        "Paintings",
		Description: "Traditional handcrafted paintings",
		Icon:        "🎨",
	},
	{
		ID:          "wooden-products",
		Name:        "Wooden Products",
		Description: "Traditional Wooden Products",
		Icon:        "🟤",
	},
}

func main() {
	cfg := config.Load()

	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&models.Category{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	repo := repositories.NewGORMCategoryRepository(db)

	log.Println("Seeding categories...")
	for i := range categories {
		if err := repo.Upsert(&categories[i]); err != nil {
			log.Printf("Error upserting %s: %v", categories[i].ID, err)
			continue
		}
		log.Printf("Upserted: %s", categories[i].Name)
	}
	log.Println("Done! Categories have been added to the database.")
}
