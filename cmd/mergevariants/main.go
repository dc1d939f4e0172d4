// Merges sibling size-variant product rows into single parent records with
// an embedded size-variant list. Each group is swapped in atomically, so a
// failed run leaves the original variants untouched.
package main

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"etalase/internal/config"
	"etalase/internal/repositories"
	"etalase/internal/services"
)

var productGroups = []services.VariantGroup{
	{
		BaseID:   "antique-brass-horse-box",
		BaseName: "Antique Brass Horse Box",
		Variants: []services.VariantRef{
			{ID: "antique-brass-horse-box-small", Size: "Small"},
			{ID: "antique-brass-horse-box-big", Size: "Big"},
		},
	},
	{
		BaseID:   "wooden-hanging-planter",
		BaseName: "Wooden Hanging Planter",
		Variants: []services.VariantRef{
			{ID: "wooden-hanging-planter-small", Size: "Small"},
			{ID: "wooden-hanging-planter-big", Size: "Big"},
		},
	},
}

func main() {
	cfg := config.Load()

	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	merger := services.NewMergeService(repositories.NewGORMProductRepository(db))

	log.Println("Merging products with size variants...")
	for _, group := range productGroups {
		parent, err := merger.Merge(group)
		if err != nil {
			log.Printf("Error merging %s: %v", group.BaseID, err)
			continue
		}
		log.Printf("Created: %s (%d sizes, headline price %.2f)", parent.Title, len(parent.SizeVariants), parent.Price)
	}
	log.Println("Migration complete")
}
