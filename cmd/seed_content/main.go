package main

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"brightbooks/internal/config"
	"brightbooks/internal/content"
	"brightbooks/internal/database"
	"brightbooks/internal/domain"
)

func main() {
	// Load configuration
	if _, err := config.Load(); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize database
	if err := database.Init(); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	db := database.GetDB()

	defaults, err := content.LoadDefaults()
	if err != nil {
		log.Fatalf("Failed to load default content: %v", err)
	}

	seeds := []struct {
		name  string
		model interface{}
		rows  interface{}
		count int
	}{
		{"solutions", &domain.Solution{}, &defaults.Solutions, len(defaults.Solutions)},
		{"insights", &domain.Insight{}, &defaults.Insights, len(defaults.Insights)},
		{"templates", &domain.Template{}, &defaults.Templates, len(defaults.Templates)},
		{"policies", &domain.Policy{}, &defaults.Policies, len(defaults.Policies)},
	}

	for _, seed := range seeds {
		inserted, err := seedTable(db, seed.model, seed.rows, seed.count)
		if err != nil {
			log.Fatalf("Failed to seed %s: %v", seed.name, err)
		}
		if inserted {
			fmt.Printf("Seeded %d %s\n", seed.count, seed.name)
		} else {
			fmt.Printf("Table %s already has rows, skipping\n", seed.name)
		}
	}

	fmt.Println("Content seeding complete!")
}

// seedTable inserts rows when the table of model is empty
func seedTable(db *gorm.DB, model, rows interface{}, count int) (bool, error) {
	var existing int64
	if err := db.Model(model).Count(&existing).Error; err != nil {
		return false, err
	}
	if existing > 0 || count == 0 {
		return false, nil
	}
	if err := db.Create(rows).Error; err != nil {
		return false, err
	}
	return true, nil
}
