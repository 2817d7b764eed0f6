package migration

import (
	"fmt"
	"log"

	entities2 "Smart-Fridge-Manager/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities2.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities2.FridgeItem{}); err != nil {
		log.Fatalf("Error migrating fridge item database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities2.NotificationLog{}); err != nil {
		log.Fatalf("Error migrating notification log database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities2.DetectedIngredients{}); err != nil {
		log.Fatalf("Error migrating detected ingredients database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities2.RecipeSuggestion{}); err != nil {
		log.Fatalf("Error migrating recipe suggestion database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
