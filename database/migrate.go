package database

import (
	"github.com/nextgenfoodcourt/foodcourt-app/models"
	"github.com/nextgenfoodcourt/foodcourt-app/utils"
	"gorm.io/gorm"
)

// Migrate creates or updates the schema and repairs the availability cache.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Cuisine{},
		&models.Outlet{},
		&models.MenuItem{},
		&models.Table{},
		&models.Order{},
		&models.OrderItem{},
		&models.Reservation{},
	)
	if err != nil {
		return err
	}

	// Re-derive is_available from the reservations actually present so a
	// crash between releases cannot leave tables stuck unavailable.
	if err := db.Exec(
		"UPDATE tables SET is_available = NOT EXISTS (SELECT 1 FROM reservations WHERE reservations.table_id = tables.id)",
	).Error; err != nil {
		utils.ErrorLogger.Printf("Error backfilling table availability: %v", err)
	}

	utils.InfoLogger.Println("AutoMigrate completed.")
	return nil
}
