package database

import (
	"fmt"
	"log"
	"storefront/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func Initialize(databaseURL string) (*gorm.DB, error) {
	// Configure GORM
	config := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	// Connect to database
	db, err := gorm.Open(postgres.Open(databaseURL), config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Auto migrate all models
	if err := autoMigrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	if err := seedDefaultSettings(db); err != nil {
		return nil, fmt.Errorf("failed to seed default settings: %w", err)
	}

	log.Println("Database connected and migrated successfully")
	return db, nil
}

func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Order{},
		&models.OrderItem{},
		&models.Coupon{},
		&models.StoreSetting{},
	)
}

// seedDefaultSettings inserts the flat delivery rates if they are not
// configured yet. Existing values are never overwritten.
func seedDefaultSettings(db *gorm.DB) error {
	defaults := []models.StoreSetting{
		{Key: models.SettingShippingInsideDhaka, Value: "60"},
		{Key: models.SettingShippingOutsideDhaka, Value: "120"},
	}

	for _, setting := range defaults {
		var existing models.StoreSetting
		err := db.Where(models.StoreSetting{Key: setting.Key}).
			Attrs(models.StoreSetting{Value: setting.Value}).
			FirstOrCreate(&existing).Error
		if err != nil {
			return err
		}
	}
	return nil
}
