package config

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"chakula/internal/models"
)

var (
	// DB is the globally accessible database handle
	DB *gorm.DB
)

// InitDB opens the postgres connection, runs migrations and seeds the
// status catalog.
func InitDB(cfg *Config) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort, cfg.DBSSLMode, cfg.DBTimezone,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := Migrate(db); err != nil {
		log.Fatalf("auto-migration failed: %v", err)
	}

	if err := SeedStatusCatalog(db); err != nil {
		log.Fatalf("status catalog seeding failed: %v", err)
	}

	DB = db
}

// Migrate applies the schema for every model. Exposed so tests can run it
// against their own database handle.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.State{},
		&models.City{},
		&models.Address{},
		&models.User{},
		&models.UnverifiedUser{},
		&models.Restaurant{},
		&models.RestaurantOwner{},
		&models.Category{},
		&models.MenuItem{},
		&models.Driver{},
		&models.Order{},
		&models.OrderMenuItem{},
		&models.StatusCatalog{},
		&models.OrderStatus{},
		&models.Comment{},
	)
}

// SeedStatusCatalog inserts the known order lifecycle statuses if missing.
func SeedStatusCatalog(db *gorm.DB) error {
	for _, name := range models.OrderStatusNames() {
		entry := models.StatusCatalog{Name: name}
		if err := db.Where("name = ?", name).FirstOrCreate(&entry).Error; err != nil {
			return err
		}
	}
	return nil
}

// GetDB returns the initialized DB handle
func GetDB() *gorm.DB {
	return DB
}
