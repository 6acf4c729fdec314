package services

import (
	"testing"

	"github.com/kooooct/futoru/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// one in-memory database per test; a second connection would see
	// a different empty database
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.FoodItem{},
		&models.MealLog{},
		&models.Recipe{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	user := models.User{Username: username, Password: "x", Role: "USER"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	if err := db.Create(&models.UserProfile{UserID: user.ID}).Error; err != nil {
		t.Fatalf("seed profile: %v", err)
	}
	return &user
}

func seedFood(t *testing.T, db *gorm.DB, owner *uint, name string, calories int) *models.FoodItem {
	t.Helper()

	food := models.FoodItem{
		UserID:   owner,
		Name:     name,
		Calories: calories,
		Unit:     "100g",
		Type:     models.FoodTypeIngredient,
	}
	if err := db.Create(&food).Error; err != nil {
		t.Fatalf("seed food: %v", err)
	}
	return &food
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }
