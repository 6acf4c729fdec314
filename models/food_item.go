package models

import (
	"gorm.io/gorm"
)

const (
	FoodTypeIngredient = "INGREDIENT"
	FoodTypeDish       = "DISH"
	FoodTypeProduct    = "PRODUCT"
)

// FoodItem is a catalog entry. UserID nil means the item is shared with
// everyone; set, it is visible to that owner only.
type FoodItem struct {
	gorm.Model
	UserID   *uint  `gorm:"index"`
	Name     string `gorm:"not null"`
	Calories int    `gorm:"not null"` // per Unit
	Unit     string `gorm:"size:20"`  // e.g. "100g", "個"
	Type     string `gorm:"size:20"`  // INGREDIENT | DISH | PRODUCT
}
