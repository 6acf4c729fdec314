package models

import (
	"gorm.io/gorm"
)

// Recipe is a parent→child composition edge: the parent dish contains
// Amount units of the child food.
type Recipe struct {
	gorm.Model
	ParentFoodID uint `gorm:"index;not null"`
	ChildFoodID  uint `gorm:"not null"`

	ParentFood FoodItem `gorm:"foreignKey:ParentFoodID"`
	ChildFood  FoodItem `gorm:"foreignKey:ChildFoodID"`

	Amount float64 `gorm:"not null"`
}
