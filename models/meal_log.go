package models

import (
	"time"

	"gorm.io/gorm"
)

// MealLog is an immutable record of one eating event. Name, Calories and
// Amount are snapshots taken at recording time; later edits to the
// referenced FoodItem never change them. FoodItemID is kept purely for
// traceability and is nil for manual entries.
type MealLog struct {
	gorm.Model
	UserID     uint  `gorm:"index;not null"`
	FoodItemID *uint `gorm:"index"`

	Name     string  `gorm:"not null"`
	Calories int     `gorm:"not null"` // total for the event
	Amount   float64 `gorm:"not null"`

	EatenAt time.Time `gorm:"index;not null"`
}
