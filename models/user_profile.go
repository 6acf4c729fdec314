package models

import (
	"gorm.io/gorm"
)

const (
	GenderMale   = "MALE"
	GenderFemale = "FEMALE"
)

const (
	ActivityLow  = "LOW"
	ActivityMid  = "MID"
	ActivityHigh = "HIGH"
)

// UserProfile holds the body metrics used for calorie calculations.
// Metrics are unset at registration and filled in by the profile update.
type UserProfile struct {
	gorm.Model
	UserID        uint     `gorm:"uniqueIndex;not null"`
	Height        *float64 // cm
	Weight        *float64 // kg
	Age           *int
	Gender        string `gorm:"size:10"` // "MALE" | "FEMALE"
	ActivityLevel string `gorm:"size:10"` // "LOW" | "MID" | "HIGH"

	// Cached result of the profile-update calculation. Nil until the
	// user has completed their profile at least once.
	TargetCalories *int
}

// HasMetrics reports whether height, weight and age are all present.
func (p *UserProfile) HasMetrics() bool {
	return p.Height != nil && p.Weight != nil && p.Age != nil
}
