package models

import (
	"gorm.io/gorm"
)

// User is the authentication record only. Body metrics live on
// UserProfile; the two are joined by UserID at the auth boundary.
type User struct {
	gorm.Model
	Username string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"`
	Role     string `gorm:"size:20"` // "USER" | "ADMIN"
}
