package services

import (
	"fmt"

	"github.com/kooooct/futoru/models"

	"gorm.io/gorm"
)

// findUser resolves the opaque username the auth layer hands us into a
// user row. Every service entry point goes through this.
func findUser(db *gorm.DB, username string) (*models.User, error) {
	var user models.User
	if err := db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, fmt.Errorf("user %q: %w", username, ErrNotFound)
	}
	return &user, nil
}
