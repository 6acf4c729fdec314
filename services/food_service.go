package services

import (
	"fmt"
	"strings"

	"github.com/kooooct/futoru/models"

	"gorm.io/gorm"
)

// FoodService resolves which catalog entries a user may pick from:
// shared items (no owner) plus the user's own.
type FoodService struct {
	db *gorm.DB
}

func NewFoodService(db *gorm.DB) *FoodService {
	return &FoodService{db: db}
}

// GetAvailableFoods returns shared items plus the user's own, ordered by
// name then id so the pulldown is stable across requests.
func (s *FoodService) GetAvailableFoods(username string) ([]models.FoodItem, error) {
	user, err := findUser(s.db, username)
	if err != nil {
		return nil, err
	}

	var foods []models.FoodItem
	err = s.db.
		Where("user_id = ? OR user_id IS NULL", user.ID).
		Order("name, id").
		Find(&foods).Error
	return foods, err
}

// GetFoodsOwnedBy returns only the user's private items.
func (s *FoodService) GetFoodsOwnedBy(username string) ([]models.FoodItem, error) {
	user, err := findUser(s.db, username)
	if err != nil {
		return nil, err
	}

	var foods []models.FoodItem
	err = s.db.
		Where("user_id = ?", user.ID).
		Order("name, id").
		Find(&foods).Error
	return foods, err
}

func (s *FoodService) FindFoodItem(id uint) (*models.FoodItem, error) {
	var food models.FoodItem
	if err := s.db.First(&food, id).Error; err != nil {
		return nil, fmt.Errorf("food item %d: %w", id, ErrNotFound)
	}
	return &food, nil
}

// CreateFoodItem registers a private (My) food for the user.
func (s *FoodService) CreateFoodItem(username, name string, calories int, unit, foodType string) (*models.FoodItem, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("name is required: %w", ErrInvalidInput)
	}
	if calories <= 0 {
		return nil, fmt.Errorf("calories must be positive: %w", ErrInvalidInput)
	}

	user, err := findUser(s.db, username)
	if err != nil {
		return nil, err
	}

	food := models.FoodItem{
		UserID:   &user.ID,
		Name:     name,
		Calories: calories,
		Unit:     unit,
		Type:     foodType,
	}
	if err := s.db.Create(&food).Error; err != nil {
		return nil, err
	}
	return &food, nil
}
