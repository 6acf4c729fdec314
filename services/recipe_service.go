package services

import (
	"fmt"

	"github.com/kooooct/futoru/models"

	"gorm.io/gorm"
)

// RecipeService walks the parent→child composition edges of the food
// catalog. The stored graph has no cycle guard, so the traversal keeps
// its own visited set and fails loudly instead of looping.
type RecipeService struct {
	db *gorm.DB
}

func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

// Ingredients returns the direct children of a dish.
func (s *RecipeService) Ingredients(parentFoodID uint) ([]models.Recipe, error) {
	if _, err := s.findFood(parentFoodID); err != nil {
		return nil, err
	}

	var edges []models.Recipe
	err := s.db.
		Preload("ChildFood").
		Where("parent_food_id = ?", parentFoodID).
		Order("id").
		Find(&edges).Error
	return edges, err
}

// ExpandCalories decomposes a dish into its ingredients and sums their
// calories. Foods without recipe edges contribute their own per-unit
// calories. A cycle in the stored edges is an error.
func (s *RecipeService) ExpandCalories(foodID uint) (int, error) {
	total, err := s.expand(foodID, make(map[uint]bool))
	if err != nil {
		return 0, err
	}
	return int(total), nil
}

func (s *RecipeService) expand(foodID uint, visiting map[uint]bool) (float64, error) {
	if visiting[foodID] {
		return 0, fmt.Errorf("recipe cycle at food %d: %w", foodID, ErrInvalidInput)
	}
	visiting[foodID] = true
	defer delete(visiting, foodID)

	var edges []models.Recipe
	if err := s.db.Where("parent_food_id = ?", foodID).Find(&edges).Error; err != nil {
		return 0, err
	}

	if len(edges) == 0 {
		food, err := s.findFood(foodID)
		if err != nil {
			return 0, err
		}
		return float64(food.Calories), nil
	}

	var sum float64
	for _, e := range edges {
		child, err := s.expand(e.ChildFoodID, visiting)
		if err != nil {
			return 0, err
		}
		sum += child * e.Amount
	}
	return sum, nil
}

func (s *RecipeService) findFood(id uint) (*models.FoodItem, error) {
	var food models.FoodItem
	if err := s.db.First(&food, id).Error; err != nil {
		return nil, fmt.Errorf("food item %d: %w", id, ErrNotFound)
	}
	return &food, nil
}
