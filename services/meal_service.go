package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/kooooct/futoru/models"

	"gorm.io/gorm"
)

// MealService is the meal ledger. Every record is a snapshot: name,
// calories and amount are copied at recording time and never read back
// from the catalog, so later catalog edits cannot rewrite history.
type MealService struct {
	db *gorm.DB
}

func NewMealService(db *gorm.DB) *MealService {
	return &MealService{db: db}
}

// RecordFromCatalog logs a meal picked from the food catalog. The
// catalog read and the snapshot write run in one transaction so a
// concurrent catalog edit cannot split them.
func (s *MealService) RecordFromCatalog(username string, foodItemID uint, amount float64) (*models.MealLog, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("amount must be positive: %w", ErrInvalidInput)
	}

	var log models.MealLog
	err := s.db.Transaction(func(tx *gorm.DB) error {
		user, err := findUser(tx, username)
		if err != nil {
			return err
		}

		var food models.FoodItem
		if err := tx.First(&food, foodItemID).Error; err != nil {
			return fmt.Errorf("food item %d: %w", foodItemID, ErrNotFound)
		}

		log = models.MealLog{
			UserID:     user.ID,
			FoodItemID: &food.ID,
			// snapshot: copy name and computed calories so the record
			// survives any later change to the catalog row
			Name:     food.Name,
			Calories: int(float64(food.Calories) * amount),
			Amount:   amount,
			EatenAt:  time.Now(),
		}
		return tx.Create(&log).Error
	})
	if err != nil {
		return nil, err
	}
	return &log, nil
}

// RecordManual logs a meal typed in by hand, with no catalog link.
// Amount is fixed at 1.0 for manual entries.
func (s *MealService) RecordManual(username, name string, calories int) (*models.MealLog, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("name is required: %w", ErrInvalidInput)
	}
	if calories < 0 {
		return nil, fmt.Errorf("calories must not be negative: %w", ErrInvalidInput)
	}

	user, err := findUser(s.db, username)
	if err != nil {
		return nil, err
	}

	log := models.MealLog{
		UserID:   user.ID,
		Name:     name,
		Calories: calories,
		Amount:   1.0,
		EatenAt:  time.Now(),
	}
	if err := s.db.Create(&log).Error; err != nil {
		return nil, err
	}
	return &log, nil
}

// TodayLogs returns the user's logs for the server's current local
// date, half-open window [00:00, 24:00), oldest first.
func (s *MealService) TodayLogs(username string) ([]models.MealLog, error) {
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	end := start.Add(24 * time.Hour)
	return s.LogsByRange(username, start, end)
}

// LogsByRange returns logs with eaten_at in [from, to).
func (s *MealService) LogsByRange(username string, from, to time.Time) ([]models.MealLog, error) {
	user, err := findUser(s.db, username)
	if err != nil {
		return nil, err
	}

	var logs []models.MealLog
	err = s.db.
		Where("user_id = ? AND eaten_at >= ? AND eaten_at < ?", user.ID, from, to).
		Order("eaten_at").
		Find(&logs).Error
	return logs, err
}

func (s *MealService) FindMealLog(id uint) (*models.MealLog, error) {
	var log models.MealLog
	if err := s.db.First(&log, id).Error; err != nil {
		return nil, fmt.Errorf("meal log %d: %w", id, ErrNotFound)
	}
	return &log, nil
}

// Delete removes a log permanently. Only the owner may delete; the
// ownership check and the delete run in one transaction.
func (s *MealService) Delete(logID uint, username string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var log models.MealLog
		if err := tx.First(&log, logID).Error; err != nil {
			return fmt.Errorf("meal log %d: %w", logID, ErrNotFound)
		}

		user, err := findUser(tx, username)
		if err != nil {
			return err
		}
		if log.UserID != user.ID {
			return fmt.Errorf("meal log %d belongs to another user: %w", logID, ErrPermissionDenied)
		}

		return tx.Unscoped().Delete(&log).Error
	})
}
