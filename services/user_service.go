package services

import (
	"fmt"
	"strings"

	"github.com/kooooct/futoru/models"
	"github.com/kooooct/futoru/utils"

	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// RegisterUser creates the credential row and an empty profile in one
// transaction. Metrics are filled in later via UpdateProfile.
func (s *UserService) RegisterUser(username, password string) error {
	if strings.TrimSpace(username) == "" || password == "" {
		return fmt.Errorf("username and password are required: %w", ErrInvalidInput)
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		user := models.User{
			Username: username,
			Password: hashed,
			Role:     "USER",
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		return tx.Create(&models.UserProfile{UserID: user.ID}).Error
	})
}

// Authenticate checks the password and issues a JWT for the username.
func (s *UserService) Authenticate(username, password string) (string, error) {
	user, err := findUser(s.db, username)
	if err != nil {
		return "", err
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		return "", fmt.Errorf("incorrect password: %w", ErrPermissionDenied)
	}
	return utils.GenerateJWT(user.Username)
}

func (s *UserService) GetProfile(username string) (*models.UserProfile, error) {
	user, err := findUser(s.db, username)
	if err != nil {
		return nil, err
	}

	var profile models.UserProfile
	if err := s.db.Where("user_id = ?", user.ID).First(&profile).Error; err != nil {
		return nil, fmt.Errorf("profile for %q: %w", username, ErrNotFound)
	}
	return &profile, nil
}

// UpdateProfile stores the body metrics and caches the recomputed daily
// target. This path keys the activity multiplier off the numeric level
// (1→1.2, 2→1.55, 3→1.9); the simulation endpoint uses a different
// scale and the two deliberately stay separate.
func (s *UserService) UpdateProfile(username string, height, weight float64, age int, gender string, activityLevel int) error {
	if height <= 0 || weight <= 0 || age <= 0 {
		return fmt.Errorf("height, weight and age must be positive: %w", ErrInvalidInput)
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		user, err := findUser(tx, username)
		if err != nil {
			return err
		}

		var profile models.UserProfile
		if err := tx.Where("user_id = ?", user.ID).First(&profile).Error; err != nil {
			profile = models.UserProfile{UserID: user.ID}
		}

		profile.Height = &height
		profile.Weight = &weight
		profile.Age = &age
		profile.Gender = ParseGender(gender)
		profile.ActivityLevel = activityLevelLabel(activityLevel)

		target := profileTargetCalories(height, weight, age, profile.Gender, activityLevel)
		profile.TargetCalories = &target

		return tx.Save(&profile).Error
	})
}

// profileTargetCalories is the profile-update calculation. Same BMR as
// the simulation path, different activity scale.
func profileTargetCalories(height, weight float64, age int, gender string, activityLevel int) int {
	var bmr float64
	if gender == models.GenderMale {
		bmr = 10*weight + 6.25*height - 5*float64(age) + 5
	} else {
		bmr = 10*weight + 6.25*height - 5*float64(age) - 161
	}

	var tdee float64
	switch activityLevel {
	case 1:
		tdee = bmr * 1.2 // ほぼ運動しない
	case 2:
		tdee = bmr * 1.55 // 適度な運動
	case 3:
		tdee = bmr * 1.9 // 激しい運動
	default:
		tdee = bmr * 1.2
	}

	return int(tdee + gainSurplus)
}

func activityLevelLabel(level int) string {
	switch level {
	case 2:
		return models.ActivityMid
	case 3:
		return models.ActivityHigh
	default:
		return models.ActivityLow
	}
}
