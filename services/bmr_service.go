package services

import (
	"fmt"
	"math"
	"strings"

	"github.com/kooooct/futoru/models"

	"gorm.io/gorm"
)

// BmrService computes basal metabolism and the daily target for gaining
// weight. Calculate itself is pure; CalculateTargetCalories reads the
// stored profile first.
type BmrService struct {
	db       *gorm.DB
	fallback int // target used when the profile is incomplete
}

func NewBmrService(db *gorm.DB, fallbackTargetCalories int) *BmrService {
	return &BmrService{db: db, fallback: fallbackTargetCalories}
}

type BmrRequest struct {
	Height        float64
	Weight        float64
	Age           int
	Gender        string // models.GenderMale | models.GenderFemale
	ActivityLevel string // models.ActivityLow | Mid | High
}

type BmrResponse struct {
	Bmr            float64 `json:"bmr"`
	Tdee           float64 `json:"tdee"`
	TargetCalories float64 `json:"target_calories"`
	Description    string  `json:"description"`
}

// Daily surplus added on top of TDEE. Futoru is a weight-gain app.
const gainSurplus = 300

// Calculate runs Mifflin-St Jeor and applies the activity multiplier.
// All three results are rounded half-up at the tenths digit.
func (s *BmrService) Calculate(req BmrRequest) BmrResponse {
	bmr := s.calculateBmr(req)
	tdee := s.calculateTdee(bmr, req.ActivityLevel)
	target := tdee + gainSurplus

	return BmrResponse{
		Bmr:            round1(bmr),
		Tdee:           round1(tdee),
		TargetCalories: round1(target),
		Description:    adviceMessage(target),
	}
}

// CalculateTargetCalories returns the user's daily target in kcal.
// A missing user is an error; a profile without complete metrics falls
// back to the configured default, matching the dashboard contract.
func (s *BmrService) CalculateTargetCalories(username string) (int, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		return 0, fmt.Errorf("user %q: %w", username, ErrNotFound)
	}

	var profile models.UserProfile
	if err := s.db.Where("user_id = ?", user.ID).First(&profile).Error; err != nil {
		return s.fallback, nil
	}
	if !profile.HasMetrics() {
		return s.fallback, nil
	}

	if profile.TargetCalories != nil {
		return *profile.TargetCalories, nil
	}

	res := s.Calculate(BmrRequest{
		Height:        *profile.Height,
		Weight:        *profile.Weight,
		Age:           *profile.Age,
		Gender:        ParseGender(profile.Gender),
		ActivityLevel: ParseActivityLevel(profile.ActivityLevel),
	})
	return int(res.TargetCalories), nil
}

func (s *BmrService) calculateBmr(req BmrRequest) float64 {
	base := 10*req.Weight + 6.25*req.Height - 5*float64(req.Age)
	if req.Gender == models.GenderMale {
		return base + 5
	}
	return base - 161
}

func (s *BmrService) calculateTdee(bmr float64, level string) float64 {
	switch level {
	case models.ActivityLow:
		return bmr * 1.375
	case models.ActivityMid:
		return bmr * 1.55
	case models.ActivityHigh:
		return bmr * 1.725
	default:
		return bmr * 1.2 // sedentary
	}
}

func adviceMessage(target float64) string {
	return fmt.Sprintf("太るためには、1日約 %dkcal を目指して食べましょう！Futoruと一緒に頑張りましょう。", int(target))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// ParseGender maps a stored gender string onto the known constants.
// Empty means MALE; anything else that is not MALE reads as FEMALE,
// matching the legacy data.
func ParseGender(s string) string {
	if s == "" {
		return models.GenderMale
	}
	if strings.EqualFold(s, models.GenderMale) || s == "男性" {
		return models.GenderMale
	}
	return models.GenderFemale
}

// ParseActivityLevel maps a stored level onto the known constants,
// defaulting to LOW.
func ParseActivityLevel(s string) string {
	switch strings.ToUpper(s) {
	case models.ActivityMid:
		return models.ActivityMid
	case models.ActivityHigh:
		return models.ActivityHigh
	default:
		return models.ActivityLow
	}
}
