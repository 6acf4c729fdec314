package services

import (
	"github.com/kooooct/futoru/models"

	"github.com/sirupsen/logrus"
)

// DashboardService composes today's ledger with the calorie target into
// the summary the top page renders.
type DashboardService struct {
	bmr      *BmrService
	meals    *MealService
	fallback int
}

func NewDashboardService(bmr *BmrService, meals *MealService, fallbackTargetCalories int) *DashboardService {
	return &DashboardService{bmr: bmr, meals: meals, fallback: fallbackTargetCalories}
}

type DashboardSummary struct {
	TargetCalories    int              `json:"target_calories"`
	CurrentCalories   int              `json:"current_calories"`
	RemainingCalories int              `json:"remaining_calories"` // negative once the target is exceeded
	History           []models.MealLog `json:"history"`
}

// BuildSummary never fails on an incomplete profile: the target falls
// back to the configured default so the dashboard always renders.
func (s *DashboardService) BuildSummary(username string) (*DashboardSummary, error) {
	logs, err := s.meals.TodayLogs(username)
	if err != nil {
		return nil, err
	}

	current := 0
	for _, l := range logs {
		current += l.Calories
	}

	target, err := s.bmr.CalculateTargetCalories(username)
	if err != nil {
		logrus.WithField("username", username).
			WithError(err).
			Warn("target calculation failed, using fallback")
		target = s.fallback
	}

	return &DashboardSummary{
		TargetCalories:    target,
		CurrentCalories:   current,
		RemainingCalories: target - current,
		History:           logs,
	}, nil
}
