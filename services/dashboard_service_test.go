package services

import (
	"testing"
	"time"

	"github.com/kooooct/futoru/models"
)

func TestDashboardSums(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "taro")

	// complete profile with a cached target of 2200
	err := db.Model(&models.UserProfile{}).
		Where("user_id = ?", user.ID).
		Updates(map[string]interface{}{
			"height":          175.0,
			"weight":          70.0,
			"age":             25,
			"gender":          models.GenderMale,
			"activity_level":  models.ActivityMid,
			"target_calories": 2200,
		}).Error
	if err != nil {
		t.Fatalf("update profile: %v", err)
	}

	now := time.Now()
	for _, cal := range []int{300, 450} {
		log := models.MealLog{UserID: user.ID, Name: "meal", Calories: cal, Amount: 1, EatenAt: now}
		if err := db.Create(&log).Error; err != nil {
			t.Fatalf("seed log: %v", err)
		}
	}

	svc := NewDashboardService(NewBmrService(db, 2200), NewMealService(db), 2200)
	summary, err := svc.BuildSummary("taro")
	if err != nil {
		t.Fatalf("summary: %v", err)
	}

	if summary.TargetCalories != 2200 {
		t.Errorf("target = %d, want 2200", summary.TargetCalories)
	}
	if summary.CurrentCalories != 750 {
		t.Errorf("current = %d, want 750", summary.CurrentCalories)
	}
	if summary.RemainingCalories != 1450 {
		t.Errorf("remaining = %d, want 1450", summary.RemainingCalories)
	}
	if len(summary.History) != 2 {
		t.Errorf("history len = %d, want 2", len(summary.History))
	}
}

func TestDashboardFallsBackOnIncompleteProfile(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, "taro")

	svc := NewDashboardService(NewBmrService(db, 2200), NewMealService(db), 2200)
	summary, err := svc.BuildSummary("taro")
	if err != nil {
		t.Fatalf("summary must not fail on an incomplete profile: %v", err)
	}
	if summary.TargetCalories != 2200 {
		t.Errorf("target = %d, want fallback 2200", summary.TargetCalories)
	}
}

func TestDashboardRemainingMayGoNegative(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "taro")

	log := models.MealLog{UserID: user.ID, Name: "宴会", Calories: 3000, Amount: 1, EatenAt: time.Now()}
	if err := db.Create(&log).Error; err != nil {
		t.Fatalf("seed log: %v", err)
	}

	svc := NewDashboardService(NewBmrService(db, 2200), NewMealService(db), 2200)
	summary, err := svc.BuildSummary("taro")
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary.RemainingCalories != -800 {
		t.Errorf("remaining = %d, want -800", summary.RemainingCalories)
	}
}

func TestDashboardUsesConfiguredFallback(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, "taro")

	svc := NewDashboardService(NewBmrService(db, 1800), NewMealService(db), 1800)
	summary, err := svc.BuildSummary("taro")
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary.TargetCalories != 1800 {
		t.Errorf("target = %d, want the injected fallback 1800", summary.TargetCalories)
	}
}
