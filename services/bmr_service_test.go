package services

import (
	"errors"
	"strings"
	"testing"

	"github.com/kooooct/futoru/models"
)

func TestCalculateMaleMid(t *testing.T) {
	svc := NewBmrService(newTestDB(t), 2200)

	res := svc.Calculate(BmrRequest{
		Height:        175,
		Weight:        70,
		Age:           25,
		Gender:        models.GenderMale,
		ActivityLevel: models.ActivityMid,
	})

	if res.Bmr != 1673.8 {
		t.Errorf("bmr = %v, want 1673.8", res.Bmr)
	}
	if res.Tdee != 2594.3 {
		t.Errorf("tdee = %v, want 2594.3", res.Tdee)
	}
	if res.TargetCalories != 2894.3 {
		t.Errorf("target = %v, want 2894.3", res.TargetCalories)
	}
	if !strings.Contains(res.Description, "2894") {
		t.Errorf("description %q should embed the truncated target", res.Description)
	}
}

func TestCalculateFemaleLow(t *testing.T) {
	svc := NewBmrService(newTestDB(t), 2200)

	res := svc.Calculate(BmrRequest{
		Height:        160,
		Weight:        50,
		Age:           30,
		Gender:        models.GenderFemale,
		ActivityLevel: models.ActivityLow,
	})

	if res.Bmr != 1189.0 {
		t.Errorf("bmr = %v, want 1189.0", res.Bmr)
	}
	if res.Tdee != 1634.9 {
		t.Errorf("tdee = %v, want 1634.9", res.Tdee)
	}
	if res.TargetCalories != 1934.9 {
		t.Errorf("target = %v, want 1934.9", res.TargetCalories)
	}
}

func TestCalculateUnknownLevelUsesSedentaryMultiplier(t *testing.T) {
	svc := NewBmrService(newTestDB(t), 2200)

	res := svc.Calculate(BmrRequest{
		Height: 175,
		Weight: 70,
		Age:    25,
		Gender: models.GenderMale,
		// unmapped level
		ActivityLevel: "EXTREME",
	})

	// 1673.75 * 1.2 = 2008.5
	if res.Tdee != 2008.5 {
		t.Errorf("tdee = %v, want 2008.5", res.Tdee)
	}
	if res.TargetCalories != 2308.5 {
		t.Errorf("target = %v, want 2308.5", res.TargetCalories)
	}
}

func TestCalculateIsPure(t *testing.T) {
	svc := NewBmrService(newTestDB(t), 2200)
	req := BmrRequest{Height: 175, Weight: 70, Age: 25, Gender: models.GenderMale, ActivityLevel: models.ActivityMid}

	first := svc.Calculate(req)
	for i := 0; i < 5; i++ {
		if got := svc.Calculate(req); got != first {
			t.Fatalf("call %d = %+v, want %+v", i, got, first)
		}
	}
}

func TestCalculateTargetCaloriesIncompleteProfile(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, "taro")
	svc := NewBmrService(db, 2200)

	target, err := svc.CalculateTargetCalories("taro")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if target != 2200 {
		t.Errorf("target = %d, want fallback 2200", target)
	}
}

func TestCalculateTargetCaloriesMissingUser(t *testing.T) {
	svc := NewBmrService(newTestDB(t), 2200)

	_, err := svc.CalculateTargetCalories("nobody")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestCalculateTargetCaloriesPrefersCachedValue(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "taro")

	err := db.Model(&models.UserProfile{}).
		Where("user_id = ?", user.ID).
		Updates(map[string]interface{}{
			"height":          175.0,
			"weight":          70.0,
			"age":             25,
			"gender":          models.GenderMale,
			"activity_level":  models.ActivityMid,
			"target_calories": 3000,
		}).Error
	if err != nil {
		t.Fatalf("update profile: %v", err)
	}

	svc := NewBmrService(db, 2200)
	target, err := svc.CalculateTargetCalories("taro")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if target != 3000 {
		t.Errorf("target = %d, want cached 3000", target)
	}
}

func TestCalculateTargetCaloriesRecomputesWithoutCache(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "taro")

	err := db.Model(&models.UserProfile{}).
		Where("user_id = ?", user.ID).
		Updates(map[string]interface{}{
			"height":         175.0,
			"weight":         70.0,
			"age":            25,
			"gender":         models.GenderMale,
			"activity_level": models.ActivityMid,
		}).Error
	if err != nil {
		t.Fatalf("update profile: %v", err)
	}

	svc := NewBmrService(db, 2200)
	target, err := svc.CalculateTargetCalories("taro")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// int(2894.3)
	if target != 2894 {
		t.Errorf("target = %d, want 2894", target)
	}
}
