package services

import (
	"errors"
	"testing"

	"github.com/kooooct/futoru/models"
)

func addEdge(t *testing.T, svc *RecipeService, parent, child uint, amount float64) {
	t.Helper()
	edge := models.Recipe{ParentFoodID: parent, ChildFoodID: child, Amount: amount}
	if err := svc.db.Create(&edge).Error; err != nil {
		t.Fatalf("seed edge: %v", err)
	}
}

func TestExpandCaloriesSumsIngredients(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, "taro")

	dish := seedFood(t, db, nil, "カレーライス", 0)
	rice := seedFood(t, db, nil, "白米", 100)
	roux := seedFood(t, db, nil, "ルー", 50)

	svc := NewRecipeService(db)
	addEdge(t, svc, dish.ID, rice.ID, 2.0)
	addEdge(t, svc, dish.ID, roux.ID, 1.0)

	calories, err := svc.ExpandCalories(dish.ID)
	if err != nil {
		t.Fatalf("expand: %v", err)
	}
	if calories != 250 {
		t.Errorf("calories = %d, want 250", calories)
	}
}

func TestExpandCaloriesNested(t *testing.T) {
	db := newTestDB(t)

	meal := seedFood(t, db, nil, "定食", 0)
	curry := seedFood(t, db, nil, "カレーライス", 0)
	rice := seedFood(t, db, nil, "白米", 100)
	salad := seedFood(t, db, nil, "サラダ", 80)

	svc := NewRecipeService(db)
	addEdge(t, svc, curry.ID, rice.ID, 1.5)
	addEdge(t, svc, meal.ID, curry.ID, 1.0)
	addEdge(t, svc, meal.ID, salad.ID, 0.5)

	calories, err := svc.ExpandCalories(meal.ID)
	if err != nil {
		t.Fatalf("expand: %v", err)
	}
	// 100*1.5 + 80*0.5 = 190
	if calories != 190 {
		t.Errorf("calories = %d, want 190", calories)
	}
}

func TestExpandCaloriesLeafIsItsOwnValue(t *testing.T) {
	db := newTestDB(t)
	rice := seedFood(t, db, nil, "白米", 168)

	svc := NewRecipeService(db)
	calories, err := svc.ExpandCalories(rice.ID)
	if err != nil {
		t.Fatalf("expand: %v", err)
	}
	if calories != 168 {
		t.Errorf("calories = %d, want 168", calories)
	}
}

func TestExpandCaloriesDetectsCycle(t *testing.T) {
	db := newTestDB(t)

	a := seedFood(t, db, nil, "A", 100)
	b := seedFood(t, db, nil, "B", 100)

	svc := NewRecipeService(db)
	addEdge(t, svc, a.ID, b.ID, 1.0)
	addEdge(t, svc, b.ID, a.ID, 1.0)

	if _, err := svc.ExpandCalories(a.ID); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput for a cycle", err)
	}
}

func TestIngredients(t *testing.T) {
	db := newTestDB(t)

	dish := seedFood(t, db, nil, "カレーライス", 0)
	rice := seedFood(t, db, nil, "白米", 100)

	svc := NewRecipeService(db)
	addEdge(t, svc, dish.ID, rice.ID, 2.0)

	edges, err := svc.Ingredients(dish.ID)
	if err != nil {
		t.Fatalf("ingredients: %v", err)
	}
	if len(edges) != 1 {
		t.Fatalf("len = %d, want 1", len(edges))
	}
	if edges[0].ChildFood.Name != "白米" {
		t.Errorf("child = %q, want 白米", edges[0].ChildFood.Name)
	}

	if _, err := svc.Ingredients(9999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
