package controllers

import (
	"net/http"
	"strconv"

	"github.com/kooooct/futoru/config"
	"github.com/kooooct/futoru/metrics"
	"github.com/kooooct/futoru/services"

	"github.com/gin-gonic/gin"
)

type MealController struct {
	hub      *services.RealtimeHub
	fallback int
}

func NewMealController(hub *services.RealtimeHub, fallbackTargetCalories int) *MealController {
	return &MealController{hub: hub, fallback: fallbackTargetCalories}
}

type CatalogMealInput struct {
	FoodItemID uint    `json:"food_item_id" binding:"required"`
	Amount     float64 `json:"amount" binding:"required,gt=0"`
}

// POST /meals/catalog — record a meal from a catalog item.
func (mc *MealController) LogFromCatalog(c *gin.Context) {
	username := c.GetString("username")

	var input CatalogMealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	mealSvc := services.NewMealService(config.DB)
	log, err := mealSvc.RecordFromCatalog(username, input.FoodItemID, input.Amount)
	if err != nil {
		c.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}

	metrics.IncMealLogged("catalog")
	mc.pushDashboard(c, username)
	c.JSON(http.StatusCreated, log)
}

type ManualMealInput struct {
	Name     string `json:"name" binding:"required"`
	Calories *int   `json:"calories" binding:"required,gte=0"`
}

// POST /meals/manual — record a hand-typed meal.
func (mc *MealController) LogManual(c *gin.Context) {
	username := c.GetString("username")

	var input ManualMealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	mealSvc := services.NewMealService(config.DB)
	log, err := mealSvc.RecordManual(username, input.Name, *input.Calories)
	if err != nil {
		c.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}

	metrics.IncMealLogged("manual")
	mc.pushDashboard(c, username)
	c.JSON(http.StatusCreated, log)
}

// GET /meals/today
func (mc *MealController) Today(c *gin.Context) {
	username := c.GetString("username")

	mealSvc := services.NewMealService(config.DB)
	logs, err := mealSvc.TodayLogs(username)
	if err != nil {
		c.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, logs)
}

// DELETE /meals/:id
func (mc *MealController) Delete(c *gin.Context) {
	username := c.GetString("username")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid log id"})
		return
	}

	mealSvc := services.NewMealService(config.DB)
	if err := mealSvc.Delete(uint(id), username); err != nil {
		c.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}

	metrics.IncMealDeleted()
	mc.pushDashboard(c, username)
	c.Status(http.StatusNoContent)
}

// pushDashboard sends the refreshed summary to the user's open sockets.
// Failures here never affect the HTTP response.
func (mc *MealController) pushDashboard(c *gin.Context, username string) {
	bmrSvc := services.NewBmrService(config.DB, mc.fallback)
	mealSvc := services.NewMealService(config.DB)
	dashSvc := services.NewDashboardService(bmrSvc, mealSvc, mc.fallback)

	if summary, err := dashSvc.BuildSummary(username); err == nil {
		mc.hub.PushSummary(c.GetUint("userID"), summary)
	}
}
