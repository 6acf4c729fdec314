package controllers

import (
	"net/http"

	"github.com/kooooct/futoru/config"
	"github.com/kooooct/futoru/services"

	"github.com/gin-gonic/gin"
)

// GET /foods — shared catalog plus the user's own items.
func ListAvailableFoods(c *gin.Context) {
	username := c.GetString("username")

	foodSvc := services.NewFoodService(config.DB)
	foods, err := foodSvc.GetAvailableFoods(username)
	if err != nil {
		c.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, foods)
}

// GET /foods/mine — only the user's private items.
func ListMyFoods(c *gin.Context) {
	username := c.GetString("username")

	foodSvc := services.NewFoodService(config.DB)
	foods, err := foodSvc.GetFoodsOwnedBy(username)
	if err != nil {
		c.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, foods)
}

type FoodInput struct {
	Name     string `json:"name" binding:"required"`
	Calories int    `json:"calories" binding:"required,gt=0"`
	Unit     string `json:"unit"`
	Type     string `json:"type" binding:"omitempty,oneof=INGREDIENT DISH PRODUCT"`
}

// POST /foods — register a private (My) food.
func CreateFood(c *gin.Context) {
	username := c.GetString("username")

	var input FoodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	foodSvc := services.NewFoodService(config.DB)
	food, err := foodSvc.CreateFoodItem(username, input.Name, input.Calories, input.Unit, input.Type)
	if err != nil {
		c.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, food)
}
