package controllers

import (
	"net/http"
	"strconv"

	"github.com/kooooct/futoru/config"
	"github.com/kooooct/futoru/services"

	"github.com/gin-gonic/gin"
)

// GET /recipes/:id/ingredients — direct children of a dish.
func ListIngredients(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid food id"})
		return
	}

	recipeSvc := services.NewRecipeService(config.DB)
	edges, err := recipeSvc.Ingredients(uint(id))
	if err != nil {
		c.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, edges)
}

// GET /recipes/:id/calories — decompose a dish into ingredient
// calories. Fails with 400 if the stored recipe edges form a cycle.
func ExpandedCalories(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid food id"})
		return
	}

	recipeSvc := services.NewRecipeService(config.DB)
	calories, err := recipeSvc.ExpandCalories(uint(id))
	if err != nil {
		c.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"food_id": id, "calories": calories})
}
