package controllers

import (
	"net/http"

	"github.com/kooooct/futoru/config"
	"github.com/kooooct/futoru/services"

	"github.com/gin-gonic/gin"
)

type BmrController struct {
	fallback int
}

func NewBmrController(fallbackTargetCalories int) *BmrController {
	return &BmrController{fallback: fallbackTargetCalories}
}

type BmrInput struct {
	Height        *float64 `json:"height"`
	Weight        *float64 `json:"weight"`
	Age           *int     `json:"age"`
	Gender        string   `json:"gender"`
	ActivityLevel string   `json:"activity_level"`
}

// POST /api/v1/simulations/calculate — direct BMR/TDEE simulation.
// All three metrics must be present and positive.
func (bc *BmrController) Calculate(c *gin.Context) {
	var input BmrInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Height == nil || input.Weight == nil || input.Age == nil ||
		*input.Height <= 0 || *input.Weight <= 0 || *input.Age <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "height, weight and age are required and must be positive"})
		return
	}

	bmrSvc := services.NewBmrService(config.DB, bc.fallback)
	res := bmrSvc.Calculate(services.BmrRequest{
		Height:        *input.Height,
		Weight:        *input.Weight,
		Age:           *input.Age,
		Gender:        services.ParseGender(input.Gender),
		ActivityLevel: input.ActivityLevel,
	})

	c.JSON(http.StatusOK, res)
}
