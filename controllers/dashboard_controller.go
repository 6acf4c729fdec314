package controllers

import (
	"net/http"

	"github.com/kooooct/futoru/config"
	"github.com/kooooct/futoru/services"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	fallback int
}

func NewDashboardController(fallbackTargetCalories int) *DashboardController {
	return &DashboardController{fallback: fallbackTargetCalories}
}

// GET /dashboard — target, consumed, remaining and today's history.
func (dc *DashboardController) Summary(c *gin.Context) {
	username := c.GetString("username")

	bmrSvc := services.NewBmrService(config.DB, dc.fallback)
	mealSvc := services.NewMealService(config.DB)
	dashSvc := services.NewDashboardService(bmrSvc, mealSvc, dc.fallback)

	summary, err := dashSvc.BuildSummary(username)
	if err != nil {
		c.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}
