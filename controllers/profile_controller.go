package controllers

import (
	"net/http"

	"github.com/kooooct/futoru/config"
	"github.com/kooooct/futoru/services"

	"github.com/gin-gonic/gin"
)

type ProfileInput struct {
	Height        float64 `json:"height" binding:"required,gt=0"`
	Weight        float64 `json:"weight" binding:"required,gt=0"`
	Age           int     `json:"age" binding:"required,gt=0"`
	Gender        string  `json:"gender" binding:"required"`
	ActivityLevel int     `json:"activity_level" binding:"required,min=1,max=3"`
}

func GetProfile(c *gin.Context) {
	username := c.GetString("username")

	userSvc := services.NewUserService(config.DB)
	profile, err := userSvc.GetProfile(username)
	if err != nil {
		c.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateProfile stores the metrics and recomputes the cached target.
func UpdateProfile(c *gin.Context) {
	username := c.GetString("username")

	var input ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userSvc := services.NewUserService(config.DB)
	err := userSvc.UpdateProfile(username, input.Height, input.Weight, input.Age, input.Gender, input.ActivityLevel)
	if err != nil {
		c.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "profile updated successfully"})
}
