package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/kooooct/futoru/config"
	"github.com/kooooct/futoru/services"

	"github.com/gin-gonic/gin"
)

// GET /meals/export — download the full meal history as an xlsx file.
func ExportMealHistory(c *gin.Context) {
	username := c.GetString("username")

	exportSvc := services.NewExportService(config.DB)
	f, err := exportSvc.BuildMealHistory(username)
	if err != nil {
		c.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}
	defer f.Close()

	filename := fmt.Sprintf("meal_history_%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := f.Write(c.Writer); err != nil {
		c.Status(http.StatusInternalServerError)
	}
}
