package services

import (
	"fmt"

	"github.com/kooooct/futoru/models"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// ExportService builds an Excel workbook of a user's meal history.
type ExportService struct {
	db *gorm.DB
}

func NewExportService(db *gorm.DB) *ExportService {
	return &ExportService{db: db}
}

const exportSheet = "食事記録"

// BuildMealHistory returns a workbook with one row per meal log, newest
// first. The caller is responsible for closing the file.
func (s *ExportService) BuildMealHistory(username string) (*excelize.File, error) {
	user, err := findUser(s.db, username)
	if err != nil {
		return nil, err
	}

	var logs []models.MealLog
	if err := s.db.
		Where("user_id = ?", user.ID).
		Order("eaten_at DESC").
		Find(&logs).Error; err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	index, err := f.NewSheet(exportSheet)
	if err != nil {
		return nil, fmt.Errorf("error creating sheet: %v", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"日時", "食品名", "カロリー(kcal)", "量"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(exportSheet, cell, h)
	}
	if style, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
		Font: &excelize.Font{Bold: true},
	}); err == nil {
		first, _ := excelize.CoordinatesToCellName(1, 1)
		last, _ := excelize.CoordinatesToCellName(len(headers), 1)
		f.SetCellStyle(exportSheet, first, last, style)
	}

	for i, log := range logs {
		row := i + 2
		values := []interface{}{
			log.EatenAt.Format("2006-01-02 15:04"),
			log.Name,
			log.Calories,
			log.Amount,
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, row)
			f.SetCellValue(exportSheet, cell, v)
		}
	}

	return f, nil
}
