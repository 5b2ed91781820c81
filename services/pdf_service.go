package services

import (
	"bytes"
	"fmt"
	"time"

	"github.com/uda-eth/SmartChef-AI-cooking-assistant/models"

	"github.com/jung-kurt/gofpdf"
)

var weekDays = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

type PDFService struct{}

func NewPDFService() *PDFService {
	return &PDFService{}
}

// RenderMealPlan writes the plan as a one-page PDF. Meals map to days by
// position; a plan with fewer than seven meals leaves the remaining days out.
func (s *PDFService) RenderMealPlan(plan *models.WeeklyMealPlan, weekStart time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 12, "Weekly Meal Plan", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 8, "Week of "+weekStart.Format("January 2, 2006"), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	for _, entry := range mealPlanEntries(plan) {
		pdf.SetFont("Helvetica", "B", 14)
		pdf.CellFormat(0, 9, entry.heading, "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		for _, line := range entry.details {
			pdf.CellFormat(0, 6, line, "", 1, "L", false, 0, "")
		}
		pdf.Ln(3)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type planEntry struct {
	heading string
	details []string
}

// mealPlanEntries assigns meal[i] to day[i] and stops at whichever runs out
// first.
func mealPlanEntries(plan *models.WeeklyMealPlan) []planEntry {
	var entries []planEntry
	for i, meal := range plan.Meals {
		if i >= len(weekDays) {
			break
		}
		entries = append(entries, planEntry{
			heading: fmt.Sprintf("%s: %s", weekDays[i], meal.Name),
			details: []string{
				fmt.Sprintf("Difficulty: %s", meal.Difficulty),
				fmt.Sprintf("Prep Time: %d minutes", meal.PrepTime),
			},
		})
	}
	return entries
}
