package analytics

import (
	"math"

	"example.com/expense-insight/backend/internal/models"
)

const monthKeyLayout = "2006-01"

// Analyze вычисляет сводную статистику по последовательности записей.
// Функция чистая и не зависит от порядка записей; статистика
// пересчитывается целиком при каждой новой загрузке файла.
func Analyze(records []models.Expense) models.Analysis {
	analysis := models.Analysis{
		CategoryTotals: make(map[string]float64),
		MonthlyTotals:  make(map[string]float64),
	}

	for _, record := range records {
		amount := math.Abs(record.Amount)

		analysis.TotalExpenses += amount
		analysis.CategoryTotals[record.Category] += amount
		analysis.MonthlyTotals[record.Date.Format(monthKeyLayout)] += amount
	}

	return analysis
}
