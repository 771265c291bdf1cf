package models

import (
	"sort"
	"time"
)

// CategoryUncategorized назначается записям, у которых источник не указал категорию.
const CategoryUncategorized = "Uncategorized"

// Expense — каноническая запись расхода, полученная из строки таблицы.
type Expense struct {
	ID           string    `json:"id"`
	Date         time.Time `json:"date"`
	Description  string    `json:"description"`
	Amount       float64   `json:"amount"`
	Category     string    `json:"category"`
	IsRecognized bool      `json:"is_recognized"`
}

// Analysis — сводная статистика по последовательности записей.
type Analysis struct {
	TotalExpenses  float64            `json:"total_expenses"`
	CategoryTotals map[string]float64 `json:"category_totals"`
	MonthlyTotals  map[string]float64 `json:"monthly_totals"`
}

// SortedMonths возвращает ключи месяцев в хронологическом порядке.
// Для ключей формата "2006-01" лексикографический порядок совпадает с хронологическим.
func (a Analysis) SortedMonths() []string {
	months := make([]string, 0, len(a.MonthlyTotals))
	for month := range a.MonthlyTotals {
		months = append(months, month)
	}
	sort.Strings(months)
	return months
}
