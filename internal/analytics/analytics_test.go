package analytics

import (
	"math"
	"testing"
	"time"

	"example.com/expense-insight/backend/internal/models"
)

const tolerance = 1e-9

func record(date string, amount float64, category string) models.Expense {
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return models.Expense{Date: parsed, Amount: amount, Category: category}
}

// TestAnalyzeEmpty проверяет анализ пустой последовательности.
func TestAnalyzeEmpty(t *testing.T) {
	analysis := Analyze(nil)

	if analysis.TotalExpenses != 0 {
		t.Fatalf("expected zero total, got %v", analysis.TotalExpenses)
	}
	if len(analysis.CategoryTotals) != 0 || len(analysis.MonthlyTotals) != 0 {
		t.Fatalf("expected empty totals, got %+v", analysis)
	}
}

// TestAnalyzeScenario проверяет сценарий из двух записей.
func TestAnalyzeScenario(t *testing.T) {
	analysis := Analyze([]models.Expense{
		record("2024-03-01", -100, "Food"),
		record("2024-03-15", 250, models.CategoryUncategorized),
	})

	if analysis.TotalExpenses != 350 {
		t.Fatalf("expected total 350, got %v", analysis.TotalExpenses)
	}
	if analysis.CategoryTotals["Food"] != 100 {
		t.Fatalf("expected Food total 100, got %v", analysis.CategoryTotals["Food"])
	}
	if analysis.CategoryTotals[models.CategoryUncategorized] != 250 {
		t.Fatalf("expected Uncategorized total 250, got %v", analysis.CategoryTotals[models.CategoryUncategorized])
	}
	if analysis.MonthlyTotals["2024-03"] != 350 {
		t.Fatalf("expected month total 350, got %v", analysis.MonthlyTotals["2024-03"])
	}
}

// TestAnalyzeTotalsConsistent проверяет согласованность трех статистик.
func TestAnalyzeTotalsConsistent(t *testing.T) {
	analysis := Analyze([]models.Expense{
		record("2024-01-10", -12.35, "Food"),
		record("2024-01-20", 70.10, "Transport"),
		record("2024-02-01", -0.99, "Food"),
		record("2024-03-05", 1234.56, models.CategoryUncategorized),
	})

	var byCategory, byMonth float64
	for _, total := range analysis.CategoryTotals {
		byCategory += total
	}
	for _, total := range analysis.MonthlyTotals {
		byMonth += total
	}

	if math.Abs(analysis.TotalExpenses-byCategory) > tolerance {
		t.Fatalf("category totals %v do not match total %v", byCategory, analysis.TotalExpenses)
	}
	if math.Abs(analysis.TotalExpenses-byMonth) > tolerance {
		t.Fatalf("monthly totals %v do not match total %v", byMonth, analysis.TotalExpenses)
	}
}

// TestSortedMonths проверяет хронологический порядок месяцев.
func TestSortedMonths(t *testing.T) {
	analysis := Analyze([]models.Expense{
		record("2024-03-05", 10, "Food"),
		record("2023-11-01", 20, "Food"),
		record("2024-01-15", 30, "Food"),
	})

	months := analysis.SortedMonths()
	want := []string{"2023-11", "2024-01", "2024-03"}

	if len(months) != len(want) {
		t.Fatalf("expected %d months, got %d", len(want), len(months))
	}
	for i, month := range want {
		if months[i] != month {
			t.Fatalf("expected month %s at position %d, got %s", month, i, months[i])
		}
	}
}
