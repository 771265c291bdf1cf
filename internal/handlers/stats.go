package handlers

import (
	"errors"
	"net/http"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"example.com/expense-insight/backend/internal/currency"
	"example.com/expense-insight/backend/internal/store"
)

type StatsHandler struct {
	Store     *store.Store
	Formatter *currency.Formatter
}

// NewStatsHandler создает обработчик статистики расходов.
func NewStatsHandler(s *store.Store, formatter *currency.Formatter) *StatsHandler {
	return &StatsHandler{Store: s, Formatter: formatter}
}

type OverviewResponse struct {
	UploadID           uuid.UUID `json:"upload_id"`
	UploadedAt         time.Time `json:"uploaded_at"`
	TotalExpenses      float64   `json:"total_expenses"`
	TotalFormatted     string    `json:"total_formatted"`
	RecordCount        int       `json:"record_count"`
	UncategorizedCount int       `json:"uncategorized_count"`
}

type CategoryTotalItem struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

type CategoryTotalsResponse struct {
	UploadID   uuid.UUID           `json:"upload_id"`
	Categories []CategoryTotalItem `json:"categories"`
}

type MonthlyTotalItem struct {
	Month string  `json:"month"`
	Total float64 `json:"total"`
}

type MonthlyTotalsResponse struct {
	UploadID uuid.UUID          `json:"upload_id"`
	Months   []MonthlyTotalItem `json:"months"`
}

// Overview возвращает сводную статистику по текущей загрузке.
func (h *StatsHandler) Overview(c echo.Context) error {
	snapshot, err := h.Store.Current()
	if err != nil {
		if errors.Is(err, store.ErrNoUpload) {
			return notFound(c, "no upload loaded")
		}
		return serverError(c)
	}

	uncategorized := 0
	for _, record := range snapshot.Records {
		if !record.IsRecognized {
			uncategorized++
		}
	}

	return c.JSON(http.StatusOK, OverviewResponse{
		UploadID:           snapshot.UploadID,
		UploadedAt:         snapshot.UploadedAt,
		TotalExpenses:      snapshot.Analysis.TotalExpenses,
		TotalFormatted:     h.Formatter.Format(snapshot.Analysis.TotalExpenses),
		RecordCount:        len(snapshot.Records),
		UncategorizedCount: uncategorized,
	})
}

// Categories возвращает траты по категориям, по убыванию суммы.
func (h *StatsHandler) Categories(c echo.Context) error {
	snapshot, err := h.Store.Current()
	if err != nil {
		if errors.Is(err, store.ErrNoUpload) {
			return notFound(c, "no upload loaded")
		}
		return serverError(c)
	}

	categories := make([]CategoryTotalItem, 0, len(snapshot.Analysis.CategoryTotals))
	for category, total := range snapshot.Analysis.CategoryTotals {
		categories = append(categories, CategoryTotalItem{Category: category, Total: total})
	}
	sort.Slice(categories, func(i, j int) bool {
		if categories[i].Total != categories[j].Total {
			return categories[i].Total > categories[j].Total
		}
		return categories[i].Category < categories[j].Category
	})

	return c.JSON(http.StatusOK, CategoryTotalsResponse{
		UploadID:   snapshot.UploadID,
		Categories: categories,
	})
}

// Monthly возвращает траты по месяцам в хронологическом порядке.
func (h *StatsHandler) Monthly(c echo.Context) error {
	snapshot, err := h.Store.Current()
	if err != nil {
		if errors.Is(err, store.ErrNoUpload) {
			return notFound(c, "no upload loaded")
		}
		return serverError(c)
	}

	months := make([]MonthlyTotalItem, 0, len(snapshot.Analysis.MonthlyTotals))
	for _, month := range snapshot.Analysis.SortedMonths() {
		months = append(months, MonthlyTotalItem{
			Month: month,
			Total: snapshot.Analysis.MonthlyTotals[month],
		})
	}

	return c.JSON(http.StatusOK, MonthlyTotalsResponse{
		UploadID: snapshot.UploadID,
		Months:   months,
	})
}
