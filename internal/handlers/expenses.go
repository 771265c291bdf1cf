package handlers

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"example.com/expense-insight/backend/internal/currency"
	"example.com/expense-insight/backend/internal/models"
	"example.com/expense-insight/backend/internal/store"
)

type ExpenseHandler struct {
	Store     *store.Store
	Formatter *currency.Formatter
}

// NewExpenseHandler создает обработчик списка расходов.
func NewExpenseHandler(s *store.Store, formatter *currency.Formatter) *ExpenseHandler {
	return &ExpenseHandler{Store: s, Formatter: formatter}
}

type ExpensesResponse struct {
	UploadID uuid.UUID        `json:"upload_id"`
	Records  []models.Expense `json:"records"`
}

type ReorderRequest struct {
	IDs []string `json:"ids" validate:"required,min=1,dive,required"`
}

// List возвращает записи текущей загрузки в отображаемом порядке.
func (h *ExpenseHandler) List(c echo.Context) error {
	snapshot, err := h.Store.Current()
	if err != nil {
		if errors.Is(err, store.ErrNoUpload) {
			return notFound(c, "no upload loaded")
		}
		return serverError(c)
	}

	return c.JSON(http.StatusOK, ExpensesResponse{
		UploadID: snapshot.UploadID,
		Records:  snapshot.Records,
	})
}

// Reorder меняет отображаемый порядок записей.
// Статистика остается замороженной на момент ингеста и не пересчитывается.
func (h *ExpenseHandler) Reorder(c echo.Context) error {
	var req ReorderRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "ids are required")
	}

	snapshot, err := h.Store.Reorder(req.IDs)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNoUpload):
			return notFound(c, "no upload loaded")
		case errors.Is(err, store.ErrInvalid):
			return badRequest(c, "ids must be a permutation of the current records")
		default:
			return serverError(c)
		}
	}

	return c.JSON(http.StatusOK, ExpensesResponse{
		UploadID: snapshot.UploadID,
		Records:  snapshot.Records,
	})
}
