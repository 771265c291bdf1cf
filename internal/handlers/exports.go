package handlers

import (
	"bytes"
	"encoding/csv"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"example.com/expense-insight/backend/internal/store"
)

const dateLayout = "2006-01-02"

// ExportJSON выгружает текущие записи и статистику в JSON-файл.
func (h *ExpenseHandler) ExportJSON(c echo.Context) error {
	snapshot, err := h.Store.Current()
	if err != nil {
		if errors.Is(err, store.ErrNoUpload) {
			return notFound(c, "no upload loaded")
		}
		return serverError(c)
	}

	filename := "expenses-" + snapshot.UploadID.String() + ".json"
	c.Response().Header().Set(echo.HeaderContentType, "application/json")
	c.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename=\""+filename+"\"")
	return c.JSON(http.StatusOK, UploadResponse{
		UploadID:   snapshot.UploadID,
		UploadedAt: snapshot.UploadedAt,
		Records:    snapshot.Records,
		Analysis:   snapshot.Analysis,
	})
}

// ExportCSV выгружает текущие записи в CSV-файл.
func (h *ExpenseHandler) ExportCSV(c echo.Context) error {
	snapshot, err := h.Store.Current()
	if err != nil {
		if errors.Is(err, store.ErrNoUpload) {
			return notFound(c, "no upload loaded")
		}
		return serverError(c)
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write([]string{"id", "date", "description", "amount", "amount_display", "category", "recognized"}); err != nil {
		return serverError(c)
	}

	for _, record := range snapshot.Records {
		row := []string{
			record.ID,
			record.Date.Format(dateLayout),
			record.Description,
			strconv.FormatFloat(record.Amount, 'f', 2, 64),
			h.Formatter.Format(record.Amount),
			record.Category,
			strconv.FormatBool(record.IsRecognized),
		}
		if err := writer.Write(row); err != nil {
			return serverError(c)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return serverError(c)
	}

	filename := "expenses-" + snapshot.UploadID.String() + ".csv"
	c.Response().Header().Set(echo.HeaderContentType, "text/csv")
	c.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename=\""+filename+"\"")
	return c.Blob(http.StatusOK, "text/csv", buf.Bytes())
}
