package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"example.com/expense-insight/backend/internal/analytics"
	"example.com/expense-insight/backend/internal/ingest"
	"example.com/expense-insight/backend/internal/models"
	"example.com/expense-insight/backend/internal/notifications"
	"example.com/expense-insight/backend/internal/store"
)

type UploadHandler struct {
	Store     *store.Store
	Hub       *notifications.Hub
	Logger    *slog.Logger
	SheetName string
	MaxBytes  int64
}

// NewUploadHandler создает обработчик загрузки файла транзакций.
func NewUploadHandler(s *store.Store, hub *notifications.Hub, logger *slog.Logger, sheetName string, maxBytes int64) *UploadHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &UploadHandler{
		Store:     s,
		Hub:       hub,
		Logger:    logger,
		SheetName: sheetName,
		MaxBytes:  maxBytes,
	}
}

type UploadResponse struct {
	UploadID     uuid.UUID        `json:"upload_id"`
	UploadedAt   time.Time        `json:"uploaded_at"`
	Records      []models.Expense `json:"records"`
	Analysis     models.Analysis  `json:"analysis"`
	DateWarnings int              `json:"date_warnings"`
}

// Upload принимает xlsx-файл, нормализует его строки в записи расходов
// и целиком замещает текущее состояние записями и пересчитанной статистикой.
func (h *UploadHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "file is required")
	}

	if fileHeader.Size > h.MaxBytes {
		return payloadTooLarge(c, "file exceeds upload size limit")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return serverError(c)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return serverError(c)
	}

	collector := ingest.NewCollector(h.Logger)
	records, err := ingest.ParseWorkbook(data, h.SheetName, collector)
	if err != nil {
		h.Hub.Publish(notifications.Event{
			Type: notifications.EventUploadFailed,
			Data: map[string]string{"error": err.Error()},
		})

		switch {
		case errors.Is(err, ingest.ErrSheetNotFound):
			return unprocessable(c, err.Error())
		case errors.Is(err, ingest.ErrBadWorkbook):
			return badRequest(c, err.Error())
		default:
			return serverError(c)
		}
	}

	snapshot := store.Snapshot{
		UploadID:   uuid.New(),
		UploadedAt: time.Now(),
		Records:    records,
		Analysis:   analytics.Analyze(records),
	}
	h.Store.Replace(snapshot)

	h.Logger.Info("upload processed",
		slog.String("upload_id", snapshot.UploadID.String()),
		slog.String("file", fileHeader.Filename),
		slog.Int("records", len(records)),
		slog.Int("date_warnings", collector.DateWarnings()),
	)

	h.Hub.Publish(notifications.Event{
		Type: notifications.EventUploadCompleted,
		Data: map[string]interface{}{
			"upload_id":      snapshot.UploadID,
			"record_count":   len(records),
			"total_expenses": snapshot.Analysis.TotalExpenses,
		},
	})

	return c.JSON(http.StatusOK, UploadResponse{
		UploadID:     snapshot.UploadID,
		UploadedAt:   snapshot.UploadedAt,
		Records:      snapshot.Records,
		Analysis:     snapshot.Analysis,
		DateWarnings: collector.DateWarnings(),
	})
}
