package ingest

import (
	"errors"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func buildWorkbook(t *testing.T, sheet string, rows [][]interface{}) []byte {
	t.Helper()

	file := excelize.NewFile()
	defer file.Close()

	if _, err := file.NewSheet(sheet); err != nil {
		t.Fatalf("create sheet: %v", err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := file.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}

	buf, err := file.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return buf.Bytes()
}

// TestParseWorkbook проверяет сквозной сценарий разбора листа транзакций.
func TestParseWorkbook(t *testing.T) {
	data := buildWorkbook(t, DefaultSheetName, [][]interface{}{
		{"Date", "Description", "Amount", "Category"},
		{"2024-03-01", "Groceries", "-100", "Food"},
		{"2024-03-15", "Refund", "250", ""},
	})

	records, err := ParseWorkbook(data, DefaultSheetName, NopObserver())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}

	if records[0].Amount != -100 || records[0].Category != "Food" {
		t.Fatalf("unexpected first record: %+v", records[0])
	}
	if records[1].Amount != 250 || records[1].Category != "Uncategorized" || records[1].IsRecognized {
		t.Fatalf("unexpected second record: %+v", records[1])
	}
	if records[0].ID != "expense-0" || records[1].ID != "expense-1" {
		t.Fatalf("unexpected record ids: %s, %s", records[0].ID, records[1].ID)
	}
}

// TestParseWorkbookZeroFilter проверяет отбрасывание записей с нулевой суммой.
func TestParseWorkbookZeroFilter(t *testing.T) {
	data := buildWorkbook(t, DefaultSheetName, [][]interface{}{
		{"Date", "Amount", "Category"},
		{"2024-03-01", "0", "Food"},
		{"2024-03-02", "", "Food"},
		{"2024-03-03", "12.50", "Food"},
	})

	records, err := ParseWorkbook(data, DefaultSheetName, NopObserver())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record after zero filter, got %d", len(records))
	}
	if records[0].Amount != 12.5 {
		t.Fatalf("unexpected surviving record: %+v", records[0])
	}
}

// TestParseWorkbookMissingSheet проверяет фатальную ошибку при отсутствии листа.
func TestParseWorkbookMissingSheet(t *testing.T) {
	data := buildWorkbook(t, "Other Sheet", [][]interface{}{
		{"Date", "Amount"},
		{"2024-03-01", "10"},
	})

	records, err := ParseWorkbook(data, DefaultSheetName, NopObserver())
	if !errors.Is(err, ErrSheetNotFound) {
		t.Fatalf("expected ErrSheetNotFound, got %v", err)
	}
	if records != nil {
		t.Fatal("expected no partial result")
	}
	if !strings.Contains(err.Error(), DefaultSheetName) {
		t.Fatalf("expected sheet name in error message, got %q", err.Error())
	}
}

// TestParseWorkbookBadPayload проверяет обертку ошибки декодирования.
func TestParseWorkbookBadPayload(t *testing.T) {
	_, err := ParseWorkbook([]byte("not an xlsx file"), DefaultSheetName, NopObserver())
	if !errors.Is(err, ErrBadWorkbook) {
		t.Fatalf("expected ErrBadWorkbook, got %v", err)
	}
}

// TestParseWorkbookDateWarnings проверяет подсчет нераспознанных дат наблюдателем.
func TestParseWorkbookDateWarnings(t *testing.T) {
	data := buildWorkbook(t, DefaultSheetName, [][]interface{}{
		{"Date", "Amount"},
		{"???", "10"},
		{"2024-03-01", "20"},
	})

	obs := &countingObserver{}
	records, err := ParseWorkbook(data, DefaultSheetName, obs)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected both rows to survive, got %d", len(records))
	}
	if obs.unresolved != 1 {
		t.Fatalf("expected 1 date warning, got %d", obs.unresolved)
	}
}
