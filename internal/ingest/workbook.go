package ingest

import (
	"bytes"
	"fmt"
	"slices"

	"github.com/xuri/excelize/v2"

	"example.com/expense-insight/backend/internal/models"
)

// DefaultSheetName — лист, из которого читаются транзакции.
const DefaultSheetName = "Detailed Transactions"

// ParseWorkbook декодирует xlsx-файл и превращает строки именованного листа
// в последовательность записей расходов в исходном порядке.
// Записи с нулевой суммой отбрасываются: они не несут бюджетного сигнала.
// Отсутствие листа и битый контейнер — фатальные ошибки без частичного результата.
func ParseWorkbook(data []byte, sheet string, obs RowObserver) ([]models.Expense, error) {
	if obs == nil {
		obs = NopObserver()
	}

	file, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrBadWorkbook, err)
	}
	defer file.Close()

	// GetSheetIndex сравнивает имена без учета регистра, а контракт
	// требует точного совпадения имени листа.
	if !slices.Contains(file.GetSheetList(), sheet) {
		return nil, fmt.Errorf("sheet %q not found in workbook: %w", sheet, ErrSheetNotFound)
	}

	rows, err := file.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%w: reading sheet %q: %s", ErrBadWorkbook, sheet, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	headers := rows[0]
	records := make([]models.Expense, 0, len(rows)-1)

	for i, row := range rows[1:] {
		raw := make(map[string]string, len(headers))
		for j, header := range headers {
			// Пустые ячейки представляются пустой строкой, чтобы
			// разрешение полей оставалось тотальным.
			value := ""
			if j < len(row) {
				value = row[j]
			}
			raw[header] = value
		}

		record := mapRow(raw, i, obs)
		if record.Amount == 0 {
			continue
		}
		records = append(records, record)
	}

	return records, nil
}
