package ingest

import (
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// dateLayouts — явные шаблоны дат, проверяемые по порядку.
// time.Parse отклоняет синтаксически верные, но календарно невозможные даты
// (например 31 апреля), поэтому такие значения проваливаются к следующей попытке.
var dateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"01/02/2006",
	"02-01-2006",
	"02.01.2006",
	"2006/01/02",
}

// serialEpoch — день 0 табличного серийного формата дат.
var serialEpoch = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)

// ParseDate нормализует сырое значение ячейки в календарную дату.
// Стратегии пробуются по порядку, побеждает первая успешная:
// явные шаблоны, строгий ISO-8601, серийный номер таблицы
// (с поправкой на два дня из-за исторической ошибки эпохи),
// свободный разбор dateparse. ok == false, если ничего не подошло.
func ParseDate(raw string) (time.Time, bool) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, true
		}
	}

	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return parsed, true
	}

	if serial, err := strconv.ParseFloat(value, 64); err == nil {
		return serialEpoch.AddDate(0, 0, int(serial)-2), true
	}

	if parsed, err := dateparse.ParseAny(value); err == nil {
		return parsed, true
	}

	return time.Time{}, false
}
