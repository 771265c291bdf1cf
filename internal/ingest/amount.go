package ingest

import (
	"strconv"
	"strings"
)

// ParseAmount нормализует денежное значение ячейки в число со знаком.
// Функция тотальна: нераспознаваемое значение дает 0.
// Знак фиксируется по ведущему минусу до очистки строки, иначе
// записи вида "-$12.50" потеряли бы его вместе с символом валюты.
func ParseAmount(raw string) float64 {
	value := strings.TrimSpace(raw)
	negative := strings.HasPrefix(value, "-")

	var cleaned strings.Builder
	for _, r := range value {
		if (r >= '0' && r <= '9') || r == '.' {
			cleaned.WriteRune(r)
		}
	}

	amount, err := strconv.ParseFloat(cleaned.String(), 64)
	if err != nil {
		return 0
	}

	if negative {
		return -amount
	}
	return amount
}
