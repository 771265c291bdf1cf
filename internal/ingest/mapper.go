package ingest

import (
	"fmt"
	"strings"
	"time"

	"example.com/expense-insight/backend/internal/models"
)

// Списки синонимов заголовков для каждого логического поля.
// Сравнение чувствительно к регистру, побеждает первый синоним
// с непустым значением в строке.
var (
	dateAliases        = []string{"Date", "DATE", "date", "תאריך", "TransactionDate"}
	descriptionAliases = []string{"Description", "DESC", "תיאור", "TransactionDesc"}
	amountAliases      = []string{"Amount", "AMOUNT", "סכום", "TransactionAmount"}
	categoryAliases    = []string{"Category", "CATEGORY", "קטגוריה"}
)

const recordIDPrefix = "expense-"

// mapRow собирает каноническую запись расхода из сырой строки таблицы.
// Нераспознанная дата заменяется текущей датой и сообщается наблюдателю,
// но никогда не прерывает обработку строки.
func mapRow(row map[string]string, index int, obs RowObserver) models.Expense {
	rawDate := resolveField(row, dateAliases)
	rawDescription := resolveField(row, descriptionAliases)
	rawAmount := resolveField(row, amountAliases)
	rawCategory := resolveField(row, categoryAliases)

	date, ok := ParseDate(rawDate)
	if !ok {
		obs.DateUnresolved(index, rawDate)
		date = time.Now()
	}

	category := strings.TrimSpace(rawCategory)
	recognized := category != ""
	if !recognized {
		category = models.CategoryUncategorized
	}

	return models.Expense{
		ID:           fmt.Sprintf("%s%d", recordIDPrefix, index),
		Date:         date,
		Description:  strings.TrimSpace(rawDescription),
		Amount:       ParseAmount(rawAmount),
		Category:     category,
		IsRecognized: recognized,
	}
}

func resolveField(row map[string]string, aliases []string) string {
	for _, alias := range aliases {
		if value, ok := row[alias]; ok && value != "" {
			return value
		}
	}
	return ""
}
