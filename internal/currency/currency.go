package currency

import (
	"fmt"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter форматирует суммы для отображения в фиксированной паре локаль/валюта.
// Форматирование декоративно и не входит в контракт ядра ингеста.
type Formatter struct {
	printer *message.Printer
	unit    currency.Unit
	rate    float64
}

// New создает форматтер для заданной локали, кода валюты и
// фиксированного курса-заглушки USD к валюте отображения.
func New(locale, code string, rate float64) (*Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", locale, err)
	}

	unit, err := currency.ParseISO(code)
	if err != nil {
		return nil, fmt.Errorf("parse currency %q: %w", code, err)
	}

	return &Formatter{
		printer: message.NewPrinter(tag),
		unit:    unit,
		rate:    rate,
	}, nil
}

// Format возвращает сумму с символом валюты в выбранной локали.
func (f *Formatter) Format(amount float64) string {
	return f.printer.Sprintf("%v", currency.Symbol(f.unit.Amount(amount)))
}

// ConvertFromUSD пересчитывает сумму из USD по фиксированному курсу.
func (f *Formatter) ConvertFromUSD(amount float64) float64 {
	return amount * f.rate
}
