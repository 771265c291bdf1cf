package ingest

import "log/slog"

// RowObserver получает диагностические события по отдельным строкам.
// События никогда не прерывают обработку файла.
type RowObserver interface {
	DateUnresolved(rowIndex int, raw string)
}

// Collector логирует построчные предупреждения и считает их для отчета о загрузке.
type Collector struct {
	logger     *slog.Logger
	unresolved int
}

// NewCollector создает наблюдатель, пишущий предупреждения в slog.
func NewCollector(logger *slog.Logger) *Collector {
	if logger == nil {
		logger = slog.Default()
	}
	return &Collector{logger: logger}
}

func (c *Collector) DateUnresolved(rowIndex int, raw string) {
	c.unresolved++
	c.logger.Warn("unresolved date in row",
		slog.Int("row", rowIndex+1),
		slog.String("value", raw),
	)
}

// DateWarnings возвращает число строк с нераспознанной датой.
func (c *Collector) DateWarnings() int {
	return c.unresolved
}

type nopObserver struct{}

// NopObserver возвращает наблюдатель, игнорирующий события.
func NopObserver() RowObserver {
	return nopObserver{}
}

func (nopObserver) DateUnresolved(int, string) {}
