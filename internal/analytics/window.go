package analytics

import (
	"time"

	"github.com/example/restorun-backoffice/internal/domain"
)

// Timeframe — период, выбранный на дашборде.
type Timeframe string

const (
	Week  Timeframe = "week"
	Month Timeframe = "month"
)

// ParseTimeframe: пустое значение означает неделю.
func ParseTimeframe(s string) (Timeframe, error) {
	switch Timeframe(s) {
	case "", Week:
		return Week, nil
	case Month:
		return Month, nil
	}
	return "", domain.Invalid("unknown timeframe %q: expected week or month", s)
}

func (tf Timeframe) Days() int {
	if tf == Month {
		return 30
	}
	return 7
}

// WindowFor возвращает окно, заканчивающееся сегодняшним днём в loc.
func WindowFor(tf Timeframe, now time.Time, loc *time.Location) (time.Time, int) {
	days := tf.Days()
	today := startOfDay(now, loc)
	return today.AddDate(0, 0, -(days - 1)), days
}
