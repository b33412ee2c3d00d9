// Package analytics сводит заказы за окно дней в метрики дашборда.
package analytics

import (
	"time"

	"github.com/example/restorun-backoffice/internal/domain"
)

// DefaultTopLimit — длина рейтингов блюд и официантов по умолчанию.
const DefaultTopLimit = 5

const dateLayout = "2006-01-02"

type options struct {
	topLimit int
	loc      *time.Location
}

type Option func(*options)

// WithTopLimit задаёт длину рейтингов; n <= 0 оставляет значение по умолчанию.
func WithTopLimit(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.topLimit = n
		}
	}
}

// WithLocation задаёт часовой пояс календарных дней.
func WithLocation(loc *time.Location) Option {
	return func(o *options) {
		if loc != nil {
			o.loc = loc
		}
	}
}

// ComputeAnalytics считает сводку по выполненным заказам начиная с windowStart.
// Заказы не в статусе completed и созданные раньше начала окна отбрасываются.
func ComputeAnalytics(orders []domain.OrderRecord, windowStart time.Time, windowDays int, opts ...Option) (domain.AnalyticsSummary, error) {
	if windowDays <= 0 {
		return domain.AnalyticsSummary{}, domain.ErrInvalidWindow
	}
	o := options{topLimit: DefaultTopLimit, loc: windowStart.Location()}
	for _, opt := range opts {
		opt(&o)
	}

	start := startOfDay(windowStart, o.loc)
	days := make([]domain.DailyRevenuePoint, windowDays)
	dayIndex := make(map[string]int, windowDays)
	for i := range days {
		key := start.AddDate(0, 0, i).Format(dateLayout)
		days[i] = domain.DailyRevenuePoint{Date: key}
		dayIndex[key] = i
	}

	var (
		total   domain.Money
		count   int
		dishes  = newDishRanking()
		waiters = newWaiterRanking()
	)
	for _, order := range orders {
		if order.Status != domain.StatusCompleted || order.CreatedAt.Before(start) {
			continue
		}
		count++
		total += order.TotalAmount
		if i, ok := dayIndex[order.CreatedAt.In(o.loc).Format(dateLayout)]; ok {
			days[i].Revenue += order.TotalAmount
		}
		waiters.add(order)
		for _, li := range order.Items {
			dishes.add(li)
		}
	}

	return domain.AnalyticsSummary{
		WindowStart:  start,
		WindowDays:   windowDays,
		TotalRevenue: total,
		AverageCheck: averageCheck(total, count),
		OrderCount:   count,
		DailyRevenue: days,
		TopDishes:    dishes.top(o.topLimit),
		TopWaiters:   waiters.top(o.topLimit),
	}, nil
}

// averageCheck округляет частное до ближайшей копейки, половину вверх.
func averageCheck(total domain.Money, count int) domain.Money {
	if count == 0 {
		return 0
	}
	n := domain.Money(count)
	q, r := total/n, total%n
	if r < 0 {
		q, r = q-1, r+n
	}
	if 2*r >= n {
		q++
	}
	return q
}

func startOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}
