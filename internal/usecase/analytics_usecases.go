package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/example/restorun-backoffice/internal/analytics"
	"github.com/example/restorun-backoffice/internal/domain"
)

// GetAnalytics — сводка по выполненным заказам за неделю или месяц.
type GetAnalytics struct {
	Source   domain.OrderSource
	Location LocationResolver
	TopLimit int
	Now      func() time.Time
}

func (uc GetAnalytics) Execute(ctx context.Context, timeframe string) (domain.AnalyticsSummary, error) {
	tf, err := analytics.ParseTimeframe(timeframe)
	if err != nil {
		return domain.AnalyticsSummary{}, err
	}
	loc := uc.Location.Resolve(ctx)
	start, days := analytics.WindowFor(tf, now(uc.Now), loc)

	orders, err := uc.Source.FetchCompletedOrders(ctx, start)
	if err != nil {
		return domain.AnalyticsSummary{}, fmt.Errorf("%w: fetch orders: %w", domain.ErrDataUnavailable, err)
	}
	return analytics.ComputeAnalytics(orders, start, days,
		analytics.WithLocation(loc),
		analytics.WithTopLimit(uc.TopLimit),
	)
}
