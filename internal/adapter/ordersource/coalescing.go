package ordersource

import (
	"context"
	"strconv"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/example/restorun-backoffice/internal/domain"
)

// Coalescing объединяет одновременные выборки за одно и то же начало окна.
// Результаты не кэшируются: завершённый запрос следующий вызов повторит.
type Coalescing struct {
	Source domain.OrderSource
	group  singleflight.Group
}

func New(src domain.OrderSource) *Coalescing {
	return &Coalescing{Source: src}
}

func (c *Coalescing) FetchCompletedOrders(ctx context.Context, since time.Time) ([]domain.OrderRecord, error) {
	key := strconv.FormatInt(since.UnixNano(), 10)
	ch := c.group.DoChan(key, func() (any, error) {
		// не отменяем общую выборку из-за одного ушедшего клиента
		return c.Source.FetchCompletedOrders(context.WithoutCancel(ctx), since)
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		orders := res.Val.([]domain.OrderRecord)
		if res.Shared {
			// у каждого вызывающего свой срез
			orders = append([]domain.OrderRecord(nil), orders...)
		}
		return orders, nil
	}
}

var _ domain.OrderSource = (*Coalescing)(nil)
