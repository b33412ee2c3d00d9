package memory

import (
	"context"
	"time"

	"github.com/example/restorun-backoffice/internal/domain"
)

// OrderRepo — заказы в памяти; возвращает копии, чтобы вызывающий не менял хранилище.
type OrderRepo struct {
	t *table[domain.OrderRecord]
}

func NewOrderRepo(seed ...domain.OrderRecord) *OrderRepo {
	r := &OrderRepo{t: newTable[domain.OrderRecord]()}
	for _, o := range seed {
		r.t.set(o.ID, cloneOrder(o))
	}
	return r
}

func (r *OrderRepo) Upsert(ctx context.Context, o domain.OrderRecord) error {
	r.t.set(o.ID, cloneOrder(o))
	return nil
}

func (r *OrderRepo) Get(ctx context.Context, id string) (domain.OrderRecord, error) {
	o, err := r.t.get(id)
	if err != nil {
		return domain.OrderRecord{}, err
	}
	return cloneOrder(o), nil
}

func (r *OrderRepo) List(ctx context.Context) ([]domain.OrderRecord, error) {
	all := r.t.all()
	for i := range all {
		all[i] = cloneOrder(all[i])
	}
	return all, nil
}

func (r *OrderRepo) UpdateStatus(ctx context.Context, id string, from, to domain.OrderStatus) error {
	r.t.mu.Lock()
	defer r.t.mu.Unlock()
	o, ok := r.t.store[id]
	if !ok {
		return domain.ErrNotFound
	}
	if o.Status != from {
		return domain.Invalid("order %s: status is %s, expected %s", id, o.Status, from)
	}
	o.Status = to
	r.t.store[id] = o
	return nil
}

func (r *OrderRepo) FetchCompletedOrders(ctx context.Context, since time.Time) ([]domain.OrderRecord, error) {
	var out []domain.OrderRecord
	for _, o := range r.t.all() {
		if o.Status == domain.StatusCompleted && !o.CreatedAt.Before(since) {
			out = append(out, cloneOrder(o))
		}
	}
	return out, nil
}

func cloneOrder(o domain.OrderRecord) domain.OrderRecord {
	o.Items = append([]domain.OrderLineItem(nil), o.Items...)
	return o
}

var _ domain.OrderRepository = (*OrderRepo)(nil)
