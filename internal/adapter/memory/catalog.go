package memory

import (
	"context"

	"github.com/example/restorun-backoffice/internal/domain"
)

type DishRepo struct {
	t *table[domain.Dish]
}

func NewDishRepo(seed ...domain.Dish) *DishRepo {
	r := &DishRepo{t: newTable[domain.Dish]()}
	for _, d := range seed {
		r.t.set(d.ID, d)
	}
	return r
}

func (r *DishRepo) List(ctx context.Context) ([]domain.Dish, error) { return r.t.all(), nil }

func (r *DishRepo) Get(ctx context.Context, id string) (domain.Dish, error) { return r.t.get(id) }

func (r *DishRepo) Create(ctx context.Context, d domain.Dish) error { return r.t.insert(d.ID, d) }

func (r *DishRepo) Update(ctx context.Context, d domain.Dish) error { return r.t.replace(d.ID, d) }

func (r *DishRepo) Delete(ctx context.Context, id string) error { return r.t.remove(id) }

var _ domain.DishRepository = (*DishRepo)(nil)

type WaiterRepo struct {
	t *table[domain.Waiter]
}

func NewWaiterRepo(seed ...domain.Waiter) *WaiterRepo {
	r := &WaiterRepo{t: newTable[domain.Waiter]()}
	for _, w := range seed {
		r.t.set(w.ID, w)
	}
	return r
}

func (r *WaiterRepo) List(ctx context.Context) ([]domain.Waiter, error) { return r.t.all(), nil }

func (r *WaiterRepo) Get(ctx context.Context, id string) (domain.Waiter, error) { return r.t.get(id) }

func (r *WaiterRepo) Create(ctx context.Context, w domain.Waiter) error { return r.t.insert(w.ID, w) }

func (r *WaiterRepo) Update(ctx context.Context, w domain.Waiter) error {
	return r.t.replace(w.ID, w)
}

func (r *WaiterRepo) Delete(ctx context.Context, id string) error { return r.t.remove(id) }

var _ domain.WaiterRepository = (*WaiterRepo)(nil)
