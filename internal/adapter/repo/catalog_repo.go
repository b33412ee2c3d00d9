package repo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"

	"github.com/example/restorun-backoffice/internal/domain"
)

type PostgresDishRepo struct {
	Pool *pgxpool.Pool
}

func NewPostgresDishRepo(pool *pgxpool.Pool) *PostgresDishRepo {
	return &PostgresDishRepo{Pool: pool}
}

func scanDish(row pgx.Row) (domain.Dish, error) {
	var (
		d     domain.Dish
		price int64
	)
	err := row.Scan(&d.ID, &d.Name, &d.Category, &price, &d.IsAvailable, &d.CreatedAt, &d.UpdatedAt)
	d.Price = domain.Money(price)
	return d, err
}

func (r *PostgresDishRepo) List(ctx context.Context) ([]domain.Dish, error) {
	rows, err := r.Pool.Query(ctx, selectDishesSQL+` ORDER BY name`)
	if err != nil {
		return nil, errors.Wrap(err, "query dishes")
	}
	defer rows.Close()
	out := make([]domain.Dish, 0)
	for rows.Next() {
		d, err := scanDish(rows)
		if err != nil {
			return nil, errors.Wrap(err, "scan dish")
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *PostgresDishRepo) Get(ctx context.Context, id string) (domain.Dish, error) {
	d, err := scanDish(r.Pool.QueryRow(ctx, selectDishesSQL+` WHERE id = $1`, id))
	return d, mapErr(err)
}

func (r *PostgresDishRepo) Create(ctx context.Context, d domain.Dish) error {
	_, err := r.Pool.Exec(ctx, insertDishSQL, d.ID, d.Name, d.Category, int64(d.Price), d.IsAvailable, d.CreatedAt, d.UpdatedAt)
	return mapErr(err)
}

func (r *PostgresDishRepo) Update(ctx context.Context, d domain.Dish) error {
	return affectedOne(r.Pool.Exec(ctx, updateDishSQL, d.ID, d.Name, d.Category, int64(d.Price), d.IsAvailable, d.UpdatedAt))
}

func (r *PostgresDishRepo) Delete(ctx context.Context, id string) error {
	return affectedOne(r.Pool.Exec(ctx, deleteDishSQL, id))
}

var _ domain.DishRepository = (*PostgresDishRepo)(nil)

type PostgresWaiterRepo struct {
	Pool *pgxpool.Pool
}

func NewPostgresWaiterRepo(pool *pgxpool.Pool) *PostgresWaiterRepo {
	return &PostgresWaiterRepo{Pool: pool}
}

func scanWaiter(row pgx.Row) (domain.Waiter, error) {
	var w domain.Waiter
	err := row.Scan(&w.ID, &w.Name, &w.Phone, &w.HiredAt, &w.CreatedAt)
	return w, err
}

func (r *PostgresWaiterRepo) List(ctx context.Context) ([]domain.Waiter, error) {
	rows, err := r.Pool.Query(ctx, selectWaitersSQL+` ORDER BY name`)
	if err != nil {
		return nil, errors.Wrap(err, "query waiters")
	}
	defer rows.Close()
	out := make([]domain.Waiter, 0)
	for rows.Next() {
		w, err := scanWaiter(rows)
		if err != nil {
			return nil, errors.Wrap(err, "scan waiter")
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

func (r *PostgresWaiterRepo) Get(ctx context.Context, id string) (domain.Waiter, error) {
	w, err := scanWaiter(r.Pool.QueryRow(ctx, selectWaitersSQL+` WHERE id = $1`, id))
	return w, mapErr(err)
}

func (r *PostgresWaiterRepo) Create(ctx context.Context, w domain.Waiter) error {
	_, err := r.Pool.Exec(ctx, insertWaiterSQL, w.ID, w.Name, w.Phone, w.HiredAt, w.CreatedAt)
	return mapErr(err)
}

func (r *PostgresWaiterRepo) Update(ctx context.Context, w domain.Waiter) error {
	return affectedOne(r.Pool.Exec(ctx, updateWaiterSQL, w.ID, w.Name, w.Phone, w.HiredAt))
}

func (r *PostgresWaiterRepo) Delete(ctx context.Context, id string) error {
	return affectedOne(r.Pool.Exec(ctx, deleteWaiterSQL, id))
}

var _ domain.WaiterRepository = (*PostgresWaiterRepo)(nil)
