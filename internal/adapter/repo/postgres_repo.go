package repo

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"

	"github.com/example/restorun-backoffice/internal/domain"
)

type PostgresOrderRepo struct {
	Pool *pgxpool.Pool
}

func NewPostgresOrderRepo(pool *pgxpool.Pool) *PostgresOrderRepo {
	return &PostgresOrderRepo{Pool: pool}
}

// Upsert заменяет заказ и его позиции в одной транзакции.
func (r *PostgresOrderRepo) Upsert(ctx context.Context, o domain.OrderRecord) error {
	return pgx.BeginFunc(ctx, r.Pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, upsertOrderSQL,
			o.ID, o.CreatedAt, o.TableNumber, int64(o.TotalAmount), string(o.Status), o.WaiterID, o.WaiterName,
		); err != nil {
			return errors.Wrap(err, "upsert order row")
		}
		if _, err := tx.Exec(ctx, deleteOrderItemsSQL, o.ID); err != nil {
			return errors.Wrap(err, "clear order items")
		}
		if len(o.Items) == 0 {
			return nil
		}
		batch := &pgx.Batch{}
		for i, li := range o.Items {
			batch.Queue(insertOrderItemSQL, o.ID, i, li.DishID, li.DishName, li.Quantity, int64(li.UnitPrice))
		}
		return errors.Wrap(tx.SendBatch(ctx, batch).Close(), "insert order items")
	})
}

func (r *PostgresOrderRepo) Get(ctx context.Context, id string) (domain.OrderRecord, error) {
	orders, err := r.load(ctx, selectOrdersSQL+` WHERE o.id = $1`, id)
	if err != nil {
		return domain.OrderRecord{}, err
	}
	if len(orders) == 0 {
		return domain.OrderRecord{}, domain.ErrNotFound
	}
	return orders[0], nil
}

func (r *PostgresOrderRepo) List(ctx context.Context) ([]domain.OrderRecord, error) {
	return r.load(ctx, selectOrdersSQL+` ORDER BY o.created_at DESC`)
}

func (r *PostgresOrderRepo) FetchCompletedOrders(ctx context.Context, since time.Time) ([]domain.OrderRecord, error) {
	return r.load(ctx, selectOrdersSQL+` WHERE o.status = $1 AND o.created_at >= $2 ORDER BY o.created_at`,
		string(domain.StatusCompleted), since)
}

func (r *PostgresOrderRepo) UpdateStatus(ctx context.Context, id string, from, to domain.OrderStatus) error {
	tag, err := r.Pool.Exec(ctx, updateOrderStatusSQL, string(to), id, string(from))
	if err != nil {
		return errors.Wrap(err, "update order status")
	}
	if tag.RowsAffected() == 1 {
		return nil
	}
	var current string
	if err := r.Pool.QueryRow(ctx, selectOrderStatusSQL, id).Scan(&current); err != nil {
		return mapErr(err)
	}
	return staleStatus(id, domain.OrderStatus(current), from)
}

// staleStatus — статус уже сменил другой запрос.
func staleStatus(id string, current, expected domain.OrderStatus) error {
	return domain.Invalid("order %s: status is %s, expected %s", id, current, expected)
}

func (r *PostgresOrderRepo) load(ctx context.Context, sql string, args ...any) ([]domain.OrderRecord, error) {
	rows, err := r.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, errors.Wrap(err, "query orders")
	}
	var orders []domain.OrderRecord
	index := make(map[string]int)
	for rows.Next() {
		var (
			o      domain.OrderRecord
			total  int64
			status string
		)
		if err := rows.Scan(&o.ID, &o.CreatedAt, &o.TableNumber, &total, &status, &o.WaiterID, &o.WaiterName); err != nil {
			rows.Close()
			return nil, errors.Wrap(err, "scan order")
		}
		o.TotalAmount = domain.Money(total)
		o.Status = domain.OrderStatus(status)
		index[o.ID] = len(orders)
		orders = append(orders, o)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "read orders")
	}
	if len(orders) == 0 {
		return orders, nil
	}

	ids := make([]string, len(orders))
	for i, o := range orders {
		ids[i] = o.ID
	}
	itemRows, err := r.Pool.Query(ctx, selectOrderItemsSQL, ids)
	if err != nil {
		return nil, errors.Wrap(err, "query order items")
	}
	defer itemRows.Close()
	for itemRows.Next() {
		var (
			orderID string
			li      domain.OrderLineItem
			price   int64
		)
		if err := itemRows.Scan(&orderID, &li.DishID, &li.DishName, &li.Quantity, &price); err != nil {
			return nil, errors.Wrap(err, "scan order item")
		}
		li.UnitPrice = domain.Money(price)
		if i, ok := index[orderID]; ok {
			orders[i].Items = append(orders[i].Items, li)
		}
	}
	return orders, errors.Wrap(itemRows.Err(), "read order items")
}

var _ domain.OrderRepository = (*PostgresOrderRepo)(nil)

// mapErr переводит ошибки pgx в доменные.
func mapErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return errors.Wrap(domain.ErrConflict, pgErr.Detail)
	}
	return err
}

func affectedOne(tag pgconn.CommandTag, err error) error {
	if err != nil {
		return mapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
