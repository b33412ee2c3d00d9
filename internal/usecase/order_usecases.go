package usecase

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/example/restorun-backoffice/internal/domain"
)

// ProcessIncomingOrder — сохранить входящее сообщение заказа.
type ProcessIncomingOrder struct {
	Repo domain.OrderRepository
}

func (uc ProcessIncomingOrder) Execute(ctx context.Context, raw []byte) error {
	var o domain.OrderRecord
	if err := json.Unmarshal(raw, &o); err != nil {
		return fmt.Errorf("%w: decode order: %w", domain.ErrValidation, err)
	}
	if err := o.Validate(); err != nil {
		return err
	}
	if o.CreatedAt.IsZero() {
		o.CreatedAt = time.Now().UTC()
	}
	return errors.Wrapf(uc.Repo.Upsert(ctx, o), "upsert order %s", o.ID)
}

// GetOrder — получить заказ по идентификатору.
type GetOrder struct {
	Repo domain.OrderRepository
}

func (uc GetOrder) Execute(ctx context.Context, id string) (domain.OrderRecord, error) {
	return uc.Repo.Get(ctx, id)
}

// ListOrders — список заказов, новые сверху, с поиском и фильтром статуса.
type ListOrders struct {
	Repo domain.OrderRepository
}

func (uc ListOrders) Execute(ctx context.Context, f domain.OrderFilter) ([]domain.OrderRecord, error) {
	var status domain.OrderStatus
	if f.Status != "" && f.Status != "all" {
		st, err := domain.ParseOrderStatus(f.Status)
		if err != nil {
			return nil, err
		}
		status = st
	}

	all, err := uc.Repo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list orders")
	}
	out := make([]domain.OrderRecord, 0, len(all))
	for _, o := range all {
		if status != "" && o.Status != status {
			continue
		}
		if !domain.ContainsFold(o.WaiterName, f.Search) && !domain.ContainsFold(o.ID, f.Search) {
			continue
		}
		out = append(out, o)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// ExportOrdersCSV — выгрузка отфильтрованного списка в CSV.
type ExportOrdersCSV struct {
	List     ListOrders
	Location LocationResolver
}

var csvHeader = []string{"ID", "Date", "Table", "Waiter", "Amount", "Status"}

const csvDateLayout = "02.01.2006 15:04"

func (uc ExportOrdersCSV) Execute(ctx context.Context, f domain.OrderFilter, w io.Writer) error {
	orders, err := uc.List.Execute(ctx, f)
	if err != nil {
		return err
	}
	loc := uc.Location.Resolve(ctx)

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return errors.Wrap(err, "write csv header")
	}
	for _, o := range orders {
		row := []string{
			o.ID,
			o.CreatedAt.In(loc).Format(csvDateLayout),
			strconv.Itoa(o.TableNumber),
			o.WaiterName,
			o.TotalAmount.String(),
			string(o.Status),
		}
		if err := cw.Write(row); err != nil {
			return errors.Wrapf(err, "write csv row %s", o.ID)
		}
	}
	cw.Flush()
	return errors.Wrap(cw.Error(), "flush csv")
}

// UpdateOrderStatus — закрыть или отменить заказ и оповестить подписчиков.
// Событие не входит в транзакцию: сбой публикации только логируется.
type UpdateOrderStatus struct {
	Repo   domain.OrderRepository
	Events domain.EventPublisher
	Now    func() time.Time
	Log    *zap.SugaredLogger
}

func (uc UpdateOrderStatus) Execute(ctx context.Context, id string, to domain.OrderStatus, changedBy string) (domain.OrderRecord, error) {
	if !to.Valid() {
		return domain.OrderRecord{}, domain.Invalid("unknown order status %q", to)
	}
	o, err := uc.Repo.Get(ctx, id)
	if err != nil {
		return domain.OrderRecord{}, err
	}
	if !o.Status.CanTransition(to) {
		return domain.OrderRecord{}, domain.Invalid("order %s: cannot change status from %s to %s", id, o.Status, to)
	}
	if err := uc.Repo.UpdateStatus(ctx, id, o.Status, to); err != nil {
		return domain.OrderRecord{}, errors.Wrapf(err, "update status of order %s", id)
	}

	event := domain.OrderStatusChanged{
		OrderID:   id,
		OldStatus: o.Status,
		NewStatus: to,
		ChangedBy: changedBy,
		ChangedAt: now(uc.Now),
	}
	if err := uc.Events.Publish(ctx, domain.EventOrderStatusChanged, event); err != nil && uc.Log != nil {
		uc.Log.Warnw("publish status change", "order_id", id, "status", to, "error", err)
	}
	o.Status = to
	return o, nil
}

func now(f func() time.Time) time.Time {
	if f != nil {
		return f()
	}
	return time.Now()
}
