package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/restorun-backoffice/internal/adapter/memory"
	"github.com/example/restorun-backoffice/internal/domain"
	"github.com/example/restorun-backoffice/internal/logger"
)

func seededOrders() *memory.OrderRepo {
	return memory.NewOrderRepo(
		domain.OrderRecord{ID: "o-1", CreatedAt: testNow.Add(-3 * time.Hour), TableNumber: 2, TotalAmount: 120050, Status: domain.StatusCompleted, WaiterName: "Анна"},
		domain.OrderRecord{ID: "o-2", CreatedAt: testNow.Add(-2 * time.Hour), TableNumber: 4, TotalAmount: 30000, Status: domain.StatusPending, WaiterName: "Иван"},
		domain.OrderRecord{ID: "o-3", CreatedAt: testNow.Add(-time.Hour), TableNumber: 7, TotalAmount: 5000, Status: domain.StatusCancelled, WaiterName: "Анна"},
	)
}

func TestProcessIncomingOrder(t *testing.T) {
	repo := memory.NewOrderRepo()
	uc := ProcessIncomingOrder{Repo: repo}
	ctx := context.Background()

	raw := []byte(`{"id":"o-9","created_at":"2024-03-10T10:00:00Z","table_number":3,"total_amount":"450.50",
		"status":"completed","waiter_id":"w1","items":[{"dish_id":"d1","quantity":1,"price":450.5}]}`)
	require.NoError(t, uc.Execute(ctx, raw))

	o, err := repo.Get(ctx, "o-9")
	require.NoError(t, err)
	assert.Equal(t, domain.Money(45050), o.TotalAmount)
	require.Len(t, o.Items, 1)
	assert.Equal(t, domain.Money(45050), o.Items[0].UnitPrice)

	assert.ErrorIs(t, uc.Execute(ctx, []byte(`{not json`)), domain.ErrValidation)
	assert.ErrorIs(t, uc.Execute(ctx, []byte(`{"id":"x","status":"lost","table_number":1}`)), domain.ErrValidation)
	assert.ErrorIs(t, uc.Execute(ctx, []byte(`{"id":"x","status":"pending","table_number":0}`)), domain.ErrValidation)
}

func TestListOrders(t *testing.T) {
	uc := ListOrders{Repo: seededOrders()}
	ctx := context.Background()

	tests := []struct {
		name   string
		filter domain.OrderFilter
		want   []string
	}{
		{"all newest first", domain.OrderFilter{}, []string{"o-3", "o-2", "o-1"}},
		{"status all", domain.OrderFilter{Status: "all"}, []string{"o-3", "o-2", "o-1"}},
		{"by status", domain.OrderFilter{Status: "pending"}, []string{"o-2"}},
		{"by waiter", domain.OrderFilter{Search: "АННА"}, []string{"o-3", "o-1"}},
		{"by id", domain.OrderFilter{Search: "o-2"}, []string{"o-2"}},
		{"no match", domain.OrderFilter{Search: "zzz"}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := uc.Execute(ctx, tt.filter)
			require.NoError(t, err)
			ids := make([]string, 0, len(got))
			for _, o := range got {
				ids = append(ids, o.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}

	_, err := uc.Execute(ctx, domain.OrderFilter{Status: "lost"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestExportOrdersCSV(t *testing.T) {
	uc := ExportOrdersCSV{
		List:     ListOrders{Repo: seededOrders()},
		Location: LocationResolver{Fallback: time.UTC},
	}
	var buf bytes.Buffer
	require.NoError(t, uc.Execute(context.Background(), domain.OrderFilter{Status: "completed"}, &buf))

	want := "ID,Date,Table,Waiter,Amount,Status\n" +
		"o-1,10.03.2024 09:00,2,Анна,1200.50,completed\n"
	assert.Equal(t, want, buf.String())
}

func TestUpdateOrderStatus(t *testing.T) {
	ctx := context.Background()
	repo := seededOrders()
	bus := &recordingBus{}
	uc := UpdateOrderStatus{Repo: repo, Events: bus, Now: fixedClock}

	o, err := uc.Execute(ctx, "o-2", domain.StatusCompleted, "anna")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, o.Status)

	stored, _ := repo.Get(ctx, "o-2")
	assert.Equal(t, domain.StatusCompleted, stored.Status)

	require.Len(t, bus.events, 1)
	assert.Equal(t, domain.EventOrderStatusChanged, bus.events[0].key)
	assert.Equal(t, domain.OrderStatusChanged{
		OrderID: "o-2", OldStatus: domain.StatusPending, NewStatus: domain.StatusCompleted,
		ChangedBy: "anna", ChangedAt: testNow,
	}, bus.events[0].payload)

	_, err = uc.Execute(ctx, "o-2", domain.StatusCancelled, "anna")
	assert.ErrorIs(t, err, domain.ErrValidation, "terminal state")
	_, err = uc.Execute(ctx, "o-1", domain.StatusPending, "anna")
	assert.ErrorIs(t, err, domain.ErrValidation)
	_, err = uc.Execute(ctx, "o-2", "lost", "anna")
	assert.ErrorIs(t, err, domain.ErrValidation)
	_, err = uc.Execute(ctx, "missing", domain.StatusCompleted, "anna")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Len(t, bus.events, 1)
}

// barrierRepo отпускает Get только когда все участники прочитали заказ.
type barrierRepo struct {
	*memory.OrderRepo
	read *sync.WaitGroup
}

func (r barrierRepo) Get(ctx context.Context, id string) (domain.OrderRecord, error) {
	o, err := r.OrderRepo.Get(ctx, id)
	r.read.Done()
	r.read.Wait()
	return o, err
}

func TestUpdateOrderStatus_ConcurrentTransitions(t *testing.T) {
	ctx := context.Background()
	repo := seededOrders()
	var read sync.WaitGroup
	read.Add(2)
	bus := &recordingBus{}
	uc := UpdateOrderStatus{Repo: barrierRepo{OrderRepo: repo, read: &read}, Events: bus, Now: fixedClock}

	targets := []domain.OrderStatus{domain.StatusCompleted, domain.StatusCancelled}
	errs := make([]error, len(targets))
	var done sync.WaitGroup
	for i, to := range targets {
		done.Add(1)
		go func(i int, to domain.OrderStatus) {
			defer done.Done()
			_, errs[i] = uc.Execute(ctx, "o-2", to, "anna")
		}(i, to)
	}
	done.Wait()

	var winner domain.OrderStatus
	failures := 0
	for i, err := range errs {
		if err == nil {
			winner = targets[i]
			continue
		}
		failures++
		assert.ErrorIs(t, err, domain.ErrValidation)
	}
	require.Equal(t, 1, failures, "exactly one transition must win: %v", errs)

	stored, err := repo.Get(ctx, "o-2")
	require.NoError(t, err)
	assert.Equal(t, winner, stored.Status)
	require.Len(t, bus.events, 1)
	assert.Equal(t, winner, bus.events[0].payload.(domain.OrderStatusChanged).NewStatus)
}

func TestUpdateOrderStatus_PublishFailureKeepsChange(t *testing.T) {
	ctx := context.Background()
	repo := seededOrders()
	bus := &recordingBus{err: errBoom}
	uc := UpdateOrderStatus{Repo: repo, Events: bus, Now: fixedClock, Log: logger.Nop()}

	o, err := uc.Execute(ctx, "o-2", domain.StatusCompleted, "anna")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, o.Status)

	stored, err := repo.Get(ctx, "o-2")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, stored.Status)
	assert.Empty(t, bus.events)
}

func TestProcessIncomingOrder_KeepsDecodeCause(t *testing.T) {
	err := ProcessIncomingOrder{Repo: memory.NewOrderRepo()}.Execute(context.Background(), []byte(`{"id":`))
	assert.ErrorIs(t, err, domain.ErrValidation)
	var syntaxErr *json.SyntaxError
	assert.True(t, errors.As(err, &syntaxErr) || errors.Is(err, io.ErrUnexpectedEOF), "cause lost: %v", err)
}
