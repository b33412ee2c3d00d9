package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/restorun-backoffice/internal/domain"
)

func TestDishRepo_CRUD(t *testing.T) {
	ctx := context.Background()
	r := NewDishRepo()

	d := domain.Dish{ID: "d1", Name: "Борщ", Category: "Супы", Price: 30000, IsAvailable: true}
	require.NoError(t, r.Create(ctx, d))
	assert.True(t, errors.Is(r.Create(ctx, d), domain.ErrConflict))

	got, err := r.Get(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, d, got)

	d.Price = 35000
	require.NoError(t, r.Update(ctx, d))
	got, _ = r.Get(ctx, "d1")
	assert.Equal(t, domain.Money(35000), got.Price)

	assert.True(t, errors.Is(r.Update(ctx, domain.Dish{ID: "nope"}), domain.ErrNotFound))

	require.NoError(t, r.Delete(ctx, "d1"))
	_, err = r.Get(ctx, "d1")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	assert.True(t, errors.Is(r.Delete(ctx, "d1"), domain.ErrNotFound))
}

func TestOrderRepo_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	o := domain.OrderRecord{ID: "o1", Status: domain.StatusCompleted, Items: []domain.OrderLineItem{{DishID: "d1", Quantity: 1}}}
	r := NewOrderRepo(o)

	got, err := r.Get(ctx, "o1")
	require.NoError(t, err)
	got.Items[0].Quantity = 99

	again, _ := r.Get(ctx, "o1")
	assert.Equal(t, 1, again.Items[0].Quantity)
}

func TestOrderRepo_FetchCompleted(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	r := NewOrderRepo(
		domain.OrderRecord{ID: "old", CreatedAt: base.AddDate(0, 0, -10), Status: domain.StatusCompleted},
		domain.OrderRecord{ID: "new", CreatedAt: base, Status: domain.StatusCompleted},
		domain.OrderRecord{ID: "pending", CreatedAt: base, Status: domain.StatusPending},
	)

	got, err := r.FetchCompletedOrders(ctx, base.AddDate(0, 0, -1))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "new", got[0].ID)

	require.NoError(t, r.UpdateStatus(ctx, "pending", domain.StatusPending, domain.StatusCompleted))
	assert.ErrorIs(t, r.UpdateStatus(ctx, "pending", domain.StatusPending, domain.StatusCancelled), domain.ErrValidation)
	assert.ErrorIs(t, r.UpdateStatus(ctx, "missing", domain.StatusPending, domain.StatusCancelled), domain.ErrNotFound)
	got, _ = r.FetchCompletedOrders(ctx, base.AddDate(0, 0, -1))
	assert.Len(t, got, 2)
}

func TestSessionStore_Expiry(t *testing.T) {
	ctx := context.Background()
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	st := NewSessionStore()
	st.now = func() time.Time { return clock }

	require.NoError(t, st.Save(ctx, domain.Session{Token: "t1", UserID: "u1", Role: domain.RoleAdmin}, time.Hour))
	s, err := st.Get(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, "u1", s.UserID)

	clock = clock.Add(2 * time.Hour)
	_, err = st.Get(ctx, "t1")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	assert.NoError(t, st.Delete(ctx, "t1"))
}

func TestSettingsRepo(t *testing.T) {
	ctx := context.Background()
	r := NewSettingsRepo()
	_, err := r.Load(ctx)
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	require.NoError(t, r.Save(ctx, domain.DefaultSettings()))
	s, err := r.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), s)
}

func TestWaiterRepo_Concurrent(t *testing.T) {
	ctx := context.Background()
	r := NewWaiterRepo()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("w%d", i)
			_ = r.Create(ctx, domain.Waiter{ID: id, Name: id})
			_, _ = r.List(ctx)
		}(i)
	}
	wg.Wait()
	all, err := r.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 50)
}
