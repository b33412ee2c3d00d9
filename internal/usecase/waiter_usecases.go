package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/example/restorun-backoffice/internal/domain"
)

type ListWaiters struct {
	Repo domain.WaiterRepository
}

func (uc ListWaiters) Execute(ctx context.Context, search string) ([]domain.Waiter, error) {
	all, err := uc.Repo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list waiters")
	}
	out := make([]domain.Waiter, 0, len(all))
	for _, w := range all {
		if domain.ContainsFold(w.Name, search) {
			out = append(out, w)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// WaiterInput — поля официанта; hired_at в формате YYYY-MM-DD.
type WaiterInput struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	HiredAt string `json:"hired_at"`
}

func (in WaiterInput) hiredAt() (time.Time, error) {
	if in.HiredAt == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse("2006-01-02", in.HiredAt)
	if err != nil {
		return time.Time{}, domain.Invalid("hired_at must be YYYY-MM-DD, got %q", in.HiredAt)
	}
	return t, nil
}

type CreateWaiter struct {
	Repo domain.WaiterRepository
	Now  func() time.Time
}

func (uc CreateWaiter) Execute(ctx context.Context, in WaiterInput) (domain.Waiter, error) {
	hired, err := in.hiredAt()
	if err != nil {
		return domain.Waiter{}, err
	}
	ts := now(uc.Now).UTC()
	w := domain.Waiter{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(in.Name),
		Phone:     strings.TrimSpace(in.Phone),
		HiredAt:   hired,
		CreatedAt: ts,
	}
	if err := w.Validate(ts); err != nil {
		return domain.Waiter{}, err
	}
	if err := uc.Repo.Create(ctx, w); err != nil {
		return domain.Waiter{}, errors.Wrap(err, "create waiter")
	}
	return w, nil
}

type UpdateWaiter struct {
	Repo domain.WaiterRepository
	Now  func() time.Time
}

func (uc UpdateWaiter) Execute(ctx context.Context, id string, in WaiterInput) (domain.Waiter, error) {
	hired, err := in.hiredAt()
	if err != nil {
		return domain.Waiter{}, err
	}
	w, err := uc.Repo.Get(ctx, id)
	if err != nil {
		return domain.Waiter{}, err
	}
	w.Name = strings.TrimSpace(in.Name)
	w.Phone = strings.TrimSpace(in.Phone)
	w.HiredAt = hired
	if err := w.Validate(now(uc.Now).UTC()); err != nil {
		return domain.Waiter{}, err
	}
	if err := uc.Repo.Update(ctx, w); err != nil {
		return domain.Waiter{}, errors.Wrapf(err, "update waiter %s", id)
	}
	return w, nil
}

type DeleteWaiter struct {
	Repo domain.WaiterRepository
}

func (uc DeleteWaiter) Execute(ctx context.Context, id string) error {
	return uc.Repo.Delete(ctx, id)
}
