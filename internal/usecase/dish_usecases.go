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

// ListDishes — поиск по названию и фильтр категории, по алфавиту.
type ListDishes struct {
	Repo domain.DishRepository
}

func (uc ListDishes) Execute(ctx context.Context, f domain.DishFilter) ([]domain.Dish, error) {
	all, err := uc.Repo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list dishes")
	}
	out := make([]domain.Dish, 0, len(all))
	for _, d := range all {
		if f.Match(d) {
			out = append(out, d)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// ListDishCategories — уникальные категории меню.
type ListDishCategories struct {
	Repo domain.DishRepository
}

func (uc ListDishCategories) Execute(ctx context.Context) ([]string, error) {
	all, err := uc.Repo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list dishes")
	}
	seen := make(map[string]bool)
	out := make([]string, 0)
	for _, d := range all {
		if !seen[d.Category] {
			seen[d.Category] = true
			out = append(out, d.Category)
		}
	}
	sort.Strings(out)
	return out, nil
}

// DishInput — поля блюда от клиента; IsAvailable по умолчанию true.
type DishInput struct {
	Name        string       `json:"name"`
	Category    string       `json:"category"`
	Price       domain.Money `json:"price"`
	IsAvailable *bool        `json:"is_available"`
}

type CreateDish struct {
	Repo domain.DishRepository
	Now  func() time.Time
}

func (uc CreateDish) Execute(ctx context.Context, in DishInput) (domain.Dish, error) {
	ts := now(uc.Now).UTC()
	d := domain.Dish{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(in.Name),
		Category:    strings.TrimSpace(in.Category),
		Price:       in.Price,
		IsAvailable: in.IsAvailable == nil || *in.IsAvailable,
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}
	if err := d.Validate(); err != nil {
		return domain.Dish{}, err
	}
	if err := uc.Repo.Create(ctx, d); err != nil {
		return domain.Dish{}, errors.Wrap(err, "create dish")
	}
	return d, nil
}

type UpdateDish struct {
	Repo domain.DishRepository
	Now  func() time.Time
}

func (uc UpdateDish) Execute(ctx context.Context, id string, in DishInput) (domain.Dish, error) {
	d, err := uc.Repo.Get(ctx, id)
	if err != nil {
		return domain.Dish{}, err
	}
	d.Name = strings.TrimSpace(in.Name)
	d.Category = strings.TrimSpace(in.Category)
	d.Price = in.Price
	if in.IsAvailable != nil {
		d.IsAvailable = *in.IsAvailable
	}
	d.UpdatedAt = now(uc.Now).UTC()
	if err := d.Validate(); err != nil {
		return domain.Dish{}, err
	}
	if err := uc.Repo.Update(ctx, d); err != nil {
		return domain.Dish{}, errors.Wrapf(err, "update dish %s", id)
	}
	return d, nil
}

// ToggleDishAvailability — переключить доступность блюда для заказа.
type ToggleDishAvailability struct {
	Repo domain.DishRepository
	Now  func() time.Time
}

func (uc ToggleDishAvailability) Execute(ctx context.Context, id string) (domain.Dish, error) {
	d, err := uc.Repo.Get(ctx, id)
	if err != nil {
		return domain.Dish{}, err
	}
	d.IsAvailable = !d.IsAvailable
	d.UpdatedAt = now(uc.Now).UTC()
	if err := uc.Repo.Update(ctx, d); err != nil {
		return domain.Dish{}, errors.Wrapf(err, "toggle dish %s", id)
	}
	return d, nil
}

type DeleteDish struct {
	Repo domain.DishRepository
}

func (uc DeleteDish) Execute(ctx context.Context, id string) error {
	return uc.Repo.Delete(ctx, id)
}
