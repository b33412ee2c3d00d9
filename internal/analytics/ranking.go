package analytics

import (
	"sort"

	"github.com/example/restorun-backoffice/internal/domain"
)

type dishRanking struct {
	byKey map[string]*domain.DishSummary
}

func newDishRanking() *dishRanking {
	return &dishRanking{byKey: make(map[string]*domain.DishSummary)}
}

func (r *dishRanking) add(li domain.OrderLineItem) {
	if li.Quantity <= 0 {
		return
	}
	key := groupKey(li.DishID, li.DishName)
	s, ok := r.byKey[key]
	if !ok {
		s = &domain.DishSummary{DishID: li.DishID, Name: li.DishName}
		r.byKey[key] = s
	}
	if s.Name == "" {
		s.Name = li.DishName
	}
	s.Quantity += li.Quantity
	s.Revenue += li.Subtotal()
}

func (r *dishRanking) top(limit int) []domain.DishSummary {
	out := make([]domain.DishSummary, 0, len(r.byKey))
	for _, s := range r.byKey {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Revenue != b.Revenue {
			return a.Revenue > b.Revenue
		}
		if a.Quantity != b.Quantity {
			return a.Quantity > b.Quantity
		}
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.DishID < b.DishID
	})
	return truncate(out, limit)
}

type waiterRanking struct {
	byKey map[string]*domain.WaiterSummary
}

func newWaiterRanking() *waiterRanking {
	return &waiterRanking{byKey: make(map[string]*domain.WaiterSummary)}
}

func (r *waiterRanking) add(o domain.OrderRecord) {
	key := groupKey(o.WaiterID, o.WaiterName)
	s, ok := r.byKey[key]
	if !ok {
		s = &domain.WaiterSummary{WaiterID: o.WaiterID, Name: o.WaiterName}
		r.byKey[key] = s
	}
	if s.Name == "" {
		s.Name = o.WaiterName
	}
	s.OrderCount++
	s.Revenue += o.TotalAmount
}

func (r *waiterRanking) top(limit int) []domain.WaiterSummary {
	out := make([]domain.WaiterSummary, 0, len(r.byKey))
	for _, s := range r.byKey {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Revenue != b.Revenue {
			return a.Revenue > b.Revenue
		}
		if a.OrderCount != b.OrderCount {
			return a.OrderCount > b.OrderCount
		}
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.WaiterID < b.WaiterID
	})
	return truncate(out, limit)
}

// groupKey: идентификатор, а при его отсутствии имя.
func groupKey(id, name string) string {
	if id != "" {
		return "id:" + id
	}
	return "name:" + name
}

func truncate[T any](s []T, limit int) []T {
	if len(s) > limit {
		return s[:limit]
	}
	return s
}
