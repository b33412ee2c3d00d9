package domain

import (
	"strings"
	"time"
)

// Dish — блюдо меню.
type Dish struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Price       Money     `json:"price"`
	IsAvailable bool      `json:"is_available"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (d Dish) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return Invalid("name is required")
	}
	if strings.TrimSpace(d.Category) == "" {
		return Invalid("category is required")
	}
	if d.Price <= 0 {
		return Invalid("price must be positive")
	}
	return nil
}

// DishFilter — поиск по названию и фильтр категории ("all" — без фильтра).
type DishFilter struct {
	Search   string
	Category string
}

func (f DishFilter) Match(d Dish) bool {
	if f.Category != "" && f.Category != "all" && d.Category != f.Category {
		return false
	}
	return ContainsFold(d.Name, f.Search)
}

// Waiter — официант.
type Waiter struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	HiredAt   time.Time `json:"hired_at"`
	CreatedAt time.Time `json:"created_at"`
}

func (w Waiter) Validate(now time.Time) error {
	if strings.TrimSpace(w.Name) == "" {
		return Invalid("name is required")
	}
	if strings.TrimSpace(w.Phone) == "" {
		return Invalid("phone is required")
	}
	if w.HiredAt.IsZero() {
		return Invalid("hired_at is required")
	}
	if w.HiredAt.After(now) {
		return Invalid("hired_at must not be in the future")
	}
	return nil
}

// ContainsFold — регистронезависимый поиск подстроки; пустой needle совпадает всегда.
func ContainsFold(s, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(needle))
}
