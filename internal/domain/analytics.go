package domain

import "time"

// DishSummary — продажи блюда за окно.
type DishSummary struct {
	DishID   string `json:"dish_id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Revenue  Money  `json:"revenue"`
}

// WaiterSummary — результаты официанта за окно.
type WaiterSummary struct {
	WaiterID   string `json:"waiter_id"`
	Name       string `json:"name"`
	OrderCount int    `json:"order_count"`
	Revenue    Money  `json:"revenue"`
}

// DailyRevenuePoint — выручка за календарный день.
type DailyRevenuePoint struct {
	Date    string `json:"date"`
	Revenue Money  `json:"revenue"`
}

// AnalyticsSummary — сводка для дашборда.
type AnalyticsSummary struct {
	WindowStart  time.Time           `json:"window_start"`
	WindowDays   int                 `json:"window_days"`
	TotalRevenue Money               `json:"total_revenue"`
	AverageCheck Money               `json:"average_check"`
	OrderCount   int                 `json:"order_count"`
	DailyRevenue []DailyRevenuePoint `json:"daily_revenue"`
	TopDishes    []DishSummary       `json:"top_dishes"`
	TopWaiters   []WaiterSummary     `json:"top_waiters"`
}
