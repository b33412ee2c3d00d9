package domain

import "time"

// OrderStatus — статус заказа.
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusCompleted OrderStatus = "completed"
	StatusCancelled OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// ParseOrderStatus проверяет строковое значение статуса.
func ParseOrderStatus(s string) (OrderStatus, error) {
	st := OrderStatus(s)
	if !st.Valid() {
		return "", validationErrorf("unknown order status %q", s)
	}
	return st, nil
}

// CanTransition разрешает только pending -> completed | cancelled.
func (s OrderStatus) CanTransition(to OrderStatus) bool {
	return s == StatusPending && (to == StatusCompleted || to == StatusCancelled)
}

// OrderLineItem — позиция заказа.
type OrderLineItem struct {
	DishID    string `json:"dish_id"`
	DishName  string `json:"dish_name"`
	Quantity  int    `json:"quantity"`
	UnitPrice Money  `json:"price"`
}

// Subtotal возвращает quantity × unit price.
func (li OrderLineItem) Subtotal() Money {
	return li.UnitPrice.Mul(li.Quantity)
}

// OrderRecord — доменная сущность заказа.
type OrderRecord struct {
	ID          string          `json:"id"`
	CreatedAt   time.Time       `json:"created_at"`
	TableNumber int             `json:"table_number"`
	TotalAmount Money           `json:"total_amount"`
	Status      OrderStatus     `json:"status"`
	WaiterID    string          `json:"waiter_id"`
	WaiterName  string          `json:"waiter_name"`
	Items       []OrderLineItem `json:"items"`
}

// ItemsTotal суммирует подытоги позиций.
func (o OrderRecord) ItemsTotal() Money {
	var total Money
	for _, li := range o.Items {
		total += li.Subtotal()
	}
	return total
}

// Validate проверяет входящий заказ перед сохранением.
func (o OrderRecord) Validate() error {
	if o.ID == "" {
		return validationErrorf("order id is required")
	}
	if !o.Status.Valid() {
		return validationErrorf("order %s: unknown status %q", o.ID, o.Status)
	}
	if o.TableNumber < 1 {
		return validationErrorf("order %s: table_number must be positive", o.ID)
	}
	if o.TotalAmount < 0 {
		return validationErrorf("order %s: total_amount must not be negative", o.ID)
	}
	for i, li := range o.Items {
		if li.Quantity <= 0 {
			return validationErrorf("order %s: items[%d].quantity must be positive", o.ID, i)
		}
		if li.UnitPrice < 0 {
			return validationErrorf("order %s: items[%d].price must not be negative", o.ID, i)
		}
	}
	return nil
}

// OrderFilter — параметры списка заказов.
type OrderFilter struct {
	Search string
	Status string
}
