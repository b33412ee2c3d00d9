package domain

import (
	"context"
	"io"
	"time"
)

// OrderSource — порт выборки выполненных заказов для аналитики.
type OrderSource interface {
	FetchCompletedOrders(ctx context.Context, since time.Time) ([]OrderRecord, error)
}

// OrderRepository — порт для операций персистентности заказов.
type OrderRepository interface {
	OrderSource
	Upsert(ctx context.Context, o OrderRecord) error
	Get(ctx context.Context, id string) (OrderRecord, error)
	List(ctx context.Context) ([]OrderRecord, error)
	// UpdateStatus меняет статус, только если текущий равен from:
	// иначе ErrValidation, для отсутствующего заказа ErrNotFound.
	UpdateStatus(ctx context.Context, id string, from, to OrderStatus) error
}

// DishRepository — каталог блюд.
type DishRepository interface {
	List(ctx context.Context) ([]Dish, error)
	Get(ctx context.Context, id string) (Dish, error)
	Create(ctx context.Context, d Dish) error
	Update(ctx context.Context, d Dish) error
	Delete(ctx context.Context, id string) error
}

// WaiterRepository — список официантов.
type WaiterRepository interface {
	List(ctx context.Context) ([]Waiter, error)
	Get(ctx context.Context, id string) (Waiter, error)
	Create(ctx context.Context, w Waiter) error
	Update(ctx context.Context, w Waiter) error
	Delete(ctx context.Context, id string) error
}

// SettingsRepository возвращает ErrNotFound, пока настройки не сохранены.
type SettingsRepository interface {
	Load(ctx context.Context) (Settings, error)
	Save(ctx context.Context, s Settings) error
}

type UploadRepository interface {
	List(ctx context.Context) ([]Upload, error)
	Get(ctx context.Context, id string) (Upload, error)
	Create(ctx context.Context, u Upload) error
	Delete(ctx context.Context, id string) error
}

type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (User, error)
	Create(ctx context.Context, u User) error
}

// SessionStore — хранилище токенов сессий.
type SessionStore interface {
	Save(ctx context.Context, s Session, ttl time.Duration) error
	Get(ctx context.Context, token string) (Session, error)
	Delete(ctx context.Context, token string) error
}

// BlobStore — файловое хранилище загрузок.
type BlobStore interface {
	Put(ctx context.Context, name string, r io.Reader, limit int64) (string, error)
	Delete(ctx context.Context, path string) error
}

// EventPublisher — порт публикации доменных событий.
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, payload any) error
}

// MessageSubscriber — порт подписчика на входящие сообщения заказов.
type MessageSubscriber interface {
	// Subscribe регистрирует обработчик; ack/повторные доставки реализует адаптер.
	Subscribe(ctx context.Context, handler func(ctx context.Context, raw []byte) error) error
}

// Ключи маршрутизации событий.
const (
	EventOrderStatusChanged = "order.status_changed"
	EventUploadCreated      = "upload.created"
	EventUploadDeleted      = "upload.deleted"
)

// OrderStatusChanged — тело события смены статуса.
type OrderStatusChanged struct {
	OrderID   string      `json:"order_id"`
	OldStatus OrderStatus `json:"old_status"`
	NewStatus OrderStatus `json:"new_status"`
	ChangedBy string      `json:"changed_by"`
	ChangedAt time.Time   `json:"changed_at"`
}
