package events

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/example/restorun-backoffice/internal/domain"
)

const (
	exchangeType    = "topic"
	connectAttempts = 5
)

// RabbitPublisher публикует доменные события в topic-exchange.
type RabbitPublisher struct {
	conn     *amqp.Connection
	exchange string

	mu sync.Mutex
	ch *amqp.Channel
}

// Dial подключается к брокеру с повторами и объявляет exchange.
func Dial(url, exchange string, log *zap.SugaredLogger) (*RabbitPublisher, error) {
	var (
		conn *amqp.Connection
		err  error
	)
	for i := 0; i < connectAttempts; i++ {
		conn, err = amqp.Dial(url)
		if err == nil {
			break
		}
		log.Warnw("rabbitmq not ready, retrying", "attempt", i+1, "error", err)
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		return nil, errors.Wrap(err, "connect to rabbitmq")
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, errors.Wrap(err, "open channel")
	}
	if err := ch.ExchangeDeclare(exchange, exchangeType, true, false, false, false, nil); err != nil {
		conn.Close()
		return nil, errors.Wrapf(err, "declare exchange %s", exchange)
	}
	return &RabbitPublisher{conn: conn, ch: ch, exchange: exchange}, nil
}

func (p *RabbitPublisher) Publish(ctx context.Context, routingKey string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrapf(err, "encode %s event", routingKey)
	}
	// amqp.Channel не рассчитан на параллельную публикацию
	p.mu.Lock()
	defer p.mu.Unlock()
	err = p.ch.PublishWithContext(ctx, p.exchange, routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
		Body:         body,
	})
	return errors.Wrapf(err, "publish %s", routingKey)
}

func (p *RabbitPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.ch.Close(); err != nil && !errors.Is(err, amqp.ErrClosed) {
		return err
	}
	return p.conn.Close()
}

// Discard используется, когда брокер не настроен: события только логируются.
type Discard struct {
	Log *zap.SugaredLogger
}

func (d Discard) Publish(ctx context.Context, routingKey string, payload any) error {
	if d.Log != nil {
		d.Log.Debugw("event dropped, broker not configured", "routing_key", routingKey)
	}
	return nil
}

var (
	_ domain.EventPublisher = (*RabbitPublisher)(nil)
	_ domain.EventPublisher = Discard{}
)
