package events

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/restorun-backoffice/internal/domain"
	"github.com/example/restorun-backoffice/internal/logger"
)

func TestDiscardNeverFails(t *testing.T) {
	d := Discard{Log: logger.Nop()}
	assert.NoError(t, d.Publish(context.Background(), domain.EventUploadCreated, map[string]string{"id": "1"}))
	assert.NoError(t, Discard{}.Publish(context.Background(), domain.EventUploadDeleted, nil))
}

func TestRabbitPublisherRoundTrip(t *testing.T) {
	url := os.Getenv("TEST_RABBITMQ_URL")
	if url == "" {
		t.Skip("TEST_RABBITMQ_URL not set")
	}
	const exchange = "backoffice_events_test"

	p, err := Dial(url, exchange, logger.Nop())
	require.NoError(t, err)
	defer p.Close()

	conn, err := amqp.Dial(url)
	require.NoError(t, err)
	defer conn.Close()
	ch, err := conn.Channel()
	require.NoError(t, err)
	q, err := ch.QueueDeclare("", false, true, true, false, nil)
	require.NoError(t, err)
	require.NoError(t, ch.QueueBind(q.Name, "order.*", exchange, false, nil))
	msgs, err := ch.Consume(q.Name, "", true, true, false, false, nil)
	require.NoError(t, err)

	event := domain.OrderStatusChanged{
		OrderID:   "o-1",
		OldStatus: domain.StatusPending,
		NewStatus: domain.StatusCompleted,
		ChangedBy: "anna",
		ChangedAt: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, p.Publish(context.Background(), domain.EventOrderStatusChanged, event))

	select {
	case m := <-msgs:
		assert.Equal(t, domain.EventOrderStatusChanged, m.RoutingKey)
		var got domain.OrderStatusChanged
		require.NoError(t, json.Unmarshal(m.Body, &got))
		assert.Equal(t, event, got)
	case <-time.After(5 * time.Second):
		t.Fatal("event not delivered")
	}
}
