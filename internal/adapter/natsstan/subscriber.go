package natsstan

import (
	"context"
	"fmt"
	"time"

	stan "github.com/nats-io/stan.go"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/example/restorun-backoffice/internal/domain"
)

const (
	handlerTimeout = 5 * time.Second
	ackWait        = 10 * time.Second
)

// Subscriber — подписчик на заказы кассы в NATS Streaming.
type Subscriber struct {
	ClusterID string
	ClientID  string
	URL       string
	Subject   string
	Durable   string
	Queue     string
	Log       *zap.SugaredLogger
}

func (s *Subscriber) Subscribe(ctx context.Context, handler func(ctx context.Context, raw []byte) error) error {
	clientID := s.ClientID
	if clientID == "" {
		clientID = fmt.Sprintf("backoffice-%d", time.Now().UnixNano())
	}
	sc, err := stan.Connect(s.ClusterID, clientID, stan.NatsURL(s.URL),
		stan.SetConnectionLostHandler(func(_ stan.Conn, reason error) {
			s.Log.Errorw("stan connection lost", "error", reason)
		}),
	)
	if err != nil {
		return err
	}
	go func() {
		<-ctx.Done()
		sc.Close()
	}()
	_, err = sc.QueueSubscribe(s.Subject, s.Queue, func(m *stan.Msg) {
		hCtx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
		defer cancel()
		err := handler(hCtx, m.Data)
		if !shouldAck(err) {
			// не подтверждаем, даём сообщению переотправиться
			s.Log.Warnw("order message failed", "seq", m.Sequence, "redelivered", m.Redelivered, "error", err)
			return
		}
		if err != nil {
			s.Log.Errorw("order message dropped", "seq", m.Sequence, "error", err)
		}
		if err := m.Ack(); err != nil {
			s.Log.Errorw("ack failed", "seq", m.Sequence, "error", err)
		}
	}, stan.DurableName(s.Durable), stan.SetManualAckMode(), stan.AckWait(ackWait), stan.DeliverAllAvailable())
	if err != nil {
		sc.Close()
		return err
	}
	s.Log.Infow("subscribed to orders", "subject", s.Subject, "queue", s.Queue, "durable", s.Durable)
	return nil
}

// shouldAck: успех и битые сообщения подтверждаются, повторная доставка их не исправит;
// остальные ошибки оставляем на переотправку.
func shouldAck(err error) bool {
	return err == nil || errors.Is(err, domain.ErrValidation)
}

var _ domain.MessageSubscriber = (*Subscriber)(nil)
