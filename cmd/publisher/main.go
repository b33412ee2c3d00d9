package main

import (
	"encoding/json"
	"flag"
	"io"
	"log"
	"os"

	stan "github.com/nats-io/stan.go"

	"github.com/example/restorun-backoffice/internal/config"
	"github.com/example/restorun-backoffice/internal/domain"
	"github.com/example/restorun-backoffice/internal/logger"
)

// Читает заказ в JSON из stdin и публикует его в канал заказов кассы.
func main() {
	configPath := flag.String("config", "", "path to config file (default ./config.yaml)")
	clientID := flag.String("client-id", "backoffice-publisher", "STAN client id")
	flag.Parse()

	cfg, err := config.InitConfig(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	lg, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer lg.Sync()

	raw, err := io.ReadAll(os.Stdin)
	if err != nil {
		lg.Fatalw("read order from stdin", "error", err)
	}
	var order domain.OrderRecord
	if err := json.Unmarshal(raw, &order); err != nil {
		lg.Fatalw("decode order", "error", err)
	}
	if err := order.Validate(); err != nil {
		lg.Fatalw("order rejected", "error", err)
	}
	b, err := json.Marshal(order)
	if err != nil {
		lg.Fatalw("marshal", "error", err)
	}

	sc, err := stan.Connect(cfg.Stan.ClusterID, *clientID, stan.NatsURL(cfg.Stan.URL))
	if err != nil {
		lg.Fatalw("stan connect", "url", cfg.Stan.URL, "error", err)
	}
	defer sc.Close()

	if err := sc.Publish(cfg.Stan.Subject, b); err != nil {
		lg.Fatalw("publish", "error", err)
	}
	lg.Infow("order published", "order_id", order.ID, "bytes", len(b), "subject", cfg.Stan.Subject)
}
