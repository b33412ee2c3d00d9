package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/example/restorun-backoffice/internal/adapter/blob"
	"github.com/example/restorun-backoffice/internal/adapter/events"
	"github.com/example/restorun-backoffice/internal/adapter/httpapi"
	"github.com/example/restorun-backoffice/internal/adapter/memory"
	"github.com/example/restorun-backoffice/internal/adapter/natsstan"
	"github.com/example/restorun-backoffice/internal/adapter/ordersource"
	"github.com/example/restorun-backoffice/internal/adapter/repo"
	"github.com/example/restorun-backoffice/internal/adapter/session"
	"github.com/example/restorun-backoffice/internal/config"
	"github.com/example/restorun-backoffice/internal/domain"
	"github.com/example/restorun-backoffice/internal/logger"
	"github.com/example/restorun-backoffice/internal/usecase"
)

func main() {
	configPath := flag.String("config", "", "path to config file (default ./config.yaml)")
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
	lg.Infow("starting backoffice", "config", cfg.String())

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, cfg, lg); err != nil {
		lg.Fatalw("backoffice stopped", "error", err)
	}
}

func run(ctx context.Context, cfg *config.Config, lg *zap.SugaredLogger) error {
	pool, err := repo.Connect(ctx, cfg.DatabaseURL, lg)
	if err != nil {
		return err
	}
	defer pool.Close()
	if err := repo.EnsureSchema(ctx, pool); err != nil {
		return err
	}

	rdb := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
	defer rdb.Close()
	if err := rdb.Ping(ctx).Err(); err != nil {
		lg.Warnw("redis not reachable, logins will fail until it is", "addr", cfg.Redis.Addr, "error", err)
	}

	var bus domain.EventPublisher = events.Discard{Log: lg}
	if cfg.Rabbit.URL != "" {
		pub, err := events.Dial(cfg.Rabbit.URL, cfg.Rabbit.Exchange, lg)
		if err != nil {
			return err
		}
		defer pub.Close()
		bus = pub
	}

	blobs, err := blob.NewDiskStore(cfg.Uploads.Dir)
	if err != nil {
		return err
	}

	fallback, err := cfg.Analytics.Location()
	if err != nil {
		return err
	}

	uc := buildUseCases(cfg, pool, rdb, bus, blobs, fallback, lg)

	created, err := uc.ensureAdmin.Execute(ctx, cfg.Auth.AdminUsername, cfg.Auth.AdminPassword)
	if err != nil {
		return err
	}
	if created {
		lg.Infow("bootstrap admin created", "username", cfg.Auth.AdminUsername)
	}

	sub := &natsstan.Subscriber{
		ClusterID: cfg.Stan.ClusterID,
		ClientID:  cfg.Stan.ClientID,
		URL:       cfg.Stan.URL,
		Subject:   cfg.Stan.Subject,
		Durable:   cfg.Stan.Durable,
		Queue:     cfg.Stan.Queue,
		Log:       lg,
	}
	if err := sub.Subscribe(ctx, uc.ingest.Execute); err != nil {
		// аналитика и CRUD работают и без кассы
		lg.Errorw("stan subscribe failed, order ingestion disabled", "error", err)
	}

	srv := &http.Server{
		Addr:              cfg.HTTP.Address,
		Handler:           httpapi.NewServer(uc.http, cfg.HTTP.StaticDir, lg).Router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		lg.Infow("http listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		return err
	}
	lg.Infow("shutting down")
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	return srv.Shutdown(shutdownCtx)
}

type wiring struct {
	http        httpapi.UseCases
	ingest      usecase.ProcessIncomingOrder
	ensureAdmin usecase.EnsureAdmin
}

func buildUseCases(cfg *config.Config, pool *pgxpool.Pool, rdb *redis.Client, bus domain.EventPublisher,
	blobs domain.BlobStore, fallback *time.Location, lg *zap.SugaredLogger) wiring {
	orders := repo.NewPostgresOrderRepo(pool)
	settings := repo.NewPostgresSettingsRepo(pool)
	uploads := repo.NewPostgresUploadRepo(pool)
	users := repo.NewPostgresUserRepo(pool)
	sessions := session.NewRedisStore(rdb)

	var (
		dishes  domain.DishRepository  = repo.NewPostgresDishRepo(pool)
		waiters domain.WaiterRepository = repo.NewPostgresWaiterRepo(pool)
	)
	if cfg.CatalogStore == "memory" {
		dishes, waiters = memory.NewDishRepo(), memory.NewWaiterRepo()
	}

	getSettings := usecase.GetSettings{Repo: settings}
	loc := usecase.LocationResolver{Settings: getSettings, Fallback: fallback}
	listOrders := usecase.ListOrders{Repo: orders}
	register := usecase.Register{Users: users}

	return wiring{
		ingest:      usecase.ProcessIncomingOrder{Repo: orders},
		ensureAdmin: usecase.EnsureAdmin{Register: register},
		http: httpapi.UseCases{
			Login:        usecase.Login{Users: users, Sessions: sessions, SessionTTL: cfg.Auth.SessionTTL},
			Logout:       usecase.Logout{Sessions: sessions},
			Authenticate: usecase.Authenticate{Sessions: sessions},
			Register:     register,

			Analytics: usecase.GetAnalytics{
				Source:   ordersource.New(orders),
				Location: loc,
				TopLimit: cfg.Analytics.TopLimit,
			},

			ListOrders:   listOrders,
			GetOrder:     usecase.GetOrder{Repo: orders},
			ExportOrders: usecase.ExportOrdersCSV{List: listOrders, Location: loc},
			UpdateStatus: usecase.UpdateOrderStatus{Repo: orders, Events: bus, Log: lg},

			ListDishes:     usecase.ListDishes{Repo: dishes},
			DishCategories: usecase.ListDishCategories{Repo: dishes},
			CreateDish:     usecase.CreateDish{Repo: dishes},
			UpdateDish:     usecase.UpdateDish{Repo: dishes},
			ToggleDish:     usecase.ToggleDishAvailability{Repo: dishes},
			DeleteDish:     usecase.DeleteDish{Repo: dishes},

			ListWaiters:  usecase.ListWaiters{Repo: waiters},
			CreateWaiter: usecase.CreateWaiter{Repo: waiters},
			UpdateWaiter: usecase.UpdateWaiter{Repo: waiters},
			DeleteWaiter: usecase.DeleteWaiter{Repo: waiters},

			GetSettings:    getSettings,
			UpdateSettings: usecase.UpdateSettings{Repo: settings},

			ListUploads:  usecase.ListUploads{Repo: uploads},
			UploadFile:   usecase.UploadFile{Repo: uploads, Blobs: blobs, Events: bus, MaxBytes: cfg.Uploads.MaxBytes, Log: lg},
			DeleteUpload: usecase.DeleteUpload{Repo: uploads, Blobs: blobs, Events: bus, Log: lg},
		},
	}
}
