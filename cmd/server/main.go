package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"
	"golang.org/x/sync/errgroup"

	"mirath/internal/audit"
	"mirath/internal/estate/handler"
	"mirath/internal/estate/metrics"
	"mirath/internal/estate/service"
	"mirath/internal/estate/store"
	"mirath/internal/platform/config"
	"mirath/internal/platform/httpserver"
	"mirath/internal/platform/logger"
	"mirath/internal/platform/redis"
	httptransport "mirath/internal/transport/http"
)

// main wires dependencies and owns the process lifecycle. Business logic
// lives in the internal service packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		estateStore store.Store
		health      []httptransport.HealthChecker
	)
	if cfg.PostgresDSN != "" {
		db, err := sql.Open("postgres", cfg.PostgresDSN)
		if err != nil {
			log.Error("open postgres", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		pg := store.NewPostgresStore(db)
		if err := pg.EnsureSchema(ctx); err != nil {
			log.Error("ensure schema", "error", err)
			os.Exit(1)
		}
		estateStore = pg
		health = append(health, pingChecker{db})
		log.Info("using postgres store")
	} else {
		estateStore = store.NewInMemoryStore()
		log.Info("using in-memory store")
	}

	opts := []service.Option{service.WithMetrics(metrics.New())}

	redisClient, err := redis.New(cfg.RedisURL)
	if err != nil {
		log.Error("connect redis", "error", err)
		os.Exit(1)
	}
	if redisClient != nil {
		defer redisClient.Close()
		opts = append(opts, service.WithCache(store.NewRedisResultCache(redisClient.Client)))
		health = append(health, redisClient)
		log.Info("result cache enabled")
	}

	var sink audit.Sink
	if len(cfg.KafkaBrokers) > 0 {
		kafkaSink, err := audit.NewKafkaSink(cfg.KafkaBrokers, cfg.AuditTopic)
		if err != nil {
			log.Error("connect kafka", "error", err)
			os.Exit(1)
		}
		defer kafkaSink.Close()
		sink = kafkaSink
		log.Info("audit trail enabled", "topic", cfg.AuditTopic)
	} else {
		sink = audit.NewMemorySink()
	}

	publisher := audit.NewPublisher(0, log)
	opts = append(opts, service.WithPublisher(publisher))

	svc, err := service.New(estateStore, log, opts...)
	if err != nil {
		log.Error("build service", "error", err)
		os.Exit(1)
	}

	router := httptransport.NewRouter(handler.New(svc, log), log, health...)
	srv := httpserver.New(cfg.Addr, router)

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		worker := audit.NewWorker(sink, publisher.Inbox(), log)
		if err := worker.Run(groupCtx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})

	group.Go(func() error {
		log.Info("starting server", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	group.Go(func() error {
		<-groupCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}

// pingChecker adapts *sql.DB to the router's health interface.
type pingChecker struct {
	db *sql.DB
}

func (p pingChecker) Health(ctx context.Context) error {
	return p.db.PingContext(ctx)
}
