package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/iliyamo/cinema-seat-suggest/internal/config"
	"github.com/iliyamo/cinema-seat-suggest/internal/database"
	"github.com/iliyamo/cinema-seat-suggest/internal/handler"
	"github.com/iliyamo/cinema-seat-suggest/internal/logging"
	"github.com/iliyamo/cinema-seat-suggest/internal/queue"
	"github.com/iliyamo/cinema-seat-suggest/internal/repository"
	"github.com/iliyamo/cinema-seat-suggest/internal/router"
	"github.com/iliyamo/cinema-seat-suggest/internal/service"
)

func main() {
	_ = godotenv.Load() // .env is optional

	cfg := config.Load()
	logger, err := logging.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	seats := &handler.SeatHandler{
		Seating:    config.LoadSeatingConfig(),
		PriceCents: cfg.SeatPriceCents,
		Events:     service.NoopPublisher{},
		Timeout:    cfg.RequestTimeout,
		Logger:     logger,
	}
	checks := map[string]handler.Check{}

	var db *sql.DB
	if cfg.DatabaseEnabled() {
		db, err = database.Open(cfg)
		if err != nil {
			logger.Fatal("open database", zap.Error(err))
		}
		defer db.Close()
		seats.Layouts = repository.NewLayoutStore(db)
		checks["mysql"] = db.PingContext
	} else {
		logger.Info("DB_HOST not set, show-backed routes disabled")
	}

	var rdb *redis.Client
	if redisCfg := config.LoadRedisConfig(); redisCfg.Addr != "" {
		rdb, err = config.NewRedisClient(redisCfg)
		if err != nil {
			// Cache and rate limiting are optional; serve without them.
			logger.Warn("redis unavailable", zap.String("addr", redisCfg.Addr), zap.Error(err))
			rdb = nil
		} else {
			defer rdb.Close()
			checks["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
		}
	}

	if cfg.EventsEnabled {
		seats.Events = service.NewPublisher(cfg.RabbitURL, logger)
		go func() {
			err := queue.StartSuggestionConsumer(ctx, cfg.RabbitURL, cfg.SuggestionLogDir, logger)
			if err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("suggestion consumer stopped", zap.Error(err))
			}
		}()
	}

	e := router.New(router.Deps{
		Seats:     seats,
		Redis:     rdb,
		Cache:     config.LoadCacheConfig(),
		RateLimit: config.LoadRateLimitConfig(),
		Checks:    checks,
		Logger:    logger,
	})

	addr := ":" + cfg.Port
	go func() {
		logger.Info("listening", zap.String("addr", addr), zap.String("env", cfg.Env))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("forced shutdown", zap.Error(err))
	}
}
