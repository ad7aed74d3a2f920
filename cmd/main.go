package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mgalvezc/delivery-core/internal/app"
	"github.com/mgalvezc/delivery-core/internal/config"
	"github.com/mgalvezc/delivery-core/internal/handler"
	"github.com/mgalvezc/delivery-core/internal/postgres"
	"github.com/mgalvezc/delivery-core/internal/repo"
	"github.com/mgalvezc/delivery-core/internal/service"
	"github.com/mgalvezc/delivery-core/pkg/cache"
	"github.com/mgalvezc/delivery-core/pkg/trm"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// @title           Delivery Core API
// @version         1.0
// @description     Документация HTTP API ядра маркетплейса доставки
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	repository := repo.NewPostgresRepo(db)
	txManager := trm.NewManager(db)
	orderCache := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL)

	taxRate := decimal.NewFromFloat(conf.Tax.Rate)
	orderService := service.NewOrderService(logger, txManager, repository, repository, orderCache,
		func() decimal.Decimal { return taxRate })
	storeService := service.NewStoreService(logger, repository)

	kafkaHandler := handler.NewKafkaHandler(logger, conf.Kafka, orderService)
	httpHandler := handler.NewHTTPHandler(logger, orderService, storeService)

	handler.RegisterMetrics()

	app := app.New(logger, conf)

	app.SetHttpHandlers(httpHandler)
	app.SetConsumers(kafkaHandler)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	orderCache.StartJanitor(ctx)
	if err := orderService.WarmUpCache(ctx, conf.Cache.Capacity); err != nil {
		logger.Warn("cache warm up failed", slog.Any("error", err))
	}

	app.Start(ctx)
	<-ctx.Done()
	app.Stop()
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}
