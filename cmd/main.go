package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/SergeyBogomolovv/printshop-order-service/docs"
	"github.com/SergeyBogomolovv/printshop-order-service/internal/app"
	"github.com/SergeyBogomolovv/printshop-order-service/internal/broker"
	"github.com/SergeyBogomolovv/printshop-order-service/internal/config"
	"github.com/SergeyBogomolovv/printshop-order-service/internal/entities"
	"github.com/SergeyBogomolovv/printshop-order-service/internal/handler"
	"github.com/SergeyBogomolovv/printshop-order-service/internal/middleware"
	"github.com/SergeyBogomolovv/printshop-order-service/internal/postgres"
	"github.com/SergeyBogomolovv/printshop-order-service/internal/processor"
	"github.com/SergeyBogomolovv/printshop-order-service/internal/repo"
	"github.com/SergeyBogomolovv/printshop-order-service/internal/service"
	"github.com/SergeyBogomolovv/printshop-order-service/pkg/cache"
	"github.com/SergeyBogomolovv/printshop-order-service/pkg/trm"

	"github.com/joho/godotenv"
)

// @title                       Print Shop Order Service API
// @version                     1.0
// @description                 Orders, payment intents and payment reconciliation for the print shop.
// @BasePath                    /api/v1
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	db, err := postgres.New(ctx, conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	orderRepo := repo.NewOrderRepo(db)
	catalogRepo := repo.NewCatalogRepo(db)
	userRepo := repo.NewUserRepo(db)
	txManager := trm.NewManager(db)
	orderCache := cache.NewLRU[int64, entities.Order](conf.Cache.Capacity, conf.Cache.TTL)
	stripe := processor.NewStripe(conf.Stripe)

	publisher := newPublisher(logger, conf.Kafka)
	defer publisher.Close()

	orderService := service.NewOrderService(logger, conf.Orders, txManager, orderRepo, catalogRepo, orderCache, publisher)
	paymentService := service.NewPaymentService(logger, txManager, orderRepo, stripe, orderCache, publisher)
	catalogService := service.NewCatalogService(catalogRepo)

	handler.RegisterMetrics()

	var apiMiddlewares []func(http.Handler) http.Handler
	if conf.Auth.Secret != "" {
		tokens, err := middleware.NewTokenValidator(conf.Auth)
		panicIfErr("failed to build token validator", err)
		apiMiddlewares = append(apiMiddlewares, middleware.Authenticate(logger, tokens, userRepo))
	} else {
		logger.Warn("JWT_SECRET is empty, every request is anonymous")
	}

	app := app.New(logger, conf, apiMiddlewares...)

	app.SetHTTPHandlers(
		handler.NewOrderHandler(logger, orderService),
		handler.NewPaymentHandler(logger, paymentService, stripe, processor.SignatureHeader),
		handler.NewCatalogHandler(logger, catalogService),
		handler.NewHealthHandler(logger, db),
	)
	if conf.Kafka.Enabled {
		app.SetConsumers(handler.NewKafkaHandler(logger, conf.Kafka, stripe, paymentService, processor.SignatureHeader))
	}
	app.SetStarters(orderCache, cacheWarmUpAdapter{svc: orderService, count: conf.Cache.Capacity})

	panicIfErr("failed to start app", app.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", app.Stop())
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

type orderPublisher interface {
	service.EventPublisher
	Close() error
}

func newPublisher(logger *slog.Logger, cfg config.Kafka) orderPublisher {
	if !cfg.Enabled {
		return broker.Noop{}
	}
	return broker.NewOrderPublisher(logger, cfg)
}

type warmUpper interface {
	WarmUpCache(ctx context.Context, count int) error
}

type cacheWarmUpAdapter struct {
	svc   warmUpper
	count int
}

func (a cacheWarmUpAdapter) Start(ctx context.Context) error {
	return a.svc.WarmUpCache(ctx, a.count)
}
