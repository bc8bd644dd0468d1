package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/SergeyBogomolovv/printshop-order-service/internal/config"
	appmw "github.com/SergeyBogomolovv/printshop-order-service/internal/middleware"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"golang.org/x/sync/errgroup"
)

const APIPrefix = "/api/v1"

type HTTPHandler interface {
	Init(r chi.Router)
}

type Consumer interface {
	Consume(ctx context.Context)
	Close() error
}

// Starter is run once before the server accepts requests.
type Starter interface {
	Start(ctx context.Context) error
}

type application struct {
	logger *slog.Logger

	router          chi.Router
	api             chi.Router
	httpSrv         *http.Server
	shutdownTimeout time.Duration

	consumers []Consumer
	starters  []Starter
	wg        sync.WaitGroup
}

// New builds the router. apiMiddlewares run only for routes under APIPrefix.
func New(logger *slog.Logger, cfg config.Config, apiMiddlewares ...func(http.Handler) http.Handler) *application {
	logger = logger.With(slog.String("component", "app"))

	router := chi.NewRouter()
	router.Use(chimw.RequestID)
	router.Use(chimw.RealIP)
	router.Use(appmw.Logger(logger))
	router.Use(chimw.Recoverer)
	router.Use(appmw.Metrics)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Cors.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	router.Handle("/metrics", promhttp.Handler())
	router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	api := chi.NewRouter()
	api.Use(apiMiddlewares...)
	router.Mount(APIPrefix, api)

	httpSrv := &http.Server{
		Handler:           router,
		Addr:              net.JoinHostPort(cfg.Http.Host, cfg.Http.Port),
		ReadHeaderTimeout: cfg.Http.ReadHeaderTimeout,
	}

	return &application{
		logger:          logger,
		router:          router,
		api:             api,
		httpSrv:         httpSrv,
		shutdownTimeout: cfg.Http.ShutdownTimeout,
	}
}

func (a *application) SetHTTPHandlers(handlers ...HTTPHandler) {
	for _, h := range handlers {
		h.Init(a.api)
	}
}

func (a *application) SetConsumers(consumers ...Consumer) {
	a.consumers = append(a.consumers, consumers...)
}

func (a *application) SetStarters(starters ...Starter) {
	a.starters = append(a.starters, starters...)
}

// Handler exposes the router, mainly for tests.
func (a *application) Handler() http.Handler {
	return a.router
}

// Start runs the starters, launches the consumers and begins serving. It
// returns once the listener is bound.
func (a *application) Start(ctx context.Context) error {
	// Starters may keep background work tied to ctx, so they get the parent
	// context rather than the group's.
	var g errgroup.Group
	for _, s := range a.starters {
		g.Go(func() error { return s.Start(ctx) })
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("failed to run starters: %w", err)
	}

	for _, c := range a.consumers {
		a.wg.Add(1)
		go func() {
			defer a.wg.Done()
			c.Consume(ctx)
		}()
	}

	ln, err := net.Listen("tcp", a.httpSrv.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", a.httpSrv.Addr, err)
	}

	go func() {
		a.logger.Info("starting http server", slog.String("addr", ln.Addr().String()))
		if err := a.httpSrv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Error("http server stopped", slog.Any("error", err))
		}
	}()

	a.logger.Info("application started")
	return nil
}

func (a *application) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
	defer cancel()

	var errs []error
	if err := a.httpSrv.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("failed to shutdown http server: %w", err))
	}

	for _, c := range a.consumers {
		if err := c.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close consumer: %w", err))
		}
	}
	a.wg.Wait()

	a.logger.Info("application stopped")
	return errors.Join(errs...)
}
