package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/multierr"

	"github.com/tahir-sigmadevelopers/multanimango/api/routes"
	authsvc "github.com/tahir-sigmadevelopers/multanimango/internal/auth"
	"github.com/tahir-sigmadevelopers/multanimango/internal/cart"
	"github.com/tahir-sigmadevelopers/multanimango/internal/catalog"
	checkoutsvc "github.com/tahir-sigmadevelopers/multanimango/internal/checkout"
	"github.com/tahir-sigmadevelopers/multanimango/internal/contacts"
	"github.com/tahir-sigmadevelopers/multanimango/internal/dashboard"
	"github.com/tahir-sigmadevelopers/multanimango/internal/orders"
	"github.com/tahir-sigmadevelopers/multanimango/internal/products"
	"github.com/tahir-sigmadevelopers/multanimango/pkg/auth/session"
	"github.com/tahir-sigmadevelopers/multanimango/pkg/config"
	"github.com/tahir-sigmadevelopers/multanimango/pkg/logger"
	"github.com/tahir-sigmadevelopers/multanimango/pkg/mangoapi"
	"github.com/tahir-sigmadevelopers/multanimango/pkg/metrics"
	"github.com/tahir-sigmadevelopers/multanimango/pkg/redis"
)

const cartSweepInterval = 10 * time.Minute

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	shippingFee, err := cfg.Cart.ShippingFeeAmount()
	if err != nil {
		logg.Error(context.Background(), "invalid shipping fee", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	httpMetrics := metrics.NewHTTPMetrics(registry)
	upstreamMetrics := metrics.NewUpstreamMetrics(registry)

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	apiClient, err := mangoapi.NewClient(cfg.Upstream, logg, upstreamMetrics)
	if err != nil {
		logg.Error(context.Background(), "failed to build upstream client", err)
		os.Exit(1)
	}

	sessionManager, err := session.NewManager(redisClient, cfg.JWT)
	if err != nil {
		logg.Error(context.Background(), "failed to create session manager", err)
		os.Exit(1)
	}

	sweepCtx, stopSweeper := context.WithCancel(context.Background())
	defer stopSweeper()

	cartRegistry := cart.NewRegistry(cfg.Cart.MaxQuantity, cfg.Cart.SessionTTL, logg)
	cartRegistry.StartSweeper(sweepCtx, cartSweepInterval)

	deps := routes.Deps{
		Config:       cfg,
		Logger:       logg,
		Redis:        redisClient,
		UpstreamPing: apiClient,
		HTTPMetrics:  httpMetrics,
		PromGatherer: registry,

		Sessions:     sessionManager,
		CartRegistry: cartRegistry,
		ShippingFee:  shippingFee,

		Catalog:   catalog.NewService(apiClient, logg),
		Checkout:  checkoutsvc.NewService(apiClient, shippingFee, logg),
		Contacts:  contacts.NewService(apiClient, logg),
		Orders:    orders.NewService(apiClient, logg),
		Products:  products.NewService(apiClient, logg),
		Auth:      authsvc.NewService(apiClient, sessionManager, cfg.JWT, logg),
		Dashboard: dashboard.NewService(apiClient, logg),
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port

	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:              addr,
		Handler:           routes.NewRouter(deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if closeErr := redisClient.Close(); closeErr != nil {
			logg.Error(ctx, "error closing redis", closeErr)
		}
		if err != nil && err != http.ErrServerClosed {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case sig := <-stop:
		logg.Info(logg.WithField(ctx, "signal", sig.String()), "shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		stopSweeper()

		var closeErr error
		closeErr = multierr.Append(closeErr, server.Shutdown(shutdownCtx))
		closeErr = multierr.Append(closeErr, redisClient.Close())
		if closeErr != nil {
			logg.Error(ctx, "shutdown finished with errors", closeErr)
			os.Exit(1)
		}
		logg.Info(ctx, "shutdown complete")
	}
}
