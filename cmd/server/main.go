package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"goldshop/internal/catalog"
	"goldshop/internal/config"
	"goldshop/internal/goldprice"
	"goldshop/internal/httpx"
	"goldshop/internal/shop"
)

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := newLogger(cfg.Server.DevLog)
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	if cfg.GoldPrice.Endpoint == "" && cfg.GoldPrice.MockPrice == "" {
		zap.L().Warn("GOLD_PRICE_API_URL not set and no mock price configured; /products will fail")
	}

	timeout := time.Duration(cfg.Server.RequestTimeoutSec) * time.Second
	gold := goldprice.New(goldprice.Config{
		URL:       cfg.GoldPrice.Endpoint,
		APIKey:    cfg.GoldPrice.APIKey,
		APIHeader: cfg.GoldPrice.APIHeader,
		MockPrice: cfg.GoldPrice.MockPrice,
	}, httpx.New(timeout), goldprice.NewSpotCache(time.Duration(cfg.GoldPrice.CacheTTLSeconds)*time.Second, nil))

	svc := shop.New(catalog.NewFileSource(cfg.Catalog.Path), gold)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           newRouter(svc, timeout),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		zap.L().Info("server listening", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zap.L().Fatal("server", zap.Error(err))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	zap.L().Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}

func newLogger(dev bool) *zap.Logger {
	if dev {
		return zap.Must(zap.NewDevelopment())
	}
	return zap.Must(zap.NewProduction())
}

func newRouter(svc *shop.Service, timeout time.Duration) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	// Leave headroom over the upstream timeout so the gold fetch error, not
	// the request deadline, is what surfaces.
	r.Use(middleware.Timeout(timeout + 5*time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	}))

	r.Get("/health", handleHealth)
	r.Get("/products", handleListProducts(svc))
	r.Handle("/metrics", promhttp.Handler())
	return r
}
