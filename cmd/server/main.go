// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in the internal packages.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/OpenDiscoveryBiz/dk-provider/internal/company/handler"
	"github.com/OpenDiscoveryBiz/dk-provider/internal/company/resolver"
	"github.com/OpenDiscoveryBiz/dk-provider/internal/company/service"
	"github.com/OpenDiscoveryBiz/dk-provider/internal/company/store/cache"
	"github.com/OpenDiscoveryBiz/dk-provider/internal/erst"
	"github.com/OpenDiscoveryBiz/dk-provider/internal/platform/config"
	"github.com/OpenDiscoveryBiz/dk-provider/internal/platform/httpserver"
	"github.com/OpenDiscoveryBiz/dk-provider/internal/platform/logger"
	platformredis "github.com/OpenDiscoveryBiz/dk-provider/internal/platform/redis"
)

func main() {
	cfg := config.FromEnv()
	log := logger.New()

	redisClient, err := platformredis.New(cfg.RedisURL)
	if err != nil {
		log.Error("connect redis", "error", err)
		os.Exit(1)
	}

	var store cache.Store
	if redisClient != nil {
		store = cache.NewRedisStore(redisClient.Client, cache.DefaultTTL)
		defer redisClient.Close()
	} else {
		store = cache.NewInMemoryStore(cache.DefaultTTL)
	}

	searchClient := erst.NewClient(erst.ClientConfig{
		URL:      cfg.UpstreamURL,
		Username: cfg.UpstreamUser,
		Password: cfg.UpstreamPass,
		Timeout:  cfg.UpstreamTimeout,
	})

	res := resolver.New(store, searchClient, resolver.WithLogger(log))

	svc, err := service.New(res,
		service.WithLogger(log),
		service.WithRecordTTL(cfg.RecordTTL),
	)
	if err != nil {
		log.Error("build service", "error", err)
		os.Exit(1)
	}

	router := chi.NewRouter()
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if redisClient != nil {
			if err := redisClient.Health(r.Context()); err != nil {
				http.Error(w, "redis unavailable", http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
	})
	router.Handle("/metrics", promhttp.Handler())

	handler.New(svc, log).RegisterRoutes(router)

	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting dk-provider", "addr", cfg.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
}
