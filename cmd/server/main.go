package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medgate/internal/ehr"
	"medgate/internal/ehr/cerner"
	"medgate/internal/ehr/epic"
	gatewaymetrics "medgate/internal/gateway/metrics"
	gatewayservice "medgate/internal/gateway/service"
	"medgate/internal/platform/config"
	"medgate/internal/platform/database"
	"medgate/internal/platform/health"
	kafkaproducer "medgate/internal/platform/kafka/producer"
	"medgate/internal/platform/logger"
	"medgate/internal/platform/middleware"
	platformredis "medgate/internal/platform/redis"
	"medgate/internal/publish"
	tenantmodels "medgate/internal/tenant/models"
	tenantstore "medgate/internal/tenant/store"
	httptransport "medgate/internal/transport/http"
)

// main wires high-level dependencies and keeps the server lifecycle small.
// Business logic lives in the internal service packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	log.Info("initializing medgate",
		"addr", cfg.Server.Addr,
		"environment", cfg.Server.Environment,
	)

	healthHandler := health.New(cfg.Server.Environment)

	// Tenant store: postgres when configured, in-memory otherwise.
	var tenants tenantstore.Lookup
	pool, err := database.New(cfg.Database)
	if err != nil {
		log.Error("database initialization failed", "error", err)
		os.Exit(1)
	}
	if pool != nil {
		tenants = tenantstore.NewPostgres(pool.DB())
		healthHandler.RegisterCheck("postgres", func() error {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return pool.Health(ctx)
		})
		defer pool.Close()
	} else {
		log.Warn("no database configured, using in-memory tenant store")
		tenants = tenantstore.NewInMemory()
	}

	// Read-through tenant cache when redis is configured.
	redisClient, err := platformredis.New(cfg.Redis)
	if err != nil {
		log.Error("redis initialization failed", "error", err)
		os.Exit(1)
	}
	if redisClient != nil {
		tenants = tenantstore.NewRedisCache(tenants, redisClient.Client, cfg.Redis.CacheTTL, log)
		healthHandler.RegisterCheck("redis", func() error {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return redisClient.Health(ctx)
		})
		defer redisClient.Close()
	}

	// Downstream queue: noop when kafka is not configured, the search index
	// simply goes stale.
	var queueProducer publish.Producer
	if cfg.Kafka.Brokers != "" {
		producer, err := kafkaproducer.New(cfg.Kafka, log)
		if err != nil {
			log.Error("kafka producer initialization failed", "error", err)
			os.Exit(1)
		}
		defer producer.Close()
		healthHandler.RegisterCheck("kafka", func() error {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			if !producer.Healthy(ctx) {
				return errors.New("kafka producer unhealthy")
			}
			return nil
		})
		queueProducer = producer
	} else {
		log.Warn("no kafka brokers configured, downstream publishing disabled")
		queueProducer = kafkaproducer.NewNoopProducer()
	}

	registry := ehr.NewRegistry()
	registry.Register(tenantmodels.VendorEpic, epic.Factory(cfg.Vendors.EpicBaseURL, cfg.Vendors.Timeout))
	registry.Register(tenantmodels.VendorCerner, cerner.Factory(cfg.Vendors.CernerBaseURL, cfg.Vendors.Timeout))

	gateway := gatewayservice.New(
		tenants,
		registry,
		gatewayservice.WithLogger(log),
		gatewayservice.WithMetrics(gatewaymetrics.New()),
		gatewayservice.WithPublisher(publish.New(cfg.Kafka.Topic, queueProducer)),
	)

	handler := httptransport.NewHandler(gateway, log)
	verifier := middleware.NewVerifier(cfg.Server.JWTSigningKey)
	router := httptransport.NewRouter(handler, verifier, healthHandler, log)

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Info("starting http server", "addr", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped")
}
