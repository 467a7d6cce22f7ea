package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"kycgate/internal/audit"
	"kycgate/internal/catalog"
	"kycgate/internal/extraction"
	"kycgate/internal/platform/config"
	"kycgate/internal/platform/httpserver"
	"kycgate/internal/platform/logger"
	"kycgate/internal/platform/middleware"
	"kycgate/internal/policy"
	"kycgate/internal/verification"
	vhandler "kycgate/internal/verification/handler"
	vmetrics "kycgate/internal/verification/metrics"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal services packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	cat := catalog.Default()
	if cfg.CatalogPath != "" {
		loaded, err := catalog.Load(cfg.CatalogPath)
		if err != nil {
			log.Error("catalog load failed", "path", cfg.CatalogPath, "error", err)
			os.Exit(1)
		}
		cat = loaded
	}

	pol := policy.Default()
	if cfg.PolicyPath != "" {
		loaded, err := policy.Load(cfg.PolicyPath)
		if err != nil {
			log.Error("policy load failed", "path", cfg.PolicyPath, "error", err)
			os.Exit(1)
		}
		pol = loaded
	}

	// Audit pipeline: publisher -> inbox -> worker -> compliance store.
	inbox := make(chan audit.Event, 256)
	auditStore := audit.NewInMemoryStore()
	auditWorker := audit.NewWorker(auditStore, inbox)

	// The stub extractor stands in for the vision collaborator; swap in a
	// real adapter behind the same port for production.
	extractor := extraction.NewResilient(
		extraction.NewStub(),
		extraction.DefaultRetryConfig(),
		extraction.NewCircuitBreaker(5, time.Minute),
	)

	m := vmetrics.New()
	service := verification.NewService(cat, extractor, pol, log, m, audit.NewPublisher(inbox))

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Method(http.MethodGet, "/metrics", promhttp.Handler())
	vhandler.New(service, cat, log).Register(router)

	srv := httpserver.New(cfg.Addr, router)

	workerCtx, stopWorker := context.WithCancel(context.Background())
	go func() {
		_ = auditWorker.Run(workerCtx)
	}()

	log.Info("starting kycgate", "addr", cfg.Addr)

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
	}
	stopWorker()
}
