package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/seoscope/audit-console/pkg/httpclient"
	"github.com/seoscope/audit-console/pkg/logger"
	"github.com/seoscope/audit-console/pkg/metrics"
	"github.com/seoscope/audit-console/pkg/submission"
	"github.com/seoscope/audit-console/services/console/config"
	"github.com/seoscope/audit-console/services/console/handlers"
	"github.com/seoscope/audit-console/services/console/middleware"
)

const serviceName = "audit-console"

func main() {
	cfg := config.Load()

	log := logger.New(serviceName, cfg.LogLevel)

	metricsCollector := metrics.NewPrometheusCollector(serviceName)
	prometheus.MustRegister(metricsCollector.GetCollectors()...)

	// Wiring: transport -> analysis client -> submission controller
	httpClient := httpclient.New(cfg.RequestTimeout, log)
	analysisClient := handlers.NewAnalysisClient(cfg.AnalysisURL, httpClient, log)
	controller := submission.NewController(analysisClient, log)

	submissionHandler := handlers.NewSubmissionHandler(controller, log, metricsCollector)
	healthHandler := handlers.NewHealthHandler(serviceName, analysisClient)

	viewHandler, err := handlers.NewViewHandler(controller, log, "web/templates")
	if err != nil {
		log.Error("Failed to load templates", "error", err)
		os.Exit(1)
	}

	router := mux.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.Logging(log))
	router.Use(middleware.Metrics(metricsCollector))
	router.Use(middleware.Recovery(log))
	router.Use(middleware.CORS())

	api := router.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/submissions", submissionHandler.Submit).Methods("POST", "OPTIONS")

	router.HandleFunc("/", viewHandler.HomePage).Methods("GET")
	router.HandleFunc("/results/full", submissionHandler.FullResults).Methods("GET")

	router.HandleFunc("/health", healthHandler.Health).Methods("GET")
	router.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.RequestTimeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("Starting audit console", "port", cfg.Port, "analysis_url", cfg.AnalysisURL)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", "error", err)
	}

	log.Info("Server exited")
}
