package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"brigade/internal/api"
	"brigade/internal/config"
	"brigade/internal/dashboard"
	"brigade/internal/derive"
	"brigade/internal/metrics"
	"brigade/internal/monitoring"
	"brigade/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	port        = flag.Int("port", 0, "API server port (overrides config)")
	metricsPort = flag.Int("metrics-port", 0, "Metrics server port (overrides config)")
	configFile  = flag.String("config", "", "Path to configuration file")
)

func main() {
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment as-is")
	}

	// Load configuration
	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}
	if *metricsPort != 0 {
		cfg.Server.MetricsPort = *metricsPort
	}

	// Initialize persistence backend
	backend, err := openBackend(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize storage backend: %v", err)
	}

	// Initialize store and derivation pipeline
	st := store.New(backend, cfg.Alerts, cfg.Budget.Weekly)

	// Initialize monitoring, metrics, and the dashboard hub
	monitor := monitoring.NewMonitor()
	collector := metrics.NewCollector()
	hub := dashboard.NewHub()

	st.Subscribe(func(result derive.Result, elapsed time.Duration) {
		monitor.RecordRecompute(result, elapsed)
		collector.RecordDerive(result, elapsed)
		hub.Broadcast(result)
	})

	// Initialize API server
	kitchenAPI := api.NewKitchenAPI(st, hub, monitor, cfg.Auth.Enabled, cfg.Auth.JWTSecret)

	// Start metrics server
	go startMetricsServer(cfg.Server.MetricsPort, collector)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: kitchenAPI.Router,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down servers...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("API server shutdown error: %v", err)
		}
	}()

	log.Printf("Starting API server on port %d", cfg.Server.Port)
	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("API server error: %v", err)
	}
}

func openBackend(cfg *config.Config) (store.Backend, error) {
	switch cfg.Storage.Backend {
	case "file", "":
		return store.NewFileBackend(cfg.Storage.Path)
	case "sqlite3":
		return store.OpenDatabase("sqlite3", cfg.Storage.Path)
	case "postgres":
		return store.OpenDatabase("postgres", cfg.Storage.DSN)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}

func startMetricsServer(port int, collector *metrics.Collector) {
	metricsRouter := gin.Default()
	handler := promhttp.HandlerFor(collector.Registry(), promhttp.HandlerOpts{})
	metricsRouter.GET("/metrics", gin.WrapH(handler))

	metricsServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: metricsRouter,
	}

	log.Printf("Starting metrics server on port %d", port)
	if err := metricsServer.ListenAndServe(); err != http.ErrServerClosed {
		log.Printf("Metrics server error: %v", err)
	}
}
