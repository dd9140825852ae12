package main

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/FACorreiaa/loci-travelkit/internal/app/observability/metrics"
	"github.com/FACorreiaa/loci-travelkit/internal/pkg/cache"
	"github.com/FACorreiaa/loci-travelkit/internal/pkg/config"
	"github.com/FACorreiaa/loci-travelkit/internal/server"
	"github.com/FACorreiaa/loci-travelkit/pkg/logger"
)

var version = "dev"

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file, using environment variables")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Initialize logger
	if err := logger.Init(cfg.Observability.LogLevel, zap.String("service", cfg.Observability.ServiceName)); err != nil {
		return err
	}
	defer logger.Log.Sync()

	// Initialize observability
	otelShutdown, err := server.InitObservability(cfg.Observability, version, logger.Log)
	if err != nil {
		return err
	}
	defer func() {
		if err := otelShutdown(context.Background()); err != nil {
			logger.Log.Error("Failed to shutdown OpenTelemetry", zap.Error(err))
		}
	}()

	// Create server
	srv, err := server.New(context.Background(), cfg, logger.Log)
	if err != nil {
		return err
	}
	defer srv.Close()

	caches := cache.NewCacheManager(cfg.Cache.PackingTTL, logger.Log)

	// Setup router
	router := server.SetupRouter(server.RouterOptions{
		ServiceName: cfg.Observability.ServiceName,
		DBPool:      srv.GetDBPool(),
		Caches:      caches,
		Metrics:     metrics.Get(),
	}, logger.Log)
	srv.SetRouter(router)

	// Start pprof server (on separate port, not exposed publicly)
	pprofServer := server.StartPprofServer(cfg.Observability.PprofAddr, logger.Log)

	httpServer := srv.HTTPServer()

	done := make(chan bool, 1)
	go server.GracefulShutdown(httpServer, logger.Log, done, pprofServer)

	logger.Log.Info("Server starting", zap.String("port", cfg.ServerPort), zap.String("version", version))
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Log.Error("Server error", zap.Error(err))
		return err
	}

	// Wait for graceful shutdown to complete
	<-done
	logger.Log.Info("Graceful shutdown complete")

	return nil
}
