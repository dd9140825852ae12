package server

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

// GracefulShutdown waits for SIGINT/SIGTERM and shuts the servers down. The first server is
// the main API; the rest are auxiliary listeners such as pprof.
func GracefulShutdown(srv *http.Server, logger *zap.Logger, done chan bool, aux ...*http.Server) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()
	logger.Info("Shutting down gracefully, press Ctrl+C again to force")

	stop() // Allow Ctrl+C to force shutdown

	ShutdownServers(logger, shutdownTimeout, append([]*http.Server{srv}, aux...)...)

	logger.Info("Server exiting")

	done <- true
}

// ShutdownServers gives every server the same deadline to finish in-flight requests.
func ShutdownServers(logger *zap.Logger, timeout time.Duration, servers ...*http.Server) {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	for _, s := range servers {
		if s == nil {
			continue
		}
		if err := s.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server forced to shutdown", zap.String("addr", s.Addr), zap.Error(err))
		}
	}
}
