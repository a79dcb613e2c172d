package utils

import (
	"context"
	"sync"
	"time"
)

// GracefulShutdown runs registered shutdown functions in reverse order of
// registration, bounded by a timeout.
type GracefulShutdown struct {
	mu         sync.Mutex
	shutdownFn []func() error
	timeout    time.Duration
	logger     *Logger
}

// NewGracefulShutdown creates a shutdown manager.
func NewGracefulShutdown(timeout time.Duration, logger *Logger) *GracefulShutdown {
	if logger == nil {
		logger = DefaultLogger("shutdown")
	}
	return &GracefulShutdown{
		timeout: timeout,
		logger:  logger,
	}
}

// Register adds a shutdown function. Functions run LIFO.
func (g *GracefulShutdown) Register(fn func() error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.shutdownFn = append(g.shutdownFn, fn)
}

// Shutdown executes all registered shutdown functions.
func (g *GracefulShutdown) Shutdown(ctx context.Context) error {
	g.mu.Lock()
	fns := make([]func() error, len(g.shutdownFn))
	copy(fns, g.shutdownFn)
	g.mu.Unlock()

	g.logger.Info("starting graceful shutdown", Int("components", len(fns)))

	shutdownCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		var firstErr error
		for i := len(fns) - 1; i >= 0; i-- {
			if err := fns[i](); err != nil {
				g.logger.Error("shutdown function failed", Int("index", i), Err(err))
				if firstErr == nil {
					firstErr = err
				}
			}
		}
		done <- firstErr
	}()

	select {
	case err := <-done:
		if err == nil {
			g.logger.Info("graceful shutdown complete")
		}
		return err
	case <-shutdownCtx.Done():
		g.logger.Warn("graceful shutdown timed out")
		return NewError("shutdown timeout")
	}
}
