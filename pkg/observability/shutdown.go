package observability

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultShutdownTimeout bounds the time given to shutdown functions
const DefaultShutdownTimeout = 10 * time.Second

// ShutdownFunc is a function to call during shutdown
type ShutdownFunc func(context.Context) error

// ShutdownManager runs registered cleanup when a long running command stops
type ShutdownManager struct {
	logger          *logrus.Logger
	shutdownFuncs   []ShutdownFunc
	shutdownTimeout time.Duration
	mu              sync.Mutex
}

// NewShutdownManager creates a new shutdown manager
func NewShutdownManager(logger *logrus.Logger, timeout time.Duration) *ShutdownManager {
	if logger == nil {
		logger = logrus.New()
	}
	if timeout == 0 {
		timeout = DefaultShutdownTimeout
	}
	return &ShutdownManager{
		logger:          logger,
		shutdownFuncs:   make([]ShutdownFunc, 0),
		shutdownTimeout: timeout,
	}
}

// RegisterShutdownFunc registers a function to call during shutdown.
// Functions run in reverse registration order.
func (sm *ShutdownManager) RegisterShutdownFunc(fn ShutdownFunc) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.shutdownFuncs = append(sm.shutdownFuncs, fn)
}

// SignalContext returns a context canceled on SIGINT or SIGTERM
func SignalContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}

// Shutdown runs every registered function within the shutdown timeout
// and joins their errors
func (sm *ShutdownManager) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), sm.shutdownTimeout)
	defer cancel()

	sm.mu.Lock()
	funcs := make([]ShutdownFunc, len(sm.shutdownFuncs))
	copy(funcs, sm.shutdownFuncs)
	sm.mu.Unlock()

	done := make(chan error, 1)
	go func() {
		var errs []error
		for i := len(funcs) - 1; i >= 0; i-- {
			if err := funcs[i](ctx); err != nil {
				sm.logger.WithError(err).Errorf("Shutdown function %d failed", i)
				errs = append(errs, err)
			}
		}
		done <- errors.Join(errs...)
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("shutdown completed with errors: %w", err)
		}
		sm.logger.Debug("Shutdown complete")
		return nil
	case <-ctx.Done():
		sm.logger.Warn("Shutdown timeout reached, forcing shutdown")
		return fmt.Errorf("shutdown timeout reached")
	}
}
