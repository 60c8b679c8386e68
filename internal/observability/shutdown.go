package observability

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
)

// ShutdownCoordinator runs registered cleanup handlers in reverse order of
// registration. Each handler runs at most once.
type ShutdownCoordinator struct {
	mu       sync.Mutex
	handlers []namedHandler
	logger   *slog.Logger
}

type namedHandler struct {
	name string
	fn   func(context.Context) error
}

// Register adds a shutdown handler.
func (s *ShutdownCoordinator) Register(name string, fn func(context.Context) error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handlers = append(s.handlers, namedHandler{name: name, fn: fn})
}

// Shutdown runs and forgets every registered handler, newest first. All
// handlers run even when some fail; their errors are joined.
func (s *ShutdownCoordinator) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	handlers := s.handlers
	s.handlers = nil
	logger := s.logger
	s.mu.Unlock()
	if logger == nil {
		logger = slog.Default()
	}

	var errs []error
	for i := len(handlers) - 1; i >= 0; i-- {
		h := handlers[i]
		logger.Debug("shutting down", "component", h.name)
		if err := h.fn(ctx); err != nil {
			logger.Error("shutdown error", "component", h.name, "error", err)
			errs = append(errs, fmt.Errorf("%s: %w", h.name, err))
		}
	}
	return errors.Join(errs...)
}
