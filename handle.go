package minigu

import (
	"go.uber.org/zap"
)

// handleState tracks the connection lifecycle.
type handleState int

const (
	stateDisconnected handleState = iota
	stateConnected
	stateClosed
)

// Handle owns the native engine instance and its lifecycle.
//
// A handle is created empty (disconnected) and allocates the instance
// lazily on the first call that needs it. Exactly one instance is acquired
// per successful connect and it is always released by Close. Closed is
// terminal: a new handle must be constructed to reconnect.
//
// A handle is single-owner with one call in flight at a time. It is not
// safe for concurrent use from multiple goroutines; callers serialize
// externally, typically by opening one client per logical session.
type Handle struct {
	factory EngineFactory
	cfg     Config
	logger  *zap.Logger

	state  handleState
	engine Engine
}

// NewHandle creates a disconnected handle. The factory is invoked lazily,
// on the first EnsureConnected.
func NewHandle(factory EngineFactory, cfg Config, logger *zap.Logger) *Handle {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Handle{
		factory: factory,
		cfg:     cfg,
		logger:  logger,
	}
}

// EnsureConnected allocates and configures the native instance if the
// handle is disconnected, and is a no-op if already connected.
//
// On any failure during allocation or configuration the handle stays
// disconnected with no partial state retained, and the failure is reported
// as KindConnection. A failed connect is retryable: the next call attempts
// allocation again rather than short-circuiting with a cached failure.
func (h *Handle) EnsureConnected() error {
	switch h.state {
	case stateConnected:
		return nil
	case stateClosed:
		return newError(KindConnection, "operation on closed handle", ErrClosed)
	case stateDisconnected:
	}

	engine, err := h.factory()
	if err != nil {
		h.logger.Warn("engine allocation failed", zap.Error(err))

		return newError(KindConnection, "failed to connect to database", err)
	}

	err = engine.Init(h.cfg)
	if err != nil {
		// No half-configured instance is retained.
		_ = engine.Close()

		h.logger.Warn("engine configuration failed", zap.Error(err))

		return newError(KindConnection, "failed to connect to database", err)
	}

	h.engine = engine
	h.state = stateConnected

	h.logger.Info("database connected",
		zap.Int("thread_count", h.cfg.ThreadCount),
		zap.Int("cache_size", h.cfg.CacheSize))

	return nil
}

// Close releases the native instance and transitions the handle to its
// terminal state. It is idempotent and safe after a failed connect; release
// failures are never fatal to the caller.
func (h *Handle) Close() error {
	if h.state == stateConnected && h.engine != nil {
		err := h.engine.Close()
		if err != nil {
			h.logger.Warn("engine release failed", zap.Error(err))
		}
	}

	h.engine = nil
	h.state = stateClosed

	return nil
}

// Status is a read-only snapshot of a handle's state.
type Status struct {
	Connected bool
	Closed    bool
	Config    Config
}

// Status reports the current connection state without touching the engine.
func (h *Handle) Status() Status {
	return Status{
		Connected: h.state == stateConnected,
		Closed:    h.state == stateClosed,
		Config:    h.cfg,
	}
}
