package minigu

import (
	"context"

	"go.uber.org/zap"
)

// Convention decides how a native engine call is awaited.
//
// The binding layer itself creates no threads beyond what the convention
// needs: Blocking runs the call synchronously on the caller's goroutine,
// Suspending dispatches it and parks the caller until the engine returns.
// There is no cancellation primitive: once a call is issued to the engine
// it runs to completion, and timeouts surface only afterwards, as engine
// error messages classified as KindTimeout.
type Convention interface {
	Call(ctx context.Context, op func() error) error
}

// Blocking executes the native call directly and returns its result.
type Blocking struct{}

// Call implements Convention.
func (Blocking) Call(_ context.Context, op func() error) error {
	return op()
}

// Suspending dispatches the native call on its own goroutine and suspends
// the caller at that single boundary, resuming with the result or failure.
//
// The context is checked only before dispatch: a call is never issued on a
// context that is already done, and a call that has been issued is never
// abandoned, preserving the one-call-in-flight ownership of the handle.
// Context errors are returned as-is (they are caller-side conditions, not
// engine failures).
type Suspending struct{}

// Call implements Convention.
func (Suspending) Call(ctx context.Context, op func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	done := make(chan error, 1)

	go func() {
		done <- op()
	}()

	return <-done
}

// Facade is the caller-facing adapter over one connection handle,
// parameterized by call convention. There is exactly one implementation of
// the translation logic; the two public clients differ only in how the
// native call is awaited.
//
// Like the handle it owns, a facade is intended for one call in flight at a
// time; concurrent use from multiple callers must be serialized externally.
type Facade[C Convention] struct {
	conv   C
	handle *Handle
	logger *zap.Logger
}

// Client awaits native calls by blocking the caller.
type Client = Facade[Blocking]

// AsyncClient awaits native calls by cooperative suspension.
type AsyncClient = Facade[Suspending]

// Option configures a client at construction.
type Option func(*clientOptions)

type clientOptions struct {
	logger *zap.Logger
}

// WithLogger sets the logger used by the handle and facade. Without it,
// logging defaults to a no-op unless cfg.EnableLogging is set.
func WithLogger(logger *zap.Logger) Option {
	return func(o *clientOptions) {
		o.logger = logger
	}
}

// Connect creates a blocking client over the given engine factory.
//
// The native instance is allocated lazily, on the first operation that
// needs it; Connect itself only validates the configuration. Construction
// fails closed when the config is invalid; there is no degraded mode.
func Connect(factory EngineFactory, cfg Config, opts ...Option) (*Client, error) {
	return newFacade[Blocking](factory, cfg, opts...)
}

// AsyncConnect creates a suspending client over the given engine factory.
// Lazy allocation and fail-closed construction match Connect.
func AsyncConnect(factory EngineFactory, cfg Config, opts ...Option) (*AsyncClient, error) {
	return newFacade[Suspending](factory, cfg, opts...)
}

func newFacade[C Convention](factory EngineFactory, cfg Config, opts ...Option) (*Facade[C], error) {
	if err := cfg.Validate(); err != nil {
		return nil, newError(KindConnection, "invalid configuration", err)
	}

	var options clientOptions
	for _, opt := range opts {
		opt(&options)
	}

	logger := options.logger
	if logger == nil && cfg.EnableLogging {
		logger, _ = zap.NewProduction()
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	var conv C

	return &Facade[C]{
		conv:   conv,
		handle: NewHandle(factory, cfg, logger),
		logger: logger,
	}, nil
}

// call routes one engine operation through the convention, ensuring the
// handle is connected first. Errors crossing this boundary are always one
// of the typed kinds; a raw engine failure never reaches the caller.
func (f *Facade[C]) call(ctx context.Context, op func(Engine) error) error {
	return f.conv.Call(ctx, func() error {
		if err := f.handle.EnsureConnected(); err != nil {
			return err
		}

		return op(f.handle.engine)
	})
}

// Execute runs a GQL query and returns its result.
func (f *Facade[C]) Execute(ctx context.Context, query string) (*Result, error) {
	f.logger.Debug("executing query", zap.String("query", query))

	var result *Result

	err := f.call(ctx, func(engine Engine) error {
		res, err := engine.Execute(query)
		if err != nil {
			return classifyError("query execution failed", err)
		}

		result = res

		return nil
	})
	if err != nil {
		return nil, err
	}

	if result == nil {
		result = &Result{}
	}

	return result, nil
}

// Insert converts records into GQL INSERT statements and executes them.
// Failures are reported as KindData. Empty input is a no-op.
func (f *Facade[C]) Insert(ctx context.Context, records []Record) error {
	if len(records) == 0 {
		return nil
	}

	statement := BuildInsert(records)

	f.logger.Debug("inserting records", zap.Int("count", len(records)))

	return f.call(ctx, func(engine Engine) error {
		_, err := engine.Execute(statement)
		if err != nil {
			return newError(KindData, "data insertion failed", err)
		}

		return nil
	})
}

// Load bulk-loads records through the engine's native loader.
func (f *Facade[C]) Load(ctx context.Context, records []Record) error {
	f.logger.Debug("loading records", zap.Int("count", len(records)))

	return f.call(ctx, func(engine Engine) error {
		err := engine.LoadData(records)
		if err != nil {
			return newError(KindData, "data loading failed", err)
		}

		return nil
	})
}

// LoadFile loads data from a file or directory path. The path is sanitized
// before it reaches the engine.
func (f *Facade[C]) LoadFile(ctx context.Context, path string) error {
	clean := SanitizePath(path)

	f.logger.Debug("loading from file", zap.String("path", clean))

	return f.call(ctx, func(engine Engine) error {
		err := engine.LoadFromFile(clean)
		if err != nil {
			return newError(KindData, "data loading failed", err)
		}

		return nil
	})
}

// Save exports the database to a file or directory path. The path is
// sanitized before it reaches the engine; the on-disk format is the
// engine's responsibility.
func (f *Facade[C]) Save(ctx context.Context, path string) error {
	clean := SanitizePath(path)

	f.logger.Debug("saving database", zap.String("path", clean))

	return f.call(ctx, func(engine Engine) error {
		err := engine.SaveToFile(clean)
		if err != nil {
			return newError(KindData, "database save failed", err)
		}

		return nil
	})
}

// CreateGraph creates a named graph, optionally with a schema. The name is
// sanitized to identifier characters; a name that is empty after
// sanitization fails with KindGraph before any engine call.
func (f *Facade[C]) CreateGraph(ctx context.Context, name string, schema *GraphSchema) error {
	clean := SanitizeIdentifier(name)
	if clean == "" {
		return newError(KindGraph, "invalid graph name "+quoteString(name), ErrEmptyIdentifier)
	}

	f.logger.Debug("creating graph", zap.String("name", clean))

	return f.call(ctx, func(engine Engine) error {
		err := engine.CreateGraph(clean, schema.Format())
		if err != nil {
			return newError(KindGraph, "graph creation failed", err)
		}

		return nil
	})
}

// CallProcedure executes an administrative "CALL <name>('<arg>')"
// statement. Both the procedure name and the argument are sanitized; a
// procedure name that is empty after sanitization fails with KindGraph.
func (f *Facade[C]) CallProcedure(ctx context.Context, name, arg string) (*Result, error) {
	clean := SanitizeIdentifier(name)
	if clean == "" {
		return nil, newError(KindGraph, "invalid procedure name "+quoteString(name), ErrEmptyIdentifier)
	}

	return f.Execute(ctx, BuildProcedureCall(clean, arg))
}

// Update executes a GQL UPDATE statement.
func (f *Facade[C]) Update(ctx context.Context, query string) error {
	_, err := f.Execute(ctx, query)

	return err
}

// Delete executes a GQL DELETE statement.
func (f *Facade[C]) Delete(ctx context.Context, query string) error {
	_, err := f.Execute(ctx, query)

	return err
}

// BeginTransaction always fails with KindTransaction: the upstream engine
// does not support transactions yet, and this layer reflects that honestly
// rather than simulating success.
func (f *Facade[C]) BeginTransaction(context.Context) error {
	return transactionsUnsupported()
}

// Commit always fails with KindTransaction; see BeginTransaction.
func (f *Facade[C]) Commit(context.Context) error {
	return transactionsUnsupported()
}

// Rollback always fails with KindTransaction; see BeginTransaction.
func (f *Facade[C]) Rollback(context.Context) error {
	return transactionsUnsupported()
}

func transactionsUnsupported() error {
	return newError(KindTransaction, "transactions are not yet implemented by the engine", nil)
}

// Status reports the connection state without touching the engine.
func (f *Facade[C]) Status() Status {
	return f.handle.Status()
}

// Close releases the connection. It is idempotent; a closed client fails
// all subsequent operations with KindConnection.
func (f *Facade[C]) Close() error {
	return f.handle.Close()
}
