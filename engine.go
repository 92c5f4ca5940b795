package minigu

import "fmt"

// Engine is the native graph engine surface consumed by this layer.
//
// Implementations wrap an externally compiled engine instance behind an
// opaque handle. The binding layer treats the engine as a given collaborator:
// query planning, storage, and concurrency control happen on the other side
// of this interface and are out of scope here. Errors returned by an Engine
// may be raw free text; the layer classifies them before propagation.
type Engine interface {
	// Init configures the freshly allocated instance. It is called exactly
	// once, immediately after allocation, with the connection config.
	Init(cfg Config) error

	// Execute runs one GQL statement (or several, "; "-joined) and returns
	// the engine's result set.
	Execute(query string) (*Result, error)

	// LoadData bulk-loads records through the engine's native loader.
	LoadData(records []Record) error

	// LoadFromFile loads data from a file or directory path.
	LoadFromFile(path string) error

	// SaveToFile exports the database to a file or directory path. The
	// on-disk format, including any manifest written alongside a directory
	// export, is the engine's responsibility.
	SaveToFile(path string) error

	// CreateGraph creates a named graph, optionally with a schema DDL
	// string (see GraphSchema.Format).
	CreateGraph(name, schema string) error

	// Close releases the native instance. It is called at most once.
	Close() error
}

// EngineFactory allocates a new native engine instance.
//
// A factory is invoked once per successful connect; the instance it returns
// is exclusively owned by one Handle until closed. Factories must fail with
// an error when the native engine cannot be obtained; there is no fallback
// or simulated mode anywhere in this layer.
type EngineFactory func() (Engine, error)

var engines = make(map[string]EngineFactory)

// RegisterEngine registers an engine factory by name. Engine bindings call
// this from their package init, in the manner of database/sql drivers.
func RegisterEngine(name string, factory EngineFactory) {
	engines[name] = factory
}

// LookupEngine returns the factory registered under name. It fails closed
// with ErrUnknownEngine when no binding is linked in.
func LookupEngine(name string) (EngineFactory, error) {
	factory, ok := engines[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEngine, name)
	}

	return factory, nil
}

// RegisteredEngines returns the names of all registered engine bindings.
func RegisteredEngines() []string {
	names := make([]string, 0, len(engines))
	for name := range engines {
		names = append(names, name)
	}

	return names
}
