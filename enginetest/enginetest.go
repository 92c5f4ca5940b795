// Package enginetest provides a scripted in-memory Engine for tests.
//
// It is a test double, not an engine: it records every call it receives and
// replays canned results. It registers nothing and is never selected
// implicitly: production construction still fails closed without a real
// binding.
package enginetest

import (
	minigu "github.com/minigu-db/minigu-go"
)

// Engine implements minigu.Engine by recording calls and replaying scripted
// results. The zero value is usable; every field may be set before use.
type Engine struct {
	// InitErr, ExecuteErr, LoadErr, SaveErr, CreateErr and CloseErr make
	// the corresponding surface fail.
	InitErr    error
	ExecuteErr error
	LoadErr    error
	SaveErr    error
	CreateErr  error
	CloseErr   error

	// Scripted results keyed by exact statement text. Statements without a
	// script return an empty result.
	results map[string]*minigu.Result

	// Recorded calls.
	InitCalls   int
	CloseCalls  int
	Config      minigu.Config
	Queries     []string
	Loaded      [][]minigu.Record
	LoadedFiles []string
	SavedFiles  []string
	Created     []string
}

// New returns an empty scripted engine.
func New() *Engine {
	return &Engine{results: make(map[string]*minigu.Result)}
}

// Script registers a canned result for an exact statement text.
func (e *Engine) Script(query string, result *minigu.Result) {
	if e.results == nil {
		e.results = make(map[string]*minigu.Result)
	}

	e.results[query] = result
}

// Calls returns the total number of surface calls the engine received,
// excluding Init and Close.
func (e *Engine) Calls() int {
	return len(e.Queries) + len(e.Loaded) + len(e.LoadedFiles) + len(e.SavedFiles) + len(e.Created)
}

// Init implements minigu.Engine.
func (e *Engine) Init(cfg minigu.Config) error {
	e.InitCalls++
	e.Config = cfg

	return e.InitErr
}

// Execute implements minigu.Engine.
func (e *Engine) Execute(query string) (*minigu.Result, error) {
	e.Queries = append(e.Queries, query)

	if e.ExecuteErr != nil {
		return nil, e.ExecuteErr
	}

	if res, ok := e.results[query]; ok {
		return res, nil
	}

	return &minigu.Result{}, nil
}

// LoadData implements minigu.Engine.
func (e *Engine) LoadData(records []minigu.Record) error {
	e.Loaded = append(e.Loaded, records)

	return e.LoadErr
}

// LoadFromFile implements minigu.Engine.
func (e *Engine) LoadFromFile(path string) error {
	e.LoadedFiles = append(e.LoadedFiles, path)

	return e.LoadErr
}

// SaveToFile implements minigu.Engine.
func (e *Engine) SaveToFile(path string) error {
	e.SavedFiles = append(e.SavedFiles, path)

	return e.SaveErr
}

// CreateGraph implements minigu.Engine.
func (e *Engine) CreateGraph(name, schema string) error {
	e.Created = append(e.Created, name+"|"+schema)

	return e.CreateErr
}

// Close implements minigu.Engine.
func (e *Engine) Close() error {
	e.CloseCalls++

	return e.CloseErr
}

// Factory returns a minigu.EngineFactory handing out this engine.
func (e *Engine) Factory() minigu.EngineFactory {
	return func() (minigu.Engine, error) {
		return e, nil
	}
}

// Compile-time interface check.
var _ minigu.Engine = (*Engine)(nil)
