package minigu

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config validation errors.
var (
	// ErrConfigNotFound is returned when no .minigu.yaml is found.
	ErrConfigNotFound = errors.New("minigu: no .minigu.yaml found")

	// ErrInvalidThreadCount is returned for a non-positive thread count.
	ErrInvalidThreadCount = errors.New("minigu: thread_count must be positive")

	// ErrInvalidCacheSize is returned for a negative cache size.
	ErrInvalidCacheSize = errors.New("minigu: cache_size must be non-negative")
)

// Config holds the connection settings applied to the native engine exactly
// once, at connect time. It is immutable after connect: a handle snapshots
// the config it was built with and never reapplies it.
type Config struct {
	// Engine names the engine binding to use (see RegisterEngine).
	// Only consulted by config-file-driven construction; programmatic
	// callers pass a factory directly.
	Engine string `yaml:"engine,omitempty"`

	// Path is the database location. Empty means in-memory.
	Path string `yaml:"path,omitempty"`

	// ThreadCount is the engine's internal worker count. That concurrency
	// is opaque to this layer and not observable through its contracts.
	ThreadCount int `yaml:"thread_count"`

	// CacheSize is the engine's query result cache size.
	CacheSize int `yaml:"cache_size"`

	// EnableLogging turns on the binding layer's logging for this
	// connection. It does not alter engine behavior.
	EnableLogging bool `yaml:"enable_logging,omitempty"`
}

// DefaultConfig returns the config used when none is given.
func DefaultConfig() Config {
	return Config{
		ThreadCount: 1,
		CacheSize:   1000,
	}
}

// Validate checks the recognized options.
func (c Config) Validate() error {
	if c.ThreadCount <= 0 {
		return fmt.Errorf("%w, got %d", ErrInvalidThreadCount, c.ThreadCount)
	}

	if c.CacheSize < 0 {
		return fmt.Errorf("%w, got %d", ErrInvalidCacheSize, c.CacheSize)
	}

	return nil
}

// DefaultConfigNames are the filenames we search for.
var DefaultConfigNames = []string{".minigu.yaml", ".minigu.yml", "minigu.yaml", "minigu.yml"}

// LoadConfig finds and loads the nearest .minigu.yaml walking up from dir.
func LoadConfig(dir string) (Config, error) {
	path, err := FindConfig(dir)
	if err != nil {
		return Config{}, err
	}

	return LoadConfigFile(path)
}

// FindConfig searches for a config file starting from dir and walking up.
func FindConfig(dir string) (string, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	for dir := absDir; ; {
		for _, name := range DefaultConfigNames {
			path := filepath.Join(dir, name)

			_, err := os.Stat(path)
			if err == nil {
				return path, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrConfigNotFound
		}

		dir = parent
	}
}

// LoadConfigFile loads a config from a specific path. Options absent from
// the file keep their defaults.
func LoadConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return Config{}, err
	}

	cfg := DefaultConfig()

	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		return Config{}, err
	}

	return cfg, cfg.Validate()
}
