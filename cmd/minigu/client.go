package main

import (
	"errors"
	"os"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	minigu "github.com/minigu-db/minigu-go"
)

// Connection errors.
var (
	ErrNoEngine = errors.New("no engine specified (use --engine or a .minigu.yaml)")
)

// connectionFlags are shared by every command that opens a connection.
func connectionFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "engine",
			Aliases: []string{"e"},
			Usage:   "engine binding to use",
			Sources: cli.EnvVars("MINIGU_ENGINE"),
		},
		&cli.StringFlag{
			Name:    "db-path",
			Usage:   "database location (empty for in-memory)",
			Sources: cli.EnvVars("MINIGU_DB_PATH"),
		},
		&cli.IntFlag{
			Name:  "thread-count",
			Usage: "engine worker threads",
		},
		&cli.IntFlag{
			Name:  "cache-size",
			Usage: "engine result cache size",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "verbose logging",
		},
	}
}

// loadClientConfig resolves the connection config: nearest .minigu.yaml as
// the base, command-line flags on top.
func loadClientConfig(cmd *cli.Command) minigu.Config {
	cfg := minigu.DefaultConfig()

	cwd, err := os.Getwd()
	if err == nil {
		if fileCfg, err := minigu.LoadConfig(cwd); err == nil {
			cfg = fileCfg
		}
	}

	if engine := cmd.String("engine"); engine != "" {
		cfg.Engine = engine
	}

	if path := cmd.String("db-path"); path != "" {
		cfg.Path = path
	}

	if n := cmd.Int("thread-count"); n > 0 {
		cfg.ThreadCount = n
	}

	if n := cmd.Int("cache-size"); n > 0 {
		cfg.CacheSize = n
	}

	if cmd.Bool("verbose") {
		cfg.EnableLogging = true
	}

	return cfg
}

// newClient opens a blocking client for the configured engine, failing
// closed when no binding is registered under the requested name.
func newClient(cmd *cli.Command) (*minigu.Client, error) {
	cfg := loadClientConfig(cmd)

	if cfg.Engine == "" {
		return nil, ErrNoEngine
	}

	factory, err := minigu.LookupEngine(cfg.Engine)
	if err != nil {
		return nil, err
	}

	var opts []minigu.Option

	if cfg.EnableLogging {
		logger, err := zap.NewDevelopment()
		if err == nil {
			opts = append(opts, minigu.WithLogger(logger))
		}
	}

	return minigu.Connect(factory, cfg, opts...)
}
