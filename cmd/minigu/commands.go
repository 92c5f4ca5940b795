package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/urfave/cli/v3"

	minigu "github.com/minigu-db/minigu-go"
	"github.com/minigu-db/minigu-go/gql"
	"github.com/minigu-db/minigu-go/shell"
)

// Command errors.
var (
	ErrNoQuery     = errors.New("no query given")
	ErrNoPath      = errors.New("no path given")
	ErrNoGraphName = errors.New("no graph name given")
)

func execCommand() *cli.Command {
	return &cli.Command{
		Name:      "exec",
		Usage:     "Execute a GQL statement and print the result",
		ArgsUsage: "<query>",
		Flags:     connectionFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			query := strings.TrimSpace(strings.Join(cmd.Args().Slice(), " "))
			if query == "" {
				return ErrNoQuery
			}

			client, err := newClient(cmd)
			if err != nil {
				return err
			}
			defer client.Close()

			result, err := client.Execute(ctx, query)
			if err != nil {
				return err
			}

			fmt.Println(shell.RenderTable(nil, result))

			return printMetrics(result)
		},
	}
}

func loadCommand() *cli.Command {
	return &cli.Command{
		Name:      "load",
		Usage:     "Load data into the database from a file or directory",
		ArgsUsage: "<path>",
		Flags:     connectionFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			path := cmd.Args().First()
			if path == "" {
				return ErrNoPath
			}

			client, err := newClient(cmd)
			if err != nil {
				return err
			}
			defer client.Close()

			err = client.LoadFile(ctx, path)
			if err != nil {
				return err
			}

			fmt.Println("Data loaded successfully")

			return nil
		},
	}
}

func saveCommand() *cli.Command {
	return &cli.Command{
		Name:      "save",
		Usage:     "Save the database to a file or directory",
		ArgsUsage: "<path>",
		Flags:     connectionFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			path := cmd.Args().First()
			if path == "" {
				return ErrNoPath
			}

			client, err := newClient(cmd)
			if err != nil {
				return err
			}
			defer client.Close()

			err = client.Save(ctx, path)
			if err != nil {
				return err
			}

			fmt.Printf("Database saved to %s\n", path)

			return nil
		},
	}
}

func createGraphCommand() *cli.Command {
	flags := connectionFlags()
	flags = append(flags, &cli.StringFlag{
		Name:    "schema",
		Aliases: []string{"s"},
		Usage:   "path to a graph type DDL file",
	})

	return &cli.Command{
		Name:      "create-graph",
		Usage:     "Create a named graph, optionally with a schema",
		ArgsUsage: "<name>",
		Flags:     flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			name := cmd.Args().First()
			if name == "" {
				return ErrNoGraphName
			}

			var graphSchema *minigu.GraphSchema

			if schemaPath := cmd.String("schema"); schemaPath != "" {
				data, err := os.ReadFile(schemaPath)
				if err != nil {
					return err
				}

				parsed, err := gql.ParseSchema(string(data))
				if err != nil {
					return fmt.Errorf("invalid schema %s: %w", schemaPath, err)
				}

				graphSchema = parsed.GraphSchema()
			}

			client, err := newClient(cmd)
			if err != nil {
				return err
			}
			defer client.Close()

			err = client.CreateGraph(ctx, name, graphSchema)
			if err != nil {
				return err
			}

			fmt.Printf("Graph %q created\n", name)

			return nil
		},
	}
}

func shellCommand() *cli.Command {
	return &cli.Command{
		Name:  "shell",
		Usage: "Start an interactive GQL shell",
		Flags: connectionFlags(),
		Action: func(_ context.Context, cmd *cli.Command) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}
			defer client.Close()

			return shell.Run(client)
		},
	}
}

func enginesCommand() *cli.Command {
	return &cli.Command{
		Name:  "engines",
		Usage: "List linked engine bindings",
		Action: func(context.Context, *cli.Command) error {
			names := minigu.RegisteredEngines()
			if len(names) == 0 {
				fmt.Println("No engine bindings linked into this build.")

				return nil
			}

			sort.Strings(names)

			for _, name := range names {
				fmt.Println(name)
			}

			return nil
		},
	}
}

func printMetrics(result *minigu.Result) error {
	if len(result.Metrics) == 0 {
		return nil
	}

	names := make([]string, 0, len(result.Metrics))
	for name := range result.Metrics {
		names = append(names, name)
	}

	sort.Strings(names)

	for _, name := range names {
		fmt.Printf("%s: %g\n", name, result.Metrics[name])
	}

	return nil
}
