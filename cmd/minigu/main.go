// Command minigu is the command-line front end for the miniGU binding
// layer. Engine bindings register themselves via minigu.RegisterEngine;
// link one in (blank import) to make it selectable with --engine.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:  "minigu",
		Usage: "Work with a miniGU graph database",
		Commands: []*cli.Command{
			execCommand(),
			loadCommand(),
			saveCommand(),
			createGraphCommand(),
			shellCommand(),
			enginesCommand(),
		},
	}

	err := cmd.Run(context.Background(), os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
