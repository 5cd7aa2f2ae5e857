package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func newRootCommand(w io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "ntree",
		Usage: "Build, traverse and edit shape-filling N-ary trees",
		Description: `Values are added in order: each goes to the first node holding fewer than
two children. Deleting a value moves the last node in preorder into its slot.

Values may be separated by spaces or commas. Use -- before negative values.`,
		Writer:   w,
		Flags:    getGlobalFlags(),
		Commands: getCommands(),
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			if err := setupLogging(cmd.String("log-level"), cmd.String("log-file")); err != nil {
				return ctx, err
			}
			return ctx, configureColor(cmd.String("color"), w)
		},
	}
}

func main() {
	if err := newRootCommand(os.Stdout).Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
