package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"
	"golang.org/x/text/language"

	"github.com/mholzen/ntree/pkg/mcp"
	"github.com/mholzen/ntree/pkg/ntree"
	"github.com/mholzen/ntree/pkg/render"
)

func getCommands() []*cli.Command {
	return []*cli.Command{
		getTraverseCommand(),
		getPrintCommand(),
		getDeleteCommand(),
		getStatsCommand(),
		getMcpCommand(),
		getServeCommand(),
		getVersionCommand(),
	}
}

// buildTree adds values in order, then deletes each of deletes in order.
func buildTree(values []string, deletes []string) (*ntree.Tree, error) {
	toAdd, err := ntree.ParseValues(values...)
	if err != nil {
		return nil, err
	}
	toDelete, err := ntree.ParseValues(deletes...)
	if err != nil {
		return nil, err
	}

	tree := ntree.NewTree()
	for _, v := range toAdd {
		if err := tree.Add(v); err != nil {
			return nil, fmt.Errorf("cannot build tree: %w", err)
		}
	}
	for _, v := range toDelete {
		if !tree.Delete(v) {
			slog.Warn("value not found", "value", v)
		}
	}
	slog.Debug("built tree", "added", len(toAdd), "deleted", len(toDelete), "nodes", tree.Len())
	return tree, nil
}

func getTraverseCommand() *cli.Command {
	return &cli.Command{
		Name:      "traverse",
		Usage:     "Print tree values in preorder or postorder",
		UsageText: "ntree traverse [options] <values...>",
		Flags: []cli.Flag{
			getOrderFlag(),
			getTraverseFormatFlag(),
			getDeleteFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			format := cmd.String("format")
			if err := validateTraverseFormat(format); err != nil {
				return err
			}
			order, err := ntree.ParseOrder(cmd.String("order"))
			if err != nil {
				return err
			}

			tree, err := buildTree(cmd.Args().Slice(), cmd.StringSlice("delete"))
			if err != nil {
				return err
			}

			return printTraversal(cmd.Root().Writer, TraversalOutput{
				Order:  order.String(),
				Values: tree.Values(order),
			}, format)
		},
	}
}

func getPrintCommand() *cli.Command {
	return &cli.Command{
		Name:      "print",
		Usage:     "Render the tree structure",
		UsageText: "ntree print [options] <values...>",
		Flags: []cli.Flag{
			getPrintFormatFlag(),
			getDeleteFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			format := cmd.String("format")
			if err := render.ValidateFormat(format); err != nil {
				return err
			}

			tree, err := buildTree(cmd.Args().Slice(), cmd.StringSlice("delete"))
			if err != nil {
				return err
			}

			out, err := render.Format(tree.Root(), format)
			if err != nil {
				return fmt.Errorf("cannot render tree: %w", err)
			}
			_, err = fmt.Fprint(cmd.Root().Writer, out)
			return err
		},
	}
}

func getDeleteCommand() *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Usage:     "Build a tree, delete one value and print the resulting preorder",
		UsageText: "ntree delete [options] <value> <values...>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() < 1 {
				return fmt.Errorf("value is required")
			}
			targets, err := ntree.ParseValues(cmd.Args().First())
			if err != nil {
				return err
			}
			if len(targets) != 1 {
				return fmt.Errorf("exactly one value to delete is required")
			}
			target := targets[0]

			tree, err := buildTree(cmd.Args().Tail(), nil)
			if err != nil {
				return err
			}

			w := cmd.Root().Writer
			slog.Debug("deleting value", "value", target)
			if tree.Delete(target) {
				fmt.Fprintf(w, "%d %s\n", target, okColor.Sprint("deleted"))
			} else {
				fmt.Fprintf(w, "%d %s\n", target, missingColor.Sprint("not found"))
			}
			_, err = fmt.Fprintln(w, formatValues(tree.Values(ntree.Preorder)))
			return err
		},
	}
}

func getStatsCommand() *cli.Command {
	return &cli.Command{
		Name:      "stats",
		Usage:     "Show node count, height and leaf count",
		UsageText: "ntree stats [options] <values...>",
		Flags: []cli.Flag{
			getDeleteFlag(),
			&cli.StringFlag{
				Name:  "lang",
				Value: "en",
				Usage: "Language tag used to format numbers (e.g. en, de, fr)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			tag, err := language.Parse(cmd.String("lang"))
			if err != nil {
				return fmt.Errorf("cannot parse language: %w", err)
			}

			tree, err := buildTree(cmd.Args().Slice(), cmd.StringSlice("delete"))
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.Root().Writer, render.FormatStats(render.NewStats(tree), tag))
			return err
		},
	}
}

func getExposeFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "expose",
		Value: "all",
		Usage: "Tools to expose: read, write, all, or comma-separated tool names",
	}
}

func getMcpCommand() *cli.Command {
	return &cli.Command{
		Name:      "mcp",
		Usage:     "Run as MCP server (stdio transport)",
		UsageText: "ntree mcp [options]",
		Description: `Start an MCP server holding one in-memory tree for the session.

Tool groups:
  read   Traverse, Print and Stats tools
  write  Add, Delete and Reset tools
  all    All available tools (default)

Examples:
  ntree mcp                      # All tools
  ntree mcp --expose=read        # Read-only tools
  ntree mcp --expose=add,print   # Specific tools only`,
		Flags: []cli.Flag{
			getExposeFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return mcp.RunServer(ctx, mcp.Config{
				Expose:  cmd.String("expose"),
				Version: version,
			})
		},
	}
}

func getServeCommand() *cli.Command {
	return &cli.Command{
		Name:      "serve",
		Usage:     "Run as MCP server (streamable HTTP transport)",
		UsageText: "ntree serve [options]",
		Flags: []cli.Flag{
			getExposeFlag(),
			&cli.StringFlag{
				Name:  "addr",
				Value: ":8080",
				Usage: "Address to listen on (e.g., :8080 or localhost:8080)",
			},
			&cli.StringFlag{
				Name:  "endpoint-path",
				Value: "/mcp",
				Usage: "Path for the MCP endpoint",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return mcp.RunHTTPServer(ctx, mcp.HTTPConfig{
				Config: mcp.Config{
					Expose:  cmd.String("expose"),
					Version: version,
				},
				Addr:         cmd.String("addr"),
				EndpointPath: cmd.String("endpoint-path"),
			})
		},
	}
}

func getVersionCommand() *cli.Command {
	return &cli.Command{
		Name:      "version",
		Usage:     "Show version information",
		UsageText: "ntree version",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			w := cmd.Root().Writer
			fmt.Fprintf(w, "ntree version %s\n", version)
			fmt.Fprintf(w, "commit: %s\n", commit)
			fmt.Fprintf(w, "built: %s\n", date)
			return nil
		},
	}
}
