package main

import (
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/mholzen/ntree/pkg/ntree"
	"github.com/mholzen/ntree/pkg/render"
)

func getGlobalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "log-level",
			Value:   "warn",
			Usage:   "Log level: debug, info, warn, error",
			Sources: cli.EnvVars("NTREE_LOG_LEVEL"),
		},
		&cli.StringFlag{
			Name:    "log-file",
			Usage:   "Append logs to this file instead of stderr",
			Sources: cli.EnvVars("NTREE_LOG_FILE"),
		},
		&cli.StringFlag{
			Name:    "color",
			Value:   "auto",
			Usage:   "Colorize output: auto, always, never",
			Sources: cli.EnvVars("NTREE_COLOR"),
		},
	}
}

func getDeleteFlag() cli.Flag {
	return &cli.StringSliceFlag{
		Name:  "delete",
		Usage: "Value to delete after building the tree (can be specified multiple times)",
	}
}

func getOrderFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "order",
		Aliases: []string{"o"},
		Value:   ntree.Preorder.String(),
		Usage:   "Traversal order: preorder (NLR) or postorder (LRN)",
		Sources: cli.EnvVars("NTREE_ORDER"),
	}
}

func getTraverseFormatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Value:   "list",
		Usage:   "Output format: list, json, yaml",
		Sources: cli.EnvVars("NTREE_FORMAT"),
	}
}

func getPrintFormatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Value:   render.FormatTree,
		Usage:   fmt.Sprintf("Output format: %v", render.Formats),
		Sources: cli.EnvVars("NTREE_PRINT_FORMAT"),
	}
}

func validateTraverseFormat(format string) error {
	if format != "list" && format != "json" && format != "yaml" {
		return fmt.Errorf("format must be 'list', 'json', or 'yaml'")
	}
	return nil
}
