package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/urfave/cli/v3"

	"github.com/mholzen/ntree/pkg/render"
)

func TestGetOrderFlag_DefaultsToPreorder(t *testing.T) {
	var order string

	cmd := &cli.Command{
		Flags: []cli.Flag{getOrderFlag()},
		Action: func(ctx context.Context, c *cli.Command) error {
			order = c.String("order")
			return nil
		},
	}

	err := cmd.Run(context.Background(), []string{"test"})
	assert.NoError(t, err)
	assert.Equal(t, "preorder", order)
}

func TestGetOrderFlag_ShortAlias(t *testing.T) {
	var order string

	cmd := &cli.Command{
		Flags: []cli.Flag{getOrderFlag()},
		Action: func(ctx context.Context, c *cli.Command) error {
			order = c.String("order")
			return nil
		},
	}

	err := cmd.Run(context.Background(), []string{"test", "-o", "post"})
	assert.NoError(t, err)
	assert.Equal(t, "post", order)
}

func TestGetDeleteFlag_Repeatable(t *testing.T) {
	var deletes []string

	cmd := &cli.Command{
		Flags: []cli.Flag{getDeleteFlag()},
		Action: func(ctx context.Context, c *cli.Command) error {
			deletes = c.StringSlice("delete")
			return nil
		},
	}

	err := cmd.Run(context.Background(), []string{"test", "--delete", "2", "--delete", "5"})
	assert.NoError(t, err)
	assert.Equal(t, []string{"2", "5"}, deletes)
}

func TestGetPrintFormatFlag_DefaultsToTree(t *testing.T) {
	flag, ok := getPrintFormatFlag().(*cli.StringFlag)
	assert.True(t, ok)
	assert.Equal(t, render.FormatTree, flag.Value)
}

func TestValidateTraverseFormat(t *testing.T) {
	assert.NoError(t, validateTraverseFormat("list"))
	assert.NoError(t, validateTraverseFormat("json"))
	assert.NoError(t, validateTraverseFormat("yaml"))
	assert.Error(t, validateTraverseFormat("tree"))
}
