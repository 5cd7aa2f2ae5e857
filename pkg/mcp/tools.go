package mcp

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	mcptypes "github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/mholzen/ntree/pkg/ntree"
	"github.com/mholzen/ntree/pkg/render"
)

const (
	ToolAdd      = "ntree_add"
	ToolDelete   = "ntree_delete"
	ToolReset    = "ntree_reset"
	ToolTraverse = "ntree_traverse"
	ToolPrint    = "ntree_print"
	ToolStats    = "ntree_stats"
)

// ToolBuilder wires tree operations into MCP tool handlers.
type ToolBuilder struct {
	session *Session
}

// NewToolBuilder creates a builder bound to the provided session.
func NewToolBuilder(session *Session) ToolBuilder {
	return ToolBuilder{session: session}
}

// BuildTools constructs the requested tools in the order provided.
func (b ToolBuilder) BuildTools(toolNames []string) ([]mcpserver.ServerTool, error) {
	factories := map[string]func() mcpserver.ServerTool{
		ToolAdd:      b.buildAddTool,
		ToolDelete:   b.buildDeleteTool,
		ToolReset:    b.buildResetTool,
		ToolTraverse: b.buildTraverseTool,
		ToolPrint:    b.buildPrintTool,
		ToolStats:    b.buildStatsTool,
	}

	var tools []mcpserver.ServerTool
	for _, name := range toolNames {
		factory, ok := factories[name]
		if !ok {
			return nil, fmt.Errorf("unknown tool: %s", name)
		}
		tools = append(tools, factory())
	}
	return tools, nil
}

type valuesResult struct {
	Order  string `json:"order"`
	Values []int  `json:"values"`
}

type deleteResult struct {
	Deleted bool  `json:"deleted"`
	Value   int   `json:"value"`
	Values  []int `json:"values"`
}

func (b ToolBuilder) buildAddTool() mcpserver.ServerTool {
	return mcpserver.ServerTool{
		Tool: mcptypes.NewTool(
			ToolAdd,
			mcptypes.WithDescription("Add integer values to the tree; each value goes to the first node with fewer than two children"),
			mcptypes.WithString("values",
				mcptypes.Description("Integers separated by commas or spaces, added in order"),
				mcptypes.Required(),
			),
		),
		Handler: func(ctx context.Context, req mcptypes.CallToolRequest) (*mcptypes.CallToolResult, error) {
			raw := strings.TrimSpace(req.GetString("values", ""))
			if raw == "" {
				return mcptypes.NewToolResultError("values is required"), nil
			}
			values, err := ntree.ParseValues(raw)
			if err != nil {
				return mcptypes.NewToolResultErrorFromErr("cannot parse values", err), nil
			}

			slog.Debug("adding values", "count", len(values))
			if err := b.session.Add(values); err != nil {
				return mcptypes.NewToolResultErrorFromErr("cannot add values", err), nil
			}

			return mcptypes.NewToolResultJSON(valuesResult{
				Order:  ntree.Preorder.String(),
				Values: b.session.Values(ntree.Preorder),
			})
		},
	}
}

func (b ToolBuilder) buildDeleteTool() mcpserver.ServerTool {
	return mcpserver.ServerTool{
		Tool: mcptypes.NewTool(
			ToolDelete,
			mcptypes.WithDescription("Delete the first node in preorder holding a value; the last node in preorder takes its place"),
			mcptypes.WithNumber("value",
				mcptypes.Description("Value to delete"),
				mcptypes.Required(),
			),
		),
		Handler: func(ctx context.Context, req mcptypes.CallToolRequest) (*mcptypes.CallToolResult, error) {
			if _, ok := req.GetArguments()["value"]; !ok {
				return mcptypes.NewToolResultError("value is required"), nil
			}
			value := req.GetInt("value", 0)

			slog.Debug("deleting value", "value", value)
			deleted := b.session.Delete(value)

			return mcptypes.NewToolResultJSON(deleteResult{
				Deleted: deleted,
				Value:   value,
				Values:  b.session.Values(ntree.Preorder),
			})
		},
	}
}

func (b ToolBuilder) buildResetTool() mcpserver.ServerTool {
	return mcpserver.ServerTool{
		Tool: mcptypes.NewTool(
			ToolReset,
			mcptypes.WithDescription("Remove every node from the tree"),
		),
		Handler: func(ctx context.Context, req mcptypes.CallToolRequest) (*mcptypes.CallToolResult, error) {
			b.session.Reset()
			return mcptypes.NewToolResultText("tree cleared"), nil
		},
	}
}

func (b ToolBuilder) buildTraverseTool() mcpserver.ServerTool {
	return mcpserver.ServerTool{
		Tool: mcptypes.NewTool(
			ToolTraverse,
			mcptypes.WithDescription("List tree values in preorder (NLR) or postorder (LRN)"),
			mcptypes.WithString("order",
				mcptypes.Description("preorder or postorder"),
				mcptypes.DefaultString(ntree.Preorder.String()),
				mcptypes.Enum(ntree.Preorder.String(), ntree.Postorder.String()),
			),
		),
		Handler: func(ctx context.Context, req mcptypes.CallToolRequest) (*mcptypes.CallToolResult, error) {
			order, err := ntree.ParseOrder(req.GetString("order", ntree.Preorder.String()))
			if err != nil {
				return mcptypes.NewToolResultError(err.Error()), nil
			}

			return mcptypes.NewToolResultJSON(valuesResult{
				Order:  order.String(),
				Values: b.session.Values(order),
			})
		},
	}
}

func (b ToolBuilder) buildPrintTool() mcpserver.ServerTool {
	return mcpserver.ServerTool{
		Tool: mcptypes.NewTool(
			ToolPrint,
			mcptypes.WithDescription("Render the tree structure"),
			mcptypes.WithString("format",
				mcptypes.Description("tree, dump, markdown, json or yaml"),
				mcptypes.DefaultString(render.FormatTree),
				mcptypes.Enum(render.Formats...),
			),
		),
		Handler: func(ctx context.Context, req mcptypes.CallToolRequest) (*mcptypes.CallToolResult, error) {
			format := strings.TrimSpace(req.GetString("format", render.FormatTree))
			if err := render.ValidateFormat(format); err != nil {
				return mcptypes.NewToolResultError(err.Error()), nil
			}

			out, err := b.session.Render(format)
			if err != nil {
				return mcptypes.NewToolResultErrorFromErr("cannot render tree", err), nil
			}
			if out == "" {
				out = "(empty tree)"
			}
			return mcptypes.NewToolResultText(out), nil
		},
	}
}

func (b ToolBuilder) buildStatsTool() mcpserver.ServerTool {
	return mcpserver.ServerTool{
		Tool: mcptypes.NewTool(
			ToolStats,
			mcptypes.WithDescription("Report node count, height and leaf count"),
		),
		Handler: func(ctx context.Context, req mcptypes.CallToolRequest) (*mcptypes.CallToolResult, error) {
			return mcptypes.NewToolResultJSON(b.session.Stats())
		},
	}
}
