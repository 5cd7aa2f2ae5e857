package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	mcptypes "github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// Config controls MCP server startup.
type Config struct {
	Expose  string
	Version string
}

// RunServer starts the MCP stdio server with the requested tool set over a
// fresh session tree.
func RunServer(ctx context.Context, cfg Config) error {
	server, err := NewServer(cfg, NewSession())
	if err != nil {
		return err
	}

	return mcpserver.ServeStdio(server, mcpserver.WithStdioContextFunc(func(_ context.Context) context.Context {
		return ctx
	}))
}

// NewServer builds an MCP server exposing the tools named by cfg.Expose.
func NewServer(cfg Config, session *Session) (*mcpserver.MCPServer, error) {
	expose := strings.TrimSpace(cfg.Expose)
	if expose == "" {
		expose = "read"
	}

	toolsToEnable, err := ParseExposeList(expose)
	if err != nil {
		return nil, err
	}

	builder := NewToolBuilder(session)
	serverTools, err := builder.BuildTools(toolsToEnable)
	if err != nil {
		return nil, err
	}

	hooks := &mcpserver.Hooks{}
	hooks.AddBeforeAny(func(ctx context.Context, id any, method mcptypes.MCPMethod, message any) {
		msgJSON, _ := json.Marshal(message)
		slog.Debug("mcp request", "id", id, "method", method, "message", string(msgJSON))
	})
	hooks.AddOnError(func(ctx context.Context, id any, method mcptypes.MCPMethod, message any, err error) {
		slog.Debug("mcp error", "id", id, "method", method, "error", err)
	})

	server := mcpserver.NewMCPServer(
		"ntree",
		cfg.Version,
		mcpserver.WithToolCapabilities(true),
		mcpserver.WithLogging(),
		mcpserver.WithHooks(hooks),
	)

	for _, tool := range serverTools {
		server.AddTool(tool.Tool, tool.Handler)
	}
	return server, nil
}

// ParseExposeList converts the --expose flag into a deduplicated, ordered tool list.
// Supports groups: all, read, write. Individual tools can be referenced either by
// their short name (e.g., "add") or full MCP name (e.g., "ntree_add").
func ParseExposeList(raw string) ([]string, error) {
	var tokens []string
	for _, t := range strings.Split(raw, ",") {
		token := strings.TrimSpace(strings.ToLower(t))
		if token == "" {
			continue
		}
		tokens = append(tokens, token)
	}

	if len(tokens) == 0 {
		tokens = []string{"read"}
	}

	result := make([]string, 0, len(allTools))
	seen := make(map[string]struct{})

	addSet := func(names []string) {
		for _, name := range names {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			result = append(result, name)
		}
	}

	for _, token := range tokens {
		if group, ok := groupMap[token]; ok {
			addSet(group)
			continue
		}

		if alias, ok := aliasMap[token]; ok {
			addSet([]string{alias})
			continue
		}

		if _, ok := fullNames[token]; ok {
			addSet([]string{token})
			continue
		}

		return nil, fmt.Errorf("unknown tool or group in --expose: %s", token)
	}

	return result, nil
}

var (
	readTools = []string{
		ToolTraverse,
		ToolPrint,
		ToolStats,
	}

	writeTools = []string{
		ToolAdd,
		ToolDelete,
		ToolReset,
	}

	allTools = append(append([]string{}, readTools...), writeTools...)

	groupMap = map[string][]string{
		"all":   allTools,
		"read":  readTools,
		"write": writeTools,
	}

	aliasMap = map[string]string{
		"traverse": ToolTraverse,
		"print":    ToolPrint,
		"stats":    ToolStats,
		"add":      ToolAdd,
		"delete":   ToolDelete,
		"reset":    ToolReset,
	}

	fullNames = func() map[string]struct{} {
		out := make(map[string]struct{}, len(allTools))
		for _, name := range allTools {
			out[name] = struct{}{}
		}
		return out
	}()
)
