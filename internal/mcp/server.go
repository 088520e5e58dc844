package mcp

import (
	"sort"

	"github.com/charmbracelet/log"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/hpungsan/todo/internal/app"
	"github.com/hpungsan/todo/internal/config"
)

// ServerName is the MCP implementation name reported to clients.
const ServerName = "todo"

// toolEntry pairs a tool definition with a handler factory.
type toolEntry struct {
	def     mcp.Tool
	handler func(*Handlers) server.ToolHandlerFunc
}

// toolRegistry maps tool names to their definitions and handler factories.
var toolRegistry = map[string]toolEntry{
	"todo_list": {
		def:     listToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleList },
	},
	"todo_add": {
		def:     addToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleAdd },
	},
	"todo_toggle": {
		def:     toggleToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleToggle },
	},
	"todo_delete": {
		def:     deleteToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleDelete },
	},
	"todo_export": {
		def:     exportToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleExport },
	},
}

// AllToolNames returns all valid tool names, sorted.
func AllToolNames() []string {
	names := make([]string, 0, len(toolRegistry))
	for name := range toolRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ValidateDisabledTools returns a list of unknown tool names from the given list.
func ValidateDisabledTools(names []string) []string {
	unknown := make([]string, 0)
	for _, name := range names {
		if _, ok := toolRegistry[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	return unknown
}

// NewServer creates a new MCP server with the todo tools registered.
// Tools listed in cfg.DisabledTools are excluded from registration.
func NewServer(store app.Store, cfg *config.Config, logger *log.Logger, version string) *server.MCPServer {
	s := server.NewMCPServer(
		ServerName,
		version,
		server.WithToolCapabilities(true),
	)

	h := NewHandlers(store, logger)

	disabled := make(map[string]bool, len(cfg.DisabledTools))
	for _, name := range cfg.DisabledTools {
		disabled[name] = true
	}

	for name, entry := range toolRegistry {
		if disabled[name] {
			continue
		}
		s.AddTool(entry.def, entry.handler(h))
	}

	return s
}

// Run starts the MCP server using stdio transport.
func Run(store app.Store, cfg *config.Config, logger *log.Logger, version string) error {
	s := NewServer(store, cfg, logger, version)
	return server.ServeStdio(s)
}
