package mcp

import (
	"context"
	"encoding/json"
	stderrors "errors"

	"github.com/charmbracelet/log"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/hpungsan/todo/internal/app"
	"github.com/hpungsan/todo/internal/errors"
	"github.com/hpungsan/todo/internal/logging"
	"github.com/hpungsan/todo/internal/ops"
)

// Handlers holds dependencies for MCP tool handlers.
type Handlers struct {
	store  app.Store
	logger *log.Logger
}

// NewHandlers creates a new Handlers instance. A nil logger discards output.
func NewHandlers(store app.Store, logger *log.Logger) *Handlers {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Handlers{store: store, logger: logger}
}

// Request types for each tool

// ListRequest represents the arguments for todo_list.
type ListRequest struct {
	OpenOnly bool `json:"open_only,omitempty"`
}

// AddRequest represents the arguments for todo_add.
type AddRequest struct {
	Name string `json:"name"`
}

// IDRequest represents the arguments for todo_toggle and todo_delete.
type IDRequest struct {
	ID string `json:"id"`
}

// ExportRequest represents the arguments for todo_export.
type ExportRequest struct {
	Format string `json:"format,omitempty"`
	Path   string `json:"path,omitempty"`
}

// HandleList handles the todo_list tool call.
func (h *Handlers) HandleList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[ListRequest](req)
	if err != nil {
		return h.errorResult(req, errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.List(ctx, h.store, ops.ListInput{OpenOnly: input.OpenOnly})
	if err != nil {
		return h.errorResult(req, err), nil
	}
	return successResult(result)
}

// HandleAdd handles the todo_add tool call.
func (h *Handlers) HandleAdd(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[AddRequest](req)
	if err != nil {
		return h.errorResult(req, errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Add(ctx, h.store, ops.AddInput{Name: input.Name})
	if err != nil {
		return h.errorResult(req, err), nil
	}
	return successResult(result)
}

// HandleToggle handles the todo_toggle tool call.
func (h *Handlers) HandleToggle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[IDRequest](req)
	if err != nil {
		return h.errorResult(req, errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Toggle(ctx, h.store, ops.ToggleInput{ID: input.ID})
	if err != nil {
		return h.errorResult(req, err), nil
	}
	return successResult(result)
}

// HandleDelete handles the todo_delete tool call.
func (h *Handlers) HandleDelete(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[IDRequest](req)
	if err != nil {
		return h.errorResult(req, errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Delete(ctx, h.store, ops.DeleteInput{ID: input.ID})
	if err != nil {
		return h.errorResult(req, err), nil
	}
	return successResult(result)
}

// HandleExport handles the todo_export tool call.
func (h *Handlers) HandleExport(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[ExportRequest](req)
	if err != nil {
		return h.errorResult(req, errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Export(ctx, h.store, ops.ExportInput{
		Format: input.Format,
		Path:   input.Path,
	})
	if err != nil {
		return h.errorResult(req, err), nil
	}
	return successResult(result)
}

// Result helpers

// errorResult logs the failure and converts it to an MCP error result.
func (h *Handlers) errorResult(req mcp.CallToolRequest, err error) *mcp.CallToolResult {
	h.logger.Error("tool call failed", "tool", req.Params.Name, "code", errors.CodeOf(err), "err", err)
	return errorResult(err)
}

// errorResult creates an MCP error result from any error.
// Uses IsError: true so MCP clients recognize failures properly.
// INTERNAL errors never carry details.
func errorResult(err error) *mcp.CallToolResult {
	var payload map[string]any
	var todoErr *errors.TodoError
	if stderrors.As(err, &todoErr) {
		errorObj := map[string]any{
			"code":    todoErr.Code,
			"message": todoErr.Message,
		}
		if todoErr.Code != errors.ErrInternal && todoErr.Details != nil {
			errorObj["details"] = todoErr.Details
		}
		payload = map[string]any{"error": errorObj}
	} else {
		payload = map[string]any{
			"error": map[string]any{
				"code":    errors.ErrInternal,
				"message": "an internal error occurred",
			},
		}
	}
	content, _ := json.Marshal(payload)
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.TextContent{Type: "text", Text: string(content)}},
		IsError: true,
	}
}

// successResult creates an MCP success result from any data.
func successResult(data any) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultJSON(data)
}
