package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/hpungsan/todo/internal/ops"
)

var listToolDef = mcp.NewTool("todo_list",
	mcp.WithDescription("List todo items in insertion order with total and open counts."),
	mcp.WithBoolean("open_only",
		mcp.Description("Only return items that are not completed"),
	),
	mcp.WithReadOnlyHintAnnotation(true),
)

var addToolDef = mcp.NewTool("todo_add",
	mcp.WithDescription("Add a new open todo item."),
	mcp.WithString("name",
		mcp.Required(),
		mcp.Description("Item text; must not be blank"),
	),
)

var toggleToolDef = mcp.NewTool("todo_toggle",
	mcp.WithDescription("Flip the completed flag of a todo item."),
	mcp.WithString("id",
		mcp.Required(),
		mcp.Description("Item id (ULID) as returned by todo_list"),
	),
)

var deleteToolDef = mcp.NewTool("todo_delete",
	mcp.WithDescription("Delete a todo item permanently."),
	mcp.WithString("id",
		mcp.Required(),
		mcp.Description("Item id (ULID) as returned by todo_list"),
	),
	mcp.WithDestructiveHintAnnotation(true),
)

var exportToolDef = mcp.NewTool("todo_export",
	mcp.WithDescription("Render all items as a markdown task list or as HTML. Writes to path when given, otherwise returns the content."),
	mcp.WithString("format",
		mcp.Description("Output format"),
		mcp.Enum(ops.FormatMarkdown, ops.FormatHTML),
	),
	mcp.WithString("path",
		mcp.Description("Optional destination file (.md/.markdown or .html/.htm)"),
	),
)
