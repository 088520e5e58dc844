package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v2"

	"github.com/hpungsan/todo/internal/app"
	"github.com/hpungsan/todo/internal/errors"
	"github.com/hpungsan/todo/internal/mcp"
	"github.com/hpungsan/todo/internal/ops"
	"github.com/hpungsan/todo/internal/tui"
)

// newCLIApp creates the CLI application. With no command it runs the TUI.
func newCLIApp(e *env) *cli.App {
	app := &cli.App{
		Name:    "todo",
		Usage:   "Terminal todo list backed by SQLite",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "db", EnvVars: []string{"TODO_DB"}, Usage: "SQLite database file (overrides db_path)"},
			&cli.StringFlag{Name: "log-level", Usage: "Log level: debug|info|warn|error"},
			&cli.StringFlag{Name: "log-file", Usage: "Log file (overrides log_file)"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() > 0 {
				return cli.Exit(fmt.Sprintf("unknown command %q; run 'todo --help' for usage", c.Args().First()), 1)
			}
			return runTUI(c, e)
		},
		Commands: []*cli.Command{
			listCmd(e),
			addCmd(e),
			toggleCmd(e),
			deleteCmd(e),
			exportCmd(e),
			mcpCmd(e),
			configCmd(e),
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// runTUI loads every item and hands the terminal to bubbletea until quit.
func runTUI(c *cli.Context, e *env) error {
	if err := e.setup(c); err != nil {
		return err
	}
	ctx := ctxOf(c)

	state, err := app.Load(ctx, e.store)
	if err != nil {
		e.logger.Error("initial load failed", "err", err)
		return outputError(err)
	}
	e.logger.Info("started", "db", e.store.Path(), "items", len(state.Items()), "version", Version)

	model := tui.New(ctx, state, tui.Options{Logger: e.logger})
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		e.logger.Error("program exited with error", "err", err)
		return cli.Exit(err.Error(), 1)
	}
	return nil
}

// listCmd creates the list command.
func listCmd(e *env) *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List items as JSON",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "open", Usage: "Only items that are not completed"},
		},
		Action: func(c *cli.Context) error {
			if err := e.setup(c); err != nil {
				return err
			}

			output, err := ops.List(ctxOf(c), e.store, ops.ListInput{OpenOnly: c.Bool("open")})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(c.App.Writer, output)
		},
	}
}

// addCmd creates the add command.
func addCmd(e *env) *cli.Command {
	return &cli.Command{
		Name:      "add",
		Usage:     "Add an item; all arguments are joined into its name",
		ArgsUsage: "<name...>",
		Action: func(c *cli.Context) error {
			if err := e.setup(c); err != nil {
				return err
			}

			name := strings.Join(c.Args().Slice(), " ")
			output, err := ops.Add(ctxOf(c), e.store, ops.AddInput{Name: name})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(c.App.Writer, output)
		},
	}
}

// toggleCmd creates the toggle command.
func toggleCmd(e *env) *cli.Command {
	return &cli.Command{
		Name:      "toggle",
		Usage:     "Flip an item between open and completed",
		ArgsUsage: "<id>",
		Action: func(c *cli.Context) error {
			if err := e.setup(c); err != nil {
				return err
			}

			output, err := ops.Toggle(ctxOf(c), e.store, ops.ToggleInput{ID: c.Args().First()})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(c.App.Writer, output)
		},
	}
}

// deleteCmd creates the delete command.
func deleteCmd(e *env) *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Usage:     "Delete an item permanently",
		ArgsUsage: "<id>",
		Action: func(c *cli.Context) error {
			if err := e.setup(c); err != nil {
				return err
			}

			output, err := ops.Delete(ctxOf(c), e.store, ops.DeleteInput{ID: c.Args().First()})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(c.App.Writer, output)
		},
	}
}

// exportCmd creates the export command. Without --output the rendered
// checklist is printed as is, not wrapped in JSON.
func exportCmd(e *env) *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Render items as a markdown task list or HTML",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Value: ops.FormatMarkdown, Usage: "Output format: markdown|html"},
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "Write to this file instead of stdout"},
		},
		Action: func(c *cli.Context) error {
			if err := e.setup(c); err != nil {
				return err
			}

			output, err := ops.Export(ctxOf(c), e.store, ops.ExportInput{
				Format: c.String("format"),
				Path:   c.String("output"),
			})
			if err != nil {
				return outputError(err)
			}

			if output.Path != "" {
				return outputJSON(c.App.Writer, output)
			}
			_, err = io.WriteString(c.App.Writer, output.Content)
			return err
		},
	}
}

// mcpCmd creates the mcp command.
func mcpCmd(e *env) *cli.Command {
	return &cli.Command{
		Name:  "mcp",
		Usage: "Serve the todo tools over MCP stdio",
		Action: func(c *cli.Context) error {
			if err := e.setup(c); err != nil {
				return err
			}

			if unknown := mcp.ValidateDisabledTools(e.cfg.DisabledTools); len(unknown) > 0 {
				e.logger.Warn("unknown tools in disabled_tools", "tools", unknown, "known", mcp.AllToolNames())
			}
			e.logger.Info("mcp server starting", "db", e.store.Path(), "version", Version)

			if err := mcp.Run(e.store, e.cfg, e.logger, Version); err != nil {
				e.logger.Error("mcp server stopped", "err", err)
				return cli.Exit(err.Error(), 1)
			}
			return nil
		},
	}
}

// configCmd creates the config command.
func configCmd(e *env) *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Print the effective configuration as JSON",
		Action: func(c *cli.Context) error {
			if err := e.loadConfig(c); err != nil {
				return cli.Exit(err.Error(), 1)
			}
			return outputJSON(c.App.Writer, e.cfg)
		},
	}
}

// Helper functions

// outputJSON writes v to w as indented JSON.
func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputError formats error for CLI.
func outputError(err error) error {
	if todoErr, ok := err.(*errors.TodoError); ok {
		return cli.Exit(fmt.Sprintf("[%s] %s", todoErr.Code, todoErr.Message), 1)
	}
	return cli.Exit(err.Error(), 1)
}
