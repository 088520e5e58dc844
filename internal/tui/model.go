// Package tui runs the interactive todo screen on bubbletea. It owns the
// application state for the lifetime of the program and turns key messages
// into router events.
package tui

import (
	"context"
	stderrors "errors"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/hpungsan/todo/internal/app"
	"github.com/hpungsan/todo/internal/errors"
	"github.com/hpungsan/todo/internal/logging"
)

// chromeHeight is the number of lines outside the list: title, blank,
// blank, footer and status.
const chromeHeight = 5

// Options configures a Model. Zero values are usable.
type Options struct {
	Keys   *KeyMap
	Logger *log.Logger
}

// Model is the bubbletea model for the todo screen.
type Model struct {
	ctx    context.Context
	router *app.Router
	keys   KeyMap
	help   help.Model
	logger *log.Logger

	width  int
	height int
	offset int // first visible list row

	status   string // last action error, cleared by the next key
	quitting bool
}

// New wraps state in a Model. Action errors are logged and shown on the
// status line; they never stop the program.
func New(ctx context.Context, state *app.State, opts Options) Model {
	keys := DefaultKeyMap
	if opts.Keys != nil {
		keys = *opts.Keys
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	reporter := app.ReporterFunc(func(err error) {
		logger.Error("action failed", "code", errors.CodeOf(err), "err", err)
	})

	return Model{
		ctx:    ctx,
		router: app.NewRouter(state, reporter),
		keys:   keys,
		help:   help.New(),
		logger: logger,
	}
}

// State returns the wrapped application state.
func (m Model) State() *app.State {
	return m.router.State()
}

// Status returns the message shown on the status line.
func (m Model) Status() string {
	return m.status
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.offset = scrollOffset(m.offset, m.cursorRow(), m.rowCount(), m.listHeight())
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			m.quitting = true
			return m, tea.Quit
		}

		m.status = ""
		for _, ev := range m.keys.Events(msg) {
			res, err := m.router.Dispatch(m.ctx, ev)
			if err != nil {
				m.status = statusText(err)
			}
			if res.Quit {
				m.quitting = true
				return m, tea.Quit
			}
		}
		m.offset = scrollOffset(m.offset, m.cursorRow(), m.rowCount(), m.listHeight())
		return m, nil
	}

	return m, nil
}

// statusText is the user-facing form of an action error.
func statusText(err error) string {
	var todoErr *errors.TodoError
	if stderrors.As(err, &todoErr) {
		return todoErr.Message
	}
	return err.Error()
}

// cursorRow is the list row under the cursor. Row 0 is the new entry row.
func (m Model) cursorRow() int {
	return m.State().Selection().Cursor() + 1
}

// rowCount is the number of list rows including the new entry row.
func (m Model) rowCount() int {
	return len(m.State().Items()) + 1
}

// listHeight is the number of list rows that fit on screen. Before the
// first WindowSizeMsg every row fits.
func (m Model) listHeight() int {
	if m.height == 0 {
		return m.rowCount()
	}
	return max(m.height-chromeHeight, 1)
}

// scrollOffset returns the first visible row so that row stays on screen,
// moving the window as little as possible.
func scrollOffset(offset, row, count, visible int) int {
	if visible <= 0 || count <= visible {
		return 0
	}
	if row < offset {
		offset = row
	}
	if row >= offset+visible {
		offset = row - visible + 1
	}
	return min(max(offset, 0), count-visible)
}
