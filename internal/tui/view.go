package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hpungsan/todo/internal/app"
)

// NewEntryLabel is the text of the synthetic first row.
const NewEntryLabel = "New Entry"

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.State().Snapshot()

	var b strings.Builder
	b.WriteString(m.renderTitle(snap))
	b.WriteString("\n\n")

	if snap.Mode == app.Adding {
		b.WriteString(m.renderModal(snap))
	} else {
		b.WriteString(m.renderList(snap))
	}

	b.WriteString("\n\n")
	b.WriteString(m.renderFooter(snap))
	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(statusStyle.Render("error: " + m.status))
	}
	return b.String()
}

func (m Model) renderTitle(snap app.Snapshot) string {
	counts := fmt.Sprintf("%d open · %d total", snap.OpenCount(), len(snap.Items))
	return titleStyle.Render("todo") + " " + countStyle.Render(counts)
}

// renderList draws the visible window of rows, new entry row first.
func (m Model) renderList(snap app.Snapshot) string {
	count := len(snap.Items) + 1
	visible := m.listHeight()
	first := min(m.offset, max(count-visible, 0))
	last := min(first+visible, count)

	cursorRow := snap.Selection.Cursor() + 1
	rows := make([]string, 0, last-first)
	for row := first; row < last; row++ {
		rows = append(rows, m.renderRow(snap, row, row == cursorRow))
	}
	return strings.Join(rows, "\n")
}

func (m Model) renderRow(snap app.Snapshot, row int, selected bool) string {
	prefix := "  "
	if selected {
		prefix = "> "
	}

	var text string
	if row == 0 {
		text = newEntryStyle.Render("+ " + NewEntryLabel)
	} else {
		it := snap.Items[row-1]
		if it.Completed {
			text = "[x] " + completedStyle.Render(it.Name)
		} else {
			text = "[ ] " + it.Name
		}
	}

	line := prefix + text
	if selected {
		line = selectedStyle.Render(line)
	}
	if m.width > 0 {
		line = lipgloss.NewStyle().MaxWidth(m.width).Render(line)
	}
	return line
}

// renderModal draws the add prompt centered in the list area.
func (m Model) renderModal(snap app.Snapshot) string {
	body := snap.Input + "█"
	if !snap.HasInput() {
		body += "\n" + countStyle.Render("type a name, enter to save")
	}
	box := modalStyle.Render(modalTitleStyle.Render("Add item") + "\n" + body)
	if m.width == 0 || m.height == 0 {
		return box
	}
	return lipgloss.Place(m.width, m.listHeight(), lipgloss.Center, lipgloss.Center, box)
}

func (m Model) renderFooter(snap app.Snapshot) string {
	if snap.Mode == app.Adding {
		return m.help.ShortHelpView(m.keys.AddingHelp())
	}
	return m.help.ShortHelpView(m.keys.BrowsingHelp())
}
