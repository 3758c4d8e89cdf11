// Package tui shows a rendered table in an interactive terminal view.
package tui

import (
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/3-lines-studio/datatable"
	"github.com/3-lines-studio/datatable/internal/adapters/term"
)

const maxColumnWidth = 40

var baseStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.NormalBorder()).
	BorderForeground(lipgloss.Color("240"))

type Model struct {
	table table.Model
}

func NewModel(t *datatable.Table, height int) Model {
	rows := term.Rows(t)

	columns := make([]table.Column, len(t.Header))
	for i, h := range t.Header {
		width := lipgloss.Width(h.Label)
		for _, row := range rows {
			width = max(width, lipgloss.Width(row[i]))
		}
		columns[i] = table.Column{Title: h.Label, Width: min(width, maxColumnWidth)}
	}

	tableRows := make([]table.Row, len(rows))
	for j, row := range rows {
		tableRows[j] = table.Row(row)
	}

	if height <= 0 || height > len(rows)+1 {
		height = len(rows) + 1
	}

	tm := table.New(
		table.WithColumns(columns),
		table.WithRows(tableRows),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	tm.SetStyles(styles)

	return Model{table: tm}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return baseStyle.Render(m.table.View()) + "\n"
}

// SelectedKey is the row key under the cursor.
func (m Model) SelectedKey(t *datatable.Table) string {
	i := m.table.Cursor()
	if i < 0 || i >= len(t.Rows) {
		return ""
	}
	return t.Rows[i].Key
}

// Run blocks until the viewer is closed.
func Run(t *datatable.Table, height int) error {
	_, err := tea.NewProgram(NewModel(t, height)).Run()
	return err
}
