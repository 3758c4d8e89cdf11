// Package term draws a rendered table for a terminal.
package term

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	xterm "golang.org/x/term"

	"github.com/3-lines-studio/datatable"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Background(lipgloss.Color("252")).
			Foreground(lipgloss.Color("235"))

	cellStyle = lipgloss.NewStyle().Padding(0, 1)

	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Render draws t with a border. A positive width caps the table width.
func Render(t *datatable.Table, width int) string {
	headers := make([]string, len(t.Header))
	for i, h := range t.Header {
		headers[i] = h.Label
	}

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		Rows(Rows(t)...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	if width > 0 {
		tbl = tbl.Width(width)
	}

	return tbl.String()
}

// Rows returns the plain text of every body cell.
func Rows(t *datatable.Table) [][]string {
	rows := make([][]string, len(t.Rows))
	for j, row := range t.Rows {
		cells := make([]string, len(row.Cells))
		for i, cell := range row.Cells {
			cells[i] = cell.Text()
		}
		rows[j] = cells
	}
	return rows
}

// Width returns the width of stdout, or 0 when it is not a terminal.
func Width() int {
	fd := int(os.Stdout.Fd())
	if !xterm.IsTerminal(fd) {
		return 0
	}
	w, _, err := xterm.GetSize(fd)
	if err != nil {
		return 0
	}
	return w
}
