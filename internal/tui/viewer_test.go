package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/3-lines-studio/datatable"
)

type city struct {
	Name    string
	Country string
}

func (c city) RowKey() string { return c.Name }

func newTable(t *testing.T) *datatable.Table {
	t.Helper()
	table, err := datatable.Render(
		[]city{{"Lima", "Peru"}, {"Oslo", "Norway"}, {"Kyoto", "Japan"}},
		[]datatable.Column[city]{
			{Key: "Name", Header: "City"},
			{Key: "Country", Header: "Country"},
		},
	)
	require.NoError(t, err)
	return table
}

func TestModelNavigation(t *testing.T) {
	table := newTable(t)
	m := NewModel(table, 0)

	assert.Equal(t, "Lima", m.SelectedKey(table))

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(Model)
	assert.Equal(t, "Oslo", m.SelectedKey(table))

	view := m.View()
	assert.Contains(t, view, "City")
	assert.Contains(t, view, "Kyoto")
}

func TestModelQuit(t *testing.T) {
	m := NewModel(newTable(t), 5)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
