package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pluqqy/dialpad/pkg/directory"
)

// RegionSelectedMsg reports the entry picked in the region picker
type RegionSelectedMsg struct {
	Entry directory.Entry
}

// PickerClosedMsg reports that the picker was dismissed without a choice
type PickerClosedMsg struct{}

// PickerModel is the searchable region list
type PickerModel struct {
	view   *directory.View
	search *SearchBar
	table  *RegionTable
	cursor int
	width  int
	height int
	theme  Theme
}

// NewPickerModel shows dir and focuses the search bar
func NewPickerModel(dir *directory.Directory, theme Theme, placeholder string, showFlag bool) *PickerModel {
	m := &PickerModel{
		view:   directory.NewView(dir),
		search: NewSearchBar(theme, placeholder),
		table:  NewRegionTable(80, 20, theme),
		theme:  theme,
	}
	m.table.ShowFlag = showFlag
	m.search.SetActive(true)
	m.refresh()
	return m
}

// Init focuses the search input
func (m *PickerModel) Init() tea.Cmd {
	return m.search.SetActive(true)
}

// SetSize lays out the search bar above the table
func (m *PickerModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.search.SetWidth(width)
	// Search bar (3) + title (1) + help (1) + spacing
	m.table.SetSize(width, max(height-7, 3))
}

// Cursor returns the selected row
func (m *PickerModel) Cursor() int {
	return m.cursor
}

// Query returns the current search text
func (m *PickerModel) Query() string {
	return m.view.Query()
}

// Selected returns the entry under the cursor
func (m *PickerModel) Selected() (directory.Entry, bool) {
	return m.view.Entry(m.cursor)
}

// Update handles navigation and search input
func (m *PickerModel) Update(msg tea.Msg) (*PickerModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}

	switch keyMsg.Type {
	case tea.KeyUp, tea.KeyCtrlP:
		m.moveCursor(-1)
		return m, nil
	case tea.KeyDown, tea.KeyCtrlN, tea.KeyTab:
		m.moveCursor(1)
		return m, nil
	case tea.KeyPgUp:
		m.moveCursor(-m.table.Viewport.Height)
		return m, nil
	case tea.KeyPgDown:
		m.moveCursor(m.table.Viewport.Height)
		return m, nil
	case tea.KeyEnter:
		entry, ok := m.Selected()
		if !ok {
			return m, nil
		}
		return m, func() tea.Msg { return RegionSelectedMsg{Entry: entry} }
	case tea.KeyEsc:
		if m.search.Value() != "" {
			m.search.Reset()
			m.refresh()
			return m, nil
		}
		return m, func() tea.Msg { return PickerClosedMsg{} }
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.refresh()
	return m, cmd
}

func (m *PickerModel) moveCursor(delta int) {
	rows := m.view.Rows()
	if rows == 0 {
		return
	}
	m.cursor = max(0, min(m.cursor+delta, rows-1))
	m.table.SetCursor(m.cursor)
}

// refresh recomputes the view from the search text
func (m *PickerModel) refresh() {
	if m.view.SetQuery(strings.TrimSpace(m.search.Value())) {
		m.cursor = 0
	}
	m.table.Cursor = m.cursor
	m.table.SetSections(m.view.Sections(), m.view.Query())
}

// View renders the picker
func (m *PickerModel) View() string {
	title := m.theme.Title.Render("Choose a region")
	count := m.theme.Dim.Render(countLabel(m.view))
	header := lipgloss.JoinHorizontal(lipgloss.Top, " ", title, "  ", count)

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		m.search.View(),
		lipgloss.NewStyle().PaddingLeft(1).Render(m.table.View()),
	)
}

func countLabel(v *directory.View) string {
	if !v.Filtering() {
		return ""
	}
	switch n := len(v.Results()); n {
	case 0:
		return "no matches"
	case 1:
		return "1 match"
	default:
		return fmt.Sprintf("%d matches", n)
	}
}
