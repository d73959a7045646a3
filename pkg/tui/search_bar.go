package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// SearchBar is the picker's query input
type SearchBar struct {
	input    textinput.Model
	isActive bool
	width    int
	theme    Theme
}

// NewSearchBar creates a new search bar component
func NewSearchBar(theme Theme, placeholder string) *SearchBar {
	ti := textinput.New()
	ti.Placeholder = placeholder
	if ti.Placeholder == "" {
		ti.Placeholder = "Search..."
	}
	ti.CharLimit = 64
	ti.Width = 50 // Default width, will be adjusted
	ti.Prompt = ""

	return &SearchBar{
		input: ti,
		theme: theme,
	}
}

// SetActive sets whether the search bar is the active pane
func (s *SearchBar) SetActive(active bool) tea.Cmd {
	s.isActive = active
	if active {
		return s.input.Focus()
	}
	s.input.Blur()
	return nil
}

// SetWidth sets the width for the search bar
func (s *SearchBar) SetWidth(width int) {
	s.width = width
	// Width - 4 (borders) - 2 (outer padding) - 5 (icon with spaces) - 1 (space after icon)
	s.input.Width = max(width-12, 1)
}

// Value returns the current search text
func (s *SearchBar) Value() string {
	return s.input.Value()
}

// SetValue sets the search text
func (s *SearchBar) SetValue(value string) {
	s.input.SetValue(value)
}

// Update handles tea messages for the search bar
func (s *SearchBar) Update(msg tea.Msg) (*SearchBar, tea.Cmd) {
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// View renders the search bar
func (s *SearchBar) View() string {
	border := s.theme.InactiveBorder
	icon := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorNormal)).
		Bold(true).
		Render(" ⌕ ")
	if s.isActive {
		border = s.theme.ActiveBorder
		icon = lipgloss.NewStyle().
			Background(s.theme.Accent).
			Foreground(lipgloss.Color(ColorWhite)).
			Bold(true).
			Padding(0, 1).
			Render("⌕")
	}

	searchStyle := border.
		Width(max(s.width-4, 1)).
		Padding(0, 1)

	searchContent := lipgloss.JoinHorizontal(lipgloss.Center, icon, " ", s.input.View())

	outerPadding := lipgloss.NewStyle().
		PaddingLeft(1).
		PaddingRight(1)

	return outerPadding.Render(searchStyle.Render(searchContent))
}

// Reset clears the search input
func (s *SearchBar) Reset() {
	s.input.SetValue("")
}
