package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/pluqqy/dialpad/pkg/field"
)

// Version is shown in the header; set by the binary
var Version = "dev"

func renderHeader(width int, theme Theme, f *field.Field) string {
	title := theme.Title.Render("dialpad")
	version := theme.Dim.Render(Version)

	region := f.Region()
	if flag := f.Flag(); flag != "" {
		region = flag + " " + region
	}
	regionRendered := theme.Normal.Render(region)

	headerPadding := lipgloss.NewStyle().
		PaddingLeft(1).
		PaddingRight(1).
		Width(width)

	left := lipgloss.JoinHorizontal(lipgloss.Top, title, " ", version)
	gap := max(width-2-lipgloss.Width(left)-lipgloss.Width(regionRendered), 1)

	return headerPadding.Render(left+strings.Repeat(" ", gap)+regionRendered) + "\n"
}

type helpItem struct {
	key  string
	desc string
}

func helpItems(state sessionState) []helpItem {
	if state == pickerView {
		return []helpItem{
			{"↑/↓", "move"},
			{"pgup/pgdn", "page"},
			{"enter", "select"},
			{"esc", "clear/close"},
			{"ctrl+c", "quit"},
		}
	}
	return []helpItem{
		{"tab", "region"},
		{"←/→", "move"},
		{"ctrl+u", "clear"},
		{"ctrl+v", "paste"},
		{"ctrl+y", "copy E.164"},
		{"esc", "quit"},
	}
}

func renderHelp(width int, theme Theme, state sessionState) string {
	parts := make([]string, 0, 8)
	for _, item := range helpItems(state) {
		parts = append(parts, item.key+" "+item.desc)
	}
	wrapped := wordwrap.String(strings.Join(parts, " • "), max(width-2, 20))

	lines := strings.Split(wrapped, "\n")
	for i, line := range lines {
		lines[i] = " " + theme.Dim.Render(line)
	}
	return "\n" + strings.Join(lines, "\n")
}
