package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/pluqqy/dialpad/pkg/models"
)

// Fixed colors; the configurable ones live in Theme
const (
	ColorSelected = "236" // Dark gray for background selection
	ColorNormal   = "245" // Light gray for normal text
	ColorWarning  = "214" // Orange/yellow for warnings
	ColorWhite    = "255" // White
	ColorInactive = "240" // Gray for inactive elements
)

// Theme holds the styles every view renders with
type Theme struct {
	Accent  lipgloss.Color
	Muted   lipgloss.Color
	Error   lipgloss.Color
	Success lipgloss.Color
	Border  lipgloss.Color

	ActiveBorder   lipgloss.Style
	InactiveBorder lipgloss.Style
	Selected       lipgloss.Style
	Normal         lipgloss.Style
	Dim            lipgloss.Style
	SectionHeader  lipgloss.Style
	ErrorText      lipgloss.Style
	SuccessText    lipgloss.Style
	EmptyState     lipgloss.Style
	Status         lipgloss.Style
	Title          lipgloss.Style
}

// NewTheme builds the styles from UI settings
func NewTheme(ui models.UISettings) Theme {
	t := Theme{
		Accent:  colorOr(ui.Accent, "170"),
		Muted:   colorOr(ui.Muted, "241"),
		Error:   colorOr(ui.Error, "196"),
		Success: colorOr(ui.Success, "82"),
		Border:  colorOr(ui.Border, "62"),
	}

	t.ActiveBorder = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Accent)

	t.InactiveBorder = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorInactive))

	t.Selected = lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(lipgloss.Color(ColorSelected)).
		Bold(true)

	t.Normal = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorNormal))

	t.Dim = lipgloss.NewStyle().
		Foreground(t.Muted)

	t.SectionHeader = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorWarning))

	t.ErrorText = lipgloss.NewStyle().
		Foreground(t.Error)

	t.SuccessText = lipgloss.NewStyle().
		Foreground(t.Success)

	t.EmptyState = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorWarning)).
		Bold(true)

	t.Status = lipgloss.NewStyle().
		Background(t.Border).
		Foreground(lipgloss.Color("230")).
		Padding(0, 1)

	t.Title = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	return t
}

func colorOr(value, fallback string) lipgloss.Color {
	if value == "" {
		return lipgloss.Color(fallback)
	}
	return lipgloss.Color(value)
}
