package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"

	"github.com/pluqqy/dialpad/pkg/directory"
)

// RegionTable renders directory sections into a scrolling viewport
type RegionTable struct {
	Width    int
	Height   int
	Sections []directory.Section
	Cursor   int
	Query    string
	ShowFlag bool
	Viewport viewport.Model
	theme    Theme
}

// NewRegionTable creates a table renderer
func NewRegionTable(width, height int, theme Theme) *RegionTable {
	return &RegionTable{
		Width:    width,
		Height:   height,
		Viewport: viewport.New(max(width-4, 1), max(height, 1)),
		theme:    theme,
	}
}

// SetSize updates the dimensions of the table
func (r *RegionTable) SetSize(width, height int) {
	r.Width = width
	r.Height = height
	r.Viewport.Width = max(width-4, 1)
	r.Viewport.Height = max(height, 1)
	r.updateContent()
	r.updateViewportScroll()
}

// SetSections replaces the rows; query is only used for the empty state
func (r *RegionTable) SetSections(sections []directory.Section, query string) {
	r.Sections = sections
	r.Query = query
	r.updateContent()
	r.updateViewportScroll()
}

// SetCursor updates the cursor position
func (r *RegionTable) SetCursor(cursor int) {
	r.Cursor = cursor
	r.updateContent()
	r.updateViewportScroll()
}

// View renders the table
func (r *RegionTable) View() string {
	return r.Viewport.View()
}

func (r *RegionTable) updateContent() {
	r.Viewport.SetContent(r.buildContent())
}

func (r *RegionTable) buildContent() string {
	var content strings.Builder

	if len(r.Sections) == 0 {
		msg := "No regions."
		if r.Query != "" {
			msg = fmt.Sprintf("No regions match %q.\n\nTry a region name, a code such as DE or a dial prefix such as +49.", r.Query)
		}
		content.WriteString(r.theme.EmptyState.Render(wordwrap.String(msg, max(r.Viewport.Width, 10))))
		return content.String()
	}

	nameWidth := max(r.Viewport.Width-18, 8)
	row := 0
	for i, s := range r.Sections {
		if s.HasTitle {
			if i > 0 {
				content.WriteString("\n")
			}
			content.WriteString(r.theme.SectionHeader.Render(sectionTitle(s)) + "\n")
		}

		for _, e := range s.Entries {
			prefix := "  "
			style := r.theme.Normal
			if row == r.Cursor {
				prefix = "▸ "
				style = r.theme.Selected
			}

			flag := ""
			if r.ShowFlag {
				flag = directory.Flag(e.Key) + " "
			}
			name := fmt.Sprintf("%-*s", nameWidth, truncate.StringWithTail(e.Primary, uint(nameWidth), "…"))
			line := fmt.Sprintf("%s%s  %-3s %6s", flag, name, e.Key, e.Secondary)

			content.WriteString(prefix + style.Render(line))
			row++
			if !r.lastRow(i, row) {
				content.WriteString("\n")
			}
		}
	}

	return content.String()
}

func (r *RegionTable) lastRow(section, row int) bool {
	if section < len(r.Sections)-1 {
		return false
	}
	total := 0
	for _, s := range r.Sections {
		total += len(s.Entries)
	}
	return row == total
}

// cursorLine is the viewport line the cursor row is drawn on
func (r *RegionTable) cursorLine() int {
	line, row := 0, 0
	for i, s := range r.Sections {
		if s.HasTitle {
			if i > 0 {
				line++ // Empty line between sections
			}
			line++ // Section header line
		}
		if r.Cursor < row+len(s.Entries) {
			return line + r.Cursor - row
		}
		line += len(s.Entries)
		row += len(s.Entries)
	}
	return line
}

// updateViewportScroll ensures the cursor is visible in the viewport
func (r *RegionTable) updateViewportScroll() {
	if len(r.Sections) == 0 {
		r.Viewport.SetYOffset(0)
		return
	}

	currentLine := r.cursorLine()
	if r.Cursor == 0 {
		currentLine = 0 // Keep the first section header visible
	}
	if currentLine < r.Viewport.YOffset {
		r.Viewport.SetYOffset(currentLine)
	} else if currentLine >= r.Viewport.YOffset+r.Viewport.Height {
		r.Viewport.SetYOffset(currentLine - r.Viewport.Height + 1)
	}
}

func sectionTitle(s directory.Section) string {
	switch {
	case s.Kind == directory.SectionPinned:
		return fmt.Sprintf("%s Current", s.IndexTitle)
	case s.Title != "":
		return fmt.Sprintf("▸ %s", strings.ToUpper(s.Title))
	default:
		return s.IndexTitle
	}
}
