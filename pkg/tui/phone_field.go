package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pluqqy/dialpad/pkg/directory"
	"github.com/pluqqy/dialpad/pkg/field"
)

// Clipboard access, swapped out in tests
var (
	readClipboard  = clipboard.ReadAll
	writeClipboard = clipboard.WriteAll
)

// PhoneFieldModel renders a field.Field through a textinput. Keystrokes never
// reach the textinput: they become field edits and the textinput only mirrors
// the resulting text and caret.
type PhoneFieldModel struct {
	field    *field.Field
	input    textinput.Model
	paste    *PasteCleaner
	theme    Theme
	showFlag bool
	width    int
}

// NewPhoneFieldModel wraps f
func NewPhoneFieldModel(f *field.Field, theme Theme, showFlag bool) *PhoneFieldModel {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 0
	ti.Width = 30

	m := &PhoneFieldModel{
		field:    f,
		input:    ti,
		paste:    NewPasteCleaner(),
		theme:    theme,
		showFlag: showFlag,
	}
	m.sync()
	return m
}

// Field returns the wrapped field
func (m *PhoneFieldModel) Field() *field.Field {
	return m.field
}

// SetWidth sets the rendered width
func (m *PhoneFieldModel) SetWidth(width int) {
	m.width = width
	m.input.Width = max(width-16, 10)
}

// Focus starts editing
func (m *PhoneFieldModel) Focus() tea.Cmd {
	m.field.BeginEditing()
	m.sync()
	return m.input.Focus()
}

// Blur stops editing
func (m *PhoneFieldModel) Blur() {
	m.field.EndEditing()
	m.input.Blur()
	m.sync()
}

// Focused reports whether the field is being edited
func (m *PhoneFieldModel) Focused() bool {
	return m.input.Focused()
}

// Select adopts a region picked in the picker
func (m *PhoneFieldModel) Select(entry directory.Entry) error {
	err := m.field.Select(entry)
	m.sync()
	return err
}

// Update turns key messages into field edits
func (m *PhoneFieldModel) Update(msg tea.Msg) (*PhoneFieldModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.input.Focused() {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	// Edit errors stay on the field and are rendered from field.Err.
	var cmd tea.Cmd
	switch keyMsg.Type {
	case tea.KeyRunes:
		if keyMsg.Paste {
			m.insertPasted(string(keyMsg.Runes))
			break
		}
		_, _ = m.field.Insert(string(keyMsg.Runes))
	case tea.KeyBackspace:
		_, _ = m.field.Backspace()
	case tea.KeyDelete, tea.KeyCtrlD:
		_, _ = m.field.DeleteForward()
	case tea.KeyLeft, tea.KeyCtrlB:
		m.field.MoveCaret(-1)
	case tea.KeyRight, tea.KeyCtrlF:
		m.field.MoveCaret(1)
	case tea.KeyHome, tea.KeyCtrlA:
		m.field.SetCaret(0)
	case tea.KeyEnd, tea.KeyCtrlE:
		m.field.SetCaret(len([]rune(m.field.Text())))
	case tea.KeyCtrlU:
		_ = m.field.SetText("")
		m.field.BeginEditing()
	case tea.KeyCtrlV:
		cmd = m.pasteFromClipboard()
	}

	m.sync()
	return m, cmd
}

func (m *PhoneFieldModel) pasteFromClipboard() tea.Cmd {
	content, err := readClipboard()
	if err != nil {
		return statusCmd(fmt.Sprintf("✗ Failed to read clipboard: %v", err))
	}
	m.insertPasted(content)
	return nil
}

// insertPasted replaces the whole number when the paste carries its own
// country code, and inserts at the caret otherwise.
func (m *PhoneFieldModel) insertPasted(content string) {
	text := m.paste.Clean(content)
	switch {
	case text == "":
	case strings.HasPrefix(text, "+"):
		_ = m.field.SetText(text)
	default:
		_, _ = m.field.Insert(text)
	}
}

// CopyE164 copies the number in E.164 form and reports the outcome
func (m *PhoneFieldModel) CopyE164() tea.Cmd {
	if !m.field.Valid() {
		return statusCmd("✗ Not a complete number yet")
	}
	e164, err := m.field.E164()
	if err != nil {
		return statusCmd(fmt.Sprintf("✗ %v", err))
	}
	if err := writeClipboard(e164); err != nil {
		return statusCmd(fmt.Sprintf("✗ Failed to copy to clipboard: %v", err))
	}
	return statusCmd(fmt.Sprintf("✓ Copied %s to clipboard", e164))
}

// sync mirrors the field into the textinput
func (m *PhoneFieldModel) sync() {
	m.input.Placeholder = m.field.Placeholder()
	m.input.SetValue(m.field.Text())
	m.input.SetCursor(m.field.Caret())
}

// View renders the region button, the input and a status line
func (m *PhoneFieldModel) View() string {
	region := m.field.Region()
	if m.showFlag {
		region = m.field.Flag() + " " + region
	}
	button := lipgloss.NewStyle().
		Foreground(m.theme.Accent).
		Bold(true).
		Render(region + " ▾")

	border := m.theme.InactiveBorder
	if m.input.Focused() {
		border = m.theme.ActiveBorder
	}
	box := border.
		Padding(0, 1).
		Width(max(m.width-4, 20)).
		Render(lipgloss.JoinHorizontal(lipgloss.Center, button, "  ", m.input.View()))

	return lipgloss.JoinVertical(lipgloss.Left, box, " "+m.statusLine())
}

func (m *PhoneFieldModel) statusLine() string {
	if err := m.field.Err(); err != nil {
		return m.theme.ErrorText.Render("✗ " + err.Error())
	}
	if m.field.Valid() {
		e164, _ := m.field.E164()
		return m.theme.SuccessText.Render("✓ " + e164)
	}
	if national := m.field.NationalNumber(); national != "" {
		return m.theme.Dim.Render(fmt.Sprintf("%d digits", len(national)))
	}
	return m.theme.Dim.Render("Enter a phone number")
}
