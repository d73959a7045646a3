package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/pluqqy/dialpad/pkg/directory"
	"github.com/pluqqy/dialpad/pkg/models"
)

func testDirectory(pinned string) *directory.Directory {
	entries := []directory.Entry{
		{Key: "KZ", Primary: "Kazakhstan", Secondary: "+7"},
		{Key: "US", Primary: "United States", Secondary: "+1"},
		{Key: "GB", Primary: "United Kingdom", Secondary: "+44"},
	}
	return directory.Build(entries, directory.Options{
		Pinned: pinned,
		Common: []string{"GB"},
		Locale: language.English,
	})
}

func newTestPicker(t *testing.T) *PickerModel {
	t.Helper()
	p := NewPickerModel(testDirectory("US"), NewTheme(models.DefaultSettings().UI), "", true)
	p.SetSize(80, 30)
	return p
}

func selectedKey(t *testing.T, p *PickerModel) string {
	t.Helper()
	entry, ok := p.Selected()
	require.True(t, ok)
	return entry.Key
}

func TestPickerNavigation(t *testing.T) {
	p := newTestPicker(t)

	// Current, Common, K, U
	assert.Equal(t, "US", selectedKey(t, p))

	p.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, p.Cursor())

	p.Update(tea.KeyMsg{Type: tea.KeyDown})
	p.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 2, p.Cursor())
	assert.Equal(t, "KZ", selectedKey(t, p))

	p.Update(tea.KeyMsg{Type: tea.KeyPgDown})
	assert.Equal(t, 4, p.Cursor())
	assert.Equal(t, "US", selectedKey(t, p))

	p.Update(tea.KeyMsg{Type: tea.KeyPgUp})
	assert.Equal(t, 0, p.Cursor())
}

func TestPickerSearchAndSelect(t *testing.T) {
	p := newTestPicker(t)
	p.Update(tea.KeyMsg{Type: tea.KeyDown})

	for _, r := range "uni" {
		p.Update(runes(string(r)))
	}
	assert.Equal(t, "uni", p.Query())
	assert.Equal(t, 0, p.Cursor())
	assert.Equal(t, "GB", selectedKey(t, p))
	assert.Contains(t, p.View(), "2 matches")

	_, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	msg, ok := cmd().(RegionSelectedMsg)
	require.True(t, ok)
	assert.Equal(t, "GB", msg.Entry.Key)
}

func TestPickerNoMatches(t *testing.T) {
	p := newTestPicker(t)

	for _, r := range "zzz" {
		p.Update(runes(string(r)))
	}
	_, ok := p.Selected()
	assert.False(t, ok)
	assert.Contains(t, p.View(), "No regions match")

	_, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)

	p.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 0, p.Cursor())
}

func TestPickerEscape(t *testing.T) {
	p := newTestPicker(t)
	p.Update(runes("k"))
	assert.Equal(t, "k", p.Query())

	_, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, cmd)
	assert.Equal(t, "", p.Query())

	_, cmd = p.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.IsType(t, PickerClosedMsg{}, cmd())
}

func TestRegionTableEmptyState(t *testing.T) {
	table := NewRegionTable(40, 10, NewTheme(models.DefaultSettings().UI))

	table.SetSections(nil, "")
	assert.Contains(t, table.View(), "No regions.")

	table.SetSections(nil, "+999")
	assert.Contains(t, table.View(), `No regions match "+999"`)
}

func TestRegionTableScrollsToCursor(t *testing.T) {
	table := NewRegionTable(60, 3, NewTheme(models.DefaultSettings().UI))
	table.SetSections(testDirectory("US").Sections(), "")

	table.SetCursor(4)
	assert.Equal(t, table.cursorLine()-table.Viewport.Height+1, table.Viewport.YOffset)

	table.SetCursor(0)
	assert.Equal(t, 0, table.Viewport.YOffset)
}
