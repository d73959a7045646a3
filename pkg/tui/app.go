package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/pluqqy/dialpad/pkg/directory"
	"github.com/pluqqy/dialpad/pkg/field"
)

type sessionState int

const (
	fieldView sessionState = iota
	pickerView
)

// statusDuration is how long a StatusMsg stays on screen
const statusDuration = 3 * time.Second

// DirectoryFunc builds the picker's directory with pinned as the current region
type DirectoryFunc func(pinned string) *directory.Directory

// Options configures the App
type Options struct {
	Theme             Theme
	ShowFlag          bool
	SearchPlaceholder string
	Directory         DirectoryFunc
	OnSelect          directory.SelectFunc // called after a picked region is applied
	Logger            *zap.Logger
}

type App struct {
	state       sessionState
	phone       *PhoneFieldModel
	picker      *PickerModel
	opts        Options
	logger      *zap.Logger
	width       int
	height      int
	statusMsg   string
	statusSeq   int // bumped on every status change
}

func NewApp(f *field.Field, opts Options) *App {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &App{
		state:  fieldView,
		phone:  NewPhoneFieldModel(f, opts.Theme, opts.ShowFlag),
		opts:   opts,
		logger: logger,
	}
}

func (a *App) Init() tea.Cmd {
	return a.phone.Focus()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.phone.SetWidth(msg.Width)
		if a.picker != nil {
			a.picker.SetSize(msg.Width, a.bodyHeight())
		}
		return a, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}
		if a.state == fieldView {
			switch msg.Type {
			case tea.KeyTab, tea.KeyCtrlR:
				return a, a.openPicker()
			case tea.KeyCtrlY:
				return a, a.phone.CopyE164()
			case tea.KeyEsc:
				a.phone.Blur()
				return a, tea.Quit
			}
		}

	case StatusMsg:
		a.statusMsg = string(msg)
		a.statusSeq++
		seq := a.statusSeq
		return a, tea.Tick(statusDuration, func(time.Time) tea.Msg {
			return clearStatusMsg{seq: seq}
		})

	case PersistentStatusMsg:
		a.statusMsg = string(msg)
		a.statusSeq++
		return a, nil

	case clearStatusMsg:
		// A newer status replaced the one this tick belonged to
		if msg.seq != a.statusSeq {
			return a, nil
		}
		a.statusMsg = ""
		return a, nil

	case RegionSelectedMsg:
		a.closePicker()
		if err := a.phone.Select(msg.Entry); err != nil {
			a.logger.Warn("region selection failed", zap.String("region", msg.Entry.Key), zap.Error(err))
			failed := PersistentStatusMsg("✗ " + err.Error())
			return a, tea.Batch(a.phone.Focus(), func() tea.Msg { return failed })
		}
		a.logger.Debug("region selected", zap.String("region", msg.Entry.Key))
		if a.opts.OnSelect != nil {
			a.opts.OnSelect(msg.Entry)
		}
		return a, tea.Batch(a.phone.Focus(), statusCmd("Region set to "+msg.Entry.Primary+" ("+msg.Entry.Secondary+")"))

	case PickerClosedMsg:
		a.closePicker()
		return a, a.phone.Focus()
	}

	var cmd tea.Cmd
	switch a.state {
	case fieldView:
		a.phone, cmd = a.phone.Update(msg)
	case pickerView:
		if a.picker != nil {
			a.picker, cmd = a.picker.Update(msg)
		}
	}
	return a, cmd
}

// openPicker rebuilds the directory so the current region is pinned
func (a *App) openPicker() tea.Cmd {
	if a.opts.Directory == nil {
		return statusCmd("✗ No regions available")
	}
	dir := a.opts.Directory(a.phone.Field().Region())
	a.picker = NewPickerModel(dir, a.opts.Theme, a.opts.SearchPlaceholder, a.opts.ShowFlag)
	a.picker.SetSize(a.width, a.bodyHeight())
	a.state = pickerView
	return a.picker.Init()
}

func (a *App) closePicker() {
	a.state = fieldView
	a.picker = nil
}

func (a *App) bodyHeight() int {
	// Header (2) + help (2) + status (1)
	return max(a.height-5, 5)
}

func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}

	var body string
	switch a.state {
	case pickerView:
		if a.picker != nil {
			body = a.picker.View()
		}
	default:
		body = a.phone.View()
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		renderHeader(a.width, a.opts.Theme, a.phone.Field()),
		body,
		renderHelp(a.width, a.opts.Theme, a.state),
	)

	if a.statusMsg != "" {
		content = lipgloss.JoinVertical(lipgloss.Top, content, a.opts.Theme.Status.Render(a.statusMsg))
	}

	return content
}

// StatusMsg is shown in the status bar and cleared after statusDuration
type StatusMsg string

// PersistentStatusMsg stays in the status bar until replaced
type PersistentStatusMsg string

type clearStatusMsg struct {
	seq int
}

func statusCmd(s string) tea.Cmd {
	return func() tea.Msg { return StatusMsg(s) }
}
