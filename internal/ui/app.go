package ui

import (
	"fmt"
	"strings"
	"time"

	"stopwatches/internal/clock"
	"stopwatches/internal/stopwatch"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DefaultRefreshInterval is the display tick for running stopwatches (60 Hz).
const DefaultRefreshInterval = time.Second / 60

// DefaultTitle is shown in the header and terminal title.
const DefaultTitle = "Stopwatch"

// headerHeight is the number of lines above the stopwatch list.
const headerHeight = 1

// Options configures NewAppModel. The zero value gives one stopwatch, the
// dark theme, the real clock and a 60 Hz refresh.
type Options struct {
	Clock           clock.Clock
	Observer        stopwatch.Observer // notified alongside the display
	Theme           ThemeName
	Initial         *int // stopwatches created at startup; nil means 1
	RefreshInterval time.Duration
	Title           string
}

// AppModel is the root model: a header, a scrolling list of stopwatch rows
// and a key-hint footer.
type AppModel struct {
	Stopwatches  *stopwatch.Collection
	Focus        *FocusManager
	KeyHandler   *KeyHandler
	Theme        Theme
	ShowFullHelp bool

	display       *displayBoard
	viewport      viewport.Model
	help          help.Model
	interval      time.Duration
	title         string
	width         int
	height        int
	scrollToFocus bool // set by Focus.OnChange
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root application model.
func NewAppModel(opts Options) *AppModel {
	initial := 1
	if opts.Initial != nil {
		initial = max(0, *opts.Initial)
	}
	interval := opts.RefreshInterval
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}
	title := opts.Title
	if title == "" {
		title = DefaultTitle
	}

	display := newDisplayBoard()
	colOpts := []stopwatch.Option{
		stopwatch.WithObserver(stopwatch.NewMultiObserver(display, opts.Observer)),
	}
	if opts.Clock != nil {
		colOpts = append(colOpts, stopwatch.WithClock(opts.Clock))
	}

	vp := viewport.New(0, 0)
	vp.KeyMap = viewport.KeyMap{
		PageDown: key.NewBinding(key.WithKeys("pgdown")),
		PageUp:   key.NewBinding(key.WithKeys("pgup")),
	}

	theme := NewTheme(opts.Theme)
	a := &AppModel{
		Stopwatches: stopwatch.NewCollection(colOpts...),
		Focus:       &FocusManager{},
		KeyHandler:  NewKeyHandler(newRegistry()),
		Theme:       theme,
		display:     display,
		viewport:    vp,
		help:        newHelpModel(theme),
		interval:    interval,
		title:       title,
	}
	a.Focus.OnChange = func(_, _ int) { a.scrollToFocus = true }
	for i := 0; i < initial; i++ {
		a.addStopwatch()
	}
	return a
}

// newRegistry binds the global keys.
func newRegistry() *KeybindRegistry {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("a", msgCmd(AddStopwatchMsg{}), "add")
	reg.BindWithDesc("r", msgCmd(RemoveStopwatchMsg{}), "remove")
	reg.BindWithDesc("d", msgCmd(ToggleThemeMsg{}), "toggle dark mode")
	reg.BindWithDesc("s", msgCmd(StartMsg{}), "start")
	reg.BindWithDesc("t", msgCmd(StopMsg{}), "stop")
	reg.BindWithDesc("x", msgCmd(ResetMsg{}), "reset")
	reg.BindWithDesc("j", msgCmd(FocusNextMsg{}), "next")
	reg.BindWithDesc("k", msgCmd(FocusPrevMsg{}), "prev")
	reg.Bind("down", msgCmd(FocusNextMsg{}))
	reg.Bind("up", msgCmd(FocusPrevMsg{}))
	reg.BindWithDesc("?", msgCmd(ToggleHelpMsg{}), "help")
	reg.BindWithDesc("q", tea.Quit, "quit")
	reg.Bind("ctrl+c", tea.Quit)

	reg.BindWithDesc("SPC a", msgCmd(AddStopwatchMsg{}), "add")
	reg.BindWithDesc("SPC r", msgCmd(RemoveStopwatchMsg{}), "remove")
	reg.BindWithDesc("SPC d", msgCmd(ToggleThemeMsg{}), "toggle dark mode")
	reg.BindWithDesc("SPC q", tea.Quit, "quit")
	return reg
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (a *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: a}
}

// DisplayText returns the formatted elapsed time currently shown for id.
func (a *AppModel) DisplayText(id int) string {
	return a.display.get(id)
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return tea.SetWindowTitle(a.title)
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := a.update(msg)
	a.sync()
	return a, cmd
}

func (a *AppModel) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return nil
	case tea.KeyMsg:
		if consumed, cmd := a.KeyHandler.Handle(msg); consumed {
			return cmd
		}
		var cmd tea.Cmd
		a.viewport, cmd = a.viewport.Update(msg)
		return cmd
	case tea.MouseMsg:
		return a.handleMouse(msg)
	case AddStopwatchMsg:
		a.addStopwatch()
		return nil
	case RemoveStopwatchMsg:
		if inst, ok := a.Stopwatches.RemoveLastStopwatch(); ok {
			a.Focus.Remove(inst.ID)
		}
		return nil
	case ToggleThemeMsg:
		a.Theme = NewTheme(a.Theme.Name.Toggle())
		a.help = newHelpModel(a.Theme)
		return nil
	case ToggleHelpMsg:
		a.ShowFullHelp = !a.ShowFullHelp
		return nil
	case FocusNextMsg:
		a.Focus.Next()
		return nil
	case FocusPrevMsg:
		a.Focus.Prev()
		return nil
	case StartMsg:
		return a.start(a.target(msg.ID))
	case StopMsg:
		a.Stopwatches.Stop(a.target(msg.ID))
		return nil
	case ResetMsg:
		a.Stopwatches.Reset(a.target(msg.ID))
		return nil
	case refreshMsg:
		if a.Stopwatches.Tick(msg.ID, msg.Tag) {
			return refreshCmd(a.interval, msg.ID, msg.Tag)
		}
		return nil
	}
	return nil
}

// target resolves ID 0 to the focused stopwatch.
func (a *AppModel) target(id int) int {
	if id == 0 {
		return a.Focus.Current
	}
	return id
}

// start starts id and schedules its first display tick. A running stopwatch
// shows Stop instead of Start, so starting it again is ignored here.
func (a *AppModel) start(id int) tea.Cmd {
	inst, ok := a.Stopwatches.Get(id)
	if !ok || inst.Running() {
		return nil
	}
	tag, ok := a.Stopwatches.Start(id)
	if !ok {
		return nil
	}
	return refreshCmd(a.interval, id, tag)
}

func (a *AppModel) addStopwatch() {
	inst := a.Stopwatches.AddStopwatch()
	a.Focus.Append(inst.ID)
}

func (a *AppModel) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown {
		var cmd tea.Cmd
		a.viewport, cmd = a.viewport.Update(msg)
		return cmd
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	if msg.Y < headerHeight || msg.Y >= headerHeight+a.viewport.Height {
		return nil
	}
	y := msg.Y - headerHeight + a.viewport.YOffset
	items := a.Stopwatches.Items()
	row := y / rowHeight
	if row < 0 || row >= len(items) {
		return nil
	}
	inst := items[row]
	a.Focus.SetFocus(inst.ID)
	switch hitButton(a.Theme, inst.Running(), msg.X, y%rowHeight) {
	case buttonStart:
		return a.start(inst.ID)
	case buttonStop:
		a.Stopwatches.Stop(inst.ID)
	case buttonReset:
		a.Stopwatches.Reset(inst.ID)
	}
	return nil
}

// size returns the terminal size, falling back to 80x24 before the first
// WindowSizeMsg (and in tests).
func (a *AppModel) size() (int, int) {
	w, h := a.width, a.height
	if w == 0 {
		w = 80
	}
	if h == 0 {
		h = 24
	}
	return w, h
}

// sync lays out the viewport after every update.
func (a *AppModel) sync() {
	w, h := a.size()
	a.help.Width = w
	a.viewport.Width = w
	a.viewport.Height = max(0, h-headerHeight-lipgloss.Height(a.footerView()))
	a.viewport.SetContent(a.listView(w))
	if a.scrollToFocus {
		a.scrollToFocus = false
		a.ensureFocusVisible()
	}
}

func (a *AppModel) ensureFocusVisible() {
	idx := a.Stopwatches.Index(a.Focus.Current)
	if idx < 0 {
		return
	}
	top := idx * rowHeight
	bottom := top + rowHeight
	switch {
	case top < a.viewport.YOffset:
		a.viewport.SetYOffset(top)
	case bottom > a.viewport.YOffset+a.viewport.Height:
		a.viewport.SetYOffset(bottom - a.viewport.Height)
	}
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	w, h := a.size()
	body := lipgloss.JoinVertical(lipgloss.Left,
		a.headerView(w),
		a.viewport.View(),
		a.footerView(),
	)
	return a.Theme.App.Width(w).Height(h).MaxHeight(h).Render(body)
}

func (a *AppModel) headerView(width int) string {
	running := 0
	for _, inst := range a.Stopwatches.Items() {
		if inst.Running() {
			running++
		}
	}
	n := a.Stopwatches.Len()
	noun := "stopwatches"
	if n == 1 {
		noun = "stopwatch"
	}
	text := fmt.Sprintf("%s · %d %s · %d running", a.title, n, noun, running)
	return a.Theme.Header.Width(width).Render(text)
}

func (a *AppModel) listView(width int) string {
	items := a.Stopwatches.Items()
	if len(items) == 0 {
		return a.Theme.Empty.Render("No stopwatches. Press a to add one.")
	}
	rows := make([]string, len(items))
	for i, inst := range items {
		rows[i] = renderRow(a.Theme, inst, a.display.get(inst.ID), inst.ID == a.Focus.Current, width)
	}
	return strings.Join(rows, "\n")
}

func (a *AppModel) footerView() string {
	if a.KeyHandler.LeaderWaiting {
		return RenderLeaderHelp(a.KeyHandler, a.Theme)
	}
	a.help.ShowAll = a.ShowFullHelp
	return a.Theme.Footer.Render(a.help.View(NewKeyMap(a.KeyHandler.Registry)))
}
