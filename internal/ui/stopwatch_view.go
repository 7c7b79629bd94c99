package ui

import (
	"time"

	"stopwatches/internal/stopwatch"
	"stopwatches/internal/timer"

	"github.com/charmbracelet/lipgloss"
)

// rowHeight is the rendered height of one stopwatch row: the three-line
// button/digit content plus the top and bottom border.
const rowHeight = digitHeight + 2

// rowInset is the column where row content starts (border + padding).
const rowInset = 2

const (
	labelStart = "Start"
	labelStop  = "Stop"
	labelReset = "Reset"
)

// button identifies a clickable region within a stopwatch row.
type button int

const (
	buttonNone button = iota
	buttonStart
	buttonStop
	buttonReset
)

// displayBoard holds the formatted elapsed text for each stopwatch. It is
// updated by collection notifications rather than computed in View, so a
// stopped stopwatch's text only changes on an explicit command.
type displayBoard struct {
	stopwatch.NoopObserver
	text map[int]string
}

// Ensure displayBoard implements stopwatch.Observer.
var _ stopwatch.Observer = (*displayBoard)(nil)

func newDisplayBoard() *displayBoard {
	return &displayBoard{text: make(map[int]string)}
}

func (d *displayBoard) get(id int) string {
	if s, ok := d.text[id]; ok {
		return s
	}
	return timer.Format(0)
}

func (d *displayBoard) OnAdd(id int) {
	d.text[id] = timer.Format(0)
}

func (d *displayBoard) OnRemove(id int, _ time.Duration) {
	delete(d.text, id)
}

func (d *displayBoard) OnStop(id int, _ time.Time, elapsed time.Duration) {
	d.text[id] = timer.Format(elapsed.Seconds())
}

func (d *displayBoard) OnReset(id int, _ time.Time) {
	d.text[id] = timer.Format(0)
}

func (d *displayBoard) OnElapsed(id int, seconds float64) {
	d.text[id] = timer.Format(seconds)
}

// primaryButton returns the button shown first in a row: Start while
// stopped, Stop while running.
func primaryButton(running bool) button {
	if running {
		return buttonStop
	}
	return buttonStart
}

func renderButton(theme Theme, b button) string {
	switch b {
	case buttonStart:
		return theme.Start.Render(labelStart)
	case buttonStop:
		return theme.Stop.Render(labelStop)
	case buttonReset:
		return theme.Reset.Render(labelReset)
	}
	return ""
}

// renderRow draws one stopwatch row at the given total width.
func renderRow(theme Theme, inst *stopwatch.Instance, text string, focused bool, width int) string {
	running := inst.Running()
	content := lipgloss.JoinHorizontal(lipgloss.Top,
		renderButton(theme, primaryButton(running)),
		" ",
		renderButton(theme, buttonReset),
		theme.Digits.Render(RenderDigits(text)),
	)

	style := theme.Row
	if running {
		style = theme.RowStarted
	}
	if focused {
		style = style.BorderForeground(theme.Palette.Accent)
	}
	if width > 2 {
		style = style.Width(width - 2)
	}
	return style.Render(content)
}

// hitButton maps a position inside a row (x from the row's left edge, y
// from its top border) to the button under it.
func hitButton(theme Theme, running bool, x, y int) button {
	if y < 1 || y > digitHeight {
		return buttonNone
	}
	primary := primaryButton(running)
	start := rowInset
	end := start + lipgloss.Width(renderButton(theme, primary))
	if x >= start && x < end {
		return primary
	}
	start = end + 1
	end = start + lipgloss.Width(renderButton(theme, buttonReset))
	if x >= start && x < end {
		return buttonReset
	}
	return buttonNone
}
