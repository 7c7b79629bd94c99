package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// msgCmd returns a command that emits msg.
func msgCmd(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// refreshCmd schedules the next display tick for a running stopwatch.
func refreshCmd(interval time.Duration, id, tag int) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return refreshMsg{ID: id, Tag: tag}
	})
}
