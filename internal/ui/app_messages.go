package ui

// AddStopwatchMsg appends a stopwatch ('a').
type AddStopwatchMsg struct{}

// RemoveStopwatchMsg removes the most recently added stopwatch ('r').
type RemoveStopwatchMsg struct{}

// ToggleThemeMsg switches between the light and dark theme ('d').
type ToggleThemeMsg struct{}

// ToggleHelpMsg expands or collapses the footer help ('?').
type ToggleHelpMsg struct{}

// FocusNextMsg moves focus to the next stopwatch row.
type FocusNextMsg struct{}

// FocusPrevMsg moves focus to the previous stopwatch row.
type FocusPrevMsg struct{}

// StartMsg starts a stopwatch. ID 0 addresses the focused row.
type StartMsg struct {
	ID int
}

// StopMsg stops a stopwatch. ID 0 addresses the focused row.
type StopMsg struct {
	ID int
}

// ResetMsg resets a stopwatch. ID 0 addresses the focused row.
type ResetMsg struct {
	ID int
}

// refreshMsg is one display tick for a running stopwatch. Tag identifies
// the run the tick was scheduled for; stale ticks are dropped.
type refreshMsg struct {
	ID  int
	Tag int
}
