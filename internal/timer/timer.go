// Package timer implements the elapsed-time model behind a single stopwatch.
//
// A Model banks time from completed run segments and adds the in-flight
// segment when queried. It never reads a clock itself: every transition takes
// the caller's "now", so the model stays a pure state machine and tests can
// drive it with a fake clock.
package timer

import "time"

// Model tracks elapsed time across start/stop/reset transitions.
// The zero value is a stopped timer at zero.
type Model struct {
	start   time.Time
	running bool
	total   time.Duration
}

// New returns a stopped timer at zero.
func New() *Model {
	return &Model{}
}

// Running reports whether a run segment is in flight.
func (m *Model) Running() bool {
	return m.running
}

// Start begins a run segment at now. Starting a running timer restarts the
// in-flight segment; the time since the previous Start is not banked.
func (m *Model) Start(now time.Time) {
	m.start = now
	m.running = true
}

// Stop banks the in-flight segment. Stopping a stopped timer is a no-op.
func (m *Model) Stop(now time.Time) {
	if !m.running {
		return
	}
	m.total += since(m.start, now)
	m.start = time.Time{}
	m.running = false
}

// Reset zeroes the banked total. A running timer keeps running and reads
// zero from now on.
func (m *Model) Reset(now time.Time) {
	m.total = 0
	if m.running {
		m.start = now
	}
}

// Elapsed returns the banked total plus the in-flight segment, if any.
func (m *Model) Elapsed(now time.Time) time.Duration {
	if !m.running {
		return m.total
	}
	return m.total + since(m.start, now)
}

// Seconds is Elapsed expressed as floating point seconds.
func (m *Model) Seconds(now time.Time) float64 {
	return m.Elapsed(now).Seconds()
}

// since clamps negative deltas so the banked total never decreases.
func since(start, now time.Time) time.Duration {
	d := now.Sub(start)
	if d < 0 {
		return 0
	}
	return d
}
