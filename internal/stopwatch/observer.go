package stopwatch

import "time"

// Observer receives notifications about collection and timer changes.
// Calls happen synchronously on the goroutine mutating the Collection.
type Observer interface {
	OnAdd(id int)
	OnRemove(id int, elapsed time.Duration)
	OnStart(id int, at time.Time)
	OnStop(id int, at time.Time, elapsed time.Duration)
	OnReset(id int, at time.Time)
	OnElapsed(id int, seconds float64)
}

// NoopObserver implements Observer with no-ops. Embed it to implement only
// the callbacks you need.
type NoopObserver struct{}

func (NoopObserver) OnAdd(int)                            {}
func (NoopObserver) OnRemove(int, time.Duration)          {}
func (NoopObserver) OnStart(int, time.Time)               {}
func (NoopObserver) OnStop(int, time.Time, time.Duration) {}
func (NoopObserver) OnReset(int, time.Time)               {}
func (NoopObserver) OnElapsed(int, float64)               {}

// Ensure NoopObserver implements Observer.
var _ Observer = NoopObserver{}

// MultiObserver fans out notifications to multiple observers.
// A panicking observer does not prevent the others from being called.
type MultiObserver struct {
	observers []Observer
}

// Ensure MultiObserver implements Observer.
var _ Observer = (*MultiObserver)(nil)

// NewMultiObserver returns a MultiObserver over the non-nil observers.
func NewMultiObserver(observers ...Observer) *MultiObserver {
	filtered := make([]Observer, 0, len(observers))
	for _, obs := range observers {
		if obs != nil {
			filtered = append(filtered, obs)
		}
	}
	return &MultiObserver{observers: filtered}
}

// Len returns the number of observers.
func (m *MultiObserver) Len() int {
	return len(m.observers)
}

func safeCall(fn func()) {
	defer func() {
		_ = recover()
	}()
	fn()
}

func (m *MultiObserver) each(fn func(Observer)) {
	for _, obs := range m.observers {
		safeCall(func() { fn(obs) })
	}
}

// OnAdd forwards to all observers.
func (m *MultiObserver) OnAdd(id int) {
	m.each(func(o Observer) { o.OnAdd(id) })
}

// OnRemove forwards to all observers.
func (m *MultiObserver) OnRemove(id int, elapsed time.Duration) {
	m.each(func(o Observer) { o.OnRemove(id, elapsed) })
}

// OnStart forwards to all observers.
func (m *MultiObserver) OnStart(id int, at time.Time) {
	m.each(func(o Observer) { o.OnStart(id, at) })
}

// OnStop forwards to all observers.
func (m *MultiObserver) OnStop(id int, at time.Time, elapsed time.Duration) {
	m.each(func(o Observer) { o.OnStop(id, at, elapsed) })
}

// OnReset forwards to all observers.
func (m *MultiObserver) OnReset(id int, at time.Time) {
	m.each(func(o Observer) { o.OnReset(id, at) })
}

// OnElapsed forwards to all observers.
func (m *MultiObserver) OnElapsed(id int, seconds float64) {
	m.each(func(o Observer) { o.OnElapsed(id, seconds) })
}
