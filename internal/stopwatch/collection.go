package stopwatch

import (
	"time"

	"stopwatches/internal/clock"
	"stopwatches/internal/timer"
)

// Instance is one stopwatch: a timer plus the identity the UI addresses it by.
type Instance struct {
	ID      int
	Timer   *timer.Model
	Refresh Refresh
}

// Running reports whether the instance's timer is running.
func (i *Instance) Running() bool {
	return i.Timer.Running()
}

// Collection is an ordered list of stopwatch instances. Instances are
// appended at the end and removed from the end.
type Collection struct {
	items    []*Instance
	nextID   int
	clock    clock.Clock
	observer Observer
}

// Option configures a Collection.
type Option func(*Collection)

// WithClock sets the time source. Defaults to clock.Real.
func WithClock(c clock.Clock) Option {
	return func(col *Collection) {
		col.clock = c
	}
}

// WithObserver sets the observer notified of changes.
func WithObserver(o Observer) Option {
	return func(col *Collection) {
		col.observer = o
	}
}

// NewCollection returns an empty collection.
func NewCollection(opts ...Option) *Collection {
	c := &Collection{
		nextID:   1,
		clock:    clock.Real{},
		observer: NoopObserver{},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.observer == nil {
		c.observer = NoopObserver{}
	}
	return c
}

// Now returns the collection clock's current instant.
func (c *Collection) Now() time.Time {
	return c.clock.Now()
}

// Len returns the number of instances.
func (c *Collection) Len() int {
	return len(c.items)
}

// Items returns the instances in insertion order. The slice is a copy; the
// instances are shared.
func (c *Collection) Items() []*Instance {
	out := make([]*Instance, len(c.items))
	copy(out, c.items)
	return out
}

// Get returns the instance with the given id.
func (c *Collection) Get(id int) (*Instance, bool) {
	for _, inst := range c.items {
		if inst.ID == id {
			return inst, true
		}
	}
	return nil, false
}

// Index returns the position of the instance with the given id, or -1.
func (c *Collection) Index(id int) int {
	for i, inst := range c.items {
		if inst.ID == id {
			return i
		}
	}
	return -1
}

// Last returns the most recently added instance.
func (c *Collection) Last() (*Instance, bool) {
	if len(c.items) == 0 {
		return nil, false
	}
	return c.items[len(c.items)-1], true
}

// AddStopwatch appends a new stopped, zeroed instance and returns it.
// IDs are never reused within a collection.
func (c *Collection) AddStopwatch() *Instance {
	inst := &Instance{
		ID:    c.nextID,
		Timer: timer.New(),
	}
	c.nextID++
	c.items = append(c.items, inst)
	c.observer.OnAdd(inst.ID)
	return inst
}

// RemoveLastStopwatch removes the most recently added instance and cancels
// its refresh tick. Returns false when the collection is empty.
func (c *Collection) RemoveLastStopwatch() (*Instance, bool) {
	if len(c.items) == 0 {
		return nil, false
	}
	last := c.items[len(c.items)-1]
	c.items[len(c.items)-1] = nil
	c.items = c.items[:len(c.items)-1]
	last.Refresh.Cancel()
	c.observer.OnRemove(last.ID, last.Timer.Elapsed(c.clock.Now()))
	return last, true
}

// Start starts the instance's timer and resumes its refresh tick.
// Returns the tick tag, or false if id is unknown.
func (c *Collection) Start(id int) (int, bool) {
	inst, ok := c.Get(id)
	if !ok {
		return 0, false
	}
	now := c.clock.Now()
	inst.Timer.Start(now)
	tag := inst.Refresh.Resume()
	c.observer.OnStart(id, now)
	return tag, true
}

// Stop stops the instance's timer and pauses its refresh tick.
// Stopping a stopped instance is a no-op that still returns true.
func (c *Collection) Stop(id int) bool {
	inst, ok := c.Get(id)
	if !ok {
		return false
	}
	if !inst.Timer.Running() {
		return true
	}
	now := c.clock.Now()
	inst.Refresh.Pause()
	inst.Timer.Stop(now)
	c.observer.OnStop(id, now, inst.Timer.Elapsed(now))
	return true
}

// Reset zeroes the instance's timer without changing its run status.
func (c *Collection) Reset(id int) bool {
	inst, ok := c.Get(id)
	if !ok {
		return false
	}
	now := c.clock.Now()
	inst.Timer.Reset(now)
	c.observer.OnReset(id, now)
	return true
}

// Tick handles one refresh tick for id carrying tag. It reports whether the
// tick is current, in which case the instance's elapsed time is published
// to the observer and the caller should schedule the next tick.
func (c *Collection) Tick(id, tag int) bool {
	inst, ok := c.Get(id)
	if !ok || !inst.Refresh.Accepts(tag) || !inst.Timer.Running() {
		return false
	}
	c.observer.OnElapsed(id, inst.Timer.Seconds(c.clock.Now()))
	return true
}

// Elapsed returns the elapsed seconds of id at the current instant.
func (c *Collection) Elapsed(id int) (float64, bool) {
	inst, ok := c.Get(id)
	if !ok {
		return 0, false
	}
	return inst.Timer.Seconds(c.clock.Now()), true
}
