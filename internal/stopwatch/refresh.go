package stopwatch

// Refresh is an instance's repeating display tick. Each Resume hands out a
// new tag; ticks scheduled under an older tag, or after Pause or Cancel, are
// rejected by Accepts, which is how pausing and removal stop all further
// display effects without reaching into the scheduler.
type Refresh struct {
	tag       int
	active    bool
	cancelled bool
}

// Resume activates the tick and returns the tag future ticks must carry.
// A cancelled Refresh stays inactive and returns its last tag.
func (r *Refresh) Resume() int {
	if r.cancelled {
		return r.tag
	}
	r.tag++
	r.active = true
	return r.tag
}

// Pause deactivates the tick until the next Resume.
func (r *Refresh) Pause() {
	r.active = false
}

// Cancel permanently deactivates the tick.
func (r *Refresh) Cancel() {
	r.active = false
	r.cancelled = true
}

// Tag returns the current tag.
func (r *Refresh) Tag() int {
	return r.tag
}

// Accepts reports whether a tick carrying tag is current.
func (r *Refresh) Accepts(tag int) bool {
	return r.active && tag == r.tag
}
