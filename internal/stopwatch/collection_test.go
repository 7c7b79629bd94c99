package stopwatch

import (
	"testing"
	"time"

	"stopwatches/internal/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2026, 2, 6, 12, 0, 0, 0, time.UTC)

// recorder is an Observer that records calls for assertions.
type recorder struct {
	NoopObserver
	added   []int
	removed []int
	started []int
	stopped []int
	resets  []int
	elapsed map[int][]float64
}

func newRecorder() *recorder {
	return &recorder{elapsed: make(map[int][]float64)}
}

func (r *recorder) OnAdd(id int)                     { r.added = append(r.added, id) }
func (r *recorder) OnRemove(id int, _ time.Duration) { r.removed = append(r.removed, id) }
func (r *recorder) OnStart(id int, _ time.Time)      { r.started = append(r.started, id) }
func (r *recorder) OnStop(id int, _ time.Time, _ time.Duration) {
	r.stopped = append(r.stopped, id)
}
func (r *recorder) OnReset(id int, _ time.Time) { r.resets = append(r.resets, id) }
func (r *recorder) OnElapsed(id int, s float64) { r.elapsed[id] = append(r.elapsed[id], s) }

func newTestCollection() (*Collection, *clock.Fake, *recorder) {
	c := clock.NewFake(epoch)
	rec := newRecorder()
	return NewCollection(WithClock(c), WithObserver(rec)), c, rec
}

func ids(items []*Instance) []int {
	out := make([]int, len(items))
	for i, inst := range items {
		out[i] = inst.ID
	}
	return out
}

func TestCollection_AddAppendsStoppedZeroed(t *testing.T) {
	col, c, rec := newTestCollection()
	require.Equal(t, 0, col.Len())

	inst := col.AddStopwatch()
	assert.Equal(t, 1, col.Len())
	assert.False(t, inst.Running())
	assert.False(t, inst.Refresh.Accepts(inst.Refresh.Tag()))
	assert.Equal(t, 0.0, inst.Timer.Seconds(c.Now()))

	second := col.AddStopwatch()
	assert.Equal(t, []int{inst.ID, second.ID}, ids(col.Items()))
	assert.Equal(t, []int{inst.ID, second.ID}, rec.added)
	last, ok := col.Last()
	require.True(t, ok)
	assert.Same(t, second, last)
}

func TestCollection_RemoveInReverseInsertionOrder(t *testing.T) {
	col, _, rec := newTestCollection()
	const n = 5
	var added []int
	for i := 0; i < n; i++ {
		added = append(added, col.AddStopwatch().ID)
	}

	var removed []int
	for i := 0; i < n; i++ {
		inst, ok := col.RemoveLastStopwatch()
		require.True(t, ok)
		removed = append(removed, inst.ID)
	}
	assert.Equal(t, 0, col.Len())
	for i := range added {
		assert.Equal(t, added[len(added)-1-i], removed[i])
	}
	assert.Equal(t, removed, rec.removed)
}

func TestCollection_RemoveFromEmptyIsNoop(t *testing.T) {
	col, _, rec := newTestCollection()
	inst, ok := col.RemoveLastStopwatch()
	assert.False(t, ok)
	assert.Nil(t, inst)
	assert.Equal(t, 0, col.Len())
	assert.Empty(t, rec.removed)
}

func TestCollection_IDsAreNotReused(t *testing.T) {
	col, _, _ := newTestCollection()
	first := col.AddStopwatch()
	col.RemoveLastStopwatch()
	second := col.AddStopwatch()
	assert.NotEqual(t, first.ID, second.ID)
}

func TestCollection_RemoveCancelsRefresh(t *testing.T) {
	col, c, rec := newTestCollection()
	inst := col.AddStopwatch()
	tag, ok := col.Start(inst.ID)
	require.True(t, ok)

	c.Advance(time.Second)
	require.True(t, col.Tick(inst.ID, tag))

	removed, ok := col.RemoveLastStopwatch()
	require.True(t, ok)
	assert.False(t, removed.Refresh.Accepts(tag))
	assert.Equal(t, tag, removed.Refresh.Resume(), "removed instance cannot be resumed")
	assert.False(t, col.Tick(inst.ID, tag), "tick for removed instance must be dropped")
	assert.Len(t, rec.elapsed[inst.ID], 1)
}

func TestCollection_StartStopReset(t *testing.T) {
	col, c, rec := newTestCollection()
	a := col.AddStopwatch()
	b := col.AddStopwatch()

	_, ok := col.Start(a.ID)
	require.True(t, ok)
	c.Advance(2 * time.Second)
	require.True(t, col.Stop(a.ID))

	got, ok := col.Elapsed(a.ID)
	require.True(t, ok)
	assert.InDelta(t, 2.0, got, 1e-9)
	other, _ := col.Elapsed(b.ID)
	assert.Equal(t, 0.0, other, "instances are independent")

	require.True(t, col.Reset(a.ID))
	got, _ = col.Elapsed(a.ID)
	assert.Equal(t, 0.0, got)

	assert.Equal(t, []int{a.ID}, rec.started)
	assert.Equal(t, []int{a.ID}, rec.stopped)
	assert.Equal(t, []int{a.ID}, rec.resets)
}

func TestCollection_StopWhenStoppedDoesNotNotify(t *testing.T) {
	col, _, rec := newTestCollection()
	inst := col.AddStopwatch()
	assert.True(t, col.Stop(inst.ID))
	assert.Empty(t, rec.stopped)
}

func TestCollection_UnknownIDIsNoop(t *testing.T) {
	col, _, _ := newTestCollection()
	_, ok := col.Start(42)
	assert.False(t, ok)
	assert.False(t, col.Stop(42))
	assert.False(t, col.Reset(42))
	assert.False(t, col.Tick(42, 1))
	_, ok = col.Elapsed(42)
	assert.False(t, ok)
	assert.Equal(t, -1, col.Index(42))
}

func TestCollection_TickPublishesOnlyWhileRunning(t *testing.T) {
	col, c, rec := newTestCollection()
	inst := col.AddStopwatch()

	tag, _ := col.Start(inst.ID)
	c.Advance(500 * time.Millisecond)
	assert.True(t, col.Tick(inst.ID, tag))
	c.Advance(500 * time.Millisecond)
	assert.True(t, col.Tick(inst.ID, tag))

	col.Stop(inst.ID)
	c.Advance(time.Second)
	assert.False(t, col.Tick(inst.ID, tag), "paused refresh must reject ticks")

	require.Len(t, rec.elapsed[inst.ID], 2)
	assert.InDelta(t, 0.5, rec.elapsed[inst.ID][0], 1e-9)
	assert.InDelta(t, 1.0, rec.elapsed[inst.ID][1], 1e-9)
}

func TestCollection_RestartInvalidatesOldTicks(t *testing.T) {
	col, _, _ := newTestCollection()
	inst := col.AddStopwatch()

	oldTag, _ := col.Start(inst.ID)
	col.Stop(inst.ID)
	newTag, _ := col.Start(inst.ID)

	assert.NotEqual(t, oldTag, newTag)
	assert.False(t, col.Tick(inst.ID, oldTag))
	assert.True(t, col.Tick(inst.ID, newTag))
}

func TestCollection_ItemsIsACopy(t *testing.T) {
	col, _, _ := newTestCollection()
	col.AddStopwatch()
	items := col.Items()
	items[0] = nil
	first, ok := col.Get(1)
	require.True(t, ok)
	assert.NotNil(t, first)
}

func TestCollection_EndToEndRealClock(t *testing.T) {
	col := NewCollection()
	inst := col.AddStopwatch()
	require.Equal(t, 1, col.Len())
	got, _ := col.Elapsed(inst.ID)
	require.Equal(t, 0.0, got)

	col.Start(inst.ID)
	time.Sleep(100 * time.Millisecond)
	col.Stop(inst.ID)

	got, _ = col.Elapsed(inst.ID)
	assert.Greater(t, got, 0.0)
	assert.LessOrEqual(t, got, 5.0)

	col.Reset(inst.ID)
	got, _ = col.Elapsed(inst.ID)
	assert.Equal(t, 0.0, got)
}
