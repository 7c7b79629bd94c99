package trace

import (
	"context"
	"testing"
	"time"

	"stopwatches/internal/clock"
	"stopwatches/internal/stopwatch"

	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2026, 2, 6, 12, 0, 0, 0, time.UTC)

func newTestObserver(t *testing.T) (*Observer, *tracetest.SpanRecorder, *clock.Fake) {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	p := NewProvider(sdktrace.WithSpanProcessor(sr))
	t.Cleanup(func() { _ = p.Shutdown(context.Background()) })
	c := clock.NewFake(epoch)
	return NewObserver(p.Tracer(), c.Now), sr, c
}

func attrs(s sdktrace.ReadOnlySpan) map[attribute.Key]attribute.Value {
	out := make(map[attribute.Key]attribute.Value)
	for _, kv := range s.Attributes() {
		out[kv.Key] = kv.Value
	}
	return out
}

func TestObserver_SegmentSpans(t *testing.T) {
	obs, sr, c := newTestObserver(t)
	col := stopwatch.NewCollection(stopwatch.WithClock(c), stopwatch.WithObserver(obs))
	inst := col.AddStopwatch()

	col.Start(inst.ID)
	c.Advance(2 * time.Second)
	col.Stop(inst.ID)
	c.Advance(time.Second)
	col.Start(inst.ID)
	c.Advance(500 * time.Millisecond)
	col.Stop(inst.ID)

	spans := sr.Ended()
	require.Len(t, spans, 2)

	first := spans[0]
	assert.Equal(t, SpanName, first.Name())
	assert.True(t, first.StartTime().Equal(epoch))
	assert.True(t, first.EndTime().Equal(epoch.Add(2*time.Second)))
	a := attrs(first)
	assert.Equal(t, int64(inst.ID), a[AttrID].AsInt64())
	assert.Equal(t, int64(1), a[AttrSegment].AsInt64())
	assert.Equal(t, "stop", a[AttrEndedBy].AsString())
	assert.InDelta(t, 2.0, a[AttrElapsed].AsFloat64(), 1e-9)

	second := attrs(spans[1])
	assert.Equal(t, int64(2), second[AttrSegment].AsInt64())
	assert.InDelta(t, 2.5, second[AttrElapsed].AsFloat64(), 1e-9, "elapsed is the running total")
}

func TestObserver_ResetWhileRunningSplitsSegment(t *testing.T) {
	obs, sr, c := newTestObserver(t)
	col := stopwatch.NewCollection(stopwatch.WithClock(c), stopwatch.WithObserver(obs))
	inst := col.AddStopwatch()

	col.Reset(inst.ID) // stopped: nothing to record
	assert.Empty(t, sr.Ended())

	col.Start(inst.ID)
	c.Advance(time.Second)
	col.Reset(inst.ID)
	c.Advance(time.Second)
	col.Stop(inst.ID)

	spans := sr.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, "reset", attrs(spans[0])[AttrEndedBy].AsString())
	assert.True(t, spans[1].StartTime().Equal(epoch.Add(time.Second)))
	assert.InDelta(t, 1.0, attrs(spans[1])[AttrElapsed].AsFloat64(), 1e-9)
}

func TestObserver_RemoveRunningClosesSpan(t *testing.T) {
	obs, sr, c := newTestObserver(t)
	col := stopwatch.NewCollection(stopwatch.WithClock(c), stopwatch.WithObserver(obs))
	inst := col.AddStopwatch()

	col.Start(inst.ID)
	c.Advance(3 * time.Second)
	col.RemoveLastStopwatch()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "remove", attrs(spans[0])[AttrEndedBy].AsString())
	assert.True(t, spans[0].EndTime().Equal(epoch.Add(3*time.Second)))
}

func TestObserver_RemoveStoppedRecordsNothing(t *testing.T) {
	obs, sr, c := newTestObserver(t)
	col := stopwatch.NewCollection(stopwatch.WithClock(c), stopwatch.WithObserver(obs))
	col.AddStopwatch()
	col.RemoveLastStopwatch()
	assert.Empty(t, sr.Ended())
}

func TestProvider_NilIsDisabled(t *testing.T) {
	var p *Provider
	assert.Nil(t, p.Tracer())
	assert.NoError(t, p.Shutdown(context.Background()))

	got, err := NewOTLPProvider(context.Background(), "", "svc")
	require.NoError(t, err)
	assert.Nil(t, got)
}
