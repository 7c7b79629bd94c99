// Package trace exports stopwatch run segments as OpenTelemetry spans.
//
// Each span covers one start→stop segment of one stopwatch. A reset while
// running closes the current span and opens a new one; removing a running
// stopwatch closes its span.
package trace

import (
	"context"
	"time"

	"stopwatches/internal/stopwatch"

	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// SpanName is the name of a run segment span.
const SpanName = "stopwatch.segment"

// Attribute keys.
const (
	AttrID      = attribute.Key("stopwatch.id")
	AttrSegment = attribute.Key("stopwatch.segment")
	AttrElapsed = attribute.Key("stopwatch.elapsed_seconds")
	AttrEndedBy = attribute.Key("stopwatch.ended_by")
)

type segment struct {
	start time.Time
	n     int
}

// Observer implements stopwatch.Observer by recording run segments.
type Observer struct {
	stopwatch.NoopObserver
	tracer   oteltrace.Tracer
	now      func() time.Time
	open     map[int]segment
	segments map[int]int
}

// Ensure Observer implements stopwatch.Observer.
var _ stopwatch.Observer = (*Observer)(nil)

// NewObserver returns an Observer recording to tracer. now supplies the end
// time for spans closed by removal; nil means time.Now.
func NewObserver(tracer oteltrace.Tracer, now func() time.Time) *Observer {
	if now == nil {
		now = time.Now
	}
	return &Observer{
		tracer:   tracer,
		now:      now,
		open:     make(map[int]segment),
		segments: make(map[int]int),
	}
}

// OnStart opens a segment. Starting a running stopwatch restarts its
// segment, so the previous one is dropped without a span.
func (o *Observer) OnStart(id int, at time.Time) {
	o.segments[id]++
	o.open[id] = segment{start: at, n: o.segments[id]}
}

// OnStop closes the open segment.
func (o *Observer) OnStop(id int, at time.Time, elapsed time.Duration) {
	o.end(id, at, "stop", elapsed)
}

// OnReset closes the open segment, if any, and opens a fresh one.
func (o *Observer) OnReset(id int, at time.Time) {
	if _, ok := o.open[id]; !ok {
		return
	}
	o.end(id, at, "reset", 0)
	o.OnStart(id, at)
}

// OnRemove closes the open segment, if any.
func (o *Observer) OnRemove(id int, elapsed time.Duration) {
	o.end(id, o.now(), "remove", elapsed)
	delete(o.segments, id)
}

func (o *Observer) end(id int, at time.Time, by string, elapsed time.Duration) {
	seg, ok := o.open[id]
	if !ok {
		return
	}
	delete(o.open, id)

	_, span := o.tracer.Start(context.Background(), SpanName,
		oteltrace.WithTimestamp(seg.start),
		oteltrace.WithAttributes(
			AttrID.Int(id),
			AttrSegment.Int(seg.n),
		),
	)
	span.SetAttributes(
		AttrEndedBy.String(by),
		AttrElapsed.Float64(elapsed.Seconds()),
	)
	span.End(oteltrace.WithTimestamp(at))
}
