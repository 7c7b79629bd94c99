// Package logging builds the charmbracelet/log logger used by stopwatches.
//
// The TUI owns the terminal, so log output goes to a file (or nowhere).
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"stopwatches/internal/stopwatch"

	"github.com/charmbracelet/log"
)

// New returns a logfmt logger writing to w at the named level.
func New(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}
	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339Nano,
		Formatter:       log.LogfmtFormatter,
		Prefix:          "stopwatches",
	}), nil
}

// Open returns a logger appending to path. An empty path discards output.
// The returned closer releases the file.
func Open(path, level string) (*log.Logger, io.Closer, error) {
	if path == "" {
		l, err := New(io.Discard, level)
		return l, nopCloser{}, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	l, err := New(f, level)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return l, f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Observer logs stopwatch lifecycle events. Elapsed-time ticks are not
// logged.
type Observer struct {
	stopwatch.NoopObserver
	logger *log.Logger
}

// Ensure Observer implements stopwatch.Observer.
var _ stopwatch.Observer = (*Observer)(nil)

// NewObserver returns an Observer writing to logger.
func NewObserver(logger *log.Logger) *Observer {
	return &Observer{logger: logger}
}

func (o *Observer) OnAdd(id int) {
	o.logger.Info("stopwatch added", "id", id)
}

func (o *Observer) OnRemove(id int, elapsed time.Duration) {
	o.logger.Info("stopwatch removed", "id", id, "elapsed", elapsed)
}

func (o *Observer) OnStart(id int, _ time.Time) {
	o.logger.Debug("stopwatch started", "id", id)
}

func (o *Observer) OnStop(id int, _ time.Time, elapsed time.Duration) {
	o.logger.Debug("stopwatch stopped", "id", id, "elapsed", elapsed)
}

func (o *Observer) OnReset(id int, _ time.Time) {
	o.logger.Debug("stopwatch reset", "id", id)
}
