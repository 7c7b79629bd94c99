// Package stopwatch manages the ordered set of stopwatch instances shown by
// the UI.
//
// Core types:
//   - Instance: one stopwatch; owns a timer.Model and its Refresh resource
//   - Collection: LIFO list of instances (append to the end, remove the last)
//   - Refresh: the per-instance repeating display tick, resumed on start,
//     paused on stop and cancelled on removal
//   - Observer: receives lifecycle and elapsed-time notifications
//
// A Collection is driven from a single event loop and is not safe for
// concurrent use.
package stopwatch
