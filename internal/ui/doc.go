// Package ui is the Bubble Tea front end for stopwatches.
//
// AppModel owns a stopwatch.Collection and renders one row per instance:
// big digits plus Start/Stop and Reset buttons. Keys are dispatched through a
// KeybindRegistry (single keys and SPC leader sequences); the focused row is
// tracked by a FocusManager and kept visible inside a viewport. Running rows
// repaint on per-instance tick commands whose tags let Stop and removal
// silence in-flight ticks.
package ui
