// Package orchestrator contains the selection-change logic of the widget.
//
// Select is a pure transition: it takes the current State and a target
// category index and returns the next State together with a Plan, an ordered
// list of effects, each with a delay relative to the request. Nothing here
// touches a timer or a view. The Scheduler executes plans against a Clock and
// delivers effects to a Sink (the page root), which is the only place that
// mutates views.
//
// Maintenance notes:
//   - State is a value. Keep it that way: the page root replaces its copy on
//     every transition and on every CommitIndex delivery, always from the same
//     goroutine.
//   - Plans are never cancelled. A second Select while the first plan still
//     has pending effects lets both run; later writes win on the views.
package orchestrator

import (
	"HistoricDates/history"
)

// State is the canonical selection state owned by the page root.
type State struct {
	// ActiveIndex is the most recently requested category.
	ActiveIndex int
	// Committed is the category the views have switched to after the fade.
	Committed int
	// Angle is the accumulated dial rotation in degrees. It is never wrapped.
	Angle              float64
	RotationDurationMs int
	StartDate          int
	EndDate            int
	// Seq counts transitions.
	Seq int
}

// Initial returns the state at mount: first category selected, dial at its
// resting angle, range taken from the first category.
func Initial(d *history.Dataset, t Timings) State {
	return State{
		ActiveIndex:        0,
		Committed:          0,
		Angle:              AngleFor(0, d.Len()),
		RotationDurationMs: int(t.Unit.Milliseconds()),
		StartDate:          d.FirstDate(0),
		EndDate:            d.LastDate(0),
	}
}

// Step is the angle between neighbouring dial markers.
func Step(n int) float64 {
	return 360 / float64(n)
}

// AngleFor is the dial angle that brings marker index to the active position.
// Moving to a higher index always decreases the angle by Step per index.
func AngleFor(index, n int) float64 {
	s := Step(n)
	return s - float64(index)*s
}

// Commit records index as committed.
func (s State) Commit(index int) State {
	s.Committed = index
	return s
}
