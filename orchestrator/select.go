package orchestrator

import (
	"time"

	"HistoricDates/history"
)

// DistanceMode selects which index Select measures distance from.
type DistanceMode int

const (
	// DistanceFromLatest uses the most recent request, so rapid clicks always
	// measure from where the previous click was heading.
	DistanceFromLatest DistanceMode = iota
	// DistanceFromCommitted uses the index committed after the fade, so a
	// click landing before the previous commit measures from a stale index.
	DistanceFromCommitted
)

// Timings are the fixed delays and durations used by Select.
type Timings struct {
	Unit         time.Duration // dial rotation per index step
	Settle       time.Duration // added to the range animation
	AngleDelay   time.Duration
	Fade         time.Duration
	RestoreDelay time.Duration
	DistanceFrom DistanceMode
}

// DefaultTimings mirrors history.DefaultSettings.
func DefaultTimings() Timings {
	return TimingsFrom(history.DefaultSettings())
}

// TimingsFrom converts loaded settings.
func TimingsFrom(s history.Settings) Timings {
	ms := func(v int) time.Duration { return time.Duration(v) * time.Millisecond }
	t := Timings{
		Unit:         ms(s.UnitRotationMs),
		Settle:       ms(s.SettleMs),
		AngleDelay:   ms(s.AngleDelayMs),
		Fade:         ms(s.FadeMs),
		RestoreDelay: ms(s.RestoreDelayMs),
	}
	if s.DistanceFrom == history.DistanceCommitted {
		t.DistanceFrom = DistanceFromCommitted
	}
	return t
}

// Select computes the transition to target. target must be in [0, d.Len());
// callers guard the bounds. Selecting the current index is legal and yields a
// zero-length rotation with the full effect sequence.
func Select(s State, target int, d *history.Dataset, t Timings) (State, Plan) {
	from := s.ActiveIndex
	if t.DistanceFrom == DistanceFromCommitted {
		from = s.Committed
	}
	distance := from - target
	if distance < 0 {
		distance = -distance
	}
	rotation := time.Duration(distance) * t.Unit

	next := s
	next.Seq++
	next.RotationDurationMs = int(rotation.Milliseconds())
	next.StartDate = d.FirstDate(target)
	next.EndDate = d.LastDate(target)
	next.Angle = s.Angle + float64(s.ActiveIndex-target)*Step(d.Len())
	next.ActiveIndex = target

	plan := Plan{
		{0, TweenRange{Start: next.StartDate, End: next.EndDate, Duration: rotation + t.Settle}},
		{0, HighlightMarker{Index: target}},
		{0, CarouselHide{}},
		{t.AngleDelay, RotateDial{Angle: next.Angle, Duration: rotation}},
		{t.Fade, CarouselSwap{Category: target}},
		{t.Fade, CommitIndex{Index: target}},
		{t.Fade + t.RestoreDelay, CarouselRestore{Category: target}},
	}
	return next, plan
}

// RestoreSlide returns the slide to show after switching to a category with
// count events, given the slide shown before the switch.
func RestoreSlide(prev, count int) int {
	if prev >= 0 && prev < count {
		return prev
	}
	return 0
}
