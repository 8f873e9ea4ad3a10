package orchestrator

import (
	"fmt"
	"sort"
	"time"
)

// Effect is a single deferred view update produced by Select.
type Effect interface {
	effectName() string
}

// TweenRange animates the displayed range towards Start/End over Duration.
type TweenRange struct {
	Start, End int
	Duration   time.Duration
}

// HighlightMarker flags a dial marker as active ahead of the rotation.
type HighlightMarker struct {
	Index int
}

// RotateDial moves the dial to Angle over Duration.
type RotateDial struct {
	Angle    float64
	Duration time.Duration
}

// CarouselHide starts the carousel fade-out.
type CarouselHide struct{}

// CarouselSwap swaps the carousel content to Category and shows it again.
type CarouselSwap struct {
	Category int
}

// CarouselRestore puts the carousel back on the slide it showed before the swap.
type CarouselRestore struct {
	Category int
}

// CommitIndex makes Index the committed selection.
type CommitIndex struct {
	Index int
}

func (TweenRange) effectName() string      { return "tween-range" }
func (HighlightMarker) effectName() string { return "highlight" }
func (RotateDial) effectName() string      { return "rotate" }
func (CarouselHide) effectName() string    { return "carousel-hide" }
func (CarouselSwap) effectName() string    { return "carousel-swap" }
func (CarouselRestore) effectName() string { return "carousel-restore" }
func (CommitIndex) effectName() string     { return "commit" }

// Name returns a short stable name for e.
func Name(e Effect) string {
	return e.effectName()
}

// Describe renders e with its arguments, for logs and traces.
func Describe(e Effect) string {
	switch v := e.(type) {
	case TweenRange:
		return fmt.Sprintf("%s %d..%d over %s", v.effectName(), v.Start, v.End, v.Duration)
	case HighlightMarker:
		return fmt.Sprintf("%s #%d", v.effectName(), v.Index)
	case RotateDial:
		return fmt.Sprintf("%s to %.1f° over %s", v.effectName(), v.Angle, v.Duration)
	case CarouselSwap:
		return fmt.Sprintf("%s category %d", v.effectName(), v.Category)
	case CarouselRestore:
		return fmt.Sprintf("%s category %d", v.effectName(), v.Category)
	case CommitIndex:
		return fmt.Sprintf("%s #%d", v.effectName(), v.Index)
	}
	return e.effectName()
}

// Scheduled is an effect with its delay relative to the request.
type Scheduled struct {
	Delay  time.Duration
	Effect Effect
}

// Plan is an ordered list of scheduled effects. Effects with equal delay run in
// plan order.
type Plan []Scheduled

// Sorted returns a copy of p ordered by delay, keeping plan order for ties.
func (p Plan) Sorted() Plan {
	out := make(Plan, len(p))
	copy(out, p)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Delay < out[j].Delay
	})
	return out
}

// Groups splits the sorted plan into runs that share a delay.
func (p Plan) Groups() []Plan {
	var groups []Plan
	for _, s := range p.Sorted() {
		n := len(groups)
		if n > 0 && groups[n-1][0].Delay == s.Delay {
			groups[n-1] = append(groups[n-1], s)
			continue
		}
		groups = append(groups, Plan{s})
	}
	return groups
}

// Last returns the last effect of type T in delivery order.
func Last[T Effect](p Plan) (T, bool) {
	var zero T
	found := false
	for _, s := range p.Sorted() {
		if v, ok := s.Effect.(T); ok {
			zero, found = v, true
		}
	}
	return zero, found
}
