package ui

import (
	"time"

	"HistoricDates/feedback"
	"HistoricDates/history"
	"HistoricDates/orchestrator"
)

// Options configure NewPage.
type Options struct {
	Settings history.Settings
	Tweener  orchestrator.Tweener
	Animator AngleAnimator
	After    Deferrer
	Player   feedback.Player
}

// Page holds the five views and routes orchestrator effects to them.
type Page struct {
	Dial     *DialView
	Range    *DateRangeView
	Carousel *CarouselView
	Nav      *NavigationControls
	Markers  *MarkerButtons
}

// NewPage builds every view in the given initial state.
func NewPage(a App, d *history.Dataset, initial orchestrator.State, opts Options) *Page {
	if opts.Tweener == nil {
		opts.Tweener = FyneTweener{}
	}
	if opts.Animator == nil {
		opts.Animator = FyneAnimator{}
	}
	if opts.After == nil {
		opts.After = FyneDeferrer
	}
	if opts.Player == nil {
		opts.Player = feedback.Silent{}
	}
	ms := func(v int) time.Duration { return time.Duration(v) * time.Millisecond }
	s := opts.Settings

	p := &Page{
		Dial:     NewDialView(d.Titles(), initial.Committed, initial.Angle, opts.Animator, a.Select),
		Range:    NewDateRangeView(initial.StartDate, initial.EndDate, opts.Tweener, opts.After, ms(s.RangePulseMs), s.DevMode),
		Carousel: NewCarouselView(d, initial.Committed, NewSlidePager(), opts.Player, opts.After, ms(s.SlidePulseMs), s.DevMode),
		Nav:      NewNavigationControls(d.Len(), initial.Committed, opts.Player, opts.After, ms(s.PulseMs), a.Prev, a.Next),
		Markers:  NewMarkerButtons(d.Len(), initial.Committed, opts.Player, opts.After, ms(s.PulseMs), a.Select),
	}
	p.Carousel.SetOnSlideChanged(a.SlideChanged)
	p.Nav.SetGuard(a.CanStep)
	return p
}

// Apply pushes one effect to the views it concerns.
func (p *Page) Apply(e orchestrator.Effect) {
	switch v := e.(type) {
	case orchestrator.TweenRange:
		p.Range.TweenTo(v.Start, v.End, v.Duration)
	case orchestrator.HighlightMarker:
		p.Dial.SetActive(v.Index)
	case orchestrator.RotateDial:
		p.Dial.SetAngle(v.Angle, v.Duration)
	case orchestrator.CarouselHide:
		p.Carousel.FadeOut()
	case orchestrator.CarouselSwap:
		p.Carousel.SwapCategory(v.Category)
	case orchestrator.CarouselRestore:
		p.Carousel.RestoreSlide(v.Category)
	case orchestrator.CommitIndex:
		p.Dial.SetActive(v.Index)
		p.Nav.SetActive(v.Index)
		p.Markers.SetActive(v.Index)
	}
}
