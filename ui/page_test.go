package ui

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"

	"HistoricDates/history"
	"HistoricDates/orchestrator"
)

type pageSink struct{ p *Page }

func (s pageSink) Apply(_ int, e orchestrator.Effect) { s.p.Apply(e) }

func TestPageAppliesPlan(t *testing.T) {
	test.NewTempApp(t)
	clock, after := manual()
	d := testDataset(t)
	timings := orchestrator.DefaultTimings()
	state := orchestrator.Initial(d, timings)
	app := &fakeApp{}

	p := NewPage(app, d, state, Options{
		Settings: history.DefaultSettings(),
		Tweener:  orchestrator.InstantTweener{},
		Animator: InstantAnimator{},
		After:    after,
	})
	sched := orchestrator.NewScheduler(clock, pageSink{p}, nil)

	next, plan := orchestrator.Select(state, 2, d, timings)
	sched.Run(next.Seq, plan)

	// immediately: highlight, range tween started, carousel hidden
	assert.Equal(t, 2, p.Dial.Active())
	assert.False(t, p.Carousel.SlidesShown())
	assert.Equal(t, "01/03", p.Nav.Counter())
	s, e := p.Range.Displayed()
	assert.Equal(t, 1500, s)
	assert.Equal(t, 1500, e)

	clock.Advance(150 * time.Millisecond)
	assert.True(t, p.Carousel.SlidesShown())
	assert.Equal(t, 2, p.Carousel.Category())
	assert.Equal(t, "03/03", p.Nav.Counter())
	assert.True(t, p.Nav.NextButton().Disabled())
	assert.Equal(t, 2, p.Markers.Active())
	assert.InDelta(t, state.Angle, p.Dial.Angle(), 1e-9, "rotation waits for the angle delay")

	clock.Advance(150 * time.Millisecond)
	assert.InDelta(t, orchestrator.AngleFor(2, 3), p.Dial.Angle(), 1e-9)
}

func TestPageForwardsRequests(t *testing.T) {
	test.NewTempApp(t)
	_, after := manual()
	d := testDataset(t)
	app := &fakeApp{}
	p := NewPage(app, d, orchestrator.Initial(d, orchestrator.DefaultTimings()), Options{
		Settings: history.DefaultSettings(),
		Tweener:  orchestrator.InstantTweener{},
		Animator: InstantAnimator{},
		After:    after,
	})

	test.Tap(p.Dial.Marker(1))
	test.Tap(p.Markers.Button(2))
	test.Tap(p.Nav.NextButton())
	test.Tap(p.Nav.PrevButton())

	assert.Equal(t, []int{1, 2}, app.selected)
	assert.Equal(t, 1, app.next)
	assert.Equal(t, 0, app.prev, "prev is disabled on the first category")
}

func TestPageReportsUserSlideChanges(t *testing.T) {
	test.NewTempApp(t)
	_, after := manual()
	d := testDataset(t)
	app := &fakeApp{}
	p := NewPage(app, d, orchestrator.Initial(d, orchestrator.DefaultTimings()), Options{
		Settings: history.DefaultSettings(),
		Tweener:  orchestrator.InstantTweener{},
		Animator: InstantAnimator{},
		After:    after,
	})

	p.Carousel.Pager().(*SlidePager).Next()
	assert.Equal(t, []int{1}, app.slides)
	assert.Empty(t, app.selected, "a slide change never selects a category")

	p.Carousel.Pager().GoToSlide(0, false)
	assert.Equal(t, []int{1}, app.slides, "programmatic moves are not reported")
}

func TestPageNavigationAsksApp(t *testing.T) {
	test.NewTempApp(t)
	_, after := manual()
	d := testDataset(t)
	app := &fakeApp{refuse: true}
	player := &recordingPlayer{}
	p := NewPage(app, d, orchestrator.Initial(d, orchestrator.DefaultTimings()), Options{
		Settings: history.DefaultSettings(),
		Tweener:  orchestrator.InstantTweener{},
		Animator: InstantAnimator{},
		After:    after,
		Player:   player,
	})

	test.Tap(p.Nav.NextButton())
	assert.Equal(t, 0, app.next)
	assert.Empty(t, player.tones)
	assert.False(t, p.Nav.Pulsing())

	app.refuse = false
	test.Tap(p.Nav.NextButton())
	assert.Equal(t, 1, app.next)
	assert.Len(t, player.tones, 1)
}
