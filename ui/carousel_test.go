package ui

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"

	"HistoricDates/feedback"
)

func TestCarouselFadeSwapRestore(t *testing.T) {
	test.NewTempApp(t)
	_, after := manual()
	d := testDataset(t)
	pager := NewSlidePager()
	v := NewCarouselView(d, 1, pager, feedback.Silent{}, after, 400*time.Millisecond, false)

	pager.GoToSlide(2, false)
	v.FadeOut()
	assert.False(t, v.SlidesShown())

	v.SwapCategory(0)
	assert.True(t, v.SlidesShown())
	assert.Equal(t, 0, v.Category())
	assert.Equal(t, "First", v.title.Text)
	assert.Equal(t, 2, pager.SlideCount())

	v.RestoreSlide(0)
	assert.Equal(t, 0, pager.ActiveSlide(), "category 0 has only two events")

	pager.GoToSlide(1, false)
	v.FadeOut()
	v.SwapCategory(1)
	v.RestoreSlide(1)
	assert.Equal(t, 1, pager.ActiveSlide(), "position kept when it still exists")
}

func TestCarouselRestoreIgnoresStaleCategory(t *testing.T) {
	test.NewTempApp(t)
	_, after := manual()
	d := testDataset(t)
	pager := NewSlidePager()
	v := NewCarouselView(d, 1, pager, feedback.Silent{}, after, 0, false)

	pager.GoToSlide(1, false)
	v.FadeOut()
	v.SwapCategory(2)
	v.RestoreSlide(1)
	assert.Equal(t, 0, pager.ActiveSlide())
}

func TestCarouselUserSlideChange(t *testing.T) {
	test.NewTempApp(t)
	clock, after := manual()
	d := testDataset(t)
	player := &recordingPlayer{}
	pager := NewSlidePager()
	v := NewCarouselView(d, 1, pager, player, after, 400*time.Millisecond, true)
	var reported []int
	v.SetOnSlideChanged(func(i int) { reported = append(reported, i) })

	test.Tap(pager.next)
	test.Tap(pager.next)
	test.Tap(pager.next) // disabled on the last slide

	assert.Equal(t, []int{1, 2}, reported)
	assert.Equal(t, 1, v.Category(), "swiping never changes the category")
	assert.Len(t, player.tones, 2)
	assert.True(t, v.Pulsing())
	clock.Advance(400 * time.Millisecond)
	assert.False(t, v.Pulsing())

	// programmatic moves are not reported
	pager.GoToSlide(0, false)
	assert.Equal(t, []int{1, 2}, reported)
}

func TestSlidePagerReachEnd(t *testing.T) {
	test.NewTempApp(t)
	d := testDataset(t)
	p := NewSlidePager()
	p.SetSlides(d.Category(1).Events)
	ends := 0
	p.OnReachEnd(func() { ends++ })

	p.Next()
	assert.Equal(t, 0, ends)
	p.Next()
	assert.Equal(t, 1, ends)
	p.Next()
	assert.Equal(t, 2, p.ActiveSlide())
	assert.Equal(t, "1400", p.year.Text)
	assert.Equal(t, "e", p.description.Text)

	p.Prev()
	assert.Equal(t, 1, p.ActiveSlide())
	p.GoToSlide(9, false)
	assert.Equal(t, 1, p.ActiveSlide())
}
