package ui

import (
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"HistoricDates/feedback"
	"HistoricDates/history"
	"HistoricDates/orchestrator"
)

// CarouselView shows the events of one category through a Pager. Swiping is
// a sub-navigation inside the category: it is reported upwards but never
// changes the selected category.
type CarouselView struct {
	widget.BaseWidget

	dataset *history.Dataset
	pager   Pager
	player  feedback.Player
	devMode bool

	category int
	saved    int
	visible  bool

	onSlideChanged func(int)

	title   *widget.Label
	body    *fyne.Container
	frame   *canvas.Rectangle
	pulse   *pulse
	content fyne.CanvasObject
}

// NewCarouselView shows category with pager.
func NewCarouselView(d *history.Dataset, category int, pager Pager, player feedback.Player, after Deferrer, pulseFor time.Duration, devMode bool) *CarouselView {
	v := &CarouselView{dataset: d, pager: pager, player: player, devMode: devMode, category: category, visible: true}

	v.title = widget.NewLabel(d.Category(category).Title)
	v.title.TextStyle.Bold = true
	v.frame = canvas.NewRectangle(withAlpha(AccentColor, 0))
	v.frame.CornerRadius = 8
	v.body = container.NewStack(v.frame, pager.CanvasObject())
	v.content = container.NewBorder(v.title, nil, nil, nil, v.body)
	v.pulse = newPulse(pulseFor, after, v.Refresh)

	pager.SetSlides(d.Category(category).Events)
	pager.OnActiveSlideChanged(v.userSlideChanged)
	pager.OnReachEnd(func() {
		if v.devMode {
			log.Printf("EventSlider: Reached end of slider")
		}
	})

	v.ExtendBaseWidget(v)
	return v
}

// SetOnSlideChanged registers the upward report of user slide changes.
func (v *CarouselView) SetOnSlideChanged(f func(int)) {
	v.onSlideChanged = f
}

// FadeOut hides the slides and remembers the current position.
func (v *CarouselView) FadeOut() {
	v.saved = v.pager.ActiveSlide()
	v.visible = false
	v.body.Hide()
}

// SwapCategory loads category and shows the slides again.
func (v *CarouselView) SwapCategory(category int) {
	c := v.dataset.Category(category)
	v.category = category
	v.pager.SetSlides(c.Events)
	v.title.SetText(c.Title)
	v.visible = true
	v.body.Show()
}

// RestoreSlide returns to the slide shown before the fade when category still
// has that many events.
func (v *CarouselView) RestoreSlide(category int) {
	if category != v.category {
		return
	}
	v.pager.GoToSlide(orchestrator.RestoreSlide(v.saved, v.pager.SlideCount()), false)
}

// Category returns the category on display.
func (v *CarouselView) Category() int {
	return v.category
}

// SlidesShown reports whether the slides are shown.
func (v *CarouselView) SlidesShown() bool {
	return v.visible
}

// Pager returns the wrapped pager.
func (v *CarouselView) Pager() Pager {
	return v.pager
}

// Pulsing reports whether the slide-change pulse is on.
func (v *CarouselView) Pulsing() bool {
	return v.pulse.active()
}

func (v *CarouselView) userSlideChanged(index int) {
	v.player.Play(feedback.SlideTone)
	v.pulse.trigger()
	if v.devMode {
		log.Printf("EventSlider: Slide changed (currentIndex=%d totalSlides=%d)", index, v.pager.SlideCount())
	}
	if v.onSlideChanged != nil {
		v.onSlideChanged(index)
	}
}

// Refresh updates the pulse frame.
func (v *CarouselView) Refresh() {
	alpha := uint8(0)
	if v.pulse.active() {
		alpha = 0x22
	}
	v.frame.FillColor = withAlpha(AccentColor, alpha)
	v.frame.Refresh()
	v.BaseWidget.Refresh()
}

// CreateRenderer implements fyne.Widget.
func (v *CarouselView) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(v.content)
}
