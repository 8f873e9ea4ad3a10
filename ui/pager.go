package ui

import (
	"fmt"
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"HistoricDates/history"
	"HistoricDates/i18n"
)

// Pager is the paging capability CarouselView relies on. Programmatic moves
// through GoToSlide do not fire the change callback; user moves do.
type Pager interface {
	CanvasObject() fyne.CanvasObject
	SetSlides(events []history.HistoricEvent)
	GoToSlide(index int, animate bool)
	ActiveSlide() int
	SlideCount() int
	OnActiveSlideChanged(func(index int))
	OnReachEnd(func())
}

const slideFadeDuration = 200 * time.Millisecond

// SlidePager shows one event at a time with previous/next buttons.
type SlidePager struct {
	slides []history.HistoricEvent
	active int

	onChanged func(int)
	onEnd     func()

	year        *canvas.Text
	description *widget.Label
	position    *widget.Label
	prev, next  *widget.Button
	object      fyne.CanvasObject
}

// NewSlidePager creates an empty pager.
func NewSlidePager() *SlidePager {
	p := &SlidePager{}
	p.year = canvas.NewText("", StartColor)
	p.year.TextSize = 25
	p.year.TextStyle.Bold = true
	p.description = widget.NewLabel("")
	p.description.Wrapping = fyne.TextWrapWord
	p.position = widget.NewLabel("")
	p.prev = widget.NewButtonWithIcon("", theme.NavigateBackIcon(), func() { p.userMove(-1) })
	p.next = widget.NewButtonWithIcon("", theme.NavigateNextIcon(), func() { p.userMove(1) })

	body := container.NewVBox(p.year, p.description, p.position)
	p.object = container.NewBorder(nil, nil, container.NewCenter(p.prev), container.NewCenter(p.next), body)
	return p
}

// CanvasObject implements Pager.
func (p *SlidePager) CanvasObject() fyne.CanvasObject {
	return p.object
}

// SetSlides replaces the slides and returns to the first one.
func (p *SlidePager) SetSlides(events []history.HistoricEvent) {
	p.slides = events
	p.active = 0
	p.render()
}

// GoToSlide implements Pager.
func (p *SlidePager) GoToSlide(index int, animate bool) {
	if index < 0 || index >= len(p.slides) {
		return
	}
	p.active = index
	p.render()
	if animate {
		target := p.year.Color
		anim := canvas.NewColorRGBAAnimation(color.Transparent, target, slideFadeDuration, func(c color.Color) {
			p.year.Color = c
			p.year.Refresh()
		})
		anim.Start()
	}
}

// ActiveSlide implements Pager.
func (p *SlidePager) ActiveSlide() int {
	return p.active
}

// SlideCount implements Pager.
func (p *SlidePager) SlideCount() int {
	return len(p.slides)
}

// OnActiveSlideChanged implements Pager.
func (p *SlidePager) OnActiveSlideChanged(f func(int)) {
	p.onChanged = f
}

// OnReachEnd implements Pager.
func (p *SlidePager) OnReachEnd(f func()) {
	p.onEnd = f
}

// Next moves forward as if the user pressed the next button.
func (p *SlidePager) Next() {
	p.userMove(1)
}

// Prev moves back as if the user pressed the previous button.
func (p *SlidePager) Prev() {
	p.userMove(-1)
}

func (p *SlidePager) userMove(delta int) {
	target := p.active + delta
	if target < 0 || target >= len(p.slides) {
		return
	}
	p.active = target
	p.render()
	if p.onChanged != nil {
		p.onChanged(target)
	}
	if target == len(p.slides)-1 && p.onEnd != nil {
		p.onEnd()
	}
}

func (p *SlidePager) render() {
	if len(p.slides) == 0 {
		p.year.Text = ""
		p.description.SetText("")
		p.position.SetText("")
		p.prev.Disable()
		p.next.Disable()
		p.year.Refresh()
		return
	}
	e := p.slides[p.active]
	p.year.Text = history.FormatDateText(e.Date)
	p.year.Refresh()
	p.description.SetText(e.Description)
	p.position.SetText(fmt.Sprintf(i18n.T("Event %d of %d"), p.active+1, len(p.slides)))

	if p.active == 0 {
		p.prev.Disable()
	} else {
		p.prev.Enable()
	}
	if p.active == len(p.slides)-1 {
		p.next.Disable()
	} else {
		p.next.Enable()
	}
}
