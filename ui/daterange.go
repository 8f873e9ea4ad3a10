package ui

import (
	"image/color"
	"log"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"HistoricDates/history"
	"HistoricDates/i18n"
	"HistoricDates/orchestrator"
)

const (
	rangeTextSize   = 96
	dateActiveDelay = 300 * time.Millisecond
)

// DateRangeView shows the start and end years of the active category. Values
// are tweened by the orchestrator's TweenRange effect; every change pulses
// the view and re-validates the range.
type DateRangeView struct {
	widget.BaseWidget

	tweener orchestrator.Tweener
	after   Deferrer
	devMode bool

	start, end int
	validation history.RangeValidation
	activeDate string

	stopStart, stopEnd func()

	startText, endText *canvas.Text
	errorLabel         *widget.Label
	pulse              *pulse
	content            fyne.CanvasObject
}

// NewDateRangeView shows start/end immediately.
func NewDateRangeView(start, end int, tweener orchestrator.Tweener, after Deferrer, pulseFor time.Duration, devMode bool) *DateRangeView {
	v := &DateRangeView{tweener: tweener, after: after, devMode: devMode}

	v.startText = canvas.NewText("", StartColor)
	v.startText.TextSize = rangeTextSize
	v.startText.TextStyle.Bold = true
	v.endText = canvas.NewText("", EndColor)
	v.endText.TextSize = rangeTextSize
	v.endText.TextStyle.Bold = true

	v.errorLabel = widget.NewLabel("")
	v.errorLabel.Importance = widget.DangerImportance
	v.errorLabel.Hide()

	v.pulse = newPulse(pulseFor, after, v.Refresh)

	startTap := NewTappableContainer(v.startText, func() { v.tapDate("start") })
	endTap := NewTappableContainer(v.endText, func() { v.tapDate("end") })
	v.content = container.NewVBox(
		container.NewHBox(layout.NewSpacer(), startTap, endTap, layout.NewSpacer()),
		container.NewCenter(v.errorLabel),
	)

	v.ExtendBaseWidget(v)
	v.setValues(start, end, false)
	return v
}

// TweenTo animates both endpoints from the displayed values to start/end.
func (v *DateRangeView) TweenTo(start, end int, d time.Duration) {
	if v.stopStart != nil {
		v.stopStart()
	}
	if v.stopEnd != nil {
		v.stopEnd()
	}
	v.stopStart = v.tweener.Tween(v.start, start, d, func(x int) { v.SetValues(x, v.end) })
	v.stopEnd = v.tweener.Tween(v.end, end, d, func(x int) { v.SetValues(v.start, x) })
}

// SetValues displays start/end.
func (v *DateRangeView) SetValues(start, end int) {
	v.setValues(start, end, true)
}

func (v *DateRangeView) setValues(start, end int, pulse bool) {
	changed := start != v.start || end != v.end
	v.start, v.end = start, end
	v.validation = history.ValidateRange(start, end)
	if !v.validation.IsValid && v.devMode {
		log.Printf("DateRange: Validation errors: %v", v.validation.Errors)
	}
	if pulse && changed {
		v.pulse.trigger()
		return
	}
	v.Refresh()
}

// Displayed returns the values currently on screen.
func (v *DateRangeView) Displayed() (int, int) {
	return v.start, v.end
}

// Texts returns the rendered strings.
func (v *DateRangeView) Texts() (string, string) {
	return history.FormatDate(v.start), history.FormatDate(v.end)
}

// Validation returns the result for the displayed values.
func (v *DateRangeView) Validation() history.RangeValidation {
	return v.validation
}

// Pulsing reports whether the change pulse is on.
func (v *DateRangeView) Pulsing() bool {
	return v.pulse.active()
}

// ActiveDate is "start" or "end" shortly after a date is tapped, else "".
func (v *DateRangeView) ActiveDate() string {
	return v.activeDate
}

// ErrorText is the diagnostic shown in dev mode.
func (v *DateRangeView) ErrorText() string {
	if v.errorLabel.Hidden {
		return ""
	}
	return v.errorLabel.Text
}

func (v *DateRangeView) tapDate(which string) {
	v.activeDate = which
	v.Refresh()
	if v.devMode {
		log.Printf("DateRange: %s date clicked (%s, valid=%t)", which, rangeLabel(v.start, v.end), v.validation.IsValid)
	}
	v.after(dateActiveDelay, func() {
		if v.activeDate == which {
			v.activeDate = ""
			v.Refresh()
		}
	})
}

// Refresh redraws texts and diagnostics.
func (v *DateRangeView) Refresh() {
	s, e := v.Texts()
	v.startText.Text = s
	v.endText.Text = e

	startColor, endColor := color.Color(StartColor), color.Color(EndColor)
	if !v.validation.IsValid {
		errColor := theme.Color(theme.ColorNameError)
		startColor, endColor = errColor, errColor
	}
	if v.pulse.active() {
		startColor, endColor = withAlpha(startColor, 0xaa), withAlpha(endColor, 0xaa)
	}
	v.startText.Color, v.endText.Color = startColor, endColor
	v.startText.TextStyle.Italic = v.activeDate == "start"
	v.endText.TextStyle.Italic = v.activeDate == "end"

	if v.devMode && !v.validation.IsValid {
		v.errorLabel.SetText("⚠ " + strings.Join(v.validation.Errors, ", "))
		v.errorLabel.Show()
	} else {
		v.errorLabel.Hide()
	}

	v.startText.Refresh()
	v.endText.Refresh()
	v.BaseWidget.Refresh()
}

// CreateRenderer implements fyne.Widget.
func (v *DateRangeView) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(v.content)
}

// rangeLabel is the accessible description of both endpoints.
func rangeLabel(start, end int) string {
	return i18n.T("Start date") + ": " + history.FormatDate(start) + ", " + i18n.T("End date") + ": " + history.FormatDate(end)
}
