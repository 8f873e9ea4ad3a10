package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"HistoricDates/feedback"
	"HistoricDates/history"
)

// NavigationControls is the "NN/NN" counter with previous/next buttons. Each
// button disables itself at its boundary.
type NavigationControls struct {
	widget.BaseWidget

	total  int
	active int
	player feedback.Player
	guard  func(delta int) bool

	counter    *widget.Label
	prev, next *widget.Button
	pulse      *pulse
	content    fyne.CanvasObject
}

// NewNavigationControls creates controls for total categories.
func NewNavigationControls(total, active int, player feedback.Player, after Deferrer, pulseFor time.Duration, onPrev, onNext func()) *NavigationControls {
	n := &NavigationControls{total: total, player: player}
	n.counter = widget.NewLabel("")
	n.prev = widget.NewButtonWithIcon("", theme.NavigateBackIcon(), func() { n.activate(-1, onPrev) })
	n.next = widget.NewButtonWithIcon("", theme.NavigateNextIcon(), func() { n.activate(1, onNext) })
	n.pulse = newPulse(pulseFor, after, n.Refresh)
	n.content = container.NewVBox(n.counter, container.NewHBox(n.prev, n.next))

	n.ExtendBaseWidget(n)
	n.SetActive(active)
	return n
}

// SetActive updates the counter and the boundary state of both buttons.
func (n *NavigationControls) SetActive(i int) {
	n.active = i
	n.counter.SetText(history.FormatCounter(i, n.total))
	if i == 0 {
		n.prev.Disable()
	} else {
		n.prev.Enable()
	}
	if i == n.total-1 {
		n.next.Disable()
	} else {
		n.next.Enable()
	}
}

// Counter returns the counter text.
func (n *NavigationControls) Counter() string {
	return n.counter.Text
}

// PrevButton returns the previous button.
func (n *NavigationControls) PrevButton() *widget.Button {
	return n.prev
}

// NextButton returns the next button.
func (n *NavigationControls) NextButton() *widget.Button {
	return n.next
}

// Pulsing reports whether the click pulse is on.
func (n *NavigationControls) Pulsing() bool {
	return n.pulse.active()
}

// SetGuard installs a check consulted before a tap is acted on. A refused
// tap stays silent.
func (n *NavigationControls) SetGuard(f func(delta int) bool) {
	n.guard = f
}

func (n *NavigationControls) activate(delta int, f func()) {
	if n.guard != nil && !n.guard(delta) {
		return
	}
	n.player.Play(feedback.NavTone)
	n.pulse.trigger()
	if f != nil {
		f()
	}
}

// Refresh marks both buttons while pulsing.
func (n *NavigationControls) Refresh() {
	imp := widget.MediumImportance
	if n.pulse.active() {
		imp = widget.HighImportance
	}
	n.prev.Importance, n.next.Importance = imp, imp
	n.prev.Refresh()
	n.next.Refresh()
	n.BaseWidget.Refresh()
}

// CreateRenderer implements fyne.Widget.
func (n *NavigationControls) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(n.content)
}
