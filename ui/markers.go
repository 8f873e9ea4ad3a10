package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"HistoricDates/feedback"
)

// MarkerButtons is a row with one selector button per category.
type MarkerButtons struct {
	widget.BaseWidget

	active  int
	pulsing int
	player  feedback.Player
	after   Deferrer
	pulseD  time.Duration

	buttons []*widget.Button
	content fyne.CanvasObject
}

// NewMarkerButtons creates count buttons calling onSelect with their index.
func NewMarkerButtons(count, active int, player feedback.Player, after Deferrer, pulseFor time.Duration, onSelect func(int)) *MarkerButtons {
	m := &MarkerButtons{active: active, pulsing: -1, player: player, after: after, pulseD: pulseFor}
	row := container.NewHBox(layout.NewSpacer())
	for i := 0; i < count; i++ {
		index := i
		b := widget.NewButton("", func() { m.tap(index, onSelect) })
		m.buttons = append(m.buttons, b)
		row.Add(b)
	}
	row.Add(layout.NewSpacer())
	m.content = row

	m.ExtendBaseWidget(m)
	m.applyStyle()
	return m
}

// SetActive highlights button i.
func (m *MarkerButtons) SetActive(i int) {
	m.active = i
	m.applyStyle()
}

// Active returns the highlighted index.
func (m *MarkerButtons) Active() int {
	return m.active
}

// Pulsing returns the index of the pulsing button or -1.
func (m *MarkerButtons) Pulsing() int {
	return m.pulsing
}

// Button returns button i.
func (m *MarkerButtons) Button(i int) *widget.Button {
	return m.buttons[i]
}

func (m *MarkerButtons) tap(index int, onSelect func(int)) {
	m.player.Play(feedback.MarkerTone)
	m.pulsing = index
	m.applyStyle()
	m.after(m.pulseD, func() {
		m.pulsing = -1
		m.applyStyle()
	})
	if onSelect != nil {
		onSelect(index)
	}
}

func (m *MarkerButtons) applyStyle() {
	for i, b := range m.buttons {
		switch {
		case i == m.pulsing:
			b.Importance = widget.WarningImportance
		case i == m.active:
			b.Importance = widget.HighImportance
		default:
			b.Importance = widget.LowImportance
		}
		b.Refresh()
	}
}

// CreateRenderer implements fyne.Widget.
func (m *MarkerButtons) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(m.content)
}
