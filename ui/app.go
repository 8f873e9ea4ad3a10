// Package ui renders the widget with Fyne: the dial, the animated date range,
// the event carousel, the previous/next controls and the category buttons.
//
// Views never change the selection themselves. They forward requests to App
// and are updated by Page.Apply with the effects the orchestrator produced.
package ui

import (
	"time"

	"fyne.io/fyne/v2"

	"HistoricDates/orchestrator"
)

// App is what the views need from the application.
type App interface {
	Select(index int)
	Prev()
	Next()
	// CanStep reports whether Prev (-1) or Next (+1) would be honoured now.
	CanStep(delta int) bool
	// SlideChanged reports a user move inside the shown category.
	SlideChanged(index int)
	HandleKeyRune(rune)
	HandleKeyName(fyne.KeyName)
}

// Deferrer runs f after d on the UI goroutine.
type Deferrer func(d time.Duration, f func())

// FyneDeferrer uses wall-clock timers and hands f to fyne.Do.
func FyneDeferrer(d time.Duration, f func()) {
	time.AfterFunc(d, func() { fyne.Do(f) })
}

// ClockDeferrer runs f directly when c fires.
func ClockDeferrer(c orchestrator.Clock) Deferrer {
	return func(d time.Duration, f func()) {
		c.AfterFunc(d, f)
	}
}
