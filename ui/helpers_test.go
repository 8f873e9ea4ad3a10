package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"github.com/stretchr/testify/require"

	"HistoricDates/feedback"
	"HistoricDates/history"
	"HistoricDates/orchestrator"
)

type fakeApp struct {
	selected []int
	slides   []int
	prev     int
	next     int
	refuse   bool
}

func (f *fakeApp) Select(i int)               { f.selected = append(f.selected, i) }
func (f *fakeApp) Prev()                      { f.prev++ }
func (f *fakeApp) Next()                      { f.next++ }
func (f *fakeApp) CanStep(int) bool           { return !f.refuse }
func (f *fakeApp) SlideChanged(i int)         { f.slides = append(f.slides, i) }
func (f *fakeApp) HandleKeyRune(rune)         {}
func (f *fakeApp) HandleKeyName(fyne.KeyName) {}

type recordingPlayer struct {
	tones []feedback.Tone
}

func (p *recordingPlayer) Play(t feedback.Tone) { p.tones = append(p.tones, t) }

func testDataset(t *testing.T) *history.Dataset {
	t.Helper()
	d, err := history.NewDataset([]history.HistoricCategory{
		{Title: "First", Events: []history.HistoricEvent{{Date: "1000", Description: "a"}, {Date: "1200", Description: "b"}}},
		{Title: "Second", Events: []history.HistoricEvent{{Date: "1300", Description: "c"}, {Date: "1350", Description: "d"}, {Date: "1400", Description: "e"}}},
		{Title: "Third", Events: []history.HistoricEvent{{Date: "1500", Description: "f"}}},
	})
	require.NoError(t, err)
	return d
}

func manual() (*orchestrator.ManualClock, Deferrer) {
	c := orchestrator.NewManualClock()
	return c, ClockDeferrer(c)
}
