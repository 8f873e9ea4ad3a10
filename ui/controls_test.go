package ui

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"

	"HistoricDates/feedback"
)

func TestNavigationBoundaries(t *testing.T) {
	test.NewTempApp(t)
	_, after := manual()
	n := NewNavigationControls(3, 0, feedback.Silent{}, after, 300*time.Millisecond, nil, nil)

	for i, want := range []struct {
		prevDisabled, nextDisabled bool
		counter                    string
	}{
		{true, false, "01/03"},
		{false, false, "02/03"},
		{false, true, "03/03"},
	} {
		n.SetActive(i)
		assert.Equal(t, want.prevDisabled, n.PrevButton().Disabled(), "prev at %d", i)
		assert.Equal(t, want.nextDisabled, n.NextButton().Disabled(), "next at %d", i)
		assert.Equal(t, want.counter, n.Counter())
	}
}

func TestNavigationTapPlaysAndPulses(t *testing.T) {
	test.NewTempApp(t)
	clock, after := manual()
	player := &recordingPlayer{}
	prev, next := 0, 0
	n := NewNavigationControls(3, 0, player, after, 300*time.Millisecond, func() { prev++ }, func() { next++ })

	test.Tap(n.PrevButton()) // disabled at 0
	assert.Equal(t, 0, prev)
	assert.Empty(t, player.tones)

	test.Tap(n.NextButton())
	assert.Equal(t, 1, next)
	assert.Equal(t, []feedback.Tone{feedback.NavTone}, player.tones)
	assert.True(t, n.Pulsing())

	clock.Advance(300 * time.Millisecond)
	assert.False(t, n.Pulsing())
}

func TestMarkerButtons(t *testing.T) {
	test.NewTempApp(t)
	clock, after := manual()
	player := &recordingPlayer{}
	var selected []int
	m := NewMarkerButtons(3, 0, player, after, 300*time.Millisecond, func(i int) { selected = append(selected, i) })

	test.Tap(m.Button(2))
	assert.Equal(t, []int{2}, selected)
	assert.Equal(t, 2, m.Pulsing())
	assert.Equal(t, []feedback.Tone{feedback.MarkerTone}, player.tones)
	// highlight follows the committed index, not the tap
	assert.Equal(t, 0, m.Active())

	clock.Advance(300 * time.Millisecond)
	assert.Equal(t, -1, m.Pulsing())

	m.SetActive(2)
	assert.Equal(t, 2, m.Active())
}

func TestNavigationGuardSilencesRefusedTaps(t *testing.T) {
	test.NewTempApp(t)
	_, after := manual()
	player := &recordingPlayer{}
	var asked []int
	next := 0
	n := NewNavigationControls(3, 1, player, after, 300*time.Millisecond, nil, func() { next++ })
	n.SetGuard(func(delta int) bool {
		asked = append(asked, delta)
		return false
	})

	test.Tap(n.NextButton())
	test.Tap(n.PrevButton())
	assert.Equal(t, []int{1, -1}, asked)
	assert.Equal(t, 0, next)
	assert.Empty(t, player.tones)
	assert.False(t, n.Pulsing())
}
