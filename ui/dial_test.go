package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"

	"HistoricDates/orchestrator"
)

func TestDialTapSelectsIncludingActive(t *testing.T) {
	test.NewTempApp(t)
	var got []int
	d := NewDialView([]string{"A", "B", "C"}, 0, orchestrator.AngleFor(0, 3), InstantAnimator{}, func(i int) { got = append(got, i) })

	test.Tap(d.Marker(2))
	test.Tap(d.Marker(0))

	assert.Equal(t, []int{2, 0}, got)
}

func TestDialSetActiveAndAngle(t *testing.T) {
	test.NewTempApp(t)
	d := NewDialView([]string{"A", "B", "C"}, 0, orchestrator.AngleFor(0, 3), InstantAnimator{}, nil)

	d.SetActive(1)
	d.SetAngle(orchestrator.AngleFor(1, 3), 0)

	assert.Equal(t, 1, d.Active())
	assert.InDelta(t, orchestrator.AngleFor(1, 3), d.Angle(), 1e-9)
	assert.Equal(t, "B", d.title.Text)
	assert.True(t, d.numbers[1].Visible())
	assert.False(t, d.numbers[0].Visible())
}

func TestActiveMarkerRestsAtSameScreenAngle(t *testing.T) {
	for _, n := range []int{3, 6, 7} {
		for k := 0; k < n; k++ {
			angle := orchestrator.AngleFor(k, n)
			assert.InDelta(t, float64(activeScreenAngle), screenAngle(angle, k, n), 1e-9, "n=%d k=%d", n, k)
		}
	}
}

func TestMarkerPosition(t *testing.T) {
	c := fyne.NewPos(100, 100)
	p := markerPosition(c, 50, 0)
	assert.InDelta(t, 150, p.X, 1e-3)
	assert.InDelta(t, 100, p.Y, 1e-3)

	p = markerPosition(c, 50, 90)
	assert.InDelta(t, 100, p.X, 1e-3)
	assert.InDelta(t, 150, p.Y, 1e-3)
}

func TestDialLayoutPlacesActiveMarker(t *testing.T) {
	test.NewTempApp(t)
	d := NewDialView([]string{"A", "B", "C"}, 0, orchestrator.AngleFor(0, 3), InstantAnimator{}, nil)
	w := test.NewWindow(d)
	defer w.Close()
	w.Resize(fyne.NewSize(400, 400))

	m := d.Marker(0)
	assert.Equal(t, fyne.NewSize(markerActiveSize, markerActiveSize), m.Size())
	assert.Equal(t, fyne.NewSize(markerInactiveSize, markerInactiveSize), d.Marker(1).Size())
}
