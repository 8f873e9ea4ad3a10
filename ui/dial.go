package ui

import (
	"image/color"
	"math"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"HistoricDates/orchestrator"
)

const (
	dialMinSize        = 320
	markerActiveSize   = 56
	markerInactiveSize = 14
	// activeScreenAngle is where the active marker rests, in screen degrees
	// (0 = east, y grows downwards).
	activeScreenAngle = -60
)

// DialView draws one marker per category around a ring. The active marker is
// enlarged, numbered and labelled with its category title.
type DialView struct {
	widget.BaseWidget

	titles   []string
	active   int
	angle    float64
	onSelect func(int)
	animator AngleAnimator
	stop     func()

	ring    *canvas.Circle
	title   *canvas.Text
	dots    []*canvas.Circle
	numbers []*canvas.Text
	markers []*TappableContainer
}

// NewDialView creates a dial at angle with marker active highlighted.
func NewDialView(titles []string, active int, angle float64, animator AngleAnimator, onSelect func(int)) *DialView {
	if animator == nil {
		animator = FyneAnimator{}
	}
	d := &DialView{titles: titles, active: active, angle: angle, animator: animator, onSelect: onSelect}

	d.ring = canvas.NewCircle(color.Transparent)
	d.ring.StrokeColor = RingColor
	d.ring.StrokeWidth = 1

	d.title = canvas.NewText("", InkColor)
	d.title.TextStyle.Bold = true
	d.title.TextSize = 20

	for i := range titles {
		dot := canvas.NewCircle(InkColor)
		dot.StrokeColor = InkColor
		dot.StrokeWidth = 1
		num := canvas.NewText(strconv.Itoa(i+1), InkColor)
		num.Alignment = fyne.TextAlignCenter
		num.TextSize = 20

		index := i
		marker := NewTappableContainer(container.NewStack(dot, container.NewCenter(num)), func() {
			if d.onSelect != nil {
				d.onSelect(index)
			}
		})

		d.dots = append(d.dots, dot)
		d.numbers = append(d.numbers, num)
		d.markers = append(d.markers, marker)
	}

	d.ExtendBaseWidget(d)
	d.applyStyle()
	return d
}

// SetActive flags marker i as active.
func (d *DialView) SetActive(i int) {
	d.active = i
	d.applyStyle()
	d.Refresh()
}

// Active returns the highlighted marker.
func (d *DialView) Active() int {
	return d.active
}

// Angle returns the angle currently drawn.
func (d *DialView) Angle() float64 {
	return d.angle
}

// SetAngle rotates the dial to angle over dur. A running rotation is replaced,
// starting from wherever it had got to.
func (d *DialView) SetAngle(angle float64, dur time.Duration) {
	if d.stop != nil {
		d.stop()
	}
	d.stop = d.animator.Animate(d.angle, angle, dur, func(a float64) {
		d.angle = a
		d.Refresh()
	})
}

// Marker returns the tap target of marker i.
func (d *DialView) Marker(i int) *TappableContainer {
	return d.markers[i]
}

func (d *DialView) applyStyle() {
	for i, dot := range d.dots {
		if i == d.active {
			dot.FillColor = color.White
			dot.StrokeColor = RingColor
			d.numbers[i].Show()
			continue
		}
		dot.FillColor = InkColor
		dot.StrokeColor = InkColor
		d.numbers[i].Hide()
	}
	if d.active >= 0 && d.active < len(d.titles) {
		d.title.Text = d.titles[d.active]
	}
}

// CreateRenderer implements fyne.Widget.
func (d *DialView) CreateRenderer() fyne.WidgetRenderer {
	objects := []fyne.CanvasObject{d.ring}
	for _, m := range d.markers {
		objects = append(objects, m)
	}
	objects = append(objects, d.title)
	return &dialRenderer{d: d, objects: objects}
}

type dialRenderer struct {
	d       *DialView
	objects []fyne.CanvasObject
}

func (r *dialRenderer) Layout(size fyne.Size) {
	d := r.d
	n := len(d.markers)
	center := fyne.NewPos(size.Width/2, size.Height/2)
	radius := float32(math.Min(float64(size.Width), float64(size.Height)))/2 - markerActiveSize/2

	d.ring.Move(fyne.NewPos(center.X-radius, center.Y-radius))
	d.ring.Resize(fyne.NewSize(radius*2, radius*2))

	for i, m := range d.markers {
		s := float32(markerInactiveSize)
		if i == d.active {
			s = markerActiveSize
		}
		p := markerPosition(center, radius, screenAngle(d.angle, i, n))
		m.Move(fyne.NewPos(p.X-s/2, p.Y-s/2))
		m.Resize(fyne.NewSize(s, s))
		if i == d.active {
			d.title.Move(fyne.NewPos(p.X+s/2+16, p.Y-d.title.MinSize().Height/2))
			d.title.Resize(d.title.MinSize())
		}
	}
}

func (r *dialRenderer) MinSize() fyne.Size {
	return fyne.NewSize(dialMinSize, dialMinSize)
}

func (r *dialRenderer) Refresh() {
	r.d.applyStyle()
	r.Layout(r.d.Size())
	for _, o := range r.objects {
		canvas.Refresh(o)
	}
}

func (r *dialRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *dialRenderer) Destroy() {}

// markerAngle is the dial angle of marker i. With angle set by
// orchestrator.AngleFor(k, n) marker k always lands on 2*Step(n).
func markerAngle(angle float64, i, n int) float64 {
	return angle + float64(i+1)*orchestrator.Step(n)
}

// screenAngle maps marker i to screen degrees so the active slot sits at
// activeScreenAngle.
func screenAngle(angle float64, i, n int) float64 {
	return markerAngle(angle, i, n) - 2*orchestrator.Step(n) + activeScreenAngle
}

func markerPosition(center fyne.Position, radius float32, deg float64) fyne.Position {
	rad := deg * math.Pi / 180
	return fyne.NewPos(
		center.X+radius*float32(math.Cos(rad)),
		center.Y+radius*float32(math.Sin(rad)),
	)
}
