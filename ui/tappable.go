package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// TappableContainer turns any canvas object into a tap target.
type TappableContainer struct {
	widget.BaseWidget
	Content         fyne.CanvasObject
	OnTappedPrimary func()
}

func NewTappableContainer(c fyne.CanvasObject, onP func()) *TappableContainer {
	t := &TappableContainer{
		Content:         c,
		OnTappedPrimary: onP,
	}
	t.ExtendBaseWidget(t)
	return t
}

func (t *TappableContainer) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(t.Content)
}

func (t *TappableContainer) Tapped(_ *fyne.PointEvent) {
	if t.OnTappedPrimary != nil {
		t.OnTappedPrimary()
	}
}

func withAlpha(c color.Color, alpha uint8) color.NRGBA {
	r, g, b, _ := c.RGBA()
	return color.NRGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: alpha}
}
