package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

var (
	// StartColor and EndColor paint the two range endpoints.
	StartColor = color.NRGBA{R: 0x5d, G: 0x5f, B: 0xef, A: 0xff}
	EndColor   = color.NRGBA{R: 0xef, G: 0x5d, B: 0xa8, A: 0xff}
	// AccentColor marks active and pulsing elements.
	AccentColor = color.NRGBA{R: 0x38, G: 0x77, B: 0xee, A: 0xff}
	RingColor   = color.NRGBA{R: 0x42, G: 0x56, B: 0x7a, A: 0x33}
	InkColor    = color.NRGBA{R: 0x42, G: 0x56, B: 0x7a, A: 0xff}
)

// CustomTheme keeps the default theme and swaps the accent colors.
type CustomTheme struct {
	fyne.Theme
}

// NewCustomTheme creates a new instance of the custom theme.
func NewCustomTheme() fyne.Theme {
	return &CustomTheme{Theme: theme.DefaultTheme()}
}

// Color returns the themed color for name.
func (t *CustomTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary:
		return AccentColor
	case theme.ColorNameFocus:
		return withAlpha(AccentColor, 0x66)
	}
	return t.Theme.Color(name, variant)
}
