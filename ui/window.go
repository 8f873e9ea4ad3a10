package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"

	"HistoricDates/history"
	"HistoricDates/i18n"
)

// BuildContent lays the page out: heading on top, the range over the dial in
// the middle, navigation, carousel and selector buttons below.
func BuildContent(p *Page) fyne.CanvasObject {
	heading := canvas.NewText(i18n.T("Historic dates"), InkColor)
	heading.TextSize = 40
	heading.TextStyle.Bold = true

	center := container.NewStack(p.Dial, container.NewCenter(p.Range))
	bottom := container.NewVBox(p.Nav, p.Carousel, p.Markers)
	return container.NewBorder(container.NewPadded(heading), bottom, nil, nil, center)
}

// CreateMainWindow builds the window and routes keyboard input to a.
func CreateMainWindow(a App, fyneApp fyne.App, p *Page, s history.Settings) fyne.Window {
	title := fyneApp.Metadata().Name
	if title == "" {
		title = i18n.T("Historic dates")
	}
	w := fyneApp.NewWindow(title)

	w.Canvas().SetOnTypedRune(a.HandleKeyRune)
	w.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		a.HandleKeyName(ev.Name)
	})

	w.SetContent(BuildContent(p))
	w.Resize(fyne.NewSize(s.Window.Width, s.Window.Height))
	return w
}
