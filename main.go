package main

import (
	"embed"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"fyne.io/fyne/v2/app"
	"github.com/gopxl/beep"

	"HistoricDates/feedback"
	"HistoricDates/history"
	"HistoricDates/orchestrator"
	"HistoricDates/trace"
	"HistoricDates/ui"
)

//go:embed assets/*
var content embed.FS

// osReader reads settings overrides from disk.
type osReader struct{}

func (osReader) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

func loadSettings() (history.Settings, error) {
	var (
		s   history.Settings
		err error
	)
	if path := strings.TrimSpace(os.Getenv("HISTDATES_CONFIG")); path != "" {
		s, err = history.LoadSettings(osReader{}, path)
	} else {
		s, err = history.LoadSettings(content, history.SettingsPath)
	}
	if err != nil {
		return s, err
	}
	if v := strings.TrimSpace(os.Getenv("HISTDATES_DEV")); v == "1" || v == "true" {
		log.Printf("HISTDATES_DEV is set, enabling diagnostics")
		s.DevMode = true
	}
	return s, nil
}

func main() {
	traceTarget := flag.Int("trace", -1, "print the effect plan for selecting this category from the initial state and exit")
	flag.Parse()

	settings, err := loadSettings()
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}
	dataset, err := history.LoadDataset(content, history.DatasetPath)
	if err != nil {
		log.Fatalf("Failed to load dataset: %v", err)
	}

	if *traceTarget >= 0 {
		if *traceTarget >= dataset.Len() {
			log.Fatalf("No category %d (have %d)", *traceTarget, dataset.Len())
		}
		timings := orchestrator.TimingsFrom(settings)
		from := orchestrator.Initial(dataset, timings)
		to, plan := orchestrator.Select(from, *traceTarget, dataset, timings)
		fmt.Print(trace.Render(dataset, from, to, plan))
		return
	}

	fyneApp := app.New()
	fyneApp.Settings().SetTheme(ui.NewCustomTheme())

	var player feedback.Player = feedback.Silent{}
	if settings.Sound {
		player = feedback.NewSpeaker(beep.SampleRate(44100))
	}

	a := NewAppManager(dataset, settings, orchestrator.RealClock())
	page := ui.NewPage(a, dataset, a.State(), ui.Options{
		Settings: settings,
		Player:   player,
	})
	a.SetView(page)

	w := ui.CreateMainWindow(a, fyneApp, page, settings)
	w.SetMaster()

	a.Start()
	w.SetOnClosed(a.Shutdown)

	w.ShowAndRun()
}
