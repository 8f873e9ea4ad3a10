package history

import (
	"fmt"
	"log"

	"gopkg.in/yaml.v3"
)

// SettingsPath is the embedded location of the default settings.
const SettingsPath = "assets/settings.yaml"

// Distance modes for Settings.DistanceFrom.
const (
	DistanceLatest    = "latest"
	DistanceCommitted = "committed"
)

// Settings holds the widget timings and switches. Durations are milliseconds.
type Settings struct {
	UnitRotationMs int    `yaml:"unit_rotation_ms"` // dial time per index step
	SettleMs       int    `yaml:"settle_ms"`        // added to the date counter animation
	AngleDelayMs   int    `yaml:"angle_delay_ms"`   // highlight -> rotation stagger
	FadeMs         int    `yaml:"fade_ms"`          // carousel hide before swap
	RestoreDelayMs int    `yaml:"restore_delay_ms"` // swap -> slide position restore
	PulseMs        int    `yaml:"pulse_ms"`         // buttons
	RangePulseMs   int    `yaml:"range_pulse_ms"`   // date range
	SlidePulseMs   int    `yaml:"slide_pulse_ms"`   // carousel
	DistanceFrom   string `yaml:"distance_from"`
	DevMode        bool   `yaml:"dev_mode"`
	Sound          bool   `yaml:"sound"`

	Window struct {
		Width  float32 `yaml:"width"`
		Height float32 `yaml:"height"`
	} `yaml:"window"`
}

// DefaultSettings returns the built-in timings.
func DefaultSettings() Settings {
	s := Settings{
		UnitRotationMs: 300,
		SettleMs:       300,
		AngleDelayMs:   300,
		FadeMs:         150,
		RestoreDelayMs: 50,
		PulseMs:        300,
		RangePulseMs:   600,
		SlidePulseMs:   400,
		DistanceFrom:   DistanceLatest,
		Sound:          true,
	}
	s.Window.Width = 720
	s.Window.Height = 640
	return s
}

// ParseSettings overlays yaml data on DefaultSettings.
func ParseSettings(data []byte) (Settings, error) {
	s := DefaultSettings()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("unmarshal settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// LoadSettings reads settings from path through reader.
func LoadSettings(reader AppContentReader, path string) (Settings, error) {
	data, err := reader.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("read settings: %w", err)
	}
	s, err := ParseSettings(data)
	if err != nil {
		return Settings{}, err
	}
	log.Printf("Loaded settings from %s (distance_from=%s, dev_mode=%t)", path, s.DistanceFrom, s.DevMode)
	return s, nil
}

// Validate rejects negative timings and unknown modes.
func (s Settings) Validate() error {
	for name, v := range map[string]int{
		"unit_rotation_ms": s.UnitRotationMs,
		"settle_ms":        s.SettleMs,
		"angle_delay_ms":   s.AngleDelayMs,
		"fade_ms":          s.FadeMs,
		"restore_delay_ms": s.RestoreDelayMs,
		"pulse_ms":         s.PulseMs,
		"range_pulse_ms":   s.RangePulseMs,
		"slide_pulse_ms":   s.SlidePulseMs,
	} {
		if v < 0 {
			return fmt.Errorf("settings: %s must be >= 0, got %d", name, v)
		}
	}
	switch s.DistanceFrom {
	case DistanceLatest, DistanceCommitted:
	default:
		return fmt.Errorf("settings: unknown distance_from %q", s.DistanceFrom)
	}
	return nil
}
