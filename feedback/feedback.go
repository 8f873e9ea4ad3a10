// Package feedback provides the short descending tone every interactive view
// plays on activation. One Player is created by the application and injected
// into the views.
package feedback

import (
	"log"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Tone is an exponential frequency sweep with an exponential gain decay.
type Tone struct {
	From     float64 // Hz
	To       float64 // Hz
	Gain     float64
	Duration time.Duration
}

// Tones used by the views.
var (
	NavTone    = Tone{From: 800, To: 400, Gain: 0.3, Duration: 100 * time.Millisecond}
	MarkerTone = Tone{From: 700, To: 350, Gain: 0.25, Duration: 120 * time.Millisecond}
	SlideTone  = Tone{From: 600, To: 300, Gain: 0.2, Duration: 150 * time.Millisecond}
)

const endGain = 0.01

// Player plays a tone without blocking.
type Player interface {
	Play(Tone)
}

// Silent discards every tone.
type Silent struct{}

// Play implements Player.
func (Silent) Play(Tone) {}

// Speaker plays tones through the default audio device. The device is opened
// on first use and kept for the life of the process.
type Speaker struct {
	sampleRate beep.SampleRate

	once    sync.Once
	enabled bool
	mu      sync.Mutex
}

// NewSpeaker returns a lazily initialized speaker player.
func NewSpeaker(sampleRate beep.SampleRate) *Speaker {
	return &Speaker{sampleRate: sampleRate}
}

func (s *Speaker) init() {
	if err := speaker.Init(s.sampleRate, s.sampleRate.N(time.Second/10)); err != nil {
		log.Printf("Audio disabled: Failed to initialize speaker: %v", err)
		return
	}
	s.enabled = true
}

// Play implements Player.
func (s *Speaker) Play(t Tone) {
	s.once.Do(s.init)
	if !s.enabled {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	speaker.Play(Streamer(t, s.sampleRate))
}

// Streamer renders t as a finite stereo stream at sampleRate.
func Streamer(t Tone, sampleRate beep.SampleRate) beep.Streamer {
	total := sampleRate.N(t.Duration)
	pos := 0
	phase := 0.0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= total {
			return 0, false
		}
		n := 0
		for i := range samples {
			if pos >= total {
				break
			}
			progress := float64(pos) / float64(total)
			freq := t.From * math.Pow(t.To/t.From, progress)
			gain := t.Gain * math.Pow(endGain/t.Gain, progress)
			v := gain * math.Sin(phase)
			samples[i][0], samples[i][1] = v, v
			phase += 2 * math.Pi * freq / float64(sampleRate)
			pos++
			n++
		}
		return n, true
	})
}
