package ui

import (
	"sync"
	"time"
)

// pulse is a momentary on-state that switches itself off after d. A newer
// trigger extends the pulse.
type pulse struct {
	mu      sync.Mutex
	on      bool
	gen     int
	d       time.Duration
	after   Deferrer
	refresh func()
}

func newPulse(d time.Duration, after Deferrer, refresh func()) *pulse {
	return &pulse{d: d, after: after, refresh: refresh}
}

func (p *pulse) trigger() {
	p.mu.Lock()
	p.on = true
	p.gen++
	gen := p.gen
	p.mu.Unlock()
	p.refresh()

	p.after(p.d, func() {
		p.mu.Lock()
		if p.gen != gen {
			p.mu.Unlock()
			return
		}
		p.on = false
		p.mu.Unlock()
		p.refresh()
	})
}

func (p *pulse) active() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.on
}
