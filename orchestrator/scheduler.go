package orchestrator

import (
	"sync"
)

// Sink receives effects as they fall due. seq identifies the plan.
type Sink interface {
	Apply(seq int, e Effect)
}

// Scheduler executes plans. Effects sharing a delay are delivered together in
// plan order; zero-delay effects are delivered before Run returns.
type Scheduler struct {
	clock Clock
	sink  Sink
	post  func(func())

	mu      sync.Mutex
	pending int
}

// NewScheduler builds a scheduler. post moves a delivery onto the goroutine
// that owns the sink; nil delivers on the timer goroutine.
func NewScheduler(clock Clock, sink Sink, post func(func())) *Scheduler {
	if clock == nil {
		clock = RealClock()
	}
	if post == nil {
		post = func(f func()) { f() }
	}
	return &Scheduler{clock: clock, sink: sink, post: post}
}

// Run schedules every effect of p. It must be called from the sink's goroutine.
func (s *Scheduler) Run(seq int, p Plan) {
	for _, group := range p.Groups() {
		if group[0].Delay <= 0 {
			s.deliver(seq, group)
			continue
		}
		s.track(1)
		s.clock.AfterFunc(group[0].Delay, func() {
			s.post(func() {
				defer s.track(-1)
				s.deliver(seq, group)
			})
		})
	}
}

func (s *Scheduler) deliver(seq int, group Plan) {
	for _, sc := range group {
		s.sink.Apply(seq, sc.Effect)
	}
}

func (s *Scheduler) track(delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending += delta
}

// Pending returns the number of delay groups not yet delivered.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}
