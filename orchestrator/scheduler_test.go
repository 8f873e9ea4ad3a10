package orchestrator

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	clock *ManualClock
	got   []string
}

func (r *recordingSink) Apply(seq int, e Effect) {
	r.got = append(r.got, fmt.Sprintf("%d@%s:%s", seq, r.clock.Now(), Name(e)))
}

func TestSchedulerDeliversInOrder(t *testing.T) {
	d := testDataset(t)
	timings := DefaultTimings()
	clock := NewManualClock()
	sink := &recordingSink{clock: clock}
	sched := NewScheduler(clock, sink, nil)

	s := Initial(d, timings)
	next, plan := Select(s, 2, d, timings)
	sched.Run(next.Seq, plan)

	// zero-delay effects are applied synchronously
	assert.Equal(t, []string{
		"1@0s:tween-range",
		"1@0s:highlight",
		"1@0s:carousel-hide",
	}, sink.got)
	assert.Equal(t, 3, sched.Pending())

	clock.Advance(time.Second)
	assert.Equal(t, []string{
		"1@0s:tween-range",
		"1@0s:highlight",
		"1@0s:carousel-hide",
		"1@150ms:carousel-swap",
		"1@150ms:commit",
		"1@200ms:carousel-restore",
		"1@300ms:rotate",
	}, sink.got)
	assert.Equal(t, 0, sched.Pending())
}

func TestSchedulerOverlappingPlansBothComplete(t *testing.T) {
	d := testDataset(t)
	timings := DefaultTimings()
	clock := NewManualClock()

	var commits []int
	var angles []float64
	sink := sinkFunc(func(_ int, e Effect) {
		switch v := e.(type) {
		case CommitIndex:
			commits = append(commits, v.Index)
		case RotateDial:
			angles = append(angles, v.Angle)
		}
	})
	sched := NewScheduler(clock, sink, nil)

	s := Initial(d, timings)
	s, p1 := Select(s, 2, d, timings)
	sched.Run(s.Seq, p1)
	clock.Advance(50 * time.Millisecond)
	s, p2 := Select(s, 1, d, timings)
	sched.Run(s.Seq, p2)
	clock.Advance(time.Second)

	assert.Equal(t, []int{2, 1}, commits)
	require.Len(t, angles, 2)
	assert.InDelta(t, AngleFor(1, 3), angles[len(angles)-1], 1e-9)
}

func TestSchedulerPostsDeliveries(t *testing.T) {
	clock := NewManualClock()
	var queued []func()
	var got []string
	sched := NewScheduler(clock, sinkFunc(func(_ int, e Effect) {
		got = append(got, Name(e))
	}), func(f func()) { queued = append(queued, f) })

	sched.Run(1, Plan{{10 * time.Millisecond, CommitIndex{Index: 1}}})
	clock.Advance(20 * time.Millisecond)

	assert.Empty(t, got, "delivery waits for the owner goroutine")
	require.Len(t, queued, 1)
	assert.Equal(t, 1, sched.Pending())

	queued[0]()
	assert.Equal(t, []string{"commit"}, got)
	assert.Equal(t, 0, sched.Pending())
}

type sinkFunc func(seq int, e Effect)

func (f sinkFunc) Apply(seq int, e Effect) { f(seq, e) }
