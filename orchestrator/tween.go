package orchestrator

import (
	"math"
	"time"
)

// Tweener animates an integer from one value to another, calling step on
// every frame. The last call to step always receives to. The returned func
// stops the animation early.
type Tweener interface {
	Tween(from, to int, d time.Duration, step func(v int)) (stop func())
}

// Interpolate returns the linearly eased value at progress in [0, 1], rounded
// to the nearest integer. Progress at or past 1 returns exactly to.
func Interpolate(from, to int, progress float64) int {
	if progress <= 0 {
		return from
	}
	if progress >= 1 {
		return to
	}
	return from + int(math.Round(float64(to-from)*progress))
}

// InstantTweener jumps straight to the final value.
type InstantTweener struct{}

// Tween implements Tweener.
func (InstantTweener) Tween(_, to int, _ time.Duration, step func(int)) func() {
	step(to)
	return func() {}
}
