package ui

import (
	"time"

	"fyne.io/fyne/v2"

	"HistoricDates/orchestrator"
)

// FyneTweener runs integer tweens as linear Fyne animations.
type FyneTweener struct{}

// Tween implements orchestrator.Tweener.
func (FyneTweener) Tween(from, to int, d time.Duration, step func(int)) func() {
	if d <= 0 || from == to {
		step(to)
		return func() {}
	}
	anim := fyne.NewAnimation(d, func(p float32) {
		step(orchestrator.Interpolate(from, to, float64(p)))
	})
	anim.Curve = fyne.AnimationLinear
	anim.Start()
	return anim.Stop
}

// AngleAnimator drives the dial rotation.
type AngleAnimator interface {
	Animate(from, to float64, d time.Duration, step func(float64)) (stop func())
}

// FyneAnimator eases the rotation in and out like a CSS transition.
type FyneAnimator struct{}

// Animate implements AngleAnimator.
func (FyneAnimator) Animate(from, to float64, d time.Duration, step func(float64)) func() {
	if d <= 0 {
		step(to)
		return func() {}
	}
	anim := fyne.NewAnimation(d, func(p float32) {
		step(from + (to-from)*float64(p))
	})
	anim.Curve = fyne.AnimationEaseInOut
	anim.Start()
	return anim.Stop
}

// InstantAnimator jumps to the final angle.
type InstantAnimator struct{}

// Animate implements AngleAnimator.
func (InstantAnimator) Animate(_, to float64, _ time.Duration, step func(float64)) func() {
	step(to)
	return func() {}
}
