// Package main contains the application wiring and the AppManager, the page
// root that owns the selection state and coordinates the orchestrator, the
// effect scheduler and the views.
//
// Maintenance notes / tips:
//   - Concurrency model: every selection request is a control.Command handled
//     by a single command-loop goroutine (see `commandLoop`). Scheduled
//     effects fire on timer goroutines and are posted back onto the same loop
//     (CmdDeliver), so `state` has exactly one writer. View updates leave the
//     loop through `fyne.Do`.
//   - `cmdCh` is a buffered channel used to enqueue commands from the UI. The
//     UI side drops a request when the channel stays full for a short time;
//     effect deliveries block instead, since losing one would leave a view out
//     of sync.
//   - In-flight effect plans are never cancelled. Two quick clicks run both
//     plans to completion and the later writes win on the views.
package main

import (
	"context"
	"log"
	"sync"
	"time"

	"fyne.io/fyne/v2"

	"HistoricDates/control"
	"HistoricDates/history"
	"HistoricDates/orchestrator"
)

// EffectView receives effects once they fall due.
type EffectView interface {
	Apply(orchestrator.Effect)
}

// AppManager is the main application struct, holding all state.
type AppManager struct {
	dataset  *history.Dataset
	settings history.Settings
	timings  orchestrator.Timings

	stateLock sync.RWMutex
	state     orchestrator.State

	cmdCh     chan control.Command
	cmdCtx    context.Context
	cmdCancel context.CancelFunc
	running   bool

	scheduler *orchestrator.Scheduler
	view      EffectView
	do        func(func())
}

// NewAppManager creates a new application manager. The command loop is not
// running until Start is called; until then commands are handled inline.
func NewAppManager(d *history.Dataset, s history.Settings, clock orchestrator.Clock) *AppManager {
	a := &AppManager{
		dataset:  d,
		settings: s,
		timings:  orchestrator.TimingsFrom(s),
		do:       fyne.Do,
	}
	a.state = orchestrator.Initial(d, a.timings)
	a.cmdCh = make(chan control.Command, 256)
	a.cmdCtx, a.cmdCancel = context.WithCancel(context.Background())
	a.scheduler = orchestrator.NewScheduler(clock, a, a.post)
	log.Printf("Loaded %d categories.", d.Len())
	return a
}

// SetView attaches the views that effects are pushed to.
func (a *AppManager) SetView(v EffectView) {
	a.view = v
}

// Start launches the command loop.
func (a *AppManager) Start() {
	a.running = true
	go a.commandLoop()
}

// State returns a copy of the current selection state.
func (a *AppManager) State() orchestrator.State {
	a.stateLock.RLock()
	defer a.stateLock.RUnlock()
	return a.state
}

// Select requests category index.
func (a *AppManager) Select(index int) {
	a.EnqueueCommand(control.Command{Type: control.CmdSelect, Index: index})
}

// Prev requests the previous category.
func (a *AppManager) Prev() {
	a.EnqueueCommand(control.Command{Type: control.CmdPrev})
}

// Next requests the next category.
func (a *AppManager) Next() {
	a.EnqueueCommand(control.Command{Type: control.CmdNext})
}

// EnqueueCommand posts a command to the internal command loop.
func (a *AppManager) EnqueueCommand(cmd control.Command) {
	if !a.running {
		a.handle(cmd)
		return
	}
	// Try to enqueue the command but avoid blocking UI indefinitely. If the
	// channel stays full for the configured short timeout, drop and log.
	select {
	case a.cmdCh <- cmd:
	case <-time.After(150 * time.Millisecond):
		log.Printf("EnqueueCommand timeout: dropping command")
	}
}

// post hands a due effect group to the command loop.
func (a *AppManager) post(f func()) {
	if !a.running {
		f()
		return
	}
	select {
	case a.cmdCh <- control.Command{Type: control.CmdDeliver, Deliver: f}:
	case <-a.cmdCtx.Done():
	}
}

func (a *AppManager) commandLoop() {
	for {
		select {
		case <-a.cmdCtx.Done():
			return
		case cmd := <-a.cmdCh:
			a.handle(cmd)
		}
	}
}

func (a *AppManager) handle(cmd control.Command) {
	switch cmd.Type {
	case control.CmdSelect:
		a.selectIndex(cmd.Index)
	case control.CmdPrev:
		a.selectIndex(a.base() - 1)
	case control.CmdNext:
		a.selectIndex(a.base() + 1)
	case control.CmdDeliver:
		if cmd.Deliver != nil {
			cmd.Deliver()
		}
	}
	// send reply if requested
	if cmd.Reply != nil {
		select {
		case cmd.Reply <- nil:
		default:
		}
	}
}

// base is the index prev/next step from.
func (a *AppManager) base() int {
	s := a.State()
	if a.timings.DistanceFrom == orchestrator.DistanceFromCommitted {
		return s.Committed
	}
	return s.ActiveIndex
}

func (a *AppManager) selectIndex(target int) {
	if target < 0 || target >= a.dataset.Len() {
		log.Printf("Ignoring selection of category %d (have %d)", target, a.dataset.Len())
		return
	}

	a.stateLock.Lock()
	prev := a.state
	next, plan := orchestrator.Select(prev, target, a.dataset, a.timings)
	a.state = next
	a.stateLock.Unlock()

	if a.settings.DevMode {
		log.Printf("select %d -> %d (seq %d, rotation %dms, range %d-%d)",
			prev.ActiveIndex, target, next.Seq, next.RotationDurationMs, next.StartDate, next.EndDate)
	}
	a.scheduler.Run(next.Seq, plan)
}

// Apply implements orchestrator.Sink. It runs on the command loop.
func (a *AppManager) Apply(seq int, e orchestrator.Effect) {
	if c, ok := e.(orchestrator.CommitIndex); ok {
		a.stateLock.Lock()
		a.state = a.state.Commit(c.Index)
		a.stateLock.Unlock()
	}
	if a.settings.DevMode {
		log.Printf("seq %d: %s (%d groups pending)", seq, orchestrator.Describe(e), a.scheduler.Pending())
	}
	if a.view == nil {
		return
	}
	a.do(func() { a.view.Apply(e) })
}

// CanStep reports whether Prev (delta -1) or Next (delta +1) would land on a
// category.
func (a *AppManager) CanStep(delta int) bool {
	target := a.base() + delta
	return target >= 0 && target < a.dataset.Len()
}

// SlideChanged is told about user moves inside the shown category. The
// selected category is not affected.
func (a *AppManager) SlideChanged(index int) {
	if a.settings.DevMode {
		log.Printf("category %d: slide %d", a.State().ActiveIndex, index)
	}
}

// HandleKeyRune selects categories by their 1-based number.
func (a *AppManager) HandleKeyRune(r rune) {
	if r < '1' || r > '9' {
		return
	}
	index := int(r - '1')
	if index < a.dataset.Len() {
		a.Select(index)
	}
}

// HandleKeyName maps the arrow keys to previous/next.
func (a *AppManager) HandleKeyName(k fyne.KeyName) {
	switch k {
	case fyne.KeyLeft, fyne.KeyUp:
		if a.CanStep(-1) {
			a.Prev()
		}
	case fyne.KeyRight, fyne.KeyDown:
		if a.CanStep(1) {
			a.Next()
		}
	}
}

// Shutdown attempts to gracefully stop the AppManager command loop. It
// cancels the internal context and allows background goroutines to exit.
func (a *AppManager) Shutdown() {
	if a.cmdCancel != nil {
		a.cmdCancel()
	}
}
