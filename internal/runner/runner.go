// Package runner drives a level controller from a fixed-rate ticker without
// any window, for soak runs and automated play.
package runner

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/ugaemi/campus-maze/internal/game"
	"github.com/ugaemi/campus-maze/internal/level"
)

// InputSource supplies the directional input for one frame.
type InputSource interface {
	Next(state game.State) game.Intent
}

// InputFunc adapts a function to InputSource.
type InputFunc func(state game.State) game.Intent

func (f InputFunc) Next(state game.State) game.Intent { return f(state) }

// Runner owns a controller and steps it once per tick. Only the loop
// goroutine touches the controller; other goroutines read Snapshot.
type Runner struct {
	ctrl         *level.Controller
	input        InputSource
	autoContinue bool
	interval     time.Duration

	// OnEvent is called for each simulation event, outside the lock.
	OnEvent func(ev game.Event)

	stopCh   chan struct{}
	frames   int
	snapshot level.Snapshot

	mu sync.RWMutex
}

// New creates a runner. With autoContinue set, HIT and LEVELCLEAR are
// acknowledged on the next tick as if the player pressed continue.
func New(ctrl *level.Controller, input InputSource, autoContinue bool) *Runner {
	return &Runner{
		ctrl:         ctrl,
		input:        input,
		autoContinue: autoContinue,
		interval:     game.TickInterval,
		stopCh:       make(chan struct{}),
		snapshot:     ctrl.Snapshot(),
	}
}

// Run starts the run if the controller is on the title screen and then ticks
// until game over, Stop, or ctx is cancelled. Only a refused level start or
// cancellation is returned as an error.
func (r *Runner) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-r.stopCh:
			return nil
		case <-ticker.C:
			events, finished, err := r.Tick()
			r.emit(events)
			if err != nil {
				return err
			}
			if finished {
				snap := r.Snapshot()
				slog.Info("run finished", "run", snap.RunID, "frames", r.Frames(),
					"level", snap.HUD.Level, "score", snap.HUD.Score)
				return nil
			}
		}
	}
}

// Tick advances one frame and reports whether the run reached game over.
func (r *Runner) Tick() ([]game.Event, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var events []game.Event
	var err error

	switch state := r.ctrl.State(); state {
	case game.StateTitle:
		err = r.ctrl.Handle(level.CommandStart)
	case game.StatePlay:
		events = r.ctrl.Step(r.input.Next(state))
	case game.StateHit, game.StateLevelClear:
		if r.autoContinue {
			err = r.ctrl.Handle(level.CommandContinue)
		}
	}

	r.frames++
	r.snapshot = r.ctrl.Snapshot()
	return events, r.ctrl.State() == game.StateGameOver, err
}

func (r *Runner) emit(events []game.Event) {
	if r.OnEvent == nil {
		return
	}
	for _, ev := range events {
		r.OnEvent(ev)
	}
}

// Stop ends Run. Safe to call more than once.
func (r *Runner) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()

	select {
	case <-r.stopCh:
		// Already closed
	default:
		close(r.stopCh)
	}
}

// Snapshot returns the state captured after the latest tick.
func (r *Runner) Snapshot() level.Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshot
}

// Frames returns how many ticks have run.
func (r *Runner) Frames() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.frames
}
