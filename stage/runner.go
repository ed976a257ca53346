// Package stage implements the reservation/restart runner shared by every
// downstream pipeline processor (spec §5 Ordering guarantees): at most one
// `start` in flight per processor; a `start` call while one is running
// replaces any pending reservation (only the latest survives); `restart`
// cancels the in-flight run so the reserved one begins immediately.
//
// Grounded on the teacher's ClockScheduler (engine/clock_scheduler.go): a
// mutex-guarded single-timer loop that collapses repeated schedule
// requests down to the latest one, generalized here from "one timer" to
// "one logical async task per processor".
package stage

import (
	"context"
	"sync"

	"github.com/vim-fall/fall.vim/core"
)

// Runner coalesces Start calls for one processor's async work into at most
// one running invocation plus at most one pending reservation.
type Runner[I any] struct {
	mu      sync.Mutex
	running bool
	pending *I
	cancel  context.CancelFunc
}

// NewRunner creates an idle runner.
func NewRunner[I any]() *Runner[I] {
	return &Runner[I]{}
}

// Start runs work(ctx, in) if idle, or reserves in (overwriting any
// earlier reservation) if a run is already in flight. When restart is
// true and a run is in flight, that run's context is cancelled so the
// reservation begins as soon as possible instead of waiting its turn.
func (r *Runner[I]) Start(outerCtx context.Context, in I, restart bool, work func(context.Context, I)) {
	r.mu.Lock()
	if r.running {
		r.pending = &in
		cancel := r.cancel
		r.mu.Unlock()
		if restart && cancel != nil {
			cancel()
		}
		return
	}
	r.running = true
	r.mu.Unlock()

	core.Go(func() { r.runLoop(outerCtx, in, work) })
}

// Running reports whether a run is currently in flight.
func (r *Runner[I]) Running() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.running
}

// Dispose cancels any in-flight run and clears the pending reservation.
func (r *Runner[I]) Dispose() {
	r.mu.Lock()
	cancel := r.cancel
	r.pending = nil
	r.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

func (r *Runner[I]) runLoop(outerCtx context.Context, in I, work func(context.Context, I)) {
	for {
		runCtx, cancel := context.WithCancel(outerCtx)
		r.mu.Lock()
		r.cancel = cancel
		r.mu.Unlock()

		work(runCtx, in)
		cancel()

		r.mu.Lock()
		if outerCtx.Err() != nil {
			r.running = false
			r.pending = nil
			r.cancel = nil
			r.mu.Unlock()
			return
		}
		if r.pending != nil {
			in = *r.pending
			r.pending = nil
			r.mu.Unlock()
			continue
		}
		r.running = false
		r.cancel = nil
		r.mu.Unlock()
		return
	}
}
