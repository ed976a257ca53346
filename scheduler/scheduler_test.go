package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

func TestSchedulerTicksRepeatedly(t *testing.T) {
	s := New(10 * time.Millisecond)
	var ticks atomic.Int32

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Start(ctx, func(context.Context) { ticks.Add(1) })
		close(done)
	}()

	time.Sleep(55 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop after context cancellation")
	}

	if got := ticks.Load(); got < 3 {
		t.Fatalf("expected at least 3 ticks, got %d", got)
	}
}

func TestSchedulerStopWaitsForReturn(t *testing.T) {
	s := New(5 * time.Millisecond)
	done := make(chan struct{})
	go func() {
		s.Start(context.Background(), func(context.Context) {})
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	s.Stop()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop returned before Start's goroutine exited")
	}
}

func TestSchedulerOverrunDoesNotOverlap(t *testing.T) {
	s := New(5 * time.Millisecond)
	var running atomic.Bool
	var overlapped atomic.Bool
	var ticks atomic.Int32

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Start(ctx, func(context.Context) {
			if !running.CompareAndSwap(false, true) {
				overlapped.Store(true)
			}
			time.Sleep(15 * time.Millisecond)
			ticks.Add(1)
			running.Store(false)
		})
		close(done)
	}()

	time.Sleep(70 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("timed out")
	}

	if overlapped.Load() {
		t.Fatal("tick ran concurrently with a previous overrunning tick")
	}
	if ticks.Load() < 2 {
		t.Fatalf("expected at least 2 completed ticks, got %d", ticks.Load())
	}
}
