package stage

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

func TestRunnerRunsImmediatelyWhenIdle(t *testing.T) {
	r := NewRunner[int]()
	var ran atomic.Int32
	done := make(chan struct{})
	r.Start(context.Background(), 1, false, func(ctx context.Context, in int) {
		ran.Add(int32(in))
		close(done)
	})
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("timed out")
	}
	if ran.Load() != 1 {
		t.Fatalf("expected 1, got %d", ran.Load())
	}
}

func TestRunnerCollapsesReservationsToLatest(t *testing.T) {
	r := NewRunner[int]()
	block := make(chan struct{})
	var seen []int
	firstStarted := make(chan struct{})
	secondRan := make(chan struct{})

	r.Start(context.Background(), 1, false, func(ctx context.Context, in int) {
		seen = append(seen, in)
		close(firstStarted)
		<-block
	})
	<-firstStarted

	// Reserve twice while the first run blocks; only the last should run.
	r.Start(context.Background(), 2, false, func(ctx context.Context, in int) {})
	r.Start(context.Background(), 3, false, func(ctx context.Context, in int) {
		seen = append(seen, in)
		close(secondRan)
	})

	close(block)
	select {
	case <-secondRan:
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for reserved run")
	}
	if len(seen) != 2 || seen[0] != 1 || seen[1] != 3 {
		t.Fatalf("expected [1 3], got %v", seen)
	}
}

func TestRunnerRestartCancelsInFlight(t *testing.T) {
	r := NewRunner[int]()
	cancelled := make(chan struct{})
	secondRan := make(chan struct{})

	r.Start(context.Background(), 1, false, func(ctx context.Context, in int) {
		<-ctx.Done()
		close(cancelled)
	})
	// Give the first run a moment to install its cancel func.
	time.Sleep(20 * time.Millisecond)

	r.Start(context.Background(), 2, true, func(ctx context.Context, in int) {
		close(secondRan)
	})

	select {
	case <-cancelled:
	case <-time.After(time.Second):
		t.Fatal("expected in-flight run to be cancelled")
	}
	select {
	case <-secondRan:
	case <-time.After(time.Second):
		t.Fatal("expected reserved run to execute after restart")
	}
}
