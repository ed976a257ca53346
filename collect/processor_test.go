package collect

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/vim-fall/fall.vim/events"
	"github.com/vim-fall/fall.vim/item"
)

// fixedSource emits a fixed list of items, then closes out.
type fixedSource struct {
	values []string
}

func (s fixedSource) Collect(ctx context.Context, out chan<- item.Item) error {
	defer close(out)
	for _, v := range s.values {
		select {
		case out <- item.Item{Value: v}:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

func waitForEvent(t *testing.T, queue *events.EventQueue, want events.Type, timeout time.Duration) events.Event {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		found := false
		var got events.Event
		queue.Drain(func(ev events.Event) {
			if ev.Type == want {
				found = true
				got = ev
			}
		})
		if found {
			return got
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for event type %d", want)
	return events.Event{}
}

func TestCollectProcessorSucceedsOnSourceEnd(t *testing.T) {
	queue := events.NewEventQueue()
	p := NewProcessor(queue)

	src := fixedSource{values: []string{"a", "b", "c"}}
	p.Start(context.Background(), src, Options{ChunkSize: 100, ChunkInterval: 10 * time.Millisecond})

	waitForEvent(t, queue, events.CollectSucceeded, time.Second)

	items := p.Items()
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	for i, it := range items {
		if it.ID != i {
			t.Fatalf("expected id %d, got %d", i, it.ID)
		}
	}
}

func TestCollectProcessorDedupesByValue(t *testing.T) {
	queue := events.NewEventQueue()
	p := NewProcessor(queue)

	src := fixedSource{values: []string{"x", "x", "y"}}
	p.Start(context.Background(), src, Options{ChunkSize: 100, ChunkInterval: 10 * time.Millisecond})

	waitForEvent(t, queue, events.CollectSucceeded, time.Second)

	if len(p.Items()) != 2 {
		t.Fatalf("expected 2 deduped items, got %d", len(p.Items()))
	}
}

func TestCollectProcessorCapsAtThreshold(t *testing.T) {
	queue := events.NewEventQueue()
	p := NewProcessor(queue)

	values := make([]string, 0, 50)
	for i := 0; i < 50; i++ {
		values = append(values, strconv.Itoa(i))
	}
	src := fixedSource{values: values}
	p.Start(context.Background(), src, Options{Threshold: 10, ChunkSize: 100, ChunkInterval: 10 * time.Millisecond})

	waitForEvent(t, queue, events.CollectSucceeded, time.Second)

	if len(p.Items()) > 10 {
		t.Fatalf("expected at most 10 items, got %d", len(p.Items()))
	}
}
