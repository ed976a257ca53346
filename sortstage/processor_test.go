package sortstage

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/vim-fall/fall.vim/events"
	"github.com/vim-fall/fall.vim/item"
)

func byValue() Sorter {
	return SorterFunc(func(ctx context.Context, items []item.Item) error {
		sort.Slice(items, func(i, j int) bool { return items[i].Value < items[j].Value })
		return nil
	})
}

func waitForEvent(t *testing.T, queue *events.EventQueue, want events.Type, timeout time.Duration) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		found := false
		queue.Drain(func(ev events.Event) {
			if ev.Type == want {
				found = true
			}
		})
		if found {
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for event type %d", want)
}

func TestSortProcessorSortsCopy(t *testing.T) {
	queue := events.NewEventQueue()
	p := NewProcessor(queue, []Sorter{byValue()})

	items := []item.Item{{Value: "c"}, {Value: "a"}, {Value: "b"}}
	p.Start(context.Background(), items, false)
	waitForEvent(t, queue, events.SortSucceeded, time.Second)

	sorted := p.Sorted()
	if sorted[0].Value != "a" || sorted[1].Value != "b" || sorted[2].Value != "c" {
		t.Fatalf("unexpected order: %+v", sorted)
	}
	if items[0].Value != "c" {
		t.Fatal("original slice must not be mutated")
	}
}

func TestSortProcessorPassthroughWithNoSorters(t *testing.T) {
	queue := events.NewEventQueue()
	p := NewProcessor(queue, nil)

	items := []item.Item{{Value: "z"}, {Value: "a"}}
	p.Start(context.Background(), items, false)
	waitForEvent(t, queue, events.SortSucceeded, time.Second)

	sorted := p.Sorted()
	if sorted[0].Value != "z" || sorted[1].Value != "a" {
		t.Fatalf("expected passthrough order, got %+v", sorted)
	}
}
