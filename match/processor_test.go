package match

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/vim-fall/fall.vim/events"
	"github.com/vim-fall/fall.vim/item"
)

// substringMatcher is a minimal incremental matcher used only for tests.
type substringMatcher struct{ incremental bool }

func (m substringMatcher) Match(ctx context.Context, items []item.Item, query string, out chan<- item.Item) error {
	defer close(out)
	for _, it := range items {
		if query == "" || strings.Contains(it.Value, query) {
			select {
			case out <- it:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
	return nil
}

func (m substringMatcher) Incremental() bool { return m.incremental }

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

func TestMatchProcessorFiltersByQuery(t *testing.T) {
	queue := events.NewEventQueue()
	p := NewProcessor(queue, []Matcher{substringMatcher{}}, Options{ChunkSize: 100})

	items := []item.Item{{Value: "foo"}, {Value: "bar"}, {Value: "foobar"}}
	p.Start(context.Background(), items, "foo", false)

	waitForEvent(t, queue, events.MatchSucceeded, time.Second)
	if len(p.Matched()) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(p.Matched()))
	}
}

func TestMatchProcessorIdempotentOnSameQuery(t *testing.T) {
	queue := events.NewEventQueue()
	p := NewProcessor(queue, []Matcher{substringMatcher{}}, Options{ChunkSize: 100})

	items := []item.Item{{Value: "a"}, {Value: "b"}}
	p.Start(context.Background(), items, "a", false)
	waitForEvent(t, queue, events.MatchSucceeded, time.Second)

	// Same query while idle: no new Started event, just a re-dispatched
	// succeeded so downstream stages still re-trigger.
	p.Start(context.Background(), items, "a", false)
	waitForEvent(t, queue, events.MatchSucceeded, time.Second)
}
