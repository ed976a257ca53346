package render

import (
	"context"
	"testing"
	"time"

	"github.com/vim-fall/fall.vim/events"
	"github.com/vim-fall/fall.vim/item"
)

func passthroughRenderer() Renderer {
	return RendererFunc(func(ctx context.Context, items []item.Item) error { return nil })
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

func items(n int) []item.Item {
	out := make([]item.Item, n)
	for i := range out {
		out[i] = item.Item{ID: i, Value: string(rune('a' + i))}
	}
	return out
}

func TestRenderProcessorClampsCursorOnShrink(t *testing.T) {
	queue := events.NewEventQueue()
	p := NewProcessor(queue, []Renderer{passthroughRenderer()}, Options{Height: 5})

	p.Start(context.Background(), items(20), false)
	waitForEvent(t, queue, events.RenderSucceeded, time.Second)

	p.SetCursor(8, false)
	if p.Cursor() != 8 {
		t.Fatalf("expected cursor 8, got %d", p.Cursor())
	}

	p.Start(context.Background(), items(3), false)
	waitForEvent(t, queue, events.RenderSucceeded, time.Second)
	if p.Cursor() != 2 {
		t.Fatalf("expected cursor clamped to 2, got %d", p.Cursor())
	}
}

func TestRenderProcessorDefaultsLabelAndDecorations(t *testing.T) {
	queue := events.NewEventQueue()
	p := NewProcessor(queue, []Renderer{passthroughRenderer()}, Options{Height: 10})

	p.Start(context.Background(), items(3), false)
	waitForEvent(t, queue, events.RenderSucceeded, time.Second)

	window := p.Window()
	for _, it := range window {
		if it.Label != it.Value {
			t.Fatalf("expected default label %s, got %s", it.Value, it.Label)
		}
		if it.Decorations == nil {
			t.Fatal("expected non-nil decorations slice")
		}
	}
}

func TestRenderProcessorLineIsOneBasedWithinWindow(t *testing.T) {
	queue := events.NewEventQueue()
	p := NewProcessor(queue, []Renderer{passthroughRenderer()}, Options{Height: 3})

	p.Start(context.Background(), items(20), false)
	waitForEvent(t, queue, events.RenderSucceeded, time.Second)
	p.SetCursor(5, false)

	if line := p.Line(); line < 1 || line > 3 {
		t.Fatalf("expected line within window height, got %d", line)
	}
}
