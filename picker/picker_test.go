package picker

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/vim-fall/fall.vim/action"
	"github.com/vim-fall/fall.vim/collect"
	"github.com/vim-fall/fall.vim/config"
	"github.com/vim-fall/fall.vim/events"
	"github.com/vim-fall/fall.vim/item"
	"github.com/vim-fall/fall.vim/match"
	"github.com/vim-fall/fall.vim/render"
)

type fakeInput struct {
	cmdline string
	cmdpos  int
}

func (f *fakeInput) Cmdline() string { return f.cmdline }
func (f *fakeInput) Cmdpos() int     { return f.cmdpos }

type fakeList struct {
	window []item.Item
	sel    item.Selection
	line   int
}

func (f *fakeList) Render(ctx context.Context) (bool, error) { return false, nil }
func (f *fakeList) SetWindow(window []item.Item, sel item.Selection, line int) {
	f.window = window
	f.sel = sel
	f.line = line
}
func (f *fakeList) Execute(command string) {}

type fakeHost struct{ redraws int }

func (h *fakeHost) RequestRedraw() { h.redraws++ }

func containsMatcher() match.Matcher {
	return match.MatcherFunc(func(ctx context.Context, items []item.Item, query string, out chan<- item.Item) error {
		defer close(out)
		q := strings.ToLower(query)
		for _, it := range items {
			if q == "" || strings.Contains(strings.ToLower(it.Value), q) {
				select {
				case out <- it:
				case <-ctx.Done():
					return ctx.Err()
				}
			}
		}
		return nil
	})
}

func sliceFixedSource(values ...string) collect.Source {
	return collect.SourceFunc(func(ctx context.Context, out chan<- item.Item) error {
		defer close(out)
		for _, v := range values {
			select {
			case out <- item.Item{Value: v}:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})
}

func newTestPicker(t *testing.T, names ...string) (*Picker, *fakeList) {
	t.Helper()
	list := &fakeList{}
	p, err := New(Options{
		Matchers:  []match.Matcher{containsMatcher()},
		Renderers: []render.Renderer{render.RendererFunc(func(ctx context.Context, items []item.Item) error { return nil })},
		Picker:    config.PickerOptions{Height: 5},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	_ = p.Open(context.Background(), sliceFixedSource(names...), &fakeHost{}, &fakeInput{}, list, nil, nil, nil)
	return p, list
}

func TestPickerCollectsAndRendersWindow(t *testing.T) {
	p, list := newTestPicker(t, "alpha", "beta", "gamma")
	defer p.Dispose()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	deadline := time.After(time.Second)
	for len(list.window) == 0 {
		p.tick(ctx)
		select {
		case <-deadline:
			t.Fatal("timed out waiting for window to populate")
		default:
			time.Sleep(5 * time.Millisecond)
		}
	}
	if len(list.window) != 3 {
		t.Fatalf("expected 3 items in window, got %d", len(list.window))
	}
}

func TestPickerAcceptsRegisteredAction(t *testing.T) {
	actions := action.NewMap()
	var gotQuery string
	actions.Register("open", action.Func(func(ctx context.Context, actx action.Context) (bool, error) {
		gotQuery = actx.Query
		return false, nil
	}))

	list := &fakeList{}
	p, err := New(Options{
		Matchers:  []match.Matcher{containsMatcher()},
		Renderers: []render.Renderer{render.RendererFunc(func(ctx context.Context, items []item.Item) error { return nil })},
		Actions:   actions,
		Picker:    config.PickerOptions{Height: 5},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	defer p.Dispose()

	_ = p.Open(ctx, sliceFixedSource("alpha", "beta"), &fakeHost{}, &fakeInput{}, list, nil, nil, nil)

	for len(list.window) == 0 {
		p.tick(ctx)
		time.Sleep(5 * time.Millisecond)
	}

	p.queue.Dispatch(events.Event{Type: events.ActionInvoke, Payload: events.ActionInvokePayload{Name: "open"}})
	p.tick(ctx)
	p.flushPending()

	select {
	case <-p.done:
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for accept to finish the picker")
	}

	if gotQuery != "" {
		t.Fatalf("expected empty query, got %q", gotQuery)
	}
}

func TestPickerCancel(t *testing.T) {
	p, _ := newTestPicker(t, "alpha")
	defer p.Dispose()
	p.Cancel()

	select {
	case <-p.done:
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for cancel")
	}
	p.mu.Lock()
	result := p.result
	p.mu.Unlock()
	if !result.Cancelled {
		t.Fatal("expected Cancelled result")
	}
}
