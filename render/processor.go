package render

import (
	"context"
	"sync"

	"github.com/vim-fall/fall.vim/belt"
	"github.com/vim-fall/fall.vim/errs"
	"github.com/vim-fall/fall.vim/events"
	"github.com/vim-fall/fall.vim/item"
	"github.com/vim-fall/fall.vim/stage"
)

// Options configures a Render Processor.
type Options struct {
	Height       int
	ScrollOffset int
}

// Processor owns cursor/offset state and produces the visible window of
// display items via the current Renderer (spec §4.8).
type Processor struct {
	queue *events.EventQueue
	belt  *belt.Belt[Renderer]

	mu           sync.Mutex
	cursor       int
	offset       int
	height       int
	scrollOffset int
	itemCount    int
	window       []item.Item

	runner *stage.Runner[[]item.Item]
}

// NewProcessor creates a Render Processor over renderers (must be
// non-empty).
func NewProcessor(queue *events.EventQueue, renderers []Renderer, opts Options) *Processor {
	if opts.Height <= 0 {
		opts.Height = 10
	}
	return &Processor{
		queue:        queue,
		belt:         belt.New(renderers),
		height:       opts.Height,
		scrollOffset: opts.ScrollOffset,
		runner:       stage.NewRunner[[]item.Item](),
	}
}

// Belt exposes the renderer strategy belt for switch events.
func (p *Processor) Belt() *belt.Belt[Renderer] {
	return p.belt
}

// Window returns the last published visible window.
func (p *Processor) Window() []item.Item {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]item.Item(nil), p.window...)
}

// Cursor returns the current absolute cursor position.
func (p *Processor) Cursor() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cursor
}

// Offset returns the current scroll offset.
func (p *Processor) Offset() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.offset
}

// Line returns the cursor's 1-based row within the visible window, for the
// host to place its own cursor.
func (p *Processor) Line() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cursor - p.offset + 1
}

// SetCursor sets the absolute cursor position, clamped into the current
// item count. last=true means the "$" sentinel (itemCount-1).
func (p *Processor) SetCursor(cursor int, last bool) {
	p.mu.Lock()
	if last {
		cursor = p.itemCount - 1
	}
	p.cursor = clampCursor(cursor, p.itemCount)
	p.offset = adjustScrollPadded(p.cursor, p.offset, p.height, p.itemCount, p.scrollOffset)
	p.mu.Unlock()
}

// MoveCursor shifts the cursor by amount, clamped.
func (p *Processor) MoveCursor(amount int) {
	p.mu.Lock()
	p.cursor = clampCursor(p.cursor+amount, p.itemCount)
	p.offset = adjustScrollPadded(p.cursor, p.offset, p.height, p.itemCount, p.scrollOffset)
	p.mu.Unlock()
}

// SetHeight updates the visible window height, reclamping the offset.
func (p *Processor) SetHeight(height int) {
	if height <= 0 {
		height = 1
	}
	p.mu.Lock()
	p.height = height
	p.offset = clampScroll(p.offset, p.height, p.itemCount)
	p.mu.Unlock()
}

// Start clamps cursor/offset against items, then hands the visible slice
// to the current Renderer. Reservation semantics match §4.6.
func (p *Processor) Start(ctx context.Context, items []item.Item, restart bool) {
	p.mu.Lock()
	p.itemCount = len(items)
	p.cursor = clampCursor(p.cursor, p.itemCount)
	p.offset = adjustScrollPadded(p.cursor, p.offset, p.height, p.itemCount, p.scrollOffset)
	p.mu.Unlock()

	p.runner.Start(ctx, items, restart, p.run)
}

// Dispose cancels any in-flight run.
func (p *Processor) Dispose() {
	p.runner.Dispose()
}

func (p *Processor) run(ctx context.Context, items []item.Item) {
	p.queue.Dispatch(events.Event{Type: events.RenderStarted})

	p.mu.Lock()
	offset, height := p.offset, p.height
	p.mu.Unlock()

	end := offset + height
	if end > len(items) {
		end = len(items)
	}
	if offset > end {
		offset = end
	}

	slice := append([]item.Item(nil), items[offset:end]...)
	for i := range slice {
		if slice[i].Label == "" {
			slice[i].Label = slice[i].Value
		}
		if slice[i].Decorations == nil {
			slice[i].Decorations = []item.Decoration{}
		}
	}

	if err := p.belt.Current().Render(ctx, slice); err != nil {
		if !errs.IsCancelled(err) {
			p.queue.Dispatch(events.Event{Type: events.RenderFailed, Payload: events.FailedPayload{Err: err}})
		}
		return
	}

	p.mu.Lock()
	p.window = slice
	p.mu.Unlock()
	p.queue.Dispatch(events.Event{Type: events.RenderSucceeded})
}

// adjustScrollPadded generalizes terminal/tui/scroll.go's AdjustScroll
// with a scrollOffset padding band: the cursor is kept within
// [scroll+pad, scroll+visible-pad) when the list is long enough to afford
// it, falling back to the plain AdjustScroll behavior at the edges (where
// clampScroll then bounds the result).
func adjustScrollPadded(cursor, scroll, visible, total, pad int) int {
	if total <= visible {
		return 0
	}
	if pad < 0 {
		pad = 0
	}
	if 2*pad >= visible {
		pad = 0
	}
	lo := scroll + pad
	hi := scroll + visible - pad
	switch {
	case cursor < lo:
		scroll = cursor - pad
	case cursor >= hi:
		scroll = cursor - visible + 1 + pad
	}
	return clampScroll(scroll, visible, total)
}
