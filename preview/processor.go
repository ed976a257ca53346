package preview

import (
	"context"
	"sync"

	"github.com/vim-fall/fall.vim/belt"
	"github.com/vim-fall/fall.vim/errs"
	"github.com/vim-fall/fall.vim/events"
	"github.com/vim-fall/fall.vim/item"
	"github.com/vim-fall/fall.vim/stage"
)

// Processor generates preview content for the item under the cursor via
// the current Previewer (spec §4.9). Given an empty previewer list, it
// always publishes nil.
type Processor struct {
	queue *events.EventQueue
	belt  *belt.Belt[Previewer] // nil when no previewers configured

	mu      sync.Mutex
	payload *item.PreviewPayload

	runner *stage.Runner[*item.Item]
}

// NewProcessor creates a Preview Processor. previewers may be empty.
func NewProcessor(queue *events.EventQueue, previewers []Previewer) *Processor {
	p := &Processor{
		queue:  queue,
		runner: stage.NewRunner[*item.Item](),
	}
	if len(previewers) > 0 {
		p.belt = belt.New(previewers)
	}
	return p
}

// Belt exposes the previewer strategy belt for switch events; nil if the
// picker has no previewers configured.
func (p *Processor) Belt() *belt.Belt[Previewer] {
	return p.belt
}

// Payload returns the last published preview payload, or nil.
func (p *Processor) Payload() *item.PreviewPayload {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.payload
}

// Start previews it (nil meaning no item under the cursor). Reservation
// semantics match the Match Processor (spec §4.6). The picker calls Start
// for cursor-driven previews from its debounce timer
// (reserveDebouncedPreview), and directly, without the delay, after a
// previewer switch (reservePreviewRestart).
func (p *Processor) Start(ctx context.Context, it *item.Item, restart bool) {
	p.runner.Start(ctx, it, restart, p.run)
}

// Dispose cancels any in-flight run.
func (p *Processor) Dispose() {
	p.runner.Dispose()
}

func (p *Processor) run(ctx context.Context, it *item.Item) {
	p.queue.Dispatch(events.Event{Type: events.PreviewStarted})

	if it == nil || p.belt == nil {
		p.mu.Lock()
		p.payload = nil
		p.mu.Unlock()
		p.queue.Dispatch(events.Event{Type: events.PreviewSucceeded})
		return
	}

	payload, err := p.belt.Current().Preview(ctx, *it)
	if err != nil {
		if !errs.IsCancelled(err) {
			p.queue.Dispatch(events.Event{Type: events.PreviewFailed, Payload: events.FailedPayload{Err: err}})
		}
		return
	}

	p.mu.Lock()
	p.payload = payload
	p.mu.Unlock()
	p.queue.Dispatch(events.Event{Type: events.PreviewSucceeded})
}
