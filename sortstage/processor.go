package sortstage

import (
	"context"
	"sync"

	"github.com/vim-fall/fall.vim/belt"
	"github.com/vim-fall/fall.vim/errs"
	"github.com/vim-fall/fall.vim/events"
	"github.com/vim-fall/fall.vim/item"
	"github.com/vim-fall/fall.vim/stage"
)

// Processor applies the current Sorter (if any) to a shallow copy of the
// matched items (spec §4.7). Unlike Match, there is no query-equality
// short-circuit: every Start does a fresh copy-then-sort.
type Processor struct {
	queue  *events.EventQueue
	belt   *belt.Belt[Sorter] // nil when no sorters configured
	runner *stage.Runner[[]item.Item]

	mu     sync.Mutex
	sorted []item.Item
}

// NewProcessor creates a Sort Processor. sorters may be empty: items then
// pass through unsorted.
func NewProcessor(queue *events.EventQueue, sorters []Sorter) *Processor {
	p := &Processor{
		queue:  queue,
		runner: stage.NewRunner[[]item.Item](),
	}
	if len(sorters) > 0 {
		p.belt = belt.New(sorters)
	}
	return p
}

// Belt exposes the sorter strategy belt for switch events; nil if the
// picker has no sorters configured.
func (p *Processor) Belt() *belt.Belt[Sorter] {
	return p.belt
}

// Sorted returns the last published sorted list.
func (p *Processor) Sorted() []item.Item {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]item.Item(nil), p.sorted...)
}

// Start sorts a shallow copy of items using the current Sorter, or passes
// them through unchanged when no Sorter is configured.
func (p *Processor) Start(ctx context.Context, items []item.Item, restart bool) {
	p.runner.Start(ctx, items, restart, p.run)
}

// Dispose cancels any in-flight run.
func (p *Processor) Dispose() {
	p.runner.Dispose()
}

func (p *Processor) run(ctx context.Context, items []item.Item) {
	p.queue.Dispatch(events.Event{Type: events.SortStarted})

	copied := append([]item.Item(nil), items...)

	if p.belt != nil {
		if err := p.belt.Current().Sort(ctx, copied); err != nil {
			if !errs.IsCancelled(err) {
				p.queue.Dispatch(events.Event{Type: events.SortFailed, Payload: events.FailedPayload{Err: err}})
				return
			}
			return
		}
	}

	p.mu.Lock()
	p.sorted = copied
	p.mu.Unlock()
	p.queue.Dispatch(events.Event{Type: events.SortSucceeded})
}
