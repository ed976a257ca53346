package match

import (
	"context"
	"sync"
	"time"

	"github.com/vim-fall/fall.vim/belt"
	"github.com/vim-fall/fall.vim/collect"
	"github.com/vim-fall/fall.vim/config"
	"github.com/vim-fall/fall.vim/errs"
	"github.com/vim-fall/fall.vim/events"
	"github.com/vim-fall/fall.vim/item"
	"github.com/vim-fall/fall.vim/stage"
)

// Options configures a Match Processor (spec §4.6).
type Options struct {
	Interval      time.Duration
	Threshold     int
	ChunkSize     int
	ChunkInterval time.Duration
}

func (o Options) withDefaults() Options {
	if o.Interval <= 0 {
		o.Interval = config.DefaultMatchInterval
	}
	if o.ChunkSize <= 0 {
		o.ChunkSize = config.DefaultChunkSize
	}
	if o.ChunkInterval <= 0 {
		o.ChunkInterval = config.DefaultChunkInterval
	}
	return o
}

type input struct {
	items []item.Item
	query string
}

// Processor filters collected items by the current query using the
// current Matcher on an Item-Belt, publishing the growing or final match
// list onto the event queue (spec §4.6).
type Processor struct {
	queue  *events.EventQueue
	belt   *belt.Belt[Matcher]
	opts   Options
	runner *stage.Runner[input]

	mu           sync.Mutex
	matched      []item.Item
	lastQuery    string
	hasLastQuery bool
}

// NewProcessor creates a Match Processor over matchers (must be non-empty)
// dispatching lifecycle events onto queue.
func NewProcessor(queue *events.EventQueue, matchers []Matcher, opts Options) *Processor {
	return &Processor{
		queue:  queue,
		belt:   belt.New(matchers),
		opts:   opts.withDefaults(),
		runner: stage.NewRunner[input](),
	}
}

// Belt exposes the matcher strategy belt for switch events.
func (p *Processor) Belt() *belt.Belt[Matcher] {
	return p.belt
}

// Matched returns the last published match list.
func (p *Processor) Matched() []item.Item {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]item.Item(nil), p.matched...)
}

// Start filters items by query using the current matcher. Idempotent when
// idle and query equals the previous query: it immediately re-dispatches
// succeeded so downstream stages re-trigger without redoing work. If a run
// is already in flight, this call's (items, query) becomes the pending
// reservation; restart cancels the in-flight run so the reservation runs
// next.
func (p *Processor) Start(ctx context.Context, items []item.Item, query string, restart bool) {
	p.mu.Lock()
	idle := !p.runner.Running()
	sameQuery := p.hasLastQuery && p.lastQuery == query
	p.mu.Unlock()

	if idle && sameQuery {
		p.queue.Dispatch(events.Event{Type: events.MatchSucceeded})
		return
	}
	p.runner.Start(ctx, input{items: items, query: query}, restart, p.run)
}

// Dispose cancels any in-flight run.
func (p *Processor) Dispose() {
	p.runner.Dispose()
}

func (p *Processor) run(ctx context.Context, in input) {
	p.queue.Dispatch(events.Event{Type: events.MatchStarted})

	matcher := p.belt.Current()
	out := make(chan item.Item)
	errCh := make(chan error, 1)
	go func() {
		errCh <- matcher.Match(ctx, in.items, in.query, out)
	}()

	var growing []item.Item
	chunker := collect.NewChunker[item.Item](p.opts.ChunkSize)
	timer := time.NewTimer(p.opts.ChunkInterval)
	defer timer.Stop()

	publish := func() {
		p.mu.Lock()
		p.matched = append([]item.Item(nil), growing...)
		p.lastQuery = in.query
		p.hasLastQuery = true
		p.mu.Unlock()
	}

	flushIncremental := func() {
		if chunker.Count() == 0 {
			return
		}
		chunker.Consume()
		if matcher.Incremental() {
			publish()
			p.queue.Dispatch(events.Event{Type: events.MatchUpdated})
		}
	}

	finish := func(err error) {
		if errs.IsCancelled(err) || ctx.Err() != nil {
			// A cancelled run (restart or Dispose) publishes nothing.
			return
		}
		if err != nil {
			p.queue.Dispatch(events.Event{Type: events.MatchFailed, Payload: events.FailedPayload{Err: err}})
			return
		}
		chunker.Consume()
		publish()
		p.queue.Dispatch(events.Event{Type: events.MatchSucceeded})
	}

	for {
		select {
		case <-ctx.Done():
			finish(errs.Cancelled)
			return

		case err := <-errCh:
			finish(err)
			return

		case it, ok := <-out:
			if !ok {
				err := <-errCh
				finish(err)
				return
			}
			growing = append(growing, it)
			if chunker.Put(it) {
				flushIncremental()
				timer.Reset(p.opts.ChunkInterval)
				// Cooperative yield between chunks so the scheduler tick
				// isn't starved by a long match run.
				select {
				case <-time.After(p.opts.Interval):
				case <-ctx.Done():
					finish(errs.Cancelled)
					return
				}
			}
			if p.opts.Threshold > 0 && len(growing) >= p.opts.Threshold {
				finish(nil)
				return
			}

		case <-timer.C:
			flushIncremental()
			timer.Reset(p.opts.ChunkInterval)
		}
	}
}
