package collect

import (
	"context"
	"sync"
	"time"

	"github.com/vim-fall/fall.vim/config"
	"github.com/vim-fall/fall.vim/core"
	"github.com/vim-fall/fall.vim/errs"
	"github.com/vim-fall/fall.vim/events"
	"github.com/vim-fall/fall.vim/item"
)

// Options configures a Collect Processor run (spec §4.5).
type Options struct {
	Threshold     int
	ChunkSize     int
	ChunkInterval time.Duration
	InitialItems  []item.Item
}

// WithDefaults fills zero-valued fields from config's defaults.
func (o Options) WithDefaults() Options {
	if o.Threshold <= 0 {
		o.Threshold = config.DefaultCollectThreshold
	}
	if o.ChunkSize <= 0 {
		o.ChunkSize = config.DefaultChunkSize
	}
	if o.ChunkInterval <= 0 {
		o.ChunkInterval = config.DefaultChunkInterval
	}
	return o
}

// pauseGate is a resolvable barrier: Wait blocks while paused, Resume
// unblocks every current waiter, ctx cancellation unblocks Wait with an
// error instead of hanging forever. Mutex-guarded against the
// Pause/Resume race, the same discipline the teacher's debounce timers use
// against Stop/fire races.
type pauseGate struct {
	mu sync.Mutex
	ch chan struct{}
}

func (g *pauseGate) Pause() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.ch == nil {
		g.ch = make(chan struct{})
	}
}

func (g *pauseGate) Resume() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.ch != nil {
		close(g.ch)
		g.ch = nil
	}
}

func (g *pauseGate) Wait(ctx context.Context) error {
	g.mu.Lock()
	ch := g.ch
	g.mu.Unlock()
	if ch == nil {
		return nil
	}
	select {
	case <-ch:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Processor pulls items from a Source, dedupes them into a Buffer, chunks
// them, caps at a threshold, and dispatches progress onto the event queue
// (spec §4.5). One Processor drives at most one run at a time; a new Start
// cancels any run already in flight.
type Processor struct {
	queue *events.EventQueue

	mu      sync.Mutex
	opts    Options
	buf     *Buffer[item.Item, string]
	gate    pauseGate
	cancel  context.CancelFunc
	done    chan struct{}
	running bool
}

// NewProcessor creates a Collect Processor dispatching lifecycle events
// onto queue.
func NewProcessor(queue *events.EventQueue) *Processor {
	return &Processor{queue: queue}
}

// Items returns the items collected so far, safe to call concurrently with
// a running collection.
func (p *Processor) Items() []item.Item {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.buf == nil {
		return nil
	}
	return append([]item.Item(nil), p.buf.Items()...)
}

// Pause suspends the in-flight run until Resume is called.
func (p *Processor) Pause() {
	p.gate.Pause()
}

// Resume unsuspends a paused run.
func (p *Processor) Resume() {
	p.gate.Resume()
}

// Start begins iterating source, replacing any run already in progress.
func (p *Processor) Start(ctx context.Context, source Source, opts Options) {
	opts = opts.WithDefaults()

	p.mu.Lock()
	if p.cancel != nil {
		p.cancel()
	}
	prevDone := p.done

	buf := NewBuffer[item.Item, string](func(it item.Item) string { return it.Value })
	for _, it := range opts.InitialItems {
		buf.Push(it)
	}
	p.buf = buf
	p.opts = opts
	p.gate = pauseGate{}

	runCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	done := make(chan struct{})
	p.done = done
	p.running = true
	p.mu.Unlock()

	core.Go(func() {
		if prevDone != nil {
			<-prevDone
		}
		defer close(done)
		p.run(runCtx, source)
	})
}

// Dispose cancels any in-flight run. Safe to call more than once.
func (p *Processor) Dispose() {
	p.mu.Lock()
	cancel := p.cancel
	p.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

func (p *Processor) run(ctx context.Context, source Source) {
	p.queue.Dispatch(events.Event{Type: events.CollectStarted})

	out := make(chan item.Item)
	errCh := make(chan error, 1)
	go func() {
		errCh <- source.Collect(ctx, out)
	}()

	chunker := NewChunker[item.Item](p.opts.ChunkSize)
	timer := time.NewTimer(p.opts.ChunkInterval)
	defer timer.Stop()

	flush := func() {
		if chunker.Count() == 0 {
			return
		}
		chunker.Consume()
		p.queue.Dispatch(events.Event{Type: events.CollectUpdated})
	}

	finishErr := func(err error) {
		if errs.IsCancelled(err) || (err != nil && ctx.Err() != nil) {
			// A cancelled run (Dispose) flushes and dispatches nothing.
			return
		}
		if err != nil {
			p.queue.Dispatch(events.Event{Type: events.CollectFailed, Payload: events.FailedPayload{Err: err}})
			return
		}
		flush()
		p.queue.Dispatch(events.Event{Type: events.CollectSucceeded})
	}

	for {
		if err := p.gate.Wait(ctx); err != nil {
			finishErr(errs.Cancelled)
			return
		}

		select {
		case <-ctx.Done():
			finishErr(errs.Cancelled)
			return

		case err := <-errCh:
			// Source goroutine returned; drain any items already queued
			// behind it before reporting completion.
			for {
				select {
				case it, ok := <-out:
					if !ok {
						finishErr(err)
						return
					}
					p.ingest(&chunker, it, flush)
				default:
					finishErr(err)
					return
				}
			}

		case it, ok := <-out:
			if !ok {
				err := <-errCh
				finishErr(err)
				return
			}
			if full := p.ingest(&chunker, it, flush); full {
				timer.Reset(p.opts.ChunkInterval)
			}
			if p.buf.Len() >= p.opts.Threshold {
				p.cancel()
				finishErr(nil)
				return
			}

		case <-timer.C:
			flush()
			timer.Reset(p.opts.ChunkInterval)
		}
	}
}

// ingest assigns it the next 0-based insertion-order ID and pushes it into
// the buffer and the chunker, flushing immediately when the chunk fills.
// Duplicates (by Value) are silently dropped, per the buffer's contract.
func (p *Processor) ingest(chunker *Chunker[item.Item], it item.Item, flush func()) (full bool) {
	p.mu.Lock()
	it.ID = p.buf.Len()
	accepted := p.buf.Push(it)
	p.mu.Unlock()
	if len(accepted) == 0 {
		return false
	}
	if chunker.Put(accepted[0]) {
		flush()
		return true
	}
	return false
}
