// Package picker implements the Picker Orchestrator (spec §4.12): it wires
// the Collect/Match/Sort/Render/Preview processors together behind the
// single Event Queue, owns cursor/selection state, drives the Scheduler's
// per-tick render cycle, and manages the action-selection sub-flow.
package picker

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/vim-fall/fall.vim/action"
	"github.com/vim-fall/fall.vim/closer"
	"github.com/vim-fall/fall.vim/collect"
	"github.com/vim-fall/fall.vim/config"
	"github.com/vim-fall/fall.vim/core"
	"github.com/vim-fall/fall.vim/errs"
	"github.com/vim-fall/fall.vim/events"
	"github.com/vim-fall/fall.vim/item"
	"github.com/vim-fall/fall.vim/match"
	"github.com/vim-fall/fall.vim/preview"
	"github.com/vim-fall/fall.vim/render"
	"github.com/vim-fall/fall.vim/scheduler"
	"github.com/vim-fall/fall.vim/sortstage"
)

// Host is the thin handle the orchestrator holds on its embedding
// environment (spec's `denops` stand-in, see SPEC_FULL §4.12's
// implementation note): a way to ask for a redraw once a tick's component
// renders report themselves dirty.
type Host interface {
	RequestRedraw()
}

// InputDriver reads the host's command-line state (spec §4.11). The
// orchestrator polls it once per tick and synthesizes CmdlineChanged /
// CmdposChanged events when it differs from what was last observed.
type InputDriver interface {
	Cmdline() string
	Cmdpos() int
}

// Component is the shared rendering contract for every host-side widget
// the orchestrator drives each tick.
type Component interface {
	// Render draws the component's current state and reports whether the
	// host must redraw as a result.
	Render(ctx context.Context) (dirty bool, err error)
}

// ListComponent displays the current render window and selection.
type ListComponent interface {
	Component
	SetWindow(window []item.Item, selection item.Selection, line int)
	Execute(command string)
}

// PreviewComponent displays the current preview payload.
type PreviewComponent interface {
	Component
	SetPayload(payload *item.PreviewPayload)
	Execute(command string)
}

// InputComponent displays the live cmdline and cursor position.
type InputComponent interface {
	Component
	SetCmdline(s string)
	SetCmdpos(pos int)
}

// HelpComponent displays the help overlay.
type HelpComponent interface {
	Component
	Toggle()
	Page(amount int)
}

// Options configures a Picker at construction. Matchers and Renderers
// must be non-empty; Sorters and Previewers may be empty (items then pass
// through unsorted, and no preview is ever generated).
type Options struct {
	Matchers   []match.Matcher
	Sorters    []sortstage.Sorter
	Renderers  []render.Renderer
	Previewers []preview.Previewer
	Actions    *action.Map

	Picker config.PickerOptions
}

// Result is what a Picker invocation produces once an action is accepted
// or the user cancels.
type Result struct {
	Cancelled     bool
	Action        string
	Item          *item.Item
	SelectedItems []item.Item
	FilteredItems []item.Item
	Query         string
}

// Picker is a single interactive picker invocation (spec §3, §4.12).
type Picker struct {
	queue  *events.EventQueue
	router *events.Router

	collect *collect.Processor
	match   *match.Processor
	sort    *sortstage.Processor
	render  *render.Processor
	preview *preview.Processor

	dispatcher *action.Dispatcher

	sched *scheduler.Scheduler

	host     Host
	input    InputDriver
	listC    ListComponent
	previewC PreviewComponent
	inputC   InputComponent
	helpC    HelpComponent

	closer *closer.Stack
	opts   config.PickerOptions
	ctx    context.Context

	mu          sync.Mutex
	query       string
	cmdpos      int
	lastCmdline string
	lastCmdpos  int
	selection   item.Selection
	collecting  bool
	collected   []item.Item
	matched     []item.Item
	sorted      []item.Item
	pending     []func()
	lastErr     error

	previewMu    sync.Mutex
	previewTimer *time.Timer

	metrics     *metrics
	matchStart  time.Time
	sortStart   time.Time
	renderStart time.Time
	previewStart time.Time

	once   sync.Once
	done   chan struct{}
	result Result
}

// New constructs a Picker. It does not start collecting; call Open.
func New(opts Options) (*Picker, error) {
	if len(opts.Matchers) == 0 {
		return nil, fmt.Errorf("picker: at least one Matcher is required")
	}
	if len(opts.Renderers) == 0 {
		return nil, fmt.Errorf("picker: at least one Renderer is required")
	}
	if opts.Actions == nil {
		opts.Actions = action.NewMap()
	}
	po := opts.Picker.WithDefaults()

	queue := events.NewEventQueue()

	p := &Picker{
		queue:      queue,
		router:     events.NewRouter(queue),
		collect:    collect.NewProcessor(queue),
		match:      match.NewProcessor(queue, opts.Matchers, match.Options{Interval: po.MatchInterval, Threshold: po.Threshold, ChunkSize: po.ChunkSize, ChunkInterval: po.ChunkInterval}),
		sort:       sortstage.NewProcessor(queue, opts.Sorters),
		render:     render.NewProcessor(queue, opts.Renderers, render.Options{Height: po.Height, ScrollOffset: po.ScrollOffset}),
		preview:    preview.NewProcessor(queue, opts.Previewers),
		dispatcher: action.NewDispatcher(opts.Actions),
		sched:      scheduler.New(config.SchedulerInterval),
		closer:     closer.New(),
		opts:       po,
		selection:  item.NewSelection(),
		metrics:    newMetrics(),
		done:       make(chan struct{}),
	}
	p.router.Register(p)
	return p, nil
}

// Open wires the picker to its collaborators, begins collection from
// source, and returns the disposal handle that tears down every opened
// processor on Close. ctx bounds the picker's entire lifetime.
func (p *Picker) Open(ctx context.Context, source collect.Source, host Host, input InputDriver, listC ListComponent, previewC PreviewComponent, inputC InputComponent, helpC HelpComponent) *closer.Stack {
	p.ctx = ctx
	p.host = host
	p.input = input
	p.listC = listC
	p.previewC = previewC
	p.inputC = inputC
	p.helpC = helpC

	p.closer.Push(func() error { p.collect.Dispose(); return nil })
	p.closer.Push(func() error { p.match.Dispose(); return nil })
	p.closer.Push(func() error { p.sort.Dispose(); return nil })
	p.closer.Push(func() error { p.render.Dispose(); return nil })
	p.closer.Push(func() error { p.preview.Dispose(); return nil })
	p.closer.Push(func() error {
		p.previewMu.Lock()
		if p.previewTimer != nil {
			p.previewTimer.Stop()
		}
		p.previewMu.Unlock()
		return nil
	})

	p.mu.Lock()
	p.collecting = true
	p.mu.Unlock()

	p.collect.Start(ctx, source, collect.Options{
		Threshold:     p.opts.Threshold,
		ChunkSize:     p.opts.ChunkSize,
		ChunkInterval: p.opts.ChunkInterval,
	})

	return p.closer
}

// Run drives the picker's scheduler until an action is accepted or the
// picker is cancelled, then returns the outcome. ctx cancellation also
// ends the run, reporting Result.Cancelled.
func (p *Picker) Run(ctx context.Context) Result {
	schedDone := make(chan struct{})
	core.Go(func() {
		p.sched.Start(ctx, p.tick)
		close(schedDone)
	})

	select {
	case <-p.done:
	case <-ctx.Done():
		p.Cancel()
	}
	p.sched.Stop()
	<-schedDone

	p.mu.Lock()
	result := p.result
	p.mu.Unlock()
	return result
}

// Dispose tears down every processor and component resource the picker
// opened. Safe to call more than once.
func (p *Picker) Dispose() error {
	return p.closer.Close()
}

// Dispatch enqueues a host-originated event (key presses translated to
// cursor moves, selection toggles, belt switches, and action invokes) for
// the next tick's drain. Safe to call from any goroutine; the event itself
// is only ever handled on the scheduler's tick (spec §5).
func (p *Picker) Dispatch(ev events.Event) {
	p.queue.Dispatch(ev)
}

// LastError returns the most recently recorded stage failure, if any
// (spec §7: a developer-log-worthy error, not a cancellation).
func (p *Picker) LastError() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastErr
}

// Collecting reports whether the Collect Processor is still ingesting
// (spec §4.12 CollectSucceeded: "flip the collecting flag off").
func (p *Picker) Collecting() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.collecting
}

// tick implements the per-tick render cycle (spec §4.12):
//  1. refresh input-driver state
//  2. drain the event queue through the handler
//  3. run every reservation queued during step 2, in insertion order
//  4. render every component; request a host redraw if any is dirty
func (p *Picker) tick(ctx context.Context) {
	p.refreshInput()
	p.router.DispatchAll()
	p.flushPending()
	p.renderComponents(ctx)
}

func (p *Picker) refreshInput() {
	if p.input == nil {
		return
	}
	cmdline := p.input.Cmdline()
	cmdpos := p.input.Cmdpos()

	p.mu.Lock()
	changedLine := cmdline != p.lastCmdline
	changedPos := cmdpos != p.lastCmdpos
	p.lastCmdline = cmdline
	p.lastCmdpos = cmdpos
	p.mu.Unlock()

	if changedLine {
		p.queue.Dispatch(events.Event{Type: events.CmdlineChanged, Payload: events.CmdlinePayload{Cmdline: cmdline}})
	}
	if changedPos {
		p.queue.Dispatch(events.Event{Type: events.CmdposChanged, Payload: events.CmdposPayload{Cmdpos: cmdpos}})
	}
}

// reserve queues fn to run once, after the current tick's drain finishes,
// in insertion order alongside every other reservation made this tick.
func (p *Picker) reserve(fn func()) {
	p.mu.Lock()
	p.pending = append(p.pending, fn)
	p.mu.Unlock()
}

func (p *Picker) flushPending() {
	p.mu.Lock()
	pending := p.pending
	p.pending = nil
	p.mu.Unlock()

	for _, fn := range pending {
		fn()
	}
}

func (p *Picker) renderComponents(ctx context.Context) {
	dirty := false
	for _, c := range []Component{p.inputC, p.listC, p.previewC, p.helpC} {
		if c == nil {
			continue
		}
		d, err := c.Render(ctx)
		if err != nil {
			p.mu.Lock()
			p.lastErr = err
			p.mu.Unlock()
			continue
		}
		dirty = dirty || d
	}
	if dirty && p.host != nil {
		p.host.RequestRedraw()
	}
}

// finish records result and unblocks Run. Safe to call more than once;
// only the first call's result sticks.
func (p *Picker) finish(result Result) {
	p.once.Do(func() {
		p.mu.Lock()
		p.result = result
		p.mu.Unlock()
		close(p.done)
	})
}

func itemAt(items []item.Item, idx int) *item.Item {
	if idx < 0 || idx >= len(items) {
		return nil
	}
	it := items[idx]
	return &it
}

func selectedItems(items []item.Item, sel item.Selection) []item.Item {
	if len(sel) == 0 {
		return nil
	}
	out := make([]item.Item, 0, len(sel))
	for _, it := range items {
		if sel.Has(it.ID) {
			out = append(out, it)
		}
	}
	return out
}

// sliceSource adapts an in-memory string slice to a collect.Source, used
// by the nested action-selection picker whose "items" are action names
// rather than anything collected from the host.
func sliceSource(values []string) collect.Source {
	return collect.SourceFunc(func(ctx context.Context, out chan<- item.Item) error {
		defer close(out)
		for _, v := range values {
			select {
			case out <- item.Item{Value: v}:
			case <-ctx.Done():
				return errs.Cancelled
			}
		}
		return nil
	})
}

// substringMatcher is a minimal case-insensitive contains filter, used
// only by the nested action-selection picker so that package picker does
// not need to depend on the strategy package's reference Matcher.
func substringMatcher() match.Matcher {
	return match.MatcherFunc(func(ctx context.Context, items []item.Item, query string, out chan<- item.Item) error {
		defer close(out)
		q := strings.ToLower(query)
		for _, it := range items {
			select {
			case <-ctx.Done():
				return errs.Cancelled
			default:
			}
			if q == "" || strings.Contains(strings.ToLower(it.Value), q) {
				select {
				case out <- it:
				case <-ctx.Done():
					return errs.Cancelled
				}
			}
		}
		return nil
	})
}

// passthroughRenderer leaves Label/Decorations at the defaults the Render
// Processor already assigned (Label = Value, Decorations = []), used only
// by the nested action-selection picker.
func passthroughRenderer() render.Renderer {
	return render.RendererFunc(func(ctx context.Context, items []item.Item) error { return nil })
}
