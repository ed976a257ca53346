package picker

import (
	"time"

	"github.com/vim-fall/fall.vim/config"
	"github.com/vim-fall/fall.vim/events"
	"github.com/vim-fall/fall.vim/item"
)

// Types returns every event type the orchestrator handles; it is the sole
// events.Handler registered with its Router (spec §4.12's event table is
// stage-invariant and exhaustive, so one handler covers it all).
func (p *Picker) Types() []events.Type {
	return []events.Type{
		events.CmdlineChanged, events.CmdposChanged,
		events.MoveCursor, events.MoveCursorAt,
		events.SelectItem, events.SelectAllItems,
		events.SwitchMatcher, events.SwitchMatcherAt,
		events.SwitchSorter, events.SwitchSorterAt,
		events.SwitchRenderer, events.SwitchRendererAt,
		events.SwitchPreviewer, events.SwitchPreviewerAt,
		events.ActionInvoke,
		events.ListComponentExecute, events.PreviewComponentExecute,
		events.HelpComponentToggle, events.HelpComponentPage,
		events.CollectStarted, events.CollectUpdated, events.CollectSucceeded, events.CollectFailed,
		events.MatchStarted, events.MatchUpdated, events.MatchSucceeded, events.MatchFailed,
		events.SortStarted, events.SortSucceeded, events.SortFailed,
		events.RenderStarted, events.RenderSucceeded, events.RenderFailed,
		events.PreviewStarted, events.PreviewSucceeded, events.PreviewFailed,
	}
}

// HandleEvent implements the event-handling table from spec §4.12.
func (p *Picker) HandleEvent(ev events.Event) {
	switch ev.Type {

	case events.CmdlineChanged:
		payload := ev.Payload.(events.CmdlinePayload)
		p.mu.Lock()
		p.query = payload.Cmdline
		collected := p.collected
		p.mu.Unlock()
		p.metrics.query.Store(payload.Cmdline)
		if p.inputC != nil {
			p.inputC.SetCmdline(payload.Cmdline)
		}
		p.reserve(func() { p.match.Start(p.ctx, collected, payload.Cmdline, true) })

	case events.CmdposChanged:
		payload := ev.Payload.(events.CmdposPayload)
		p.mu.Lock()
		p.cmdpos = payload.Cmdpos
		p.mu.Unlock()
		if p.inputC != nil {
			p.inputC.SetCmdpos(payload.Cmdpos)
		}

	case events.MoveCursor:
		payload := ev.Payload.(events.MoveCursorPayload)
		amount := payload.Amount
		if payload.Scroll {
			amount *= config.DefaultListScroll
		}
		p.render.MoveCursor(amount)
		p.reserveRerender()

	case events.MoveCursorAt:
		payload := ev.Payload.(events.MoveCursorAtPayload)
		p.render.SetCursor(payload.Cursor, payload.Last)
		p.reserveRerender()

	case events.SelectItem:
		p.handleSelectItem(ev.Payload.(events.SelectItemPayload))

	case events.SelectAllItems:
		p.handleSelectAllItems(ev.Payload.(events.SelectAllItemsPayload))

	case events.SwitchMatcher:
		payload := ev.Payload.(events.SwitchPayload)
		p.match.Belt().Move(payload.Amount, payload.Cycle)
		p.reserveMatchRestart()

	case events.SwitchMatcherAt:
		payload := ev.Payload.(events.SwitchAtPayload)
		p.setBeltIndex(p.match.Belt(), payload)
		p.reserveMatchRestart()

	case events.SwitchSorter:
		if b := p.sort.Belt(); b != nil {
			payload := ev.Payload.(events.SwitchPayload)
			b.Move(payload.Amount, payload.Cycle)
			p.reserveSortRestart()
		}

	case events.SwitchSorterAt:
		if b := p.sort.Belt(); b != nil {
			p.setBeltIndex(b, ev.Payload.(events.SwitchAtPayload))
			p.reserveSortRestart()
		}

	case events.SwitchRenderer:
		payload := ev.Payload.(events.SwitchPayload)
		p.render.Belt().Move(payload.Amount, payload.Cycle)
		p.reserveRenderRestart()

	case events.SwitchRendererAt:
		p.setBeltIndex(p.render.Belt(), ev.Payload.(events.SwitchAtPayload))
		p.reserveRenderRestart()

	case events.SwitchPreviewer:
		if b := p.preview.Belt(); b != nil {
			payload := ev.Payload.(events.SwitchPayload)
			b.Move(payload.Amount, payload.Cycle)
			p.reservePreviewRestart()
		}

	case events.SwitchPreviewerAt:
		if b := p.preview.Belt(); b != nil {
			p.setBeltIndex(b, ev.Payload.(events.SwitchAtPayload))
			p.reservePreviewRestart()
		}

	case events.ActionInvoke:
		payload := ev.Payload.(events.ActionInvokePayload)
		p.reserve(func() { p.accept(payload.Name) })

	case events.ListComponentExecute:
		if p.listC != nil {
			p.listC.Execute(ev.Payload.(events.ComponentExecutePayload).Command)
		}

	case events.PreviewComponentExecute:
		if p.previewC != nil {
			p.previewC.Execute(ev.Payload.(events.ComponentExecutePayload).Command)
		}

	case events.HelpComponentToggle:
		if p.helpC != nil {
			p.helpC.Toggle()
		}

	case events.HelpComponentPage:
		if p.helpC != nil {
			p.helpC.Page(ev.Payload.(events.HelpPagePayload).Amount)
		}

	case events.CollectStarted:
		p.mu.Lock()
		p.collecting = true
		p.mu.Unlock()
		p.metrics.collecting.Set(1)

	case events.CollectUpdated:
		collected := p.collect.Items()
		p.mu.Lock()
		p.collected = collected
		query := p.query
		p.mu.Unlock()
		p.metrics.collected.Set(float64(len(collected)))
		p.reserve(func() { p.match.Start(p.ctx, collected, query, false) })

	case events.CollectSucceeded:
		collected := p.collect.Items()
		p.mu.Lock()
		p.collected = collected
		p.collecting = false
		query := p.query
		p.mu.Unlock()
		p.metrics.collected.Set(float64(len(collected)))
		p.metrics.collecting.Set(0)
		p.reserve(func() { p.match.Start(p.ctx, collected, query, false) })

	case events.CollectFailed:
		p.recordFailure(ev)
		p.mu.Lock()
		p.collecting = false
		p.mu.Unlock()
		p.metrics.collecting.Set(0)

	case events.MatchUpdated, events.MatchSucceeded:
		matched := p.match.Matched()
		p.mu.Lock()
		p.matched = matched
		start := p.matchStart
		p.mu.Unlock()
		p.metrics.matched.Set(float64(len(matched)))
		if !start.IsZero() {
			p.metrics.matchMs.Set(elapsedMs(start))
		}
		p.reserve(func() { p.sort.Start(p.ctx, matched, false) })

	case events.MatchFailed:
		p.recordFailure(ev)

	case events.SortSucceeded:
		sorted := p.sort.Sorted()
		p.mu.Lock()
		p.sorted = sorted
		start := p.sortStart
		p.mu.Unlock()
		p.metrics.sorted.Set(float64(len(sorted)))
		if !start.IsZero() {
			p.metrics.sortMs.Set(elapsedMs(start))
		}
		p.reserve(func() { p.render.Start(p.ctx, sorted, false) })

	case events.SortFailed:
		p.recordFailure(ev)

	case events.RenderSucceeded:
		window := p.render.Window()
		line := p.render.Line()
		p.mu.Lock()
		sel := p.selection
		start := p.renderStart
		p.mu.Unlock()
		p.metrics.window.Set(float64(len(window)))
		if !start.IsZero() {
			p.metrics.renderMs.Set(elapsedMs(start))
		}
		if p.listC != nil {
			p.listC.SetWindow(window, sel, line)
		}
		p.reserveDebouncedPreview()

	case events.RenderFailed:
		p.recordFailure(ev)

	case events.PreviewSucceeded:
		p.mu.Lock()
		start := p.previewStart
		p.mu.Unlock()
		if !start.IsZero() {
			p.metrics.previewMs.Set(elapsedMs(start))
		}
		if p.previewC != nil {
			p.previewC.SetPayload(p.preview.Payload())
		}

	case events.PreviewFailed:
		p.recordFailure(ev)

	case events.MatchStarted:
		p.mu.Lock()
		p.matchStart = time.Now()
		p.mu.Unlock()

	case events.SortStarted:
		p.mu.Lock()
		p.sortStart = time.Now()
		p.mu.Unlock()

	case events.RenderStarted:
		p.mu.Lock()
		p.renderStart = time.Now()
		p.mu.Unlock()

	case events.PreviewStarted:
		p.mu.Lock()
		p.previewStart = time.Now()
		p.mu.Unlock()
	}
}

// recordFailure stores the last stage error for host-side reporting.
// per §7/§4.12, a *-failed event with a nil error means cancellation and
// must be ignored; our processors never dispatch *-failed for
// cancellation (errs.IsCancelled is checked before dispatch), so this is
// a defensive no-op guard rather than a path our own code exercises.
func (p *Picker) recordFailure(ev events.Event) {
	payload, ok := ev.Payload.(events.FailedPayload)
	if !ok || payload.Err == nil {
		return
	}
	p.mu.Lock()
	p.lastErr = payload.Err
	p.mu.Unlock()
}

func (p *Picker) reserveRerender() {
	p.mu.Lock()
	sorted := p.sorted
	p.mu.Unlock()
	p.reserve(func() { p.render.Start(p.ctx, sorted, false) })
}

func (p *Picker) reserveMatchRestart() {
	p.mu.Lock()
	collected, query := p.collected, p.query
	p.mu.Unlock()
	p.reserve(func() { p.match.Start(p.ctx, collected, query, true) })
}

func (p *Picker) reserveSortRestart() {
	p.mu.Lock()
	matched := p.matched
	p.mu.Unlock()
	p.reserve(func() { p.sort.Start(p.ctx, matched, true) })
}

func (p *Picker) reserveRenderRestart() {
	p.mu.Lock()
	sorted := p.sorted
	p.mu.Unlock()
	p.reserve(func() { p.render.Start(p.ctx, sorted, true) })
}

func (p *Picker) reservePreviewRestart() {
	it := p.itemUnderCursor()
	p.reserve(func() { p.preview.Start(p.ctx, it, true) })
}

// reserveDebouncedPreview arms (or re-arms) the preview debounce timer
// (spec §5 Debouncing): the cursor moves frequently while the query is
// typed, and previewing is comparatively expensive, so only the item
// still under the cursor after the delay elapses gets previewed.
func (p *Picker) reserveDebouncedPreview() {
	it := p.itemUnderCursor()
	delay := p.opts.PreviewDebounce

	p.previewMu.Lock()
	defer p.previewMu.Unlock()
	if p.previewTimer != nil {
		p.previewTimer.Stop()
	}
	p.previewTimer = time.AfterFunc(delay, func() {
		p.preview.Start(p.ctx, it, false)
	})
}

func (p *Picker) itemUnderCursor() *item.Item {
	p.mu.Lock()
	defer p.mu.Unlock()
	return itemAt(p.sorted, p.render.Cursor())
}

func (p *Picker) handleSelectItem(payload events.SelectItemPayload) {
	cursor := payload.Cursor
	if !payload.HasCursor {
		cursor = p.render.Cursor()
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	it := itemAt(p.sorted, cursor)
	if it == nil {
		return
	}
	switch payload.Method {
	case events.SelectOn:
		p.selection.On(it.ID)
	case events.SelectOff:
		p.selection.Off(it.ID)
	default:
		p.selection.Toggle(it.ID)
	}
	p.metrics.recordSelection(len(p.selection))
}

func (p *Picker) handleSelectAllItems(payload events.SelectAllItemsPayload) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, it := range p.sorted {
		switch payload.Method {
		case events.SelectOn:
			p.selection.On(it.ID)
		case events.SelectOff:
			p.selection.Off(it.ID)
		default:
			p.selection.Toggle(it.ID)
		}
	}
	p.metrics.recordSelection(len(p.selection))
}

// beltIndexer is the subset of belt.Belt[S] needed to apply a
// SwitchAtPayload without the handler being generic over strategy type.
type beltIndexer interface {
	SetIndex(int)
	SetLast()
}

func (p *Picker) setBeltIndex(b beltIndexer, payload events.SwitchAtPayload) {
	if payload.Last {
		b.SetLast()
		return
	}
	b.SetIndex(payload.Index)
}
