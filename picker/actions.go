package picker

import (
	"context"

	"github.com/vim-fall/fall.vim/action"
	"github.com/vim-fall/fall.vim/config"
	"github.com/vim-fall/fall.vim/match"
	"github.com/vim-fall/fall.vim/render"
)

// Cancel ends the picker with no action chosen (spec §4.11's `input()`
// cancel transition). Safe to call from any goroutine.
func (p *Picker) Cancel() {
	p.mu.Lock()
	query := p.query
	p.mu.Unlock()
	p.finish(Result{Cancelled: true, Query: query})
}

// accept implements the action-selection flow (spec §4.12 "Action
// selection flow"). name == config.SelectActionName opens a nested
// action-selection picker instead of invoking anything directly; an empty
// (cancelled) sub-result returns control to the outer picker without
// closing it. Otherwise the named action is resolved and invoked with the
// outer picker's current selection state, looping the outer picker (if
// Invoke returns true) or finishing it (false).
func (p *Picker) accept(name string) {
	if action.IsSelectSentinel(name) {
		chosen, ok := p.runActionSelectionPicker()
		if !ok {
			return
		}
		name = chosen
	}

	p.mu.Lock()
	query := p.query
	sorted := p.sorted
	selection := p.selection
	cur := itemAt(sorted, p.render.Cursor())
	p.mu.Unlock()

	actx := action.Context{
		Item:          cur,
		SelectedItems: selectedItems(sorted, selection),
		FilteredItems: sorted,
		Query:         query,
	}

	cont, err := p.dispatcher.Invoke(p.ctx, name, actx)
	if err != nil {
		p.mu.Lock()
		p.lastErr = err
		p.mu.Unlock()
		return
	}
	if cont {
		// Action asked to keep the picker open for another selection
		// round; nothing else to do, the event loop continues.
		return
	}

	p.finish(Result{
		Action:        name,
		Item:          cur,
		SelectedItems: actx.SelectedItems,
		FilteredItems: sorted,
		Query:         query,
	})
}

// actionSelectAccept is the sole action name registered on the nested
// action-selection picker: choosing a row simply ends that sub-picker
// with the chosen action name as its Result.Item, it never itself does
// any work.
const actionSelectAccept = "accept"

// runActionSelectionPicker opens a nested Picker whose source is the
// outer picker's registered action names, reusing the outer picker's host
// and components (spec §4.12: the action picker is "itself a nested
// Picker", sharing the same chrome, not a separate window). It blocks
// until the sub-picker resolves and returns the chosen action name. ok is
// false when the sub-picker was cancelled, in which case control returns
// to the outer picker unchanged.
func (p *Picker) runActionSelectionPicker() (name string, ok bool) {
	names := p.dispatcher.Names()
	if len(names) == 0 {
		return "", false
	}

	actions := action.NewMap()
	actions.Register(actionSelectAccept, action.Func(func(ctx context.Context, actx action.Context) (bool, error) {
		return false, nil
	}))

	sub, err := New(Options{
		Matchers:  []match.Matcher{substringMatcher()},
		Renderers: []render.Renderer{passthroughRenderer()},
		Actions:   actions,
		Picker:    config.PickerOptions{Height: p.opts.Height},
	})
	if err != nil {
		return "", false
	}

	stack := sub.Open(p.ctx, sliceSource(names), p.host, p.input, p.listC, p.previewC, p.inputC, p.helpC)
	defer stack.Close()

	result := sub.Run(p.ctx)
	if result.Cancelled || result.Item == nil {
		return "", false
	}
	return result.Item.Value, true
}
