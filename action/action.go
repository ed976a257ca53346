// Package action implements the Action extension contract and the Action
// Dispatcher (spec component #14): resolving a chosen action name against
// a picker's action map and invoking it with the picker's current
// selection state.
package action

import (
	"context"

	"github.com/vim-fall/fall.vim/config"
	"github.com/vim-fall/fall.vim/errs"
	"github.com/vim-fall/fall.vim/item"
	"github.com/vim-fall/fall.vim/registry"
)

// Context is what an Action sees when invoked (spec §4.12's action
// selection flow): the item under the cursor (nil if none), the full
// selection, the currently filtered items, and the live query string.
type Context struct {
	Item          *item.Item
	SelectedItems []item.Item
	FilteredItems []item.Item
	Query         string
}

// Action is the extension contract an external collaborator implements
// (spec §6). Invoke returns true to keep the picker open for another
// selection round, false to exit the picker.
type Action interface {
	Invoke(ctx context.Context, actx Context) (bool, error)
}

// Func adapts a plain invoke function to Action.
type Func func(ctx context.Context, actx Context) (bool, error)

func (f Func) Invoke(ctx context.Context, actx Context) (bool, error) { return f(ctx, actx) }

// Map is a picker's name -> Action table.
type Map = registry.Table[Action]

// NewMap creates an empty action map.
func NewMap() *Map {
	return registry.NewTable[Action]()
}

// Dispatcher resolves an action name to an Action and invokes it,
// recognizing the "@select" sentinel that asks the orchestrator to open a
// nested action-selection picker instead of invoking anything directly.
type Dispatcher struct {
	actions *Map
}

// NewDispatcher creates a Dispatcher over actions.
func NewDispatcher(actions *Map) *Dispatcher {
	return &Dispatcher{actions: actions}
}

// IsSelectSentinel reports whether name is the reserved "open the
// action-selection picker" sentinel (spec §4.12 Action selection flow).
func IsSelectSentinel(name string) bool {
	return name == config.SelectActionName
}

// Resolve looks up name in the action map. Returns errs.ErrUnknownAction
// if no such action is registered.
func (d *Dispatcher) Resolve(name string) (Action, error) {
	a, ok := d.actions.Get(name)
	if !ok {
		return nil, errs.ErrUnknownAction
	}
	return a, nil
}

// Invoke resolves name and calls its Invoke, propagating
// errs.ErrUnknownAction if name is not registered.
func (d *Dispatcher) Invoke(ctx context.Context, name string, actx Context) (bool, error) {
	a, err := d.Resolve(name)
	if err != nil {
		return false, err
	}
	return a.Invoke(ctx, actx)
}

// Names returns every registered action name, order unspecified. Used by
// the nested action-selection picker's source.
func (d *Dispatcher) Names() []string {
	return d.actions.Names()
}
