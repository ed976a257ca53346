// Package sortstage implements the Sort Processor (spec §4.7): applies the
// current Sorter to a copy of the matched items, so concurrent readers of
// the previous sorted list are never disturbed mid-sort.
//
// Named sortstage (not sort) to avoid shadowing the standard library's
// sort package at call sites that need both.
package sortstage

import (
	"context"

	"github.com/vim-fall/fall.vim/item"
)

// Sorter is the extension contract an external collaborator implements
// (spec §6): it sorts items in place.
type Sorter interface {
	Sort(ctx context.Context, items []item.Item) error
}

// SorterFunc adapts a plain in-place sort function.
type SorterFunc func(ctx context.Context, items []item.Item) error

func (f SorterFunc) Sort(ctx context.Context, items []item.Item) error { return f(ctx, items) }
