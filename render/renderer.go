// Package render implements the Render Processor (spec §4.8): owns cursor
// and scroll-offset state and produces the visible window of display
// items via the current Renderer.
//
// Clamp/offset geometry is ported directly from terminal/tui/scroll.go's
// AdjustScroll/ClampCursor/ClampScroll (the teacher's list-widget scroll
// math), generalized from a pixel-row list to the item window.
package render

import (
	"context"

	"github.com/vim-fall/fall.vim/item"
)

// Renderer is the extension contract an external collaborator implements
// (spec §6): it sets Label/Decorations on each item in the visible window.
type Renderer interface {
	Render(ctx context.Context, items []item.Item) error
}

// RendererFunc adapts a plain in-place render function.
type RendererFunc func(ctx context.Context, items []item.Item) error

func (f RendererFunc) Render(ctx context.Context, items []item.Item) error { return f(ctx, items) }

// clampScroll bounds scroll to [0, total-visible], matching
// terminal/tui/scroll.go's ClampScroll.
func clampScroll(scroll, visible, total int) int {
	if total <= visible {
		return 0
	}
	maxScroll := total - visible
	if scroll < 0 {
		return 0
	}
	if scroll > maxScroll {
		return maxScroll
	}
	return scroll
}

// clampCursor bounds cursor to [0, total), matching
// terminal/tui/scroll.go's ClampCursor.
func clampCursor(cursor, total int) int {
	if total <= 0 {
		return 0
	}
	if cursor < 0 {
		return 0
	}
	if cursor >= total {
		return total - 1
	}
	return cursor
}
