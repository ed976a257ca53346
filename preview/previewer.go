// Package preview implements the Preview Processor (spec §4.9): generates
// preview content for the item under the cursor via the current
// Previewer, invoked through a debounced reservation on cursor-driven
// updates and immediately after a previewer switch.
package preview

import (
	"context"

	"github.com/vim-fall/fall.vim/item"
)

// Previewer is the extension contract an external collaborator implements
// (spec §6): it produces a preview payload for a single item, or nil if
// there is nothing to preview.
type Previewer interface {
	Preview(ctx context.Context, it item.Item) (*item.PreviewPayload, error)
}

// PreviewerFunc adapts a plain preview function.
type PreviewerFunc func(ctx context.Context, it item.Item) (*item.PreviewPayload, error)

func (f PreviewerFunc) Preview(ctx context.Context, it item.Item) (*item.PreviewPayload, error) {
	return f(ctx, it)
}
