package strategy

import (
	"context"

	"github.com/vim-fall/fall.vim/errs"
	"github.com/vim-fall/fall.vim/item"
)

// PlainText is a Renderer that leaves the Render Processor's defaults
// (Label = Value, Decorations = []) untouched, except that decorations
// produced upstream by a Matcher (e.g. SubstrMatch's match spans) are
// preserved rather than cleared.
type PlainText struct{}

// NewPlainText creates the pass-through Renderer.
func NewPlainText() PlainText { return PlainText{} }

func (PlainText) Render(ctx context.Context, items []item.Item) error {
	if ctx.Err() != nil {
		return errs.Cancelled
	}
	return nil
}
