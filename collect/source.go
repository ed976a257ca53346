package collect

import (
	"context"

	"github.com/vim-fall/fall.vim/item"
)

// Source is the extension contract an external collaborator implements to
// feed the pipeline (spec §6): Collect streams items from it, honoring ctx
// cancellation. A Source may be infinite; the Collect Processor caps
// ingestion at its configured threshold.
type Source interface {
	// Collect streams items onto out until ctx is cancelled, the source is
	// exhausted, or an error occurs. Collect must close out before
	// returning (on every exit path) so the Collect Processor's receive
	// loop observes the closed channel.
	Collect(ctx context.Context, out chan<- item.Item) error
}

// SourceFunc adapts a plain function to a Source.
type SourceFunc func(ctx context.Context, out chan<- item.Item) error

// Collect implements Source.
func (f SourceFunc) Collect(ctx context.Context, out chan<- item.Item) error {
	return f(ctx, out)
}
