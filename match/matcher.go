// Package match implements the Match Processor (spec §4.6): it filters the
// collected item set against the current query using a swappable Matcher,
// in either incremental (publish-as-you-go) or batched (publish-on-finish)
// mode, with reservation/restart semantics shared by every downstream
// processor.
package match

import (
	"context"

	"github.com/vim-fall/fall.vim/item"
)

// Matcher is the extension contract an external collaborator implements
// (spec §6): it streams items matching query onto out. Incremental
// reports whether the matcher supports live chunk-by-chunk publication;
// a non-incremental matcher is still streamed internally but the
// Processor only publishes its output once, on completion.
type Matcher interface {
	Match(ctx context.Context, items []item.Item, query string, out chan<- item.Item) error
	Incremental() bool
}

// MatcherFunc adapts a plain non-incremental matching function.
type MatcherFunc func(ctx context.Context, items []item.Item, query string, out chan<- item.Item) error

func (f MatcherFunc) Match(ctx context.Context, items []item.Item, query string, out chan<- item.Item) error {
	return f(ctx, items, query, out)
}

func (f MatcherFunc) Incremental() bool { return false }
