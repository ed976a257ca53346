// Package strategy holds the picker engine's reference stage
// implementations (spec §6): a substring Matcher, two Sorters, a plain
// Renderer, a line-oriented Previewer, and two Sources. None of these are
// part of the core contract; they exist so a host can wire a working
// picker without writing its own strategies first.
package strategy

import (
	"context"
	"strings"

	"github.com/vim-fall/fall.vim/errs"
	"github.com/vim-fall/fall.vim/item"
)

// SubstrMatch is a case-insensitive substring Matcher: an item matches
// when its Value contains every whitespace-separated token in the query,
// in any order. Score is the count of matched tokens; since every match
// contains all tokens, all matches of one query share the same score and
// byscore falls back to its Value tiebreak.
type SubstrMatch struct{}

// NewSubstrMatch creates the substring Matcher.
func NewSubstrMatch() SubstrMatch { return SubstrMatch{} }

func (SubstrMatch) Incremental() bool { return true }

func (SubstrMatch) Match(ctx context.Context, items []item.Item, query string, out chan<- item.Item) error {
	defer close(out)

	tokens := strings.Fields(strings.ToLower(query))

	for _, it := range items {
		select {
		case <-ctx.Done():
			return errs.Cancelled
		default:
		}

		haystack := strings.ToLower(it.Value)
		score := 0
		matched := true
		for _, tok := range tokens {
			idx := strings.Index(haystack, tok)
			if idx < 0 {
				matched = false
				break
			}
			score++
			it.Decorations = append(it.Decorations, item.Decoration{
				Column:    idx,
				Length:    len(tok),
				Highlight: item.HighlightMatch,
			})
		}
		if !matched {
			continue
		}
		it.Score = float64(score)

		select {
		case out <- it:
		case <-ctx.Done():
			return errs.Cancelled
		}
	}
	return nil
}
