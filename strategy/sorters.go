package strategy

import (
	"context"
	"sort"

	"github.com/vim-fall/fall.vim/errs"
	"github.com/vim-fall/fall.vim/item"
)

// ByValue sorts items lexically by Value, ascending.
type ByValue struct{}

// NewByValue creates the lexical Sorter.
func NewByValue() ByValue { return ByValue{} }

func (ByValue) Sort(ctx context.Context, items []item.Item) error {
	if ctx.Err() != nil {
		return errs.Cancelled
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].Value < items[j].Value })
	return nil
}

// ByScore sorts items by Score, descending (ties broken by Value,
// ascending, for a stable presentation).
type ByScore struct{}

// NewByScore creates the score Sorter.
func NewByScore() ByScore { return ByScore{} }

func (ByScore) Sort(ctx context.Context, items []item.Item) error {
	if ctx.Err() != nil {
		return errs.Cancelled
	}
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Score != items[j].Score {
			return items[i].Score > items[j].Score
		}
		return items[i].Value < items[j].Value
	})
	return nil
}
