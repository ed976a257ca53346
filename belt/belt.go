// Package belt implements the Item-Belt (spec §4.4): a cyclic cursor over a
// non-empty slice of per-stage strategies (matchers, sorters, renderers,
// previewers), with clamp-on-set and "$"-means-last semantics.
//
// Grounded on the clamp idiom in terminal/tui/scroll.go's ClampCursor /
// ClampScroll, generalized from a list cursor over rows to a cursor over
// strategy objects.
package belt

// Belt wraps a non-empty ordered slice of strategies of type S with a
// current index.
type Belt[S any] struct {
	strategies []S
	index      int
}

// New creates a belt over strategies, starting at index 0. Panics if
// strategies is empty: a belt always has a current strategy.
func New[S any](strategies []S) *Belt[S] {
	if len(strategies) == 0 {
		panic("belt: strategies must be non-empty")
	}
	return &Belt[S]{strategies: strategies}
}

// Current returns the strategy at the current index.
func (b *Belt[S]) Current() S {
	return b.strategies[b.index]
}

// Index returns the current index.
func (b *Belt[S]) Index() int {
	return b.index
}

// Len returns the number of strategies.
func (b *Belt[S]) Len() int {
	return len(b.strategies)
}

// Strategies returns the underlying slice. Callers must not mutate it.
func (b *Belt[S]) Strategies() []S {
	return b.strategies
}

// SetIndex clamps and sets the current index: values >= count snap to
// count-1, values < 0 snap to 0.
func (b *Belt[S]) SetIndex(index int) {
	b.index = b.clamp(index)
}

// SetLast sets the current index to the last strategy (the "$" sentinel).
func (b *Belt[S]) SetLast() {
	b.index = len(b.strategies) - 1
}

// Move shifts the current index by amount. When cycle is true the index
// wraps around both ends instead of clamping.
func (b *Belt[S]) Move(amount int, cycle bool) {
	if !cycle {
		b.SetIndex(b.index + amount)
		return
	}
	n := len(b.strategies)
	next := (b.index + amount) % n
	if next < 0 {
		next += n
	}
	b.index = next
}

func (b *Belt[S]) clamp(index int) int {
	n := len(b.strategies)
	if index >= n {
		return n - 1
	}
	if index < 0 {
		return 0
	}
	return index
}
