// Package collect implements the Unique-Ordered Buffer, the Chunker, the
// Source extension contract, and the Collect Processor (spec §4.2, §4.3,
// §4.5): the pipeline's ingestion stage.
package collect

// KeyFunc extracts the dedup/insertion key from a T. NewBuffer treats a nil
// KeyFunc as the identity key, which requires T and K to be the same type.
type KeyFunc[T any, K comparable] func(T) K

// Buffer is an insertion-ordered container enforcing uniqueness by a
// caller-supplied key function (spec §4.2). For every pair i<j, key(items[i])
// != key(items[j]).
type Buffer[T any, K comparable] struct {
	key   KeyFunc[T, K]
	seen  map[K]struct{}
	items []T
}

// NewBuffer creates an empty buffer keyed by key. A nil key selects the
// identity key; Push then panics if a T is not a K.
func NewBuffer[T any, K comparable](key KeyFunc[T, K]) *Buffer[T, K] {
	if key == nil {
		key = func(x T) K { return any(x).(K) }
	}
	return &Buffer[T, K]{
		key:  key,
		seen: make(map[K]struct{}),
	}
}

// Push appends each x whose key has not already been seen; duplicates are
// silently skipped. Returns the items actually appended, in order.
func (b *Buffer[T, K]) Push(xs ...T) []T {
	accepted := make([]T, 0, len(xs))
	for _, x := range xs {
		k := b.key(x)
		if _, dup := b.seen[k]; dup {
			continue
		}
		b.seen[k] = struct{}{}
		b.items = append(b.items, x)
		accepted = append(accepted, x)
	}
	return accepted
}

// Len returns the number of items currently held.
func (b *Buffer[T, K]) Len() int {
	return len(b.items)
}

// Items returns the buffer's contents in insertion order. Callers must not
// mutate the returned slice.
func (b *Buffer[T, K]) Items() []T {
	return b.items
}
