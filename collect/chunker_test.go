package collect

import "testing"

func TestChunkerFlushesAtSize(t *testing.T) {
	c := NewChunker[int](3)
	if c.Put(1) {
		t.Fatal("should not be full at 1")
	}
	if c.Put(2) {
		t.Fatal("should not be full at 2")
	}
	if !c.Put(3) {
		t.Fatal("should be full at 3")
	}
	batch := c.Consume()
	if len(batch) != 3 {
		t.Fatalf("expected batch of 3, got %d", len(batch))
	}
	if c.Count() != 0 {
		t.Fatalf("expected reset count 0, got %d", c.Count())
	}
}

func TestChunkerCountTracksUnflushed(t *testing.T) {
	c := NewChunker[string](5)
	c.Put("a")
	c.Put("b")
	if c.Count() != 2 {
		t.Fatalf("expected count 2, got %d", c.Count())
	}
}
