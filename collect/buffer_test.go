package collect

import "testing"

func TestBufferDedupByKey(t *testing.T) {
	b := NewBuffer[string, string](func(s string) string { return s })
	accepted := b.Push("a", "b", "a", "c", "b")
	if len(accepted) != 3 {
		t.Fatalf("expected 3 accepted, got %d", len(accepted))
	}
	if b.Len() != 3 {
		t.Fatalf("expected len 3, got %d", b.Len())
	}
	want := []string{"a", "b", "c"}
	got := b.Items()
	for i, w := range want {
		if got[i] != w {
			t.Fatalf("index %d: want %s got %s", i, w, got[i])
		}
	}
}

func TestBufferPreservesInsertionOrder(t *testing.T) {
	type kv struct {
		key string
		val int
	}
	b := NewBuffer[kv, string](func(x kv) string { return x.key })
	b.Push(kv{"x", 1}, kv{"y", 2}, kv{"x", 3})
	items := b.Items()
	if len(items) != 2 || items[0].val != 1 || items[1].val != 2 {
		t.Fatalf("unexpected items: %+v", items)
	}
}
