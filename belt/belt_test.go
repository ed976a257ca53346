package belt

import "testing"

func TestBeltClampOnSet(t *testing.T) {
	b := New([]string{"a", "b", "c"})

	b.SetIndex(10)
	if b.Current() != "c" || b.Index() != 2 {
		t.Fatalf("expected clamp to last, got index=%d current=%s", b.Index(), b.Current())
	}

	b.SetIndex(-5)
	if b.Current() != "a" || b.Index() != 0 {
		t.Fatalf("expected clamp to first, got index=%d current=%s", b.Index(), b.Current())
	}

	b.SetIndex(1)
	if b.Current() != "b" {
		t.Fatalf("expected b, got %s", b.Current())
	}
}

func TestBeltSetLast(t *testing.T) {
	b := New([]int{1, 2, 3, 4})
	b.SetLast()
	if b.Index() != 3 || b.Current() != 4 {
		t.Fatalf("expected index 3 value 4, got index=%d value=%d", b.Index(), b.Current())
	}
}

func TestBeltMoveClamps(t *testing.T) {
	b := New([]string{"a", "b", "c"})
	b.Move(1, false)
	if b.Index() != 1 {
		t.Fatalf("expected index 1, got %d", b.Index())
	}
	b.Move(10, false)
	if b.Index() != 2 {
		t.Fatalf("expected clamp to 2, got %d", b.Index())
	}
	b.Move(-10, false)
	if b.Index() != 0 {
		t.Fatalf("expected clamp to 0, got %d", b.Index())
	}
}

func TestBeltMoveCycles(t *testing.T) {
	b := New([]string{"a", "b", "c"})
	b.Move(-1, true)
	if b.Index() != 2 {
		t.Fatalf("expected wrap to 2, got %d", b.Index())
	}
	b.Move(1, true)
	if b.Index() != 0 {
		t.Fatalf("expected wrap to 0, got %d", b.Index())
	}
}

func TestBeltPanicsOnEmpty(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on empty strategies")
		}
	}()
	New([]int{})
}
