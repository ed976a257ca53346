package session

import (
	"fmt"
	"testing"

	"github.com/vim-fall/fall.vim/errs"
	"github.com/vim-fall/fall.vim/item"
)

func TestStoreSaveAndLoadByName(t *testing.T) {
	s := NewStore(2)
	if err := s.Save("work", []string{"a"}, item.Context{Query: "foo"}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := s.Load(LoadQuery{Name: "work"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Context.Query != "foo" {
		t.Fatalf("expected query foo, got %q", got.Context.Query)
	}
}

func TestStoreRejectsReservedName(t *testing.T) {
	s := NewStore(2)
	if err := s.Save("@internal", nil, item.Context{}); err != errs.ErrReservedName {
		t.Fatalf("expected ErrReservedName, got %v", err)
	}
}

func TestStoreEvictsOldestAtCapacity(t *testing.T) {
	s := NewStore(2)
	_ = s.Save("a", nil, item.Context{})
	_ = s.Save("b", nil, item.Context{})
	_ = s.Save("c", nil, item.Context{})

	if s.Len() != 2 {
		t.Fatalf("expected 2 sessions, got %d", s.Len())
	}
	if _, err := s.Load(LoadQuery{Name: "a"}); err != errs.ErrUnknownSession {
		t.Fatalf("expected a to be evicted, got err=%v", err)
	}
	if _, err := s.Load(LoadQuery{Name: "c"}); err != nil {
		t.Fatalf("expected c to be present: %v", err)
	}
}

func TestStoreLoadByNumber(t *testing.T) {
	s := NewStore(3)
	_ = s.Save("a", nil, item.Context{Query: "1"})
	_ = s.Save("b", nil, item.Context{Query: "2"})

	// Number is 1-based from the most-recent end: 1 = b, 2 = a.
	got, err := s.Load(LoadQuery{Number: 1})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Name != "b" {
		t.Fatalf("expected b, got %s", got.Name)
	}

	got, err = s.Load(LoadQuery{Number: 2})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Name != "a" {
		t.Fatalf("expected a, got %s", got.Name)
	}

	if _, err := s.Load(LoadQuery{Number: 5}); err != errs.ErrUnknownSession {
		t.Fatalf("expected ErrUnknownSession, got %v", err)
	}
}

// TestStoreSaveKeepsDuplicateNames covers spec §4.13: saving a name that
// already exists does not replace the prior entry, since multiple
// sessions may legitimately share a name, distinguished only by recency.
func TestStoreSaveKeepsDuplicateNames(t *testing.T) {
	s := NewStore(10)
	_ = s.Save("a", nil, item.Context{Query: "1"})
	_ = s.Save("a", nil, item.Context{Query: "2"})
	if s.Len() != 2 {
		t.Fatalf("expected 2 sessions after same-name save, got %d", s.Len())
	}
	got, err := s.Load(LoadQuery{Name: "a"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Context.Query != "2" {
		t.Fatalf("expected most recent query 2, got %q", got.Context.Query)
	}
	got, err = s.Load(LoadQuery{Name: "a", Number: 2})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Context.Query != "1" {
		t.Fatalf("expected second-most-recent query 1, got %q", got.Context.Query)
	}
}

// TestStoreRingEviction is scenario S5: saving 105 sessions into a
// capacity-100 store leaves 100 entries, newest first, oldest evicted.
func TestStoreRingEviction(t *testing.T) {
	s := NewStore(100)
	for i := 0; i < 105; i++ {
		_ = s.Save(fmt.Sprintf("s%d", i), nil, item.Context{})
	}
	list := s.List()
	if len(list) != 100 {
		t.Fatalf("expected 100 sessions, got %d", len(list))
	}
	if list[0].Name != "s104" {
		t.Fatalf("expected newest s104 at position 0, got %s", list[0].Name)
	}
	if list[99].Name != "s5" {
		t.Fatalf("expected oldest remaining s5 at position 99, got %s", list[99].Name)
	}
	if _, err := s.Load(LoadQuery{Name: "s4"}); err != errs.ErrUnknownSession {
		t.Fatalf("expected s4 to be evicted, got err=%v", err)
	}
}

// TestStoreLoadByFilteredNumber is scenario S6: after saving sessions
// named [file, buf, file, buf, file], load({name:"file", number:2})
// returns the session named "file" just before the most recent one.
func TestStoreLoadByFilteredNumber(t *testing.T) {
	s := NewStore(10)
	_ = s.Save("file", nil, item.Context{Query: "file-1"})
	_ = s.Save("buf", nil, item.Context{Query: "buf-1"})
	_ = s.Save("file", nil, item.Context{Query: "file-2"})
	_ = s.Save("buf", nil, item.Context{Query: "buf-2"})
	_ = s.Save("file", nil, item.Context{Query: "file-3"})

	got, err := s.Load(LoadQuery{Name: "file", Number: 2})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Context.Query != "file-2" {
		t.Fatalf("expected file-2, got %q", got.Context.Query)
	}
}

func TestContextCloneIsIndependent(t *testing.T) {
	s := NewStore(2)
	ctx := item.Context{CollectedItems: []item.Item{{ID: 1, Value: "x"}}}
	_ = s.Save("a", nil, ctx)

	ctx.CollectedItems[0].Value = "mutated"

	got, _ := s.Load(LoadQuery{Name: "a"})
	if got.Context.CollectedItems[0].Value != "x" {
		t.Fatalf("stored session mutated by caller's later edits: %q", got.Context.CollectedItems[0].Value)
	}
}
