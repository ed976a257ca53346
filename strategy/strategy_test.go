package strategy

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/vim-fall/fall.vim/item"
)

func collectAll(t *testing.T, items []item.Item, query string) []item.Item {
	t.Helper()
	out := make(chan item.Item)
	errCh := make(chan error, 1)
	go func() { errCh <- NewSubstrMatch().Match(context.Background(), items, query, out) }()
	var got []item.Item
	for it := range out {
		got = append(got, it)
	}
	if err := <-errCh; err != nil {
		t.Fatalf("Match: %v", err)
	}
	return got
}

func TestSubstrMatchFiltersByTokens(t *testing.T) {
	items := []item.Item{{Value: "alpha beta"}, {Value: "gamma"}, {Value: "alpha gamma"}}
	got := collectAll(t, items, "alpha")
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(got))
	}
}

func TestSubstrMatchMultiToken(t *testing.T) {
	items := []item.Item{{Value: "alpha beta"}, {Value: "alpha gamma"}}
	got := collectAll(t, items, "alpha gamma")
	if len(got) != 1 || got[0].Value != "alpha gamma" {
		t.Fatalf("expected only alpha gamma, got %v", got)
	}
}

func TestByValueSortsAscending(t *testing.T) {
	items := []item.Item{{Value: "c"}, {Value: "a"}, {Value: "b"}}
	if err := NewByValue().Sort(context.Background(), items); err != nil {
		t.Fatalf("Sort: %v", err)
	}
	if items[0].Value != "a" || items[1].Value != "b" || items[2].Value != "c" {
		t.Fatalf("not sorted: %v", items)
	}
}

func TestByScoreSortsDescending(t *testing.T) {
	items := []item.Item{{Value: "a", Score: 1}, {Value: "b", Score: 3}, {Value: "c", Score: 2}}
	if err := NewByScore().Sort(context.Background(), items); err != nil {
		t.Fatalf("Sort: %v", err)
	}
	if items[0].Value != "b" || items[1].Value != "c" || items[2].Value != "a" {
		t.Fatalf("not sorted by score desc: %v", items)
	}
}

func TestFixedSourceYieldsInOrder(t *testing.T) {
	out := make(chan item.Item)
	errCh := make(chan error, 1)
	go func() { errCh <- NewFixedSource([]string{"x", "y"}).Collect(context.Background(), out) }()
	var got []string
	for it := range out {
		got = append(got, it.Value)
	}
	if err := <-errCh; err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if len(got) != 2 || got[0] != "x" || got[1] != "y" {
		t.Fatalf("unexpected order: %v", got)
	}
}

func TestWalkSourceFindsFiles(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.txt"), []byte("hi"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "sub", "b.txt"), []byte("hi"), 0o644); err != nil {
		t.Fatal(err)
	}

	out := make(chan item.Item)
	errCh := make(chan error, 1)
	go func() { errCh <- NewWalkSource(dir).Collect(context.Background(), out) }()
	var got []string
	for it := range out {
		got = append(got, it.Value)
	}
	if err := <-errCh; err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 files, got %d: %v", len(got), got)
	}
}

func TestTextPreviewReadsDetailString(t *testing.T) {
	p := NewTextPreview(0)
	payload, err := p.Preview(context.Background(), item.Item{Value: "x.go", Detail: "line1\nline2"})
	if err != nil {
		t.Fatalf("Preview: %v", err)
	}
	if len(payload.Lines) != 2 || payload.Filetype != "go" {
		t.Fatalf("unexpected payload: %+v", payload)
	}
}

func TestTextPreviewReadsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f.txt")
	if err := os.WriteFile(path, []byte("a\nb\nc"), 0o644); err != nil {
		t.Fatal(err)
	}
	p := NewTextPreview(0)
	payload, err := p.Preview(context.Background(), item.Item{Value: path})
	if err != nil {
		t.Fatalf("Preview: %v", err)
	}
	if len(payload.Lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(payload.Lines))
	}
}
