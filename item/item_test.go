package item

import "testing"

func TestDisplayLabelDefaultsToValue(t *testing.T) {
	it := Item{Value: "foo.go"}
	if it.DisplayLabel() != "foo.go" {
		t.Fatalf("expected foo.go, got %s", it.DisplayLabel())
	}
	it.Label = "custom"
	if it.DisplayLabel() != "custom" {
		t.Fatalf("expected custom, got %s", it.DisplayLabel())
	}
}

func TestSelectionToggle(t *testing.T) {
	s := NewSelection()
	s.Toggle(3)
	if !s.Has(3) {
		t.Fatal("expected 3 selected")
	}
	s.Toggle(3)
	if s.Has(3) {
		t.Fatal("expected 3 deselected")
	}
}

func TestSelectionOnOff(t *testing.T) {
	s := NewSelection()
	s.On(1)
	s.On(2)
	if len(s.IDs()) != 2 {
		t.Fatalf("expected 2 ids, got %d", len(s.IDs()))
	}
	s.Off(1)
	if s.Has(1) {
		t.Fatal("expected 1 removed")
	}
}

func TestContextCloneIsIndependent(t *testing.T) {
	c := Context{
		Selection:      Selection{1: {}},
		CollectedItems: []Item{{ID: 1, Value: "a"}},
	}
	clone := c.Clone()
	clone.Selection.On(2)
	clone.CollectedItems[0].Value = "mutated"

	if c.Selection.Has(2) {
		t.Fatal("mutating clone selection leaked into original")
	}
	if c.CollectedItems[0].Value != "a" {
		t.Fatal("mutating clone items leaked into original")
	}
}
