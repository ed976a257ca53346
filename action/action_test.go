package action

import (
	"context"
	"testing"

	"github.com/vim-fall/fall.vim/errs"
)

func TestDispatcherInvokesRegisteredAction(t *testing.T) {
	m := NewMap()
	var gotQuery string
	m.Register("echo", Func(func(ctx context.Context, actx Context) (bool, error) {
		gotQuery = actx.Query
		return false, nil
	}))

	d := NewDispatcher(m)
	cont, err := d.Invoke(context.Background(), "echo", Context{Query: "hello"})
	if err != nil {
		t.Fatalf("Invoke: %v", err)
	}
	if cont {
		t.Fatal("expected exit (false), got continue")
	}
	if gotQuery != "hello" {
		t.Fatalf("expected query hello, got %q", gotQuery)
	}
}

func TestDispatcherUnknownAction(t *testing.T) {
	d := NewDispatcher(NewMap())
	if _, err := d.Resolve("nope"); err != errs.ErrUnknownAction {
		t.Fatalf("expected ErrUnknownAction, got %v", err)
	}
}

func TestIsSelectSentinel(t *testing.T) {
	if !IsSelectSentinel("@select") {
		t.Fatal("expected @select to be recognized as the sentinel")
	}
	if IsSelectSentinel("open") {
		t.Fatal("expected ordinary name to not be the sentinel")
	}
}

func TestDispatcherContinuesOnTrue(t *testing.T) {
	m := NewMap()
	m.Register("multi", Func(func(ctx context.Context, actx Context) (bool, error) {
		return true, nil
	}))
	d := NewDispatcher(m)
	cont, err := d.Invoke(context.Background(), "multi", Context{})
	if err != nil {
		t.Fatalf("Invoke: %v", err)
	}
	if !cont {
		t.Fatal("expected continue (true)")
	}
}
