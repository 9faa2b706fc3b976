package command

import (
	"errors"
	"testing"
)

func TestExecuteRunsImmediately(t *testing.T) {
	ran := false
	cmd := New().Execute(Request{ID: "play", Label: "Play", Run: func() error {
		ran = true
		return nil
	}})
	if !ran {
		t.Fatal("expected request to run before the command is returned")
	}
	res, ok := cmd().(Result)
	if !ok || res.ID != "play" || res.Err != nil {
		t.Fatalf("unexpected result %#v", res)
	}
}

func TestExecuteReportsError(t *testing.T) {
	cmd := New().Execute(Request{ID: "x", Run: func() error { return ErrRefused }})
	if res := cmd().(Result); !errors.Is(res.Err, ErrRefused) {
		t.Fatalf("expected ErrRefused, got %v", res.Err)
	}
}

func TestExecuteSkipsEmptyRequest(t *testing.T) {
	if cmd := New().Execute(Request{ID: "x"}); cmd != nil {
		t.Fatal("expected nil command")
	}
}
