package visibility

import (
	"errors"
	"testing"

	"pgregory.net/rapid"
)

func TestDefaultVisibilityWithoutParent(t *testing.T) {
	if !New(true).VisibleInHierarchy() {
		t.Fatalf("expected default-visible manager to be visible")
	}
	hidden := New(false)
	if hidden.VisibleInHierarchy() {
		t.Fatalf("expected default-hidden manager to be hidden")
	}
	if !hidden.VisibleSelf() {
		t.Fatalf("expected VisibleSelf to default to true")
	}
}

func TestSetParentTwiceFails(t *testing.T) {
	a, b, child := New(true), New(true), New(false)
	if err := child.SetParent(a); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := child.SetParent(b); !errors.Is(err, ErrParentAlreadySet) {
		t.Fatalf("expected ErrParentAlreadySet, got %v", err)
	}
	child.ClearParent()
	if child.VisibleInHierarchy() {
		t.Fatalf("expected detached child to fall back to hidden default")
	}
	if err := child.SetParent(b); err != nil {
		t.Fatalf("expected re-link after ClearParent to succeed: %v", err)
	}
}

func TestNotificationsOnlyOnTransitions(t *testing.T) {
	root, mid, leaf := New(true), New(false), New(false)
	if err := mid.SetParent(root); err != nil {
		t.Fatal(err)
	}
	if err := leaf.SetParent(mid); err != nil {
		t.Fatal(err)
	}
	var events []bool
	leaf.Subscribe(func(v bool) { events = append(events, v) })

	root.SetVisibleSelf(false)
	mid.SetVisibleSelf(false)
	root.SetVisibleSelf(true)
	if len(events) != 1 || events[0] {
		t.Fatalf("expected a single hide notification, got %v", events)
	}
	mid.SetVisibleSelf(true)
	if len(events) != 2 || !events[1] {
		t.Fatalf("expected show notification, got %v", events)
	}
	if mid.SetVisibleSelf(true) {
		t.Fatalf("expected no change for repeated write")
	}
}

func TestChainIsConjunctionOfVisibleSelf(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 12).Draw(t, "n")
		chain := make([]*Manager, n)
		for i := range chain {
			chain[i] = New(i == 0)
			if i > 0 {
				if err := chain[i].SetParent(chain[i-1]); err != nil {
					t.Fatalf("link %d: %v", i, err)
				}
			}
		}
		leaf := chain[n-1]
		notifications := 0
		leaf.Subscribe(func(bool) { notifications++ })

		steps := rapid.IntRange(1, 30).Draw(t, "steps")
		for s := 0; s < steps; s++ {
			before := leaf.VisibleInHierarchy()
			idx := rapid.IntRange(0, n-1).Draw(t, "idx")
			val := rapid.Bool().Draw(t, "val")
			prev := notifications
			chain[idx].SetVisibleSelf(val)

			want := true
			for _, m := range chain {
				want = want && m.VisibleSelf()
			}
			if leaf.VisibleInHierarchy() != want {
				t.Fatalf("leaf visibility %v, want %v", leaf.VisibleInHierarchy(), want)
			}
			expected := prev
			if before != want {
				expected++
			}
			if notifications != expected {
				t.Fatalf("expected %d notifications, got %d", expected, notifications)
			}
		}
	})
}
