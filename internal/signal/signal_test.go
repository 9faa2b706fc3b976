package signal

import "testing"

func TestEmitOrder(t *testing.T) {
	var s Signal[int]
	var got []int
	s.Subscribe(func(v int) { got = append(got, v*10) })
	s.Subscribe(func(v int) { got = append(got, v*100) })
	s.Emit(1)
	if len(got) != 2 || got[0] != 10 || got[1] != 100 {
		t.Fatalf("unexpected emission order: %v", got)
	}
}

func TestUnsubscribeDuringEmit(t *testing.T) {
	var s Signal[string]
	calls := 0
	var id Subscription
	id = s.Subscribe(func(string) {
		calls++
		s.Unsubscribe(id)
	})
	s.Emit("a")
	s.Emit("b")
	if calls != 1 {
		t.Fatalf("expected one call, got %d", calls)
	}
	if s.Len() != 0 {
		t.Fatalf("expected no handlers left, got %d", s.Len())
	}
}

func TestUnsubscribeUnknownIsIgnored(t *testing.T) {
	var s Signal[int]
	s.Subscribe(func(int) {})
	s.Unsubscribe(42)
	if s.Len() != 1 {
		t.Fatalf("expected handler to remain, got %d", s.Len())
	}
}
