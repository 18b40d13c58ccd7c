package freelist

import "testing"

func TestStackLIFO(t *testing.T) {
	s := New(4)

	if !s.Empty() {
		t.Errorf("expected new stack to be empty")
	}

	s.Push(1)
	s.Push(2)
	s.Push(3)

	if s.Len() != 3 {
		t.Errorf("expected len 3, got %d", s.Len())
	}

	for _, want := range []uint32{3, 2, 1} {
		got, ok := s.Pop()
		if !ok {
			t.Fatalf("expected pop to succeed")
		}
		if got != want {
			t.Errorf("expected index %d, got %d", want, got)
		}
	}

	if !s.Empty() {
		t.Errorf("expected stack to be empty after draining")
	}
}

func TestStackPopEmpty(t *testing.T) {
	s := New(0)

	if _, ok := s.Pop(); ok {
		t.Errorf("expected pop on empty stack to return false")
	}

	// Pop past empty must stay safe.
	s.Push(7)
	s.Pop()
	if _, ok := s.Pop(); ok {
		t.Errorf("expected second pop to return false")
	}
}

func TestStackNegativeHint(t *testing.T) {
	s := New(-1)
	s.Push(0)

	got, ok := s.Pop()
	if !ok || got != 0 {
		t.Errorf("expected index 0, got %d (ok=%v)", got, ok)
	}
}
