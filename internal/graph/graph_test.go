package graph

import (
	"testing"

	"github.com/felixgeelhaar/abnffsm/internal/charclass"
)

func TestOutgoingSortedByPriorityThenInsertion(t *testing.T) {
	g := New("test")
	start := g.AddState(StateStart, "start")
	a := g.AddState(StateNormal, "a")
	b := g.AddState(StateNormal, "b")
	c := g.AddState(StateNormal, "c")

	low := g.AddClassTransition(start, a, charclass.Digit(), PriorityLow, "low")
	normal := g.AddClassTransition(start, b, charclass.Digit(), PriorityNormal, "normal")
	high := g.AddClassTransition(start, c, charclass.Digit(), PriorityHigh, "high")

	out := g.Outgoing(start)
	if len(out) != 3 {
		t.Fatalf("expected 3 outgoing transitions, got %d", len(out))
	}
	if out[0].ID != high || out[1].ID != normal || out[2].ID != low {
		t.Fatalf("outgoing not sorted by priority descending: %v", out)
	}
}

func TestOutgoingTieBrokenByInsertionOrder(t *testing.T) {
	g := New("test")
	start := g.AddState(StateStart, "start")
	a := g.AddState(StateNormal, "a")
	b := g.AddState(StateNormal, "b")

	first := g.AddClassTransition(start, a, charclass.Digit(), PriorityNormal, "first")
	second := g.AddClassTransition(start, b, charclass.Digit(), PriorityNormal, "second")

	out := g.Outgoing(start)
	if out[0].ID != first || out[1].ID != second {
		t.Fatalf("tie not broken by insertion order: %v", out)
	}
}

func TestAddTransitionPanicsOnDanglingEndpoint(t *testing.T) {
	g := New("test")
	start := g.AddState(StateStart, "start")
	ghost := StateID{}
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for dangling endpoint")
		}
	}()
	g.AddClassTransition(start, ghost, charclass.Digit(), PriorityNormal, "")
}

func TestStateIDEqualityByIDOnly(t *testing.T) {
	g := New("test")
	id := g.AddState(StateNormal, "alpha")
	renamed := StateID{id: id.id, name: "beta"}
	if !id.Equal(renamed) {
		t.Fatal("StateID equality must ignore name")
	}
}

func TestOutgoingRebuildsAfterMutation(t *testing.T) {
	g := New("test")
	start := g.AddState(StateStart, "start")
	a := g.AddState(StateNormal, "a")
	g.AddClassTransition(start, a, charclass.Digit(), PriorityLow, "")
	if len(g.Outgoing(start)) != 1 {
		t.Fatal("expected one outgoing transition")
	}
	b := g.AddState(StateNormal, "b")
	high := g.AddClassTransition(start, b, charclass.Alpha(), PriorityHigh, "")
	out := g.Outgoing(start)
	if len(out) != 2 || out[0].ID != high {
		t.Fatal("index did not rebuild after mutation")
	}
}
