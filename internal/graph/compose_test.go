package graph

import (
	"testing"

	"github.com/felixgeelhaar/abnffsm/internal/charclass"
)

func buildInnerABC() *Graph {
	inner := New("abc")
	start := inner.AddState(StateStart, "start")
	mid := inner.AddState(StateNormal, "mid")
	accept := inner.AddState(StateAccept, "accept")
	inner.AddClassTransition(start, mid, charclass.Byte('a'), PriorityNormal, "'a'")
	inner.AddClassTransition(mid, accept, charclass.Byte('b'), PriorityNormal, "'b'")
	return inner
}

func TestResolveEmbeddedInlinesStates(t *testing.T) {
	outer := New("outer")
	from := outer.AddState(StateStart, "from")
	to := outer.AddState(StateAccept, "to")
	inner := buildInnerABC()

	outer.AddEmbeddedTransition(from, to, inner, PriorityNormal, "embed")
	outer.ResolveEmbedded()

	for _, t2 := range outer.Transitions() {
		if t2.Kind == Embedded {
			t.Fatal("embedded transition survived ResolveEmbedded")
		}
	}

	// inner had 3 states: start (-> from), mid (fresh), accept (-> to).
	if outer.StateCount() != 3 {
		t.Fatalf("expected 3 outer states after merge (from, to, fresh mid), got %d", outer.StateCount())
	}

	if issues := outer.ValidateStructure(); len(issues) != 0 {
		t.Fatalf("expected clean structure after merge, got %v", issues)
	}
}

func TestResolveEmbeddedPreservesTransitionSemantics(t *testing.T) {
	outer := New("outer")
	from := outer.AddState(StateStart, "from")
	to := outer.AddState(StateAccept, "to")
	inner := buildInnerABC()

	outer.AddEmbeddedTransition(from, to, inner, PriorityNormal, "embed")
	outer.ResolveEmbedded()

	out := outer.Outgoing(from)
	if len(out) != 1 || out[0].Kind != Class || !out[0].Class.Contains('a') {
		t.Fatalf("expected single 'a'-matching class transition from start, got %v", out)
	}
	mid := out[0].To
	midOut := outer.Outgoing(mid)
	if len(midOut) != 1 || midOut[0].To.id != to.id || !midOut[0].Class.Contains('b') {
		t.Fatalf("expected 'b'-matching transition from mid to outer accept, got %v", midOut)
	}
}

func TestResolveEmbeddedNoOpWhenNothingPending(t *testing.T) {
	g := New("plain")
	start := g.AddState(StateStart, "start")
	accept := g.AddState(StateAccept, "accept")
	g.AddClassTransition(start, accept, charclass.Digit(), PriorityNormal, "")
	before := g.TransitionCount()
	g.ResolveEmbedded()
	if g.TransitionCount() != before {
		t.Fatal("ResolveEmbedded should be a no-op without pending embeds")
	}
}
