package exec

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/abnffsm/internal/charclass"
	"github.com/felixgeelhaar/abnffsm/internal/graph"
)

// buildDigitCapture implements S7: a capture named "number" begins on the
// first DIGIT and closes on the epsilon edge into ACCEPT. Callbacks are
// closures over ctx, assigned after the Context exists (transition/state
// callbacks are wired into the graph before the Context that will run them
// is constructed, so the closures close over the pointer variable, not its
// value).
func buildDigitCapture(ctx **Context) *graph.Graph {
	g := graph.New("digit-capture")
	start := g.AddState(graph.StateStart, "start")
	digits := g.AddState(graph.StateNormal, "digits")
	accept := g.AddState(graph.StateAccept, "accept")

	first := g.AddClassTransition(start, digits, charclass.Digit(), graph.PriorityNormal, "DIGIT")
	g.AddClassTransition(digits, digits, charclass.Digit(), graph.PriorityNormal, "DIGIT")
	closeEdge := g.AddEpsilonTransition(digits, accept, graph.PriorityNormal, "")

	if t, ok := g.Transition(first); ok {
		t.OnFire = func(graph.TransitionID, graph.StateID, graph.StateID) {
			if err := (*ctx).BeginCapture("number"); err != nil {
				panic(err)
			}
		}
	}
	if t, ok := g.Transition(closeEdge); ok {
		t.OnFire = func(graph.TransitionID, graph.StateID, graph.StateID) {
			if _, err := (*ctx).EndCapture("number"); err != nil {
				panic(err)
			}
		}
	}
	return g
}

func TestS7CaptureGroupCollectsDigits(t *testing.T) {
	var ctx *Context
	g := buildDigitCapture(&ctx)
	ctx = New(g, Basic)

	ok, err := ctx.Validate([]byte("12345"))
	require.NoError(t, err)
	require.True(t, ok)

	cap, found := ctx.Capture("number")
	require.True(t, found, "expected a closed capture named 'number'")
	require.Equal(t, "12345", string(cap.Value))
	require.Equal(t, 5, cap.Length())
	require.Equal(t, 0, cap.StartPosition, "capture should start at the first DIGIT, position 0")
	require.Equal(t, 5, cap.EndPosition, "capture should close after all 5 digits are consumed")
}

func TestCaptureDuplicateActiveIsError(t *testing.T) {
	var cs captureState
	require.NoError(t, cs.BeginCapture("x", 0))
	require.Error(t, cs.BeginCapture("x", 1), "expected error re-opening an already-active capture")
}

func TestCaptureEndUnknownNameIsError(t *testing.T) {
	var cs captureState
	_, err := cs.EndCapture("ghost", 0)
	require.Error(t, err, "expected error closing an unknown capture")
}

func TestCaptureSnapshotRestoreIsolatesMutation(t *testing.T) {
	var cs captureState
	_ = cs.BeginCapture("x", 0)
	cs.RecordByte('a')
	snap := cs.snapshot()
	cs.RecordByte('b')
	restored := snap.snapshot()
	if len(restored.active[0].buffer) != 1 {
		t.Fatalf("snapshot leaked later mutation: %v", restored.active[0].buffer)
	}
}
