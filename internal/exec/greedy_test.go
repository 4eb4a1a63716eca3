package exec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/abnffsm/internal/charclass"
	"github.com/felixgeelhaar/abnffsm/internal/graph"
)

// buildDigitRun implements S1/S2: START --DIGIT--> A(accept); A --DIGIT--> A.
func buildDigitRun() *graph.Graph {
	g := graph.New("digit-run")
	start := g.AddState(graph.StateStart, "start")
	a := g.AddState(graph.StateAccept, "a")
	g.AddClassTransition(start, a, charclass.Digit(), graph.PriorityNormal, "DIGIT")
	g.AddClassTransition(a, a, charclass.Digit(), graph.PriorityNormal, "DIGIT")
	return g
}

func TestS1GreedyAcceptsAllDigits(t *testing.T) {
	c := New(buildDigitRun(), Basic)
	ok, err := c.Validate([]byte("123"))
	require.NoError(t, err)
	require.True(t, ok)

	m := c.Metrics()
	assert.EqualValues(t, 3, m.TransitionsTaken)
	assert.EqualValues(t, 3, m.CharactersProcessed)
	assert.Equal(t, 3, c.Position(), "position must advance once per consumed byte")
}

func TestS2GreedyRejectsNonDigit(t *testing.T) {
	c := New(buildDigitRun(), Basic)
	ok, err := c.Validate([]byte("12a"))
	if ok || err == nil {
		t.Fatalf("expected reject, got ok=%v err=%v", ok, err)
	}
	ve := err.(*ValidationError)
	if ve.Kind != NoMatchingTransition || ve.Position != 2 || ve.Character != 'a' {
		t.Fatalf("unexpected error record: %+v", ve)
	}
}

// buildLinearGET implements S3/S4: START-G->S1-E->S2-T->ACCEPT.
func buildLinearGET() *graph.Graph {
	g := graph.New("get")
	start := g.AddState(graph.StateStart, "start")
	s1 := g.AddState(graph.StateNormal, "g")
	s2 := g.AddState(graph.StateNormal, "ge")
	accept := g.AddState(graph.StateAccept, "get")
	g.AddClassTransition(start, s1, charclass.Byte('G'), graph.PriorityNormal, "'G'")
	g.AddClassTransition(s1, s2, charclass.Byte('E'), graph.PriorityNormal, "'E'")
	g.AddClassTransition(s2, accept, charclass.Byte('T'), graph.PriorityNormal, "'T'")
	return g
}

func TestS3GreedyAcceptsGET(t *testing.T) {
	c := New(buildLinearGET(), Basic)
	ok, err := c.Validate([]byte("GET"))
	if !ok || err != nil {
		t.Fatalf("expected accept, got ok=%v err=%v", ok, err)
	}
}

func TestS4GreedyRejectsLowercase(t *testing.T) {
	c := New(buildLinearGET(), Basic)
	ok, err := c.Validate([]byte("get"))
	if ok || err == nil {
		t.Fatal("expected reject")
	}
	ve := err.(*ValidationError)
	if ve.Position != 0 {
		t.Fatalf("expected rejection at position 0, got %d", ve.Position)
	}
}

func TestInvariant6ResetIsIdempotent(t *testing.T) {
	g := buildDigitRun()
	c := New(g, Basic)
	ok1, _ := c.Validate([]byte("123"))
	trace1 := c.Trace()
	metrics1 := c.Metrics()

	ok2, _ := c.Validate([]byte("123"))
	trace2 := c.Trace()
	metrics2 := c.Metrics()

	if ok1 != ok2 || len(trace1) != len(trace2) || metrics1 != metrics2 {
		t.Fatal("re-running after reset (implicit in Validate) must be identical")
	}
}
