package exec

import (
	"github.com/google/uuid"

	"github.com/felixgeelhaar/abnffsm/internal/graph"
)

// Validate runs the greedy executor (C4): single-path left-to-right
// consumption taking, at each step, the first CLASS transition (in
// priority-descending order) whose predicate admits the current byte.
// EPSILON edges are not considered here; they are only traversed by
// EpsilonClosure.
func (c *Context) Validate(input []byte) (bool, error) {
	c.Reset()
	runID, _ := uuid.NewV7()
	c.RunID = runID.String()

	if !c.g.Start().IsValid() {
		return false, c.fail(NoStartState, 0, 0, "graph has no start state", input)
	}

	for i, b := range input {
		t := c.firstMatchingClass(c.current, b)
		if t == nil {
			return false, c.fail(NoMatchingTransition, i, b, "no outgoing CLASS transition admits this byte", input, c.candidateStates()...)
		}
		c.fireTransition(t, b)
		c.captures.RecordByte(b)
		c.position++
	}

	c.EpsilonClosure()

	if !c.g.IsAccept(c.current) {
		return false, c.fail(NotInAcceptState, len(input), 0, "execution ended outside the accept set", input)
	}
	c.stream = Complete
	return true, nil
}

// firstMatchingClass returns the highest-priority CLASS transition from
// state whose predicate admits b, or nil.
func (c *Context) firstMatchingClass(state graph.StateID, b byte) *graph.Transition {
	for _, t := range c.g.Outgoing(state) {
		if t.Kind == graph.Class && t.Class.Contains(b) {
			return t
		}
	}
	return nil
}

// validAlternatives returns every CLASS transition from state whose
// predicate admits b, in priority order (used by the backtracking executor).
func (c *Context) validAlternatives(state graph.StateID, b byte) []*graph.Transition {
	var out []*graph.Transition
	for _, t := range c.g.Outgoing(state) {
		if t.Kind == graph.Class && t.Class.Contains(b) {
			out = append(out, t)
		}
	}
	return out
}
