package exec

import (
	"github.com/google/uuid"

	"github.com/felixgeelhaar/abnffsm/internal/graph"
)

// choicePoint is a saved execution snapshot recording untried alternative
// CLASS transitions at a position (§4.5, glossary "choice point").
type choicePoint struct {
	position     int
	state        graph.StateID
	alternatives []*graph.Transition
	captures     captureState
}

// ValidateWithBacktracking runs the backtracking executor (C5): depth-first
// search across alternatives with snapshot/restore of mutable state.
//
// maxBacktrackDepth bounds the live choice stack (0 = unbounded); when a
// push would exceed it, the push is silently skipped and execution proceeds
// greedily, per §4.5 step 3.
//
// This models the source's post-input recursive re-entry (fsm.cpp,
// validateWithBacktracking) as a single iterative loop over one persistent
// choice stack instead of nested recursive calls that mutate start_state_ —
// the Open Question in spec.md §9 resolved as "a shortcut, not intended
// nested semantics" (see DESIGN.md).
func (c *Context) ValidateWithBacktracking(input []byte, maxBacktrackDepth int) (bool, error) {
	c.Reset()
	runID, _ := uuid.NewV7()
	c.RunID = runID.String()

	if !c.g.Start().IsValid() {
		return false, c.fail(NoStartState, 0, 0, "graph has no start state", input)
	}

	c.backtrack.PathsExplored = 1

	for {
		if c.position >= len(input) {
			c.EpsilonClosure()
			if c.g.IsAccept(c.current) {
				c.stream = Complete
				return true, nil
			}
			if c.backtrackRestore(input) {
				continue
			}
			return false, c.fail(NotInAcceptState, c.position, 0, "no accepting path survived backtracking", input)
		}

		b := input[c.position]
		alts := c.validAlternatives(c.current, b)

		if len(alts) == 0 {
			if c.backtrackRestore(input) {
				continue
			}
			return false, c.fail(NoMatchingTransition, c.position, b, "no CLASS transition admits this byte on any live path", input, c.candidateStates()...)
		}

		if len(alts) > 1 || c.isChoicePointState(c.current) {
			c.pushChoicePoint(alts[1:], maxBacktrackDepth)
		}

		c.takeAlternative(alts[0], b)
	}
}

func (c *Context) isChoicePointState(id graph.StateID) bool {
	st, ok := c.g.State(id)
	return ok && st.IsChoicePoint
}

// pushChoicePoint saves the untried alternatives (all but the first) at the
// current position/state. Respects maxDepth; 0 means unbounded. A state
// flagged as a choice point pushes even when remaining is empty; such an
// entry is simply popped by backtrackRestore.
func (c *Context) pushChoicePoint(remaining []*graph.Transition, maxDepth int) {
	if maxDepth > 0 && len(c.choiceStack) >= maxDepth {
		return
	}
	c.choiceStack = append(c.choiceStack, choicePoint{
		position:     c.position,
		state:        c.current,
		alternatives: remaining,
		captures:     c.captures.snapshot(),
	})
	c.backtrack.ChoicePointsCreated++
	if len(c.choiceStack) > c.backtrack.MaxStackDepth {
		c.backtrack.MaxStackDepth = len(c.choiceStack)
	}
}

// backtrackRestore pops choice points until one with a remaining alternative
// is found, restores its snapshot (current state, captures, input position),
// and takes that alternative. Returns false if the stack is exhausted.
func (c *Context) backtrackRestore(input []byte) bool {
	for len(c.choiceStack) > 0 {
		top := len(c.choiceStack) - 1
		cp := &c.choiceStack[top]
		if len(cp.alternatives) == 0 {
			c.choiceStack = c.choiceStack[:top]
			continue
		}

		c.current = cp.state
		c.position = cp.position
		c.captures.restore(cp.captures.snapshot())

		t := cp.alternatives[0]
		cp.alternatives = cp.alternatives[1:]
		if len(cp.alternatives) == 0 {
			c.choiceStack = c.choiceStack[:top]
		}

		c.takeAlternative(t, input[c.position])
		c.backtrack.BacktracksPerformed++
		c.backtrack.PathsExplored++
		return true
	}
	return false
}

func (c *Context) takeAlternative(t *graph.Transition, b byte) {
	c.fireTransition(t, b)
	c.captures.RecordByte(b)
	c.position++
}
