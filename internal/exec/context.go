// Package exec implements the mutable, single-threaded execution context
// (current state, captures, trace, metrics, choice stack) that walks an
// immutable *graph.Graph. Splitting the two, per spec.md's design notes,
// keeps all per-run state out of the Graph. The Graph still rebuilds its
// outgoing-transition index lazily on the first Outgoing call after a
// mutation, so Contexts can walk one Graph at once only after that index
// has been built.
package exec

import (
	"github.com/felixgeelhaar/abnffsm/internal/graph"
)

// StreamStatus is the streaming interface's state machine (§4.6).
type StreamStatus int

const (
	Ready StreamStatus = iota
	Processing
	WaitingForInput
	Complete
	StreamError
)

func (s StreamStatus) String() string {
	switch s {
	case Processing:
		return "PROCESSING"
	case WaitingForInput:
		return "WAITING_FOR_INPUT"
	case Complete:
		return "COMPLETE"
	case StreamError:
		return "ERROR"
	default:
		return "READY"
	}
}

// Context is the mutable execution state for one run against a *graph.Graph.
// Not safe for concurrent use; distinct Contexts over the same Graph are
// independent (§5).
type Context struct {
	g *graph.Graph

	current  graph.StateID
	position int
	consumed []byte

	captures captureState

	stream StreamStatus

	choiceStack []choicePoint
	backtrack   BacktrackStats

	lastError *ValidationError

	flags   DebugFlags
	trace   []TraceEntry
	metrics Metrics

	// RunID is an additive correlation token (SPEC_FULL §14), minted once
	// per top-level call and printed by the CLI's validate command; trace
	// entries do not carry it. It plays no
	// part in any §6 stable field or §8 testable property.
	RunID string
}

// New creates a Context over g, reset to a runnable initial state.
func New(g *graph.Graph, flags DebugFlags) *Context {
	c := &Context{g: g, flags: flags}
	c.Reset()
	return c
}

// Graph returns the underlying graph.
func (c *Context) Graph() *graph.Graph { return c.g }

// Current returns the current state id.
func (c *Context) Current() graph.StateID { return c.current }

// Position returns the current input offset.
func (c *Context) Position() int { return c.position }

// Stream returns the streaming status.
func (c *Context) Stream() StreamStatus { return c.stream }

// LastError returns the last recorded error, or nil.
func (c *Context) LastError() *ValidationError { return c.lastError }

// Metrics returns a copy of the accumulated metrics.
func (c *Context) Metrics() Metrics { return c.metrics }

// BacktrackStats returns a copy of the backtracking executor's counters.
func (c *Context) BacktrackStats() BacktrackStats { return c.backtrack }

// Trace returns the recorded trace entries.
func (c *Context) Trace() []TraceEntry {
	out := make([]TraceEntry, len(c.trace))
	copy(out, c.trace)
	return out
}

// Captures returns every closed capture.
func (c *Context) Captures() []ClosedCapture { return c.captures.Closed() }

// Capture looks up a closed capture by name (first match).
func (c *Context) Capture(name string) (ClosedCapture, bool) { return c.captures.Capture(name) }

// CaptureAt looks up a closed capture by position.
func (c *Context) CaptureAt(index int) (ClosedCapture, bool) { return c.captures.CaptureAt(index) }

// BeginCapture opens a capture group at the current position.
func (c *Context) BeginCapture(name string) error {
	return c.captures.BeginCapture(name, c.position)
}

// EndCapture closes a capture group at the current position.
func (c *Context) EndCapture(name string) (ClosedCapture, error) {
	return c.captures.EndCapture(name, c.position)
}

// Flags returns the active debug-flag bundle.
func (c *Context) Flags() DebugFlags { return c.flags }

// SetFlags replaces the active debug-flag bundle.
func (c *Context) SetFlags(f DebugFlags) { c.flags = f }

// Reset returns the context to a runnable initial state: current state back
// to START, last error/captures/stream status/choice stack cleared (§4.4
// step 1, §4.6 reset()).
func (c *Context) Reset() {
	c.current = c.g.Start()
	c.position = 0
	c.consumed = nil
	c.captures.clear()
	c.stream = Ready
	c.choiceStack = nil
	c.backtrack = BacktrackStats{}
	c.lastError = nil
	c.trace = nil
	c.metrics = Metrics{}
}

// ResetStream clears the stream status to READY without discarding the
// graph or the current state (§4.6 reset_stream()).
func (c *Context) ResetStream() {
	c.stream = Ready
}

func (c *Context) recordTrace(from, to graph.StateID, input byte, tid graph.TransitionID, description string) {
	if !c.flags.Has(TraceStateChanges) && !c.flags.Has(TraceTransitions) {
		return
	}
	c.trace = append(c.trace, TraceEntry{
		Step: len(c.trace), From: from, To: to, Input: input, Transition: tid, Description: description,
	})
}

func (c *Context) fail(kind ErrorKind, position int, character byte, message string, input []byte, attempted ...graph.StateID) *ValidationError {
	err := &ValidationError{
		Kind:            kind,
		Position:        position,
		Character:       character,
		CurrentState:    c.current,
		Message:         message,
		AttemptedStates: attempted,
	}
	if input != nil {
		err.InputContext = inputContext(input, position)
	}
	c.lastError = err
	c.stream = StreamError
	return err
}

// candidateStates lists the states a CLASS transition from the current
// state could have led to, used to populate a NO_MATCHING_TRANSITION
// error's attempted_states field.
func (c *Context) candidateStates() []graph.StateID {
	var out []graph.StateID
	for _, t := range c.g.Outgoing(c.current) {
		if t.Kind == graph.Class {
			out = append(out, t.To)
		}
	}
	return out
}

// fireTransition fires exit(from) -> transition -> entry(to) and updates
// metrics/trace, advancing current to t.To (§5 ordering guarantee). exit and
// entry fire only when t.To differs from the current state; the transition
// callback always fires.
func (c *Context) fireTransition(t *graph.Transition, input byte) {
	from := c.current
	changedState := !from.Equal(t.To)

	if changedState {
		if fromState, ok := c.g.State(from); ok && fromState.OnExit != nil {
			fromState.OnExit(from)
		}
	}
	if t.OnFire != nil {
		t.OnFire(t.ID, t.From, t.To)
	}
	if changedState {
		if toState, ok := c.g.State(t.To); ok && toState.OnEntry != nil {
			toState.OnEntry(t.To)
		}
	}

	c.recordTrace(from, t.To, input, t.ID, t.Description)

	c.current = t.To
	c.metrics.TransitionsTaken++
	if t.Kind == graph.Epsilon {
		c.metrics.EpsilonTransitions++
	} else {
		c.metrics.CharactersProcessed++
	}
	if changedState {
		c.metrics.StatesVisited++
	}
}
