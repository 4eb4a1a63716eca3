package abnffsm

import (
	"github.com/felixgeelhaar/abnffsm/internal/exec"
	"github.com/felixgeelhaar/abnffsm/internal/graph"
)

// FSM owns a state/transition graph and one execution context over it. It is
// built empty, grown with AddState/AddClassTransition/etc., and then
// validated against input. Reset returns it to a runnable initial state. An
// FSM is not safe for concurrent mutation or concurrent validation on a
// shared instance (§3, §5).
type FSM struct {
	graph *graph.Graph
	ctx   *exec.Context
}

// New creates an empty FSM. name is advisory: used in DOT export and as the
// suffix for derived state names during composition.
func New(name string) *FSM {
	g := graph.New(name)
	return &FSM{graph: g, ctx: exec.New(g, AutoFlags())}
}

// AddState allocates a fresh state id.
func (f *FSM) AddState(kind StateKind, description string) StateID {
	return f.graph.AddState(kind, description)
}

// NamedState allocates a fresh state id with an advisory name distinct from
// its description.
func (f *FSM) NamedState(kind StateKind, name, description string) StateID {
	return f.graph.NamedState(kind, name, description)
}

// SetStart marks id as the start state.
func (f *FSM) SetStart(id StateID) { f.graph.SetStart(id) }

// Start returns the current start state id.
func (f *FSM) Start() StateID { return f.graph.Start() }

// AddAccept marks id as an accept state.
func (f *FSM) AddAccept(id StateID) { f.graph.AddAccept(id) }

// IsAccept reports whether id is in the accept set.
func (f *FSM) IsAccept(id StateID) bool { return f.graph.IsAccept(id) }

// SetChoicePoint flags id for the backtracking executor's eager-push
// heuristic (§4.5 step 3) even when only one alternative exists.
func (f *FSM) SetChoicePoint(id StateID, flag bool) {
	if st, ok := f.graph.State(id); ok {
		st.IsChoicePoint = flag
	}
}

// OnEntry registers a callback fired when execution enters state.
func (f *FSM) OnEntry(state StateID, cb EntryCallback) {
	if st, ok := f.graph.State(state); ok {
		st.OnEntry = cb
	}
}

// OnExit registers a callback fired when execution leaves state.
func (f *FSM) OnExit(state StateID, cb ExitCallback) {
	if st, ok := f.graph.State(state); ok {
		st.OnExit = cb
	}
}

// AddClassTransition records a CLASS edge. Both endpoints must already
// exist.
func (f *FSM) AddClassTransition(from, to StateID, class CharClass, priority int, description string) TransitionID {
	return f.graph.AddClassTransition(from, to, class, priority, description)
}

// AddEpsilonTransition records an EPSILON edge.
func (f *FSM) AddEpsilonTransition(from, to StateID, priority int, description string) TransitionID {
	return f.graph.AddEpsilonTransition(from, to, priority, description)
}

// OnTransitionFired registers a callback fired when transition id is taken.
func (f *FSM) OnTransitionFired(id TransitionID, cb TransitionCallback) {
	if t, ok := f.graph.Transition(id); ok {
		t.OnFire = cb
	}
}

// Embed inlines inner between from and to, per §4.9. inner may be dropped
// after this call returns; embedding takes only what it needs from its
// graph before Validate/Feed next runs.
func (f *FSM) Embed(from, to StateID, inner *FSM, priority int, description string) TransitionID {
	return f.graph.AddEmbeddedTransition(from, to, inner.graph, priority, description)
}

// ValidateStructure reports start/accept/endpoint problems (C10).
func (f *FSM) ValidateStructure() []Issue { return f.graph.ValidateStructure() }

// IsValid is shorthand for "no structural issues".
func (f *FSM) IsValid() bool { return f.graph.IsValid() }

// StateCount returns the number of states.
func (f *FSM) StateCount() int { return f.graph.StateCount() }

// TransitionCount returns the number of transitions.
func (f *FSM) TransitionCount() int { return f.graph.TransitionCount() }

// States returns every state id, in insertion order.
func (f *FSM) States() []StateID { return f.graph.States() }

// Outgoing returns the transitions leaving from, priority-sorted.
func (f *FSM) Outgoing(from StateID) []*graph.Transition { return f.graph.Outgoing(from) }

// Graph exposes the underlying graph for the export package. Not part of
// the core validation surface.
func (f *FSM) Graph() *graph.Graph { return f.graph }

// SIMDCapabilities always reports the stub value: SIMD-accelerated
// character-range scanning is deliberately out of scope (§1) and gated
// behind a flag in the original source that this port never turns on.
func (f *FSM) SIMDCapabilities() string { return "none (stub)" }

// Validate runs the greedy executor (C4). Pending embedded transitions are
// resolved first, since the EMBEDDED kind never survives into a running
// executor (§4.2).
func (f *FSM) Validate(input []byte) (bool, error) {
	f.graph.ResolveEmbedded()
	return f.ctx.Validate(input)
}

// ValidateWithBacktracking runs the backtracking executor (C5).
// maxBacktrackDepth bounds the choice stack; 0 means unbounded.
func (f *FSM) ValidateWithBacktracking(input []byte, maxBacktrackDepth int) (bool, error) {
	f.graph.ResolveEmbedded()
	return f.ctx.ValidateWithBacktracking(input, maxBacktrackDepth)
}

// Feed consumes one byte through the streaming interface (C6).
func (f *FSM) Feed(b byte) StreamStatus {
	f.graph.ResolveEmbedded()
	return f.ctx.Feed(b)
}

// FeedChunk feeds each byte of chunk in turn, stopping early on ERROR.
func (f *FSM) FeedChunk(chunk []byte) StreamStatus {
	f.graph.ResolveEmbedded()
	return f.ctx.FeedChunk(chunk)
}

// EndOfStream settles the stream's final status.
func (f *FSM) EndOfStream() (bool, error) { return f.ctx.EndOfStream() }

// ResetStream clears the stream status to READY without discarding the
// graph or the current state.
func (f *FSM) ResetStream() { f.ctx.ResetStream() }

// Reset returns the FSM to a runnable initial state.
func (f *FSM) Reset() { f.ctx.Reset() }

// Current returns the current state id.
func (f *FSM) Current() StateID { return f.ctx.Current() }

// Position returns the current input offset.
func (f *FSM) Position() int { return f.ctx.Position() }

// Stream returns the streaming status.
func (f *FSM) Stream() StreamStatus { return f.ctx.Stream() }

// LastError returns the last recorded error, or nil.
func (f *FSM) LastError() *ValidationError { return f.ctx.LastError() }

// Metrics returns a copy of the accumulated metrics.
func (f *FSM) Metrics() Metrics { return f.ctx.Metrics() }

// BacktrackStats returns a copy of the backtracking executor's counters.
func (f *FSM) BacktrackStats() BacktrackStats { return f.ctx.BacktrackStats() }

// Trace returns the recorded trace entries.
func (f *FSM) Trace() []TraceEntry { return f.ctx.Trace() }

// Captures returns every closed capture.
func (f *FSM) Captures() []ClosedCapture { return f.ctx.Captures() }

// Capture looks up a closed capture by name (first match).
func (f *FSM) Capture(name string) (ClosedCapture, bool) { return f.ctx.Capture(name) }

// CaptureAt looks up a closed capture by position.
func (f *FSM) CaptureAt(index int) (ClosedCapture, bool) { return f.ctx.CaptureAt(index) }

// BeginCapture opens a capture group at the current position.
func (f *FSM) BeginCapture(name string) error { return f.ctx.BeginCapture(name) }

// EndCapture closes a capture group at the current position.
func (f *FSM) EndCapture(name string) (ClosedCapture, error) { return f.ctx.EndCapture(name) }

// Flags returns the active debug-flag bundle.
func (f *FSM) Flags() DebugFlags { return f.ctx.Flags() }

// SetFlags replaces the active debug-flag bundle.
func (f *FSM) SetFlags(flags DebugFlags) { f.ctx.SetFlags(flags) }

// RunID returns the correlation token minted for the most recent top-level
// call (SPEC_FULL §14). Empty until the first Validate/ValidateWithBacktracking/
// Feed call.
func (f *FSM) RunID() string { return f.ctx.RunID }
