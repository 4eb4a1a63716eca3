package exec

import "github.com/felixgeelhaar/abnffsm/internal/graph"

// DebugFlags is a bitset of debug options (§4.8). Only TraceTransitions and
// TraceStateChanges change behaviour (either one turns on trace recording);
// Metrics counters are collected whatever the flags.
type DebugFlags uint8

const (
	TraceTransitions DebugFlags = 1 << iota
	TraceStateChanges
	VerboseErrors
	CollectMetrics
	ExportDotOnError
)

// Composite bundles, mirroring the source's BASIC/FULL/AUTO.
const (
	Basic DebugFlags = TraceTransitions | VerboseErrors
	Full  DebugFlags = TraceTransitions | TraceStateChanges | VerboseErrors | CollectMetrics
	None  DebugFlags = 0
)

// Has reports whether all bits of want are set.
func (f DebugFlags) Has(want DebugFlags) bool { return f&want == want }

// AutoFlags returns the bundle the source picks based on a release/debug
// build distinction (NDEBUG). Go has no equivalent compile-time switch, so
// this is a documented simplification (DESIGN.md): always Basic. Callers
// that want Full in development pass it explicitly.
func AutoFlags() DebugFlags { return Basic }

// TraceEntry records one step of execution: a transition taken (including
// epsilon, with input byte \0) or an epsilon-closure step.
type TraceEntry struct {
	Step        int
	From        graph.StateID
	To          graph.StateID
	Input       byte
	Transition  graph.TransitionID
	Description string
}

// Metrics accumulates counters for one execution (§4.8).
type Metrics struct {
	TransitionsTaken     int64
	StatesVisited        int64
	CharactersProcessed  int64
	EpsilonTransitions   int64
	ValidationTimeNanos  int64
	ProcessingTimeMicros int64
}

// BacktrackStats accumulates the backtracking executor's own counters (C5),
// kept separate from Metrics since they are meaningless for greedy/streaming
// runs.
type BacktrackStats struct {
	ChoicePointsCreated int64
	BacktracksPerformed int64
	PathsExplored       int64
	MaxStackDepth       int
}
