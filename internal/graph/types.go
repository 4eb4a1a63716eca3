// Package graph implements the immutable state-transition graph (C2): states
// and transitions tagged with identifiers, priority, and edge kind. Execution
// state (current state, captures, trace, metrics) lives in internal/exec,
// which holds a *Graph by reference and never mutates it.
package graph

import "fmt"

// StateKind classifies a State's role in the graph.
type StateKind int

const (
	StateNormal StateKind = iota
	StateStart
	StateAccept
	// StateError is reserved by the data model; the builder never produces it.
	StateError
)

func (k StateKind) String() string {
	switch k {
	case StateStart:
		return "START"
	case StateAccept:
		return "ACCEPT"
	case StateError:
		return "ERROR"
	default:
		return "NORMAL"
	}
}

// TransitionKind classifies how a Transition is evaluated.
type TransitionKind int

const (
	// Class transitions consult a CharClass against the current input byte.
	Class TransitionKind = iota
	// Epsilon transitions never consult input; only the closure driver walks them.
	Epsilon
	// Embedded transitions are a pre-composition intent (C9) and never survive
	// into a running executor — ResolveEmbedded eliminates them before execution.
	Embedded
)

func (k TransitionKind) String() string {
	switch k {
	case Epsilon:
		return "EPSILON"
	case Embedded:
		return "EMBEDDED"
	default:
		return "CLASS"
	}
}

// Priority levels for transition ordering; higher wins in greedy execution
// and is tried first in backtracking.
const (
	PriorityLowest  = 0
	PriorityLow     = 25
	PriorityNormal  = 50
	PriorityHigh    = 75
	PriorityHighest = 100
)

// StateID is a (numeric id, advisory name) pair. Equality is by id only; the
// zero value is the invalid/unset id 0.
type StateID struct {
	id   uint64
	name string
}

// IsValid reports whether the id is anything other than the reserved 0.
func (s StateID) IsValid() bool { return s.id != 0 }

// Name returns the advisory human name, which plays no part in equality.
func (s StateID) Name() string { return s.name }

// RawID returns the bare numeric id, for callers (DOT export) that need a
// syntactically safe node identifier distinct from the human-readable name.
func (s StateID) RawID() uint64 { return s.id }

// Equal compares by numeric id only, per the data model's equality contract.
func (s StateID) Equal(other StateID) bool { return s.id == other.id }

func (s StateID) String() string {
	if s.name != "" {
		return s.name
	}
	return fmt.Sprintf("#%d", s.id)
}

// TransitionID is a monotonically assigned transition identifier.
type TransitionID uint64

func (t TransitionID) String() string { return fmt.Sprintf("t%d", uint64(t)) }

// EntryCallback fires when execution enters a state.
type EntryCallback func(state StateID)

// ExitCallback fires when execution leaves a state.
type ExitCallback func(state StateID)

// TransitionCallback fires when a transition is taken, after exit(from) and
// before entry(to). Callbacks are plain closures that borrow whatever
// execution context the caller built them over; the graph never owns one.
type TransitionCallback func(t TransitionID, from, to StateID)

// State is a node in the graph.
type State struct {
	ID          StateID
	Kind        StateKind
	Description string
	// IsChoicePoint flags this state for the backtracking executor's
	// push heuristic (C5 step 3) even when only one alternative exists.
	IsChoicePoint bool

	OnEntry EntryCallback
	OnExit  ExitCallback
}
