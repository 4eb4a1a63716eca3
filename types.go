// Package abnffsm validates byte strings against grammars expressed as
// finite-state machines whose edges are labeled with RFC 2234 character
// classes. It is an in-process library: build a graph with Builder, then
// validate input against it greedily, with backtracking, or incrementally
// through the streaming interface.
package abnffsm

import (
	"github.com/felixgeelhaar/abnffsm/internal/exec"
	"github.com/felixgeelhaar/abnffsm/internal/graph"
)

// StateID identifies a state within an FSM. The zero value is invalid.
type StateID = graph.StateID

// TransitionID identifies a transition within an FSM.
type TransitionID = graph.TransitionID

// StateKind classifies a state's role in the graph.
type StateKind = graph.StateKind

const (
	StateNormal = graph.StateNormal
	StateStart  = graph.StateStart
	StateAccept = graph.StateAccept
)

// Priority levels for transition ordering (§4.1 tie-break, §4.5 alternative
// order).
const (
	PriorityLowest  = graph.PriorityLowest
	PriorityLow     = graph.PriorityLow
	PriorityNormal  = graph.PriorityNormal
	PriorityHigh    = graph.PriorityHigh
	PriorityHighest = graph.PriorityHighest
)

// ErrorKind enumerates execution-time and structural failure kinds.
type ErrorKind = exec.ErrorKind

const (
	NoMatchingTransition = exec.NoMatchingTransition
	UnexpectedEndOfInput = exec.UnexpectedEndOfInput
	NotInAcceptState      = exec.NotInAcceptState
	EmbeddedFSMFailed     = exec.EmbeddedFSMFailed
	InvalidState          = exec.InvalidState
	InvalidTransition     = exec.InvalidTransition
	AmbiguousTransition   = exec.AmbiguousTransition
	NoStartState          = exec.NoStartState
	UnreachableStates     = exec.UnreachableStates
)

// ValidationError is the stable error record of §6.
type ValidationError = exec.ValidationError

// StreamStatus is the streaming interface's state machine (§4.6).
type StreamStatus = exec.StreamStatus

const (
	StreamReady           = exec.Ready
	StreamProcessing      = exec.Processing
	StreamWaitingForInput = exec.WaitingForInput
	StreamComplete        = exec.Complete
	StreamErrorStatus     = exec.StreamError
)

// DebugFlags selects debug options (§4.8); only the two trace bits change
// behaviour, and metrics are collected whatever the flags.
type DebugFlags = exec.DebugFlags

const (
	TraceTransitions  = exec.TraceTransitions
	TraceStateChanges = exec.TraceStateChanges
	VerboseErrors     = exec.VerboseErrors
	CollectMetrics    = exec.CollectMetrics
	ExportDotOnError  = exec.ExportDotOnError
	DebugNone         = exec.None
	DebugBasic        = exec.Basic
	DebugFull         = exec.Full
)

// AutoFlags returns the debug-flag bundle that a release/debug build
// distinction would select; Go has no such distinction so it always
// returns DebugBasic (documented simplification, see DESIGN.md).
func AutoFlags() DebugFlags { return exec.AutoFlags() }

// Metrics accumulates counters for one execution (§4.8).
type Metrics = exec.Metrics

// BacktrackStats accumulates the backtracking executor's own counters (C5).
type BacktrackStats = exec.BacktrackStats

// TraceEntry records one step of execution.
type TraceEntry = exec.TraceEntry

// ClosedCapture is a capture group that has been closed (§3, §4.7).
type ClosedCapture = exec.ClosedCapture

// EntryCallback fires when execution enters a state.
type EntryCallback = graph.EntryCallback

// ExitCallback fires when execution leaves a state.
type ExitCallback = graph.ExitCallback

// TransitionCallback fires when a transition is taken.
type TransitionCallback = graph.TransitionCallback

// Issue is one human-readable structural complaint from ValidateStructure.
type Issue = graph.Issue
