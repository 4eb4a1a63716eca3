package exec

import (
	"fmt"

	"github.com/felixgeelhaar/abnffsm/internal/graph"
)

// ErrorKind enumerates execution-time and structural failure kinds (§4.8).
type ErrorKind int

const (
	NoMatchingTransition ErrorKind = iota
	UnexpectedEndOfInput
	NotInAcceptState
	EmbeddedFSMFailed
	InvalidState
	InvalidTransition
	AmbiguousTransition
	NoStartState
	UnreachableStates
)

func (k ErrorKind) String() string {
	switch k {
	case NoMatchingTransition:
		return "NO_MATCHING_TRANSITION"
	case UnexpectedEndOfInput:
		return "UNEXPECTED_END_OF_INPUT"
	case NotInAcceptState:
		return "NOT_IN_ACCEPT_STATE"
	case EmbeddedFSMFailed:
		return "EMBEDDED_FSM_FAILED"
	case InvalidState:
		return "INVALID_STATE"
	case InvalidTransition:
		return "INVALID_TRANSITION"
	case AmbiguousTransition:
		return "AMBIGUOUS_TRANSITION"
	case NoStartState:
		return "NO_START_STATE"
	case UnreachableStates:
		return "UNREACHABLE_STATES"
	default:
		return "UNKNOWN_ERROR_KIND"
	}
}

// ValidationError is the stable error record of §6: kind, position, the
// offending byte, the current state, a message, any attempted states, and an
// input-context snippet. Only the latest error is retained by a Context.
type ValidationError struct {
	Kind            ErrorKind
	Position        int
	Character       byte
	CurrentState    graph.StateID
	Message         string
	AttemptedStates []graph.StateID
	InputContext    string
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil validation error>"
	}
	return fmt.Sprintf("%s at position %d (byte 0x%02X, state %s): %s", e.Kind, e.Position, e.Character, e.CurrentState, e.Message)
}

// inputContextWindow is the RFC-independent constant supplementing §6's
// input_context field: ±10 bytes around the failure position, grounded on
// the original source's getInputContext (Fsm/src/fsm.cpp).
const inputContextWindow = 10

// inputContext renders a printable snippet of input around position pos,
// escaping bytes outside printable ASCII as \xHH.
func inputContext(input []byte, pos int) string {
	lo := pos - inputContextWindow
	if lo < 0 {
		lo = 0
	}
	hi := pos + inputContextWindow
	if hi > len(input) {
		hi = len(input)
	}
	if lo >= hi {
		return ""
	}
	out := make([]byte, 0, (hi-lo)*2)
	for i := lo; i < hi; i++ {
		b := input[i]
		marker := i == pos
		if marker {
			out = append(out, '[')
		}
		if b >= 0x20 && b <= 0x7E {
			out = append(out, b)
		} else {
			out = append(out, []byte(fmt.Sprintf("\\x%02X", b))...)
		}
		if marker {
			out = append(out, ']')
		}
	}
	return string(out)
}
