package abnffsm

import "testing"

func buildDigitFSM(t *testing.T) *FSM {
	fsm, err := NewBuilder("digits").
		State("start").Start().On(Digit(), "accept").Done().
		State("accept").Accept().On(Digit(), "accept").Done().
		Build()
	if err != nil {
		t.Fatalf("unexpected build error: %v", err)
	}
	return fsm
}

func TestFSMMintsRunIDPerTopLevelCall(t *testing.T) {
	fsm := buildDigitFSM(t)
	if fsm.RunID() != "" {
		t.Fatal("RunID should be empty before any call")
	}
	fsm.Validate([]byte("1"))
	first := fsm.RunID()
	if first == "" {
		t.Fatal("expected a RunID after Validate")
	}
	fsm.Validate([]byte("2"))
	if fsm.RunID() == first {
		t.Fatal("expected a fresh RunID per top-level call")
	}
}

func TestFSMSIMDCapabilitiesIsStub(t *testing.T) {
	fsm := buildDigitFSM(t)
	if got := fsm.SIMDCapabilities(); got != "none (stub)" {
		t.Fatalf("expected stub value, got %q", got)
	}
}

func TestFSMValidateStructureSurfacesThroughFacade(t *testing.T) {
	fsm := New("empty")
	if fsm.IsValid() {
		t.Fatal("an empty FSM must not be valid")
	}
	issues := fsm.ValidateStructure()
	if len(issues) == 0 {
		t.Fatal("expected structural issues for an empty FSM")
	}
}

func TestErrorHelpers(t *testing.T) {
	fsm := buildDigitFSM(t)
	_, err := fsm.Validate([]byte("1a"))
	if !IsKind(err, NoMatchingTransition) {
		t.Fatalf("expected NoMatchingTransition, got %v", err)
	}
	ve, ok := AsValidationError(err)
	if !ok || ve.Position != 1 {
		t.Fatalf("unexpected validation error: %+v ok=%v", ve, ok)
	}
	if IsKind(nil, NoMatchingTransition) {
		t.Fatal("IsKind(nil, ...) must be false")
	}
}

func TestFSMDebugFlagsPassThrough(t *testing.T) {
	fsm := buildDigitFSM(t)
	fsm.SetFlags(DebugFull)
	if fsm.Flags() != DebugFull {
		t.Fatal("expected DebugFull to round-trip")
	}
	fsm.Validate([]byte("123"))
	if len(fsm.Trace()) == 0 {
		t.Fatal("expected trace entries with DebugFull")
	}
}
