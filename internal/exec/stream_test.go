package exec

import "testing"

func TestInvariant4StreamingMatchesOneShot(t *testing.T) {
	g := buildDigitRun()
	input := []byte("123")

	one := New(g, Basic)
	wantAccept, wantErr := one.Validate(input)

	streamed := New(g, Basic)
	for _, b := range input {
		streamed.Feed(b)
	}
	gotAccept, gotErr := streamed.EndOfStream()

	if wantAccept != gotAccept {
		t.Fatalf("accept mismatch: one-shot=%v streamed=%v", wantAccept, gotAccept)
	}
	if (wantErr == nil) != (gotErr == nil) {
		t.Fatalf("error-presence mismatch: one-shot=%v streamed=%v", wantErr, gotErr)
	}
	if len(one.Captures()) != len(streamed.Captures()) {
		t.Fatal("closed capture count mismatch between one-shot and streaming")
	}
}

func TestStreamingRejectsBadByteImmediately(t *testing.T) {
	g := buildLinearGET()
	c := New(g, Basic)
	if status := c.Feed('G'); status != WaitingForInput {
		t.Fatalf("expected WAITING_FOR_INPUT, got %v", status)
	}
	if status := c.Feed('x'); status != StreamError {
		t.Fatalf("expected ERROR, got %v", status)
	}
	if status := c.Feed('E'); status != StreamError {
		t.Fatal("Feed after ERROR must be a no-op")
	}
}

func TestEndOfStreamBeforeAnyFeedIsUnexpectedEndOfInput(t *testing.T) {
	g := buildDigitRun()
	c := New(g, Basic)
	_, err := c.EndOfStream()
	if err == nil {
		t.Fatal("expected an error")
	}
	if err.(*ValidationError).Kind != UnexpectedEndOfInput {
		t.Fatalf("expected UNEXPECTED_END_OF_INPUT, got %v", err)
	}
}

func TestResetStreamKeepsCurrentState(t *testing.T) {
	g := buildDigitRun()
	c := New(g, Basic)
	c.Feed('1')
	before := c.Current()
	c.ResetStream()
	if c.Stream() != Ready {
		t.Fatal("ResetStream should return status to READY")
	}
	if !c.Current().Equal(before) {
		t.Fatal("ResetStream must not discard current state")
	}
}
