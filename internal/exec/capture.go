package exec

import "fmt"

// ActiveCapture is a capture group that has begun but not yet closed (§3).
type ActiveCapture struct {
	Name          string
	StartPosition int
	buffer        []byte
}

// Buffer returns the bytes accumulated so far.
func (a *ActiveCapture) Buffer() []byte {
	out := make([]byte, len(a.buffer))
	copy(out, a.buffer)
	return out
}

func (a *ActiveCapture) clone() *ActiveCapture {
	c := &ActiveCapture{Name: a.Name, StartPosition: a.StartPosition}
	c.buffer = make([]byte, len(a.buffer))
	copy(c.buffer, a.buffer)
	return c
}

// ClosedCapture is a capture group that has been closed (§3).
type ClosedCapture struct {
	Name          string
	StartPosition int
	EndPosition   int
	Value         []byte
}

// Length returns len(Value), matching the "length" field exercised by S7.
func (c ClosedCapture) Length() int { return len(c.Value) }

// captureState is the portion of a Context devoted to capture groups (C7),
// split out so it can be snapshotted/restored atomically by the backtracking
// executor's choice points.
type captureState struct {
	active []*ActiveCapture
	closed []ClosedCapture
}

// BeginCapture pushes an active capture at the current position. Duplicate
// active name is a construction/execution-time error per §4.7 and §7.
func (c *captureState) BeginCapture(name string, position int) error {
	for _, a := range c.active {
		if a.Name == name {
			return fmt.Errorf("exec: capture %q already active", name)
		}
	}
	c.active = append(c.active, &ActiveCapture{Name: name, StartPosition: position})
	return nil
}

// EndCapture pops the named active capture, closes it at position, appends
// it to the closed list, and returns it. Closing an unknown name is an
// error.
func (c *captureState) EndCapture(name string, position int) (ClosedCapture, error) {
	for i, a := range c.active {
		if a.Name != name {
			continue
		}
		closed := ClosedCapture{
			Name:          a.Name,
			StartPosition: a.StartPosition,
			EndPosition:   position,
			Value:         a.Buffer(),
		}
		c.active = append(c.active[:i], c.active[i+1:]...)
		c.closed = append(c.closed, closed)
		return closed, nil
	}
	return ClosedCapture{}, fmt.Errorf("exec: no active capture named %q", name)
}

// RecordByte appends b to every active capture's buffer (§4.4 step 3,
// §4.7 "Accumulation").
func (c *captureState) RecordByte(b byte) {
	for _, a := range c.active {
		a.buffer = append(a.buffer, b)
	}
}

// HasActive reports whether name is currently an active capture.
func (c *captureState) HasActive(name string) bool {
	for _, a := range c.active {
		if a.Name == name {
			return true
		}
	}
	return false
}

// Capture returns the first closed capture named name (§4.7 "lookup by name").
func (c *captureState) Capture(name string) (ClosedCapture, bool) {
	for _, cl := range c.closed {
		if cl.Name == name {
			return cl, true
		}
	}
	return ClosedCapture{}, false
}

// CaptureAt returns the closed capture at a positional index.
func (c *captureState) CaptureAt(index int) (ClosedCapture, bool) {
	if index < 0 || index >= len(c.closed) {
		return ClosedCapture{}, false
	}
	return c.closed[index], true
}

// Closed returns every closed capture, in closing order.
func (c *captureState) Closed() []ClosedCapture {
	out := make([]ClosedCapture, len(c.closed))
	copy(out, c.closed)
	return out
}

// clear drops all active and closed captures.
func (c *captureState) clear() {
	c.active = nil
	c.closed = nil
}

// snapshot deep-copies the capture state for a choice point (§4.5, §4.7).
func (c *captureState) snapshot() captureState {
	s := captureState{closed: make([]ClosedCapture, len(c.closed))}
	copy(s.closed, c.closed)
	for _, a := range c.active {
		s.active = append(s.active, a.clone())
	}
	return s
}

// restore replaces c's contents with a previously taken snapshot, making
// captures committed along a discarded path invisible (§4.7).
func (c *captureState) restore(s captureState) {
	c.active = s.active
	c.closed = s.closed
}
