package exec

import "github.com/google/uuid"

// Feed consumes one byte through the streaming interface (C6). The first
// call transitions READY -> PROCESSING. It performs exactly the work of one
// iteration of the greedy executor (§4.4 step 3) with no closure — closure
// only runs at EndOfStream, same as the greedy executor only running it
// after the last byte. Returns the resulting stream status. Once in ERROR,
// Feed is a no-op until Reset/ResetStream.
func (c *Context) Feed(b byte) StreamStatus {
	if c.stream == StreamError {
		return c.stream
	}
	if c.stream == Ready {
		runID, _ := uuid.NewV7()
		c.RunID = runID.String()
		c.stream = Processing
	}

	c.consumed = append(c.consumed, b)

	t := c.firstMatchingClass(c.current, b)
	if t == nil {
		c.fail(NoMatchingTransition, c.position, b, "no outgoing CLASS transition admits this byte", c.consumed, c.candidateStates()...)
		return c.stream
	}

	c.fireTransition(t, b)
	c.captures.RecordByte(b)
	c.position++

	if c.g.IsAccept(c.current) {
		c.stream = Complete
	} else {
		c.stream = WaitingForInput
	}
	return c.stream
}

// FeedChunk feeds each byte of chunk in turn, stopping early on ERROR.
func (c *Context) FeedChunk(chunk []byte) StreamStatus {
	for _, b := range chunk {
		if c.Feed(b) == StreamError {
			return c.stream
		}
	}
	return c.stream
}

// EndOfStream runs epsilon closure once and settles the final stream
// status. Calling it before any byte has been fed is
// UNEXPECTED_END_OF_INPUT (§4.6).
func (c *Context) EndOfStream() (bool, error) {
	if c.stream == Ready {
		return false, c.fail(UnexpectedEndOfInput, c.position, 0, "end_of_stream called before any byte was fed", c.consumed)
	}
	if c.stream == StreamError {
		return false, c.lastError
	}

	c.EpsilonClosure()

	if c.g.IsAccept(c.current) {
		c.stream = Complete
		return true, nil
	}
	return false, c.fail(NotInAcceptState, c.position, 0, "stream ended outside the accept set", c.consumed)
}
