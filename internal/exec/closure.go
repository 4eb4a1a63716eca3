package exec

import "github.com/felixgeelhaar/abnffsm/internal/graph"

// epsilonSentinel is the byte passed to callbacks/trace during closure,
// since no input byte is consumed (§4.3).
const epsilonSentinel byte = 0

// EpsilonClosure follows epsilon edges from the current state until no
// further progress is possible (§4.3). Deterministic for a given graph:
// priority order breaks ties, and the visited set prevents infinite loops on
// epsilon cycles (S8). Never consults input.
func (c *Context) EpsilonClosure() {
	visited := map[graph.StateID]bool{c.current: true}
	for {
		progressed := false
		for _, t := range c.g.Outgoing(c.current) {
			if t.Kind != graph.Epsilon || visited[t.To] {
				continue
			}
			c.fireTransition(t, epsilonSentinel)
			visited[c.current] = true
			progressed = true
			break
		}
		if !progressed {
			return
		}
	}
}
