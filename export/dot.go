// Package export converts a built FSM graph to Graphviz DOT text, per the
// format contract in spec.md §6. It performs no I/O; writing the result to
// a file is the CLI's job (SPEC_FULL §12/§13).
package export

import (
	"fmt"
	"strings"

	"github.com/felixgeelhaar/abnffsm"
	"github.com/felixgeelhaar/abnffsm/internal/graph"
)

// DOT renders fsm's graph as Graphviz DOT text: states as circle (normal) or
// doublecircle (start or accept), filled lightblue (start) or lightgreen
// (accept), labeled with the state's name and description; transitions
// labeled with the predicate description, "ε" for epsilon, or "FSM:<name>"
// for a not-yet-resolved embed, with a "[pri:<n>]" suffix when priority
// differs from NORMAL.
func DOT(fsm *abnffsm.FSM) string {
	g := fsm.Graph()

	var b strings.Builder
	fmt.Fprintf(&b, "digraph FSM_%s {\n", g.Name)
	b.WriteString("    rankdir=LR;\n")
	b.WriteString("    node [shape=circle];\n\n")

	for _, id := range g.States() {
		st, ok := g.State(id)
		if !ok {
			continue
		}
		b.WriteString("    ")
		b.WriteString(nodeID(id))
		b.WriteString(" [")

		isStart := g.IsStart(id)
		isAccept := g.IsAccept(id)
		if isStart || isAccept {
			b.WriteString("shape=doublecircle, ")
		}
		if isStart {
			b.WriteString("style=filled, fillcolor=lightblue, ")
		} else if isAccept {
			b.WriteString("style=filled, fillcolor=lightgreen, ")
		}

		b.WriteString("label=\"")
		b.WriteString(id.Name())
		if st.Description != "" {
			b.WriteString("\\n")
			b.WriteString(st.Description)
		}
		b.WriteString("\"];\n")
	}

	b.WriteString("\n")

	for _, t := range g.Transitions() {
		fmt.Fprintf(&b, "    %s -> %s [label=\"", nodeID(t.From), nodeID(t.To))
		b.WriteString(transitionLabel(t))
		if t.Priority != graph.PriorityNormal {
			fmt.Fprintf(&b, "\\n[pri:%d]", t.Priority)
		}
		b.WriteString("\"];\n")
	}

	b.WriteString("}\n")
	return b.String()
}

func nodeID(id graph.StateID) string {
	return fmt.Sprintf("%d", id.RawID())
}

func transitionLabel(t *graph.Transition) string {
	switch t.Kind {
	case graph.Epsilon:
		return "ε"
	case graph.Embedded:
		if t.Inner != nil {
			return "FSM:" + t.Inner.Name
		}
		return "FSM:?"
	default:
		return t.Description
	}
}
