package graph

import "fmt"

// ResolveEmbedded inlines every pending EMBEDDED transition into the graph,
// recursing into embedded-within-embedded chains, until none remain. After
// it returns, the graph contains only CLASS and EPSILON transitions (§4.9,
// design note "embedded FSM composition as a runtime transition kind").
func (g *Graph) ResolveEmbedded() {
	for {
		idx := g.firstEmbeddedIndex()
		if idx < 0 {
			return
		}
		t := g.transitions[idx]
		g.mergeEmbedded(t.From, t.To, t.Inner)
		g.transitions = append(g.transitions[:idx], g.transitions[idx+1:]...)
		g.dirty = true
	}
}

func (g *Graph) firstEmbeddedIndex() int {
	for i, t := range g.transitions {
		if t.Kind == Embedded {
			return i
		}
	}
	return -1
}

// mergeEmbedded inlines inner between outer states from and to, per §4.9:
//  1. inner.start maps to from; every inner accept maps to to.
//  2. every other inner state gets a fresh outer state with a derived name.
//  3. every inner transition is copied with translated endpoints; nested
//     EMBEDDED transitions are carried over and resolved by the caller's loop.
//  4. the outer index is marked dirty so it re-sorts by priority on next use.
func (g *Graph) mergeEmbedded(from, to StateID, inner *Graph) {
	mapping := make(map[uint64]StateID, inner.StateCount())
	mapping[inner.startID.id] = from
	for id := range inner.accept {
		mapping[id] = to
	}

	for _, innerID := range inner.stateOrder {
		if _, already := mapping[innerID.id]; already {
			continue
		}
		st := inner.states[innerID.id]
		name := st.Description
		if innerID.name != "" {
			name = innerID.name
		}
		derived := fmt.Sprintf("%s_from_%s", name, inner.Name)
		newID := g.NamedState(StateNormal, derived, st.Description)
		newState := g.states[newID.id]
		newState.IsChoicePoint = st.IsChoicePoint
		newState.OnEntry = st.OnEntry
		newState.OnExit = st.OnExit
		mapping[innerID.id] = newID
	}

	for _, it := range inner.transitions {
		translatedFrom := mapping[it.From.id]
		translatedTo := mapping[it.To.id]
		switch it.Kind {
		case Class:
			g.AddClassTransition(translatedFrom, translatedTo, it.Class, it.Priority, it.Description)
		case Epsilon:
			g.AddEpsilonTransition(translatedFrom, translatedTo, it.Priority, it.Description)
		case Embedded:
			g.AddEmbeddedTransition(translatedFrom, translatedTo, it.Inner, it.Priority, it.Description)
		}
	}
}
