package graph

import (
	"fmt"
	"sort"

	"github.com/felixgeelhaar/abnffsm/internal/charclass"
)

// Transition is an edge in the graph. For Kind == Class, Class is the
// predicate consulted against the current byte. For Kind == Embedded, Inner
// holds the FSM to be inlined at ResolveEmbedded time and is nil afterward.
type Transition struct {
	ID          TransitionID
	From, To    StateID
	Kind        TransitionKind
	Class       charclass.CharClass
	Inner       *Graph
	Priority    int
	Description string

	OnFire TransitionCallback
}

// Graph is the immutable-after-construction state/transition model (C2).
// Build it with AddState/AddClassTransition/AddEpsilonTransition/
// AddEmbeddedTransition, resolve any embeds with ResolveEmbedded, then treat
// it as read-only input to internal/exec. Not safe for concurrent mutation.
type Graph struct {
	Name string

	states      map[uint64]*State
	stateOrder  []StateID
	transitions []*Transition
	nextState   uint64
	nextTrans   TransitionID

	startID StateID
	accept  map[uint64]bool

	outgoing map[uint64][]TransitionID
	dirty    bool
}

// New creates an empty graph. name is advisory, used in DOT export and
// derived names during composition.
func New(name string) *Graph {
	return &Graph{
		Name:     name,
		states:   make(map[uint64]*State),
		accept:   make(map[uint64]bool),
		outgoing: make(map[uint64][]TransitionID),
	}
}

// AddState allocates a fresh state id and registers a state of the given
// kind. Returns the new id.
func (g *Graph) AddState(kind StateKind, description string) StateID {
	g.nextState++
	id := StateID{id: g.nextState, name: description}
	g.states[id.id] = &State{ID: id, Kind: kind, Description: description}
	g.stateOrder = append(g.stateOrder, id)
	if kind == StateStart {
		g.startID = id
	}
	if kind == StateAccept {
		g.accept[id.id] = true
	}
	g.dirty = true
	return id
}

// NamedState is AddState with an explicit advisory name distinct from the
// description.
func (g *Graph) NamedState(kind StateKind, name, description string) StateID {
	g.nextState++
	id := StateID{id: g.nextState, name: name}
	g.states[id.id] = &State{ID: id, Kind: kind, Description: description}
	g.stateOrder = append(g.stateOrder, id)
	if kind == StateStart {
		g.startID = id
	}
	if kind == StateAccept {
		g.accept[id.id] = true
	}
	g.dirty = true
	return id
}

// State looks up a state by id.
func (g *Graph) State(id StateID) (*State, bool) {
	s, ok := g.states[id.id]
	return s, ok
}

// SetStart marks id as the start state. Fatal (panic) if id is absent,
// matching the construction-time-violation policy of §7.
func (g *Graph) SetStart(id StateID) {
	if _, ok := g.states[id.id]; !ok {
		panic(fmt.Sprintf("graph: SetStart on unknown state %s", id))
	}
	g.startID = id
}

// Start returns the current start state id (zero value if unset).
func (g *Graph) Start() StateID { return g.startID }

// AddAccept marks id as an accept state. Fatal if id is absent.
func (g *Graph) AddAccept(id StateID) {
	if _, ok := g.states[id.id]; !ok {
		panic(fmt.Sprintf("graph: AddAccept on unknown state %s", id))
	}
	g.accept[id.id] = true
}

// IsAccept reports whether id is in the accept set.
func (g *Graph) IsAccept(id StateID) bool { return g.accept[id.id] }

// IsStart reports whether id is the start state.
func (g *Graph) IsStart(id StateID) bool { return g.startID.IsValid() && g.startID.id == id.id }

// AcceptStates returns the accept set in insertion order.
func (g *Graph) AcceptStates() []StateID {
	var out []StateID
	for _, id := range g.stateOrder {
		if g.accept[id.id] {
			out = append(out, id)
		}
	}
	return out
}

func (g *Graph) requireState(id StateID, role string) {
	if _, ok := g.states[id.id]; !ok {
		panic(fmt.Sprintf("graph: %s endpoint %s does not exist", role, id))
	}
}

// AddClassTransition records a CLASS edge. Both endpoints must already
// exist; panics otherwise (construction-time violation, §7).
func (g *Graph) AddClassTransition(from, to StateID, class charclass.CharClass, priority int, description string) TransitionID {
	g.requireState(from, "from")
	g.requireState(to, "to")
	g.nextTrans++
	t := &Transition{
		ID: g.nextTrans, From: from, To: to, Kind: Class,
		Class: class, Priority: priority, Description: description,
	}
	g.transitions = append(g.transitions, t)
	g.dirty = true
	return t.ID
}

// AddEpsilonTransition records an EPSILON edge. Requires only endpoints.
func (g *Graph) AddEpsilonTransition(from, to StateID, priority int, description string) TransitionID {
	g.requireState(from, "from")
	g.requireState(to, "to")
	g.nextTrans++
	t := &Transition{
		ID: g.nextTrans, From: from, To: to, Kind: Epsilon,
		Priority: priority, Description: description,
	}
	g.transitions = append(g.transitions, t)
	g.dirty = true
	return t.ID
}

// AddEmbeddedTransition registers a composition intent: inner will be
// inlined between from and to the next time ResolveEmbedded runs. The
// EMBEDDED kind never survives into a running executor (§4.2, §4.9).
func (g *Graph) AddEmbeddedTransition(from, to StateID, inner *Graph, priority int, description string) TransitionID {
	g.requireState(from, "from")
	g.requireState(to, "to")
	g.nextTrans++
	t := &Transition{
		ID: g.nextTrans, From: from, To: to, Kind: Embedded,
		Inner: inner, Priority: priority, Description: description,
	}
	g.transitions = append(g.transitions, t)
	g.dirty = true
	return t.ID
}

// Transition looks up a transition by id.
func (g *Graph) Transition(id TransitionID) (*Transition, bool) {
	for _, t := range g.transitions {
		if t.ID == id {
			return t, true
		}
	}
	return nil, false
}

// Transitions returns all transitions in insertion order.
func (g *Graph) Transitions() []*Transition {
	out := make([]*Transition, len(g.transitions))
	copy(out, g.transitions)
	return out
}

// States returns all state ids in insertion order.
func (g *Graph) States() []StateID {
	out := make([]StateID, len(g.stateOrder))
	copy(out, g.stateOrder)
	return out
}

// StateCount returns the number of states.
func (g *Graph) StateCount() int { return len(g.states) }

// TransitionCount returns the number of transitions.
func (g *Graph) TransitionCount() int { return len(g.transitions) }

// Outgoing returns the transitions leaving from, sorted by priority
// descending, ties broken by insertion order. The index is rebuilt lazily
// on first access after any mutation (§4.2).
func (g *Graph) Outgoing(from StateID) []*Transition {
	if g.dirty {
		g.rebuildOutgoing()
	}
	ids := g.outgoing[from.id]
	out := make([]*Transition, 0, len(ids))
	for _, id := range ids {
		if t, ok := g.Transition(id); ok {
			out = append(out, t)
		}
	}
	return out
}

func (g *Graph) rebuildOutgoing() {
	g.outgoing = make(map[uint64][]TransitionID, len(g.states))
	for _, t := range g.transitions {
		g.outgoing[t.From.id] = append(g.outgoing[t.From.id], t.ID)
	}
	for from, ids := range g.outgoing {
		sort.SliceStable(ids, func(i, j int) bool {
			ti, _ := g.Transition(ids[i])
			tj, _ := g.Transition(ids[j])
			if ti.Priority != tj.Priority {
				return ti.Priority > tj.Priority
			}
			return ti.ID < tj.ID
		})
		g.outgoing[from] = ids
	}
	g.dirty = false
}
