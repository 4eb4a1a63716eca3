package abnffsm

import "fmt"

// Builder is the name-to-identifier convenience layer: it lets callers refer
// to states by string name instead of minting and threading StateID values
// by hand. The core FSM never sees names — Build resolves them to ids and
// hands back a plain *FSM. This layer is deliberately outside the core
// (§1); nothing here is required to use FSM directly.
type Builder struct {
	fsm   *FSM
	names map[string]StateID
}

// NewBuilder starts a fluent construction chain over a new FSM named name.
func NewBuilder(name string) *Builder {
	return &Builder{fsm: New(name), names: make(map[string]StateID)}
}

func (b *Builder) resolve(name string) StateID {
	if id, ok := b.names[name]; ok {
		return id
	}
	id := b.fsm.NamedState(StateNormal, name, "")
	b.names[name] = id
	return id
}

// State begins configuring the named state, creating it on first use.
func (b *Builder) State(name string) *StateBuilder {
	b.resolve(name)
	return &StateBuilder{b: b, name: name}
}

// Build finishes construction and runs structural validation (C10). Embeds
// are resolved first, since an unresolved EMBEDDED transition would
// otherwise always be flagged as a structural issue even in a graph that
// composes correctly. Returns an error naming every issue found instead of
// a partially-usable FSM.
func (b *Builder) Build() (*FSM, error) {
	b.fsm.graph.ResolveEmbedded()
	if issues := b.fsm.ValidateStructure(); len(issues) > 0 {
		return nil, fmt.Errorf("abnffsm: build failed: %s", summarize(issues))
	}
	return b.fsm, nil
}

// BuildUnchecked resolves embeds and returns the underlying FSM without
// running structural validation, for callers that want to inspect
// ValidateStructure's issues themselves (e.g. `abnffsmctl graph validate`)
// rather than have Build reject an invalid graph outright.
func (b *Builder) BuildUnchecked() *FSM {
	b.fsm.graph.ResolveEmbedded()
	return b.fsm
}

func summarize(issues []Issue) string {
	s := ""
	for i, is := range issues {
		if i > 0 {
			s += "; "
		}
		s += is.String()
	}
	return s
}

// TransitionOption configures a transition added by On/Epsilon/Embed.
type TransitionOption func(*transitionOptions)

type transitionOptions struct {
	priority    int
	description string
	onFire      TransitionCallback
}

// WithPriority overrides the default NORMAL priority.
func WithPriority(p int) TransitionOption {
	return func(o *transitionOptions) { o.priority = p }
}

// WithDescription sets the transition's debug description.
func WithDescription(d string) TransitionOption {
	return func(o *transitionOptions) { o.description = d }
}

// FireOn attaches a side-effect callback to the transition.
func FireOn(cb TransitionCallback) TransitionOption {
	return func(o *transitionOptions) { o.onFire = cb }
}

func resolveOptions(defaultDescription string, opts []TransitionOption) transitionOptions {
	o := transitionOptions{priority: PriorityNormal, description: defaultDescription}
	for _, apply := range opts {
		apply(&o)
	}
	return o
}

// StateBuilder configures one named state and its outgoing transitions,
// mirroring the teacher's fluent State/Transition chain shape generalized
// from named events to named character classes.
type StateBuilder struct {
	b    *Builder
	name string
}

func (s *StateBuilder) id() StateID { return s.b.names[s.name] }

// Start marks this state as the FSM's start state.
func (s *StateBuilder) Start() *StateBuilder {
	s.b.fsm.SetStart(s.id())
	return s
}

// Accept adds this state to the accept set.
func (s *StateBuilder) Accept() *StateBuilder {
	s.b.fsm.AddAccept(s.id())
	return s
}

// ChoicePoint flags this state for the backtracking executor's eager-push
// heuristic (§4.5 step 3).
func (s *StateBuilder) ChoicePoint() *StateBuilder {
	s.b.fsm.SetChoicePoint(s.id(), true)
	return s
}

// OnEntry registers a callback fired on entering this state.
func (s *StateBuilder) OnEntry(cb EntryCallback) *StateBuilder {
	s.b.fsm.OnEntry(s.id(), cb)
	return s
}

// OnExit registers a callback fired on leaving this state.
func (s *StateBuilder) OnExit(cb ExitCallback) *StateBuilder {
	s.b.fsm.OnExit(s.id(), cb)
	return s
}

// On adds a CLASS transition from this state to target, admitting bytes
// matched by class.
func (s *StateBuilder) On(class CharClass, target string, opts ...TransitionOption) *StateBuilder {
	o := resolveOptions(class.Description(), opts)
	toID := s.b.resolve(target)
	tid := s.b.fsm.AddClassTransition(s.id(), toID, class, o.priority, o.description)
	if o.onFire != nil {
		s.b.fsm.OnTransitionFired(tid, o.onFire)
	}
	return s
}

// Epsilon adds an EPSILON transition from this state to target.
func (s *StateBuilder) Epsilon(target string, opts ...TransitionOption) *StateBuilder {
	o := resolveOptions("ε", opts)
	toID := s.b.resolve(target)
	tid := s.b.fsm.AddEpsilonTransition(s.id(), toID, o.priority, o.description)
	if o.onFire != nil {
		s.b.fsm.OnTransitionFired(tid, o.onFire)
	}
	return s
}

// Embed inlines inner between this state and target (§4.9).
func (s *StateBuilder) Embed(target string, inner *FSM, opts ...TransitionOption) *StateBuilder {
	o := resolveOptions("FSM:"+inner.graph.Name, opts)
	toID := s.b.resolve(target)
	s.b.fsm.Embed(s.id(), toID, inner, o.priority, o.description)
	return s
}

// Done returns to the parent Builder to configure another state.
func (s *StateBuilder) Done() *Builder { return s.b }
