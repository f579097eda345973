package fsmhook

// TransitionTable is the complete declaration of a machine's states and the
// transitions each state permits. It preserves declaration order of states
// and of transitions within a state, which makes diagram output
// deterministic. A table is immutable once built and may be shared by any
// number of machines.
type TransitionTable struct {
	order  []string
	states map[string]*stateEntry
}

type stateEntry struct {
	order []string
	dests map[string]string
}

// States returns the declared states in declaration order
func (t *TransitionTable) States() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// HasState reports whether the state was declared in the table
func (t *TransitionTable) HasState(state string) bool {
	_, ok := t.states[state]
	return ok
}

// TransitionsFrom returns the transition names permitted from the given
// state, in declaration order. An undeclared state yields nil.
func (t *TransitionTable) TransitionsFrom(state string) []string {
	entry, ok := t.states[state]
	if !ok || len(entry.order) == 0 {
		return nil
	}
	out := make([]string, len(entry.order))
	copy(out, entry.order)
	return out
}

// Destination returns the state the named transition leads to from the
// given source state, and whether such a transition is permitted
func (t *TransitionTable) Destination(state, transition string) (string, bool) {
	entry, ok := t.states[state]
	if !ok {
		return "", false
	}
	dest, ok := entry.dests[transition]
	return dest, ok
}

// Len returns the number of declared states
func (t *TransitionTable) Len() int {
	return len(t.order)
}

// EdgeCount returns the total number of declared transitions
func (t *TransitionTable) EdgeCount() int {
	n := 0
	for _, entry := range t.states {
		n += len(entry.order)
	}
	return n
}

// TableBuilder assembles a TransitionTable through a fluent interface
type TableBuilder struct {
	order  []string
	states map[string]*stateEntry
	errs   []error
}

// NewTable creates a new empty TableBuilder
func NewTable() *TableBuilder {
	return &TableBuilder{
		states: make(map[string]*stateEntry),
	}
}

// State declares a state and returns a builder scoped to it. Declaring the
// same state twice continues the existing declaration.
func (b *TableBuilder) State(id string) *StateBuilder {
	if id == "" {
		b.errs = append(b.errs, NewEmptyStateIDError())
		return &StateBuilder{b: b, entry: &stateEntry{dests: make(map[string]string)}}
	}
	entry, ok := b.states[id]
	if !ok {
		entry = &stateEntry{dests: make(map[string]string)}
		b.states[id] = entry
		b.order = append(b.order, id)
	}
	return &StateBuilder{b: b, id: id, entry: entry}
}

// Build validates the declarations and returns the immutable table.
// Validation rejects empty identifiers and transitions whose destination
// state was never declared. Reachability of declared states is not checked;
// an unreachable state is a design-time concern of the caller.
func (b *TableBuilder) Build() (*TransitionTable, error) {
	if len(b.errs) > 0 {
		return nil, b.errs[0]
	}
	for _, id := range b.order {
		entry := b.states[id]
		for _, name := range entry.order {
			dest := entry.dests[name]
			if _, ok := b.states[dest]; !ok {
				return nil, NewDanglingDestinationError(id, name, dest)
			}
		}
	}
	table := &TransitionTable{
		order:  make([]string, len(b.order)),
		states: make(map[string]*stateEntry, len(b.states)),
	}
	copy(table.order, b.order)
	for id, entry := range b.states {
		cp := &stateEntry{
			order: make([]string, len(entry.order)),
			dests: make(map[string]string, len(entry.dests)),
		}
		copy(cp.order, entry.order)
		for name, dest := range entry.dests {
			cp.dests[name] = dest
		}
		table.states[id] = cp
	}
	return table, nil
}

// MustBuild is like Build but panics on a validation error. Intended for
// tables declared as literals in tests and examples.
func (b *TableBuilder) MustBuild() *TransitionTable {
	table, err := b.Build()
	if err != nil {
		panic(err)
	}
	return table
}

// StateBuilder declares the transitions permitted from one state
type StateBuilder struct {
	b     *TableBuilder
	id    string
	entry *stateEntry
}

// Permit declares a transition from this state to the destination state.
// Redeclaring a transition name overwrites its destination but keeps its
// original position in declaration order.
func (s *StateBuilder) Permit(name, destination string) *StateBuilder {
	if name == "" {
		s.b.errs = append(s.b.errs, NewEmptyTransitionNameError(s.id))
		return s
	}
	if _, ok := s.entry.dests[name]; !ok {
		s.entry.order = append(s.entry.order, name)
	}
	s.entry.dests[name] = destination
	return s
}

// State declares the next state, continuing the chain on the parent builder
func (s *StateBuilder) State(id string) *StateBuilder {
	return s.b.State(id)
}

// Build finishes the chain, validating and returning the table
func (s *StateBuilder) Build() (*TransitionTable, error) {
	return s.b.Build()
}

// MustBuild finishes the chain, panicking on a validation error
func (s *StateBuilder) MustBuild() *TransitionTable {
	return s.b.MustBuild()
}
