// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package scram

// Event is the common interface of the nodes of a fault tree: basic events,
// house events and gates. Entities are value types owned by the caller; the
// analyzer never mutates them.
type Event interface {
	// EventID returns the stable identifier of the entity, unique across one
	// model.
	EventID() string
}

// BasicEvent is an independent random Boolean with a given probability of
// being true.
type BasicEvent struct {
	ID   string  // stable identifier
	Name string  // display name, used in graphing and reports
	Prob float64 // probability of the event being true, in [0, 1]
}

func (e *BasicEvent) EventID() string { return e.ID }

// HouseEvent is a Boolean constant.
type HouseEvent struct {
	ID    string
	Name  string
	State bool
}

func (e *HouseEvent) EventID() string { return e.ID }

// Gate combines an ordered list of children, each either another gate or an
// event, through a logical connective. A gate may be a child of several gates
// (sharing), so a fault tree is really a DAG.
type Gate struct {
	ID       string
	Name     string
	Conn     Connective
	K        int // minimum number of true children, only used by AtLeast gates
	Children []Event
}

func (g *Gate) EventID() string { return g.ID }

// display returns the name to show in reports, falling back to the
// identifier when no display name was set.
func display(id, name string) string {
	if name == "" {
		return id
	}
	return name
}

// FaultTree is an immutable-after-construction fault tree with one designated
// top gate. The first gate added is the top gate.
type FaultTree struct {
	Name  string
	top   *Gate
	gates []*Gate          // in insertion order, top first
	byid  map[string]Event // gates added through AddGate, by identifier
}

// NewFaultTree returns an empty fault tree with the given name.
func NewFaultTree(name string) *FaultTree {
	return &FaultTree{Name: name, byid: make(map[string]Event)}
}

// Top returns the top gate of the tree, or nil when no gate was added.
func (t *FaultTree) Top() *Gate { return t.top }

// Gates returns the gates of the tree in insertion order, top first.
func (t *FaultTree) Gates() []*Gate { return t.gates }

// AddGate adds a gate into this tree. The first gate added is taken as the
// top event. Re-adding a gate, or reusing the identifier of another gate of
// the tree, is a ValidityError; clashes with the identifiers of events are
// left to Validate.
func (t *FaultTree) AddGate(g *Gate) error {
	if g == nil || g.ID == "" {
		return validityf(t.Name, "gate without an identifier")
	}
	if prev, ok := t.byid[g.ID]; ok {
		if prev == Event(g) {
			return validityf(g.ID, "gate added twice")
		}
		return validityf(g.ID, "identifier already used by another entity")
	}
	t.byid[g.ID] = g
	t.gates = append(t.gates, g)
	if t.top == nil {
		t.top = g
	}
	return nil
}

// Validate checks the structure of the tree: every gate has an admissible
// number of children for its connective, identifiers are unique across
// entity kinds, basic-event probabilities are within [0, 1], and the gate
// graph is acyclic. The analyzer revalidates acyclicity cheaply on its own,
// so loaders may rely on this single call.
func (t *FaultTree) Validate() error {
	if t.top == nil {
		return validityf(t.Name, "fault tree without a top gate")
	}
	seen := make(map[string]Event)
	for _, g := range t.gates {
		seen[g.ID] = g
	}
	for _, g := range t.gates {
		if err := g.Conn.checkArity(g.ID, len(g.Children), g.K); err != nil {
			return err
		}
		for _, c := range g.Children {
			id := c.EventID()
			if id == "" {
				return validityf(g.ID, "child without an identifier")
			}
			if prev, ok := seen[id]; ok && prev != c {
				return validityf(id, "identifier used by two different entities")
			}
			seen[id] = c
			if b, ok := c.(*BasicEvent); ok {
				if b.Prob < 0 || b.Prob > 1 {
					return validityf(b.ID, "probability %g outside [0, 1]", b.Prob)
				}
			}
			if sub, ok := c.(*Gate); ok {
				if err := sub.Conn.checkArity(sub.ID, len(sub.Children), sub.K); err != nil {
					return err
				}
			}
		}
	}
	_, err := assignIndices(t, false)
	return err
}

// Model is a collection of named fault trees analyzed together. Trees of one
// model are independent; they may share entity values but each has its own
// top gate.
type Model struct {
	Name  string
	trees []*FaultTree
}

// NewModel returns an empty model with the given name.
func NewModel(name string) *Model {
	return &Model{Name: name}
}

// AddFaultTree adds a fault tree into the model. Duplicate tree names are a
// ValidityError.
func (m *Model) AddFaultTree(t *FaultTree) error {
	for _, prev := range m.trees {
		if prev.Name == t.Name {
			return validityf(t.Name, "fault tree added twice")
		}
	}
	m.trees = append(m.trees, t)
	return nil
}

// FaultTrees returns the trees of the model in insertion order.
func (m *Model) FaultTrees() []*FaultTree { return m.trees }
