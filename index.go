// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package scram

// indexes implements the bijection between entity identifiers and the dense
// signed-index scheme used during cut-set generation. Basic events receive
// indices 1..B and gates B+1..B+G, with the top gate first at B+1. A signed
// integer i denotes the entity |i|, negated when i < 0.
//
// The order of indices is the first-visit order of a depth-first traversal
// of the top gate following child order, so every ordering derived from it
// is a deterministic function of the model. Entities not reachable from the
// top gate receive no index and play no part in the analysis.
type indexes struct {
	basics []*BasicEvent  // basics[i-1] is the basic event with index i
	gates  []*Gate        // gates[j] is the gate with index B+1+j, top first
	probs  []float64      // probs[i] is the probability of basic event i; probs[0] is unused
	basic  map[string]int // identifier to index
	gate   map[string]int
	houses int // number of house events met during traversal
}

// nbasics returns B, the number of indexed basic events.
func (x *indexes) nbasics() int { return len(x.basics) }

// top returns the signed index of the top gate.
func (x *indexes) top() int { return len(x.basics) + 1 }

// isGate reports whether the signed index i denotes a gate.
func (x *indexes) isGate(i int) bool {
	return abs(i) > len(x.basics)
}

// gateAt returns the gate denoted by the signed index i.
func (x *indexes) gateAt(i int) (*Gate, error) {
	j := abs(i) - len(x.basics) - 1
	if j < 0 || j >= len(x.gates) {
		return nil, logicf("gateAt", "signed index %d has no gate", i)
	}
	return x.gates[j], nil
}

// basicAt returns the basic event denoted by the signed index i.
func (x *indexes) basicAt(i int) (*BasicEvent, error) {
	j := abs(i)
	if j < 1 || j > len(x.basics) {
		return nil, logicf("basicAt", "signed index %d has no basic event", i)
	}
	return x.basics[j-1], nil
}

// checkRange verifies that a signed index denotes some entity of the model
// (1 <= |i| <= B+G). A violation is a LogicError.
func (x *indexes) checkRange(i int) error {
	if a := abs(i); a < 1 || a > len(x.basics)+len(x.gates) {
		return logicf("checkRange", "signed index %d outside [1, %d]", i, len(x.basics)+len(x.gates))
	}
	return nil
}

func abs(i int) int {
	if i < 0 {
		return -i
	}
	return i
}

// traversal colors for cycle detection.
const (
	cwhite = iota // not visited
	cgrey         // on the current path
	cblack        // fully explored
)

// assignIndices traverses the tree from its top gate, collects basic events
// and gates in first-visit order, assigns their indices and gathers the
// probability vector when withprob is set. The traversal doubles as a cheap
// revalidation of acyclicity: a back edge to a gate on the current path is a
// ValidityError naming the gate.
func assignIndices(t *FaultTree, withprob bool) (*indexes, error) {
	if t == nil || t.Top() == nil {
		return nil, validityf("fault tree", "no top gate to analyze")
	}
	x := &indexes{
		basic: make(map[string]int),
		gate:  make(map[string]int),
	}
	color := make(map[*Gate]int)
	seenb := make(map[*BasicEvent]bool)
	seenh := make(map[*HouseEvent]bool)

	// First pass: depth-first traversal recording gates in first-visit order
	// and basic events as they appear.
	var visit func(g *Gate) error
	visit = func(g *Gate) error {
		switch color[g] {
		case cgrey:
			return validityf(g.ID, "cycle through gate")
		case cblack:
			return nil
		}
		color[g] = cgrey
		x.gates = append(x.gates, g)
		for _, c := range g.Children {
			switch c := c.(type) {
			case *Gate:
				if err := visit(c); err != nil {
					return err
				}
			case *BasicEvent:
				if !seenb[c] {
					seenb[c] = true
					x.basics = append(x.basics, c)
				}
			case *HouseEvent:
				if !seenh[c] {
					seenh[c] = true
					x.houses++
				}
			default:
				return validityf(g.ID, "child of unknown entity kind")
			}
		}
		color[g] = cblack
		return nil
	}
	if err := visit(t.Top()); err != nil {
		return nil, err
	}

	// Second pass: number the entities now that B is known.
	for i, b := range x.basics {
		x.basic[b.ID] = i + 1
	}
	for j, g := range x.gates {
		x.gate[g.ID] = len(x.basics) + 1 + j
	}
	x.probs = make([]float64, len(x.basics)+1)
	if withprob {
		for i, b := range x.basics {
			x.probs[i+1] = b.Prob
		}
	}
	return x, nil
}
