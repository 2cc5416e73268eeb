// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package scram

// term is the view of one gate child after sign application: either a signed
// basic-event or gate index, or a Boolean constant folded from a house
// event. A house event never receives an index, so index is 0 exactly when
// the term is a constant.
type term struct {
	index int
	truth bool
}

// childterm converts a gate child into a term under the multiplier mult
// (+1 or -1).
func (x *indexes) childterm(c Event, mult int) (term, error) {
	switch c := c.(type) {
	case *BasicEvent:
		i, ok := x.basic[c.ID]
		if !ok {
			return term{}, logicf("childterm", "basic event %q was never indexed", c.ID)
		}
		return term{index: mult * i}, nil
	case *Gate:
		i, ok := x.gate[c.ID]
		if !ok {
			return term{}, logicf("childterm", "gate %q was never indexed", c.ID)
		}
		return term{index: mult * i}, nil
	case *HouseEvent:
		return term{truth: c.State == (mult > 0)}, nil
	}
	return term{}, logicf("childterm", "child %q of unknown entity kind", c.EventID())
}

// makeset materializes one conjunction of terms into a superset. Constants
// folded to true are dropped; a constant false, or a sign conflict between
// two terms, makes the conjunction identically false and the second result
// is false.
func (x *indexes) makeset(terms []term) (*superset, bool) {
	res := &superset{}
	for _, t := range terms {
		if t.index == 0 {
			if !t.truth {
				return nil, false
			}
			continue
		}
		if x.isGate(t.index) {
			if !res.insertGate(t.index) {
				return nil, false
			}
		} else if !res.insertLiteral(t.index) {
			return nil, false
		}
	}
	return res, true
}

// expandGate produces the supersets equivalent to the signed gate index g:
// the gate is logically equivalent to the disjunction of the conjunctions
// the supersets denote. When g is negative the connective is replaced by its
// De Morgan dual and every child sign is flipped.
func (x *indexes) expandGate(g int) ([]*superset, error) {
	gate, err := x.gateAt(g)
	if err != nil {
		return nil, err
	}
	if err := gate.Conn.checkArity(gate.ID, len(gate.Children), gate.K); err != nil {
		return nil, err
	}
	children := make([]term, len(gate.Children))
	for i, c := range gate.Children {
		if children[i], err = x.childterm(c, 1); err != nil {
			return nil, err
		}
	}
	neg := g < 0

	switch gate.Conn {
	case Or:
		if neg {
			return x.expandAnd(children, -1)
		}
		return x.expandOr(children, 1)
	case And:
		if neg {
			return x.expandOr(children, -1)
		}
		return x.expandAnd(children, 1)
	case Not:
		if neg {
			return x.expandAnd(children, 1)
		}
		return x.expandAnd(children, -1)
	case Null:
		if neg {
			return x.expandAnd(children, -1)
		}
		return x.expandAnd(children, 1)
	case Nor:
		if neg {
			return x.expandOr(children, 1)
		}
		return x.expandAnd(children, -1)
	case Nand:
		if neg {
			return x.expandAnd(children, 1)
		}
		return x.expandOr(children, -1)
	case Inhibit:
		if neg {
			return x.expandOr(children, -1)
		}
		return x.expandAnd(children, 1)
	case Xor:
		return x.expandXor(children, neg)
	case AtLeast:
		k := gate.K
		mult := 1
		if neg {
			// The dual of a k-out-of-m gate is an (m-k+1)-out-of-m gate over
			// the complemented children.
			k = len(children) - k + 1
			mult = -1
		}
		return x.expandAtLeast(children, k, mult)
	}
	return nil, validityf(gate.ID, "no expansion defined for connective %s", gate.Conn)
}

// expandOr emits one singleton superset per child. A child folded to the
// constant true yields the empty superset (the gate is identically true); a
// constant false child is skipped.
func (x *indexes) expandOr(children []term, mult int) ([]*superset, error) {
	sets := make([]*superset, 0, len(children))
	for _, c := range children {
		if s, ok := x.makeset([]term{applymult(c, mult)}); ok {
			sets = append(sets, s)
		}
	}
	return sets, nil
}

// expandAnd emits a single superset holding the conjunction of all the
// children, or nothing when the conjunction is identically false.
func (x *indexes) expandAnd(children []term, mult int) ([]*superset, error) {
	terms := make([]term, len(children))
	for i, c := range children {
		terms[i] = applymult(c, mult)
	}
	if s, ok := x.makeset(terms); ok {
		return []*superset{s}, nil
	}
	return nil, nil
}

// expandXor emits the two conjunctions {c1, -c2} and {-c1, c2}; the negated
// gate (equivalence) emits {c1, c2} and {-c1, -c2}.
func (x *indexes) expandXor(children []term, neg bool) ([]*superset, error) {
	c1, c2 := children[0], children[1]
	var one, two []term
	if neg {
		one = []term{c1, c2}
		two = []term{applymult(c1, -1), applymult(c2, -1)}
	} else {
		one = []term{c1, applymult(c2, -1)}
		two = []term{applymult(c1, -1), c2}
	}
	sets := make([]*superset, 0, 2)
	if s, ok := x.makeset(one); ok {
		sets = append(sets, s)
	}
	if s, ok := x.makeset(two); ok {
		sets = append(sets, s)
	}
	return sets, nil
}

// expandAtLeast emits one conjunction per k-subset of the children, in
// lexicographic subset order, so C(m, k) supersets before constant folding.
func (x *indexes) expandAtLeast(children []term, k int, mult int) ([]*superset, error) {
	m := len(children)
	if k <= 0 || k > m {
		// The arity check bounds k in [2, m], so the dual size m-k+1 stays
		// in [1, m-1]; reaching this is a bug.
		return nil, logicf("expandAtLeast", "subset size %d outside [1, %d]", k, m)
	}
	var sets []*superset
	pick := make([]int, k)
	for i := range pick {
		pick[i] = i
	}
	terms := make([]term, k)
	for {
		for i, j := range pick {
			terms[i] = applymult(children[j], mult)
		}
		if s, ok := x.makeset(terms); ok {
			sets = append(sets, s)
		}
		// Advance to the next k-subset in lexicographic order.
		i := k - 1
		for i >= 0 && pick[i] == m-k+i {
			i--
		}
		if i < 0 {
			return sets, nil
		}
		pick[i]++
		for j := i + 1; j < k; j++ {
			pick[j] = pick[j-1] + 1
		}
	}
}

func applymult(t term, mult int) term {
	if mult >= 0 {
		return t
	}
	if t.index == 0 {
		return term{truth: !t.truth}
	}
	return term{index: -t.index}
}
