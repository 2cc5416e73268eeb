// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package scram

import "sort"

// superset is a partial cut set under construction: a set of signed
// basic-event indices (literals) plus a set of signed gate indices still to
// expand. Both components are kept sorted by absolute value and an absolute
// value appears at most once per component; meeting both a signed index and
// its negation makes the superset infeasible, in which case it is discarded
// by the caller.
type superset struct {
	literals []int
	gates    []int
}

// insertSorted inserts the signed index i into the slice sorted by absolute
// value. The second result is false when -i is already present, which makes
// the owner infeasible.
func insertSorted(s []int, i int) ([]int, bool) {
	a := abs(i)
	k := sort.Search(len(s), func(j int) bool { return abs(s[j]) >= a })
	if k < len(s) && abs(s[k]) == a {
		if s[k] == i {
			return s, true
		}
		return s, false
	}
	s = append(s, 0)
	copy(s[k+1:], s[k:])
	s[k] = i
	return s, true
}

// insertLiteral inserts a signed basic-event index. The result is false when
// the negation of i is already present (the conjunction is identically
// false).
func (s *superset) insertLiteral(i int) bool {
	var ok bool
	s.literals, ok = insertSorted(s.literals, i)
	return ok
}

// insertGate inserts a signed gate index awaiting expansion. The result is
// false when the negation of i is already pending: by absorption the
// superset can never produce a cut set.
func (s *superset) insertGate(i int) bool {
	var ok bool
	s.gates, ok = insertSorted(s.gates, i)
	return ok
}

// popGate removes and returns the pending gate with the lowest absolute
// value. Must not be called on a superset without pending gates.
func (s *superset) popGate() int {
	g := s.gates[0]
	s.gates = s.gates[1:]
	return g
}

func (s *superset) numLiterals() int { return len(s.literals) }

func (s *superset) numGates() int { return len(s.gates) }

// merge returns the union of s and other. The second result is false when a
// literal of one conflicts with a literal of the other, or a pending gate
// with a pending gate.
func (s *superset) merge(other *superset) (*superset, bool) {
	res := &superset{
		literals: make([]int, 0, len(s.literals)+len(other.literals)),
		gates:    make([]int, 0, len(s.gates)+len(other.gates)),
	}
	res.literals = append(res.literals, s.literals...)
	res.gates = append(res.gates, s.gates...)
	ok := true
	for _, l := range other.literals {
		if res.literals, ok = insertSorted(res.literals, l); !ok {
			return nil, false
		}
	}
	for _, g := range other.gates {
		if res.gates, ok = insertSorted(res.gates, g); !ok {
			return nil, false
		}
	}
	return res, true
}

// cutsetKey returns a canonical representation of a sorted literal slice,
// used to deduplicate fully expanded cut sets.
func cutsetKey(literals []int) string {
	// Literals are sorted by absolute value and absolute values are unique,
	// so the raw int values form a canonical key.
	buf := make([]byte, 0, 4*len(literals))
	for _, l := range literals {
		if l < 0 {
			buf = append(buf, '-')
			l = -l
		}
		for shift := 24; shift >= 0; shift -= 8 {
			buf = append(buf, byte(l>>shift))
		}
	}
	return string(buf)
}
