// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package scram

import (
	"fmt"
	"sort"
)

// probAnd returns the probability of the conjunction denoted by one cut set:
// the product of the probabilities of its positive literals and of the
// complement probabilities of its negative literals. Literals of one set are
// independent by construction.
func probAnd(cut []int, probs []float64) float64 {
	if len(cut) == 0 {
		// An empty conjunction is identically true.
		return 1
	}
	p := 1.0
	for _, l := range cut {
		if l > 0 {
			p *= probs[l]
		} else {
			p *= 1 - probs[-l]
		}
	}
	return p
}

// combine intersects the cut set el with every set of sets: the intersection
// of two cut sets is the union of their literals, dropped when a literal
// meets its negation (the intersection is then impossible). The resulting
// sets are deduplicated, preserving first-occurrence order.
func combine(el []int, sets [][]int) [][]int {
	res := make([][]int, 0, len(sets))
	keys := make(map[string]bool, len(sets))
	for _, s := range sets {
		member := append([]int(nil), s...)
		ok := true
		for _, l := range el {
			if member, ok = insertSorted(member, l); !ok {
				break
			}
		}
		if !ok {
			continue
		}
		key := cutsetKey(member)
		if !keys[key] {
			keys[key] = true
			res = append(res, member)
		}
	}
	return res
}

// probOr computes the probability of the disjunction of the given cut sets
// with the inclusion-exclusion sieve truncated at nsums terms: it splits off
// the first set and recurses on the remainder and on the pairwise
// intersections with a decremented depth budget and a flipped sign.
func probOr(sets [][]int, nsums int, probs []float64) float64 {
	if len(sets) == 0 || nsums == 0 {
		return 0
	}
	if len(sets) == 1 {
		return probAnd(sets[0], probs)
	}
	first, rest := sets[0], sets[1:]
	combo := combine(first, rest)
	return probAnd(first, probs) +
		probOr(rest, nsums, probs) -
		probOr(combo, nsums-1, probs)
}

// probability holds the quantitative outcome of one analysis over the MCS:
// the probability of each set, independent of the chosen policy, and the
// total top-event probability under that policy.
type probability struct {
	perMCS []float64 // parallel to the MCS list
	total  float64
	used   int // number of MCS retained by the cut-off for the total
}

// computeProbability evaluates the top-event probability from the MCS under
// the policy selected by the settings. Cut sets whose probability falls
// below the cut-off are excluded from the total (their individual
// probability is still reported). Non-fatal observations are appended to
// warns.
func computeProbability(mcs [][]int, probs []float64, s Settings, warns []string) (probability, []string) {
	res := probability{perMCS: make([]float64, len(mcs))}
	for i, c := range mcs {
		res.perMCS[i] = probAnd(c, probs)
	}
	retained := make([][]int, 0, len(mcs))
	for i, c := range mcs {
		if res.perMCS[i] >= s.CutOff {
			retained = append(retained, c)
		}
	}
	res.used = len(retained)
	if res.used < len(mcs) {
		warns = append(warns, fmt.Sprintf("%d minimal cut sets below the cut-off probability %g are not in the total", len(mcs)-res.used, s.CutOff))
	}

	switch s.Approximation {
	case ApproxRareEvent:
		warns = append(warns, "using the rare-event approximation")
		legit := true
		for _, c := range retained {
			p := probAnd(c, probs)
			if legit && p > 0.1 {
				legit = false
				warns = append(warns, "the rare-event approximation may be inaccurate: a minimal cut set probability exceeds 0.1")
			}
			res.total += p
		}
	case ApproxMCUB:
		warns = append(warns, "using the MCUB approximation")
		m := 1.0
		for _, c := range retained {
			m *= 1 - probAnd(c, probs)
		}
		res.total = 1 - m
	default:
		nsums := s.NumSums
		if nsums > len(retained) {
			nsums = len(retained)
		}
		res.total = probOr(retained, nsums, probs)
	}
	if res.total > 1 {
		warns = append(warns, fmt.Sprintf("total probability %g exceeds 1", res.total))
	}
	return res, warns
}

// descendingByProb returns the indices of the MCS ordered by decreasing
// probability; ties keep the MCS order.
func descendingByProb(perMCS []float64) []int {
	idx := make([]int, len(perMCS))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return perMCS[idx[a]] > perMCS[idx[b]] })
	return idx
}
