// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package scram

import (
	"context"
	"sort"
)

// lessCutSet orders candidate cut sets by size first, then by lexicographic
// comparison of their literal vectors (which are sorted by absolute value,
// with the negative literal ordered before the positive one on the same
// event).
func lessCutSet(a, b []int) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	for i := range a {
		if a[i] != b[i] {
			if aa, ab := abs(a[i]), abs(b[i]); aa != ab {
				return aa < ab
			}
			return a[i] < b[i]
		}
	}
	return false
}

// minimizeCutSets reduces the candidate cut sets to the inclusion-minimal
// ones. Candidates are processed in ascending size; a candidate is discarded
// as soon as an already accepted set is one of its subsets, so sets of the
// smallest size are accepted unconditionally. A map from literal to the
// accepted sets containing it keeps the subset test sublinear in the number
// of accepted sets.
func minimizeCutSets(ctx context.Context, candidates [][]int) ([][]int, error) {
	sorted := make([][]int, len(candidates))
	copy(sorted, candidates)
	sort.Slice(sorted, func(i, j int) bool { return lessCutSet(sorted[i], sorted[j]) })

	var mcs [][]int
	occurs := make(map[int][]int) // literal to ids of accepted sets containing it
	counts := make([]int, 0)
	for _, cand := range sorted {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		// The empty cut set means the top gate is identically true; it
		// subsumes everything else.
		if len(mcs) > 0 && len(mcs[0]) == 0 {
			break
		}
		include := true
		if len(cand) > 0 && len(mcs) > 0 {
			counts = counts[:0]
			counts = append(counts, make([]int, len(mcs))...)
			for _, l := range cand {
				for _, id := range occurs[l] {
					counts[id]++
					if counts[id] == len(mcs[id]) {
						include = false
					}
				}
			}
		}
		if !include {
			continue
		}
		id := len(mcs)
		mcs = append(mcs, cand)
		for _, l := range cand {
			occurs[l] = append(occurs[l], id)
		}
	}
	if _DEBUG {
		if err := verifyMinimal(mcs); err != nil {
			return nil, err
		}
	}
	return mcs, nil
}

// verifyMinimal re-checks minimality pairwise. Quadratic, only run in debug
// builds.
func verifyMinimal(mcs [][]int) error {
	for i, a := range mcs {
		for j, b := range mcs {
			if i == j || len(a) >= len(b) {
				continue
			}
			if isSubset(a, b) {
				return logicf("minimize", "accepted set %d is a strict subset of set %d", i, j)
			}
		}
	}
	return nil
}

// isSubset reports whether every literal of a appears in b. Both slices are
// sorted by absolute value.
func isSubset(a, b []int) bool {
	j := 0
	for _, l := range a {
		for j < len(b) && abs(b[j]) < abs(l) {
			j++
		}
		if j == len(b) || b[j] != l {
			return false
		}
		j++
	}
	return true
}
