// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package scram

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// literalsOf projects a list of supersets to their literal slices, for
// comparing expansions of gates over basic events only.
func literalsOf(sets []*superset) [][]int {
	res := make([][]int, len(sets))
	for i, s := range sets {
		if s.literals == nil {
			res[i] = []int{}
		} else {
			res[i] = s.literals
		}
	}
	return res
}

func TestExpandConnectives(t *testing.T) {
	a, b, c := basic("a", 0.1), basic("b", 0.1), basic("c", 0.1)

	// Indices: a=1, b=2, c=3, top=4, pad=5; the tested gate is always index 6,
	// child of an AND top so that it is reachable but expanded on its own.
	var expandTests = []struct {
		conn     Connective
		k        int
		children []Event
		sign     int
		expected [][]int
	}{
		{Or, 0, []Event{a, b, c}, 1, [][]int{{1}, {2}, {3}}},
		{Or, 0, []Event{a, b, c}, -1, [][]int{{-1, -2, -3}}},
		{And, 0, []Event{a, b, c}, 1, [][]int{{1, 2, 3}}},
		{And, 0, []Event{a, b, c}, -1, [][]int{{-1}, {-2}, {-3}}},
		{Null, 0, []Event{a}, 1, [][]int{{1}}},
		{Null, 0, []Event{a}, -1, [][]int{{-1}}},
		{Not, 0, []Event{a}, 1, [][]int{{-1}}},
		{Not, 0, []Event{a}, -1, [][]int{{1}}},
		{Nor, 0, []Event{a, b, c}, 1, [][]int{{-1, -2, -3}}},
		{Nor, 0, []Event{a, b, c}, -1, [][]int{{1}, {2}, {3}}},
		{Nand, 0, []Event{a, b, c}, 1, [][]int{{-1}, {-2}, {-3}}},
		{Nand, 0, []Event{a, b, c}, -1, [][]int{{1, 2, 3}}},
		{Inhibit, 0, []Event{a, b}, 1, [][]int{{1, 2}}},
		{Inhibit, 0, []Event{a, b}, -1, [][]int{{-1}, {-2}}},
		{Xor, 0, []Event{a, b}, 1, [][]int{{1, -2}, {-1, 2}}},
		{Xor, 0, []Event{a, b}, -1, [][]int{{1, 2}, {-1, -2}}},
		{AtLeast, 2, []Event{a, b, c}, 1, [][]int{{1, 2}, {1, 3}, {2, 3}}},
		{AtLeast, 2, []Event{a, b, c}, -1, [][]int{{-1, -2}, {-1, -3}, {-2, -3}}},
		{AtLeast, 3, []Event{a, b, c}, 1, [][]int{{1, 2, 3}}},
		{AtLeast, 3, []Event{a, b, c}, -1, [][]int{{-1}, {-2}, {-3}}},
	}
	for _, tt := range expandTests {
		g := gate("g", tt.conn, tt.k, tt.children...)
		top := gate("top", And, 0, gate("pad", Or, 0, a, b, c), g)
		tree := mktree(t, top)
		x, err := assignIndices(tree, false)
		require.NoError(t, err)
		require.Equal(t, 6, x.gate["g"], "unexpected index layout")

		sets, err := x.expandGate(tt.sign * 6)
		require.NoError(t, err, "%s (sign %d)", tt.conn, tt.sign)
		require.Equal(t, tt.expected, literalsOf(sets), "%s (sign %d)", tt.conn, tt.sign)
	}
}

func TestExpandGateChildren(t *testing.T) {
	a, b := basic("a", 0.1), basic("b", 0.1)
	g1 := gate("g1", Or, 0, a, b)
	g2 := gate("g2", Or, 0, a, b)
	top := gate("top", And, 0, g1, g2)
	tree := mktree(t, top)
	x, err := assignIndices(tree, false)
	require.NoError(t, err)

	sets, err := x.expandGate(x.top())
	require.NoError(t, err)
	require.Len(t, sets, 1)
	require.Empty(t, sets[0].literals)
	require.Equal(t, []int{x.gate["g1"], x.gate["g2"]}, sets[0].gates)
}

func TestExpandHouseFolding(t *testing.T) {
	a := basic("a", 0.1)
	hTrue, hFalse := house("ht", true), house("hf", false)

	t.Run("and with true house", func(t *testing.T) {
		tree := mktree(t, gate("top", And, 0, a, hTrue))
		x, err := assignIndices(tree, false)
		require.NoError(t, err)
		sets, err := x.expandGate(x.top())
		require.NoError(t, err)
		require.Equal(t, [][]int{{1}}, literalsOf(sets))
	})

	t.Run("and with false house", func(t *testing.T) {
		tree := mktree(t, gate("top", And, 0, a, hFalse))
		x, err := assignIndices(tree, false)
		require.NoError(t, err)
		sets, err := x.expandGate(x.top())
		require.NoError(t, err)
		require.Empty(t, sets, "a false conjunct makes the gate unsatisfiable")
	})

	t.Run("or with true house", func(t *testing.T) {
		tree := mktree(t, gate("top", Or, 0, a, hTrue))
		x, err := assignIndices(tree, false)
		require.NoError(t, err)
		sets, err := x.expandGate(x.top())
		require.NoError(t, err)
		// The true house makes the gate identically true: one superset for
		// the a-branch and one empty superset.
		require.Equal(t, [][]int{{1}, {}}, literalsOf(sets))
	})

	t.Run("xor with true house", func(t *testing.T) {
		tree := mktree(t, gate("top", Xor, 0, a, hTrue))
		x, err := assignIndices(tree, false)
		require.NoError(t, err)
		sets, err := x.expandGate(x.top())
		require.NoError(t, err)
		// xor(a, true) is equivalent to not a.
		require.Equal(t, [][]int{{-1}}, literalsOf(sets))
	})
}

func TestExpandArityErrors(t *testing.T) {
	a, b := basic("a", 0.1), basic("b", 0.1)
	var arityTests = []*Gate{
		gate("g", Or, 0),
		gate("g", And, 0, a),
		gate("g", Not, 0, a, b),
		gate("g", Xor, 0, a),
		gate("g", Inhibit, 0, a),
		gate("g", AtLeast, 3, a, b),
		gate("g", Connective(42), 0, a, b),
	}
	for _, g := range arityTests {
		top := gate("top", And, 0, gate("pad", Or, 0, a, b), g)
		tree := mktree(t, top)
		x, err := assignIndices(tree, false)
		require.NoError(t, err)
		_, err = x.expandGate(x.gate["g"])
		var verr *ValidityError
		require.ErrorAs(t, err, &verr, "connective %s with %d children", g.Conn, len(g.Children))
	}
}
