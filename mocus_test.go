// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package scram

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func generate(t *testing.T, tree *FaultTree, limit int) ([][]int, int) {
	t.Helper()
	x, err := assignIndices(tree, false)
	require.NoError(t, err)
	candidates, pruned, err := generateCutSets(context.Background(), x, limit, makeconfigs())
	require.NoError(t, err)
	return candidates, pruned
}

func TestGenerateSharedGate(t *testing.T) {
	// top = and(G, G) with G = or(a, b): the shared gate collapses through
	// set semantics and the candidates are {a} and {b}.
	a, b := basic("a", 0.1), basic("b", 0.1)
	g := gate("g", Or, 0, a, b)
	tree := mktree(t, gate("top", And, 0, g, g), g)

	candidates, pruned := generate(t, tree, 20)
	require.Equal(t, 0, pruned)
	require.ElementsMatch(t, [][]int{{1}, {2}}, candidates)
}

func TestGenerateDeduplicates(t *testing.T) {
	// top = or(and(a, b), and(b, a)) produces the same cut set twice.
	a, b := basic("a", 0.1), basic("b", 0.1)
	g1 := gate("g1", And, 0, a, b)
	g2 := gate("g2", And, 0, b, a)
	tree := mktree(t, gate("top", Or, 0, g1, g2), g1, g2)

	candidates, _ := generate(t, tree, 20)
	require.Equal(t, [][]int{{1, 2}}, candidates)
}

func TestGenerateOrderBound(t *testing.T) {
	events := make([]Event, 8)
	for i := range events {
		events[i] = basic(string(rune('a'+i)), 0.1)
	}
	tree := mktree(t, gate("top", And, 0, events...))

	candidates, pruned := generate(t, tree, 5)
	require.Empty(t, candidates)
	require.Positive(t, pruned)

	candidates, pruned = generate(t, tree, 8)
	require.Equal(t, [][]int{{1, 2, 3, 4, 5, 6, 7, 8}}, candidates)
	require.Equal(t, 0, pruned)
}

func TestGenerateInfeasible(t *testing.T) {
	// top = and(a, not(a)) is unsatisfiable.
	a := basic("a", 0.1)
	n := gate("n", Not, 0, a)
	tree := mktree(t, gate("top", And, 0, a, n), n)

	candidates, _ := generate(t, tree, 20)
	require.Empty(t, candidates)
}

func TestGenerateCancelled(t *testing.T) {
	a, b := basic("a", 0.1), basic("b", 0.1)
	tree := mktree(t, gate("top", And, 0, a, b))
	x, err := assignIndices(tree, false)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err = generateCutSets(ctx, x, 20, makeconfigs())
	require.ErrorIs(t, err, context.Canceled)
}
