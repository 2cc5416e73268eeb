// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package scram

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMinimize(t *testing.T) {
	var minimizeTests = []struct {
		candidates [][]int
		expected   [][]int
	}{
		// A strict superset is discarded.
		{[][]int{{1, 2}, {1}}, [][]int{{1}}},
		// Incomparable sets are all kept, ordered by size then
		// lexicographically.
		{[][]int{{2, 3}, {1, 3}, {1, 2}}, [][]int{{1, 2}, {1, 3}, {2, 3}}},
		// Chains collapse to their smallest element.
		{[][]int{{1, 2, 3}, {1, 2}, {1}}, [][]int{{1}}},
		// A negative literal is not a subset of its positive form.
		{[][]int{{-1}, {1, 2}}, [][]int{{-1}, {1, 2}}},
		// The empty cut set subsumes everything.
		{[][]int{{1}, {}, {2, 3}}, [][]int{{}}},
		// Sign-sensitive subset check.
		{[][]int{{1, -2}, {-2}}, [][]int{{-2}}},
		{[][]int{{1, -2}, {2}}, [][]int{{2}, {1, -2}}},
	}
	for _, tt := range minimizeTests {
		actual, err := minimizeCutSets(context.Background(), tt.candidates)
		require.NoError(t, err)
		require.Equal(t, tt.expected, actual, "minimize(%v)", tt.candidates)
	}
}

func TestMinimizeOrdering(t *testing.T) {
	// The output order must not depend on the candidate order.
	candidates := [][]int{{2, 3}, {1, 2}, {4}, {1, 3}}
	expected := [][]int{{4}, {1, 2}, {1, 3}, {2, 3}}
	perms := [][]int{{0, 1, 2, 3}, {3, 2, 1, 0}, {2, 0, 3, 1}}
	for _, p := range perms {
		shuffled := make([][]int, len(candidates))
		for i, j := range p {
			shuffled[i] = candidates[j]
		}
		actual, err := minimizeCutSets(context.Background(), shuffled)
		require.NoError(t, err)
		require.Equal(t, expected, actual)
	}
}

func TestMinimizeCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := minimizeCutSets(ctx, [][]int{{1}})
	require.ErrorIs(t, err, context.Canceled)
}

func TestIsSubset(t *testing.T) {
	var subsetTests = []struct {
		a, b     []int
		expected bool
	}{
		{[]int{}, []int{1}, true},
		{[]int{1}, []int{1, 2}, true},
		{[]int{-1}, []int{1, 2}, false},
		{[]int{1, 3}, []int{1, 2, 3}, true},
		{[]int{1, 4}, []int{1, 2, 3}, false},
	}
	for _, tt := range subsetTests {
		if actual := isSubset(tt.a, tt.b); actual != tt.expected {
			t.Errorf("isSubset(%v, %v): expected %t, actual %t", tt.a, tt.b, tt.expected, actual)
		}
	}
}
