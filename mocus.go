// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package scram

import (
	"context"

	"go.uber.org/zap"
)

// generateCutSets drives the MOCUS worklist over the indexed tree. Starting
// from a seed superset holding only the positive top gate, it repeatedly
// pops a superset, substitutes one of its pending gates with the expansion
// of its children, and discards any partial set that conflicts or exceeds
// the order bound. Fully expanded sets are collected as candidate cut sets,
// deduplicated on their literal content.
//
// The worklist discipline is LIFO, which bounds memory by the depth of the
// DAG times the branching factor; the set of emitted cut sets does not
// depend on it. Expansion terminates on acyclic inputs because every
// substitution strictly decreases the summed depth of pending gates.
func generateCutSets(ctx context.Context, x *indexes, limit int, cfg *configs) ([][]int, int, error) {
	seed := &superset{gates: []int{x.top()}}
	worklist := []*superset{seed}

	keys := make(map[string]bool)
	var candidates [][]int
	iter, pruned := 0, 0

	for len(worklist) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, 0, err
		}
		iter++
		last := len(worklist) - 1
		cur := worklist[last]
		worklist[last] = nil
		worklist = worklist[:last]

		if cur.numLiterals() > limit {
			pruned++
			continue
		}
		if cur.numGates() == 0 {
			key := cutsetKey(cur.literals)
			if !keys[key] {
				keys[key] = true
				candidates = append(candidates, cur.literals)
			}
			continue
		}

		g := cur.popGate()
		if err := x.checkRange(g); err != nil {
			return nil, 0, err
		}
		children, err := x.expandGate(g)
		if err != nil {
			return nil, 0, err
		}
		for _, child := range children {
			next, ok := child.merge(cur)
			if !ok {
				continue
			}
			if next.numLiterals() > limit {
				pruned++
				continue
			}
			worklist = append(worklist, next)
		}
		if cfg.progress > 0 && iter%cfg.progress == 0 {
			cfg.log.Debug("expanding cut sets",
				zap.Int("iterations", iter),
				zap.Int("worklist", len(worklist)),
				zap.Int("candidates", len(candidates)))
		}
	}
	cfg.log.Debug("cut-set generation done",
		zap.Int("iterations", iter),
		zap.Int("pruned", pruned),
		zap.Int("candidates", len(candidates)))
	return candidates, pruned, nil
}
