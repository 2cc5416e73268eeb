// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package scram

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Literal is one signed basic event of a cut set: the event is required
// false when Negated is set.
type Literal struct {
	ID      string
	Negated bool
}

func (l Literal) String() string {
	if l.Negated {
		return "not " + l.ID
	}
	return l.ID
}

// CutSet is a conjunction of literals over distinct basic events, listed in
// the index order of the events. An empty cut set denotes the constant true.
type CutSet []Literal

func (c CutSet) String() string {
	if len(c) == 0 {
		return "{ }"
	}
	parts := make([]string, len(c))
	for i, l := range c {
		parts[i] = l.String()
	}
	return "{ " + strings.Join(parts, ", ") + " }"
}

// Probability is the quantitative part of a Result. PerMCS is keyed by the
// String form of each cut set and is independent of the approximation
// policy; Descending lists the positions of the MCS by decreasing
// probability.
type Probability struct {
	PerMCS     map[string]float64
	Total      float64
	Descending []int
}

// Timings records the wall-clock duration of each analysis phase.
type Timings struct {
	CutSets      time.Duration
	Minimization time.Duration
	Probability  time.Duration
	Importance   time.Duration
}

// Result packages the outcome of one analysis. All slice and map orderings
// are deterministic functions of the model, so two analyses of the same
// tree produce identical Results.
type Result struct {
	Top          string   // identifier of the analyzed top gate
	Settings     Settings // settings the analysis ran with
	MCS          []CutSet // minimal cut sets, by size then lexicographic order
	Distribution []int    // Distribution[k] is the number of MCS of order k+1
	MaxOrder     int      // largest MCS size
	BasicEvents  int      // number of basic events reachable from the top gate
	Gates        int      // number of gates reachable from the top gate
	HouseEvents  int      // number of house events reachable from the top gate
	Probability  *Probability
	Importance   []Importance
	Warnings     []string
	Timings      Timings
}

// Analyzer runs fault-tree analyses with a fixed settings record. It holds
// no mutable state between invocations, so one Analyzer may serve several
// goroutines analyzing disjoint trees.
type Analyzer struct {
	settings Settings
	conf     *configs
}

// New returns an Analyzer for the given settings, checked before any work
// starts. Options follow the functional style of Logger and Progress.
func New(settings Settings, options ...func(*configs)) (*Analyzer, error) {
	if err := settings.check(); err != nil {
		return nil, err
	}
	conf := makeconfigs()
	for _, f := range options {
		f(conf)
	}
	return &Analyzer{settings: settings, conf: conf}, nil
}

// Analyze computes the minimal cut sets of the top gate of the tree and,
// when the settings ask for it, the top-event probability and the
// importance of every basic event. The tree is only read, never mutated.
//
// Cancellation is cooperative: the context is checked once per worklist
// iteration and once per minimizer candidate, and the analysis fails with
// ctx.Err() without a partial Result.
func (a *Analyzer) Analyze(ctx context.Context, tree *FaultTree) (*Result, error) {
	log := a.conf.log
	x, err := assignIndices(tree, a.settings.Probability)
	if err != nil {
		return nil, err
	}
	res := &Result{
		Top:         tree.Top().ID,
		Settings:    a.settings,
		BasicEvents: x.nbasics(),
		Gates:       len(x.gates),
		HouseEvents: x.houses,
	}
	log.Debug("analysis started",
		zap.String("top", res.Top),
		zap.Int("basic-events", res.BasicEvents),
		zap.Int("gates", res.Gates))

	start := time.Now()
	candidates, pruned, err := generateCutSets(ctx, x, a.settings.LimitOrder, a.conf)
	if err != nil {
		return nil, err
	}
	res.Timings.CutSets = time.Since(start)

	if pruned > 0 {
		res.Warnings = append(res.Warnings,
			fmt.Sprintf("%d cut sets above the limit order %d were dropped", pruned, a.settings.LimitOrder))
	}
	if len(candidates) == 0 {
		res.Warnings = append(res.Warnings,
			fmt.Sprintf("no cut sets for the limit order %d", a.settings.LimitOrder))
	}

	start = time.Now()
	mcs, err := minimizeCutSets(ctx, candidates)
	if err != nil {
		return nil, err
	}
	res.Timings.Minimization = time.Since(start)

	res.MCS = make([]CutSet, len(mcs))
	for i, c := range mcs {
		if res.MCS[i], err = x.cutset(c); err != nil {
			return nil, err
		}
		if len(c) > res.MaxOrder {
			res.MaxOrder = len(c)
		}
	}
	res.Distribution = make([]int, res.MaxOrder)
	for _, c := range mcs {
		if len(c) > 0 {
			res.Distribution[len(c)-1]++
		}
	}
	log.Debug("minimization done",
		zap.Int("candidates", len(candidates)),
		zap.Int("mcs", len(mcs)),
		zap.Int("max-order", res.MaxOrder))

	if !a.settings.Probability {
		return res, nil
	}

	start = time.Now()
	if len(mcs) == 0 {
		res.Warnings = append(res.Warnings, "empty minimal cut sets, probability is zero")
	}
	prob, warns := computeProbability(mcs, x.probs, a.settings, res.Warnings)
	res.Warnings = warns
	res.Probability = &Probability{
		PerMCS:     make(map[string]float64, len(mcs)),
		Total:      prob.total,
		Descending: descendingByProb(prob.perMCS),
	}
	for i := range mcs {
		res.Probability.PerMCS[res.MCS[i].String()] = prob.perMCS[i]
	}
	res.Timings.Probability = time.Since(start)
	log.Debug("probability done",
		zap.String("approximation", a.settings.Approximation),
		zap.Float64("total", prob.total))

	if len(mcs) > 0 {
		start = time.Now()
		res.Importance = computeImportance(x, mcs, prob.perMCS, prob.total)
		res.Timings.Importance = time.Since(start)
	}
	return res, nil
}

// AnalyzeModel analyzes every fault tree of the model concurrently, one
// goroutine per tree, and returns the results keyed by top-gate identifier.
// Trees of one model are independent, so no synchronization is needed
// beyond collecting the results. The first error cancels the remaining
// analyses.
func (a *Analyzer) AnalyzeModel(ctx context.Context, m *Model) (map[string]*Result, error) {
	trees := m.FaultTrees()
	if len(trees) == 0 {
		return nil, validityf(m.Name, "model without fault trees")
	}
	results := make([]*Result, len(trees))
	g, ctx := errgroup.WithContext(ctx)
	for i, t := range trees {
		g.Go(func() error {
			res, err := a.Analyze(ctx, t)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	byTop := make(map[string]*Result, len(trees))
	for _, res := range results {
		if _, ok := byTop[res.Top]; ok {
			return nil, validityf(res.Top, "two fault trees share the same top gate")
		}
		byTop[res.Top] = res
	}
	return byTop, nil
}

// cutset translates a cut set over signed indices into its identifier form,
// keeping the index order of the literals.
func (x *indexes) cutset(c []int) (CutSet, error) {
	res := make(CutSet, len(c))
	for i, l := range c {
		b, err := x.basicAt(l)
		if err != nil {
			return nil, err
		}
		res[i] = Literal{ID: b.ID, Negated: l < 0}
	}
	return res, nil
}
