// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

/*
Package scram implements probabilistic risk analysis over static fault trees:
acyclic Boolean formulas whose leaves are basic events (independent random
Booleans with a failure probability) and house events (Boolean constants), and
whose internal nodes are gates combining their children with logical
connectives.

Given a fault tree, the analyzer computes the Minimal Cut Sets (MCS) of the
top gate, the inclusion-minimal conjunctions of basic-event literals that
force the top gate true, and, optionally, the probability of the top event
together with importance measures for every basic event.

Basics

A model is built from entity values (BasicEvent, HouseEvent, Gate) linked into
a FaultTree. Gates may be shared between several parents, so a tree is really
a DAG; cycles are rejected during validation. The first gate added to a
FaultTree is its top gate.

An analysis is configured with a Settings record and run through an Analyzer:

	set := scram.DefaultSettings()
	set.Probability = true
	a, err := scram.New(set)
	if err != nil { ... }
	res, err := a.Analyze(context.Background(), tree)

The resulting Result value holds the ordered list of MCS, the per-set and
total probabilities, per-event importance measures, warnings, and per-phase
timings. All orderings in a Result are deterministic functions of the model,
so running the same analysis twice yields identical results.

Algorithm

Cut sets are generated with a MOCUS-style worklist: the top gate seeds a
partial cut set, and gates are repeatedly substituted by their children
according to the gate connective, applying De Morgan duality below negations.
Partial sets that exceed the configured order bound are pruned. Fully expanded
sets are reduced to their inclusion-minimal subset, and the probability of the
union of the MCS is computed either exactly, with a truncated
inclusion-exclusion sieve, or with the rare-event or min-cut-upper-bound
(MCUB) approximations.

The analyzer holds no global state and never mutates the model, so
independent analyses may run concurrently. A single analysis is synchronous
and CPU-bound; it can be cancelled cooperatively through its context.

Reports

Two boundary helpers consume analysis inputs and outputs without taking part
in the analysis itself: Graphing writes a GraphViz DOT rendering of a fault
tree, and Reporter writes an XML report of one or more Result values.
*/
package scram
