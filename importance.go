// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package scram

import "math"

// Importance collects the contribution of one basic event to the top-event
// probability. Positive sums the probabilities of the MCS containing the
// event as a positive literal, Negative those containing its complement.
//
// The derived measures use the rare-event linearization of the total
// probability p = q*A + (1-q)*B + R, where q is the event probability, A and
// B the positive and negative contributions normalized by q and 1-q, and R
// the terms not involving the event:
//
//	MIF  = A - B                       (Birnbaum, dp/dq)
//	DIF  = Positive / p                (diagnosis, Fussell-Vesely)
//	CIF  = q * MIF / p                 (criticality)
//	RAW  = (p + (1-q)*MIF) / p         (risk achievement, q := 1)
//	RRW  = p / (p - q*MIF)             (risk reduction, q := 0)
//
// Measures with a vanishing denominator are reported as +Inf, or as 0 when
// the numerator vanishes too.
type Importance struct {
	ID       string
	Positive float64
	Negative float64
	DIF      float64
	MIF      float64
	CIF      float64
	RAW      float64
	RRW      float64
}

// computeImportance sums, for every indexed basic event, the probabilities
// of the MCS containing it positively and negatively, and derives the
// extended measures from those two sums, the total probability and the event
// probability. Events appearing in no MCS are omitted. The order of the
// records follows the index order of the basic events.
func computeImportance(x *indexes, mcs [][]int, perMCS []float64, total float64) []Importance {
	pos := make([]float64, x.nbasics()+1)
	neg := make([]float64, x.nbasics()+1)
	for i, c := range mcs {
		for _, l := range c {
			if l > 0 {
				pos[l] += perMCS[i]
			} else {
				neg[-l] += perMCS[i]
			}
		}
	}
	var res []Importance
	for i := 1; i <= x.nbasics(); i++ {
		if pos[i] == 0 && neg[i] == 0 {
			continue
		}
		q := x.probs[i]
		imp := Importance{ID: x.basics[i-1].ID, Positive: pos[i], Negative: neg[i]}
		var a, b float64
		if q > 0 {
			a = pos[i] / q
		}
		if q < 1 {
			b = neg[i] / (1 - q)
		}
		imp.MIF = a - b
		imp.DIF = ratio(pos[i], total)
		imp.CIF = ratio(q*imp.MIF, total)
		imp.RAW = ratio(total+(1-q)*imp.MIF, total)
		imp.RRW = ratio(total, total-q*imp.MIF)
		res = append(res, imp)
	}
	return res
}

func ratio(num, den float64) float64 {
	if den == 0 {
		if num == 0 {
			return 0
		}
		return math.Inf(1)
	}
	return num / den
}
