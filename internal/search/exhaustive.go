package search

import (
	"math"

	"github.com/rawblock/mcm-search/internal/mcmmodel"
)

// DefaultEquiOptimalTolerance is the log-evidence tolerance within which two
// partitions are considered tied for best. Named and adjustable per the
// design notes, rather than an inline magic number.
const DefaultEquiOptimalTolerance = 1e-6

// RGSGenerator produces every restricted growth string over n variables via
// the classical Bell-number enumeration, one "advance" at a time. It is a
// resumable generator object rather than a channel or a callback, so a
// caller (or a test) can stop and restart it freely.
type RGSGenerator struct {
	a, b    []int
	n       int
	started bool
	done    bool
}

// NewRGSGenerator builds a generator over n variables, positioned before
// its first RGS (the all-zero partition).
func NewRGSGenerator(n int) *RGSGenerator {
	b := make([]int, n)
	for i := range b {
		b[i] = 1
	}
	return &RGSGenerator{a: make([]int, n), b: b, n: n}
}

// Advance returns the next RGS and true, or nil and false once every set
// partition of {0,...,n-1} has been produced.
func (g *RGSGenerator) Advance() ([]int, bool) {
	if g.done {
		return nil, false
	}
	if !g.started {
		g.started = true
		return g.snapshot(), true
	}
	n := g.n
	if n == 1 {
		// A single variable has exactly one set partition, already returned.
		g.done = true
		return nil, false
	}
	if g.a[n-1] != g.b[n-1] {
		g.a[n-1]++
	} else {
		j := n - 2
		for j > 0 && g.a[j] == g.b[j] {
			j--
		}
		if j == 0 {
			// a[0] is always 0 and b[0] is always 1, so j reaching 0 means
			// every other position has been exhausted: nothing left to
			// advance, a[0] itself is never incremented.
			g.done = true
			return nil, false
		}
		g.a[j]++
		if g.a[j] == g.b[j] {
			g.b[j+1] = g.b[j] + 1
		}
		for i := j + 1; i < n; i++ {
			g.a[i] = 0
			g.b[i] = g.b[j+1]
		}
	}
	return g.snapshot(), true
}

func (g *RGSGenerator) snapshot() []int {
	out := make([]int, g.n)
	copy(out, g.a)
	return out
}

// ExhaustiveResult carries the exhaustive search's findings beyond what
// model.BestMCM/BestEvidence already hold.
type ExhaustiveResult struct {
	BestEvidence float64
	Best         []mcmmodel.Partition
}

// Exhaustive enumerates every set partition of the model's n variables,
// tracking the best log-evidence and the (possibly multi-way) set of
// partitions within tolerance of it. It first switches the model into
// dense-cache mode via ResetForExhaustive and returns that call's
// NumericLimit error when n is too large for the dense cache.
func Exhaustive(model *mcmmodel.Model, tolerance float64) (*ExhaustiveResult, error) {
	if err := model.ResetForExhaustive(); err != nil {
		return nil, err
	}
	best := math.Inf(-1)
	var bestSet []mcmmodel.Partition

	gen := NewRGSGenerator(model.NumVars)
	for {
		rgs, ok := gen.Advance()
		if !ok {
			break
		}
		partition := mcmmodel.RGSToPartition(rgs, model.NumVars)
		logEvidence := model.CalcEvidence(partition)

		switch {
		case math.Abs(logEvidence-best) < tolerance:
			bestSet = append(bestSet, partition)
		case logEvidence > best:
			best = logEvidence
			bestSet = []mcmmodel.Partition{partition}
		}

		if model.StoreAllEvidence {
			model.AllEvidence = append(model.AllEvidence, logEvidence)
		}
	}

	model.BestEvidence = best
	model.BestMCM = bestSet
	return &ExhaustiveResult{BestEvidence: best, Best: bestSet}, nil
}
