package mcmmodel

import "math"

// Operator is a gauge operator or an encoded dataset state: k wide
// integers, one per bit plane, same representation as a codec output.
type Operator = []Component

// SpinValue evaluates a generalized Potts operator against an encoded
// state. Both state and op are k-plane vectors over the same n variables.
// The result is sum_{b1,b2} 2^(b1+b2) * popcount(op[b1] & state[b2]), mod q.
func SpinValue(state, op Operator, q int) int {
	sum := 0
	elemB1 := 1
	for b1 := range op {
		elemB2 := 1
		for b2 := range state {
			sum += elemB1 * elemB2 * op[b1].And(state[b2]).PopCount()
			elemB2 <<= 1
		}
		elemB1 <<= 1
	}
	return ((sum % q) + q) % q
}

// Entropy returns the Shannon entropy, in bits, of a discrete probability
// distribution.
func Entropy(dist []float64) float64 {
	h := 0.0
	for _, p := range dist {
		if p > 0 {
			h -= p * math.Log2(p)
		}
	}
	return h
}

// EntropyOfOp computes the Shannon entropy of the distribution an operator
// induces on a dataset: apply op to every observation, bucket the resulting
// spin values into q bins, and measure the entropy of the resulting
// empirical distribution.
func EntropyOfOp(data []Operator, op Operator, q int) float64 {
	dist := make([]float64, q)
	for _, obs := range data {
		dist[SpinValue(obs, op, q)]++
	}
	total := float64(len(data))
	for i := range dist {
		dist[i] /= total
	}
	return Entropy(dist)
}
