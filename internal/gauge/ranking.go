package gauge

import (
	"sort"

	"github.com/rawblock/mcm-search/internal/mcmmodel"
)

// RankedOperator pairs a candidate operator with its entropy on a dataset
// and its encoded (bit-plane) representation.
type RankedOperator struct {
	Coeffs  CoeffVector
	Entropy float64
	Planes  mcmmodel.Operator
}

// RankOperators enumerates every valid, non-conjugate operator over n
// variables and alphabet size q (bounded by maxOrder), scores each by its
// entropy on data, and returns them sorted ascending by entropy — the order
// modular Gaussian elimination consumes them in.
func RankOperators(data []mcmmodel.Operator, n, q, maxOrder int) []RankedOperator {
	k := mcmmodel.NumPlanes(q)
	vectors := EnumerateOperators(n, q, maxOrder)
	ranked := make([]RankedOperator, len(vectors))
	for i, v := range vectors {
		planes := mcmmodel.EncodeValues([]int(v), k)
		ranked[i] = RankedOperator{
			Coeffs:  v,
			Entropy: mcmmodel.EntropyOfOp(data, planes, q),
			Planes:  planes,
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Entropy < ranked[j].Entropy
	})
	return ranked
}
