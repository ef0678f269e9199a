package gauge

import "github.com/rawblock/mcm-search/internal/mcmmodel"

// FindBestBasis ranks every candidate operator by dataset entropy and runs
// modular Gaussian elimination over GF(q) (q possibly composite) to select
// n independent low-entropy operators, in increasing-entropy order. If
// fewer than n independent columns exist, it returns a partial basis.
func FindBestBasis(data []mcmmodel.Operator, n, q, maxOrder int) []mcmmodel.Operator {
	ranked := RankOperators(data, n, q, maxOrder)
	numOps := len(ranked)

	// matrix[row][col] = ranked[col].Coeffs[row], rows are variables,
	// columns are candidate operators in increasing-entropy order.
	matrix := make([][]int, n)
	for row := range matrix {
		matrix[row] = make([]int, numOps)
		for col := range ranked {
			matrix[row][col] = ranked[col].Coeffs[row]
		}
	}

	var basis []mcmmodel.Operator
	col := 0
	for i := 0; i < n; i++ {
		row := i
		var pivot int
		found := false
		for {
			if col == numOps {
				return basis
			}
			if matrix[row][col] == 0 {
				row++
				if row == n {
					row = i
					col++
					if col == numOps {
						return basis
					}
				}
				continue
			}
			pivot = matrix[row][col]
			g := gcdInt(pivot, q)
			if g == 1 {
				found = true
				break
			}
			factor := q / g
			for j := 0; j < n; j++ {
				matrix[j][col] = (matrix[j][col] * factor) % q
			}
			// Retry at the same (row, col): the rescale may have zeroed
			// it, in which case the next pass advances row as usual.
		}
		if !found {
			return basis
		}
		if row != i {
			matrix[row], matrix[i] = matrix[i], matrix[row]
			row = i
		}
		for j := row + 1; j < n; j++ {
			value := matrix[j][col]
			factor := 0
			for value%q != 0 {
				value += pivot
				factor++
			}
			if factor != 0 {
				for k := col; k < numOps; k++ {
					matrix[j][k] = (matrix[j][k] + factor*matrix[i][k]) % q
				}
			}
		}
		basis = append(basis, ranked[col].Planes)
		col++
	}
	return basis
}
