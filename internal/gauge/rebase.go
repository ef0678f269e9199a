package gauge

import "github.com/rawblock/mcm-search/internal/mcmmodel"

// TransformState re-expresses a single encoded observation in terms of
// basis: entry i of the new value vector is spin_value(state, basis[i], q).
func TransformState(state mcmmodel.Operator, basis []mcmmodel.Operator, q int) mcmmodel.Operator {
	values := make([]int, len(basis))
	for i, op := range basis {
		values[i] = mcmmodel.SpinValue(state, op, q)
	}
	k := mcmmodel.NumPlanes(q)
	return mcmmodel.EncodeValues(values, k)
}

// TransformData rebases every observation in data onto basis, in place.
func TransformData(data []mcmmodel.Operator, basis []mcmmodel.Operator, q int) {
	for i, obs := range data {
		data[i] = TransformState(obs, basis, q)
	}
}
