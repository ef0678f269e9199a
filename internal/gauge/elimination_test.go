package gauge

import (
	"reflect"
	"testing"

	"github.com/rawblock/mcm-search/internal/mcmmodel"
)

// uniformBinaryData returns all 4 combinations of two independent bits,
// each observed once: entropy_of_op ties at 1 bit for every order-1 and
// the order-2 XOR operator, so elimination picks the first-enumerated
// representative of each and the basis comes out as the identity.
func uniformBinaryData(k int) []mcmmodel.Operator {
	var data []mcmmodel.Operator
	for a := 0; a < 2; a++ {
		for b := 0; b < 2; b++ {
			data = append(data, mcmmodel.EncodeValues([]int{a, b}, k))
		}
	}
	return data
}

func TestFindBestBasisIdentityOnIndependentBits(t *testing.T) {
	q, n := 2, 2
	k := mcmmodel.NumPlanes(q)
	data := uniformBinaryData(k)

	basis := FindBestBasis(data, n, q, 0)
	if len(basis) != n {
		t.Fatalf("len(basis) = %d, want %d", len(basis), n)
	}
	want0 := mcmmodel.EncodeValues([]int{1, 0}, k)
	want1 := mcmmodel.EncodeValues([]int{0, 1}, k)
	if !reflect.DeepEqual(basis[0], want0) {
		t.Errorf("basis[0] = %v, want %v", basis[0], want0)
	}
	if !reflect.DeepEqual(basis[1], want1) {
		t.Errorf("basis[1] = %v, want %v", basis[1], want1)
	}
}

func TestFindBestBasisReturnsIndependentOperators(t *testing.T) {
	q, n := 3, 3
	k := mcmmodel.NumPlanes(q)
	var data []mcmmodel.Operator
	for a := 0; a < q; a++ {
		for b := 0; b < q; b++ {
			for c := 0; c < q; c++ {
				data = append(data, mcmmodel.EncodeValues([]int{a, b, c}, k))
			}
		}
	}
	basis := FindBestBasis(data, n, q, 0)
	if len(basis) != n {
		t.Fatalf("len(basis) = %d, want %d (full rank expected on uniform data)", len(basis), n)
	}
}
