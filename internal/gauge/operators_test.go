package gauge

import "testing"

func TestEnumerateOperatorsExcludesAllZero(t *testing.T) {
	ops := EnumerateOperators(2, 3, 0)
	for _, op := range ops {
		allZero := true
		for _, c := range op {
			if c != 0 {
				allZero = false
			}
		}
		if allZero {
			t.Fatal("EnumerateOperators returned the all-zero vector")
		}
	}
}

func TestEnumerateOperatorsExcludesConjugates(t *testing.T) {
	ops := EnumerateOperators(1, 5, 0)
	// n=1, q=5: valid single-coefficient operators are {1,2,3,4}; 3 and 4
	// are the conjugates of 2 and 1 respectively, so only {1,2} survive.
	if len(ops) != 2 {
		t.Fatalf("len(ops) = %d, want 2: %v", len(ops), ops)
	}
	seen := map[int]bool{}
	for _, op := range ops {
		seen[op[0]] = true
	}
	if !seen[1] || !seen[2] {
		t.Errorf("expected coefficients {1,2}, got %v", ops)
	}
}

func TestEnumerateOperatorsRespectsMaxOrder(t *testing.T) {
	ops := EnumerateOperators(3, 2, 1)
	for _, op := range ops {
		order := 0
		for _, c := range op {
			if c != 0 {
				order++
			}
		}
		if order > 1 {
			t.Errorf("operator %v has order %d, exceeds maxOrder=1", op, order)
		}
	}
	if len(ops) != 3 {
		t.Errorf("expected 3 order-1 operators over n=3 (one per variable), got %d", len(ops))
	}
}

func TestEnumerateOperatorsNoDuplicates(t *testing.T) {
	ops := EnumerateOperators(2, 3, 0)
	seen := make(map[string]bool)
	for _, op := range ops {
		key := ""
		for _, c := range op {
			key += string(rune('0' + c))
		}
		if seen[key] {
			t.Errorf("duplicate operator %v", op)
		}
		seen[key] = true
	}
}
