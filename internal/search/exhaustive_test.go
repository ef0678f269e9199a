package search

import (
	"math"
	"testing"

	"github.com/rawblock/mcm-search/internal/mcmmodel"
)

func t1Model(t *testing.T) *mcmmodel.Model {
	t.Helper()
	values := [][]int{
		{0, 1, 0},
		{1, 0, 0},
		{0, 1, 1},
		{0, 1, 2},
		{0, 0, 1},
		{1, 0, 0},
		{0, 0, 1},
	}
	m, err := mcmmodel.NewModel(mcmmodel.Config{NumVars: 3, AlphabetSize: 3})
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}
	data := make([]mcmmodel.Operator, len(values))
	for i, v := range values {
		data[i] = mcmmodel.EncodeValues(v, m.NumPlanes)
	}
	m.LoadData(data)
	return m
}

func TestRGSGeneratorCoversAllPartitionsOfThree(t *testing.T) {
	gen := NewRGSGenerator(3)
	var all [][]int
	for {
		rgs, ok := gen.Advance()
		if !ok {
			break
		}
		all = append(all, rgs)
	}
	// Bell(3) = 5 set partitions.
	if len(all) != 5 {
		t.Fatalf("got %d RGS, want 5 (Bell number of 3)", len(all))
	}
	if all[0][0] != 0 {
		t.Errorf("first RGS should start at the all-zero partition, got %v", all[0])
	}
}

func TestRGSGeneratorResumable(t *testing.T) {
	gen := NewRGSGenerator(3)
	first, _ := gen.Advance()
	second, _ := gen.Advance()
	if first[0] != 0 || second == nil {
		t.Fatalf("unexpected sequence: %v, %v", first, second)
	}
	// Three more advances must succeed, after which the generator is
	// exhausted: five RGS in all for n=3.
	for i := 0; i < 3; i++ {
		if _, ok := gen.Advance(); !ok {
			t.Fatalf("generator exhausted too early at step %d", i)
		}
	}
	if _, ok := gen.Advance(); ok {
		t.Fatal("generator should be exhausted after 5 advances for n=3")
	}
}

func TestExhaustiveT1FindsBestPartition(t *testing.T) {
	m := t1Model(t)
	result, err := Exhaustive(m, DefaultEquiOptimalTolerance)
	if err != nil {
		t.Fatalf("Exhaustive: %v", err)
	}
	// Of the 5 set partitions of {0,1,2}, {0,2}{1} has the highest
	// log-evidence on this dataset (-22.0437...), ahead of the fully joint
	// component (-22.2262...) and every other grouping.
	want := -22.043700887470223
	if math.Abs(result.BestEvidence-want) > 1e-9 {
		t.Errorf("BestEvidence = %.13f, want %.13f", result.BestEvidence, want)
	}
	if len(result.Best) != 1 {
		t.Fatalf("expected a unique best partition, got %d", len(result.Best))
	}
	pair := mcmmodel.BitComponent(0).WithBit(2)
	singleton := mcmmodel.BitComponent(1)
	foundPair, foundSingleton := false, false
	for _, c := range result.Best[0] {
		if c == pair {
			foundPair = true
		}
		if c == singleton {
			foundSingleton = true
		}
	}
	if !foundPair || !foundSingleton {
		t.Errorf("expected components {0,2} and {1} in the best partition, got %+v", result.Best[0])
	}
}

func TestExhaustiveStoresAllEvidenceWhenRequested(t *testing.T) {
	m := t1Model(t)
	m.StoreAllEvidence = true
	_, err := Exhaustive(m, DefaultEquiOptimalTolerance)
	if err != nil {
		t.Fatalf("Exhaustive: %v", err)
	}
	// Bell(3) = 5 distinct set partitions of {0,1,2}.
	if len(m.AllEvidence) != 5 {
		t.Errorf("len(AllEvidence) = %d, want 5", len(m.AllEvidence))
	}
}

func TestExhaustiveRefusesAboveDenseThreshold(t *testing.T) {
	old := mcmmodel.MaxDenseExhaustiveVars
	mcmmodel.MaxDenseExhaustiveVars = 2
	defer func() { mcmmodel.MaxDenseExhaustiveVars = old }()

	m := t1Model(t)
	if _, err := Exhaustive(m, DefaultEquiOptimalTolerance); err == nil {
		t.Fatal("expected NumericLimit error for n=3 above threshold 2")
	}
}
