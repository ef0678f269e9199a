package mcmmodel

import "testing"

func TestNewModelRejectsInvalidConfig(t *testing.T) {
	cases := []Config{
		{NumVars: 0, AlphabetSize: 3},
		{NumVars: 129, AlphabetSize: 3},
		{NumVars: 3, AlphabetSize: 1},
	}
	for _, cfg := range cases {
		if _, err := NewModel(cfg); err == nil {
			t.Errorf("NewModel(%+v) should have been rejected", cfg)
		} else if me, ok := err.(*ModelError); !ok || me.Kind != InputOutOfRange {
			t.Errorf("NewModel(%+v) error = %v, want InputOutOfRange", cfg, err)
		}
	}
}

func TestResetForExhaustiveRefusesAboveThreshold(t *testing.T) {
	old := MaxDenseExhaustiveVars
	MaxDenseExhaustiveVars = 10
	defer func() { MaxDenseExhaustiveVars = old }()

	m, err := NewModel(Config{NumVars: 11, AlphabetSize: 2})
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}
	err = m.ResetForExhaustive()
	if err == nil {
		t.Fatal("expected NumericLimit error above MaxDenseExhaustiveVars")
	}
	me, ok := err.(*ModelError)
	if !ok || me.Kind != NumericLimit {
		t.Errorf("error = %v, want NumericLimit", err)
	}
}

func TestResetForExhaustiveAllowsAtThreshold(t *testing.T) {
	old := MaxDenseExhaustiveVars
	MaxDenseExhaustiveVars = 10
	defer func() { MaxDenseExhaustiveVars = old }()

	m, err := NewModel(Config{NumVars: 10, AlphabetSize: 2})
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}
	if err := m.ResetForExhaustive(); err != nil {
		t.Fatalf("ResetForExhaustive at threshold should succeed: %v", err)
	}
}

func TestPowQTable(t *testing.T) {
	m, err := NewModel(Config{NumVars: 4, AlphabetSize: 3})
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}
	want := []float64{1, 3, 9, 27, 81}
	for i, w := range want {
		if m.PowQ[i] != w {
			t.Errorf("PowQ[%d] = %v, want %v", i, m.PowQ[i], w)
		}
	}
}
