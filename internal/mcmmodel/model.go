package mcmmodel

import (
	"io"
	"math"

	"github.com/go-playground/validator/v10"
)

// MaxDenseExhaustiveVars bounds the system sizes the exhaustive search is
// allowed to run with the dense evidence cache. A dense cache holds
// 2^n - 1 float64s; at n=27 that's already ~1GB, and it doubles with every
// additional variable, so we refuse rather than let a bigger n silently
// exhaust memory. Exported so the orchestrator (or a test) can lower it
// further on a constrained machine.
var MaxDenseExhaustiveVars = 27

var configValidator = validator.New()

// Config is the Core's system description: the number of variables and the
// (common) alphabet size every variable is drawn from.
type Config struct {
	NumVars      int `validate:"required,min=1,max=128"`
	AlphabetSize int `validate:"required,min=2"`
}

// ValidateConfig checks cfg against its struct tags, returning an
// InputOutOfRange ModelError describing the first violation.
func ValidateConfig(cfg Config) error {
	if err := configValidator.Struct(cfg); err != nil {
		return newModelError(InputOutOfRange, "%v", err)
	}
	return nil
}

// Model holds everything an evidence computation or a search needs: the
// encoded dataset, the precomputed pow_q table, and the dual evidence
// cache (dense when running exhaustively over a small enough n, sparse
// otherwise).
type Model struct {
	NumVars   int
	Q         int
	N         int
	NumPlanes int
	PowQ      []float64

	Data []Operator // N observations, each a NumPlanes-length plane vector

	Exhaustive  bool
	denseCache  []float64
	sparseCache map[Component]float64

	BestMCM      []Partition
	BestEvidence float64
	BestBasis    []Operator

	LogFile          io.Writer
	StoreAllEvidence bool
	AllEvidence      []float64
}

// NewModel validates cfg and builds an empty Model ready to accept a
// dataset via LoadData.
func NewModel(cfg Config) (*Model, error) {
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	k := NumPlanes(cfg.AlphabetSize)
	powQ := make([]float64, cfg.NumVars+1)
	elem := 1.0
	for i := 0; i <= cfg.NumVars; i++ {
		powQ[i] = elem
		elem *= float64(cfg.AlphabetSize)
	}
	return &Model{
		NumVars:      cfg.NumVars,
		Q:            cfg.AlphabetSize,
		NumPlanes:    k,
		PowQ:         powQ,
		sparseCache:  make(map[Component]float64),
		BestEvidence: math.Inf(-1),
	}, nil
}

// LoadData installs the encoded dataset and records its observation count.
func (m *Model) LoadData(data []Operator) {
	m.Data = data
	m.N = len(data)
}

// ResetForExhaustive switches the Model into dense-cache mode, sized for
// exhaustive enumeration. It refuses when NumVars exceeds
// MaxDenseExhaustiveVars.
func (m *Model) ResetForExhaustive() error {
	if m.NumVars > MaxDenseExhaustiveVars {
		return newModelError(NumericLimit, "exhaustive search refused: n=%d exceeds MaxDenseExhaustiveVars=%d", m.NumVars, MaxDenseExhaustiveVars)
	}
	m.Exhaustive = true
	size := uint64(1) << uint(m.NumVars)
	m.denseCache = make([]float64, size-1)
	return nil
}

// ClearSparseCache discards the sparse evidence cache. The divide-and-conquer
// search clears it at the start of each run since its ICC evaluations are
// not reused across invocations.
func (m *Model) ClearSparseCache() {
	m.sparseCache = make(map[Component]float64)
}
