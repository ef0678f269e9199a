package orchestrator

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/rawblock/mcm-search/internal/gauge"
	"github.com/rawblock/mcm-search/internal/mcmmodel"
	"github.com/rawblock/mcm-search/internal/metrics"
	"github.com/rawblock/mcm-search/internal/search"
)

// Run drives one full invocation: load the dataset, optionally gauge
// transform it, run every requested search mode in the fixed -gt/-es/-gs/-dc
// order, and write the output file (and optional JSON sibling). It returns
// a non-nil error for an invalid config, a dataset that can't be loaded, a
// file that can't be created or written, or a search the Core refuses (the
// exhaustive search's NumericLimit error above MaxDenseExhaustiveVars);
// sections already written to the output file stay there.
func Run(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	runID := uuid.New().String()
	log.Printf("starting run %s for %s (n=%d, q=%d)", runID, cfg.BaseName, cfg.NumVars, cfg.AlphabetSize)

	k := mcmmodel.NumPlanes(cfg.AlphabetSize)
	inputPath := filepath.Join("input", cfg.BaseName+".dat")
	data, err := LoadDataset(inputPath, cfg.NumVars, cfg.AlphabetSize, k)
	if err != nil {
		return err
	}
	log.Printf("loaded %d observations from %s", len(data), inputPath)

	model, err := mcmmodel.NewModel(mcmmodel.Config{NumVars: cfg.NumVars, AlphabetSize: cfg.AlphabetSize})
	if err != nil {
		return err
	}
	model.LoadData(data)

	if err := os.MkdirAll("output", 0o755); err != nil {
		return &mcmmodel.ModelError{Kind: mcmmodel.IoFailure, Message: fmt.Sprintf("create output directory: %v", err)}
	}

	outPath := filepath.Join("output", cfg.BaseName+"_output.dat")
	outFile, err := os.Create(outPath)
	if err != nil {
		return &mcmmodel.ModelError{Kind: mcmmodel.IoFailure, Message: fmt.Sprintf("create %s: %v", outPath, err)}
	}
	defer outFile.Close()

	if err := WriteHeader(outFile, runID, cfg.BaseName, cfg.NumVars, cfg.AlphabetSize); err != nil {
		return &mcmmodel.ModelError{Kind: mcmmodel.IoFailure, Message: err.Error()}
	}

	result := JSONResult{
		RunID:        runID,
		BaseName:     cfg.BaseName,
		NumVars:      cfg.NumVars,
		AlphabetSize: cfg.AlphabetSize,
	}
	representative := make(map[string]mcmmodel.Partition)

	if cfg.GaugeTransform {
		log.Printf("run %s: gauge transform (max_order=%d)", runID, cfg.MaxOrder)
		start := time.Now()
		basis := gauge.FindBestBasis(model.Data, cfg.NumVars, cfg.AlphabetSize, cfg.MaxOrder)
		gauge.TransformData(model.Data, basis, cfg.AlphabetSize)
		model.BestBasis = basis
		duration := time.Since(start)

		if err := WriteGaugeSection(outFile, duration, basis, cfg.NumVars); err != nil {
			return &mcmmodel.ModelError{Kind: mcmmodel.IoFailure, Message: err.Error()}
		}
		for _, op := range basis {
			result.Basis = append(result.Basis, mcmmodel.ComponentString(collapseOperator(op), cfg.NumVars))
		}
	}

	if cfg.Exhaustive {
		start := time.Now()
		res, err := search.Exhaustive(model, search.DefaultEquiOptimalTolerance)
		duration := time.Since(start)
		if err != nil {
			log.Printf("run %s: exhaustive search refused: %v", runID, err)
			return err
		}
		if err := WriteModeSection(outFile, "Exhaustive search", duration, res.Best, res.BestEvidence); err != nil {
			return &mcmmodel.ModelError{Kind: mcmmodel.IoFailure, Message: err.Error()}
		}
		result.Modes = append(result.Modes, summaryOf("exhaustive", duration, res.Best, res.BestEvidence, cfg.NumVars))
		if len(res.Best) > 0 {
			representative["exhaustive"] = res.Best[0]
		}
	}

	if cfg.Greedy {
		var trace search.MergeTrace
		logFile, closeLog, err := cfg.modeLogFile("greedy_search")
		if err != nil {
			return err
		}
		model.LogFile = logFile

		start := time.Now()
		partition, err := search.Greedy(model, &trace)
		duration := time.Since(start)
		if logFile != nil {
			for _, line := range trace.Log() {
				fmt.Fprintln(logFile, line)
			}
		}
		closeLog()
		if err != nil {
			return err
		}
		best := []mcmmodel.Partition{partition}
		if err := WriteModeSection(outFile, "Greedy search", duration, best, model.BestEvidence); err != nil {
			return &mcmmodel.ModelError{Kind: mcmmodel.IoFailure, Message: err.Error()}
		}
		result.Modes = append(result.Modes, summaryOf("greedy", duration, best, model.BestEvidence, cfg.NumVars))
		representative["greedy"] = partition
	}

	if cfg.DivideConquer {
		logFile, closeLog, err := cfg.modeLogFile("divide_and_conquer")
		if err != nil {
			return err
		}
		model.LogFile = logFile

		start := time.Now()
		partition, err := search.DivideAndConquer(model)
		duration := time.Since(start)
		closeLog()
		if err != nil {
			return err
		}
		best := []mcmmodel.Partition{partition}
		if err := WriteModeSection(outFile, "Divide and conquer search", duration, best, model.BestEvidence); err != nil {
			return &mcmmodel.ModelError{Kind: mcmmodel.IoFailure, Message: err.Error()}
		}
		result.Modes = append(result.Modes, summaryOf("divide_and_conquer", duration, best, model.BestEvidence, cfg.NumVars))
		representative["divide_and_conquer"] = partition
	}

	if len(representative) > 1 {
		comparisons := compareModes(representative, cfg.NumVars)
		if err := WriteComparisonSection(outFile, comparisons); err != nil {
			return &mcmmodel.ModelError{Kind: mcmmodel.IoFailure, Message: err.Error()}
		}
		result.Comparisons = comparisons
	}

	if cfg.JSONOutput {
		jsonPath := filepath.Join("output", cfg.BaseName+"_output.json")
		if err := WriteJSONResult(jsonPath, result); err != nil {
			return err
		}
	}

	log.Printf("run %s complete, output written to %s", runID, outPath)
	return nil
}

// compareModes reports pairwise agreement, via Adjusted Rand Index and
// Variation of Information, between every pair of modes that produced a
// representative partition. Pairs are taken in a fixed mode order so the
// output is deterministic regardless of map iteration order.
func compareModes(representative map[string]mcmmodel.Partition, n int) []Comparison {
	order := []string{"exhaustive", "greedy", "divide_and_conquer"}
	var present []string
	for _, mode := range order {
		if _, ok := representative[mode]; ok {
			present = append(present, mode)
		}
	}

	var comparisons []Comparison
	for i := 0; i < len(present); i++ {
		for j := i + 1; j < len(present); j++ {
			rgsA := representative[present[i]].RGS(n)
			rgsB := representative[present[j]].RGS(n)
			comparisons = append(comparisons, Comparison{
				ModeA: present[i],
				ModeB: present[j],
				ARI:   metrics.AdjustedRandIndex(rgsA, rgsB),
				VI:    metrics.VariationOfInformation(rgsA, rgsB),
			})
		}
	}
	return comparisons
}

func summaryOf(mode string, duration time.Duration, best []mcmmodel.Partition, bestEvidence float64, n int) Summary {
	s := Summary{Mode: mode, DurationSecs: duration.Seconds(), BestEvidence: bestEvidence}
	for _, p := range best {
		s.Partitions = append(s.Partitions, partitionStrings(p, n))
	}
	return s
}

// modeLogFile opens output/<base>_<mode>.log when -l was requested for a
// non-exhaustive mode, returning a no-op closer otherwise. The returned
// io.Writer is a genuine nil interface when disabled — never a nil
// *os.File boxed in a non-nil interface — so callers can safely compare it
// to nil.
func (c Config) modeLogFile(mode string) (io.Writer, func(), error) {
	if !c.LogFiles {
		return nil, func() {}, nil
	}
	path := filepath.Join("output", fmt.Sprintf("%s_%s.log", c.BaseName, mode))
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, &mcmmodel.ModelError{Kind: mcmmodel.IoFailure, Message: fmt.Sprintf("create %s: %v", path, err)}
	}
	return f, func() { f.Close() }, nil
}

// collapseOperator folds an operator's k planes into a single component
// whose bit j is 1 iff the operator's coefficient for variable j is
// nonzero, purely so it can reuse ComponentString's LSB-first rendering
// for the JSON summary's human-readable basis listing.
func collapseOperator(op mcmmodel.Operator) mcmmodel.Component {
	var c mcmmodel.Component
	for _, plane := range op {
		c = c.Or(plane)
	}
	return c
}
