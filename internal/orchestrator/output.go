package orchestrator

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rawblock/mcm-search/internal/mcmmodel"
)

// Summary collects everything one mode contributes to the output file and
// (optionally) the JSON sibling: the mode name, how long it took, the
// resulting log-evidence, and the resulting partition(s) (more than one
// only for an equi-optimal exhaustive tie).
type Summary struct {
	Mode         string              `json:"mode"`
	DurationSecs float64             `json:"duration_seconds"`
	BestEvidence float64             `json:"best_log_evidence"`
	Partitions   [][]string          `json:"partitions"`
}

// Comparison holds the agreement between two search modes' best partitions,
// via internal/metrics's Adjusted Rand Index and Variation of Information.
type Comparison struct {
	ModeA string  `json:"mode_a"`
	ModeB string  `json:"mode_b"`
	ARI   float64 `json:"adjusted_rand_index"`
	VI    float64 `json:"variation_of_information"`
}

// JSONResult is the top-level shape written to <name>_output.json when
// -json is requested.
type JSONResult struct {
	RunID        string       `json:"run_id"`
	BaseName     string       `json:"base_name"`
	NumVars      int          `json:"num_vars"`
	AlphabetSize int          `json:"alphabet_size"`
	Basis        []string     `json:"gauge_basis,omitempty"`
	Modes        []Summary    `json:"modes"`
	Comparisons  []Comparison `json:"mode_comparisons,omitempty"`
}

func partitionStrings(p mcmmodel.Partition, n int) []string {
	var out []string
	for _, c := range p {
		if !c.IsZero() {
			out = append(out, mcmmodel.ComponentString(c, n))
		}
	}
	return out
}

// WriteHeader writes the output file's leading run-identification block.
func WriteHeader(w io.Writer, runID, baseName string, n, q int) error {
	_, err := fmt.Fprintf(w, "MCM search run %s\nbase name: %s\nn = %d, q = %d\n\n", runID, baseName, n, q)
	return err
}

// WriteGaugeSection writes the gauge-transform section: duration and the
// basis operators, one per line, each rendered the same way a dataset row
// is (n digit characters, left-to-right variable order).
func WriteGaugeSection(w io.Writer, duration time.Duration, basis []mcmmodel.Operator, n int) error {
	if _, err := fmt.Fprintf(w, "=== Gauge transform (%.6fs) ===\n", duration.Seconds()); err != nil {
		return err
	}
	for i, op := range basis {
		values := mcmmodel.DecodeValues(op, n)
		digits := make([]byte, n)
		for j, v := range values {
			digits[j] = byte('0' + v)
		}
		if _, err := fmt.Fprintf(w, "Operator %d : %s\n", i, digits); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}

// WriteModeSection writes one search mode's section: duration, every
// partition in the best set (more than one only for an exhaustive tie),
// and the best log-evidence.
func WriteModeSection(w io.Writer, modeName string, duration time.Duration, best []mcmmodel.Partition, bestEvidence float64) error {
	if _, err := fmt.Fprintf(w, "=== %s (%.6fs) ===\n", modeName, duration.Seconds()); err != nil {
		return err
	}
	for i, p := range best {
		if len(best) > 1 {
			if _, err := fmt.Fprintf(w, "-- Equi-optimal partition %d --\n", i); err != nil {
				return err
			}
		}
		if err := mcmmodel.PrintPartition(w, p); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "Best log-evidence: %.10f\n\n", bestEvidence); err != nil {
		return err
	}
	return nil
}

// WriteComparisonSection writes one line per pair of search modes, reporting
// how closely their best partitions agree via Adjusted Rand Index and
// Variation of Information.
func WriteComparisonSection(w io.Writer, comparisons []Comparison) error {
	if len(comparisons) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w, "=== Mode comparison ==="); err != nil {
		return err
	}
	for _, c := range comparisons {
		if _, err := fmt.Fprintf(w, "%s vs %s : ARI = %.6f, VI = %.6f\n", c.ModeA, c.ModeB, c.ARI, c.VI); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}

// WriteJSONResult marshals result and writes it to path, creating parent
// directories as needed.
func WriteJSONResult(path string, result JSONResult) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return &mcmmodel.ModelError{Kind: mcmmodel.IoFailure, Message: fmt.Sprintf("create directory for %s: %v", path, err)}
	}
	f, err := os.Create(path)
	if err != nil {
		return &mcmmodel.ModelError{Kind: mcmmodel.IoFailure, Message: fmt.Sprintf("create %s: %v", path, err)}
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return &mcmmodel.ModelError{Kind: mcmmodel.IoFailure, Message: fmt.Sprintf("write %s: %v", path, err)}
	}
	return nil
}
