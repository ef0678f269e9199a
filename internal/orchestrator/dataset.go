package orchestrator

import (
	"bufio"
	"fmt"
	"os"

	"github.com/rawblock/mcm-search/internal/mcmmodel"
)

// LoadDataset reads an ASCII dataset file: one observation per line, the
// first n characters of each line being digit values in [0,q). Trailing
// content past column n is ignored. A blank line anywhere is rejected —
// the format has no notion of a mid-file blank separator.
func LoadDataset(path string, n, q, k int) ([]mcmmodel.Operator, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &mcmmodel.ModelError{Kind: mcmmodel.IoFailure, Message: fmt.Sprintf("open dataset %s: %v", path, err)}
	}
	defer f.Close()

	var data []mcmmodel.Operator
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" {
			return nil, &mcmmodel.ModelError{Kind: mcmmodel.MalformedObservation, Message: fmt.Sprintf("%s:%d: empty line is not a valid observation", path, lineNo)}
		}
		if len(line) < n {
			return nil, &mcmmodel.ModelError{Kind: mcmmodel.MalformedObservation, Message: fmt.Sprintf("%s:%d: line has %d characters, want at least %d", path, lineNo, len(line), n)}
		}
		obs, err := mcmmodel.ConvertObservation(line[:n], n, q, k)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, lineNo, err)
		}
		data = append(data, obs)
	}
	if err := scanner.Err(); err != nil {
		return nil, &mcmmodel.ModelError{Kind: mcmmodel.IoFailure, Message: fmt.Sprintf("read dataset %s: %v", path, err)}
	}
	if len(data) == 0 {
		return nil, &mcmmodel.ModelError{Kind: mcmmodel.IoFailure, Message: fmt.Sprintf("%s: dataset is empty", path)}
	}
	return data, nil
}
