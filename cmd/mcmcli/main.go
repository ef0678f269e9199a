// Command mcmcli runs the Minimally Complex Model search over a categorical
// dataset: optionally gauge-transforms it, then runs any combination of
// exhaustive, greedy, and divide-and-conquer search, writing results under
// output/.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/rawblock/mcm-search/internal/orchestrator"
)

func main() {
	baseName := flag.String("f", "", "base filename (dataset read from input/<name>.dat)")
	numVars := flag.Int("n", 0, "number of variables (1..128, required)")
	alphabetSize := flag.Int("q", 0, "alphabet size (>=2, required)")
	logFiles := flag.Bool("l", false, "enable per-step log files for non-exhaustive searches")
	gaugeTransform := flag.Bool("gt", false, "run the gauge transform before the requested search(es)")
	exhaustive := flag.Bool("es", false, "run exhaustive search")
	greedy := flag.Bool("gs", false, "run greedy search")
	divideConquer := flag.Bool("dc", false, "run divide-and-conquer search")
	jsonOutput := flag.Bool("json", false, "additionally write a JSON result summary")
	maxOrder := flag.Int("max-order", 4, "maximum operator support the gauge transform considers")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s -f <name> -n <vars> -q <alphabet> [-gt] [-es] [-gs] [-dc] [-l] [-json]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if err := requireFlag("f", *baseName); err != nil {
		fail(err)
	}
	if err := requireFlag("n", *numVars); err != nil {
		fail(err)
	}
	if err := requireFlag("q", *alphabetSize); err != nil {
		fail(err)
	}

	cfg := orchestrator.Config{
		BaseName:       *baseName,
		NumVars:        *numVars,
		AlphabetSize:   *alphabetSize,
		LogFiles:       *logFiles,
		GaugeTransform: *gaugeTransform,
		Exhaustive:     *exhaustive,
		Greedy:         *greedy,
		DivideConquer:  *divideConquer,
		JSONOutput:     *jsonOutput,
		MaxOrder:       *maxOrder,
	}

	if err := orchestrator.Run(cfg); err != nil {
		log.Fatalf("mcmcli: %v", err)
	}
}

// requireFlag reports a usage error and a non-zero process exit when a
// required flag was left at its zero value, so a missing -f/-n/-q is never
// indistinguishable from a real run to a calling script.
func requireFlag(name string, value interface{}) error {
	zero := false
	switch v := value.(type) {
	case string:
		zero = v == ""
	case int:
		zero = v == 0
	}
	if zero {
		return fmt.Errorf("missing required flag -%s", name)
	}
	return nil
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, err)
	flag.Usage()
	os.Exit(2)
}
