package search

import (
	"fmt"

	"github.com/rawblock/mcm-search/internal/mcmmodel"
)

// Greedy starts from the independent partition (n singleton components) and
// repeatedly merges the pair of non-empty components with the largest
// evidence gain, stopping when no merge strictly improves the log-evidence.
// Ties among candidate pairs are broken by ascending (i,j), the first pair
// found in iteration order, for determinism. If trace is non-nil it
// receives a union-find record of every accepted merge.
func Greedy(model *mcmmodel.Model, trace *MergeTrace) (mcmmodel.Partition, error) {
	model.Exhaustive = false

	partition := make(mcmmodel.Partition, model.NumVars)
	for i := 0; i < model.NumVars; i++ {
		partition[i] = mcmmodel.BitComponent(i)
	}
	if trace != nil {
		trace.Reset(model.NumVars)
	}

	if model.LogFile != nil {
		fmt.Fprintln(model.LogFile, "Start greedy merging procedure")
		mcmmodel.PrintPartition(model.LogFile, partition)
	}

	for {
		bestDiff := 0.0
		bestI, bestJ := -1, -1

		for i := 0; i < model.NumVars; i++ {
			if partition[i].IsZero() {
				continue
			}
			evI := model.GetEvidenceICC(partition[i])
			for j := i + 1; j < model.NumVars; j++ {
				if partition[j].IsZero() {
					continue
				}
				evJ := model.GetEvidenceICC(partition[j])
				merged := partition[i].Or(partition[j])
				diff := model.GetEvidenceICC(merged) - evI - evJ
				if diff > bestDiff {
					bestDiff = diff
					bestI, bestJ = i, j
				}
			}
		}

		if bestI < 0 {
			break
		}

		partition[bestI] = partition[bestI].Or(partition[bestJ])
		partition[bestJ] = mcmmodel.Component{}
		if trace != nil {
			trace.Union(bestI, bestJ)
		}
		if model.LogFile != nil {
			fmt.Fprintf(model.LogFile, "\nMerging components %d and %d  Evidence difference: %g\n", bestI, bestJ, bestDiff)
			mcmmodel.PrintPartition(model.LogFile, partition)
		}
	}

	model.BestMCM = []mcmmodel.Partition{partition}
	model.BestEvidence = model.CalcEvidence(partition)
	return partition, nil
}
