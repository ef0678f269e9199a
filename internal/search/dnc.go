package search

import (
	"fmt"
	"math"

	"github.com/rawblock/mcm-search/internal/mcmmodel"
)

// DivideAndConquer starts from the complete partition (one component
// holding every variable) and recursively splits it: division(from, to)
// sweeps single-variable moves out of partition[from] into partition[to],
// keeps the best split seen, and recurses into both halves once a split is
// accepted.
func DivideAndConquer(model *mcmmodel.Model) (mcmmodel.Partition, error) {
	model.Exhaustive = false
	model.ClearSparseCache()

	partition := make(mcmmodel.Partition, model.NumVars)
	for i := 0; i < model.NumVars; i++ {
		partition[0] = partition[0].WithBit(i)
	}
	model.BestMCM = []mcmmodel.Partition{partition}

	if model.LogFile != nil {
		fmt.Fprintln(model.LogFile, "Start divide and conquer procedure")
	}

	division(model, partition, 0, 1)

	model.BestEvidence = model.CalcEvidence(partition)
	model.BestMCM = []mcmmodel.Partition{partition}
	return partition, nil
}

// division attempts to split partition[moveFrom] into partition[moveFrom]
// and partition[moveTo], then recurses into whichever slots ended up
// nonempty. It returns the index of the first still-unused empty slot.
//
// When the component being split has exactly two members, the inner sweep
// runs once and stops (m > 2 required to keep sweeping) rather than
// reducing to a single move. A 2-member split can still happen — it's
// decided in that one sweep — which is exercised by
// TestDivideAndConquerSplitsTwoMemberComponent.
func division(model *mcmmodel.Model, partition mcmmodel.Partition, moveFrom, moveTo int) int {
	nMembers := mcmmodel.ComponentSize(partition[moveFrom])
	if nMembers <= 1 {
		return moveTo
	}

	working := make(mcmmodel.Partition, len(partition))
	copy(working, partition)

	bestDiff := 0.0
	evidenceUnsplit := model.GetEvidenceICC(working[moveFrom])

	remaining := nMembers
	if nMembers > 2 {
		remaining = nMembers - 1
	}

	for remaining > 1 {
		tmpBest := math.Inf(-1)
		component1 := working[moveFrom]
		component2 := working[moveTo]

		if model.LogFile != nil {
			fmt.Fprintf(model.LogFile, "\nStart moving variables from component %d to component %d\n", moveFrom, moveTo)
			mcmmodel.PrintPartition(model.LogFile, working)
		}

		for i := 0; i <= remaining; i++ {
			member := nthMember(component1, i+1)
			c1 := component1.AndNot(member)
			c2 := component2.Or(member)

			diff := model.GetEvidenceICC(c1) + model.GetEvidenceICC(c2) - evidenceUnsplit
			if diff > tmpBest {
				tmpBest = diff
				working[moveFrom] = c1
				working[moveTo] = c2
				if model.LogFile != nil {
					fmt.Fprintf(model.LogFile, "\nBest intermediate split: moving variable %d from component %d to component %d  Evidence difference: %g\n", memberIndex(member), moveFrom, moveTo, tmpBest)
					mcmmodel.PrintPartition(model.LogFile, working)
				}
			}
		}

		if tmpBest > bestDiff {
			bestDiff = tmpBest
			partition[moveFrom] = working[moveFrom]
			partition[moveTo] = working[moveTo]
			if model.LogFile != nil {
				fmt.Fprintln(model.LogFile, "\nNew best split")
				mcmmodel.PrintPartition(model.LogFile, working)
			}
		}
		remaining--
	}

	if partition[moveTo].IsZero() {
		return moveTo
	}

	next := division(model, partition, moveFrom, moveTo+1)
	next = division(model, partition, moveTo, next)
	return next
}

// nthMember returns the component containing only the i-th set bit of c
// (1-indexed, scanning from the LSB).
func nthMember(c mcmmodel.Component, i int) mcmmodel.Component {
	counter := 0
	for pos := 0; pos < mcmmodel.MaxVars; pos++ {
		if c.Bit(pos) == 1 {
			counter++
			if counter == i {
				return mcmmodel.BitComponent(pos)
			}
		}
	}
	return mcmmodel.Component{}
}

func memberIndex(member mcmmodel.Component) int {
	for pos := 0; pos < mcmmodel.MaxVars; pos++ {
		if member.Bit(pos) == 1 {
			return pos
		}
	}
	return -1
}
