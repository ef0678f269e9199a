// Package search implements the three MCM search strategies: exhaustive
// restricted-growth-string enumeration, greedy pairwise-merge agglomeration,
// and recursive divide-and-conquer splitting.
package search

import "fmt"

// MergeTrace is a weighted union-find over variable indices that records
// *why* the greedy search's final partition looks the way it does: which
// variable merged into which cluster, and in what order. It is a logging
// aid, not part of the partition representation itself — greedy search
// still represents its working partition as a mcmmodel.Partition.
type MergeTrace struct {
	parent []int
	rank   []int
	size   []int
	log    []string
}

// Reset prepares the trace for n singleton variables.
func (t *MergeTrace) Reset(n int) {
	t.parent = make([]int, n)
	t.rank = make([]int, n)
	t.size = make([]int, n)
	for i := range t.parent {
		t.parent[i] = i
		t.size[i] = 1
	}
	t.log = nil
}

// Find returns the root of i's cluster, path-compressing along the way.
func (t *MergeTrace) Find(i int) int {
	if t.parent[i] != i {
		t.parent[i] = t.Find(t.parent[i])
	}
	return t.parent[i]
}

// Union merges the clusters containing i and j (union-by-rank) and appends
// a human-readable line to the trace. It returns false if i and j were
// already in the same cluster.
func (t *MergeTrace) Union(i, j int) bool {
	ri, rj := t.Find(i), t.Find(j)
	if ri == rj {
		return false
	}
	if t.rank[ri] < t.rank[rj] {
		ri, rj = rj, ri
	}
	t.parent[rj] = ri
	t.size[ri] += t.size[rj]
	if t.rank[ri] == t.rank[rj] {
		t.rank[ri]++
	}
	t.log = append(t.log, fmt.Sprintf("variable %d merged into cluster rooted at %d (size %d)", j, ri, t.size[ri]))
	return true
}

// Log returns the recorded merge history, oldest first.
func (t *MergeTrace) Log() []string {
	return t.log
}
