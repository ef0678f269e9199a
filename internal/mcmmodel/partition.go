package mcmmodel

import (
	"fmt"
	"io"
)

// Partition is a list of n components (one slot per variable, though most
// slots are empty after merges): the canonical in-memory representation of
// an assignment of variables to Independent Complete Components.
type Partition []Component

// ComponentSize returns the number of variables assigned to c.
func ComponentSize(c Component) int {
	return c.PopCount()
}

// ComponentString renders c as the n-character LSB-first bitstring used in
// the output file format.
func ComponentString(c Component, n int) string {
	return c.String(n)
}

// RGSToPartition expands a restricted growth string over n variables (rgs[i]
// is the 0-based label of the component variable i belongs to, with labels
// assigned in first-appearance order) into the component-bitmask form.
func RGSToPartition(rgs []int, n int) Partition {
	maxLabel := -1
	for _, l := range rgs {
		if l > maxLabel {
			maxLabel = l
		}
	}
	p := make(Partition, n)
	for i := 0; i < n; i++ {
		p[rgs[i]] = p[rgs[i]].WithBit(i)
	}
	return p
}

// RGS converts a partition back to restricted growth string form: component
// labels are assigned 0, 1, 2, ... in order of each variable's first
// appearance scanning left to right.
func (p Partition) RGS(n int) []int {
	owner := make([]int, n)
	for i := 0; i < n; i++ {
		owner[i] = -1
		for ci, c := range p {
			if c.Bit(i) == 1 {
				owner[i] = ci
				break
			}
		}
	}
	relabel := make(map[int]int)
	rgs := make([]int, n)
	next := 0
	for i := 0; i < n; i++ {
		label, ok := relabel[owner[i]]
		if !ok {
			label = next
			relabel[owner[i]] = label
			next++
		}
		rgs[i] = label
	}
	return rgs
}

// PrintPartition writes a partition's nonempty components, in slot order,
// one "Component <k> : <bitstring>" line per component — the format shared
// by the output file and the per-mode search log files.
func PrintPartition(w io.Writer, p Partition) error {
	n := len(p)
	idx := 0
	for _, c := range p {
		if c.IsZero() {
			continue
		}
		if _, err := fmt.Fprintf(w, "Component %d : %s\n", idx, ComponentString(c, n)); err != nil {
			return err
		}
		idx++
	}
	return nil
}
