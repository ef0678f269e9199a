// Package mcmmodel implements the Core of the Minimally Complex Model search
// engine: the bit-pack codec, the spin operator algebra, the partition
// representation, and the Dirichlet-multinomial evidence engine with its
// dense/sparse memoization. Everything in this package is pure, synchronous,
// and single-threaded by design — it never touches a file or a socket.
package mcmmodel

import "math/bits"

// MaxVars is the largest system size the Core accepts. A component mask
// needs at least 128 bits to address every variable, so Component is backed
// by two uint64 lanes rather than a native machine integer.
const MaxVars = 128

// Component is a bitmask over variable indices [0, MaxVars): bit j is set
// iff variable j belongs to this component. The zero value is the empty
// component. Two Components compare equal with == because both fields are
// plain uint64s, so Component is usable directly as a map key.
type Component struct {
	Lo uint64 // bits 0..63
	Hi uint64 // bits 64..127
}

// BitComponent returns the component containing only variable i.
func BitComponent(i int) Component {
	if i < 64 {
		return Component{Lo: uint64(1) << uint(i)}
	}
	return Component{Hi: uint64(1) << uint(i-64)}
}

// WithBit returns c with variable i additionally set.
func (c Component) WithBit(i int) Component {
	return c.Or(BitComponent(i))
}

// Bit returns 1 if variable i belongs to c, 0 otherwise.
func (c Component) Bit(i int) int {
	if i < 64 {
		return int((c.Lo >> uint(i)) & 1)
	}
	return int((c.Hi >> uint(i-64)) & 1)
}

// And returns the bitwise AND of c and o.
func (c Component) And(o Component) Component {
	return Component{Lo: c.Lo & o.Lo, Hi: c.Hi & o.Hi}
}

// Or returns the bitwise OR of c and o.
func (c Component) Or(o Component) Component {
	return Component{Lo: c.Lo | o.Lo, Hi: c.Hi | o.Hi}
}

// AndNot returns c with every bit also set in o cleared.
func (c Component) AndNot(o Component) Component {
	return Component{Lo: c.Lo &^ o.Lo, Hi: c.Hi &^ o.Hi}
}

// IsZero reports whether c is the empty component.
func (c Component) IsZero() bool {
	return c.Lo == 0 && c.Hi == 0
}

// PopCount returns the number of variables in c, i.e. its size as an ICC.
func (c Component) PopCount() int {
	return bits.OnesCount64(c.Lo) + bits.OnesCount64(c.Hi)
}

// AsIndex converts a nonzero component to a dense-cache index (component-1).
// Only valid when the component's highest set bit is below 64, which is
// guaranteed for the n this package allows into the dense cache
// (see MaxDenseExhaustiveVars in model.go).
func (c Component) AsIndex() uint64 {
	return c.Lo - 1
}

// String returns the n-character LSB-first bitstring representation used in
// output files: character j is '1' iff variable j belongs to c.
func (c Component) String(n int) string {
	out := make([]byte, n)
	for j := 0; j < n; j++ {
		if c.Bit(j) == 1 {
			out[j] = '1'
		} else {
			out[j] = '0'
		}
	}
	return string(out)
}
