// Package values implements the fixed-width bit vector carried by every
// port in an environment.
package values

import "fmt"

// Value is an immutable fixed-width bit vector. Widths up to 64 are backed
// directly by a uint64; this covers every control/status signal, counter,
// and word-sized datapath value exercised by the interpreter core.
type Value struct {
	width uint
	bits  uint64
}

// New builds a Value of the given width, truncating bits to that width.
func New(width uint, bits uint64) Value {
	return Value{width: width, bits: mask(width, bits)}
}

// BitHigh returns the single-bit value 1.
func BitHigh() Value { return Value{width: 1, bits: 1} }

// BitLow returns the single-bit value 0.
func BitLow() Value { return Value{width: 1, bits: 0} }

// Width reports the number of bits in the vector.
func (v Value) Width() uint { return v.width }

// Uint returns the bit vector's unsigned numeric interpretation.
func (v Value) Uint() uint64 { return v.bits }

// AsBool projects the value to a boolean: true iff the width is at least 1
// and the least-significant bit is set.
func (v Value) AsBool() bool { return v.width >= 1 && v.bits&1 == 1 }

// Equal reports whether two values have the same width and bits.
func (v Value) Equal(o Value) bool { return v.width == o.width && v.bits == o.bits }

func (v Value) String() string {
	if v.width == 0 {
		return "<0 bits>"
	}
	return fmt.Sprintf("%d'd%d", v.width, v.bits)
}

func mask(width uint, bits uint64) uint64 {
	if width >= 64 {
		return bits
	}
	return bits & ((uint64(1) << width) - 1)
}
