package poly

import (
	"math/bits"

	"github.com/revk3d/e3dgo/dim"
)

// Int128 is a signed 128-bit integer, used to evaluate cross products
// of Dim vectors without risking int64 overflow at extreme
// coordinates — the same robustness concern the teacher clipping
// library's math128.go addresses for its own edge intersection tests,
// adapted here to the dim.Dim domain instead of Point64.
type Int128 struct {
	Hi int64
	Lo uint64
}

// NewInt128 creates an Int128 from a 64-bit integer.
func NewInt128(v int64) Int128 {
	var hi int64
	if v < 0 {
		hi = -1
	}
	return Int128{Hi: hi, Lo: uint64(v)}
}

// IsNegative reports whether i < 0.
func (i Int128) IsNegative() bool { return i.Hi < 0 }

// Negate returns -i (two's complement).
func (i Int128) Negate() Int128 {
	lo := ^i.Lo + 1
	hi := ^i.Hi
	if lo == 0 {
		hi++
	}
	return Int128{Hi: hi, Lo: lo}
}

// Add returns i+other.
func (i Int128) Add(other Int128) Int128 {
	lo, carry := bits.Add64(i.Lo, other.Lo, 0)
	hi, _ := bits.Add64(uint64(i.Hi), uint64(other.Hi), carry)
	return Int128{Hi: int64(hi), Lo: lo}
}

// Sub returns i-other.
func (i Int128) Sub(other Int128) Int128 {
	lo, borrow := bits.Sub64(i.Lo, other.Lo, 0)
	hi, _ := bits.Sub64(uint64(i.Hi), uint64(other.Hi), borrow)
	return Int128{Hi: int64(hi), Lo: lo}
}

// Cmp returns -1, 0 or 1 as i is less than, equal to, or greater than other.
func (i Int128) Cmp(other Int128) int {
	if i.Hi != other.Hi {
		if i.Hi < other.Hi {
			return -1
		}
		return 1
	}
	if i.Lo == other.Lo {
		return 0
	}
	if i.Lo < other.Lo {
		return -1
	}
	return 1
}

// Sign returns -1, 0 or 1 as i is negative, zero or positive.
func (i Int128) Sign() int {
	return i.Cmp(Int128{})
}

// Mul64 multiplies i by a 64-bit integer, keeping the full 128-bit
// product (truncating any overflow beyond 128 bits, which cannot occur
// for the Dim-scale values this package deals with).
func (i Int128) Mul64(val int64) Int128 {
	if val == 0 {
		return Int128{}
	}
	negative := i.IsNegative() != (val < 0)
	abs := i
	if i.IsNegative() {
		abs = i.Negate()
	}
	av := val
	if av < 0 {
		av = -av
	}
	loHi, loLo := bits.Mul64(abs.Lo, uint64(av))
	_, hiLo := bits.Mul64(uint64(abs.Hi), uint64(av))
	hi, _ := bits.Add64(loHi, hiLo, 0)
	result := Int128{Hi: int64(hi), Lo: loLo}
	if negative {
		result = result.Negate()
	}
	return result
}

// CrossProduct128 computes the z-component of (b-a) x (c-a) for three
// Dim-coordinate points, using 128-bit intermediates so the result is
// exact even when coordinates are near the fixed-point range limit.
// Its sign is the orientation test used to break sweep-order ties
// between two segments sharing a start point.
func CrossProduct128(ax, ay, bx, by, cx, cy dim.Dim) Int128 {
	v1x, v1y := bx-ax, by-ay
	v2x, v2y := cx-ax, cy-ay
	term1 := NewInt128(int64(v1x)).Mul64(int64(v2y))
	term2 := NewInt128(int64(v1y)).Mul64(int64(v2x))
	return term1.Sub(term2)
}
