// Package dim implements the fixed-point scalar used throughout the
// geometry pipeline: coordinates, offsets, tolerances and areas are all
// expressed in Dim, an int64 scaled by a fixed decimal denominator.
package dim

import (
	"math"
	"strconv"
	"strings"
)

// Dim is a fixed-point length/area scalar. One unit equals 1/Denom of a
// real-world millimetre (matching the original's FIXED=3 → thousandths).
type Dim = int64

// Denom is the fixed-point denominator: Dim / Denom == millimetres.
const Denom Dim = 1000

// FromReal converts a real millimetre value into Dim, rounding to the
// nearest representable unit.
func FromReal(mm float64) Dim {
	return Dim(math.Round(mm * float64(Denom)))
}

// ToReal converts a Dim value back into real millimetres.
func ToReal(v Dim) float64 {
	return float64(v) / float64(Denom)
}

// Format renders v as a decimal string with up to places fractional
// digits, trimming trailing zeros and a trailing decimal point. It
// mirrors the original's dimplaces(): split the fixed-point value at
// Denom, print the fraction zero-padded to places, then trim.
func Format(v Dim, places int) string {
	neg := v < 0
	if neg {
		v = -v
	}
	whole := v / Denom
	frac := v % Denom

	// Scale the Denom-wide fraction into a `places`-digit fraction,
	// exactly as the original divides by fixplaces = fixed/10^places.
	var fracStr string
	if places <= 0 {
		fracStr = ""
	} else {
		scaled := frac
		// Denom is decimal (10^n); rescale to `places` digits.
		p := int(math.Round(math.Log10(float64(Denom))))
		if places < p {
			for i := 0; i < p-places; i++ {
				scaled /= 10
			}
		} else if places > p {
			for i := 0; i < places-p; i++ {
				scaled *= 10
			}
		}
		fracStr = padZero(strconv.FormatInt(scaled, 10), places)
	}

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteString(strconv.FormatInt(whole, 10))
	if fracStr != "" {
		b.WriteByte('.')
		b.WriteString(fracStr)
	}
	s := b.String()
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	if s == "" || s == "-" {
		s = "0"
	}
	return s
}

func padZero(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}

// Epsilon is the smallest meaningful difference between two Dim values:
// for the integer representation that is exactly one unit, matching the
// original's use of a single fixed-point increment as its tolerance
// floor (as opposed to the floating-point build, which scales 1 ulp by
// the largest coordinate in play).
const Epsilon Dim = 1

// Sq returns v*v using int64 arithmetic; callers that risk overflow at
// extreme coordinates should use poly's Int128 helpers instead.
func Sq(v Dim) int64 {
	return int64(v) * int64(v)
}

// Abs returns the absolute value of v.
func Abs(v Dim) Dim {
	if v < 0 {
		return -v
	}
	return v
}

// Min returns the smaller of a and b.
func Min(a, b Dim) Dim {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max(a, b Dim) Dim {
	if a > b {
		return a
	}
	return b
}
