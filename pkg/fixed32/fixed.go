// Package fixed32 provides a Q16.16 fixed-point number for deterministic math.
//
// Every operation is integer-only, so results are bit-identical on every
// platform. Arithmetic saturates at MaxValue and MinValue instead of
// wrapping, and every rounding step rounds to nearest with ties away from
// zero.
package fixed32

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Q16.16 layout
const (
	FracBits = 16
	scale    = 1 << FracBits
	half     = 1 << (FracBits - 1)
)

// Fp is a signed Q16.16 fixed-point number.
type Fp int32

// Well-known values.
const (
	Zero     Fp = 0
	One      Fp = scale
	NegOne   Fp = -scale
	Two      Fp = 2 * scale
	Half     Fp = half
	Epsilon  Fp = 1
	MaxValue Fp = math.MaxInt32
	MinValue Fp = math.MinInt32

	Pi     Fp = 205887 // π
	HalfPi Fp = 102944 // π/2
	TwoPi  Fp = 411775 // 2π
)

// FromRaw wraps a raw Q16.16 bit pattern.
func FromRaw(raw int32) Fp { return Fp(raw) }

// FromInt converts an integer, saturating outside [-32768, 32767].
func FromInt(i int) Fp {
	if i > math.MaxInt16 {
		return MaxValue
	}
	if i < math.MinInt16 {
		return MinValue
	}
	return Fp(int32(i) << FracBits)
}

// FromFloat converts a float, rounding to the nearest raw unit with ties away
// from zero. NaN becomes Zero; out-of-range values saturate.
func FromFloat(f float64) Fp {
	if math.IsNaN(f) {
		return Zero
	}
	return saturate(math.Round(f * scale))
}

// Parse reads a decimal number such as "-2.5" or "10".
func Parse(s string) (Fp, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return Zero, fmt.Errorf("fixed32: parsing %q: %w", s, err)
	}
	return FromFloat(f), nil
}

func saturate(v float64) Fp {
	if v >= math.MaxInt32 {
		return MaxValue
	}
	if v <= math.MinInt32 {
		return MinValue
	}
	return Fp(int32(v))
}

func clamp64(v int64) Fp {
	if v > math.MaxInt32 {
		return MaxValue
	}
	if v < math.MinInt32 {
		return MinValue
	}
	return Fp(v)
}

// Raw returns the underlying bit pattern.
func (f Fp) Raw() int32 { return int32(f) }

// Int returns the integer part, rounded toward negative infinity.
func (f Fp) Int() int { return int(f >> FracBits) }

// Ceil returns the smallest integer not below f.
func (f Fp) Ceil() int { return int((int64(f) + scale - 1) >> FracBits) }

// Float64 returns the exact value as a float64.
func (f Fp) Float64() float64 { return float64(f) / scale }

// Float32 returns the value as a float32.
func (f Fp) Float32() float32 { return float32(f.Float64()) }

// String returns the shortest decimal that parses back to the same value.
func (f Fp) String() string {
	return strconv.FormatFloat(f.Float64(), 'f', -1, 64)
}

// Format returns the value with prec digits after the point.
// A negative prec behaves like String.
func (f Fp) Format(prec int) string {
	if prec < 0 {
		return f.String()
	}
	return strconv.FormatFloat(f.Float64(), 'f', prec, 64)
}
