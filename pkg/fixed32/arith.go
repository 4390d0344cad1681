package fixed32

import "math/bits"

// --- Arithmetic ---

// Add returns f + g, saturating.
func (f Fp) Add(g Fp) Fp { return clamp64(int64(f) + int64(g)) }

// Sub returns f - g, saturating.
func (f Fp) Sub(g Fp) Fp { return clamp64(int64(f) - int64(g)) }

// Neg returns -f. Negating MinValue saturates to MaxValue.
func (f Fp) Neg() Fp { return clamp64(-int64(f)) }

// Abs returns |f|, saturating like Neg.
func (f Fp) Abs() Fp {
	if f < 0 {
		return f.Neg()
	}
	return f
}

// Mul returns f * g rounded to the nearest raw unit.
func (f Fp) Mul(g Fp) Fp {
	p := int64(f) * int64(g)
	if p >= 0 {
		return clamp64((p + half) >> FracBits)
	}
	return clamp64(-((-p + half) >> FracBits))
}

// Div returns f / g rounded to the nearest raw unit.
// Division by zero saturates by the sign of f; 0/0 is 0.
func (f Fp) Div(g Fp) Fp {
	if g == 0 {
		switch {
		case f > 0:
			return MaxValue
		case f < 0:
			return MinValue
		}
		return Zero
	}
	n := int64(f) << FracBits
	d := int64(g)
	negative := (n < 0) != (d < 0)
	if n < 0 {
		n = -n
	}
	if d < 0 {
		d = -d
	}
	q, r := n/d, n%d
	if 2*r >= d {
		q++
	}
	if negative {
		return clamp64(-q)
	}
	return clamp64(q)
}

// Sqrt returns the square root rounded to the nearest raw unit.
// Negative input returns Zero.
func (f Fp) Sqrt() Fp {
	if f <= 0 {
		return Zero
	}
	return Fp(ISqrt(uint64(f) << FracBits))
}

// ISqrt returns the integer square root of n rounded to nearest.
func ISqrt(n uint64) uint64 {
	r := isqrtFloor(n)
	if n-r*r > r {
		r++
	}
	return r
}

// isqrtFloor runs Newton's method from an initial guess above the root.
func isqrtFloor(n uint64) uint64 {
	if n < 2 {
		return n
	}
	x := uint64(1) << ((bits.Len64(n) + 1) / 2)
	for {
		y := (x + n/x) >> 1
		if y >= x {
			return x
		}
		x = y
	}
}

// mulShift computes round(a * c / 2^shift) with a 128-bit intermediate.
func mulShift(a int64, c uint64, shift uint) Fp {
	negative := a < 0
	ua := uint64(a)
	if negative {
		ua = uint64(-a)
	}
	hi, lo := bits.Mul64(ua, c)
	lo, carry := bits.Add64(lo, 1<<(shift-1), 0)
	hi += carry
	r := (hi << (64 - shift)) | (lo >> shift)
	if hi>>shift != 0 || r > 1<<31 {
		if negative {
			return MinValue
		}
		return MaxValue
	}
	if negative {
		return clamp64(-int64(r))
	}
	return clamp64(int64(r))
}

// --- Comparison ---

// Cmp returns -1, 0 or +1.
func (f Fp) Cmp(g Fp) int {
	switch {
	case f < g:
		return -1
	case f > g:
		return 1
	}
	return 0
}

// Less reports whether f < g.
func (f Fp) Less(g Fp) bool { return f < g }

// IsZero reports whether f is exactly zero.
func (f Fp) IsZero() bool { return f == 0 }

// IsNeg reports whether f is below zero.
func (f Fp) IsNeg() bool { return f < 0 }

// Min returns the smaller of a and b.
func Min(a, b Fp) Fp {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max(a, b Fp) Fp {
	if a > b {
		return a
	}
	return b
}
