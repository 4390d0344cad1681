package fixed32

import "golang.org/x/image/math/fixed"

// ToInt26_6 converts to the 26.6 format used by x/image font metrics,
// rounding away the 10 extra fractional bits.
func (f Fp) ToInt26_6() fixed.Int26_6 {
	const shift = FracBits - 6
	v := int64(f)
	if v < 0 {
		return fixed.Int26_6(-((-v + 1<<(shift-1)) >> shift))
	}
	return fixed.Int26_6((v + 1<<(shift-1)) >> shift)
}

// FromInt26_6 converts a 26.6 value, saturating outside the Q16.16 range.
func FromInt26_6(v fixed.Int26_6) Fp {
	return clamp64(int64(v) << (FracBits - 6))
}
