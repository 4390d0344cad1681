package fixed32

// Trigonometry runs in Q2.30 so the Taylor terms keep 14 guard bits below the
// Q16.16 result.
const (
	q30Shift = 30
	q30One   = int64(1) << q30Shift

	twoPi30  = 6746518852 // round(2π · 2^30)
	halfPi30 = 1686629713 // round(π/2 · 2^30), exactly twoPi30/4

	degToRad30 = 18740330    // round(π/180 · 2^30)
	radToDeg30 = 61520874802 // round(180/π · 2^30)
)

// Sin returns the sine of an angle in radians.
func (f Fp) Sin() Fp {
	quadrant, x := reduceAngle(f)
	switch quadrant {
	case 0:
		return fromQ30(sinQ30(x))
	case 1:
		return fromQ30(cosQ30(x))
	case 2:
		return fromQ30(-sinQ30(x))
	default:
		return fromQ30(-cosQ30(x))
	}
}

// Cos returns the cosine of an angle in radians.
func (f Fp) Cos() Fp {
	quadrant, x := reduceAngle(f)
	switch quadrant {
	case 0:
		return fromQ30(cosQ30(x))
	case 1:
		return fromQ30(-sinQ30(x))
	case 2:
		return fromQ30(-cosQ30(x))
	default:
		return fromQ30(sinQ30(x))
	}
}

// SinCos returns Sin and Cos with a single range reduction.
func (f Fp) SinCos() (sin, cos Fp) {
	quadrant, x := reduceAngle(f)
	s, c := sinQ30(x), cosQ30(x)
	switch quadrant {
	case 0:
		return fromQ30(s), fromQ30(c)
	case 1:
		return fromQ30(c), fromQ30(-s)
	case 2:
		return fromQ30(-s), fromQ30(-c)
	default:
		return fromQ30(-c), fromQ30(s)
	}
}

// DegToRad converts degrees to radians.
func (f Fp) DegToRad() Fp { return mulShift(int64(f), degToRad30, q30Shift) }

// RadToDeg converts radians to degrees.
func (f Fp) RadToDeg() Fp { return mulShift(int64(f), radToDeg30, q30Shift) }

// reduceAngle maps an angle onto a quadrant index and an offset in [0, π/2)
// expressed in Q2.30.
func reduceAngle(f Fp) (int64, int64) {
	r := (int64(f) << (q30Shift - FracBits)) % twoPi30
	if r < 0 {
		r += twoPi30
	}
	q := r / halfPi30
	if q > 3 {
		q = 3
	}
	return q, r - q*halfPi30
}

// sinQ30 evaluates the Taylor series through x^11 for x in [0, π/2).
func sinQ30(x int64) int64 {
	x2 := (x * x) >> q30Shift
	t := q30One
	for _, k := range [...]int64{110, 72, 42, 20, 6} {
		t = q30One - ((x2*t)>>q30Shift)/k
	}
	return (x * t) >> q30Shift
}

// cosQ30 evaluates the Taylor series through x^12 for x in [0, π/2).
func cosQ30(x int64) int64 {
	x2 := (x * x) >> q30Shift
	t := q30One
	for _, k := range [...]int64{132, 90, 56, 30, 12, 2} {
		t = q30One - ((x2*t)>>q30Shift)/k
	}
	return t
}

// fromQ30 rounds a Q2.30 value to Q16.16, symmetrically around zero.
func fromQ30(v int64) Fp {
	const shift = q30Shift - FracBits
	if v < 0 {
		return Fp(-((-v + 1<<(shift-1)) >> shift))
	}
	return Fp((v + 1<<(shift-1)) >> shift)
}
