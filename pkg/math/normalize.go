package math

import (
	"math/bits"

	"github.com/Faultbox/fixgeom/pkg/fixed32"
)

// Sums of raw squares in [unitLo, unitHi] have a Length of exactly One.
const (
	unitLo = 4294901761 // ceil(65535.5²)
	unitHi = 4295032832 // floor(65536.5²)
)

// Normalize returns the unit vector pointing the same way as v. It reports
// false for the zero vector, which has no direction.
//
// The result always has a Length of exactly One, and a vector whose Length is
// already One is returned unchanged, so Normalize is idempotent.
func (v Vector) Normalize() (Vector, bool) {
	if v.IsZero() {
		return Vector{}, false
	}
	if v.Length() == fixed32.One {
		return v, true
	}

	// Rescale so the larger component carries 30 significant bits; the
	// direction is unchanged and the integer square root stays precise.
	x, y := int64(v.X), int64(v.Y)
	shift := 30 - bits.Len64(uint64(max(abs64(x), abs64(y))))
	if shift >= 0 {
		x, y = x<<shift, y<<shift
	} else {
		x, y = x>>-shift, y>>-shift
	}

	l := int64(fixed32.ISqrt(uint64(x*x + y*y)))
	nx := roundDiv(x<<fixed32.FracBits, l)
	ny := roundDiv(y<<fixed32.FracBits, l)
	if !isUnit(nx, ny) {
		nx, ny = nearestUnit(nx, ny, x, y)
	}
	return Vector{fixed32.Fp(nx), fixed32.Fp(ny)}, true
}

// nearestUnit searches the raw neighbours of (nx, ny) for the one with unit
// length that deviates least from the direction (x, y).
func nearestUnit(nx, ny, x, y int64) (int64, int64) {
	bestX, bestY := nx, ny
	bestErr := int64(-1)
	for _, dx := range [...]int64{0, -1, 1} {
		for _, dy := range [...]int64{0, -1, 1} {
			cx, cy := nx+dx, ny+dy
			if !isUnit(cx, cy) {
				continue
			}
			err := abs64(cx*y - cy*x)
			if bestErr < 0 || err < bestErr {
				bestX, bestY, bestErr = cx, cy, err
			}
		}
	}
	return bestX, bestY
}

func isUnit(x, y int64) bool {
	s := x*x + y*y
	return s >= unitLo && s <= unitHi
}

func roundDiv(n, d int64) int64 {
	q, r := abs64(n)/d, abs64(n)%d
	if 2*r >= d {
		q++
	}
	if n < 0 {
		return -q
	}
	return q
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
