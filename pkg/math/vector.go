// Package math provides deterministic 2D vectors and rectangles built on
// Q16.16 fixed-point numbers.
//
// All types are plain values. Every method returns a new value and none of
// them allocate, so they are safe to use from any number of goroutines.
// Equality is exact: two vectors are equal only when both components have the
// same raw bits. There is no epsilon comparison.
package math

import (
	"image"

	"golang.org/x/image/math/fixed"

	"github.com/Faultbox/fixgeom/pkg/fixed32"
)

// Vector is a 2D vector.
type Vector struct {
	X, Y fixed32.Fp
}

// NewVector returns a vector with the given components.
func NewVector(x, y fixed32.Fp) Vector {
	return Vector{x, y}
}

// VectorFromInts converts integer components with fixed32.FromInt.
func VectorFromInts(x, y int) Vector {
	return Vector{fixed32.FromInt(x), fixed32.FromInt(y)}
}

// VectorFromFloats converts float components with fixed32.FromFloat.
func VectorFromFloats(x, y float64) Vector {
	return Vector{fixed32.FromFloat(x), fixed32.FromFloat(y)}
}

// Left returns (-1, 0).
func Left() Vector { return Vector{fixed32.NegOne, fixed32.Zero} }

// Right returns (1, 0).
func Right() Vector { return Vector{fixed32.One, fixed32.Zero} }

// Up returns (0, 1).
func Up() Vector { return Vector{fixed32.Zero, fixed32.One} }

// Down returns (0, -1).
func Down() Vector { return Vector{fixed32.Zero, fixed32.NegOne} }

// Add returns v + other.
func (v Vector) Add(other Vector) Vector {
	return Vector{v.X.Add(other.X), v.Y.Add(other.Y)}
}

// Sub returns v - other.
func (v Vector) Sub(other Vector) Vector {
	return Vector{v.X.Sub(other.X), v.Y.Sub(other.Y)}
}

// Neg returns -v.
func (v Vector) Neg() Vector {
	return Vector{v.X.Neg(), v.Y.Neg()}
}

// Scale returns v * s.
func (v Vector) Scale(s fixed32.Fp) Vector {
	return Vector{v.X.Mul(s), v.Y.Mul(s)}
}

// ScaleBy multiplies component-wise.
func (v Vector) ScaleBy(factor Vector) Vector {
	return Vector{v.X.Mul(factor.X), v.Y.Mul(factor.Y)}
}

// Div returns v / s.
func (v Vector) Div(s fixed32.Fp) Vector {
	return Vector{v.X.Div(s), v.Y.Div(s)}
}

// DivBy divides component-wise.
func (v Vector) DivBy(divisor Vector) Vector {
	return Vector{v.X.Div(divisor.X), v.Y.Div(divisor.Y)}
}

// Dot returns the dot product.
func (v Vector) Dot(other Vector) fixed32.Fp {
	return v.X.Mul(other.X).Add(v.Y.Mul(other.Y))
}

// Cross returns the z component of the 3D cross product, x1*y2 - y1*x2.
func (v Vector) Cross(other Vector) fixed32.Fp {
	return v.X.Mul(other.Y).Sub(v.Y.Mul(other.X))
}

// LengthSquared returns x*x + y*y in fixed-point arithmetic.
func (v Vector) LengthSquared() fixed32.Fp {
	return v.Dot(v)
}

// Length returns the magnitude, rounded to the nearest raw unit.
// It is computed from the raw components, so small vectors do not lose their
// length to the rounding in LengthSquared.
func (v Vector) Length() fixed32.Fp {
	x, y := int64(v.X), int64(v.Y)
	l := fixed32.ISqrt(uint64(x*x) + uint64(y*y))
	if l > uint64(fixed32.MaxValue) {
		return fixed32.MaxValue
	}
	return fixed32.Fp(l)
}

// Distance returns the distance to another point.
func (v Vector) Distance(other Vector) fixed32.Fp {
	return v.Sub(other).Length()
}

// Rotate rotates counter-clockwise by angle radians.
func (v Vector) Rotate(angle fixed32.Fp) Vector {
	sin, cos := angle.SinCos()
	return Vector{
		X: v.X.Mul(cos).Sub(v.Y.Mul(sin)),
		Y: v.X.Mul(sin).Add(v.Y.Mul(cos)),
	}
}

// RotateDegrees rotates counter-clockwise by deg degrees.
func (v Vector) RotateDegrees(deg fixed32.Fp) Vector {
	return v.Rotate(deg.DegToRad())
}

// Abs returns the vector with both components made non-negative.
func (v Vector) Abs() Vector {
	return Vector{v.X.Abs(), v.Y.Abs()}
}

// IsZero reports whether both components are zero.
func (v Vector) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Equal reports exact component-wise equality.
func (v Vector) Equal(other Vector) bool {
	return v == other
}

// String formats the vector as "(x,y)".
func (v Vector) String() string {
	return "(" + v.X.String() + "," + v.Y.String() + ")"
}

// ToPoint26_6 converts to an x/image 26.6 point.
func (v Vector) ToPoint26_6() fixed.Point26_6 {
	return fixed.Point26_6{X: v.X.ToInt26_6(), Y: v.Y.ToInt26_6()}
}

// VectorFromPoint26_6 converts from an x/image 26.6 point.
func VectorFromPoint26_6(p fixed.Point26_6) Vector {
	return Vector{fixed32.FromInt26_6(p.X), fixed32.FromInt26_6(p.Y)}
}

// ImagePoint returns the integer parts of the components.
func (v Vector) ImagePoint() image.Point {
	return image.Point{X: v.X.Int(), Y: v.Y.Int()}
}
