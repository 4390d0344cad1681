package math

import (
	"image"

	"golang.org/x/image/math/fixed"

	"github.com/Faultbox/fixgeom/pkg/fixed32"
)

// Rect is an axis-aligned rectangle given by its lower-left corner and size.
//
// A rect covers the half-open extent [Min().X, Max().X) × [Min().Y, Max().Y):
// points on the left and bottom edges are inside, points on the right and top
// edges are not. Two rects intersect only when they share a region of
// positive area, so rects that merely touch do not intersect.
//
// A negative size is allowed and covers the mirrored extent: Min and Max are
// the component-wise minimum and maximum of Pos and Pos+Size. Area and
// Perimeter return the raw signed arithmetic so callers can spot such rects.
type Rect struct {
	Pos  Vector
	Size Vector
}

// NewRect returns a rect with the given position and size.
func NewRect(pos, size Vector) Rect {
	return Rect{Pos: pos, Size: size}
}

// RectFromInts builds a rect from integer position and size.
func RectFromInts(x, y, w, h int) Rect {
	return Rect{VectorFromInts(x, y), VectorFromInts(w, h)}
}

// RectFromFloats builds a rect from float position and size.
func RectFromFloats(x, y, w, h float64) Rect {
	return Rect{VectorFromFloats(x, y), VectorFromFloats(w, h)}
}

// RectFromCorners returns the rect spanning two opposite corners, in any order.
func RectFromCorners(a, b Vector) Rect {
	lo := Vector{fixed32.Min(a.X, b.X), fixed32.Min(a.Y, b.Y)}
	hi := Vector{fixed32.Max(a.X, b.X), fixed32.Max(a.Y, b.Y)}
	return Rect{Pos: lo, Size: hi.Sub(lo)}
}

// Left returns Pos.X.
func (r Rect) Left() fixed32.Fp { return r.Pos.X }

// Right returns Pos.X + Size.X.
func (r Rect) Right() fixed32.Fp { return r.Pos.X.Add(r.Size.X) }

// Bottom returns Pos.Y.
func (r Rect) Bottom() fixed32.Fp { return r.Pos.Y }

// Top returns Pos.Y + Size.Y.
func (r Rect) Top() fixed32.Fp { return r.Pos.Y.Add(r.Size.Y) }

// Min returns the corner with the smallest coordinates.
func (r Rect) Min() Vector {
	return Vector{fixed32.Min(r.Left(), r.Right()), fixed32.Min(r.Bottom(), r.Top())}
}

// Max returns the corner with the largest coordinates.
func (r Rect) Max() Vector {
	return Vector{fixed32.Max(r.Left(), r.Right()), fixed32.Max(r.Bottom(), r.Top())}
}

// Canon returns the rect covering the same extent with a non-negative size.
func (r Rect) Canon() Rect {
	lo := r.Min()
	return Rect{Pos: lo, Size: r.Max().Sub(lo)}
}

// Center returns Pos + Size/2.
func (r Rect) Center() Vector {
	return r.Pos.Add(r.Size.Scale(fixed32.Half))
}

// IsEmpty reports whether the rect has zero width or height.
func (r Rect) IsEmpty() bool {
	return r.Size.X.IsZero() || r.Size.Y.IsZero()
}

// IsDegenerate reports whether either size component is zero or negative.
func (r Rect) IsDegenerate() bool {
	return r.Size.X <= 0 || r.Size.Y <= 0
}

// MoveBy returns the rect translated by offset.
func (r Rect) MoveBy(offset Vector) Rect {
	return Rect{Pos: r.Pos.Add(offset), Size: r.Size}
}

// Area returns Size.X * Size.Y, negative when exactly one size is negative.
func (r Rect) Area() fixed32.Fp {
	return r.Size.X.Mul(r.Size.Y)
}

// Perimeter returns 2 * (Size.X + Size.Y).
func (r Rect) Perimeter() fixed32.Fp {
	return r.Size.X.Add(r.Size.Y).Mul(fixed32.Two)
}

// AspectRatio returns width / height. It reports false for zero height.
func (r Rect) AspectRatio() (fixed32.Fp, bool) {
	if r.Size.Y.IsZero() {
		return fixed32.Zero, false
	}
	return r.Size.X.Div(r.Size.Y), true
}

// ContainsPoint reports whether p lies in the half-open extent of r.
func (r Rect) ContainsPoint(p Vector) bool {
	lo, hi := r.Min(), r.Max()
	return p.X >= lo.X && p.X < hi.X &&
		p.Y >= lo.Y && p.Y < hi.Y
}

// ContainsRect reports whether other lies entirely within r.
// Every rect contains itself.
func (r Rect) ContainsRect(other Rect) bool {
	lo, hi := r.Min(), r.Max()
	olo, ohi := other.Min(), other.Max()
	return olo.X >= lo.X && olo.Y >= lo.Y &&
		ohi.X <= hi.X && ohi.Y <= hi.Y
}

// Intersects reports whether r and other overlap with positive area.
func (r Rect) Intersects(other Rect) bool {
	_, ok := r.Intersection(other)
	return ok
}

// Intersection returns the overlap of r and other. It reports false, with a
// zero Rect, exactly when Intersects is false.
func (r Rect) Intersection(other Rect) (Rect, bool) {
	lo, hi := r.Min(), r.Max()
	olo, ohi := other.Min(), other.Max()

	x0, x1 := fixed32.Max(lo.X, olo.X), fixed32.Min(hi.X, ohi.X)
	y0, y1 := fixed32.Max(lo.Y, olo.Y), fixed32.Min(hi.Y, ohi.Y)
	if x0 >= x1 || y0 >= y1 {
		return Rect{}, false
	}
	return Rect{
		Pos:  Vector{x0, y0},
		Size: Vector{x1.Sub(x0), y1.Sub(y0)},
	}, true
}

// Union returns the smallest rect containing both r and other.
func (r Rect) Union(other Rect) Rect {
	lo, hi := r.Min(), r.Max()
	olo, ohi := other.Min(), other.Max()
	return RectFromCorners(
		Vector{fixed32.Min(lo.X, olo.X), fixed32.Min(lo.Y, olo.Y)},
		Vector{fixed32.Max(hi.X, ohi.X), fixed32.Max(hi.Y, ohi.Y)},
	)
}

// Expanded grows the rect by by on every side: Pos moves by -by and Size
// grows by 2*by. The rect is put in canonical form first. A negative by
// shrinks it; an axis that would turn negative collapses to zero width at
// its center.
func (r Rect) Expanded(by Vector) Rect {
	c := r.Canon()
	center := c.Center()
	out := Rect{
		Pos:  c.Pos.Sub(by),
		Size: c.Size.Add(by.Scale(fixed32.Two)),
	}
	if out.Size.X < 0 {
		out.Pos.X, out.Size.X = center.X, fixed32.Zero
	}
	if out.Size.Y < 0 {
		out.Pos.Y, out.Size.Y = center.Y, fixed32.Zero
	}
	return out
}

// Contracted shrinks the rect by by on every side. It is Expanded(-by).
func (r Rect) Contracted(by Vector) Rect {
	return r.Expanded(by.Neg())
}

// Equal reports exact equality of position and size.
func (r Rect) Equal(other Rect) bool {
	return r == other
}

// String formats the rect as "rect(x,y,w,h)".
func (r Rect) String() string {
	return "rect(" + r.Pos.X.String() + "," + r.Pos.Y.String() + "," +
		r.Size.X.String() + "," + r.Size.Y.String() + ")"
}

// ToRectangle26_6 converts the canonical extent to an x/image 26.6 rectangle.
func (r Rect) ToRectangle26_6() fixed.Rectangle26_6 {
	return fixed.Rectangle26_6{Min: r.Min().ToPoint26_6(), Max: r.Max().ToPoint26_6()}
}

// RectFromRectangle26_6 converts an x/image 26.6 rectangle.
func RectFromRectangle26_6(r fixed.Rectangle26_6) Rect {
	return RectFromCorners(VectorFromPoint26_6(r.Min), VectorFromPoint26_6(r.Max))
}

// ImageRect returns the smallest integer rectangle covering r.
func (r Rect) ImageRect() image.Rectangle {
	lo, hi := r.Min(), r.Max()
	return image.Rect(lo.X.Int(), lo.Y.Int(), hi.X.Ceil(), hi.Y.Ceil())
}
