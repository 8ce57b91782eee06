package internal

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Circumcenter of the triangle p1 p2 p3, using barycentric coordinates.
//
// With the edges
//
//	a = p3 - p2, b = p1 - p3, c = p2 - p1
//
// the barycentric weights of the circumcenter are
//
//	u = |a|² (b·c), v = |b|² (c·a), w = |c|² (a·b)
//
// and the center is (u p1 + v p2 + w p3) / (u + v + w).
//
// When the points are collinear the weights sum to zero. In that case the
// mean of the points is returned along with ErrCollinear, and the point is
// still usable. Any other failure returns ErrUndefined and a zero point.
func Circumcenter3D(p1, p2, p3 Point) (Point, error) {
	a := p3.Sub(p2)
	b := p1.Sub(p3)
	c := p2.Sub(p1)

	u := a.LenSqr() * b.Dot(c)
	v := b.LenSqr() * c.Dot(a)
	w := c.LenSqr() * a.Dot(b)

	sum := u + v + w
	// The weights are fourth powers of the coordinates, so "zero" has to be
	// judged against their own size.
	if math.Abs(sum) <= Epsilon*(math.Abs(u)+math.Abs(v)+math.Abs(w)) {
		return Mean(p1, p2, p3), ErrCollinear
	}

	center := p1.Mul(u).Add(p2.Mul(v)).Add(p3.Mul(w)).Mul(1 / sum)
	if !IsFinite(center) {
		return Point{}, ErrUndefined
	}
	return center, nil
}

// Center of the sphere through four points.
//
// Every point x on the perpendicular bisector plane of prev and next satisfies
//
//	2 (next - prev) · x = |next|² - |prev|²
//
// Taking that for A->B, B->C and C->D gives a 3x3 system whose solution is the
// center. If the points are coplanar the system is singular, and this returns
// ErrCoplanar. Falling back to a circle is left to the caller (see
// FallbackPolicy).
func Circumcenter4D(a, b, c, d Point) (Point, error) {
	pairs := [3][2]Point{{a, b}, {b, c}, {c, d}}
	var rows [3]Point
	var rhs Point
	for i, pair := range pairs {
		prev, next := pair[0], pair[1]
		rows[i] = next.Sub(prev).Mul(2)
		rhs[i] = next.LenSqr() - prev.LenSqr()
	}
	m := mgl64.Mat3FromRows(rows[0], rows[1], rows[2])

	center, ok := solve3(m, rhs)
	if !ok {
		return Point{}, ErrCoplanar
	}
	if !IsFinite(center) {
		return Point{}, ErrUndefined
	}
	return center, nil
}

// Solve m x = rhs. Reports false when m is singular relative to the size of
// its entries.
func solve3(m mgl64.Mat3, rhs Point) (Point, bool) {
	scale := 0.0
	for _, v := range m {
		scale = math.Max(scale, math.Abs(v))
	}
	det := m.Det()
	if scale == 0 || math.Abs(det) <= Epsilon*scale*scale*scale {
		return Point{}, false
	}
	return m.Inv().Mul3x1(rhs), true
}
