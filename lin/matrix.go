// Copyright © 2013-2014 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

// Matrix provides the 3x3 rotation matrix used by deck coordinate
// transforms. Matrix elements are individually addressable and stored
// row-major, matching the order a "tr"/"*tr" card lists its nine
// rotation scalars: row 1 is the new X axis expressed in the old basis,
// row 2 the new Y axis, row 3 the new Z axis.

import (
	"log"
	"math"
)

// M3 is a 3x3 matrix where the matrix elements are individually addressable.
type M3 struct {
	Xx, Xy, Xz float64 // row 1 [00, 01, 02]
	Yx, Yy, Yz float64 // row 2 [10, 11, 12]
	Zx, Zy, Zz float64 // row 3 [20, 21, 22]
}

// M3I is a reference identity matrix. It must never be mutated.
var M3I = &M3{
	1, 0, 0,
	0, 1, 0,
	0, 0, 1,
}

// NewM3I returns a new identity matrix.
func NewM3I() *M3 { return &M3{Xx: 1, Yy: 1, Zz: 1} }

// Eq (==) returns true if every element in m equals the corresponding
// element of a.
func (m *M3) Eq(a *M3) bool {
	return m.Xx == a.Xx && m.Xy == a.Xy && m.Xz == a.Xz &&
		m.Yx == a.Yx && m.Yy == a.Yy && m.Yz == a.Yz &&
		m.Zx == a.Zx && m.Zy == a.Zy && m.Zz == a.Zz
}

// Aeq (~=) almost-equals returns true if m and a are equal to within
// Epsilon in every element.
func (m *M3) Aeq(a *M3) bool {
	return Aeq(m.Xx, a.Xx) && Aeq(m.Xy, a.Xy) && Aeq(m.Xz, a.Xz) &&
		Aeq(m.Yx, a.Yx) && Aeq(m.Yy, a.Yy) && Aeq(m.Yz, a.Yz) &&
		Aeq(m.Zx, a.Zx) && Aeq(m.Zy, a.Zy) && Aeq(m.Zz, a.Zz)
}

// SetS (=) sets the matrix elements to the given values, row-major.
// The updated matrix m is returned.
func (m *M3) SetS(Xx, Xy, Xz, Yx, Yy, Yz, Zx, Zy, Zz float64) *M3 {
	m.Xx, m.Xy, m.Xz = Xx, Xy, Xz
	m.Yx, m.Yy, m.Yz = Yx, Yy, Yz
	m.Zx, m.Zy, m.Zz = Zx, Zy, Zz
	return m
}

// Set (=, copy) sets the elements of m to the elements of a.
// The updated matrix m is returned.
func (m *M3) Set(a *M3) *M3 {
	*m = *a
	return m
}

// Rows returns the matrix elements row-major, in card order.
func (m *M3) Rows() [9]float64 {
	return [9]float64{m.Xx, m.Xy, m.Xz, m.Yx, m.Yy, m.Yz, m.Zx, m.Zy, m.Zz}
}

// Transpose sets m to the transpose of a. The updated matrix m is returned.
func (m *M3) Transpose(a *M3) *M3 {
	m.SetS(
		a.Xx, a.Yx, a.Zx,
		a.Xy, a.Yy, a.Zy,
		a.Xz, a.Yz, a.Zz,
	)
	return m
}

// Mult sets m to the matrix product l*r. The updated matrix m is returned.
func (m *M3) Mult(l, r *M3) *M3 {
	xx := l.Xx*r.Xx + l.Xy*r.Yx + l.Xz*r.Zx
	xy := l.Xx*r.Xy + l.Xy*r.Yy + l.Xz*r.Zy
	xz := l.Xx*r.Xz + l.Xy*r.Yz + l.Xz*r.Zz
	yx := l.Yx*r.Xx + l.Yy*r.Yx + l.Yz*r.Zx
	yy := l.Yx*r.Xy + l.Yy*r.Yy + l.Yz*r.Zy
	yz := l.Yx*r.Xz + l.Yy*r.Yz + l.Yz*r.Zz
	zx := l.Zx*r.Xx + l.Zy*r.Yx + l.Zz*r.Zx
	zy := l.Zx*r.Xy + l.Zy*r.Yy + l.Zz*r.Zy
	zz := l.Zx*r.Xz + l.Zy*r.Yz + l.Zz*r.Zz
	return m.SetS(xx, xy, xz, yx, yy, yz, zx, zy, zz)
}

// MultV sets v to m applied to a (m*a as a column vector).
// The updated vector v is returned.
func (m *M3) MultV(v, a *V3) *V3 {
	x := m.Xx*a.X + m.Xy*a.Y + m.Xz*a.Z
	y := m.Yx*a.X + m.Yy*a.Y + m.Yz*a.Z
	z := m.Zx*a.X + m.Zy*a.Y + m.Zz*a.Z
	v.X, v.Y, v.Z = x, y, z
	return v
}

// Det returns the determinant of m.
func (m *M3) Det() float64 {
	return m.Xx*(m.Yy*m.Zz-m.Yz*m.Zy) -
		m.Xy*(m.Yx*m.Zz-m.Yz*m.Zx) +
		m.Xz*(m.Yx*m.Zy-m.Yy*m.Zx)
}

// IsOrthonormal returns true if m is orthonormal to within tol: its
// transpose is also its inverse. Used to validate deck invariant
// "object_transform.rotation matrix is orthonormal to within ROUND_TR".
func (m *M3) IsOrthonormal(tol float64) bool {
	t := &M3{}
	t.Transpose(m)
	p := &M3{}
	p.Mult(m, t)
	return AeqPrec(p.Xx, 1, tol) && AeqPrec(p.Yy, 1, tol) && AeqPrec(p.Zz, 1, tol) &&
		AeqPrec(p.Xy, 0, tol) && AeqPrec(p.Xz, 0, tol) && AeqPrec(p.Yz, 0, tol)
}

// SetDegrees replaces every element m with cos(m*pi/180), rounded to
// ROUND_TR decimals, the conversion used by "*tr" cards whose nine
// scalars are degrees-of-direction-angle rather than direction cosines.
// The rounding makes multiples of 90 degrees come out as exactly -1, 0
// or 1. The updated matrix m is returned.
func (m *M3) SetDegrees(a *M3) *M3 {
	conv := func(deg float64) float64 { return RoundTR(math.Cos(deg * PI / 180)) }
	return m.SetS(
		conv(a.Xx), conv(a.Xy), conv(a.Xz),
		conv(a.Yx), conv(a.Yy), conv(a.Yz),
		conv(a.Zx), conv(a.Zy), conv(a.Zz),
	)
}

// SetRotX sets m to a rotation of angle radians about the X axis.
// The updated matrix m is returned.
func (m *M3) SetRotX(angle float64) *M3 {
	c, s := math.Cos(angle), math.Sin(angle)
	return m.SetS(
		1, 0, 0,
		0, c, -s,
		0, s, c,
	)
}

// SetRotY sets m to a rotation of angle radians about the Y axis. Unlike
// RotX/RotZ, the source convention's extra sign flip for the Y axis
// cancels against the row-major "rows are the new basis" storage
// convention (spec 4.4), leaving the plain right-hand-rule matrix here.
// The updated matrix m is returned.
func (m *M3) SetRotY(angle float64) *M3 {
	c, s := math.Cos(angle), math.Sin(angle)
	return m.SetS(
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
	)
}

// SetRotZ sets m to a rotation of angle radians about the Z axis.
// The updated matrix m is returned.
func (m *M3) SetRotZ(angle float64) *M3 {
	c, s := math.Cos(angle), math.Sin(angle)
	return m.SetS(
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	)
}

// SetEulerZXZ sets m to the composite rotation Rz(alpha)*Rx(beta)*Rz(gamma),
// all angles in radians. The updated matrix m is returned.
func (m *M3) SetEulerZXZ(alpha, beta, gamma float64) *M3 {
	rz1, rx, rz2 := &M3{}, &M3{}, &M3{}
	rz1.SetRotZ(alpha)
	rx.SetRotX(beta)
	rz2.SetRotZ(gamma)
	tmp := &M3{}
	tmp.Mult(rz1, rx)
	return m.Mult(tmp, rz2)
}

// EulerZXZ extracts (alpha, beta, gamma) in radians such that
// m == Rz(alpha)*Rx(beta)*Rz(gamma). Handles the degenerate beta==0 case
// by setting gamma to zero and recovering alpha from the xy sub-block.
func (m *M3) EulerZXZ() (alpha, beta, gamma float64) {
	if AeqZ(m.Zz - 1) || AeqZ(m.Zz + 1) {
		beta = math.Acos(clamp(m.Zz, -1, 1))
		gamma = 0
		alpha = math.Atan2(-m.Xy, m.Xx)
		return alpha, beta, gamma
	}
	beta = math.Acos(clamp(m.Zz, -1, 1))
	alpha = math.Atan2(m.Xz, -m.Yz)
	gamma = math.Atan2(m.Zx, m.Zy)
	return alpha, beta, gamma
}

// AeqZ returns true if x is close enough to zero that it makes no
// difference.
func AeqZ(x float64) bool { return math.Abs(x) < Epsilon }

func clamp(x, lo, hi float64) float64 {
	switch {
	case x < lo:
		return lo
	case x > hi:
		return hi
	}
	return x
}

// SetAxisAngle sets m to the Rodrigues rotation matrix for a rotation of
// angle radians (negated, per the source transpose convention) about the
// unit axis (ax, ay, az). A near-zero axis leaves m unchanged and logs a
// warning. The updated matrix m is returned.
func (m *M3) SetAxisAngle(ax, ay, az, angle float64) *M3 {
	lenSqr := ax*ax + ay*ay + az*az
	if lenSqr < Epsilon {
		log.Printf("lin: SetAxisAngle zero length axis")
		return m
	}
	ilen := 1 / math.Sqrt(lenSqr)
	ax, ay, az = ax*ilen, ay*ilen, az*ilen

	ang := -angle // source uses the transpose convention.
	c, s := math.Cos(ang), math.Sin(ang)
	t := 1 - c
	return m.SetS(
		c+ax*ax*t, ax*ay*t-az*s, ax*az*t+ay*s,
		ay*ax*t+az*s, c+ay*ay*t, ay*az*t-ax*s,
		az*ax*t-ay*s, az*ay*t+ax*s, c+az*az*t,
	)
}
