// Copyright © 2013-2014 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

// Vector performs the 3 element vector math needed for translation
// and rotation composition.

import "math"

// V3 is a 3 element vector, used for translations and points in
// centimetres.
type V3 struct {
	X float64
	Y float64
	Z float64
}

// Eq (==) returns true if each element in v equals the corresponding
// element in a.
func (v *V3) Eq(a *V3) bool { return v.X == a.X && v.Y == a.Y && v.Z == a.Z }

// Aeq (~=) almost-equals returns true if v and a are equal to within
// Epsilon in every element.
func (v *V3) Aeq(a *V3) bool { return Aeq(v.X, a.X) && Aeq(v.Y, a.Y) && Aeq(v.Z, a.Z) }

// GetS returns the float64 values of the vector.
func (v *V3) GetS() (x, y, z float64) { return v.X, v.Y, v.Z }

// SetS (=) sets the vector elements to the given values.
// The updated vector v is returned.
func (v *V3) SetS(x, y, z float64) *V3 {
	v.X, v.Y, v.Z = x, y, z
	return v
}

// Set (=, copy) sets the elements of v to the elements of a.
// The updated vector v is returned.
func (v *V3) Set(a *V3) *V3 {
	v.X, v.Y, v.Z = a.X, a.Y, a.Z
	return v
}

// Add (+) sets v to a+b. The updated vector v is returned.
func (v *V3) Add(a, b *V3) *V3 {
	v.X, v.Y, v.Z = a.X+b.X, a.Y+b.Y, a.Z+b.Z
	return v
}

// Sub (-) sets v to a-b. The updated vector v is returned.
func (v *V3) Sub(a, b *V3) *V3 {
	v.X, v.Y, v.Z = a.X-b.X, a.Y-b.Y, a.Z-b.Z
	return v
}

// Scale (*) sets v to a scaled by s. The updated vector v is returned.
func (v *V3) Scale(a *V3, s float64) *V3 {
	v.X, v.Y, v.Z = a.X*s, a.Y*s, a.Z*s
	return v
}

// Neg (-) sets v to the negative of a. The updated vector v is returned.
func (v *V3) Neg(a *V3) *V3 {
	v.X, v.Y, v.Z = -a.X, -a.Y, -a.Z
	return v
}

// Dot returns the dot product of v and a.
func (v *V3) Dot(a *V3) float64 { return v.X*a.X + v.Y*a.Y + v.Z*a.Z }

// Len returns the length of v.
func (v *V3) Len() float64 { return math.Sqrt(v.Dot(v)) }

// Unit normalizes v in place to a unit vector. A zero-length vector is
// left unchanged. The updated vector v is returned.
func (v *V3) Unit() *V3 {
	length := v.Len()
	if length < Epsilon {
		return v
	}
	v.X, v.Y, v.Z = v.X/length, v.Y/length, v.Z/length
	return v
}

// NewV3 returns a new zero vector.
func NewV3() *V3 { return &V3{} }

// NewV3S returns a new vector with the given values.
func NewV3S(x, y, z float64) *V3 { return &V3{X: x, Y: y, Z: z} }
