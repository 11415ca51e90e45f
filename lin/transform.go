// Copyright © 2013-2014 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

// Transform is a 3D rigid-body transform for a coordinate-transform card:
// translation T (centimetres), rotation R, and sense (+1 normal, -1 the
// card maps child->parent rather than parent->child). Transform excludes
// scale/shear, matching spec 3's object_transform.
type Transform struct {
	T     V3
	R     M3
	Sense int // +1 or -1
}

// NewTransformI returns the identity transform: zero translation, identity
// rotation, sense +1.
func NewTransformI() *Transform {
	return &Transform{R: *NewM3I(), Sense: 1}
}

// NewTranslation returns a pure-translation transform: (T, I, +1).
func NewTranslation(x, y, z float64) *Transform {
	t := NewTransformI()
	t.T.SetS(x, y, z)
	return t
}

// Eq (==) returns true if t and a have identical translation, rotation,
// and sense.
func (t *Transform) Eq(a *Transform) bool {
	return t.Sense == a.Sense && t.T.Eq(&a.T) && t.R.Eq(&a.R)
}

// Aeq (~=) almost-equals returns true if t and a are equal to within
// Epsilon in translation and rotation, and share the same sense.
func (t *Transform) Aeq(a *Transform) bool {
	return t.Sense == a.Sense && t.T.Aeq(&a.T) && t.R.Aeq(&a.R)
}

// Normalize rewrites a reversed (Sense == -1) transform into its
// equivalent Sense == +1 form: T := -R^T*T, Sense := +1. A transform that
// is already Sense +1 is left unchanged. The updated transform t is
// returned.
func (t *Transform) Normalize() *Transform {
	if t.Sense != -1 {
		return t
	}
	rt := &M3{}
	rt.Transpose(&t.R)
	neg := &V3{}
	neg.Neg(&t.T)
	t.T.Set(rt.MultV(&V3{}, neg))
	t.Sense = 1
	return t
}

// Compose returns the new object transform obtained by applying "applied"
// on top of "existing", following the card composition convention:
//
//	R' = Ri * R0
//	T' = Ri^T * T0 + Ti
//
// where (T0,R0) is existing and (Ti,Ri) is applied. Rotation matrices are
// stored row-major with each row being a new basis vector expressed in the
// old basis (spec 4.4), which is why the applied rotation left-multiplies
// rather than right-multiplies the existing one here; spec scenario S3
// (TrRotZ(90) then TrRotY(90) -> [[0,0,1],[1,0,0],[0,1,0]]) pins this down.
// Both inputs are normalized (Sense +1) in local copies; existing and
// applied are read-only. The result always has Sense +1.
func Compose(existing, applied *Transform) *Transform {
	e := &Transform{T: existing.T, R: existing.R, Sense: existing.Sense}
	a := &Transform{T: applied.T, R: applied.R, Sense: applied.Sense}
	e.Normalize()
	a.Normalize()

	result := &Transform{Sense: 1}
	result.R.Mult(&a.R, &e.R)

	rit := &M3{}
	rit.Transpose(&a.R)
	rt0 := &V3{}
	rit.MultV(rt0, &e.T)
	result.T.Add(rt0, &a.T)
	return result
}

// Inverse returns the transform A such that Compose(t, A) is the identity
// transform, per the Compose convention (R' = Ra*R0, T' = Ra^T*T0 + Ta):
// A.R = t.R^T, A.T = -t.R*t.T. Composing t then t.Inverse() yields the
// identity transform to within Epsilon.
func (t *Transform) Inverse() *Transform {
	inv := &Transform{Sense: 1}
	inv.R.Transpose(&t.R)
	neg := &V3{}
	neg.Neg(&t.T)
	inv.T.Set(t.R.MultV(&V3{}, neg))
	return inv
}
