// Copyright © 2013-2014 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

import "testing"

func TestComposePureTranslation(t *testing.T) {
	existing := NewTransformI()
	applied := NewTranslation(10, 20, 30)
	got := Compose(existing, applied)
	want := NewV3S(10, 20, 30)
	if !got.T.Aeq(want) {
		t.Errorf("translation: got %+v want %+v", got.T, *want)
	}
	if !got.R.Aeq(M3I) {
		t.Errorf("rotation changed by pure translation: %+v", got.R)
	}
}

func TestComposeEulerZThenY(t *testing.T) {
	rz := NewTransformI()
	rz.R.SetRotZ(Rad(90))
	ry := NewTransformI()
	ry.R.SetRotY(Rad(90))
	got := Compose(rz, ry)
	want := &M3{
		0, 0, 1,
		1, 0, 0,
		0, 1, 0,
	}
	if !got.R.Aeq(want) {
		t.Errorf("got %+v want %+v", got.R, *want)
	}
}

func TestTransformRoundTrip(t *testing.T) {
	tr := NewTransformI()
	tr.R.SetEulerZXZ(Rad(33), Rad(18), Rad(71))
	tr.T.SetS(12.5, -4.25, 100)
	inv := tr.Inverse()
	got := Compose(tr, inv)
	if !got.T.Aeq(&V3{}) {
		t.Errorf("round trip translation not identity: %+v", got.T)
	}
	if !got.R.IsOrthonormal(1e-9) || !got.R.Aeq(M3I) {
		t.Errorf("round trip rotation not identity: %+v", got.R)
	}
}

func TestNormalizeReversedSense(t *testing.T) {
	tr := NewTransformI()
	tr.T.SetS(1, 2, 3)
	tr.Sense = -1
	tr.Normalize()
	if tr.Sense != 1 {
		t.Errorf("sense not normalized: %d", tr.Sense)
	}
}

func TestSetDegreesRightAngles(t *testing.T) {
	m := &M3{
		0, 90, 90,
		90, 0, 90,
		90, 90, 0,
	}
	got := &M3{}
	got.SetDegrees(m)
	for _, v := range got.Rows() {
		if v != -1 && v != 0 && v != 1 {
			t.Errorf("expected {-1,0,1} entries, got %v in %+v", v, got)
		}
	}
}

func TestSetAxisAngleZeroAxis(t *testing.T) {
	m := &M3{}
	m.SetS(9, 9, 9, 9, 9, 9, 9, 9, 9)
	before := *m
	m.SetAxisAngle(0, 0, 0, Rad(45))
	if !m.Eq(&before) {
		t.Errorf("expected matrix unchanged on zero axis, got %+v", m)
	}
}
