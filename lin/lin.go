// Copyright © 2013-2014 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package lin provides the linear-algebra core used to compose rigid-body
// transforms on Monte Carlo transport geometry decks: 3-element vectors,
// 3x3 rotation matrices, and the translation+rotation+sense Transform that
// a deck's coordinate-transform ("tr"/"*tr") cards carry.
//
// Package lin is deliberately narrow: no quaternions, no 4x4 matrices, no
// projection math. A deck transform is fully described by a translation
// vector, an orthonormal 3x3 rotation, and a sense flag that says whether
// the card maps parent->child or child->parent.
package lin

// Design Notes:
//
// 1) Mirrors the method-on-pointer-receiver style of a CPU-side 3D math
//    library: mutators return the receiver so calls chain, and avoid
//    allocating new structures in hot paths.
// 2) ROUND_TR and FORMAT_TR are process-wide immutable constants. ROUND_TR
//    is applied by M3.SetDegrees; package deck writes card text with its
//    own shortest-form float formatting and does not use FORMAT_TR.

import "math"

// Various linear math constants.
const (
	PI     float64 = math.Pi
	PIx2   float64 = PI * 2
	DegRad float64 = PIx2 / 360.0 // X degrees * DegRad = Y radians
	RadDeg float64 = 360.0 / PIx2 // Y radians * RadDeg = X degrees

	// Epsilon is used to distinguish when a float is close enough to a number.
	Epsilon float64 = 0.000001
)

// ROUND_TR is the decimal precision transform scalars are rounded to by
// RoundTR. FORMAT_TR is a fixed-width scientific notation format; card
// text emitted by package deck does not use it. Both are process-wide
// and immutable.
const ROUND_TR = 14

const FORMAT_TR = "%.15e"

// Rad converts degrees to radians.
func Rad(deg float64) float64 { return deg * DegRad }

// Deg converts radians to degrees.
func Deg(rad float64) float64 { return rad * RadDeg }

// Aeq (~=) almost-equals returns true if the difference between a and b is
// so small that it doesn't matter.
func Aeq(a, b float64) bool { return math.Abs(a-b) < Epsilon }

// AeqPrec is Aeq with an explicit tolerance, used where ROUND_TR-scale
// comparisons are required (orthonormality checks at 1e-14).
func AeqPrec(a, b, tol float64) bool { return math.Abs(a-b) < tol }

// Round returns val rounded to prec decimal digits.
//
//	Round(±0) = ±0
//	Round(±Inf) = ±Inf
//	Round(NaN) = NaN
func Round(val float64, prec int) float64 {
	pow := math.Pow(10, float64(prec))
	intermed := val * pow
	if intermed < 0.0 {
		intermed -= 0.5
	} else {
		intermed += 0.5
	}
	return float64(int64(intermed)) / pow
}

// RoundTR rounds val to ROUND_TR decimals.
func RoundTR(val float64) float64 { return Round(val, ROUND_TR) }
