// Copyright © 2013-2014 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package deck

import (
	"fmt"
	"strconv"

	"github.com/afriou/mcnpdeck/lin"
)

// AngleUnit selects degrees or radians for the TrRot*/TrEuler/TrRotU
// family of operators.
type AngleUnit int

const (
	Deg AngleUnit = iota
	Rad
)

func toRadians(angle float64, unit AngleUnit) float64 {
	if unit == Deg {
		return lin.Rad(angle)
	}
	return angle
}

func defaultComment(comment []string, fallback string) string {
	if len(comment) > 0 && comment[0] != "" {
		return comment[0]
	}
	return fallback
}

// Translat applies a pure translation (centimetres) to the deck.
func (d *Deck) Translat(v [3]float64, comment ...string) error {
	t := lin.NewTranslation(v[0], v[1], v[2])
	return d.applyTransfo(t, defaultComment(comment, fmt.Sprintf("translate %v", v)))
}

// TrRotX applies a translation plus a rotation of angle about the X
// axis.
func (d *Deck) TrRotX(trans [3]float64, angle float64, unit AngleUnit, comment ...string) error {
	t := lin.NewTransformI()
	t.T.SetS(trans[0], trans[1], trans[2])
	t.R.SetRotX(toRadians(angle, unit))
	return d.applyTransfo(t, defaultComment(comment, fmt.Sprintf("rotate x %v", angle)))
}

// TrRotY applies a translation plus a rotation of angle about the Y
// axis.
func (d *Deck) TrRotY(trans [3]float64, angle float64, unit AngleUnit, comment ...string) error {
	t := lin.NewTransformI()
	t.T.SetS(trans[0], trans[1], trans[2])
	t.R.SetRotY(toRadians(angle, unit))
	return d.applyTransfo(t, defaultComment(comment, fmt.Sprintf("rotate y %v", angle)))
}

// TrRotZ applies a translation plus a rotation of angle about the Z
// axis.
func (d *Deck) TrRotZ(trans [3]float64, angle float64, unit AngleUnit, comment ...string) error {
	t := lin.NewTransformI()
	t.T.SetS(trans[0], trans[1], trans[2])
	t.R.SetRotZ(toRadians(angle, unit))
	return d.applyTransfo(t, defaultComment(comment, fmt.Sprintf("rotate z %v", angle)))
}

// TrEuler applies a translation plus a Zx-Xb-Zg Euler rotation.
func (d *Deck) TrEuler(trans [3]float64, alpha, beta, gamma float64, unit AngleUnit, comment ...string) error {
	t := lin.NewTransformI()
	t.T.SetS(trans[0], trans[1], trans[2])
	t.R.SetEulerZXZ(toRadians(alpha, unit), toRadians(beta, unit), toRadians(gamma, unit))
	return d.applyTransfo(t, defaultComment(comment, fmt.Sprintf("euler %v %v %v", alpha, beta, gamma)))
}

// TrRotU applies a translation plus a rotation of angle about the unit
// axis u.
func (d *Deck) TrRotU(u, trans [3]float64, angle float64, unit AngleUnit, comment ...string) error {
	t := lin.NewTransformI()
	t.T.SetS(trans[0], trans[1], trans[2])
	t.R.SetAxisAngle(u[0], u[1], u[2], toRadians(angle, unit))
	return d.applyTransfo(t, defaultComment(comment, fmt.Sprintf("axis-angle %v %v", u, angle)))
}

// Transform applies a raw tr-card-grammar token list (3, 4, 12 or 13
// scalars: translation, optional rotation, optional sense), matching
// the stable "Deck.Transform(card_tokens, comment?)" contract.
func (d *Deck) Transform(tokens []string, comment ...string) error {
	if len(tokens) == 0 {
		return newErr(MalformedInput, "Transform requires at least a translation")
	}
	vals := make([]float64, 0, len(tokens))
	for _, tok := range tokens {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return wrapErr(MalformedInput, "Transform token is not a number: "+tok, err)
		}
		vals = append(vals, v)
	}
	t := lin.NewTransformI()
	switch len(vals) {
	case 3:
		t.T.SetS(vals[0], vals[1], vals[2])
	case 4:
		t.T.SetS(vals[0], vals[1], vals[2])
		t.Sense = int(vals[3])
	case 12, 13:
		t.T.SetS(vals[0], vals[1], vals[2])
		t.R.SetS(vals[3], vals[4], vals[5], vals[6], vals[7], vals[8], vals[9], vals[10], vals[11])
		if len(vals) == 13 {
			t.Sense = int(vals[12])
		}
	default:
		return newErr(MalformedInput, "Transform token list has an unsupported length")
	}
	if t.Sense == 0 {
		t.Sense = 1
	}
	return d.applyTransfo(t, defaultComment(comment, "transform"))
}

// SwapCellMat changes the material (and optionally density) of every
// cell named by ids. mat == 0 makes the cell void (dens is ignored);
// mat == -1 keeps the current material and only changes density;
// mat > 0 assigns that material number with the given density. Per
// spec 9 open question (ii), CloneCell targets are unsupported and
// produce a warning rather than a silent no-op or a fatal error.
func (d *Deck) SwapCellMat(ids []int, mat int, dens float64) {
	for _, id := range ids {
		c := d.FindCell(id)
		if c == nil {
			d.warn(d.SourcePath, fmt.Sprintf("SwapCellMat: no such cell %d", id))
			continue
		}
		if c.Kind == CloneCell {
			d.warn(d.SourcePath, fmt.Sprintf("SwapCellMat: unsupported on \"like but\" cell %d", id))
			continue
		}
		switch {
		case mat == 0:
			c.Material = 0
			c.HasDensity = false
			c.Density = 0
		case mat == -1:
			c.Density = dens
			c.HasDensity = true
		default:
			c.Material = mat
			c.Density = dens
			c.HasDensity = true
		}
	}
}
