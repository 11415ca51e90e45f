// Copyright © 2013-2014 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package deck

import (
	"strconv"
	"strings"

	"github.com/afriou/mcnpdeck/lin"
)

// trclKeywords are the cell-trailing keywords that carry a coordinate
// transform reference, bare or as a parenthesised constant.
var trclKeywords = []string{"trcl", "*trcl", "fill", "*fill"}

// forEachTrclToken calls fn for every trcl=/fill=/*trcl=/*fill= token
// found in c.Trailing, replacing the token with fn's return value.
func forEachTrclToken(c *Cell, fn func(keyword, value string) string) {
	if c.Kind != PlainCell || c.Trailing == "" {
		return
	}
	toks := splitTrailingTokens(c.Trailing)
	for i, tok := range toks {
		key, val, hasEq := partitionEq(tok)
		if !hasEq {
			continue
		}
		for _, kw := range trclKeywords {
			if keywordEq(key, kw) {
				toks[i] = key + "=" + fn(key, val)
				break
			}
		}
	}
	c.Trailing = strings.Join(toks, " ")
}

// splitTrailingTokens splits on whitespace that is not inside a
// parenthesised group, so "trcl=(1 2 3)" stays one token.
func splitTrailingTokens(s string) []string {
	var toks []string
	var cur strings.Builder
	depth := 0
	for _, r := range s {
		switch {
		case r == '(':
			depth++
			cur.WriteRune(r)
		case r == ')':
			if depth > 0 {
				depth--
			}
			cur.WriteRune(r)
		case r == ' ' && depth == 0:
			if cur.Len() > 0 {
				toks = append(toks, cur.String())
				cur.Reset()
			}
		default:
			cur.WriteRune(r)
		}
	}
	if cur.Len() > 0 {
		toks = append(toks, cur.String())
	}
	return toks
}

// hasJumpPlaceholder reports whether a constant-form trcl/fill value
// contains an MCNP "j" (jump, meaning "use default") placeholder,
// which ApplyTransfo cannot meaningfully compose against.
func hasJumpPlaceholder(value string) bool {
	if !strings.HasPrefix(value, "(") {
		return false
	}
	inner := strings.TrimSuffix(strings.TrimPrefix(value, "("), ")")
	for _, t := range strings.Fields(inner) {
		if keywordEq(t, "j") {
			return true
		}
	}
	return false
}

// parseConstantTransform parses a "(tx ty tz ...)" inline form into a
// Transform, reusing the tr-card value-count grammar (3, 4, 12 or 13
// scalars).
func parseConstantTransform(value string, degrees bool) (*lin.Transform, error) {
	inner := strings.TrimSuffix(strings.TrimPrefix(value, "("), ")")
	toks := strings.Fields(inner)
	vals := make([]float64, 0, len(toks))
	for _, t := range toks {
		v, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return nil, wrapErr(MalformedInput, "constant transform value is not a number: "+t, err)
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
		if degrees {
			t.R.SetDegrees(&t.R)
		}
		if len(vals) == 13 {
			t.Sense = int(vals[12])
		}
	default:
		return nil, newErr(MalformedInput, "constant transform has an unsupported value count: "+value)
	}
	if t.Sense == 0 {
		t.Sense = 1
	}
	return t, nil
}

// formatConstantTransform renders t back to the "(tx ty tz ...)" form.
func formatConstantTransform(t *lin.Transform) string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(formatCardFloat(t.T.X))
	b.WriteByte(' ')
	b.WriteString(formatCardFloat(t.T.Y))
	b.WriteByte(' ')
	b.WriteString(formatCardFloat(t.T.Z))
	rows := t.R.Rows()
	if !t.R.Eq(lin.M3I) {
		for _, v := range rows {
			b.WriteByte(' ')
			b.WriteString(formatCardFloat(v))
		}
	}
	if t.Sense != 1 {
		b.WriteByte(' ')
		b.WriteString(strconv.Itoa(t.Sense))
	}
	b.WriteByte(')')
	return b.String()
}

// SetCstTrcl replaces every bare-integer trcl=/fill= reference in the
// deck's cells by its expanded constant form, using the referenced
// transform card's current scalar-unit value.
func (d *Deck) SetCstTrcl() {
	for _, c := range d.Cells {
		forEachTrclToken(c, func(_, val string) string {
			if strings.HasPrefix(val, "(") {
				return val
			}
			n, err := strconv.Atoi(val)
			if err != nil {
				return val
			}
			tc := d.FindTrCard(n)
			if tc.Transform == nil {
				return val
			}
			return formatConstantTransform(tc.Transform)
		})
	}
}

// SwapCstTrclByNum is the inverse of SetCstTrcl: every constant trcl/
// fill form is replaced by a freshly allocated transform card number,
// keeping the emitted text compact.
func (d *Deck) SwapCstTrclByNum() error {
	for _, c := range d.Cells {
		var allocErr error
		forEachTrclToken(c, func(_, val string) string {
			if !strings.HasPrefix(val, "(") || allocErr != nil {
				return val
			}
			t, err := parseConstantTransform(val, false)
			if err != nil {
				allocErr = err
				return val
			}
			id, err := d.nextFreeTransformID()
			if err != nil {
				d.warn(d.SourcePath, err.Error())
			}
			d.Transforms = append(d.Transforms, &TransformCard{Number: id, Transform: t, HasRotation: !t.R.Eq(lin.M3I)})
			d.TransRange.observe(id)
			return strconv.Itoa(id)
		})
		if allocErr != nil {
			return allocErr
		}
	}
	return nil
}

// applyTransfo is the shared implementation behind Translat/TrRotX/Y/Z/
// TrEuler/TrRotU/Transform (spec 4.6's "ApplyTransfo" operator): it
// converts degree-unit constant forms to scalar, rejects jump
// placeholders, gives every untransformed surface a fresh shared
// transform, composes every existing transform card and constant
// trcl/fill by t, and folds t into the deck's object_transform.
func (d *Deck) applyTransfo(t *lin.Transform, comment string) error {
	for _, c := range d.Cells {
		var jumpErr error
		forEachTrclToken(c, func(key, val string) string {
			if jumpErr != nil {
				return val
			}
			if hasJumpPlaceholder(val) {
				jumpErr = newErr(MalformedInput, "jump placeholder in cell-scope transform: "+key)
				return val
			}
			if !strings.HasPrefix(key, "*") || !strings.HasPrefix(val, "(") {
				return val
			}
			ct, err := parseConstantTransform(val, true)
			if err != nil {
				jumpErr = err
				return val
			}
			return formatConstantTransform(ct)
		})
		if jumpErr != nil {
			return jumpErr
		}
		// The converted constants are cosines now: drop the "*" unit marker.
		toks := splitTrailingTokens(c.Trailing)
		for i, tok := range toks {
			if key, val, ok := partitionEq(tok); ok && strings.HasPrefix(key, "*") && strings.HasPrefix(val, "(") {
				toks[i] = key[1:] + "=" + val
			}
		}
		c.Trailing = strings.Join(toks, " ")
	}

	sharedID := 0
	needsShared := false
	for _, s := range d.Surfaces {
		if s.TransformRef == 0 {
			needsShared = true
			break
		}
	}
	if needsShared {
		id, err := d.nextFreeTransformID()
		if err != nil {
			d.warn(d.SourcePath, err.Error())
		}
		sharedID = id
		d.Transforms = append(d.Transforms, &TransformCard{Number: sharedID, Transform: lin.NewTransformI(), Comment: comment})
		d.TransRange.observe(sharedID)
		for _, s := range d.Surfaces {
			if s.TransformRef == 0 {
				s.TransformRef = sharedID
			}
		}
	}

	for _, tc := range d.Transforms {
		tc.Transform = lin.Compose(tc.Transform, t)
		tc.HasRotation = tc.HasRotation || !tc.Transform.R.Eq(lin.M3I)
		if tc.Comment == "" {
			tc.Comment = comment
		}
	}

	for _, c := range d.Cells {
		forEachTrclToken(c, func(_, val string) string {
			if !strings.HasPrefix(val, "(") {
				return val
			}
			ct, err := parseConstantTransform(val, false)
			if err != nil {
				return val
			}
			return formatConstantTransform(lin.Compose(ct, t))
		})
	}

	d.ObjectTransform = lin.Compose(d.ObjectTransform, t)
	d.TransformHistory = append(d.TransformHistory, comment)
	return nil
}
