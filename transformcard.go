// Copyright © 2013-2014 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package deck

import (
	"strconv"
	"strings"

	"github.com/afriou/mcnpdeck/lin"
)

// TransformCard is one numbered "tr"/"*tr" coordinate-transform card.
// Number-only cards (translation, identity rotation) and full
// translation+rotation cards both populate Transform; Degrees records
// whether the nine rotation scalars were direction-angle degrees (a
// "*tr" card, converted with lin.M3.SetDegrees) rather than direction
// cosines.
type TransformCard struct {
	Number      int
	Degrees     bool
	HasRotation bool
	Transform   *lin.Transform
	Comment     string
}

// ParseTransformLine parses one logical "tr"/"*tr" card line.
func ParseTransformLine(raw string) (*TransformCard, error) {
	body, comment := splitDollarComment(raw)
	toks := strings.Fields(body)
	if len(toks) < 1 {
		return nil, newErr(MalformedInput, "empty transform card")
	}
	head := toks[0]
	degrees := false
	if strings.HasPrefix(head, "*") {
		degrees = true
		head = head[1:]
	}
	lower := strings.ToLower(head)
	if !strings.HasPrefix(lower, "tr") {
		return nil, newErr(MalformedInput, "not a transform card: "+raw)
	}
	numStr := head[2:]
	num, err := strconv.Atoi(numStr)
	if err != nil {
		return nil, wrapErr(MalformedInput, "transform number is not an integer: "+numStr, err)
	}

	vals := make([]float64, 0, len(toks)-1)
	for _, t := range toks[1:] {
		v, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return nil, wrapErr(MalformedInput, "transform value is not a number: "+t, err)
		}
		vals = append(vals, v)
	}

	tc := &TransformCard{Number: num, Degrees: degrees, Comment: comment}
	tr := lin.NewTransformI()
	switch len(vals) {
	case 3:
		tr.T.SetS(vals[0], vals[1], vals[2])
	case 4:
		tr.T.SetS(vals[0], vals[1], vals[2])
		tr.Sense = int(vals[3])
	case 12:
		tr.T.SetS(vals[0], vals[1], vals[2])
		tr.R.SetS(vals[3], vals[4], vals[5], vals[6], vals[7], vals[8], vals[9], vals[10], vals[11])
		if degrees {
			tr.R.SetDegrees(&tr.R)
		}
		tc.HasRotation = true
	case 13:
		tr.T.SetS(vals[0], vals[1], vals[2])
		tr.R.SetS(vals[3], vals[4], vals[5], vals[6], vals[7], vals[8], vals[9], vals[10], vals[11])
		if degrees {
			tr.R.SetDegrees(&tr.R)
		}
		tr.Sense = int(vals[12])
		tc.HasRotation = true
	default:
		return nil, newErr(MalformedInput, "transform card has an unsupported value count: "+raw)
	}
	if tr.Sense == 0 {
		tr.Sense = 1
	}
	tc.Transform = tr
	return tc, nil
}

// Text renders the transform card back to MCNP card text.
func (tc *TransformCard) Text() string {
	var b strings.Builder
	if tc.Degrees {
		b.WriteByte('*')
	}
	b.WriteString("tr")
	b.WriteString(strconv.Itoa(tc.Number))
	b.WriteByte(' ')
	t := tc.Transform
	b.WriteString(formatCardFloat(t.T.X))
	b.WriteByte(' ')
	b.WriteString(formatCardFloat(t.T.Y))
	b.WriteByte(' ')
	b.WriteString(formatCardFloat(t.T.Z))
	if tc.HasRotation {
		rows := t.R.Rows()
		for _, v := range rows {
			b.WriteByte(' ')
			b.WriteString(formatCardFloat(v))
		}
	}
	if t.Sense != 1 {
		b.WriteByte(' ')
		b.WriteString(strconv.Itoa(t.Sense))
	}
	if tc.Comment != "" {
		b.WriteString(" $ ")
		b.WriteString(tc.Comment)
	}
	return b.String()
}
