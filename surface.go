// Copyright © 2013-2014 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package deck

import (
	"strconv"
	"strings"
)

// Surface is one numbered surface card: an optional reflecting/white
// qualifier, an optional transform-card reference (or negative periodic
// pair reference, which is never rewritten by Renum), a surface-type
// token, and its numeric parameter list kept as text.
type Surface struct {
	Number        int
	Reflecting    bool // leading "*"
	WhiteBoundary bool // leading "+"

	// TransformRef is 0 for none, positive for a transform card number
	// (rewritten by Renum), or negative for a periodic-surface pair
	// reference (left untouched; spec 4.5 "periodic pair references are
	// never remapped").
	TransformRef int

	SurfType string
	Params   string
	Comment  string
}

// ParseSurfaceLine parses one logical surface card line.
func ParseSurfaceLine(raw string) (*Surface, error) {
	body, comment := splitDollarComment(raw)
	toks := strings.Fields(body)
	if len(toks) < 2 {
		return nil, newErr(MalformedInput, "surface card has fewer than 2 fields: "+raw)
	}

	head := toks[0]
	s := &Surface{Comment: comment}
	for len(head) > 0 && (head[0] == '*' || head[0] == '+') {
		if head[0] == '*' {
			s.Reflecting = true
		} else {
			s.WhiteBoundary = true
		}
		head = head[1:]
	}
	num, err := strconv.Atoi(head)
	if err != nil {
		return nil, wrapErr(MalformedInput, "surface number is not an integer: "+toks[0], err)
	}
	s.Number = num

	rest := toks[1:]
	if len(rest) < 1 {
		return nil, newErr(MalformedInput, "surface card missing type: "+raw)
	}
	if tr, err := strconv.Atoi(rest[0]); err == nil {
		s.TransformRef = tr
		rest = rest[1:]
	}
	if len(rest) < 1 {
		return nil, newErr(MalformedInput, "surface card missing type: "+raw)
	}
	s.SurfType = rest[0]
	s.Params = strings.Join(rest[1:], " ")
	return s, nil
}

// Text renders the surface card back to MCNP card text.
func (s *Surface) Text() string {
	var b strings.Builder
	if s.Reflecting {
		b.WriteByte('*')
	}
	if s.WhiteBoundary {
		b.WriteByte('+')
	}
	b.WriteString(strconv.Itoa(s.Number))
	if s.TransformRef != 0 {
		b.WriteByte(' ')
		b.WriteString(strconv.Itoa(s.TransformRef))
	}
	b.WriteByte(' ')
	b.WriteString(s.SurfType)
	if s.Params != "" {
		b.WriteByte(' ')
		b.WriteString(s.Params)
	}
	if s.Comment != "" {
		b.WriteString(" $ ")
		b.WriteString(s.Comment)
	}
	return b.String()
}
