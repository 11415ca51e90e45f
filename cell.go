// Copyright © 2013-2014 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package deck

import (
	"strconv"
	"strings"
)

// CellKind distinguishes a fully specified cell from a "like N but"
// clone card; the two carry different fields and emit differently.
type CellKind int

const (
	PlainCell CellKind = iota
	CloneCell
)

// Cell is one numbered cell card. A CloneCell only populates Number,
// Kind, CloneOf, CloneOverrides and Comment; a PlainCell populates the
// rest. Geometry and Trailing are kept as card text rather than parsed
// expression trees: the editing operators only ever need to locate and
// rewrite the surface/cell numbers embedded in that text, not evaluate
// the boolean geometry.
type Cell struct {
	Number int
	Kind   CellKind
	Indent int // leading blank columns before the id, for round-trip texture

	// PlainCell fields.
	Material   int
	Density    float64
	HasDensity bool
	Geometry   string
	Trailing   string

	// CloneCell fields ("like <CloneOf> but <CloneOverrides>").
	CloneOf        int
	CloneOverrides string

	Comment string // trailing "$ ..." text, without the "$"

	// RefSurfaces and RefCellComplements are the surface numbers and
	// cell numbers referenced from Geometry, cached at parse time and
	// refreshed by reparseRefs after any Geometry edit.
	RefSurfaces        []int
	RefCellComplements []int
}

// trailingKeywords are cell-card keyword parameters; the first token in
// a cell's tail matching one of these (case-insensitively, up to an
// optional "=") starts the trailing-keyword region and ends Geometry.
var trailingKeywords = []string{
	"trcl", "*trcl", "imp:n", "imp:p", "imp:e", "imp",
	"u", "fill", "*fill", "vol", "lat", "nonu", "tmp",
	"cosy", "pd", "dxc", "pwt", "ext", "fcl", "wwn", "elpt",
	"bflcl", "unc",
}

func isTrailingKeyword(tok string) bool {
	key := tok
	if eq := strings.IndexByte(key, '='); eq >= 0 {
		key = key[:eq]
	}
	if colon := strings.IndexByte(key, ':'); colon >= 0 {
		// imp:n, imp:p, imp:e match exactly; anything else with a
		// ":particle" suffix (e.g. a stray wwn:n) is compared whole
		// below and so does not match "wwn".
		base := key[:colon]
		if keywordEq(base, "imp") {
			for _, kw := range trailingKeywords {
				if keywordEq(kw, key) {
					return true
				}
			}
			return false
		}
	}
	for _, kw := range trailingKeywords {
		if keywordEq(kw, key) {
			return true
		}
	}
	return false
}

// ParseCellLine parses one logical (continuation-joined) cell card line.
func ParseCellLine(raw string) (*Cell, error) {
	body, comment := splitDollarComment(raw)
	toks := strings.Fields(body)
	if len(toks) < 2 {
		return nil, newErr(MalformedInput, "cell card has fewer than 2 fields: "+raw)
	}
	num, err := strconv.Atoi(toks[0])
	if err != nil {
		return nil, wrapErr(MalformedInput, "cell number is not an integer: "+toks[0], err)
	}

	if keywordEq(toks[1], "like") {
		if len(toks) < 4 || !keywordEq(toks[3], "but") {
			return nil, newErr(MalformedInput, "malformed \"like N but\" cell card: "+raw)
		}
		parent, err := strconv.Atoi(toks[2])
		if err != nil {
			return nil, wrapErr(MalformedInput, "clone parent is not an integer: "+toks[2], err)
		}
		return &Cell{
			Number:         num,
			Kind:           CloneCell,
			CloneOf:        parent,
			CloneOverrides: strings.Join(toks[4:], " "),
			Comment:        comment,
		}, nil
	}

	mat, err := strconv.Atoi(toks[1])
	if err != nil {
		return nil, wrapErr(MalformedInput, "cell material is not an integer: "+toks[1], err)
	}
	idx := 2
	var density float64
	hasDensity := false
	if mat != 0 {
		if len(toks) < 3 {
			return nil, newErr(MalformedInput, "non-void cell missing density: "+raw)
		}
		density, err = strconv.ParseFloat(toks[2], 64)
		if err != nil {
			return nil, wrapErr(MalformedInput, "cell density is not a number: "+toks[2], err)
		}
		hasDensity = true
		idx = 3
	}
	rest := strings.Join(toks[idx:], " ")
	geom, trailing := splitTrailingRegion(rest)

	c := &Cell{
		Number:     num,
		Kind:       PlainCell,
		Material:   mat,
		Density:    density,
		HasDensity: hasDensity,
		Geometry:   geom,
		Trailing:   trailing,
		Comment:    comment,
	}
	c.reparseRefs()
	return c, nil
}

// splitDollarComment splits a card line at its first "$".
func splitDollarComment(line string) (body, comment string) {
	i := strings.IndexByte(line, '$')
	if i < 0 {
		return strings.TrimRight(line, " \t"), ""
	}
	return strings.TrimRight(line[:i], " \t"), strings.TrimSpace(line[i+1:])
}

// splitTrailingRegion scans the whitespace-delimited tokens of rest for
// the leftmost trailing-keyword token, per spec 4.3's "first recognised
// keyword wins" rule, and splits there.
func splitTrailingRegion(rest string) (geom, trailing string) {
	toks := strings.Fields(rest)
	for i, tok := range toks {
		if isTrailingKeyword(tok) {
			return strings.Join(toks[:i], " "), strings.Join(toks[i:], " ")
		}
	}
	return rest, ""
}

// reparseRefs refreshes RefSurfaces/RefCellComplements from Geometry.
func (c *Cell) reparseRefs() {
	c.RefSurfaces = collectSurfaceRefs(c.Geometry)
	c.RefCellComplements = collectCellComplementRefs(c.Geometry)
}

// Text renders the cell card back to MCNP card text, not yet wrapped to
// column 80 (see the Emitter for continuation folding).
func (c *Cell) Text() string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(c.Number))
	b.WriteByte(' ')
	if c.Kind == CloneCell {
		b.WriteString("like ")
		b.WriteString(strconv.Itoa(c.CloneOf))
		b.WriteString(" but")
		if c.CloneOverrides != "" {
			b.WriteByte(' ')
			b.WriteString(c.CloneOverrides)
		}
	} else {
		b.WriteString(strconv.Itoa(c.Material))
		if c.HasDensity {
			b.WriteByte(' ')
			b.WriteString(formatCardFloat(c.Density))
		}
		if c.Geometry != "" {
			b.WriteByte(' ')
			b.WriteString(c.Geometry)
		}
		if c.Trailing != "" {
			b.WriteByte(' ')
			b.WriteString(c.Trailing)
		}
	}
	if c.Comment != "" {
		b.WriteString(" $ ")
		b.WriteString(c.Comment)
	}
	return b.String()
}

func formatCardFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	return s
}
