// Copyright © 2013-2014 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package deck

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ExtractMode selects whether Extract keeps the named cells or
// everything except them.
type ExtractMode int

const (
	ExtractOnly ExtractMode = iota
	ExtractSubtract
)

// ExtractOption configures Extract.
type ExtractOption func(*extractConfig)

type extractConfig struct {
	mode ExtractMode
}

// WithExtractMode selects ExtractOnly (default) or ExtractSubtract.
func WithExtractMode(m ExtractMode) ExtractOption {
	return func(c *extractConfig) { c.mode = m }
}

// Extract computes the transitive closure of cellIDs (or its
// complement, in ExtractSubtract mode) under cell-complement/"like"
// dependencies, referenced surfaces, transforms and materials, and
// returns a standalone Deck wrapped in a fresh bounding sphere of the
// given radius.
func (d *Deck) Extract(cellIDs []int, radius float64, opts ...ExtractOption) (*Deck, error) {
	cfg := &extractConfig{mode: ExtractOnly}
	for _, o := range opts {
		o(cfg)
	}

	chosen := map[int]bool{}
	if cfg.mode == ExtractSubtract {
		exclude := map[int]bool{}
		for _, id := range cellIDs {
			exclude[id] = true
		}
		body := d.Cells
		if len(body) > 2 {
			body = body[:len(body)-2]
		}
		for _, c := range body {
			if !exclude[c.Number] {
				chosen[c.Number] = true
			}
		}
	} else {
		for _, id := range cellIDs {
			chosen[id] = true
		}
	}
	if len(chosen) == 0 {
		return nil, newErr(EmptyResult, "Extract closed to an empty cell set")
	}

	surfaces := map[int]bool{}
	materials := map[int]bool{}
	transforms := map[int]bool{}

	queue := make([]int, 0, len(chosen))
	for id := range chosen {
		queue = append(queue, id)
	}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		c := d.FindCell(id)
		if c == nil {
			continue
		}
		if c.Kind == CloneCell {
			if !chosen[c.CloneOf] {
				chosen[c.CloneOf] = true
				queue = append(queue, c.CloneOf)
			}
			continue
		}
		if c.Material != 0 {
			materials[c.Material] = true
		}
		for _, s := range c.RefSurfaces {
			surfaces[s] = true
		}
		for _, dep := range c.RefCellComplements {
			if !chosen[dep] {
				chosen[dep] = true
				queue = append(queue, dep)
			}
		}
		forEachTrclToken(c, func(_, val string) string {
			if len(val) == 0 || val[0] == '(' {
				return val
			}
			if n, err := strconv.Atoi(trimSign(val)); err == nil {
				transforms[n] = true
			}
			return val
		})
	}

	for sNum := range surfaces {
		s := d.FindSurface(sNum)
		if s != nil && s.TransformRef > 0 {
			transforms[s.TransformRef] = true
		}
	}

	out := NewDeck()
	out.SourcePath = d.SourcePath

	for _, c := range d.Cells {
		if chosen[c.Number] {
			cc := *c
			cc.RefSurfaces = append([]int{}, c.RefSurfaces...)
			cc.RefCellComplements = append([]int{}, c.RefCellComplements...)
			out.Cells = append(out.Cells, &cc)
			out.CellRange.observe(c.Number)
		}
	}

	usedCellIDs := map[int]bool{}
	for id := range chosen {
		usedCellIDs[id] = true
	}
	usedSurfIDs := map[int]bool{}
	for id := range surfaces {
		usedSurfIDs[id] = true
	}

	var innerNames []string
	for _, c := range out.Cells {
		innerNames = append(innerNames, fmt.Sprintf("#%d", c.Number))
	}
	sort.Strings(innerNames)
	sphereID := nextFreeInt(usedSurfIDs)
	usedSurfIDs[sphereID] = true
	innerID := nextFreeInt(usedCellIDs)
	usedCellIDs[innerID] = true
	outerID := nextFreeInt(usedCellIDs)
	usedCellIDs[outerID] = true

	inner := &Cell{
		Number:   innerID,
		Kind:     PlainCell,
		Material: 0,
		Geometry: appendFragment("-"+itoa(sphereID), strings.Join(innerNames, " ")),
	}
	inner.reparseRefs()
	outer := &Cell{
		Number:   outerID,
		Kind:     PlainCell,
		Material: 0,
		Geometry: itoa(sphereID),
		Trailing: "imp:n=0 imp:p=0 imp:e=0",
	}
	out.Cells = append(out.Cells, inner, outer)
	out.CellRange.observe(innerID)
	out.CellRange.observe(outerID)

	for _, s := range d.Surfaces {
		if surfaces[s.Number] {
			ss := *s
			out.Surfaces = append(out.Surfaces, &ss)
			out.SurfRange.observe(s.Number)
		}
	}
	out.Surfaces = append(out.Surfaces, &Surface{
		Number:   sphereID,
		SurfType: "so",
		Params:   formatCardFloat(radius),
	})
	out.SurfRange.observe(sphereID)

	for _, m := range d.Materials {
		if materials[m.Number] {
			mm := *m
			mm.MPNLines = append([]string{}, m.MPNLines...)
			mm.MXLines = map[string]string{}
			for k, v := range m.MXLines {
				mm.MXLines[k] = v
			}
			out.Materials = append(out.Materials, &mm)
		}
	}
	for _, t := range d.Transforms {
		if transforms[t.Number] {
			tt := *t
			out.Transforms = append(out.Transforms, &tt)
			out.TransRange.observe(t.Number)
		}
	}

	for name, g := range d.Groups {
		fg := &Group{Name: name, Comment: g.Comment}
		for _, id := range g.Cell {
			if chosen[id] {
				fg.Cell = append(fg.Cell, id)
			}
		}
		for _, id := range g.Surf {
			if surfaces[id] {
				fg.Surf = append(fg.Surf, id)
			}
		}
		for _, id := range g.Trans {
			if transforms[id] {
				fg.Trans = append(fg.Trans, id)
			}
		}
		out.Groups[name] = fg
	}

	return out, nil
}

func nextFreeInt(used map[int]bool) int {
	for id := 1; ; id++ {
		if !used[id] {
			return id
		}
	}
}
