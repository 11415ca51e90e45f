// Copyright © 2013-2014 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package deck

// AllIDs is the renumber-filter sentinel meaning "every id in this
// class", per spec 4.5 ("{-1} sentinel = all").
var AllIDs = []int{-1}

// Renum renumbers transforms, then cells, then surfaces (order
// matters: transform ids must be final before cell trcl=/fill= and
// surface transform slots are rewritten), propagating every
// cross-reference. An empty filter for a class leaves it unchanged.
func (d *Deck) Renum(cellFilter, surfFilter, transFilter []int, cellStart, surfStart, transStart int) {
	transIDs := make([]int, len(d.Transforms))
	for i, t := range d.Transforms {
		transIDs[i] = t.Number
	}
	if remap := buildSequentialRemap(resolveFilter(transIDs, transFilter), transStart); len(remap) > 0 {
		renumberTransforms(d, remap)
	}

	cellIDs := make([]int, len(d.Cells))
	for i, c := range d.Cells {
		cellIDs[i] = c.Number
	}
	if remap := buildSequentialRemap(resolveFilter(cellIDs, cellFilter), cellStart); len(remap) > 0 {
		renumberCells(d, remap)
	}

	surfIDs := make([]int, len(d.Surfaces))
	for i, s := range d.Surfaces {
		surfIDs[i] = s.Number
	}
	if remap := buildSequentialRemap(resolveFilter(surfIDs, surfFilter), surfStart); len(remap) > 0 {
		renumberSurfaces(d, remap)
	}

	d.recomputeRanges()
}

func resolveFilter(existing, filter []int) []int {
	if len(filter) == 0 {
		return nil
	}
	if len(filter) == 1 && filter[0] == -1 {
		return append([]int{}, existing...)
	}
	want := map[int]bool{}
	for _, f := range filter {
		want[f] = true
	}
	var out []int
	for _, id := range existing {
		if want[id] {
			out = append(out, id)
		}
	}
	return out
}

func buildSequentialRemap(selected []int, start int) map[int]int {
	if len(selected) == 0 {
		return nil
	}
	remap := map[int]int{}
	next := start
	for _, id := range selected {
		remap[id] = next
		next++
	}
	return remap
}

func renumberTransforms(d *Deck, remap map[int]int) {
	current := map[int]*TransformCard{}
	for _, t := range d.Transforms {
		current[t.Number] = t
	}
	for oldID, newID := range remap {
		if oldID == newID {
			continue
		}
		t, ok := current[oldID]
		if !ok {
			continue
		}
		if other, collide := current[newID]; collide && other != t {
			other.Number = oldID
			current[oldID] = other
		} else {
			delete(current, oldID)
		}
		t.Number = newID
		current[newID] = t
	}

	remapLookup := func(n int) (int, bool) {
		v, ok := remap[n]
		return v, ok
	}
	for _, c := range d.Cells {
		forEachTrclToken(c, func(_, val string) string {
			if len(val) == 0 || val[0] == '(' {
				return val
			}
			n, err := atoiPrefix(trimSign(val))
			if err != nil {
				return val
			}
			if nv, ok := remapLookup(n); ok {
				return signOf(val) + itoa(nv)
			}
			return val
		})
	}
	for _, s := range d.Surfaces {
		if s.TransformRef > 0 {
			if nv, ok := remap[s.TransformRef]; ok {
				s.TransformRef = nv
			}
		}
	}
	for _, g := range d.Groups {
		for i, id := range g.Trans {
			if nv, ok := remap[id]; ok {
				g.Trans[i] = nv
			}
		}
	}
}

func trimSign(s string) string {
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		return s[1:]
	}
	return s
}

func signOf(s string) string {
	if len(s) > 0 && s[0] == '-' {
		return "-"
	}
	return ""
}

func renumberCells(d *Deck, remap map[int]int) {
	current := map[int]*Cell{}
	for _, c := range d.Cells {
		current[c.Number] = c
	}
	for oldID, newID := range remap {
		if oldID == newID {
			continue
		}
		c, ok := current[oldID]
		if !ok {
			continue
		}
		if other, collide := current[newID]; collide && other != c {
			other.Number = oldID
			current[oldID] = other
		} else {
			delete(current, oldID)
		}
		c.Number = newID
		current[newID] = c
	}

	for _, c := range d.Cells {
		if c.Kind == CloneCell {
			if nv, ok := remap[c.CloneOf]; ok {
				c.CloneOf = nv
			}
			continue
		}
		c.Geometry = rewriteCellComplementNumbers(c.Geometry, func(n int) (int, bool) {
			nv, ok := remap[n]
			return nv, ok
		})
		c.reparseRefs()
	}
	for _, g := range d.Groups {
		for i, id := range g.Cell {
			if nv, ok := remap[id]; ok {
				g.Cell[i] = nv
			}
		}
	}
}

func renumberSurfaces(d *Deck, remap map[int]int) {
	current := map[int]*Surface{}
	for _, s := range d.Surfaces {
		current[s.Number] = s
	}
	for oldID, newID := range remap {
		if oldID == newID {
			continue
		}
		s, ok := current[oldID]
		if !ok {
			continue
		}
		if other, collide := current[newID]; collide && other != s {
			other.Number = oldID
			current[oldID] = other
		} else {
			delete(current, oldID)
		}
		s.Number = newID
		current[newID] = s
	}

	for _, c := range d.Cells {
		c.Geometry = rewriteSurfaceNumbers(c.Geometry, func(n int) (int, bool) {
			nv, ok := remap[n]
			return nv, ok
		})
		c.reparseRefs()
	}
	for _, g := range d.Groups {
		for i, id := range g.Surf {
			if nv, ok := remap[id]; ok {
				g.Surf[i] = nv
			}
		}
	}
}

func (d *Deck) recomputeRanges() {
	d.CellRange = idRange{}
	for _, c := range d.Cells {
		d.CellRange.observe(c.Number)
	}
	d.SurfRange = idRange{}
	for _, s := range d.Surfaces {
		d.SurfRange.observe(s.Number)
	}
	d.TransRange = idRange{}
	for _, t := range d.Transforms {
		d.TransRange.observe(t.Number)
	}
	if diesis := d.diesisCell(); diesis != nil {
		d.EnclosingSurface = diesis.Geometry
	}
}
