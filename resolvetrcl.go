// Copyright © 2013-2014 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package deck

// maxSafeResolveIterations bounds ResolveTRCL per spec 4.7: renumbering
// can itself create new collisions, so the pass iterates to a fixed
// point or gives up.
const maxSafeResolveIterations = 10

// ResolveTRCL finds cells whose cell-transform derived surfaces
// (numbered surf + 1000*cell by the downstream solver) collide with
// existing surfaces, or whose own cell/surface numbers are >= 1000,
// and renumbers them (and any "like"-dependent cells) into a safe
// range above the deck's current maximum cell id.
func (d *Deck) ResolveTRCL() error {
	for iter := 0; iter < maxSafeResolveIterations; iter++ {
		offenders := d.findTRCLCollisions()
		if len(offenders) == 0 {
			return nil
		}
		safeStart := d.CellRange.Max + 1
		if safeStart < 1 {
			safeStart = 1
		}
		d.Renum(offenders, nil, nil, safeStart, 1, 1)
	}
	return newErr(ConvergenceFailure, "ResolveTRCL did not converge within the iteration cap")
}

func (d *Deck) findTRCLCollisions() []int {
	existingSurf := map[int]bool{}
	for _, s := range d.Surfaces {
		existingSurf[s.Number] = true
	}

	seen := map[int]bool{}
	var offenders []int
	for _, c := range d.Cells {
		if c.Kind != PlainCell {
			continue
		}
		hasTrcl := false
		forEachTrclToken(c, func(_, val string) string {
			hasTrcl = true
			return val
		})
		if !hasTrcl {
			continue
		}
		bad := c.Number >= 1000
		for _, sNum := range c.RefSurfaces {
			if sNum >= 1000 {
				bad = true
			}
			if existingSurf[sNum+1000*c.Number] {
				bad = true
			}
		}
		if bad && !seen[c.Number] {
			seen[c.Number] = true
			offenders = append(offenders, c.Number)
		}
	}

	for _, c := range d.Cells {
		if c.Kind == CloneCell && seen[c.CloneOf] && !seen[c.Number] {
			seen[c.Number] = true
			offenders = append(offenders, c.Number)
		}
	}
	return offenders
}
