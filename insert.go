// Copyright © 2013-2014 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package deck

import "fmt"

// Location hints the geometric relationship of a guest deck being
// inserted, controlling which host cell(s) receive the spliced
// enclosing-surface expression.
type Location int

const (
	LocationUnknown Location = iota
	LocationInside
	LocationOutside
)

// InsertOption configures Insert.
type InsertOption func(*insertConfig)

type insertConfig struct {
	location Location
	forceRenum bool
}

// WithLocation sets the insert location hint (default LocationUnknown).
func WithLocation(l Location) InsertOption {
	return func(c *insertConfig) { c.location = l }
}

// ForceRenumber forces both decks to be renumbered from scratch before
// composition, even if their id ranges do not overlap.
func ForceRenumber() InsertOption {
	return func(c *insertConfig) { c.forceRenum = true }
}

func rangesOverlap(a, b idRange) bool {
	if !a.Seen || !b.Seen {
		return false
	}
	return a.Min <= b.Max && b.Min <= a.Max
}

// reconcileRanges renumbers guest (and, if forced, host) so that the
// two decks' cell/surface/transform id classes become disjoint, per
// spec 4.8 step 1.
func reconcileRanges(host, guest *Deck, force bool) {
	if force {
		guest.Renum(AllIDs, AllIDs, AllIDs, 1, 1, 1)
		host.Renum(AllIDs, AllIDs, AllIDs, guest.CellRange.Max+1, guest.SurfRange.Max+1, guest.TransRange.Max+1)
		return
	}
	if rangesOverlap(host.CellRange, guest.CellRange) {
		guest.Renum(AllIDs, nil, nil, host.CellRange.Max+1, 1, 1)
	}
	if rangesOverlap(host.SurfRange, guest.SurfRange) {
		guest.Renum(nil, AllIDs, nil, 1, host.SurfRange.Max+1, 1)
	}
	if rangesOverlap(host.TransRange, guest.TransRange) {
		guest.Renum(nil, nil, AllIDs, 1, 1, host.TransRange.Max+1)
	}
}

// remapGuestMaterials rewrites every guest cell's material slot per
// the host/guest material-id remap produced by mergeMaterials.
func remapGuestMaterials(guest *Deck, remap map[int]int) {
	for _, c := range guest.Cells {
		if c.Kind != PlainCell || c.Material == 0 {
			continue
		}
		if nv, ok := remap[c.Material]; ok {
			c.Material = nv
		}
	}
}

// mergeGroups folds guest's groups into host's, per spec 4.8 step 6:
// groups sharing a name and the same set of populated sub-keys have
// their id lists concatenated; otherwise the guest group is added
// under a uniquified name.
func mergeGroups(host, guest *Deck) {
	for name, g := range guest.Groups {
		existing, ok := host.Groups[name]
		if ok && sameGroupShape(existing, g) {
			existing.Cell = append(existing.Cell, g.Cell...)
			existing.Surf = append(existing.Surf, g.Surf...)
			existing.Trans = append(existing.Trans, g.Trans...)
			continue
		}
		newName := name
		if ok {
			for i := 2; ; i++ {
				candidate := fmt.Sprintf("%s_%d", name, i)
				if _, taken := host.Groups[candidate]; !taken {
					newName = candidate
					break
				}
			}
		}
		gc := *g
		gc.Name = newName
		host.Groups[newName] = &gc
	}
}

func sameGroupShape(a, b *Group) bool {
	return (len(a.Cell) > 0) == (len(b.Cell) > 0) &&
		(len(a.Surf) > 0) == (len(b.Surf) > 0) &&
		(len(a.Trans) > 0) == (len(b.Trans) > 0)
}

// Insert splices guest into host: identifier ranges are reconciled,
// materials merged by structural equality, cell/surface/transform/
// material blocks concatenated, groups merged, and guest's enclosing
// surface spliced into host's diesis and/or world cell depending on
// location. Insert consumes guest; callers that need it to survive
// must Clone it first.
func (host *Deck) Insert(guest *Deck, opts ...InsertOption) {
	cfg := &insertConfig{location: LocationUnknown}
	for _, o := range opts {
		o(cfg)
	}

	reconcileRanges(host, guest, cfg.forceRenum)
	remap := mergeMaterials(host, guest)
	remapGuestMaterials(guest, remap)

	diesis := host.diesisCell()
	world := host.worldCell()

	guestBody := guest.Cells
	if len(guestBody) > 0 {
		guestBody = guestBody[:len(guestBody)-1]
	}
	host.Cells = append(append([]*Cell{}, guestBody...), host.Cells...)
	host.Surfaces = append(append([]*Surface{}, guest.Surfaces...), host.Surfaces...)
	host.Transforms = append(append([]*TransformCard{}, guest.Transforms...), host.Transforms...)
	host.FreeMetadata = append(append([]string{}, guest.FreeMetadata...), host.FreeMetadata...)
	host.Warnings = append(host.Warnings, guest.Warnings...)
	mergeGroups(host, guest)

	// Re-derive the enclosing fragment from the (possibly just-renumbered)
	// guest diesis cell rather than trusting the cached EnclosingSurface,
	// which reconcileRanges' Renum call above already refreshes but which
	// a caller that mutated guest by hand might not have.
	frag := ""
	if guestDiesis := guest.diesisCell(); guestDiesis != nil {
		frag = guestDiesis.Geometry
	}
	if (cfg.location == LocationInside || cfg.location == LocationUnknown) && diesis != nil && frag != "" {
		diesis.Geometry = appendFragment(diesis.Geometry, frag)
		diesis.Comment = guest.SourcePath
		diesis.reparseRefs()
	}
	if (cfg.location == LocationOutside || cfg.location == LocationUnknown) && world != nil && frag != "" {
		world.Geometry = appendFragment(world.Geometry, frag)
		world.Comment = guest.SourcePath
		world.reparseRefs()
	}

	host.InsertedFrom = append(host.InsertedFrom, guest.SourcePath)
}

// InsertCells differs from Insert only in the splicing step: instead
// of appending the guest's bounding expression, it subtracts every
// non-world, non-diesis guest cell from the host's diesis cell via
// "#N" complement operators.
func (host *Deck) InsertCells(guest *Deck, opts ...InsertOption) {
	cfg := &insertConfig{location: LocationUnknown}
	for _, o := range opts {
		o(cfg)
	}

	reconcileRanges(host, guest, cfg.forceRenum)
	remap := mergeMaterials(host, guest)
	remapGuestMaterials(guest, remap)

	diesis := host.diesisCell()

	var subtracted []*Cell
	if len(guest.Cells) > 2 {
		subtracted = guest.Cells[:len(guest.Cells)-2]
	}

	guestBody := guest.Cells
	if len(guestBody) > 0 {
		guestBody = guestBody[:len(guestBody)-1]
	}
	host.Cells = append(append([]*Cell{}, guestBody...), host.Cells...)
	host.Surfaces = append(append([]*Surface{}, guest.Surfaces...), host.Surfaces...)
	host.Transforms = append(append([]*TransformCard{}, guest.Transforms...), host.Transforms...)
	host.FreeMetadata = append(append([]string{}, guest.FreeMetadata...), host.FreeMetadata...)
	host.Warnings = append(host.Warnings, guest.Warnings...)
	mergeGroups(host, guest)

	if diesis != nil {
		var frag string
		for _, gc := range subtracted {
			frag = appendFragment(frag, fmt.Sprintf("#%d", gc.Number))
		}
		if frag != "" {
			diesis.Geometry = appendFragment(diesis.Geometry, frag)
			diesis.Comment = guest.SourcePath
			diesis.reparseRefs()
		}
	}

	host.InsertedFrom = append(host.InsertedFrom, guest.SourcePath)
}

func appendFragment(base, frag string) string {
	if base == "" {
		return frag
	}
	if frag == "" {
		return base
	}
	return base + " " + frag
}
