// Copyright © 2013-2014 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package deck is a structural editor for Monte Carlo neutron/photon
// transport geometry decks: plain-text files describing a 3D world as a
// list of numbered surfaces, numbered cells, numbered coordinate
// transformations, material cards, and auxiliary simulation cards.
//
// Package deck wraps:
//   - a tokeniser/structurer that turns raw deck bytes into an indexed
//     in-memory Deck, preserving comments and trailing group metadata;
//   - an identifier-space algebra (Renum) that renumbers cells, surfaces
//     and transforms with full propagation through every cross-reference;
//   - a rigid-body transform algebra (see subpackage lin) for composing
//     translations and rotations;
//   - composition operators (Insert, InsertCells) that merge two decks;
//   - a cell-subset extraction operator (Extract) that closes a chosen
//     cell set under its dependencies and emits a standalone deck;
//   - an Emitter that formats a Deck back to column-80 text.
//
// The core treats material and physics-card bodies as opaque token
// sequences except where their first token is an identifier it must
// rewrite. It does not validate physical correctness, solve any transport
// problem, or guarantee byte-identical round-trips.
package deck

// Design Notes:
//
// Cell geometry is kept as card text. The surface and cell numbers it
// references are cached per cell (RefSurfaces, RefCellComplements) for
// reads; the renumber engine does not work on handles but rescans that
// text, rewrites the matching number runs in place and refreshes the
// caches. See the
// lin subpackage for the rotation/translation algebra, plan for the
// YAML batch-edit front end, and preview for the diagnostic PNG raster.

import (
	"fmt"

	"github.com/afriou/mcnpdeck/lin"
)

// idRange tracks the observed minimum/maximum of an identifier class.
type idRange struct {
	Min, Max int
	Seen     bool
}

func (r *idRange) observe(id int) {
	if !r.Seen {
		r.Min, r.Max = id, id
		r.Seen = true
		return
	}
	if id < r.Min {
		r.Min = id
	}
	if id > r.Max {
		r.Max = id
	}
}

// Deck is the indexed in-memory representation of a geometry deck.
type Deck struct {
	SourcePath string // path the deck was loaded from, "" if synthetic

	Cells      []*Cell
	Surfaces   []*Surface
	Transforms []*TransformCard
	Materials  []*MaterialRecord
	Groups     map[string]*Group

	// EnclosingSurface is the boolean expression of the bounding surfaces
	// extracted from the last non-world cell (the "diesis" cell).
	EnclosingSurface string

	CellRange  idRange
	SurfRange  idRange
	TransRange idRange

	// ObjectTransform accumulates the rigid-body transform applied to
	// this deck by Translat/TrRot*/TrEuler/TrRotU/Transform, with a
	// human-readable history of labels for the emitted banner comment.
	ObjectTransform  *lin.Transform
	TransformHistory []string

	// InsertedFrom records guest deck paths spliced in by Insert/
	// InsertCells, for the emitted banner comment.
	InsertedFrom []string

	// FreeMetadata is an optional trailing block of unparsed simulation
	// cards preserved verbatim (banners, tallies, source definitions
	// added with AddMCNPCard*).
	FreeMetadata []string

	Warnings []Warning

	nextCellID  int // scratch counters; no operator reads them
	nextSurfID  int
	nextTransID int
}

// NewDeck returns an empty Deck ready for programmatic construction.
func NewDeck() *Deck {
	return &Deck{
		Groups:          map[string]*Group{},
		ObjectTransform: lin.NewTransformI(),
	}
}

func (d *Deck) warn(source, detail string) {
	d.Warnings = append(d.Warnings, Warning{Source: source, Detail: detail})
	logCaveat(source, detail)
}

// FindCell returns the cell with the given number, or nil.
func (d *Deck) FindCell(number int) *Cell {
	for _, c := range d.Cells {
		if c.Number == number {
			return c
		}
	}
	return nil
}

// FindSurface returns the surface with the given number, or nil.
func (d *Deck) FindSurface(number int) *Surface {
	for _, s := range d.Surfaces {
		if s.Number == number {
			return s
		}
	}
	return nil
}

// FindTrCard returns the transform card with the given number, or an
// empty TransformCard{} if none is found (matching the stable contract
// in spec 6: "FindTrCard(n) -> parsed transform card or empty").
func (d *Deck) FindTrCard(number int) *TransformCard {
	for _, tc := range d.Transforms {
		if tc.Number == number {
			return tc
		}
	}
	return &TransformCard{}
}

// GetTr returns the deck's current accumulated object transform.
func (d *Deck) GetTr() *lin.Transform { return d.ObjectTransform }

// worldCell returns the deck's final cell, the world/exterior cell.
func (d *Deck) worldCell() *Cell {
	if len(d.Cells) == 0 {
		return nil
	}
	return d.Cells[len(d.Cells)-1]
}

// diesisCell returns the last cell before the world cell.
func (d *Deck) diesisCell() *Cell {
	if len(d.Cells) < 2 {
		return nil
	}
	return d.Cells[len(d.Cells)-2]
}

// Clone returns a deep copy of the deck, suitable for callers of Insert/
// InsertCells that need the guest to survive the call (Insert/InsertCells
// consume their guest argument by value semantics, per spec 3
// "Lifecycles").
func (d *Deck) Clone() *Deck {
	n := NewDeck()
	n.SourcePath = d.SourcePath
	n.EnclosingSurface = d.EnclosingSurface
	n.CellRange, n.SurfRange, n.TransRange = d.CellRange, d.SurfRange, d.TransRange
	ot := *d.ObjectTransform
	n.ObjectTransform = &ot
	n.TransformHistory = append([]string{}, d.TransformHistory...)
	n.InsertedFrom = append([]string{}, d.InsertedFrom...)
	n.FreeMetadata = append([]string{}, d.FreeMetadata...)
	n.Warnings = append([]Warning{}, d.Warnings...)
	for _, c := range d.Cells {
		cc := *c
		cc.RefSurfaces = append([]int{}, c.RefSurfaces...)
		cc.RefCellComplements = append([]int{}, c.RefCellComplements...)
		n.Cells = append(n.Cells, &cc)
	}
	for _, s := range d.Surfaces {
		ss := *s
		n.Surfaces = append(n.Surfaces, &ss)
	}
	for _, t := range d.Transforms {
		tt := *t
		n.Transforms = append(n.Transforms, &tt)
	}
	for _, m := range d.Materials {
		mm := *m
		mm.MPNLines = append([]string{}, m.MPNLines...)
		mm.MXLines = map[string]string{}
		for k, v := range m.MXLines {
			mm.MXLines[k] = v
		}
		n.Materials = append(n.Materials, &mm)
	}
	for name, g := range d.Groups {
		gg := *g
		gg.Cell = append([]int{}, g.Cell...)
		gg.Surf = append([]int{}, g.Surf...)
		gg.Trans = append([]int{}, g.Trans...)
		n.Groups[name] = &gg
	}
	return n
}

// maxTransformID is the largest transform card id the format tolerates;
// exceeding it reports TransformIdExhaustion but does not abort.
const maxTransformID = 9999

func (d *Deck) nextFreeTransformID() (int, error) {
	used := map[int]bool{}
	for _, t := range d.Transforms {
		used[t.Number] = true
	}
	for id := 1; id <= maxTransformID+1000; id++ {
		if !used[id] {
			if id > maxTransformID {
				return id, wrapErr(TransformIDExhaustion, fmt.Sprintf("allocated transform id %d exceeds %d", id, maxTransformID), nil)
			}
			return id, nil
		}
	}
	return 0, newErr(TransformIDExhaustion, "no free transform id")
}
