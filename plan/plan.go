// Copyright © 2013-2014 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package plan is a YAML-described batch edit front end for package
// deck: a driver program loads a Plan instead of hand-writing the
// sequence of Translat/TrRot*/Renum/Insert/Extract calls the original
// tool always required a bespoke Python script for.
package plan

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/afriou/mcnpdeck"
)

// Step is one batch-edit operation. Only the fields relevant to Op are
// read; the rest are left at their zero value.
type Step struct {
	Op string `yaml:"op"`

	Vector  [3]float64 `yaml:"vector,omitempty"`
	Angle   float64    `yaml:"angle,omitempty"`
	Alpha   float64    `yaml:"alpha,omitempty"`
	Beta    float64    `yaml:"beta,omitempty"`
	Gamma   float64    `yaml:"gamma,omitempty"`
	Axis    [3]float64 `yaml:"axis,omitempty"`
	Unit    string     `yaml:"unit,omitempty"` // "deg" (default) or "rad"
	Comment string     `yaml:"comment,omitempty"`

	CellStart  int   `yaml:"cell_start,omitempty"`
	SurfStart  int   `yaml:"surf_start,omitempty"`
	TransStart int   `yaml:"trans_start,omitempty"`
	Cells      []int `yaml:"cells,omitempty"`

	Path     string `yaml:"path,omitempty"`
	Location string `yaml:"location,omitempty"`
	Force    bool   `yaml:"force,omitempty"`

	Radius int    `yaml:"radius,omitempty"`
	Mode   string `yaml:"mode,omitempty"`

	Mat  int     `yaml:"mat,omitempty"`
	Dens float64 `yaml:"dens,omitempty"`
}

// Plan is an ordered list of edit steps applied to one Deck.
type Plan struct {
	Steps []Step `yaml:"steps"`
}

// Load reads and parses a YAML batch edit plan.
func Load(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("plan: failed to read %s: %w", path, err)
	}
	var p Plan
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("plan: failed to parse %s: %w", path, err)
	}
	return &p, nil
}

func unit(tag string) deck.AngleUnit {
	if tag == "rad" {
		return deck.Rad
	}
	return deck.Deg
}

func location(tag string) deck.Location {
	switch tag {
	case "inside":
		return deck.LocationInside
	case "outside":
		return deck.LocationOutside
	default:
		return deck.LocationUnknown
	}
}

// Run applies every step of the plan to d in order, stopping at the
// first error.
func (p *Plan) Run(d *deck.Deck) error {
	for i, s := range p.Steps {
		if err := s.apply(d); err != nil {
			return fmt.Errorf("plan: step %d (%s): %w", i, s.Op, err)
		}
	}
	return nil
}

func (s Step) apply(d *deck.Deck) error {
	switch s.Op {
	case "translate":
		return d.Translat(s.Vector, s.Comment)
	case "rotate_x":
		return d.TrRotX(s.Vector, s.Angle, unit(s.Unit), s.Comment)
	case "rotate_y":
		return d.TrRotY(s.Vector, s.Angle, unit(s.Unit), s.Comment)
	case "rotate_z":
		return d.TrRotZ(s.Vector, s.Angle, unit(s.Unit), s.Comment)
	case "euler":
		return d.TrEuler(s.Vector, s.Alpha, s.Beta, s.Gamma, unit(s.Unit), s.Comment)
	case "axis_angle":
		return d.TrRotU(s.Axis, s.Vector, s.Angle, unit(s.Unit), s.Comment)
	case "renum":
		d.Renum(deck.AllIDs, deck.AllIDs, deck.AllIDs, s.CellStart, s.SurfStart, s.TransStart)
		return nil
	case "resolve_trcl":
		return d.ResolveTRCL()
	case "insert", "insert_cells":
		guest, err := deck.Load(s.Path)
		if err != nil {
			return err
		}
		opts := []deck.InsertOption{deck.WithLocation(location(s.Location))}
		if s.Force {
			opts = append(opts, deck.ForceRenumber())
		}
		if s.Op == "insert" {
			d.Insert(guest, opts...)
		} else {
			d.InsertCells(guest, opts...)
		}
		return nil
	case "swap_mat":
		d.SwapCellMat(s.Cells, s.Mat, s.Dens)
		return nil
	case "extract":
		mode := deck.ExtractOnly
		if s.Mode == "subtract" {
			mode = deck.ExtractSubtract
		}
		_, err := d.Extract(s.Cells, float64(s.Radius), deck.WithExtractMode(mode))
		return err
	default:
		return fmt.Errorf("unrecognised plan op %q", s.Op)
	}
}
