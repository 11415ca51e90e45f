// Copyright © 2013-2014 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package plan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/afriou/mcnpdeck"
)

const testDeckText = `c simple two-cell test deck
10 5 -2.7 -1 2
20 0 1

1 pz 0
2 so 10.0

`

func TestLoadParsesStepsFromYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plan.yaml")
	yamlText := "steps:\n" +
		"  - op: translate\n" +
		"    vector: [1, 0, 0]\n" +
		"    comment: shift\n" +
		"  - op: renum\n" +
		"    cell_start: 100\n" +
		"    surf_start: 200\n" +
		"    trans_start: 1\n"
	if err := os.WriteFile(path, []byte(yamlText), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(p.Steps) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(p.Steps))
	}
	if p.Steps[0].Op != "translate" || p.Steps[0].Vector != [3]float64{1, 0, 0} {
		t.Errorf("step 0 = %+v", p.Steps[0])
	}
	if p.Steps[1].Op != "renum" || p.Steps[1].CellStart != 100 {
		t.Errorf("step 1 = %+v", p.Steps[1])
	}
}

func TestRunAppliesTranslateAndRenum(t *testing.T) {
	d, err := deck.LoadString("test", testDeckText)
	if err != nil {
		t.Fatalf("LoadString: %v", err)
	}
	p := &Plan{Steps: []Step{
		{Op: "translate", Vector: [3]float64{1, 2, 3}, Comment: "shift"},
		{Op: "renum", CellStart: 100, SurfStart: 200, TransStart: 1},
	}}
	if err := p.Run(d); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(d.Transforms) != 1 {
		t.Fatalf("expected the translate step to append one transform card, got %d", len(d.Transforms))
	}
	if d.FindCell(100) == nil {
		t.Error("expected the renum step to renumber cell 10 to 100")
	}
}

func TestRunSwapMatChangesMaterial(t *testing.T) {
	d, err := deck.LoadString("test", testDeckText)
	if err != nil {
		t.Fatalf("LoadString: %v", err)
	}
	p := &Plan{Steps: []Step{
		{Op: "swap_mat", Cells: []int{10}, Mat: 9, Dens: -3.5},
	}}
	if err := p.Run(d); err != nil {
		t.Fatalf("Run: %v", err)
	}
	c := d.FindCell(10)
	if c.Material != 9 || c.Density != -3.5 {
		t.Errorf("swap_mat did not update cell 10: %+v", c)
	}
}

func TestRunRejectsUnknownOp(t *testing.T) {
	d, err := deck.LoadString("test", testDeckText)
	if err != nil {
		t.Fatalf("LoadString: %v", err)
	}
	p := &Plan{Steps: []Step{{Op: "frobnicate"}}}
	if err := p.Run(d); err == nil {
		t.Fatal("expected an error for an unrecognised op")
	}
}
