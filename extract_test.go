// Copyright © 2013-2014 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package deck

import "testing"

const extractDeckText = `c deck with two independent body cells, a diesis and a world
10 1 -1.0 -1
15 0 -1 2
20 0 1 -3
30 0 3

1 so 5.0
2 so 8.0
3 so 50.0

m1 1001.70c 1.0

`

func TestExtractClosesOverReferencedSurfacesAndMaterials(t *testing.T) {
	d, err := LoadString("test", extractDeckText)
	if err != nil {
		t.Fatalf("LoadString: %v", err)
	}
	out, err := d.Extract([]int{10}, 100.0)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	if out.FindCell(10) == nil {
		t.Fatal("expected chosen cell 10 to survive extraction")
	}
	if out.FindSurface(1) == nil {
		t.Error("expected surface 1 (referenced by cell 10) to be pulled into the closure")
	}
	for _, s := range out.Surfaces {
		if s.Params == "8.0" || s.Params == "50.0" {
			t.Errorf("did not expect an unrelated surface in the closure, got %+v", s)
		}
	}
	if len(out.Materials) != 1 || out.Materials[0].Number != 1 {
		t.Errorf("expected material 1 to be pulled into the closure, got %v", out.Materials)
	}

	// Extract always wraps the result in a fresh bounding sphere, plus
	// the one surface chosen cell 10 referenced: exactly two surfaces.
	if len(out.Surfaces) != 2 {
		t.Errorf("expected 2 surfaces (original + synthetic sphere), got %d: %+v", len(out.Surfaces), out.Surfaces)
	}
	foundSphere := false
	for _, s := range out.Surfaces {
		if s.SurfType == "so" && s.Params == formatCardFloat(100.0) {
			foundSphere = true
		}
	}
	if !foundSphere {
		t.Error("expected a synthetic bounding sphere surface of the requested radius")
	}
	if len(out.Cells) != 3 {
		t.Errorf("expected chosen cell + inner/outer wrapper cells, got %d cells", len(out.Cells))
	}
}

func TestExtractEmptySelectionIsAnError(t *testing.T) {
	d, err := LoadString("test", extractDeckText)
	if err != nil {
		t.Fatalf("LoadString: %v", err)
	}
	if _, err := d.Extract(nil, 10.0); err == nil {
		t.Fatal("expected an error extracting an empty cell set")
	}
}

func TestExtractSubtractModeKeepsComplement(t *testing.T) {
	d, err := LoadString("test", extractDeckText)
	if err != nil {
		t.Fatalf("LoadString: %v", err)
	}
	out, err := d.Extract([]int{10}, 100.0, WithExtractMode(ExtractSubtract))
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if out.FindCell(10) != nil {
		t.Error("expected cell 10 to be excluded in subtract mode")
	}
	if out.FindCell(15) == nil {
		t.Error("expected cell 15 (the other body cell) to be kept in subtract mode")
	}
}
