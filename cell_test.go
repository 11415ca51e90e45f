// Copyright © 2013-2014 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package deck

import "testing"

func TestParseCellLinePlain(t *testing.T) {
	c, err := ParseCellLine("10 5 -2.7 -1 2 -3 imp:n=1 $ fuel pin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Number != 10 || c.Material != 5 || !c.HasDensity || c.Density != -2.7 {
		t.Fatalf("got %+v", c)
	}
	if c.Geometry != "-1 2 -3" {
		t.Errorf("geometry = %q", c.Geometry)
	}
	if c.Trailing != "imp:n=1" {
		t.Errorf("trailing = %q", c.Trailing)
	}
	if c.Comment != "fuel pin" {
		t.Errorf("comment = %q", c.Comment)
	}
	if got := c.RefSurfaces; len(got) != 3 || got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Errorf("RefSurfaces = %v", got)
	}
}

func TestParseCellLineVoid(t *testing.T) {
	c, err := ParseCellLine("20 0 -1 #10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Material != 0 || c.HasDensity {
		t.Fatalf("expected void cell, got %+v", c)
	}
	if len(c.RefCellComplements) != 1 || c.RefCellComplements[0] != 10 {
		t.Errorf("RefCellComplements = %v", c.RefCellComplements)
	}
}

func TestParseCellLineClone(t *testing.T) {
	c, err := ParseCellLine("30 like 10 but mat=5 rho=-3.2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Kind != CloneCell || c.CloneOf != 10 {
		t.Fatalf("got %+v", c)
	}
	if c.CloneOverrides != "mat=5 rho=-3.2" {
		t.Errorf("overrides = %q", c.CloneOverrides)
	}
}

func TestParseCellLineMalformed(t *testing.T) {
	if _, err := ParseCellLine("not-a-number 0 -1"); err == nil {
		t.Fatal("expected error for non-numeric cell id")
	}
	if _, err := ParseCellLine("10"); err == nil {
		t.Fatal("expected error for too-few fields")
	}
}

func TestCellTextRoundTrip(t *testing.T) {
	c, err := ParseCellLine("10 5 -2.7 -1 2 -3 imp:n=1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := c.Text()
	want := "10 5 -2.7 -1 2 -3 imp:n=1"
	if got != want {
		t.Errorf("Text() = %q want %q", got, want)
	}
}

func TestIsTrailingKeywordImpParticle(t *testing.T) {
	if !isTrailingKeyword("imp:n=1") {
		t.Error("imp:n=1 should be a trailing keyword")
	}
	if isTrailingKeyword("wwn:n=1") {
		t.Error("wwn:n=1 (not in the known set) should not match via the imp: branch")
	}
}
