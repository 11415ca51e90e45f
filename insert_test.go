// Copyright © 2013-2014 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package deck

import "testing"

const hostDeckText = `c host deck
10 5 -2.7 -1 2
20 0 1 #10

1 pz 0
2 so 50.0

`

const guestDeckText = `c guest deck
1 7 -1.0 -1
2 0 1

1 so 5.0

`

const guestMultiCellDeckText = `c guest deck with a body cell distinct from its diesis
1 7 -1.0 -1
2 0 -2 #1
3 0 2

1 so 3.0
2 so 5.0

`

func TestInsertSplicesEnclosingSurfaceIntoDiesis(t *testing.T) {
	host, err := LoadString("host.inp", hostDeckText)
	if err != nil {
		t.Fatalf("LoadString host: %v", err)
	}
	guest, err := LoadString("guest.inp", guestDeckText)
	if err != nil {
		t.Fatalf("LoadString guest: %v", err)
	}

	host.Insert(guest, WithLocation(LocationInside))

	diesis := host.diesisCell()
	if diesis == nil {
		t.Fatal("expected a diesis cell after insert")
	}
	// The guest's single surface collided with the host's surface id
	// space ([1,2]) and must have been renumbered to 3 before its
	// geometry was spliced in.
	if want := "-1 2 -3"; diesis.Geometry != want {
		t.Errorf("diesis geometry = %q want %q", diesis.Geometry, want)
	}
	if host.FindSurface(3) == nil {
		t.Fatal("expected guest surface renumbered to 3 to be present in host")
	}
	if host.FindSurface(1) == nil || host.FindSurface(2) == nil {
		t.Fatal("expected original host surfaces to survive the insert")
	}

	// Guest's own body cell (material 7) should have been prepended to
	// the host's cell list, ahead of the original host cells.
	found := false
	for _, c := range host.Cells {
		if c.Material == 7 {
			found = true
		}
	}
	if !found {
		t.Error("expected guest body cell (material 7) to be present in host")
	}
	if len(host.InsertedFrom) != 1 || host.InsertedFrom[0] != "guest.inp" {
		t.Errorf("InsertedFrom = %v", host.InsertedFrom)
	}
}

func TestInsertCellsSubtractsFromDiesis(t *testing.T) {
	host, err := LoadString("host.inp", hostDeckText)
	if err != nil {
		t.Fatalf("LoadString host: %v", err)
	}
	guest, err := LoadString("guest.inp", guestMultiCellDeckText)
	if err != nil {
		t.Fatalf("LoadString guest: %v", err)
	}

	guestBodyCellNumber := guest.Cells[0].Number

	host.InsertCells(guest)

	diesis := host.diesisCell()
	if diesis == nil {
		t.Fatal("expected a diesis cell after InsertCells")
	}
	wantSuffix := "#" + itoa(guestBodyCellNumber)
	if !containsSubstr(diesis.Geometry, wantSuffix) {
		t.Errorf("diesis geometry %q does not subtract guest cell %s", diesis.Geometry, wantSuffix)
	}
}

func containsSubstr(s, sub string) bool {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return true
		}
	}
	return false
}
