// Copyright © 2013-2014 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package deck

import "testing"

const renumDeckText = `c simple two-cell test deck
10 5 -2.7 -1 2
11 0 1

1 pz 0
2 so 10.0

tr1 0 0 5
`

func TestRenumIdempotentOnIdentityFilter(t *testing.T) {
	d, err := LoadString("test", renumDeckText)
	if err != nil {
		t.Fatalf("LoadString: %v", err)
	}
	before := snapshotNumbers(d)
	d.Renum(AllIDs, AllIDs, AllIDs, 10, 1, 1)
	after := snapshotNumbers(d)
	if before != after {
		t.Errorf("renumbering onto the same starting ids changed numbering: before=%v after=%v", before, after)
	}
}

func TestRenumPreservesCrossReferences(t *testing.T) {
	d, err := LoadString("test", renumDeckText)
	if err != nil {
		t.Fatalf("LoadString: %v", err)
	}
	d.Renum(AllIDs, AllIDs, AllIDs, 100, 200, 300)

	c := d.FindCell(100)
	if c == nil {
		t.Fatal("expected renumbered cell 100")
	}
	if c.Geometry != "-200 201" {
		t.Errorf("geometry not rewritten to follow surface renumber: %q", c.Geometry)
	}

	tc := d.FindTrCard(300)
	if tc.Number != 300 {
		t.Fatalf("transform not renumbered: %+v", tc)
	}
}

func TestRenumSwapOnCollision(t *testing.T) {
	d, err := LoadString("test", renumDeckText)
	if err != nil {
		t.Fatalf("LoadString: %v", err)
	}
	// Filtering only on cell 10 and retargeting it onto the id already
	// held by cell 11 must displace 11 onto the freed id 10, rather than
	// overwrite it.
	d.Renum([]int{10}, nil, nil, 11, 1, 1)

	atTen := d.FindCell(10)
	atEleven := d.FindCell(11)
	if atTen == nil || atEleven == nil {
		t.Fatal("expected both ids 10 and 11 to remain occupied after the swap")
	}
	if atTen.Material != 0 {
		t.Errorf("expected the displaced void cell to land on id 10, got material %d", atTen.Material)
	}
	if atEleven.Material != 5 {
		t.Errorf("expected the renumbered cell to land on id 11 with material 5, got %d", atEleven.Material)
	}
}

func snapshotNumbers(d *Deck) string {
	s := ""
	for _, c := range d.Cells {
		s += "c" + itoa(c.Number) + ";"
	}
	for _, sf := range d.Surfaces {
		s += "s" + itoa(sf.Number) + ";"
	}
	for _, t := range d.Transforms {
		s += "t" + itoa(t.Number) + ";"
	}
	return s
}
