// Copyright © 2013-2014 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package deck

import "testing"

func TestJoinCardsFoldsFiveColumnContinuation(t *testing.T) {
	lines := []string{
		"10 5 -2.7 -1 2",
		"     -3 4",
		"20 0 1",
	}
	cards := joinCards(lines)
	want := []string{"10 5 -2.7 -1 2 -3 4", "20 0 1"}
	if len(cards) != len(want) {
		t.Fatalf("got %v want %v", cards, want)
	}
	for i := range want {
		if cards[i] != want[i] {
			t.Errorf("card %d: got %q want %q", i, cards[i], want[i])
		}
	}
}

func TestJoinCardsCommentInterruptsButDoesNotJoin(t *testing.T) {
	lines := []string{
		"10 5 -2.7 -1 2",
		"c a note",
		"20 0 1",
	}
	cards := joinCards(lines)
	if len(cards) != 2 {
		t.Fatalf("expected the comment to split cards, got %v", cards)
	}
}

const dataSectionDeckText = `c deck exercising material/transform/mx/mpn/mt routing
10 1 -1.0 -1
20 0 1

1 so 5.0

tr1 0 0 5
m1 1001.70c 0.5 8016.70c 0.5
mx:h1 model
mpn1 2
mt1 lwtr.10t
sdef pos=0 0 0

`

func TestLoadStringRoutesDataCardsByKeyword(t *testing.T) {
	d, err := LoadString("test", dataSectionDeckText)
	if err != nil {
		t.Fatalf("LoadString: %v", err)
	}
	if len(d.Transforms) != 1 || d.Transforms[0].Number != 1 {
		t.Fatalf("expected one transform card, got %v", d.Transforms)
	}
	if len(d.Materials) != 1 {
		t.Fatalf("expected one material record, got %v", d.Materials)
	}
	m := d.Materials[0]
	if m.MLine != "1001.70c 0.5 8016.70c 0.5" {
		t.Errorf("MLine = %q", m.MLine)
	}
	if m.MXLines["h"] != "model" {
		t.Errorf("MXLines[h] = %q", m.MXLines["h"])
	}
	if len(m.MPNLines) != 1 || m.MPNLines[0] != "2" {
		t.Errorf("MPNLines = %v", m.MPNLines)
	}
	if m.MTLine != "lwtr.10t" {
		t.Errorf("MTLine = %q", m.MTLine)
	}
	found := false
	for _, line := range d.FreeMetadata {
		if line == "sdef pos=0 0 0" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected an unrecognised data card to land in FreeMetadata, got %v", d.FreeMetadata)
	}
}
