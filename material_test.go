// Copyright © 2013-2014 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package deck

import "testing"

func TestMaterialKeyIgnoresLeadingIdAndWhitespace(t *testing.T) {
	a := &MaterialRecord{Number: 1, MLine: "1001.70c  0.6   8016.70c 0.4", MXLines: map[string]string{}}
	b := &MaterialRecord{Number: 2, MLine: "1001.70c 0.6 8016.70c 0.4", MXLines: map[string]string{}}
	if materialKey(a) != materialKey(b) {
		t.Errorf("expected equal keys regardless of id and whitespace:\n%s\n%s", materialKey(a), materialKey(b))
	}
}

func TestMaterialKeyDiffersOnComposition(t *testing.T) {
	a := &MaterialRecord{Number: 1, MLine: "1001.70c 0.6 8016.70c 0.4", MXLines: map[string]string{}}
	b := &MaterialRecord{Number: 1, MLine: "1001.70c 0.5 8016.70c 0.5", MXLines: map[string]string{}}
	if materialKey(a) == materialKey(b) {
		t.Error("expected different keys for different compositions")
	}
}

func TestMergeMaterialsMatchByEquality(t *testing.T) {
	host := NewDeck()
	host.Materials = append(host.Materials, &MaterialRecord{Number: 1, MLine: "1001.70c 0.6 8016.70c 0.4", MXLines: map[string]string{}})

	guest := NewDeck()
	guest.SourcePath = "guest.inp"
	guest.Materials = append(guest.Materials, &MaterialRecord{Number: 5, MLine: "1001.70c 0.6 8016.70c 0.4", MXLines: map[string]string{}})

	remap := mergeMaterials(host, guest)
	if remap[5] != 1 {
		t.Errorf("expected structurally-equal guest material 5 to remap to host id 1, got %d", remap[5])
	}
	if len(host.Materials) != 1 {
		t.Errorf("expected no new material appended, got %d", len(host.Materials))
	}
}

func TestMergeMaterialsAppendOnMismatch(t *testing.T) {
	host := NewDeck()
	host.Materials = append(host.Materials, &MaterialRecord{Number: 1, MLine: "1001.70c 1.0", MXLines: map[string]string{}})

	guest := NewDeck()
	guest.SourcePath = "guest.inp"
	guest.Materials = append(guest.Materials, &MaterialRecord{Number: 1, MLine: "8016.70c 1.0", MXLines: map[string]string{}})

	remap := mergeMaterials(host, guest)
	if len(host.Materials) != 2 {
		t.Fatalf("expected guest material to be appended, got %d materials", len(host.Materials))
	}
	newID := remap[1]
	if newID == 1 {
		t.Error("expected the colliding guest id to be renumbered away from 1")
	}
	found := false
	for _, m := range host.Materials {
		if m.Number == newID && m.MLine == "8016.70c 1.0" {
			found = true
		}
	}
	if !found {
		t.Errorf("appended material not found under remapped id %d", newID)
	}
}

func TestMaterialRecordTextFormatsAllCardKinds(t *testing.T) {
	m := &MaterialRecord{
		Number:  2,
		MLine:   "1001.70c 1.0",
		MTLine:  "lwtr.10t",
		MXLines: map[string]string{"n": "model"},
	}
	lines := m.Text()
	want := []string{"m2 1001.70c 1.0", "mx:n2 model", "mt2 lwtr.10t"}
	if len(lines) != len(want) {
		t.Fatalf("got %v want %v", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d: got %q want %q", i, lines[i], want[i])
		}
	}
}
