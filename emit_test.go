// Copyright © 2013-2014 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package deck

import (
	"strings"
	"testing"
)

func TestWrapCardShortLineUnchanged(t *testing.T) {
	line := "10 5 -2.7 -1 2 -3"
	got := wrapCard(line)
	if len(got) != 1 || got[0] != line {
		t.Errorf("got %v", got)
	}
}

func TestWrapCardLongLineIndentContinuation(t *testing.T) {
	geom := strings.Repeat("-1 2 ", 20)
	line := "10 5 -2.7 " + geom
	got := wrapCard(line)
	if len(got) < 2 {
		t.Fatalf("expected wrapping, got %v", got)
	}
	for _, l := range got[:len(got)-1] {
		if len(l) >= wrapColumn {
			t.Errorf("continuation line too long: %q (%d chars)", l, len(l))
		}
	}
	for _, l := range got[1:] {
		if !strings.HasPrefix(l, "      ") {
			t.Errorf("continuation line missing six-space indent: %q", l)
		}
	}
}

func TestWrapCardInsideOpenParenUsesAmpersand(t *testing.T) {
	geom := "(" + strings.Repeat("-1 2 ", 20) + "-3)"
	line := "10 5 -2.7 " + geom
	got := wrapCard(line)
	if len(got) < 2 {
		t.Fatalf("expected wrapping, got %v", got)
	}
	if !strings.HasSuffix(got[0], " &") {
		t.Errorf("expected an ampersand continuation marker inside an open paren group, got %q", got[0])
	}
}

func TestRunLengthEncode(t *testing.T) {
	got := runLengthEncode([]float64{1, 1, 1, 0.5, 0.5, 2})
	want := "1 2r 0.5 1r 2"
	if got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestRunLengthEncodeNoRepeats(t *testing.T) {
	got := runLengthEncode([]float64{1, 2, 3})
	want := "1 2 3"
	if got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestEmitRoundTripsBasicDeck(t *testing.T) {
	d, err := LoadString("test", renumDeckText)
	if err != nil {
		t.Fatalf("LoadString: %v", err)
	}
	text, err := d.Emit()
	if err != nil {
		t.Fatalf("Emit: %v", err)
	}
	if !strings.Contains(text, "10 5 -2.7 -1 2") {
		t.Errorf("emitted text missing the cell card:\n%s", text)
	}
	if !strings.Contains(text, "1 pz 0") {
		t.Errorf("emitted text missing a surface card:\n%s", text)
	}
	if !strings.Contains(text, "tr1 0 0 5") {
		t.Errorf("emitted text missing the transform card:\n%s", text)
	}
}
