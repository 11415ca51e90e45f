// Copyright © 2013-2014 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package deck

import "testing"

func TestParseSurfaceLinePlain(t *testing.T) {
	s, err := ParseSurfaceLine("5 so 10.0 $ outer sphere")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Number != 5 || s.SurfType != "so" || s.Params != "10.0" {
		t.Fatalf("got %+v", s)
	}
	if s.Comment != "outer sphere" {
		t.Errorf("comment = %q", s.Comment)
	}
}

func TestParseSurfaceLineQualifiersAndTransform(t *testing.T) {
	s, err := ParseSurfaceLine("*10 2 pz 5.0")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !s.Reflecting || s.WhiteBoundary {
		t.Fatalf("got %+v", s)
	}
	if s.TransformRef != 2 {
		t.Errorf("TransformRef = %d", s.TransformRef)
	}
	if s.SurfType != "pz" || s.Params != "5.0" {
		t.Errorf("got type=%q params=%q", s.SurfType, s.Params)
	}
}

func TestParseSurfaceLinePeriodicNegative(t *testing.T) {
	s, err := ParseSurfaceLine("10 -2 px 1.0")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.TransformRef != -2 {
		t.Errorf("expected periodic pair ref -2, got %d", s.TransformRef)
	}
}

func TestSurfaceTextRoundTrip(t *testing.T) {
	s, err := ParseSurfaceLine("+7 so 3.5")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "+7 so 3.5"
	if got := s.Text(); got != want {
		t.Errorf("Text() = %q want %q", got, want)
	}
}

func TestParseSurfaceLineMalformed(t *testing.T) {
	if _, err := ParseSurfaceLine("5"); err == nil {
		t.Fatal("expected error for too-few fields")
	}
	if _, err := ParseSurfaceLine("abc so 1"); err == nil {
		t.Fatal("expected error for non-numeric surface id")
	}
}
