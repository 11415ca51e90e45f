// Copyright © 2013-2014 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package deck

import (
	"strings"
	"testing"
)

func TestNormalizeLinesExpandsTabs(t *testing.T) {
	lines, warnings := normalizeLines("test", "c title\n10\t5\t-1\n")
	if !containsWarning(warnings, "tab") {
		t.Errorf("expected a tab-expansion warning, got %v", warnings)
	}
	if strings.Contains(strings.Join(lines, "\n"), "\t") {
		t.Errorf("expected tabs to be expanded, got %v", lines)
	}
}

func TestNormalizeLinesPrependsMissingComment(t *testing.T) {
	lines, warnings := normalizeLines("test", "10 5 -1\n")
	if len(lines) == 0 || !isCommentLine(lines[0]) {
		t.Fatalf("expected a leading comment line to be prepended, got %v", lines)
	}
	if !containsWarning(warnings, "prepended missing leading comment") {
		t.Errorf("expected a missing-comment warning, got %v", warnings)
	}
}

func TestNormalizeLinesDiscardsMessagePrologue(t *testing.T) {
	lines, warnings := normalizeLines("test", "message  some note\n\nc title\n10 5 -1\n")
	if !containsWarning(warnings, "message prologue discarded") {
		t.Errorf("expected a message-prologue warning, got %v", warnings)
	}
	for _, ln := range lines {
		if strings.Contains(ln, "some note") {
			t.Errorf("message prologue was not discarded: %v", lines)
		}
	}
}

func TestNormalizeLinesCommentsOutReadDirective(t *testing.T) {
	lines, warnings := normalizeLines("test", "c title\nread deck2.inp\n")
	if !containsWarning(warnings, "read") {
		t.Errorf("expected a read-directive warning, got %v", warnings)
	}
	found := false
	for _, ln := range lines {
		if strings.Contains(ln, "read deck2.inp") && isCommentLine(ln) {
			found = true
		}
	}
	if !found {
		t.Errorf("expected the read directive to be commented out, got %v", lines)
	}
}

func TestNormalizeAmpersandsForcesIndentOnNextLine(t *testing.T) {
	lines := []string{"c", "10 5 -1 &", "2 3"}
	var warnings []string
	normalizeAmpersands(lines, func(s string) { warnings = append(warnings, s) })
	if !strings.HasSuffix(lines[1], "$") {
		t.Errorf("expected the ampersand replaced with a $ comment marker, got %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "     ") {
		t.Errorf("expected the continuation line forced to a five-space indent, got %q", lines[2])
	}
	if len(warnings) == 0 {
		t.Error("expected a warning for the forced indent")
	}
}

func containsWarning(warnings []Warning, substr string) bool {
	for _, w := range warnings {
		if strings.Contains(w.Detail, substr) {
			return true
		}
	}
	return false
}
