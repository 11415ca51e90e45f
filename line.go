// Copyright © 2013-2014 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package deck

import "strings"

// normalizeLines applies the load-time caveats (spec 4.1) to raw deck
// text and returns the normalised physical lines plus any warnings
// raised along the way. Caveats are applied once, in source order, so
// an input quirk detected early (a tab, say) is visible to the next
// rule (comment indentation) in its corrected form.
func normalizeLines(source, raw string) ([]string, []Warning) {
	var warnings []Warning
	warn := func(detail string) {
		warnings = append(warnings, Warning{Source: source, Detail: detail})
		logCaveat(source, detail)
	}

	text := strings.ReplaceAll(raw, "\r\n", "\n")
	if strings.Contains(text, "\t") {
		warn("tab character expanded to five spaces")
		text = strings.ReplaceAll(text, "\t", "     ")
	}
	lines := strings.Split(text, "\n")

	// Discard an optional "message" prologue together with the blank line
	// that ends it, so that blank line does not count as a section break.
	start := 0
	for start < len(lines) && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	if start < len(lines) && keywordEq(firstToken(lines[start]), "message") {
		warn("message prologue discarded")
		i := start
		for i < len(lines) && strings.TrimSpace(lines[i]) != "" {
			i++
		}
		if i < len(lines) {
			i++
		}
		lines = append(lines[:start], lines[i:]...)
	}

	out := make([]string, 0, len(lines))
	for _, ln := range lines {
		out = append(out, normalizeOneLine(ln, warn))
	}
	normalizeAmpersands(out, warn)

	if len(out) == 0 || !isCommentLine(out[0]) {
		warn("prepended missing leading comment line")
		out = append([]string{"c "}, out...)
	}

	return out, warnings
}

// normalizeAmpersands rewrites the legacy trailing-"&" continuation
// style into the five-space-indent style in place, per spec 4.1: the
// "&" itself becomes a "$" end-of-line comment marker, and the
// following physical line is forced to a five-space indent unless it
// is already one.
func normalizeAmpersands(lines []string, warn func(string)) {
	for i := 0; i < len(lines); i++ {
		ln := lines[i]
		if isCommentLine(ln) {
			continue
		}
		trimmed := strings.TrimRight(ln, " ")
		if !strings.HasSuffix(trimmed, "&") {
			continue
		}
		lines[i] = strings.TrimRight(trimmed[:len(trimmed)-1], " ") + " $"
		if i+1 >= len(lines) {
			continue
		}
		next := lines[i+1]
		if len(next) >= 5 && strings.TrimSpace(next[:5]) == "" && strings.TrimSpace(next) != "" {
			continue
		}
		warn("ampersand continuation forced to five-space indent")
		lines[i+1] = "     " + strings.TrimLeft(next, " ")
	}
}

func firstToken(s string) string {
	f := strings.Fields(s)
	if len(f) == 0 {
		return ""
	}
	return f[0]
}

func isCommentLine(s string) bool {
	t := strings.TrimLeft(s, " ")
	return len(t) > 0 && (t[0] == 'c' || t[0] == 'C') && (len(t) == 1 || t[1] == ' ' || t[1] == '\t')
}

// normalizeOneLine applies the per-line caveats: "# " collapse on
// instruction lines, left-stripping an over-indented "c " comment, and
// commenting out a "read <file>" directive. The trailing-ampersand
// continuation rule is handled afterwards by normalizeAmpersands, since
// it needs to see the following line.
func normalizeOneLine(ln string, warn func(string)) string {
	if isCommentLine(ln) {
		trimmed := strings.TrimLeft(ln, " ")
		if trimmed != ln {
			warn("left-stripped over-indented comment line")
		}
		return trimmed
	}
	if idx := strings.IndexByte(ln, '#'); idx >= 0 {
		rest := ln[idx+1:]
		collapsed := strings.TrimLeft(rest, " ")
		if collapsed != rest {
			ln = ln[:idx+1] + collapsed
		}
	}
	if keywordEq(firstToken(ln), "read") {
		warn("\"read\" directive commented out")
		return "c " + ln
	}
	return ln
}
