// Copyright © 2013-2014 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package deck

import "strconv"

// Cell geometry text is a boolean expression over signed surface numbers
// and parenthesised "#(...)" unions, plus the occasional bare "#N" cell
// complement operator (spec 3, "geometry"). The scanner below walks the
// text once, rune by rune, classifying every integer run as either a
// cell-complement id (immediately preceded by "#") or a surface id
// (anything else, including the numbers inside a "#(...)" group, which
// are surface refs belonging to the complemented cell's own geometry).
// A run preceded or followed by "." is a stray float and is skipped, so
// density-like tokens accidentally swept into Geometry do not corrupt
// the id space.

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

// collectSurfaceRefs returns the surface numbers referenced in geometry
// text, in first-occurrence order, without duplicates.
func collectSurfaceRefs(text string) []int {
	var out []int
	seen := map[int]bool{}
	rewriteSurfaceNumbers(text, func(n int) (int, bool) {
		if !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
		return n, false
	})
	return out
}

// collectCellComplementRefs returns the cell numbers referenced by bare
// "#N" operators in geometry text, in first-occurrence order.
func collectCellComplementRefs(text string) []int {
	var out []int
	seen := map[int]bool{}
	rewriteCellComplementNumbers(text, func(n int) (int, bool) {
		if !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
		return n, false
	})
	return out
}

// rewriteSurfaceNumbers runs fn over every surface-number token in text
// (every integer run not immediately preceded by "#", and not part of a
// float) and rewrites it to fn's first return value when its second
// return value is true. fn's integer argument is always positive: the
// leading "-"/"+" sense of a surface reference is not part of the number
// run itself.
func rewriteSurfaceNumbers(text string, fn func(n int) (int, bool)) string {
	return scanNumberRuns(text, func(prevIsHash bool, n int) (int, bool) {
		if prevIsHash {
			return n, false
		}
		return fn(n)
	})
}

// rewriteCellComplementNumbers runs fn over every bare "#N" cell id in
// text and rewrites it to fn's first return value when its second return
// value is true.
func rewriteCellComplementNumbers(text string, fn func(n int) (int, bool)) string {
	return scanNumberRuns(text, func(prevIsHash bool, n int) (int, bool) {
		if !prevIsHash {
			return n, false
		}
		return fn(n)
	})
}

// scanNumberRuns walks text once, calling fn(prevIsHash, n) for every
// integer run not adjacent to a ".". prevIsHash is true when the run is
// immediately preceded by "#" (a cell-complement operator).
func scanNumberRuns(text string, fn func(prevIsHash bool, n int) (int, bool)) string {
	runes := []rune(text)
	n := len(runes)
	var b []rune
	i := 0
	for i < n {
		c := runes[i]
		if !isDigit(c) {
			b = append(b, c)
			i++
			continue
		}
		start := i
		for i < n && isDigit(runes[i]) {
			i++
		}
		if start > 0 && runes[start-1] == '.' {
			b = append(b, runes[start:i]...)
			continue
		}
		if i < n && runes[i] == '.' {
			b = append(b, runes[start:i]...)
			continue
		}
		prevIsHash := start > 0 && runes[start-1] == '#'
		val, _ := strconv.Atoi(string(runes[start:i]))
		newVal, changed := fn(prevIsHash, val)
		if changed {
			b = append(b, []rune(strconv.Itoa(newVal))...)
		} else {
			b = append(b, runes[start:i]...)
		}
	}
	return string(b)
}
