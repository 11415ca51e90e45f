// Copyright © 2013-2014 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package deck

import "log"

// logCaveat logs a recoverable structural quirk immediately, prefixed with
// its source (the deck's SourcePath). Deck.warn also appends the Warning
// to Deck.Warnings so a caller can inspect it after Load returns.
func logCaveat(source, detail string) {
	log.Printf("deck: %s: %s", source, detail)
}
