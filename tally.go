// Copyright © 2013-2014 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package deck

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// AddMCNPCard appends a data card verbatim to the deck's free-text
// metadata block.
func (d *Deck) AddMCNPCard(card string) {
	d.FreeMetadata = append(d.FreeMetadata, card)
}

// AddMCNPCardFromFile reads an auxiliary card body from path and
// appends it verbatim, one physical line at a time.
func (d *Deck) AddMCNPCardFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return wrapErr(MalformedInput, "failed to read auxiliary card file: "+path, err)
	}
	for _, ln := range strings.Split(strings.TrimRight(string(data), "\n"), "\n") {
		d.FreeMetadata = append(d.FreeMetadata, ln)
	}
	return nil
}

// AddMCNPBanner appends a decorative full-line comment.
func (d *Deck) AddMCNPBanner(text string) {
	d.FreeMetadata = append(d.FreeMetadata, "c ---- "+text+" ----")
}

// AddMCNPTally resolves groupName to its cell or surface id list and
// appends an "Fn:particle id1 id2 ..." tally card, per the original
// tool's group-driven tally helper.
func (d *Deck) AddMCNPTally(tallyNum int, particle, groupName string) error {
	g := d.Groups[groupName]
	if g == nil {
		return newErr(MissingReference, "AddMCNPTally: no such group: "+groupName)
	}
	if err := d.CheckGroup(groupName); err != nil {
		return err
	}
	ids := g.Cell
	if len(ids) == 0 {
		ids = g.Surf
	}
	if len(ids) == 0 {
		return newErr(MissingReference, "AddMCNPTally: group "+groupName+" has neither cells nor surfaces")
	}
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	d.FreeMetadata = append(d.FreeMetadata,
		fmt.Sprintf("F%d:%s %s", tallyNum, particle, strings.Join(parts, " ")))
	return nil
}

// AddMCNPPointTally appends an "F5:particle x y z r" point-detector
// tally card, r being radiusOfSphere.
func (d *Deck) AddMCNPPointTally(particle string, point [3]float64, radiusOfSphere float64) {
	d.FreeMetadata = append(d.FreeMetadata, fmt.Sprintf("F5:%s %s %s %s %s",
		particle,
		formatCardFloat(point[0]), formatCardFloat(point[1]), formatCardFloat(point[2]),
		formatCardFloat(radiusOfSphere)))
}
