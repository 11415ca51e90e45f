// Copyright © 2013-2014 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package deck

import "encoding/json"

// Group is a named collection of cell, surface and transform numbers
// carried as trailing JSON metadata in the deck's free-text block (spec
// 3, "groups"). Groups let a batch edit plan refer to "the shield cells"
// instead of a literal id list, and survive Renum the same way any other
// cross-reference does.
type Group struct {
	Name    string `json:"-"`
	Cell    []int  `json:"cell,omitempty"`
	Surf    []int  `json:"surf,omitempty"`
	Trans   []int  `json:"trans,omitempty"`
	Comment string `json:"comment,omitempty"`
}

// groupFile is the on-disk JSON shape: {"groups": {"name": {...}}}.
type groupFile struct {
	Groups map[string]*Group `json:"groups"`
}

// parseGroupMetadata decodes one JSON group block from a deck's
// trailing metadata and merges its groups into dst, replacing any
// existing group of the same name.
func parseGroupMetadata(dst map[string]*Group, raw string) error {
	var gf groupFile
	if err := json.Unmarshal([]byte(raw), &gf); err != nil {
		return wrapErr(MalformedInput, "malformed group metadata block", err)
	}
	for name, g := range gf.Groups {
		g.Name = name
		dst[name] = g
	}
	return nil
}

// marshalGroupMetadata renders groups back to the JSON block form.
func marshalGroupMetadata(groups map[string]*Group) (string, error) {
	gf := groupFile{Groups: groups}
	b, err := json.MarshalIndent(&gf, "", "  ")
	if err != nil {
		return "", wrapErr(MalformedInput, "failed to marshal group metadata", err)
	}
	return string(b), nil
}

// ShowGroups returns the names of every group defined in the deck, in
// no particular order (spec 6, "ShowGroups").
func (d *Deck) ShowGroups() []string {
	names := make([]string, 0, len(d.Groups))
	for name := range d.Groups {
		names = append(names, name)
	}
	return names
}

// GetGroup returns the named group, or nil if it does not exist.
func (d *Deck) GetGroup(name string) *Group { return d.Groups[name] }

// CheckGroup reports whether every cell, surface and transform number a
// group references still resolves in the deck, per spec 6 "CheckGroup":
// a dangling reference typically means the group metadata was not kept
// in sync with a subsequent manual edit to the deck text.
func (d *Deck) CheckGroup(name string) error {
	g := d.Groups[name]
	if g == nil {
		return newErr(MissingReference, "no such group: "+name)
	}
	for _, id := range g.Cell {
		if d.FindCell(id) == nil {
			return newErr(MissingReference, "group "+name+" references missing cell "+itoa(id))
		}
	}
	for _, id := range g.Surf {
		if d.FindSurface(id) == nil {
			return newErr(MissingReference, "group "+name+" references missing surface "+itoa(id))
		}
	}
	for _, id := range g.Trans {
		found := false
		for _, t := range d.Transforms {
			if t.Number == id {
				found = true
				break
			}
		}
		if !found {
			return newErr(MissingReference, "group "+name+" references missing transform "+itoa(id))
		}
	}
	return nil
}
