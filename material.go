// Copyright © 2013-2014 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package deck

import (
	"strconv"
	"strings"
)

// MaterialRecord groups the "m<N>" composition card with its optional
// companion cards: "mpn<N>" (photonuclear data), one "mx:<particle><N>"
// card per particle tag, and "mt<N>" (thermal scattering law). Card
// bodies are kept as token text; the merge algorithm (mergeMaterials)
// only needs to concatenate and deduplicate them, not interpret
// individual nuclide entries.
type MaterialRecord struct {
	Number   int
	MLine    string   // "m<N>" body, tokens after the id
	MPNLines []string // "mpn<N>" body lines, normally at most one
	MXLines  map[string]string
	MTLine   string
	Comment  string
}

func newMaterialRecord(number int) *MaterialRecord {
	return &MaterialRecord{Number: number, MXLines: map[string]string{}}
}

// materialKey returns a whitespace-normalised key for a material's
// m/mpn/mx/mt quadruple, comparing everything but the
// leading identifier token (spec 4.10: "compared as whitespace-
// normalised token sequences ignoring the leading identifier token").
// Token order inside each card is significant; only the order of the
// mpn lines and of the mx cards is not. Two materials with the same key
// are the same composition under a different id.
func materialKey(m *MaterialRecord) string {
	var b strings.Builder
	b.WriteString(normalizeTokens(m.MLine))
	b.WriteByte('|')

	mpn := append([]string{}, m.MPNLines...)
	for i := range mpn {
		mpn[i] = normalizeTokens(mpn[i])
	}
	sortStrings(mpn)
	b.WriteString(strings.Join(mpn, ";"))
	b.WriteByte('|')

	tags := make([]string, 0, len(m.MXLines))
	for tag := range m.MXLines {
		tags = append(tags, tag)
	}
	sortStrings(tags)
	for _, tag := range tags {
		b.WriteString(tag)
		b.WriteByte(':')
		b.WriteString(normalizeTokens(m.MXLines[tag]))
		b.WriteByte(';')
	}
	b.WriteByte('|')
	b.WriteString(normalizeTokens(m.MTLine))
	return b.String()
}

func normalizeTokens(s string) string { return strings.Join(strings.Fields(s), " ") }

// mergeMaterials folds guest's materials into host (spec 4.10): a
// guest quadruple that is token-equal to a host quadruple maps to the
// host's id; otherwise it is appended, renumbered to the next free
// host id if its own id is already taken. Returns the guest-id ->
// host-id remap.
func mergeMaterials(host, guest *Deck) map[int]int {
	remap := map[int]int{}
	hostByKey := map[string]int{}
	hostUsed := map[int]bool{}
	for _, m := range host.Materials {
		hostByKey[materialKey(m)] = m.Number
		hostUsed[m.Number] = true
	}

	appended := false
	for _, gm := range guest.Materials {
		key := materialKey(gm)
		if hostID, ok := hostByKey[key]; ok {
			remap[gm.Number] = hostID
			continue
		}
		newID := gm.Number
		if hostUsed[newID] {
			newID = nextFreeMaterialID(hostUsed)
		}
		hostUsed[newID] = true
		copyOf := *gm
		copyOf.Number = newID
		host.Materials = append(host.Materials, &copyOf)
		remap[gm.Number] = newID
		appended = true
	}
	if appended && guest.SourcePath != "" {
		host.FreeMetadata = append(host.FreeMetadata, "c -- materials appended from "+guest.SourcePath+" --")
	}
	return remap
}

func nextFreeMaterialID(used map[int]bool) int {
	for id := 1; ; id++ {
		if !used[id] {
			return id
		}
	}
}

// Text renders the m/mpn/mx/mt cards for this material, one per line.
func (m *MaterialRecord) Text() []string {
	var lines []string
	head := "m" + itoa(m.Number)
	if m.MLine != "" {
		head = head + " " + m.MLine
	}
	if m.Comment != "" {
		head = head + " $ " + m.Comment
	}
	lines = append(lines, head)
	for _, body := range m.MPNLines {
		lines = append(lines, "mpn"+itoa(m.Number)+" "+body)
	}
	tags := make([]string, 0, len(m.MXLines))
	for tag := range m.MXLines {
		tags = append(tags, tag)
	}
	sortStrings(tags)
	for _, tag := range tags {
		lines = append(lines, "mx:"+tag+itoa(m.Number)+" "+m.MXLines[tag])
	}
	if m.MTLine != "" {
		lines = append(lines, "mt"+itoa(m.Number)+" "+m.MTLine)
	}
	return lines
}

func itoa(n int) string { return strconv.Itoa(n) }

// sortStrings is a tiny insertion sort: mx particle tags number at most
// a handful per material, not worth importing sort for.
func sortStrings(s []string) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}
