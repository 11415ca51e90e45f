// Copyright © 2013-2014 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package deck

import (
	"strings"
)

// builderState is the Card Tokeniser's finite-state machine state; a
// blank line advances Cells -> Surfaces -> Data -> Groups -> Done.
type builderState int

const (
	stateCells builderState = iota
	stateSurfaces
	stateData
	stateGroups
	stateDone
)

// joinCards groups physical lines of one section into logical cards: a
// line whose first five columns are blank is a continuation of the
// previous non-comment line; a full-line comment never continues and
// never is continued, but may appear between cards.
func joinCards(lines []string) []string {
	var cards []string
	var cur strings.Builder
	flush := func() {
		if cur.Len() > 0 {
			cards = append(cards, cur.String())
			cur.Reset()
		}
	}
	for _, ln := range lines {
		if isCommentLine(ln) {
			flush()
			continue
		}
		if len(ln) >= 5 && strings.TrimSpace(ln[:5]) == "" && cur.Len() > 0 {
			cur.WriteByte(' ')
			cur.WriteString(strings.TrimSpace(ln))
			continue
		}
		flush()
		cur.WriteString(strings.TrimRight(ln, " "))
	}
	flush()
	return cards
}

// LoadString builds a Deck from deck text already in memory, with
// source used only to label warnings.
func LoadString(source, text string) (*Deck, error) {
	lines, warnings := normalizeLines(source, text)

	var sections [4][]string
	state := stateCells
	for _, ln := range lines {
		if strings.TrimSpace(ln) == "" {
			if state < stateDone {
				state++
			}
			continue
		}
		if state > stateGroups {
			state = stateGroups
		}
		sections[state] = append(sections[state], ln)
	}

	d := NewDeck()
	d.SourcePath = source
	d.Warnings = warnings
	for _, w := range warnings {
		logCaveat(w.Source, w.Detail)
	}

	for _, card := range joinCards(sections[stateCells]) {
		c, err := ParseCellLine(card)
		if err != nil {
			return nil, err
		}
		d.Cells = append(d.Cells, c)
		d.CellRange.observe(c.Number)
	}
	for _, card := range joinCards(sections[stateSurfaces]) {
		s, err := ParseSurfaceLine(card)
		if err != nil {
			return nil, err
		}
		d.Surfaces = append(d.Surfaces, s)
		d.SurfRange.observe(s.Number)
	}

	if err := parseDataSection(d, joinCards(sections[stateData])); err != nil {
		return nil, err
	}

	if groupText := strings.TrimSpace(strings.Join(sections[stateGroups], "\n")); groupText != "" {
		if err := parseGroupMetadata(d.Groups, groupText); err != nil {
			return nil, err
		}
	}

	if diesis := d.diesisCell(); diesis != nil {
		d.EnclosingSurface = diesis.Geometry
	}
	return d, nil
}

// parseDataSection recognises transform and material cards by their
// keyword prefix and files everything else into FreeMetadata verbatim.
func parseDataSection(d *Deck, cards []string) error {
	for _, card := range cards {
		body, _ := splitDollarComment(card)
		head := firstToken(body)
		lower := strings.ToLower(head)
		switch {
		case strings.HasPrefix(lower, "tr") || strings.HasPrefix(lower, "*tr"):
			tc, err := ParseTransformLine(card)
			if err != nil {
				return err
			}
			d.Transforms = append(d.Transforms, tc)
			d.TransRange.observe(tc.Number)
		case strings.HasPrefix(lower, "mx:"):
			num, tag, rest, ok := splitMXHead(head)
			if !ok {
				d.FreeMetadata = append(d.FreeMetadata, card)
				continue
			}
			m := findOrCreateMaterial(d, num)
			m.MXLines[tag] = joinRest(rest, body)
		case strings.HasPrefix(lower, "mpn"):
			num, rest, ok := splitNumHead(lower, head, "mpn")
			if !ok {
				d.FreeMetadata = append(d.FreeMetadata, card)
				continue
			}
			m := findOrCreateMaterial(d, num)
			m.MPNLines = append(m.MPNLines, joinRest(rest, body))
		case strings.HasPrefix(lower, "mt"):
			num, rest, ok := splitNumHead(lower, head, "mt")
			if !ok {
				d.FreeMetadata = append(d.FreeMetadata, card)
				continue
			}
			m := findOrCreateMaterial(d, num)
			m.MTLine = joinRest(rest, body)
		case strings.HasPrefix(lower, "m") && len(head) > 1 && isAllDigits(head[1:]):
			num, rest, _ := splitNumHead(lower, head, "m")
			m := findOrCreateMaterial(d, num)
			m.MLine = joinRest(rest, body)
		default:
			d.FreeMetadata = append(d.FreeMetadata, card)
		}
	}
	return nil
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !isDigit(r) {
			return false
		}
	}
	return true
}

func splitNumHead(lowerHead, head, prefix string) (num int, rest []string, ok bool) {
	if !strings.HasPrefix(lowerHead, prefix) {
		return 0, nil, false
	}
	n, err := atoiPrefix(head[len(prefix):])
	if err != nil {
		return 0, nil, false
	}
	return n, nil, true
}

func splitMXHead(head string) (num int, tag string, rest []string, ok bool) {
	// "mx:<particle><N>", e.g. "mx:h1" meaning particle tag "h", id 1.
	body := head[len("mx:"):]
	i := 0
	for i < len(body) && !isDigit(rune(body[i])) {
		i++
	}
	if i == 0 || i == len(body) {
		return 0, "", nil, false
	}
	n, err := atoiPrefix(body[i:])
	if err != nil {
		return 0, "", nil, false
	}
	return n, body[:i], nil, true
}

func atoiPrefix(s string) (int, error) {
	if !isAllDigits(s) {
		return 0, newErr(MalformedInput, "expected a material id: "+s)
	}
	n := 0
	for _, r := range s {
		n = n*10 + int(r-'0')
	}
	return n, nil
}

func joinRest(_ []string, body string) string {
	toks := strings.Fields(body)
	if len(toks) <= 1 {
		return ""
	}
	return strings.Join(toks[1:], " ")
}

func findOrCreateMaterial(d *Deck, num int) *MaterialRecord {
	for _, m := range d.Materials {
		if m.Number == num {
			return m
		}
	}
	m := newMaterialRecord(num)
	d.Materials = append(d.Materials, m)
	return m
}
