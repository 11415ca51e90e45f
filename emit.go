// Copyright © 2013-2014 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package deck

import (
	"fmt"
	"strconv"
	"strings"
)

// ImpMode selects how Emit handles per-cell importance keywords.
type ImpMode int

const (
	// ImpIn leaves imp:<particle>=<value> keywords on their cell cards.
	ImpIn ImpMode = iota
	// ImpOut strips them and synthesises one IMP:<particle> block card.
	ImpOut
)

// EmitOption configures Emit/WriteMCNPFile, mirroring the teacher's own
// functional-options style.
type EmitOption func(*emitConfig)

type emitConfig struct {
	imp ImpMode
}

// WithImp selects the importance-card emission mode.
func WithImp(m ImpMode) EmitOption {
	return func(c *emitConfig) { c.imp = m }
}

const wrapColumn = 80
const wrapCut = 75

// Emit formats the deck to MCNP card text.
func (d *Deck) Emit(opts ...EmitOption) (string, error) {
	cfg := &emitConfig{imp: ImpIn}
	for _, o := range opts {
		o(cfg)
	}

	var impBlock []string
	if cfg.imp == ImpOut {
		impBlock = d.extractImpBlock()
	}

	var b strings.Builder
	b.WriteString(d.prologueComment())

	for _, c := range d.Cells {
		writeWrapped(&b, c.Text())
	}
	b.WriteString("\n")

	for _, s := range d.Surfaces {
		writeWrapped(&b, s.Text())
	}
	b.WriteString("\n")

	for _, tc := range d.Transforms {
		writeWrapped(&b, tc.Text())
	}
	for _, m := range d.Materials {
		for _, line := range m.Text() {
			writeWrapped(&b, line)
		}
	}
	for _, line := range impBlock {
		writeWrapped(&b, line)
	}
	for _, line := range d.FreeMetadata {
		writeWrapped(&b, line)
	}
	b.WriteString("\n")

	if len(d.Groups) > 0 {
		gj, err := marshalGroupMetadata(d.Groups)
		if err != nil {
			return "", err
		}
		b.WriteString(gj)
		b.WriteString("\n")
	}

	return b.String(), nil
}

// WriteMCNPFile emits the deck and writes it to path atomically.
func (d *Deck) WriteMCNPFile(path string, opts ...EmitOption) error {
	text, err := d.Emit(opts...)
	if err != nil {
		return err
	}
	return writeFileAtomic(path, []byte(text))
}

func writeWrapped(b *strings.Builder, line string) {
	for _, l := range wrapCard(line) {
		b.WriteString(l)
		b.WriteByte('\n')
	}
}

// wrapCard splits an overlong logical card line into MCNP continuation
// lines, per spec 4.11: wrap at the last space before column 75; inside
// balanced (still-open) parentheses use "&" as the continuation marker,
// elsewhere indent the continuation with six spaces.
func wrapCard(line string) []string {
	if len(line) < wrapColumn {
		return []string{line}
	}
	var out []string
	rest := line
	for len(rest) >= wrapColumn {
		limit := wrapCut
		if limit >= len(rest) {
			limit = len(rest) - 1
		}
		depth := 0
		cut := -1
		for i := 0; i < limit; i++ {
			switch rest[i] {
			case '(':
				depth++
			case ')':
				if depth > 0 {
					depth--
				}
			case ' ':
				cut = i
			}
		}
		if cut <= 0 {
			cut = limit
		}
		seg := rest[:cut]
		remainder := strings.TrimLeft(rest[cut:], " ")
		if depth > 0 {
			out = append(out, seg+" &")
		} else {
			out = append(out, seg)
			remainder = "      " + remainder
		}
		rest = remainder
	}
	out = append(out, rest)
	return out
}

// prologueComment summarises applied transforms and inserted guest
// files as a leading comment block.
func (d *Deck) prologueComment() string {
	var b strings.Builder
	b.WriteString("c edit history\n")
	t := d.ObjectTransform
	b.WriteString(fmt.Sprintf("c   translation: %s %s %s\n",
		formatCardFloat(t.T.X), formatCardFloat(t.T.Y), formatCardFloat(t.T.Z)))
	for _, h := range d.TransformHistory {
		b.WriteString("c   " + h + "\n")
	}
	for _, g := range d.InsertedFrom {
		b.WriteString("c   inserted: " + g + "\n")
	}
	return b.String()
}

var impParticles = []string{"n", "p", "e"}

// extractImpBlock strips imp:<particle>=<value> (and bare imp=<value>,
// applying to every particle) from every cell's Trailing text and
// returns the synthesised IMP:<particle> block cards.
func (d *Deck) extractImpBlock() []string {
	values := map[string][]float64{}
	sawAny := false
	orig := make([]string, len(d.Cells))
	for i, c := range d.Cells {
		orig[i] = c.Trailing
	}
	for _, p := range impParticles {
		vals := make([]float64, len(d.Cells))
		for i, c := range d.Cells {
			// Read the value from the untouched text, so a bare imp= or a
			// combined imp:n,p= token counts for every particle it names.
			stripped := c.Trailing
			c.Trailing = orig[i]
			v, ok := stripImpKeyword(c, p)
			c.Trailing = stripped
			stripImpKeyword(c, p)
			if ok {
				sawAny = true
				vals[i] = v
			} else {
				vals[i] = 1
			}
		}
		values[p] = vals
	}
	if !sawAny {
		for _, p := range impParticles {
			vals := values[p]
			if len(vals) > 0 {
				vals[len(vals)-1] = 0
			}
		}
	}
	var lines []string
	for _, p := range impParticles {
		lines = append(lines, "IMP:"+p+" "+runLengthEncode(values[p]))
	}
	return lines
}

func stripImpKeyword(c *Cell, particle string) (float64, bool) {
	if c.Kind != PlainCell || c.Trailing == "" {
		return 0, false
	}
	toks := strings.Fields(c.Trailing)
	kept := toks[:0:0]
	found := 0.0
	ok := false
	for _, t := range toks {
		key, val, hasEq := partitionEq(t)
		if !hasEq {
			kept = append(kept, t)
			continue
		}
		lower := strings.ToLower(key)
		matches := false
		switch {
		case keywordEq(key, "imp"):
			matches = true
		case strings.HasPrefix(lower, "imp:"):
			for _, pp := range strings.Split(key[len("imp:"):], ",") {
				if keywordEq(pp, particle) {
					matches = true
				}
			}
		}
		if !matches {
			kept = append(kept, t)
			continue
		}
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			found, ok = f, true
		}
	}
	c.Trailing = strings.Join(kept, " ")
	return found, ok
}

func partitionEq(tok string) (key, val string, hasEq bool) {
	i := strings.IndexByte(tok, '=')
	if i < 0 {
		return tok, "", false
	}
	return tok[:i], tok[i+1:], true
}

// runLengthEncode formats a float sequence as MCNP does: a run of k
// equal values is written as the value followed by "<k-1>r".
func runLengthEncode(vals []float64) string {
	var toks []string
	i := 0
	for i < len(vals) {
		v := vals[i]
		j := i + 1
		for j < len(vals) && vals[j] == v {
			j++
		}
		toks = append(toks, formatCardFloat(v))
		if run := j - i; run > 1 {
			toks = append(toks, strconv.Itoa(run-1)+"r")
		}
		i = j
	}
	return strings.Join(toks, " ")
}
