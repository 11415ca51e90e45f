// Copyright © 2013-2014 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package deck

import (
	"io"
	"os"
)

// LoadOption configures Load, mirroring the functional-options style
// used throughout the teacher's own Config/Attr API.
type LoadOption func(*loadConfig)

type loadConfig struct {
	strict bool
	reader io.Reader
}

// Strict turns Caveat-class warnings (tabs, a message prologue, a read
// directive, malformed comment indentation) into fatal errors instead
// of auto-corrected, logged warnings.
func Strict() LoadOption {
	return func(c *loadConfig) { c.strict = true }
}

// FromReader sources deck bytes from r instead of opening path, letting
// callers load from an in-memory buffer or a non-file source while
// still using path as the warning/source label.
func FromReader(r io.Reader) LoadOption {
	return func(c *loadConfig) { c.reader = r }
}

// Load reads the deck at path and builds an indexed Deck.
func Load(path string, opts ...LoadOption) (*Deck, error) {
	cfg := &loadConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	var data []byte
	var err error
	if cfg.reader != nil {
		data, err = io.ReadAll(cfg.reader)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, wrapErr(MalformedInput, "failed to read deck file: "+path, err)
	}

	d, err := LoadString(path, string(data))
	if err != nil {
		return nil, err
	}
	if cfg.strict && len(d.Warnings) > 0 {
		return nil, wrapErr(MalformedInput, "strict mode: deck raised caveats: "+d.Warnings[0].Detail, nil)
	}
	return d, nil
}
