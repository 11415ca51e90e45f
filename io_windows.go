// Copyright © 2013-2014 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

//go:build windows

package deck

import "os"

// writeFileAtomic writes data to path via a temp-file-then-rename. No
// advisory lock is taken: x/sys/windows locking needs LockFileEx, which
// is out of scope for a single-writer editing tool on Windows.
func writeFileAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return wrapErr(MalformedInput, "failed to write temp file: "+tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return wrapErr(MalformedInput, "failed to rename temp file into place: "+path, err)
	}
	return nil
}
