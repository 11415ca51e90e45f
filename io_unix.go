// Copyright © 2013-2014 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

//go:build !windows

package deck

import (
	"os"

	"golang.org/x/sys/unix"
)

// writeFileAtomic writes data to path via a temp-file-then-rename, with
// an advisory flock held on the temp file for the duration of the write
// so two concurrent writers to the same path cannot interleave.
func writeFileAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return wrapErr(MalformedInput, "failed to open temp file for write: "+tmp, err)
	}
	if err := unix.Flock(int(f.Fd()), unix.LOCK_EX); err != nil {
		f.Close()
		os.Remove(tmp)
		return wrapErr(MalformedInput, "failed to lock temp file: "+tmp, err)
	}
	_, writeErr := f.Write(data)
	unix.Flock(int(f.Fd()), unix.LOCK_UN)
	closeErr := f.Close()
	if writeErr != nil {
		os.Remove(tmp)
		return wrapErr(MalformedInput, "failed to write deck to "+tmp, writeErr)
	}
	if closeErr != nil {
		os.Remove(tmp)
		return wrapErr(MalformedInput, "failed to close deck temp file "+tmp, closeErr)
	}
	if err := os.Rename(tmp, path); err != nil {
		return wrapErr(MalformedInput, "failed to rename temp file into place: "+path, err)
	}
	return nil
}
