// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package gallery lists the files in an output directory as Markdown image
// references, one line per file:
//
//	![cat](outputs/cat.png)
//
// The label is the file name with its last extension removed and the link
// target is the entry path with a leading "./" removed. Listing is not
// recursive and applies no filtering.
package gallery

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bitfield/script"
	"github.com/sirupsen/logrus"

	"github.com/pdiddy/list-outputs/pkg/types"
)

// List returns the direct children of dir in file name order. Entry paths are
// built as dir + "/" + name without cleaning, so "./outputs" yields
// "./outputs/cat.png". A missing, unreadable, or non-directory dir is an
// error and no entries are returned.
func List(dir string) ([]Entry, error) {
	dirents, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}

	entries := make([]Entry, len(dirents))
	for i, d := range dirents {
		entries[i] = Entry{Path: joinEntry(dir, d.Name())}
	}
	return entries, nil
}

// joinEntry appends name to dir with a single slash, leaving the rest of dir
// untouched.
func joinEntry(dir, name string) string {
	if strings.HasSuffix(dir, "/") {
		return dir + name
	}
	return dir + "/" + name
}

// Lines returns the Markdown line for each entry, in order.
func Lines(entries []Entry) []string {
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = e.Markdown()
	}
	return lines
}

// Write prints one newline-terminated Markdown line per entry to w and
// returns the number of bytes written.
func Write(w io.Writer, entries []Entry) (int, error) {
	if len(entries) == 0 {
		return 0, nil
	}
	n, err := script.Slice(Lines(entries)).WithStdout(w).Stdout()
	if err != nil {
		return n, fmt.Errorf("writing output: %w", err)
	}
	return n, nil
}

// Run lists cfg.SourceDir and writes its lines to w. The whole directory is
// read before anything is written, so a listing failure produces no output.
func Run(cfg types.ListerConfig, w io.Writer) (int, error) {
	cfg = cfg.WithDefaults()

	entries, err := List(cfg.SourceDir)
	if err != nil {
		return 0, err
	}
	logrus.WithFields(logrus.Fields{
		"dir":     cfg.SourceDir,
		"entries": len(entries),
	}).Debug("Listed output directory")

	return Write(w, entries)
}
