// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package gallery

import (
	"path/filepath"
	"strings"
)

// relativePrefix is removed once from the front of an entry path to form the
// link target.
const relativePrefix = "./"

// separators holds the characters that end a path segment. On Unix both
// entries are '/'.
var separators = "/" + string(filepath.Separator)

// Entry is one direct child of the source directory. Path is the path as
// formed during enumeration (source directory, a slash, then the name); all
// other attributes are derived from it on demand.
type Entry struct {
	Path string
}

// Basename returns the text after the last path separator in Path, or all of
// Path when it has no separator. Trailing separators are not stripped.
func (e Entry) Basename() string {
	if i := strings.LastIndexAny(e.Path, separators); i >= 0 {
		return e.Path[i+1:]
	}
	return e.Path
}

// Ext returns the substring of the basename from its last '.' to the end, or
// "" if the basename has no '.'. A dotfile such as ".gitignore" is all
// extension.
func (e Entry) Ext() string {
	base := e.Basename()
	if i := strings.LastIndexByte(base, '.'); i >= 0 {
		return base[i:]
	}
	return ""
}

// Stem returns the basename with Ext removed.
func (e Entry) Stem() string {
	base := e.Basename()
	return base[:len(base)-len(e.Ext())]
}

// Relative returns Path with a single leading "./" removed.
func (e Entry) Relative() string {
	return strings.TrimPrefix(e.Path, relativePrefix)
}

// Markdown returns the image reference for the entry: ![stem](relative).
func (e Entry) Markdown() string {
	var b strings.Builder
	b.WriteString("![")
	b.WriteString(e.Stem())
	b.WriteString("](")
	b.WriteString(e.Relative())
	b.WriteString(")")
	return b.String()
}
