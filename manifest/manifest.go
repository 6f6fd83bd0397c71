// Package manifest models the COMBINE/OMEX manifest and its on-disk XML
// serialization.
//
// A manifest is an ordered list of content entries. Each entry names a file
// in the archive (location, relative to the archive root), its format
// identifier, and whether it is the master content — the primary description
// the archive exists to carry. Entry order is preserved on serialization but
// carries no meaning for equality.
//
// Reading collects per-entry validation problems into a [Report] instead of
// failing on the first bad entry; only structural problems (unreadable file,
// malformed XML) abort a read. Writing is atomic (temp file + rename) and
// can be guarded with a digest precondition so that concurrent
// read-modify-write cycles fail loudly instead of losing an update.
package manifest

import (
	"cmp"
	"slices"
)

// Filename is the conventional name of the manifest file inside an archive.
const Filename = "manifest.xml"

// RootLocation is the location an entry uses to reference the archive itself.
const RootLocation = "."

// Content is one entry of a manifest.
type Content struct {
	// Location is the path of the referenced file relative to the archive
	// root. RootLocation denotes the archive itself.
	Location string

	// Format is the canonical format identifier URI, or empty when the
	// format is unknown.
	Format string

	// Master marks the entry as the archive's primary content.
	Master bool
}

// Manifest is an ordered sequence of content entries.
type Manifest []Content

// Projection returns a copy of the entries sorted by the null-tolerant key
// (location, format, master). An absent format sorts before any value, and
// master false before true. The projection is the stable view used for
// order-insensitive comparison.
func (m Manifest) Projection() []Content {
	p := slices.Clone(m)
	slices.SortFunc(p, compareContent)
	return p
}

// Equal reports whether both manifests describe the same entries,
// disregarding order. Both sides are independently sorted by the projection
// key and compared field-wise.
func (m Manifest) Equal(other Manifest) bool {
	if len(m) != len(other) {
		return false
	}
	return slices.Equal(m.Projection(), other.Projection())
}

// Masters returns every entry marked as master, in manifest order. The model
// does not enforce uniqueness; more than one entry may be returned.
func (m Manifest) Masters() []Content {
	var masters []Content
	for _, c := range m {
		if c.Master {
			masters = append(masters, c)
		}
	}
	return masters
}

// Find returns the first entry with the given location.
func (m Manifest) Find(location string) (Content, bool) {
	for _, c := range m {
		if c.Location == location {
			return c, true
		}
	}
	return Content{}, false
}

func compareContent(a, b Content) int {
	if c := cmp.Compare(a.Location, b.Location); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Format, b.Format); c != 0 {
		return c
	}
	return boolCompare(a.Master, b.Master)
}

func boolCompare(a, b bool) int {
	switch {
	case a == b:
		return 0
	case b:
		return -1
	default:
		return 1
	}
}
