package omex

import (
	"fmt"

	"github.com/simularium/omex/internal/ziputil"
)

// Repack zips the working directory back into a packaged archive.
//
// Every file currently under the root is included, from a fresh walk, so
// files produced after the last Index call are picked up. With an empty
// destination the original archive path is overwritten, which requires the
// archive to have been opened from a packaged file; a directory-opened
// archive must name an explicit destination.
func (a *Archive) Repack(destination string) error {
	if destination == "" {
		if a.source != SourcePackagedFile {
			return ErrNotPacked
		}
		destination = a.packedPath
	}

	entries, err := ziputil.EntriesFromDir(a.root)
	if err != nil {
		return fmt.Errorf("repack: %w", err)
	}
	if err := ziputil.Pack(entries, destination); err != nil {
		return fmt.Errorf("repack: %w", err)
	}
	a.log().Info("repacked archive", "destination", destination, "files", len(entries))
	return nil
}
