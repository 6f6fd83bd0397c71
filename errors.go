package omex

import (
	"errors"
	"fmt"
	"strings"

	"github.com/simularium/omex/manifest"
)

// Sentinel errors for archive operations.
var (
	// ErrOpen is returned when a source path is neither a packaged archive
	// nor an existing directory, or when unpacking fails. No usable Archive
	// exists after an open failure.
	ErrOpen = errors.New("omex: cannot open archive")

	// ErrNoManifest is returned when no file in the archive matches the
	// manifest naming convention.
	ErrNoManifest = errors.New("omex: no manifest file found")

	// ErrNotFound is returned when a convention-based lookup matches no
	// file. Absence is expected while probing; callers branch on it rather
	// than treating it as failure.
	ErrNotFound = errors.New("omex: file not found in archive")

	// ErrNotPacked is returned by Repack when the archive was opened from a
	// directory rather than a packaged file and no destination is given.
	ErrNotPacked = errors.New("omex: archive was not opened from a packaged file")
)

// Errors re-exported from manifest.
var (
	// ErrManifestMalformed is returned when a manifest's top-level
	// structure cannot be parsed.
	ErrManifestMalformed = manifest.ErrMalformed

	// ErrManifestModified is returned when a manifest write precondition
	// fails because the file changed since it was read.
	ErrManifestModified = manifest.ErrModified
)

// AmbiguousManifestError is returned when more than one candidate manifest
// file is found and no tie-break applies. Resolve by renaming the extra
// candidates or by reading the intended path directly with manifest.ReadFile.
type AmbiguousManifestError struct {
	Candidates []string
}

func (e *AmbiguousManifestError) Error() string {
	return fmt.Sprintf("omex: %d candidate manifest files: %s",
		len(e.Candidates), strings.Join(e.Candidates, ", "))
}
