package manifest

import "errors"

// Sentinel errors for manifest codec operations.
var (
	// ErrMalformed is returned when a manifest's top-level structure cannot
	// be parsed.
	ErrMalformed = errors.New("manifest: malformed manifest")

	// ErrModified is returned when a write precondition fails because the
	// manifest file changed since it was read.
	ErrModified = errors.New("manifest: file changed since read")
)
