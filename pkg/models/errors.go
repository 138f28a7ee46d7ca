package models

import "errors"

// Error taxonomy shared across packages. All of these are recoverable at
// the boundary; none should terminate the process.
var (
	// ErrNotFound marks an unknown board or note id. Defensive only; a
	// correct presentation flow treats it as a silent no-op.
	ErrNotFound = errors.New("not found")

	// ErrAssetUnavailable marks a missing source file or a failed copy.
	// The referencing operation proceeds with an empty asset reference.
	ErrAssetUnavailable = errors.New("asset unavailable")

	// ErrCorruptState marks a project file that exists but cannot be
	// parsed. The caller decides whether to fall back to an empty project.
	ErrCorruptState = errors.New("corrupt project state")

	// ErrCascadeConfirm marks a delete of an idea with a child board that
	// was not explicitly approved as cascading. Nothing is mutated.
	ErrCascadeConfirm = errors.New("cascading delete requires confirmation")
)
