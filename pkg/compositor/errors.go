package compositor

import "errors"

// Error kinds reported by the stamping pipeline. Every error returned from
// this package wraps exactly one of them, so callers can match with
// errors.Is and decide per kind whether to continue.
var (
	// ErrNotFound reports a path that does not resolve to a readable file.
	ErrNotFound = errors.New("file not found")

	// ErrDecode reports a file that exists but is not a valid or supported image.
	ErrDecode = errors.New("image decode failed")

	// ErrInvalidDimension reports degenerate resize inputs, such as a base
	// image too short to hold a visible icon.
	ErrInvalidDimension = errors.New("invalid dimension")

	// ErrWrite reports an output path that could not be written.
	ErrWrite = errors.New("image write failed")
)
