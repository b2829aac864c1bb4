package ioboundary

import "errors"

// Sentinel errors for the per-line dispatch boundary (spec §7).
var (
	// ErrIgnorable marks an empty line, or one whose first character is
	// not 'B' or 'S'. Callers should silently skip these.
	ErrIgnorable = errors.New("ioboundary: ignorable input")

	// ErrMalformed marks a recognized-but-malformed line (first character
	// B/S but the remaining fields don't parse). Spec §7 leaves the
	// response to this unspecified beyond "abort the line or the
	// process"; this package aborts the line and reports the diagnostic
	// to the caller, which logs it on the error channel and continues.
	ErrMalformed = errors.New("ioboundary: malformed input")
)
