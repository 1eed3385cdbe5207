package document

import "errors"

// Sentinel errors shared by every transformer. Callers match them with
// errors.Is after unwrapping.
var (
	// ErrBadEncoding reports that input bytes are not valid UTF-8.
	// Raised only at a parser's entry point.
	ErrBadEncoding = errors.New("input is not valid UTF-8")

	// ErrBadCast reports that a variant-specific accessor was applied to
	// a node of the wrong variant.
	ErrBadCast = errors.New("node kind mismatch")

	// ErrBadRegex reports that a fixed internal pattern failed to
	// compile. This is a programmer error surfaced to the caller.
	ErrBadRegex = errors.New("internal pattern failed to compile")
)
