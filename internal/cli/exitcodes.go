package cli

import (
	"errors"
	"io/fs"

	"github.com/yaklabco/docmorph/pkg/convert"
	"github.com/yaklabco/docmorph/pkg/document"
)

// Exit codes for docmorph.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitConversionError indicates the document could not be parsed or
	// regenerated.
	ExitConversionError = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ExitCodeFromError maps an error returned by command execution to a
// process exit code.
func ExitCodeFromError(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, convert.ErrUnknownFormat):
		return ExitInvalidUsage
	case errors.Is(err, document.ErrBadEncoding),
		errors.Is(err, document.ErrBadCast):
		return ExitConversionError
	case errors.Is(err, document.ErrBadRegex):
		return ExitInternalError
	case errors.As(err, new(*fs.PathError)):
		return ExitIOError
	default:
		return ExitConversionError
	}
}
