package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError  = "error"
	FieldInput  = "input"
	FieldOutput = "output"
	FieldPath   = "path"

	// Conversion fields.
	FieldFrom   = "from"
	FieldTo     = "to"
	FieldFormat = "format"
	FieldBytes  = "bytes"
	FieldImages = "images"

	// Server fields.
	FieldAddr   = "addr"
	FieldMethod = "method"
	FieldStatus = "status"
	FieldFile   = "file"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
