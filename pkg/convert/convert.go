// Package convert defines the Transformer contract shared by every
// format back-end and the registry that routes a conversion request to
// the right parser/generator pair.
package convert

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/yaklabco/docmorph/pkg/document"
	"github.com/yaklabco/docmorph/pkg/html"
	"github.com/yaklabco/docmorph/pkg/markdown"
	"github.com/yaklabco/docmorph/pkg/pdf"
	"github.com/yaklabco/docmorph/pkg/text"
)

// Transformer is the contract every format back-end implements: parse
// bytes (with an image map for referenced resources) into a document,
// and generate bytes (with an output image map) from a document.
type Transformer interface {
	Parse(data []byte, images document.ImageMap) (*document.Document, error)
	Generate(doc *document.Document) ([]byte, document.ImageMap, error)
}

// Format names a registered document format.
type Format string

// Registered formats. "htm" is an alias of "html".
const (
	FormatMarkdown Format = "md"
	FormatHTML     Format = "html"
	FormatHTM      Format = "htm"
	FormatText     Format = "txt"
	FormatPDF      Format = "pdf"
)

// ErrUnknownFormat reports a format with no registered transformer.
var ErrUnknownFormat = errors.New("unknown format")

// For returns the transformer registered for the format.
func For(f Format) (Transformer, error) {
	switch f {
	case FormatMarkdown:
		return markdown.New(), nil
	case FormatHTML, FormatHTM:
		return html.New(), nil
	case FormatText:
		return text.New(), nil
	case FormatPDF:
		return pdf.New(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

// Formats lists the registered formats in stable order, aliases last.
func Formats() []Format {
	return []Format{FormatMarkdown, FormatHTML, FormatText, FormatPDF, FormatHTM}
}

// CanParse reports whether the format supports parsing. PDF is
// generate-only.
func CanParse(f Format) bool {
	return f != FormatPDF
}

// FromExtension maps a file path's extension onto a format.
func FromExtension(path string) (Format, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	f := Format(ext)
	if _, err := For(f); err != nil {
		return "", err
	}
	return f, nil
}

// Convert parses in as the from format and regenerates it as the to
// format. The input image map resolves resources referenced by the
// source; the returned map holds the images referenced by the output.
func Convert(in []byte, images document.ImageMap, from, to Format) ([]byte, document.ImageMap, error) {
	parser, err := For(from)
	if err != nil {
		return nil, nil, err
	}
	generator, err := For(to)
	if err != nil {
		return nil, nil, err
	}

	doc, err := parser.Parse(in, images)
	if err != nil {
		return nil, nil, fmt.Errorf("parse %s: %w", from, err)
	}
	out, outImages, err := generator.Generate(doc)
	if err != nil {
		return nil, nil, fmt.Errorf("generate %s: %w", to, err)
	}
	return out, outImages, nil
}
