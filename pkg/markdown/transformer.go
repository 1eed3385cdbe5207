// Package markdown implements the Markdown transformer: a line-oriented
// parser that recovers nested lists by indentation, pipe-style tables,
// and inline links and images, paired with a generator that reproduces
// well-formed Markdown with column-aligned tables and renumbered nested
// ordered lists.
//
// The accepted subset is deliberately pragmatic rather than CommonMark:
// ATX headings, ordered and unordered lists with nesting, pipe tables
// with an optional delimiter row, inline images and links, and bare URL
// auto-linking. Reference-style links, inline HTML, soft line breaks,
// and code blocks are out of scope; malformed constructs degrade to
// plain text instead of failing.
package markdown

import (
	"unicode/utf8"

	"github.com/yaklabco/docmorph/pkg/document"
)

// Transformer converts between Markdown bytes and the document model.
// The zero value is ready to use; transformers hold no state and may be
// shared across goroutines.
type Transformer struct{}

// New returns a Markdown transformer.
func New() *Transformer {
	return &Transformer{}
}

// Parse converts UTF-8 Markdown bytes into a document. Image references
// are resolved against images; a missing key yields an Image node with
// an empty byte buffer, not an error. The only parse errors are
// document.ErrBadEncoding for non-UTF-8 input and document.ErrBadRegex
// if a fixed internal pattern fails to compile.
func (Transformer) Parse(data []byte, images document.ImageMap) (*document.Document, error) {
	if !utf8.Valid(data) {
		return nil, document.ErrBadEncoding
	}
	pats, err := patterns()
	if err != nil {
		return nil, err
	}
	p := &parser{pats: pats, images: images}
	return p.run(string(data)), nil
}

// Generate walks the document and emits Markdown bytes plus a map of the
// images the output refers to, keyed by synthetic image<N>.png names
// with N contiguous from 0. It fails with document.ErrBadCast when a
// table cell or header holds anything but a Text node.
func (Transformer) Generate(doc *document.Document) ([]byte, document.ImageMap, error) {
	g := newGenerator()
	if err := g.run(doc); err != nil {
		return nil, nil, err
	}
	return []byte(g.out.String()), g.images, nil
}
