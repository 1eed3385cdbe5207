package document

// Default page geometry in millimetres (A4 portrait, 10 mm margins).
const (
	DefaultPageWidth  = 210.0
	DefaultPageHeight = 297.0
	DefaultMargin     = 10.0
)

// Document is an ordered sequence of block nodes plus page-layout
// metadata. PageHeader and PageFooter hold nodes repeated by
// page-oriented generators; stream-oriented generators emit them before
// and after the body.
type Document struct {
	Elements []Node

	PageWidth  float64
	PageHeight float64

	MarginLeft   float64
	MarginRight  float64
	MarginTop    float64
	MarginBottom float64

	PageHeader []Node
	PageFooter []Node
}

// New returns a document owning the given elements with default page
// geometry.
func New(elements ...Node) *Document {
	return &Document{
		Elements:     elements,
		PageWidth:    DefaultPageWidth,
		PageHeight:   DefaultPageHeight,
		MarginLeft:   DefaultMargin,
		MarginRight:  DefaultMargin,
		MarginTop:    DefaultMargin,
		MarginBottom: DefaultMargin,
	}
}

// Clone returns a deep copy of the document.
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	c := *d
	c.Elements = cloneNodes(d.Elements)
	c.PageHeader = cloneNodes(d.PageHeader)
	c.PageFooter = cloneNodes(d.PageFooter)
	return &c
}

// ImageMap keys byte buffers by a path-like string. Parsers consume one
// to resolve referenced images; generators produce one holding the
// images their output refers to.
type ImageMap map[string][]byte

// Clone returns a copy of the map with copied byte buffers.
func (m ImageMap) Clone() ImageMap {
	if m == nil {
		return nil
	}
	out := make(ImageMap, len(m))
	for k, v := range m {
		out[k] = append([]byte(nil), v...)
	}
	return out
}
