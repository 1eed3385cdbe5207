// Package document defines the in-memory document model shared by every
// transformer: a polymorphic tree of typed nodes plus page-layout metadata.
package document

// Kind classifies the variant of a node.
type Kind uint8

// Node kinds, covering block-level and leaf-level variants as well as the
// container wrappers used inside lists and tables.
const (
	KindText Kind = iota
	KindHeader
	KindParagraph
	KindHyperlink
	KindImage
	KindList
	KindListItem
	KindTable
	KindTableHeader
	KindTableRow
	KindTableCell
	KindPageBreak
)

// String returns the human-readable name of the kind.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "Text"
	case KindHeader:
		return "Header"
	case KindParagraph:
		return "Paragraph"
	case KindHyperlink:
		return "Hyperlink"
	case KindImage:
		return "Image"
	case KindList:
		return "List"
	case KindListItem:
		return "ListItem"
	case KindTable:
		return "Table"
	case KindTableHeader:
		return "TableHeader"
	case KindTableRow:
		return "TableRow"
	case KindTableCell:
		return "TableCell"
	case KindPageBreak:
		return "PageBreak"
	default:
		return "Unknown"
	}
}

// ImageType identifies the encoding of an Image node's byte buffer.
type ImageType uint8

// Supported image encodings.
const (
	ImagePNG ImageType = iota
	ImageJPEG
)

// String returns the canonical lowercase name of the image type.
func (t ImageType) String() string {
	if t == ImageJPEG {
		return "jpeg"
	}
	return "png"
}

// Node is the common interface of every variant in the document tree.
// A node exclusively owns its children; Clone produces a deep copy that
// shares no mutable state with the original.
type Node interface {
	Kind() Kind
	Clone() Node
}

// Text is a leaf node holding a run of characters at a point size.
type Text struct {
	Content string
	Size    int
}

// Header is a block node with a level in 1..6 and plain text.
type Header struct {
	Level int
	Text  string
}

// Paragraph is a block node owning an ordered sequence of leaf nodes.
type Paragraph struct {
	Children []Node
}

// Hyperlink is a leaf node with display text, a URL, and a tooltip.
type Hyperlink struct {
	Title string
	URL   string
	Alt   string
}

// Image is a leaf node owning raw image bytes.
type Image struct {
	Bytes []byte
	Title string
	Alt   string
	Type  ImageType
}

// List is a block node owning an ordered sequence of items.
// Ordered lists are numbered at generation time.
type List struct {
	Items   []*ListItem
	Ordered bool
}

// ListItem wraps exactly one child node: a Text for a leaf item or a
// List for a nested list.
type ListItem struct {
	Child Node
}

// Table is a block node owning header cells and body rows.
type Table struct {
	Headers []*TableHeader
	Rows    []*TableRow
}

// TableHeader wraps one child node and carries a layout width hint used
// by page-oriented generators.
type TableHeader struct {
	Child Node
	Width float64
}

// TableRow owns an ordered sequence of cells.
type TableRow struct {
	Cells []*TableCell
}

// TableCell wraps exactly one child node. Generators that compute column
// widths require the child to be a Text.
type TableCell struct {
	Child Node
}

// PageBreak forces a page boundary in page-oriented output formats.
type PageBreak struct{}

// NewText returns a Text node.
func NewText(content string, size int) *Text {
	return &Text{Content: content, Size: size}
}

// NewHeader returns a Header node.
func NewHeader(level int, text string) *Header {
	return &Header{Level: level, Text: text}
}

// NewParagraph returns a Paragraph owning the given leaf nodes.
func NewParagraph(children ...Node) *Paragraph {
	return &Paragraph{Children: children}
}

// NewHyperlink returns a Hyperlink node.
func NewHyperlink(title, url, alt string) *Hyperlink {
	return &Hyperlink{Title: title, URL: url, Alt: alt}
}

// NewImage returns an Image node owning a copy of data.
func NewImage(data []byte, title, alt string, typ ImageType) *Image {
	return &Image{
		Bytes: append([]byte(nil), data...),
		Title: title,
		Alt:   alt,
		Type:  typ,
	}
}

// NewList returns a List owning the given items.
func NewList(ordered bool, items ...*ListItem) *List {
	return &List{Items: items, Ordered: ordered}
}

// defaultHeaderWidth is the layout hint assigned to table headers that
// carry no explicit width.
const defaultHeaderWidth = 30

// NewListItem returns a ListItem wrapping child.
func NewListItem(child Node) *ListItem {
	return &ListItem{Child: child}
}

// NewTable returns a Table owning the given headers and rows.
func NewTable(headers []*TableHeader, rows []*TableRow) *Table {
	return &Table{Headers: headers, Rows: rows}
}

// NewTableHeader returns a TableHeader wrapping child with the default
// width hint.
func NewTableHeader(child Node) *TableHeader {
	return &TableHeader{Child: child, Width: defaultHeaderWidth}
}

// NewTableRow returns a TableRow owning the given cells.
func NewTableRow(cells ...*TableCell) *TableRow {
	return &TableRow{Cells: cells}
}

// NewTableCell returns a TableCell wrapping child.
func NewTableCell(child Node) *TableCell {
	return &TableCell{Child: child}
}

// NewPageBreak returns a PageBreak node.
func NewPageBreak() *PageBreak {
	return &PageBreak{}
}

// Kind implementations.

// Kind reports KindText.
func (*Text) Kind() Kind { return KindText }

// Kind reports KindHeader.
func (*Header) Kind() Kind { return KindHeader }

// Kind reports KindParagraph.
func (*Paragraph) Kind() Kind { return KindParagraph }

// Kind reports KindHyperlink.
func (*Hyperlink) Kind() Kind { return KindHyperlink }

// Kind reports KindImage.
func (*Image) Kind() Kind { return KindImage }

// Kind reports KindList.
func (*List) Kind() Kind { return KindList }

// Kind reports KindListItem.
func (*ListItem) Kind() Kind { return KindListItem }

// Kind reports KindTable.
func (*Table) Kind() Kind { return KindTable }

// Kind reports KindTableHeader.
func (*TableHeader) Kind() Kind { return KindTableHeader }

// Kind reports KindTableRow.
func (*TableRow) Kind() Kind { return KindTableRow }

// Kind reports KindTableCell.
func (*TableCell) Kind() Kind { return KindTableCell }

// Kind reports KindPageBreak.
func (*PageBreak) Kind() Kind { return KindPageBreak }
