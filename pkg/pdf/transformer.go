// Package pdf implements the PDF generator. Page size and margins come
// from the document's geometry; layout is delegated to go-pdf/fpdf.
// PDF input is not parsed.
package pdf

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/yaklabco/docmorph/pkg/document"
)

// ErrParseUnsupported reports that PDF input cannot be parsed back into
// the document model.
var ErrParseUnsupported = errors.New("pdf parsing is not supported")

const (
	baseFont   = "Helvetica"
	lineHeight = 5.0
	imageWidth = 60.0
)

// Transformer generates PDF output from the document model.
type Transformer struct{}

// New returns a PDF transformer.
func New() *Transformer {
	return &Transformer{}
}

// Parse always fails with ErrParseUnsupported.
func (Transformer) Parse(_ []byte, _ document.ImageMap) (*document.Document, error) {
	return nil, ErrParseUnsupported
}

// Generate lays the document out on pages sized by its geometry and
// returns the PDF bytes. The returned image map is empty: images are
// embedded in the PDF itself.
func (Transformer) Generate(doc *document.Document) ([]byte, document.ImageMap, error) {
	g := newPageGenerator(doc)

	for _, n := range doc.PageHeader {
		if err := g.node(n, 0); err != nil {
			return nil, nil, err
		}
	}
	for _, n := range doc.Elements {
		if err := g.node(n, 0); err != nil {
			return nil, nil, err
		}
	}
	for _, n := range doc.PageFooter {
		if err := g.node(n, 0); err != nil {
			return nil, nil, err
		}
	}

	var buf bytes.Buffer
	if err := g.pdf.Output(&buf); err != nil {
		return nil, nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), document.ImageMap{}, nil
}

type pageGenerator struct {
	pdf *fpdf.Fpdf
	tr  func(string) string

	counters []int
	ordered  []bool

	imageNum int
}

func newPageGenerator(doc *document.Document) *pageGenerator {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: doc.PageWidth, Ht: doc.PageHeight},
	})
	pdf.SetMargins(doc.MarginLeft, doc.MarginTop, doc.MarginRight)
	pdf.SetAutoPageBreak(true, doc.MarginBottom)
	pdf.AddPage()
	pdf.SetFont(baseFont, "", 12)

	return &pageGenerator{
		pdf: pdf,
		tr:  pdf.UnicodeTranslatorFromDescriptor(""),
	}
}

func (g *pageGenerator) node(n document.Node, depth int) error {
	switch el := n.(type) {
	case *document.Header:
		size := headerFontSize(el.Level)
		g.pdf.SetFont(baseFont, "B", size)
		g.pdf.MultiCell(0, size/2, g.tr(el.Text), "", "L", false)
		g.pdf.SetFont(baseFont, "", 12)
		g.pdf.Ln(lineHeight / 2)

	case *document.Paragraph:
		for _, child := range el.Children {
			if err := g.node(child, depth); err != nil {
				return err
			}
		}
		g.pdf.Ln(lineHeight * 2)

	case *document.Text:
		g.pdf.Write(lineHeight, g.tr(el.Content))

	case *document.Hyperlink:
		g.pdf.SetTextColor(0, 0, 238)
		g.pdf.WriteLinkString(lineHeight, g.tr(el.Title), el.URL)
		g.pdf.SetTextColor(0, 0, 0)

	case *document.Image:
		g.image(el)

	case *document.List:
		g.counters = append(g.counters, 0)
		g.ordered = append(g.ordered, el.Ordered)
		for _, item := range el.Items {
			if err := g.listItem(item, depth+1); err != nil {
				return err
			}
		}
		g.counters = g.counters[:len(g.counters)-1]
		g.ordered = g.ordered[:len(g.ordered)-1]
		if len(g.counters) == 0 {
			g.pdf.Ln(lineHeight)
		}

	case *document.Table:
		return g.table(el)

	case *document.PageBreak:
		g.pdf.AddPage()
	}
	return nil
}

func (g *pageGenerator) listItem(li *document.ListItem, depth int) error {
	text, isText := li.Child.(*document.Text)
	if !isText {
		return g.node(li.Child, depth)
	}

	prefix := "- "
	if g.ordered[len(g.ordered)-1] {
		g.counters[len(g.counters)-1]++
		prefix = fmt.Sprintf("%d. ", g.counters[len(g.counters)-1])
	}

	indent := strings.Repeat("  ", depth-1)
	g.pdf.MultiCell(0, lineHeight, g.tr(indent+prefix+text.Content), "", "L", false)
	return nil
}

func (g *pageGenerator) image(img *document.Image) {
	if len(img.Bytes) == 0 {
		return
	}
	name := fmt.Sprintf("img%d", g.imageNum)
	g.imageNum++

	opts := fpdf.ImageOptions{ImageType: strings.ToUpper(img.Type.String()), ReadDpi: true}
	g.pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(img.Bytes))
	g.pdf.ImageOptions(name, g.pdf.GetX(), g.pdf.GetY(), imageWidth, 0, true, opts, 0, "")
}

func (g *pageGenerator) table(t *document.Table) error {
	if len(t.Headers) == 0 {
		return nil
	}
	pageWidth, _ := g.pdf.GetPageSize()
	left, _, right, _ := g.pdf.GetMargins()
	colWidth := (pageWidth - left - right) / float64(len(t.Headers))

	g.pdf.SetFont(baseFont, "B", 12)
	for _, h := range t.Headers {
		text, err := document.As[*document.Text](h.Child)
		if err != nil {
			return err
		}
		g.pdf.CellFormat(colWidth, lineHeight*1.4, g.tr(text.Content), "1", 0, "L", false, 0, "")
	}
	g.pdf.Ln(-1)

	g.pdf.SetFont(baseFont, "", 12)
	for _, row := range t.Rows {
		for _, cell := range row.Cells {
			text, err := document.As[*document.Text](cell.Child)
			if err != nil {
				return err
			}
			g.pdf.CellFormat(colWidth, lineHeight*1.4, g.tr(text.Content), "1", 0, "L", false, 0, "")
		}
		g.pdf.Ln(-1)
	}
	g.pdf.Ln(lineHeight)
	return nil
}

func headerFontSize(level int) float64 {
	switch level {
	case 1:
		return 24
	case 2:
		return 20
	case 3:
		return 17
	case 4:
		return 15
	case 5:
		return 13
	default:
		return 12
	}
}
