// Package text implements the plain-text transformer. Parsing wraps the
// input lines in a single paragraph; generation mirrors the Markdown
// generator except that headers are emitted without markers.
package text

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/yaklabco/docmorph/pkg/document"
)

const leafTextSize = 8

// Transformer converts between plain text and the document model.
type Transformer struct{}

// New returns a plain-text transformer.
func New() *Transformer {
	return &Transformer{}
}

// Parse turns each input line into a pair of Text nodes (content and
// newline) inside one paragraph. The only parse error is
// document.ErrBadEncoding.
func (Transformer) Parse(data []byte, _ document.ImageMap) (*document.Document, error) {
	if !utf8.Valid(data) {
		return nil, document.ErrBadEncoding
	}

	var children []document.Node
	for _, line := range strings.Split(strings.TrimSuffix(string(data), "\n"), "\n") {
		line = strings.TrimSuffix(line, "\r")
		children = append(children,
			document.NewText(line, leafTextSize),
			document.NewText("\n", leafTextSize))
	}
	return document.New(document.NewParagraph(children...)), nil
}

// Generate walks the document and emits plain text plus the image map
// referenced by the output. Table cells must wrap Text nodes.
func (Transformer) Generate(doc *document.Document) ([]byte, document.ImageMap, error) {
	g := &textGenerator{images: document.ImageMap{}}
	for _, section := range [][]document.Node{doc.PageHeader, doc.Elements, doc.PageFooter} {
		for _, n := range section {
			if err := g.node(n, 0); err != nil {
				return nil, nil, err
			}
		}
	}
	return []byte(g.out.String()), g.images, nil
}

type textGenerator struct {
	out strings.Builder

	counters []int
	ordered  []bool

	images   document.ImageMap
	imageNum int
}

func (g *textGenerator) node(n document.Node, depth int) error {
	switch el := n.(type) {
	case *document.Header:
		g.out.WriteString(el.Text)
		g.out.WriteString("\n\n")

	case *document.Paragraph:
		for _, child := range el.Children {
			if err := g.node(child, depth); err != nil {
				return err
			}
		}
		g.out.WriteString("\n\n")

	case *document.Text:
		g.out.WriteString(el.Content)
		if !strings.HasSuffix(el.Content, " ") {
			g.out.WriteByte(' ')
		}

	case *document.Hyperlink:
		if el.URL == el.Alt && el.Alt == el.Title {
			g.out.WriteString(el.URL)
		} else {
			fmt.Fprintf(&g.out, "[%s](%s \"%s\")", el.Title, el.URL, el.Alt)
		}

	case *document.Image:
		name := fmt.Sprintf("image%d.png", g.imageNum)
		fmt.Fprintf(&g.out, "![%s](%s \"%s\")", el.Alt, name, el.Title)
		g.images[name] = append([]byte(nil), el.Bytes...)
		g.imageNum++

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
			g.out.WriteByte('\n')
		}

	case *document.Table:
		return g.table(el)

	case *document.PageBreak:
		g.out.WriteByte('\f')
	}
	return nil
}

func (g *textGenerator) listItem(li *document.ListItem, depth int) error {
	text, isText := li.Child.(*document.Text)

	prefix := "- "
	if g.ordered[len(g.ordered)-1] {
		if isText {
			g.counters[len(g.counters)-1]++
		}
		prefix = fmt.Sprintf("%d. ", g.counters[len(g.counters)-1])
	}

	g.out.WriteString(strings.Repeat("  ", depth-1))
	if isText {
		g.out.WriteString(prefix)
		g.out.WriteString(text.Content)
		g.out.WriteByte('\n')
		return nil
	}
	return g.node(li.Child, depth)
}

func (g *textGenerator) table(t *document.Table) error {
	widths := make([]int, 0, len(t.Headers))
	for _, h := range t.Headers {
		text, err := document.As[*document.Text](h.Child)
		if err != nil {
			return err
		}
		widths = append(widths, utf8.RuneCountInString(text.Content))
	}
	for _, row := range t.Rows {
		for i, cell := range row.Cells {
			text, err := document.As[*document.Text](cell.Child)
			if err != nil {
				return err
			}
			if i < len(widths) {
				widths[i] = max(widths[i], utf8.RuneCountInString(text.Content))
			}
		}
	}

	for i, h := range t.Headers {
		g.cell(document.MustAs[*document.Text](h.Child).Content, widths[i])
	}
	g.out.WriteString("|\n")

	for _, w := range widths {
		g.out.WriteByte('|')
		g.out.WriteString(strings.Repeat("-", w+2))
	}
	g.out.WriteString("|\n")

	for _, row := range t.Rows {
		for i, c := range row.Cells {
			width := 0
			if i < len(widths) {
				width = widths[i]
			}
			g.cell(document.MustAs[*document.Text](c.Child).Content, width)
		}
		g.out.WriteString("|\n")
	}
	g.out.WriteByte('\n')
	return nil
}

func (g *textGenerator) cell(content string, width int) {
	padding := width - utf8.RuneCountInString(content)
	if padding < 0 {
		padding = 0
	}
	g.out.WriteString("| ")
	g.out.WriteString(content)
	g.out.WriteString(strings.Repeat(" ", padding))
	g.out.WriteByte(' ')
}
