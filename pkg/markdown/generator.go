package markdown

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/yaklabco/docmorph/pkg/document"
)

// generator accumulates Markdown output while tracking the list
// numbering stacks and the synthetic image counter.
type generator struct {
	out strings.Builder

	counters []int
	ordered  []bool

	images   document.ImageMap
	imageNum int
}

func newGenerator() *generator {
	return &generator{images: document.ImageMap{}}
}

func (g *generator) run(doc *document.Document) error {
	for _, section := range [][]document.Node{doc.PageHeader, doc.Elements, doc.PageFooter} {
		for _, n := range section {
			if err := g.node(n, 0); err != nil {
				return err
			}
		}
	}
	return nil
}

// node emits one node. depth is the current list nesting depth, 0 when
// outside any list.
func (g *generator) node(n document.Node, depth int) error {
	switch el := n.(type) {
	case *document.Header:
		g.out.WriteString(strings.Repeat("#", el.Level))
		g.out.WriteByte(' ')
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
		// Page breaks have no Markdown rendering.

	default:
		// Wrapper variants never appear as direct children of a
		// document or paragraph.
	}
	return nil
}

// listItem emits one list item at the given nesting depth (1 at the
// outermost level). Ordered counters advance only for Text items;
// nested lists carry no prefix of their own.
func (g *generator) listItem(li *document.ListItem, depth int) error {
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

// table emits a pipe table with columns padded to the widest cell.
// Every cell and header must wrap a Text node.
func (g *generator) table(t *document.Table) error {
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

// cell emits one padded table cell without its trailing separator.
func (g *generator) cell(content string, width int) {
	padding := width - utf8.RuneCountInString(content)
	if padding < 0 {
		padding = 0
	}
	g.out.WriteString("| ")
	g.out.WriteString(content)
	g.out.WriteString(strings.Repeat(" ", padding))
	g.out.WriteByte(' ')
}
