package html

import (
	"fmt"
	"strings"

	"github.com/yaklabco/docmorph/pkg/document"
)

// Generate emits a standalone HTML page for the document plus the image
// map referenced by the generated img elements.
func (Transformer) Generate(doc *document.Document) ([]byte, document.ImageMap, error) {
	g := &htmlGenerator{images: document.ImageMap{}}
	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html>\n<html>\n<body>\n")

	for _, el := range doc.Elements {
		switch n := el.(type) {
		case *document.Header:
			fmt.Fprintf(&sb, "<h%d>%s</h%d>\n", n.Level, n.Text, n.Level)
		case *document.Paragraph:
			sb.WriteString("<p>")
			for _, child := range n.Children {
				sb.WriteString(g.inline(child))
			}
			sb.WriteString("</p>\n")
		case *document.List:
			sb.WriteString(g.list(n))
		case *document.Table:
			sb.WriteString(g.table(n))
		case *document.PageBreak:
			sb.WriteString("<div style=\"page-break-after: always;\"></div>\n")
		}
	}

	sb.WriteString("</body>\n</html>")
	return []byte(sb.String()), g.images, nil
}

type htmlGenerator struct {
	images   document.ImageMap
	imageNum int
}

// inline renders a node that may appear inside a paragraph, list item,
// or table cell.
func (g *htmlGenerator) inline(n document.Node) string {
	switch el := n.(type) {
	case *document.Text:
		return el.Content
	case *document.Header:
		return fmt.Sprintf("<h%d>%s</h%d>", el.Level, el.Text, el.Level)
	case *document.Paragraph:
		var sb strings.Builder
		sb.WriteString("<p>")
		for _, child := range el.Children {
			sb.WriteString(g.inline(child))
		}
		sb.WriteString("</p>")
		return sb.String()
	case *document.Hyperlink:
		return fmt.Sprintf("<a href=%q title=%q>%s</a>", el.URL, el.Alt, el.Title)
	case *document.Image:
		name := fmt.Sprintf("image%d.png", g.imageNum)
		g.images[name] = append([]byte(nil), el.Bytes...)
		g.imageNum++
		return fmt.Sprintf("<img src=%q alt=%q title=%q />", name, el.Alt, el.Title)
	case *document.List:
		return g.list(el)
	default:
		return ""
	}
}

func (g *htmlGenerator) list(l *document.List) string {
	tag := "ul"
	if l.Ordered {
		tag = "ol"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "<%s>\n", tag)
	for _, item := range l.Items {
		fmt.Fprintf(&sb, "<li>%s</li>\n", g.inline(item.Child))
	}
	fmt.Fprintf(&sb, "</%s>\n", tag)
	return sb.String()
}

func (g *htmlGenerator) table(t *document.Table) string {
	var sb strings.Builder
	sb.WriteString("<table border=\"1\">\n")
	if len(t.Headers) > 0 {
		sb.WriteString("<tr>\n")
		for _, h := range t.Headers {
			fmt.Fprintf(&sb, "<th>%s</th>\n", g.inline(h.Child))
		}
		sb.WriteString("</tr>\n")
	}
	for _, row := range t.Rows {
		sb.WriteString("<tr>\n")
		for _, cell := range row.Cells {
			fmt.Fprintf(&sb, "<td>%s</td>\n", g.inline(cell.Child))
		}
		sb.WriteString("</tr>\n")
	}
	sb.WriteString("</table>\n")
	return sb.String()
}
