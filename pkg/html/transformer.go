// Package html implements the HTML transformer. Parsing walks the DOM
// produced by goquery and maps the supported elements onto the document
// model; generation emits a standalone HTML page.
package html

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/yaklabco/docmorph/pkg/document"
)

const leafTextSize = 8

// Transformer converts between HTML bytes and the document model.
type Transformer struct{}

// New returns an HTML transformer.
func New() *Transformer {
	return &Transformer{}
}

// Parse reads an HTML document into the model. Recognized elements are
// table, p, h1..h6, img, ul, ol, and a; everything else is traversed
// transparently. An img element's src attribute is resolved against the
// caller's image map; a missing key yields empty image bytes.
func (Transformer) Parse(data []byte, images document.ImageMap) (*document.Document, error) {
	if !utf8.Valid(data) {
		return nil, document.ErrBadEncoding
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	w := &walker{images: images}
	var elements []document.Node
	for _, root := range doc.Find("body").Nodes {
		w.children(root, &elements)
	}
	return document.New(elements...), nil
}

// walker recursively maps DOM nodes onto document nodes.
type walker struct {
	images document.ImageMap
}

func (w *walker) children(parent *html.Node, out *[]document.Node) {
	for c := parent.FirstChild; c != nil; c = c.NextSibling {
		w.node(c, out)
	}
}

func (w *walker) node(n *html.Node, out *[]document.Node) {
	switch n.Type {
	case html.TextNode:
		if strings.TrimSpace(n.Data) == "" {
			return
		}
		*out = append(*out, document.NewText(n.Data, leafTextSize))

	case html.ElementNode:
		w.element(n, out)
	}
}

func (w *walker) element(n *html.Node, out *[]document.Node) {
	switch n.Data {
	case "table":
		if table := w.table(n); len(table.Headers) > 0 || len(table.Rows) > 0 {
			*out = append(*out, table)
		}

	case "p":
		var children []document.Node
		w.children(n, &children)
		*out = append(*out, document.NewParagraph(children...))

	case "h1", "h2", "h3", "h4", "h5", "h6":
		level := int(n.Data[1] - '0')
		*out = append(*out, document.NewHeader(level, directText(n)))

	case "img":
		src := attr(n, "src")
		img := document.NewImage(w.images[src], attr(n, "title"), attr(n, "alt"), document.ImagePNG)
		*out = append(*out, img)

	case "ul", "ol":
		*out = append(*out, w.list(n, n.Data == "ol"))

	case "a":
		text := directText(n)
		alt := attr(n, "alt")
		if alt == "" {
			alt = attr(n, "title")
		}
		if alt == "" {
			alt = text
		}
		*out = append(*out, document.NewHyperlink(text, attr(n, "href"), alt))

	default:
		// Unhandled tags contribute their children transparently.
		w.children(n, out)
	}
}

func (w *walker) list(n *html.Node, ordered bool) *document.List {
	var items []*document.ListItem
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || c.Data != "li" {
			continue
		}
		var children []document.Node
		w.children(c, &children)
		for _, child := range children {
			items = append(items, document.NewListItem(child))
		}
	}
	return document.NewList(ordered, items...)
}

func (w *walker) table(n *html.Node) *document.Table {
	var headers []*document.TableHeader
	var rows []*document.TableRow

	var visitRow func(tr *html.Node)
	visitRow = func(tr *html.Node) {
		var cells []*document.TableCell
		isHeader := false
		for c := tr.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			var inner []document.Node
			switch c.Data {
			case "th":
				isHeader = true
				w.children(c, &inner)
				for _, el := range inner {
					headers = append(headers, document.NewTableHeader(el))
				}
			case "td":
				w.children(c, &inner)
				for _, el := range inner {
					cells = append(cells, document.NewTableCell(el))
				}
			}
		}
		if !isHeader {
			rows = append(rows, document.NewTableRow(cells...))
		}
	}

	var walkRows func(parent *html.Node)
	walkRows = func(parent *html.Node) {
		for c := parent.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			if c.Data == "tr" {
				visitRow(c)
				continue
			}
			// thead / tbody / tfoot wrappers.
			walkRows(c)
		}
	}
	walkRows(n)

	return document.NewTable(headers, rows)
}

// directText concatenates the immediate text children of n.
func directText(n *html.Node) string {
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
	}
	return sb.String()
}

func attr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}
