package markdown

import (
	"strings"

	"github.com/yaklabco/docmorph/pkg/document"
)

// listFrame is one level of the parser's list stack: the items collected
// so far and whether the level is numbered.
type listFrame struct {
	items   []*document.ListItem
	ordered bool
}

// parser drives the input one line at a time, maintaining three strands
// of open state: the list stack, the table accumulator, and the
// paragraph buffer.
type parser struct {
	pats   *inlinePatterns
	images document.ImageMap

	elements []document.Node

	stack []listFrame

	inTable bool
	headers []*document.TableHeader
	rows    []*document.TableRow

	para []document.Node
}

func (p *parser) run(input string) *document.Document {
	for _, raw := range strings.Split(input, "\n") {
		p.line(strings.TrimSuffix(raw, "\r"))
	}
	p.collapse(0)
	p.flushTable()
	p.flushParagraph()
	return document.New(p.elements...)
}

// line classifies one input line and updates the open state. Leading
// whitespace is trimmed for classification only.
func (p *parser) line(raw string) {
	trimmed := strings.TrimSpace(raw)

	switch {
	case isBulletItem(trimmed):
		p.flushTable()
		p.flushParagraph()
		p.listItem(indentLevel(raw), false, trimmed[2:])

	case isOrderedItem(trimmed):
		p.flushTable()
		p.flushParagraph()
		p.listItem(indentLevel(raw), true, trimmed[2:])

	case isTableLine(trimmed):
		p.collapse(0)
		p.flushParagraph()
		p.tableLine(trimmed)

	case isHeaderLine(trimmed):
		p.flushTable()
		p.collapse(0)
		p.flushParagraph()
		level, text := splitHeader(trimmed)
		p.elements = append(p.elements, document.NewHeader(level, text))

	case trimmed == "":
		// Blank lines flush the paragraph and any open table but leave
		// the list stack open so a list may span blank lines.
		p.flushTable()
		p.flushParagraph()

	default:
		p.flushTable()
		p.collapse(0)
		p.para = append(p.para, p.pats.scanLine(raw, p.images)...)
	}
}

// listItem records one list-item line at indent depth d.
func (p *parser) listItem(d int, ordered bool, text string) {
	p.collapse(d + 1)
	for len(p.stack) < d+1 {
		p.stack = append(p.stack, listFrame{ordered: ordered})
	}
	frame := &p.stack[d]
	item := document.NewListItem(document.NewText(strings.TrimSpace(text), leafTextSize))
	frame.items = append(frame.items, item)
}

// collapse pops list frames until the stack is no deeper than depth.
// Each popped frame becomes a List wrapped in a ListItem pushed onto the
// frame below; the outermost List is appended to the document.
func (p *parser) collapse(depth int) {
	for len(p.stack) > depth {
		top := p.stack[len(p.stack)-1]
		p.stack = p.stack[:len(p.stack)-1]

		list := document.NewList(top.ordered, top.items...)
		if len(p.stack) == 0 {
			p.elements = append(p.elements, list)
			continue
		}
		parent := &p.stack[len(p.stack)-1]
		parent.items = append(parent.items, document.NewListItem(list))
	}
}

// tableLine accumulates one |…| line. The first such line carries the
// headers; later lines containing a --- delimiter run are discarded and
// the rest become body rows.
func (p *parser) tableLine(line string) {
	cells := splitCells(line)

	if !p.inTable {
		p.inTable = true
		for _, c := range cells {
			p.headers = append(p.headers,
				document.NewTableHeader(document.NewText(c, leafTextSize)))
		}
		return
	}
	if strings.Contains(line, "---") {
		return
	}
	if len(cells) == 0 {
		return
	}

	row := make([]*document.TableCell, 0, len(cells))
	for _, c := range cells {
		row = append(row, document.NewTableCell(document.NewText(c, leafTextSize)))
	}
	p.rows = append(p.rows, document.NewTableRow(row...))
}

func (p *parser) flushTable() {
	if !p.inTable {
		return
	}
	p.elements = append(p.elements, document.NewTable(p.headers, p.rows))
	p.inTable = false
	p.headers = nil
	p.rows = nil
}

func (p *parser) flushParagraph() {
	if len(p.para) == 0 {
		return
	}
	p.elements = append(p.elements, document.NewParagraph(p.para...))
	p.para = nil
}

// indentLevel is the count of leading spaces divided by two, truncating.
func indentLevel(raw string) int {
	spaces := 0
	for _, r := range raw {
		if r != ' ' {
			break
		}
		spaces++
	}
	return spaces / 2
}

func isBulletItem(trimmed string) bool {
	if len(trimmed) < 2 || trimmed[1] != ' ' {
		return false
	}
	switch trimmed[0] {
	case '-', '+', '*':
		return true
	}
	return false
}

func isOrderedItem(trimmed string) bool {
	return len(trimmed) >= 2 &&
		trimmed[0] >= '0' && trimmed[0] <= '9' &&
		trimmed[1] == '.'
}

func isTableLine(trimmed string) bool {
	return len(trimmed) >= 2 &&
		strings.HasPrefix(trimmed, "|") &&
		strings.HasSuffix(trimmed, "|")
}

func isHeaderLine(trimmed string) bool {
	return strings.HasPrefix(trimmed, "#")
}

// splitHeader returns the header level (clamped to 6) and trimmed text.
func splitHeader(trimmed string) (int, string) {
	level := 0
	for level < len(trimmed) && trimmed[level] == '#' {
		level++
	}
	text := strings.TrimSpace(trimmed[level:])
	if level > 6 {
		level = 6
	}
	return level, text
}

// splitCells splits a |…| line into trimmed cell texts, discarding the
// empty outer splits and any cell consisting only of dashes.
func splitCells(line string) []string {
	parts := strings.Split(line, "|")
	if len(parts) < 3 {
		return nil
	}
	parts = parts[1 : len(parts)-1]

	cells := make([]string, 0, len(parts))
	for _, part := range parts {
		c := strings.TrimSpace(part)
		if c != "" && strings.Trim(c, "-") == "" {
			continue
		}
		cells = append(cells, c)
	}
	return cells
}
