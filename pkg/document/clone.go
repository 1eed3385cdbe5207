package document

// Clone returns a copy of the node.
func (t *Text) Clone() Node {
	c := *t
	return &c
}

// Clone returns a copy of the node.
func (h *Header) Clone() Node {
	c := *h
	return &c
}

// Clone returns a deep copy of the paragraph and its children.
func (p *Paragraph) Clone() Node {
	return &Paragraph{Children: cloneNodes(p.Children)}
}

// Clone returns a copy of the node.
func (h *Hyperlink) Clone() Node {
	c := *h
	return &c
}

// Clone returns a copy of the node with its own byte buffer.
func (i *Image) Clone() Node {
	return &Image{
		Bytes: append([]byte(nil), i.Bytes...),
		Title: i.Title,
		Alt:   i.Alt,
		Type:  i.Type,
	}
}

// Clone returns a deep copy of the list and its items.
func (l *List) Clone() Node {
	items := make([]*ListItem, len(l.Items))
	for i, item := range l.Items {
		items[i] = item.Clone().(*ListItem)
	}
	return &List{Items: items, Ordered: l.Ordered}
}

// Clone returns a deep copy of the item and its child.
func (li *ListItem) Clone() Node {
	return &ListItem{Child: cloneNode(li.Child)}
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() Node {
	headers := make([]*TableHeader, len(t.Headers))
	for i, h := range t.Headers {
		headers[i] = h.Clone().(*TableHeader)
	}
	rows := make([]*TableRow, len(t.Rows))
	for i, r := range t.Rows {
		rows[i] = r.Clone().(*TableRow)
	}
	return &Table{Headers: headers, Rows: rows}
}

// Clone returns a deep copy of the header cell.
func (h *TableHeader) Clone() Node {
	return &TableHeader{Child: cloneNode(h.Child), Width: h.Width}
}

// Clone returns a deep copy of the row and its cells.
func (r *TableRow) Clone() Node {
	cells := make([]*TableCell, len(r.Cells))
	for i, c := range r.Cells {
		cells[i] = c.Clone().(*TableCell)
	}
	return &TableRow{Cells: cells}
}

// Clone returns a deep copy of the cell and its child.
func (c *TableCell) Clone() Node {
	return &TableCell{Child: cloneNode(c.Child)}
}

// Clone returns a copy of the node.
func (*PageBreak) Clone() Node {
	return &PageBreak{}
}

func cloneNode(n Node) Node {
	if n == nil {
		return nil
	}
	return n.Clone()
}

func cloneNodes(nodes []Node) []Node {
	if nodes == nil {
		return nil
	}
	out := make([]Node, len(nodes))
	for i, n := range nodes {
		out[i] = cloneNode(n)
	}
	return out
}
