package reporting

// Document is a renderer-neutral report: an ordered list of blocks that the
// text, markdown and HTML writers each lay out in their own way.
type Document struct {
	Title  string
	Blocks []Block
}

// Block is one of Heading, Paragraph or Table.
type Block interface {
	isBlock()
}

// Heading starts a section. Level 1 is a report section, level 2 an agent
// type within it, level 3 a sub-table.
type Heading struct {
	Level int
	Text  string
}

// Paragraph is a run of lines kept together.
type Paragraph struct {
	Lines []string
}

// Column describes a table column.
type Column struct {
	Header string
	// Right aligns the column to the right; used for numbers.
	Right bool
}

// Table is a header row plus data rows. Every row has len(Columns) cells.
type Table struct {
	Columns []Column
	Rows    [][]string
}

func (Heading) isBlock()   {}
func (Paragraph) isBlock() {}
func (*Table) isBlock()    {}

func (d *Document) heading(level int, text string) {
	d.Blocks = append(d.Blocks, Heading{Level: level, Text: text})
}

func (d *Document) para(lines ...string) {
	if len(lines) == 0 {
		return
	}
	d.Blocks = append(d.Blocks, Paragraph{Lines: lines})
}

func (d *Document) table(t *Table) {
	if len(t.Rows) == 0 {
		return
	}
	d.Blocks = append(d.Blocks, t)
}

func newTable(cols ...Column) *Table {
	return &Table{Columns: cols}
}

func (t *Table) add(cells ...string) {
	t.Rows = append(t.Rows, cells)
}

func left(h string) Column  { return Column{Header: h} }
func right(h string) Column { return Column{Header: h, Right: true} }
