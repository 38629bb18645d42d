package model

// Justification represents horizontal cell alignment.
type Justification int

const (
	JustifyLeft Justification = iota
	JustifyCenter
	JustifyRight
)

// String returns the string representation of the justification.
func (j Justification) String() string {
	switch j {
	case JustifyCenter:
		return "center"
	case JustifyRight:
		return "right"
	default:
		return "left"
	}
}

// Column describes one table column: its header label and how cells in the
// column are aligned.
type Column struct {
	Label   string
	Justify Justification
}

// Row holds one table row of pre-formatted display strings.
//
// Indent is the explicit hierarchy level of the row label (0 = top level).
// It is the primary indentation mechanism; when it is zero the encoder may
// fall back to counting leading spaces on the first cell (two spaces per
// level) for compatibility with upstream formatters that pre-indent labels.
type Row struct {
	Cells  []string
	Indent int
}

// TableContent holds ordered columns and rows of display strings.
//
// Widths optionally carries one relative weight per column; the usable page
// width is distributed proportionally across columns. When Widths is empty
// or its length does not match the column count, column widths are derived
// from content length instead.
type TableContent struct {
	Columns []Column
	Widths  []float64
	Rows    []Row
}

// NewTable creates a table with the given column labels, all left-justified.
func NewTable(labels ...string) *TableContent {
	cols := make([]Column, len(labels))
	for i, l := range labels {
		cols[i] = Column{Label: l}
	}
	return &TableContent{Columns: cols}
}

// ColCount returns the number of columns.
func (t *TableContent) ColCount() int {
	return len(t.Columns)
}

// RowCount returns the number of body rows.
func (t *TableContent) RowCount() int {
	return len(t.Rows)
}

// AddRow appends a row of cell strings at indent level zero.
func (t *TableContent) AddRow(cells ...string) {
	t.Rows = append(t.Rows, Row{Cells: cells})
}

// AddIndentedRow appends a row of cell strings at the given indent level.
func (t *TableContent) AddIndentedRow(indent int, cells ...string) {
	t.Rows = append(t.Rows, Row{Cells: cells, Indent: indent})
}

// Cell returns the cell string at the given row and column, or "" when the
// row is short or the indices are out of range. Short rows are treated as
// padded with empty cells.
func (t *TableContent) Cell(row, col int) string {
	if row < 0 || row >= len(t.Rows) || col < 0 || col >= len(t.Columns) {
		return ""
	}
	cells := t.Rows[row].Cells
	if col >= len(cells) {
		return ""
	}
	return cells[col]
}
