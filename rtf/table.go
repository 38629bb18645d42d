package rtf

import (
	"github.com/yanmingyu92/rtfreport/layout"
	"github.com/yanmingyu92/rtfreport/model"
)

// Border weights in twips. Header rows rule heavier than data rows.
const (
	borderHeader = 15
	borderData   = 10
)

// indentPerLevel is the left indent in twips per hierarchy level.
const indentPerLevel = 100

// cellGap is the half-space between cell text and the cell boundary.
const cellGap = 108

func alignToken(j model.Justification) string {
	switch j {
	case model.JustifyCenter:
		return `\qc`
	case model.JustifyRight:
		return `\qr`
	default:
		return `\ql`
	}
}

// headerRow emits the column-label row as one self-contained row group:
// row definition, one boundary declaration per column with heavy top and
// bottom rules, one bold centered paragraph per label, and the row
// terminator.
func (dw *docWriter) headerRow(cols []model.Column, widths []layout.ColumnWidth, fs int) {
	dw.rawf(`\trowd\trgaph%d\trleft0`, cellGap)
	for _, w := range widths {
		dw.rawf(`\clbrdrt\brdrs\brdrw%d\clbrdrb\brdrs\brdrw%d\cellx%d`,
			borderHeader, borderHeader, w.RightEdge)
	}
	dw.raw("\n")
	for _, col := range cols {
		dw.rawf(`\pard\intbl\plain\f0\fs%d\qc\b `, fs)
		dw.raw(string(Escape(col.Label)))
		dw.raw(`\b0\cell`)
	}
	dw.raw(`\row`)
	dw.raw("\n")
}

// bodyRow emits one data row group. Rows shorter than the column count are
// padded with empty cells; extra cells beyond the column count are ignored.
// The caller's row index is document-monotonic so banding alternates
// correctly across section boundaries.
func (dw *docWriter) bodyRow(row model.Row, cols []model.Column, widths []layout.ColumnWidth, fs int, st Style) {
	banded := st.Banding && dw.rowIndex%2 == 1
	dw.rowIndex++

	dw.rawf(`\trowd\trgaph%d\trleft0`, cellGap)
	for _, w := range widths {
		dw.rawf(`\clbrdrb\brdrs\brdrw%d`, borderData)
		if banded {
			dw.rawf(`\clcbpat%d`, colorBand)
		}
		dw.rawf(`\cellx%d`, w.RightEdge)
	}
	dw.raw("\n")

	indent, label := rowIndent(row, st)
	for i, col := range cols {
		text := ""
		if i < len(row.Cells) {
			text = row.Cells[i]
		}
		if i == 0 {
			text = label
		}
		dw.rawf(`\pard\intbl\plain\f0\fs%d%s`, fs, alignToken(col.Justify))
		if i == 0 && indent > 0 {
			dw.rawf(`\li%d`, indent*indentPerLevel)
		}
		dw.raw(" ")
		dw.raw(string(Escape(text)))
		dw.raw(`\cell`)
	}
	dw.raw(`\row`)
	dw.raw("\n")
}

// rowIndent resolves the indent level for a row's label column and returns
// the level together with the label text. An explicit Row.Indent is
// primary; when it is zero and the fallback heuristic is enabled, two
// leading spaces on the label count as one level and the consumed spaces
// are stripped, since the indent is re-expressed as a \li offset.
func rowIndent(row model.Row, st Style) (level int, label string) {
	if len(row.Cells) > 0 {
		label = row.Cells[0]
	}
	if row.Indent > 0 {
		return row.Indent, label
	}
	if !st.IndentFallback {
		return 0, label
	}
	spaces := 0
	for spaces < len(label) && label[spaces] == ' ' {
		spaces++
	}
	level = spaces / 2
	if level > 0 {
		label = label[level*2:]
	}
	return level, label
}
