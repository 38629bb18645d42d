// Package layout computes table column geometry for the rtfreport library.
//
// RTF declares table cells by cumulative right-edge offset rather than
// individual width, so the [Engine] resolves a table's width specification
// into [ColumnWidth] values carrying both the absolute width and the running
// right edge, all in twips.
//
// Two resolution modes exist:
//
//   - Relative: one weight per column; the usable page width is distributed
//     proportionally. Rounding residue is absorbed by the last column so the
//     widths always sum to the usable width exactly.
//   - Content-driven: each column is sized to its longest content (header
//     label or cell), scaled by a per-character constant. Used when no
//     weights are supplied, or when the weight count does not match the
//     column count (a recoverable condition the caller reports as a
//     warning).
package layout
