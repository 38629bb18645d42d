// Package model provides the intermediate representation (IR) for report
// documents.
//
// This package defines the user-facing data structures that describe a
// clinical-trial report document before it is encoded: titles, footnotes,
// page geometry, and exactly one body — either a table of pre-formatted
// display strings or a reference to a rendered figure image.
//
// # Document Structure
//
// The [Document] type represents a complete report document:
//
//	doc := model.NewDocument()
//	doc.AddTitle("Table 14.1.1")
//	doc.AddTitle("Demographic Characteristics")
//	doc.SetTable(table)
//
// Each Document owns its [PageSettings], body content, and footnote list
// exclusively; nothing is shared between Document values, so independent
// documents may be encoded concurrently.
//
// # Tables
//
// [TableContent] holds ordered [Column] definitions and ordered [Row]
// values. Cells are display strings prepared by an upstream statistics
// collaborator; the encoder performs no numeric formatting. Rows shorter
// than the column count are padded with empty cells at encode time, never
// dropped.
//
// # Figures
//
// [ImageContent] names a rendered raster file on disk (PNG or JPEG) plus
// optional explicit pixel dimensions. In-memory image buffers are not
// accepted.
package model
