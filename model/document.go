package model

import (
	"errors"
	"time"
)

// Validation errors returned by [Document.Validate].
var (
	ErrNoBody    = errors.New("model: document has no body content")
	ErrTwoBodies = errors.New("model: document has both table and image content")
	ErrNoColumns = errors.New("model: table has no columns")
)

// Document represents one complete report document: header identification,
// ordered titles, exactly one body (table or figure), ordered footnotes, and
// a source line.
//
// Encoding is a pure function of the Document's fields. GeneratedAt exists so
// a timestamp can appear in the source footer while keeping output
// byte-reproducible: the encoder never reads the system clock.
type Document struct {
	// Company is the sponsor/attribution name shown in the page header.
	Company string
	// Protocol identifies the study, shown opposite the company name.
	Protocol string

	Titles []string
	// Population is the analysis population line, emitted once below the
	// titles regardless of how many title slots reference it.
	Population string

	Footnotes []string
	// Source is the program/dataset attribution line in the footer.
	Source string
	// GeneratedAt is the timestamp shown next to Source. The zero value
	// suppresses it.
	GeneratedAt time.Time

	Page PageSettings

	Table *TableContent
	Image *ImageContent
}

// NewDocument creates an empty document with default page settings.
func NewDocument() *Document {
	return &Document{Page: DefaultPageSettings()}
}

// AddTitle appends a title line.
func (d *Document) AddTitle(title string) {
	d.Titles = append(d.Titles, title)
}

// AddFootnote appends a footnote line.
func (d *Document) AddFootnote(note string) {
	d.Footnotes = append(d.Footnotes, note)
}

// SetTable sets the document body to a table, clearing any image body.
func (d *Document) SetTable(t *TableContent) {
	d.Table = t
	d.Image = nil
}

// SetImage sets the document body to a figure, clearing any table body.
func (d *Document) SetImage(img *ImageContent) {
	d.Image = img
	d.Table = nil
}

// Validate reports whether the document is structurally encodable: exactly
// one body, and a table body must declare at least one column. These are
// hard failures; everything else degrades at encode time.
func (d *Document) Validate() error {
	if d.Table != nil && d.Image != nil {
		return ErrTwoBodies
	}
	if d.Table == nil && d.Image == nil {
		return ErrNoBody
	}
	if d.Table != nil && len(d.Table.Columns) == 0 {
		return ErrNoColumns
	}
	return nil
}
