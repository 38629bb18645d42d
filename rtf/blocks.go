package rtf

import (
	"strconv"
	"strings"

	"github.com/yanmingyu92/rtfreport/model"
)

// timestampLayout formats Document.GeneratedAt in the source footer. The
// date part is uppercased on emission to match the DDMONYYYY convention.
const timestampLayout = "02Jan2006 15:04"

// companyHeader emits the attribution line: company name at the left
// margin, protocol identifier flushed to the right via a right tab stop at
// the usable width.
func (dw *docWriter) companyHeader(doc *model.Document) {
	if doc.Company == "" && doc.Protocol == "" {
		return
	}
	fs := halfPoints(doc.Page.FontSize)
	dw.rawf(`\pard\plain\f0\fs%d\ql\tqr\tx%d `, fs, doc.Page.UsableWidth())
	dw.raw(string(Escape(doc.Company)))
	if doc.Protocol != "" {
		dw.raw(`\tab `)
		dw.raw(string(Escape(doc.Protocol)))
	}
	dw.raw(`\par`)
	dw.raw("\n")
}

// titles emits each title on its own centered paragraph, the first in a
// larger font, then the population line exactly once.
func (dw *docWriter) titles(doc *model.Document, slots int) {
	titles := doc.Titles
	if len(titles) > slots {
		titles = titles[:slots]
	}
	fs := halfPoints(doc.Page.FontSize)
	for i, title := range titles {
		size := fs
		if i == 0 {
			size = fs + 4
		}
		dw.rawf(`\pard\plain\f0\fs%d\qc\b `, size)
		dw.raw(string(Escape(title)))
		dw.raw(`\b0\par`)
		dw.raw("\n")
	}
	if doc.Population != "" {
		dw.rawf(`\pard\plain\f0\fs%d\qc `, fs)
		dw.raw(string(Escape(doc.Population)))
		dw.raw(`\par`)
		dw.raw("\n")
	}
	if len(titles) > 0 || doc.Population != "" {
		dw.rawf(`\pard\plain\f0\fs%d\par`, fs)
		dw.raw("\n")
	}
}

// footnoteMarker returns the marker for footnote i (0-based): letters a-z
// for the first 26, then plain 1-based numbers.
func footnoteMarker(i int) string {
	if i < 26 {
		return string(rune('a' + i))
	}
	return strconv.Itoa(i + 1)
}

// footnotes emits the footnote block: one left-aligned paragraph per note,
// one point smaller than the base font, each prefixed by its marker. An
// empty list emits nothing at all.
func (dw *docWriter) footnotes(doc *model.Document, slots int) {
	notes := doc.Footnotes
	if len(notes) == 0 {
		return
	}
	if len(notes) > slots {
		notes = notes[:slots]
	}
	fs := halfPoints(doc.Page.FontSize) - 2
	dw.rawf(`\pard\plain\f0\fs%d\par`, fs)
	dw.raw("\n")
	for i, note := range notes {
		dw.rawf(`\pard\plain\f0\fs%d\ql `, fs)
		dw.raw(footnoteMarker(i))
		dw.raw(" ")
		dw.raw(string(Escape(note)))
		dw.raw(`\par`)
		dw.raw("\n")
	}
}

// sourceLine emits the source/attribution footer with the caller-supplied
// generation timestamp. The encoder never reads the clock itself, keeping
// output reproducible.
func (dw *docWriter) sourceLine(doc *model.Document) {
	if doc.Source == "" && doc.GeneratedAt.IsZero() {
		return
	}
	fs := halfPoints(doc.Page.FontSize) - 2
	dw.rawf(`\pard\plain\f0\fs%d\ql `, fs)
	if doc.Source != "" {
		dw.raw("Source: ")
		dw.raw(string(Escape(doc.Source)))
	}
	if !doc.GeneratedAt.IsZero() {
		if doc.Source != "" {
			dw.raw("  ")
		}
		dw.raw(strings.ToUpper(doc.GeneratedAt.Format(timestampLayout)))
	}
	dw.raw(`\par`)
	dw.raw("\n")
}
