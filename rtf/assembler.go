package rtf

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/yanmingyu92/rtfreport/layout"
	"github.com/yanmingyu92/rtfreport/model"
)

// figureReserve is the vertical room (twips) held back from a figure's
// bounding box for the title and footnote blocks sharing its page.
const figureReserve = 2880

// Assembler encodes documents into RTF in a fixed emission order: shell
// header, attribution header, titles, body (table rows or one embedded
// figure), footnotes, source footer, closing brace.
//
// An Assembler holds only immutable configuration; per-call state lives on
// the stack, so one Assembler may serve many goroutines encoding
// independent documents.
type Assembler struct {
	style  Style
	engine *layout.Engine
}

// NewAssembler creates an assembler with the given style and default
// layout configuration.
func NewAssembler(style Style) *Assembler {
	return &Assembler{style: style, engine: layout.NewEngine()}
}

// NewAssemblerWithLayout creates an assembler with custom content-driven
// layout configuration.
func NewAssemblerWithLayout(style Style, config layout.Config) *Assembler {
	return &Assembler{style: style, engine: layout.NewEngineWithConfig(config)}
}

// Assemble encodes the document onto w. It returns warnings for every
// degraded sub-block and an error only when the document is structurally
// invalid or the stream cannot be written. Two calls with the same
// document produce byte-identical output.
func (a *Assembler) Assemble(doc *model.Document, w io.Writer) ([]Warning, error) {
	if err := doc.Validate(); err != nil {
		return nil, newEncodeError("Assemble", err)
	}

	dw := &docWriter{w: w}
	fs := halfPoints(doc.Page.FontSize)

	dw.header(doc.Page)
	if a.style.CompanyHeader {
		dw.companyHeader(doc)
	}
	dw.titles(doc, a.style.titleSlots())

	switch {
	case doc.Table != nil:
		a.table(dw, doc, fs)
	case doc.Image != nil:
		maxH := doc.Page.UsableHeight() - figureReserve
		if maxH < model.TwipsPerInch {
			maxH = model.TwipsPerInch
		}
		if err := dw.picture(doc.Image, fs, doc.Page.UsableWidth(), maxH); err != nil {
			return dw.warnings, err
		}
	}

	dw.footnotes(doc, a.style.footnoteSlots())
	if a.style.SourceFooter {
		dw.sourceLine(doc)
	}
	dw.footer()

	if dw.err != nil {
		return dw.warnings, newEncodeError("Assemble", dw.err)
	}
	return dw.warnings, nil
}

func (a *Assembler) table(dw *docWriter, doc *model.Document, fs int) {
	t := doc.Table
	widths, mismatched := a.engine.Resolve(t, doc.Page.UsableWidth())
	if mismatched {
		dw.warn(warningf(WarnLayoutMismatch,
			"%d relative widths for %d columns, falling back to content-driven layout",
			len(t.Widths), len(t.Columns)))
	}
	dw.headerRow(t.Columns, widths, fs)
	for _, row := range t.Rows {
		dw.bodyRow(row, t.Columns, widths, fs, a.style)
	}
}

// AssembleToString encodes the document and returns the RTF text.
func (a *Assembler) AssembleToString(doc *model.Document) (string, []Warning, error) {
	var sb strings.Builder
	warnings, err := a.Assemble(doc, &sb)
	if err != nil {
		return "", warnings, err
	}
	return sb.String(), warnings, nil
}

// WriteFile encodes the document to the named file. The file handle is
// released on every exit path; a close failure surfaces as the returned
// error when assembly itself succeeded.
func (a *Assembler) WriteFile(doc *model.Document, path string) (warnings []Warning, err error) {
	f, cerr := os.Create(path)
	if cerr != nil {
		return nil, newEncodeError("WriteFile", cerr)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = newEncodeError("WriteFile", cerr)
		}
	}()

	bw := bufio.NewWriter(f)
	warnings, err = a.Assemble(doc, bw)
	if err != nil {
		return warnings, err
	}
	if ferr := bw.Flush(); ferr != nil {
		return warnings, newEncodeError("WriteFile", ferr)
	}
	return warnings, nil
}
