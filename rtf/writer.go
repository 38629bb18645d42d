package rtf

import (
	"fmt"
	"io"
)

// docWriter carries the per-call emission state: the output stream, a
// sticky error, accumulated warnings, and the document-wide row index used
// for banding. One docWriter exists per Assemble call, so Assembler values
// stay free of mutable state.
type docWriter struct {
	w        io.Writer
	err      error
	warnings []Warning
	rowIndex int
}

// raw writes s verbatim. After the first write error, subsequent writes are
// no-ops and the error is reported once at the end of assembly.
func (dw *docWriter) raw(s string) {
	if dw.err != nil {
		return
	}
	_, dw.err = io.WriteString(dw.w, s)
}

// rawf writes a formatted control sequence.
func (dw *docWriter) rawf(format string, args ...any) {
	if dw.err != nil {
		return
	}
	_, dw.err = fmt.Fprintf(dw.w, format, args...)
}

func (dw *docWriter) warn(w Warning) {
	dw.warnings = append(dw.warnings, w)
}
