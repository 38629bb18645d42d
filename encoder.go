package rtfreport

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/yanmingyu92/rtfreport/layout"
	"github.com/yanmingyu92/rtfreport/model"
	"github.com/yanmingyu92/rtfreport/rtf"
)

// Encoder provides a fluent interface for encoding a Document as RTF.
// Each configuration method returns a new Encoder instance, making it safe
// for concurrent use and allowing method chaining.
type Encoder struct {
	doc    *model.Document
	style  Style
	layout layout.Config
	logger *slog.Logger

	// Accumulated error (fail-fast)
	err error
}

// New creates an Encoder for the given document with the default style.
func New(doc *model.Document) *Encoder {
	e := &Encoder{
		doc:    doc,
		style:  DefaultStyle(),
		layout: layout.DefaultConfig(),
	}
	if doc == nil {
		e.err = fmt.Errorf("rtfreport: nil document")
	}
	return e
}

// clone creates a copy of the Encoder so chain methods stay immutable.
func (e *Encoder) clone() *Encoder {
	return &Encoder{
		doc:    e.doc,
		style:  e.style,
		layout: e.layout,
		logger: e.logger,
		err:    e.err,
	}
}

// ============================================================================
// Configuration Methods (return new Encoder instance)
// ============================================================================

// Style replaces the full style configuration.
func (e *Encoder) Style(s Style) *Encoder {
	n := e.clone()
	n.style = s
	return n
}

// Banding enables alternate-row shading.
func (e *Encoder) Banding() *Encoder {
	n := e.clone()
	n.style.Banding = true
	return n
}

// NoCompanyHeader suppresses the company/protocol attribution line.
func (e *Encoder) NoCompanyHeader() *Encoder {
	n := e.clone()
	n.style.CompanyHeader = false
	return n
}

// NoSourceFooter suppresses the source attribution footer.
func (e *Encoder) NoSourceFooter() *Encoder {
	n := e.clone()
	n.style.SourceFooter = false
	return n
}

// NoIndentFallback disables the leading-whitespace indentation heuristic;
// only explicit Row.Indent levels are honored.
func (e *Encoder) NoIndentFallback() *Encoder {
	n := e.clone()
	n.style.IndentFallback = false
	return n
}

// Layout replaces the content-driven layout configuration.
func (e *Encoder) Layout(config layout.Config) *Encoder {
	n := e.clone()
	n.layout = config
	return n
}

// WithLogger attaches a logger; accumulated warnings are logged at Warn
// level by the terminal operations. Without a logger, warnings are only
// returned.
func (e *Encoder) WithLogger(logger *slog.Logger) *Encoder {
	n := e.clone()
	n.logger = logger
	return n
}

// ============================================================================
// Terminal Operations
// ============================================================================

func (e *Encoder) assembler() *rtf.Assembler {
	return rtf.NewAssemblerWithLayout(e.style, e.layout)
}

func (e *Encoder) logWarnings(warnings []Warning) {
	if e.logger == nil {
		return
	}
	for _, w := range warnings {
		e.logger.Warn("rtfreport: degraded output", "code", w.Code, "detail", w.Message)
	}
}

// Encode returns the document as RTF text along with any warnings for
// degraded sub-blocks.
func (e *Encoder) Encode() (string, []Warning, error) {
	if e.err != nil {
		return "", nil, e.err
	}
	out, warnings, err := e.assembler().AssembleToString(e.doc)
	e.logWarnings(warnings)
	return out, warnings, err
}

// EncodeTo writes the document as RTF onto w.
func (e *Encoder) EncodeTo(w io.Writer) ([]Warning, error) {
	if e.err != nil {
		return nil, e.err
	}
	warnings, err := e.assembler().Assemble(e.doc, w)
	e.logWarnings(warnings)
	return warnings, err
}

// WriteFile encodes the document to the named file.
func (e *Encoder) WriteFile(path string) ([]Warning, error) {
	if e.err != nil {
		return nil, e.err
	}
	warnings, err := e.assembler().WriteFile(e.doc, path)
	e.logWarnings(warnings)
	return warnings, err
}
