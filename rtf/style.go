package rtf

// Style configures the fixed blocks surrounding the document body. The
// grammar is emitted identically for every style; only the preamble and
// footer blocks and slot limits vary. One Assembler parameterized by Style
// replaces the plain/enhanced/compatible encoder variants of older report
// systems.
type Style struct {
	// CompanyHeader emits the company/protocol attribution line above the
	// titles.
	CompanyHeader bool

	// SourceFooter emits the source/attribution line after the footnotes.
	SourceFooter bool

	// TitleSlots is the maximum number of title lines emitted. Extra
	// titles are ignored.
	TitleSlots int

	// FootnoteSlots is the maximum number of footnote lines emitted.
	FootnoteSlots int

	// Banding shades alternate data rows. The row index driving the
	// shading increases monotonically across the whole document.
	Banding bool

	// IndentFallback enables the leading-whitespace indentation heuristic
	// (two leading spaces per level) for rows without an explicit indent
	// level. Kept for compatibility with upstream formatters that
	// pre-indent labels; an explicit Row.Indent always wins.
	IndentFallback bool
}

// DefaultStyle returns the full regulatory output style: attribution header
// and source footer on, six title slots, fourteen footnote slots, no
// banding, whitespace-indent fallback on.
func DefaultStyle() Style {
	return Style{
		CompanyHeader:  true,
		SourceFooter:   true,
		TitleSlots:     6,
		FootnoteSlots:  14,
		Banding:        false,
		IndentFallback: true,
	}
}

// PlainStyle returns a minimal style: no attribution header or footer,
// same slot limits as DefaultStyle.
func PlainStyle() Style {
	s := DefaultStyle()
	s.CompanyHeader = false
	s.SourceFooter = false
	return s
}

// BandedStyle returns DefaultStyle with alternate-row shading enabled.
func BandedStyle() Style {
	s := DefaultStyle()
	s.Banding = true
	return s
}

func (s Style) titleSlots() int {
	if s.TitleSlots <= 0 {
		return 6
	}
	return s.TitleSlots
}

func (s Style) footnoteSlots() int {
	if s.FootnoteSlots <= 0 {
		return 14
	}
	return s.FootnoteSlots
}
