package rtf

import (
	"strconv"
	"strings"
	"unicode/utf16"

	"golang.org/x/text/unicode/norm"
)

// EscapedText is text guaranteed free of unescaped RTF metacharacters and
// non-ASCII code points. It is produced only by [Escape] and [EscapeWith]
// and never mutated afterwards.
type EscapedText string

// BreakStyle selects the control word emitted for a newline in escaped text.
type BreakStyle int

const (
	// BreakLine maps newlines to \line (a line break within a paragraph).
	BreakLine BreakStyle = iota
	// BreakParagraph maps newlines to \par (a paragraph break).
	BreakParagraph
)

// Escape converts arbitrary text into RTF-safe text, mapping newlines to
// line breaks. See [EscapeWith].
func Escape(s string) EscapedText {
	return EscapeWith(s, BreakLine)
}

// EscapeWith converts arbitrary text into RTF-safe text.
//
// Backslash, brace open, and brace close are escaped; newlines become the
// selected break control word; every code point above 127 is replaced by a
// \uN escape carrying its decimal UTF-16 value (signed 16-bit, so values
// above 32767 wrap negative, and supplementary-plane code points become
// surrogate pairs) followed by a '?' placeholder for readers without
// Unicode support.
//
// Input is NFC-normalized first so composed and decomposed forms of the
// same text escape to identical bytes. The function is pure and total over
// all input; the empty string escapes to the empty string.
func EscapeWith(s string, br BreakStyle) EscapedText {
	if s == "" {
		return ""
	}
	s = norm.NFC.String(s)

	brk := `\line `
	if br == BreakParagraph {
		brk = `\par `
	}

	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		switch {
		case r == '\\':
			sb.WriteString(`\\`)
		case r == '{':
			sb.WriteString(`\{`)
		case r == '}':
			sb.WriteString(`\}`)
		case r == '\n':
			sb.WriteString(brk)
		case r == '\r':
			// CR is dropped; CRLF collapses to the newline break.
		case r == '\t':
			sb.WriteString(`\tab `)
		case r > 127:
			writeUnicodeEscape(&sb, r)
		default:
			sb.WriteRune(r)
		}
	}
	return EscapedText(sb.String())
}

// writeUnicodeEscape emits \uN? escapes for one code point. RTF's \u takes
// a signed 16-bit decimal, so the code point is first converted to UTF-16
// code units.
func writeUnicodeEscape(sb *strings.Builder, r rune) {
	if r <= 0xFFFF {
		writeUnit(sb, uint16(r))
		return
	}
	u1, u2 := utf16.EncodeRune(r)
	writeUnit(sb, uint16(u1))
	writeUnit(sb, uint16(u2))
}

func writeUnit(sb *strings.Builder, u uint16) {
	n := int(u)
	if n > 0x7FFF {
		n -= 0x10000
	}
	sb.WriteString(`\u`)
	sb.WriteString(strconv.Itoa(n))
	sb.WriteString(`?`)
}
