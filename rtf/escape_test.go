package rtf

import (
	"strings"
	"testing"
)

func TestEscapeMetacharacters(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"plain ASCII text 123", "plain ASCII text 123"},
		{`C:\out\table.rtf`, `C:\\out\\table.rtf`},
		{"{group}", `\{group\}`},
		{"a\nb", `a\line b`},
		{"a\r\nb", `a\line b`},
		{"a\tb", `a\tab b`},
	}
	for _, tt := range tests {
		if got := string(Escape(tt.in)); got != tt.want {
			t.Errorf("Escape(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEscapeParagraphBreaks(t *testing.T) {
	if got := string(EscapeWith("a\nb", BreakParagraph)); got != `a\par b` {
		t.Errorf("got %q, want %q", got, `a\par b`)
	}
}

func TestEscapeNonASCII(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"\u00b5g/mL", `\u181?g/mL`},                // micro sign
		{"Caf\u00e9", `Caf\u233?`},                  // e acute
		{"\u2265 65 years", `\u8805? 65 years`},     // >= sign
		{"\uFFFD", `\u-3?`},                         // above 0x7FFF wraps negative
		{"\U0001F4C8", `\u-10179?\u-9016?`},         // surrogate pair
		{"Cafe\u0301", `Caf\u233?`},                 // NFC: decomposed e + acute composes
	}
	for _, tt := range tests {
		if got := string(Escape(tt.in)); got != tt.want {
			t.Errorf("Escape(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEscapeOutputIsSafe(t *testing.T) {
	inputs := []string{
		"",
		"pure ASCII",
		`back\slash {and} braces`,
		"non-ASCII: \u00e9\u00fc\u2020\u221e\U0001F600",
		strings.Repeat("{", 50) + strings.Repeat("\\", 50),
	}
	for _, in := range inputs {
		out := string(Escape(in))

		// No literal unescaped brace or stray non-ASCII byte may survive.
		for i := 0; i < len(out); i++ {
			c := out[i]
			if c > 127 {
				t.Errorf("Escape(%q): non-ASCII byte 0x%02x at %d", in, c, i)
			}
			if (c == '{' || c == '}') && (i == 0 || out[i-1] != '\\') {
				t.Errorf("Escape(%q): unescaped %c at %d in %q", in, c, i, out)
			}
		}
	}
}

func TestEscapeDeterministic(t *testing.T) {
	in := "Caf\u00e9 \u2014 {50\u00b5g}\n"
	if Escape(in) != Escape(in) {
		t.Error("Escape is not deterministic")
	}
}
