package rtf

import (
	"fmt"
	"strings"
)

// Warning codes for recoverable conditions.
const (
	WarnUnsupportedFormat = "unsupported-format"
	WarnLayoutMismatch    = "layout-mismatch"
	WarnDecodeFailed      = "image-decode-failed"
	WarnEncodeFailed      = "image-encode-failed"
)

// Warning describes a non-fatal condition encountered while encoding. The
// document is still emitted, possibly degraded (content-driven column
// widths, fallback picture tag or size, or a visible placeholder).
type Warning struct {
	Code    string
	Message string
}

// String returns the warning as "code: message".
func (w Warning) String() string {
	return w.Code + ": " + w.Message
}

// FormatWarnings renders warnings one per line for logging.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	var sb strings.Builder
	for i, w := range warnings {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(w.String())
	}
	return sb.String()
}

func warningf(code, format string, args ...any) Warning {
	return Warning{Code: code, Message: fmt.Sprintf(format, args...)}
}
