// Package rtfreport provides a fluent API for encoding clinical-trial
// report documents (tables, listings, figures) as RTF.
//
// Basic usage:
//
//	doc := model.NewDocument()
//	doc.AddTitle("Table 14.1.1")
//	doc.SetTable(table)
//
//	warnings, err := rtfreport.New(doc).WriteFile("t_demog.rtf")
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", rtfreport.FormatWarnings(warnings))
//	}
//
// With options:
//
//	out, _, err := rtfreport.New(doc).
//	    Style(rtfreport.BandedStyle()).
//	    Encode()
//
// For advanced use cases, the lower-level rtf package is also available.
package rtfreport

import (
	"github.com/yanmingyu92/rtfreport/rtf"
)

// Warning is a non-fatal condition reported during encoding.
type Warning = rtf.Warning

// Style configures the preamble/footer blocks and slot limits. See the rtf
// package for details.
type Style = rtf.Style

// Style presets re-exported from the rtf package.
var (
	DefaultStyle = rtf.DefaultStyle
	PlainStyle   = rtf.PlainStyle
	BandedStyle  = rtf.BandedStyle
)

// FormatWarnings renders warnings one per line for logging.
func FormatWarnings(warnings []Warning) string {
	return rtf.FormatWarnings(warnings)
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustEncode wraps a call to Encode() and panics on error, discarding
// warnings.
//
// Example:
//
//	out := rtfreport.MustEncode(rtfreport.New(doc).Encode())
func MustEncode[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
