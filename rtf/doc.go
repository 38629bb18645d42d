// Package rtf emits Rich Text Format markup for report documents.
//
// This package implements the faithful RTF subset required for regulatory
// tables, listings, and figures: the document shell (font/color tables and
// page geometry), paragraph blocks for titles, footnotes, and source lines,
// per-row table groups with cell boundaries and borders, and embedded
// pictures with hex-encoded payloads.
//
// # Assembling a Document
//
// The [Assembler] orchestrates the emitters in a fixed order:
//
//	asm := rtf.NewAssembler(rtf.DefaultStyle())
//	out, warnings, err := asm.AssembleToString(doc)
//
// Output is byte-reproducible: the same Document always yields the same
// bytes, and nothing in this package reads the system clock or any other
// ambient state. Assembler values hold no per-document state, so one
// Assembler may encode independent documents from multiple goroutines.
//
// # Escaping
//
// [Escape] produces [EscapedText]: text free of unescaped RTF
// metacharacters, with every code point above 127 replaced by a \uN
// fallback escape. All document text passes through it; the rest of the
// output stream is pure ASCII apart from the hex picture payload.
//
// # Degradation
//
// Conditions local to one sub-block degrade rather than fail: an
// unrecognized image extension falls back to the default picture tag, an
// unreadable image header falls back to a fixed size, and a mid-stream
// image read failure is replaced by a visible placeholder note. Each
// degradation is reported as a [Warning]. Only structural problems (missing
// image file, unwritable output path, a table with no columns) abort the
// document.
package rtf
