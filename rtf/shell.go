package rtf

import (
	"github.com/yanmingyu92/rtfreport/model"
)

// Color palette indices into the color table below. Index 0 is the RTF
// "auto" color and stays empty.
const (
	colorBlack = 1
	colorWhite = 2
	colorBand  = 3
)

// colorTable is the fixed document color table: black, white, and the light
// gray used for row banding. Immutable configuration, shared safely across
// concurrent encodes.
const colorTable = `{\colortbl;\red0\green0\blue0;\red255\green255\blue255;\red240\green240\blue240;}`

const defaultFontFamily = "Courier New"

// header opens the document group and emits the font table, color table,
// and page geometry. Every group opened by any later emitter is closed
// before footer appends the balancing brace.
func (dw *docWriter) header(ps model.PageSettings) {
	family := ps.FontFamily
	if family == "" {
		family = defaultFontFamily
	}

	dw.raw(`{\rtf1\ansi\ansicpg1252\deff0\deflang1033`)
	dw.rawf(`{\fonttbl{\f0\fmodern\fcharset0 %s;}}`, Escape(family))
	dw.raw(colorTable)
	dw.raw("\n")

	dw.rawf(`\paperw%d\paperh%d`, model.Twips(ps.PageWidth()), model.Twips(ps.PageHeight()))
	if ps.Orientation == model.Landscape {
		dw.raw(`\landscape`)
	}
	dw.rawf(`\margl%d\margr%d\margt%d\margb%d`,
		model.Twips(ps.Margins.Left), model.Twips(ps.Margins.Right),
		model.Twips(ps.Margins.Top), model.Twips(ps.Margins.Bottom))
	dw.raw("\n")
}

// footer emits the single closing brace that balances the document group.
func (dw *docWriter) footer() {
	dw.raw("}\n")
}

// halfPoints converts a font size in points to RTF \fs units. Zero falls
// back to 9pt.
func halfPoints(pts float64) int {
	if pts <= 0 {
		pts = 9
	}
	return int(pts * 2)
}
