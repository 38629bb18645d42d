package model

import "math"

// TwipsPerInch is the number of twips (twentieths of a point) in one inch.
// Twips are the base length unit of the RTF grammar.
const TwipsPerInch = 1440

// Twips converts a length in inches to whole twips, rounding to nearest.
func Twips(inches float64) int {
	return int(math.Round(inches * TwipsPerInch))
}

// Orientation represents page orientation.
type Orientation int

const (
	// Portrait orients the page taller than wide.
	Portrait Orientation = iota
	// Landscape orients the page wider than tall.
	Landscape
)

// String returns the string representation of the orientation.
func (o Orientation) String() string {
	if o == Landscape {
		return "landscape"
	}
	return "portrait"
}

// Margins holds the four page margins in inches.
type Margins struct {
	Left   float64
	Right  float64
	Top    float64
	Bottom float64
}

// PageSettings describes page geometry and the base typeface for a document.
// Paper dimensions are stored unoriented; PageWidth and PageHeight apply the
// orientation.
type PageSettings struct {
	Orientation Orientation
	Margins     Margins

	// PaperWidth and PaperHeight are the unoriented paper dimensions in
	// inches. Zero values mean US Letter (8.5 x 11).
	PaperWidth  float64
	PaperHeight float64

	// FontFamily is the base font for all document text.
	FontFamily string

	// FontSize is the base font size in points.
	FontSize float64
}

// DefaultPageSettings returns the page setup used for regulatory tables:
// landscape US Letter, one-inch margins, 9pt Courier New.
func DefaultPageSettings() PageSettings {
	return PageSettings{
		Orientation: Landscape,
		Margins:     Margins{Left: 1, Right: 1, Top: 1, Bottom: 1},
		PaperWidth:  8.5,
		PaperHeight: 11,
		FontFamily:  "Courier New",
		FontSize:    9,
	}
}

func (p PageSettings) paper() (w, h float64) {
	w, h = p.PaperWidth, p.PaperHeight
	if w == 0 {
		w = 8.5
	}
	if h == 0 {
		h = 11
	}
	return w, h
}

// PageWidth returns the oriented page width in inches.
func (p PageSettings) PageWidth() float64 {
	w, h := p.paper()
	if p.Orientation == Landscape {
		return h
	}
	return w
}

// PageHeight returns the oriented page height in inches.
func (p PageSettings) PageHeight() float64 {
	w, h := p.paper()
	if p.Orientation == Landscape {
		return w
	}
	return h
}

// UsableWidth returns the printable width in twips: the oriented page width
// less the left and right margins.
func (p PageSettings) UsableWidth() int {
	return Twips(p.PageWidth() - p.Margins.Left - p.Margins.Right)
}

// UsableHeight returns the printable height in twips: the oriented page
// height less the top and bottom margins.
func (p PageSettings) UsableHeight() int {
	return Twips(p.PageHeight() - p.Margins.Top - p.Margins.Bottom)
}
