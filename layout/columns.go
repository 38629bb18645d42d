package layout

import (
	"math"

	"github.com/yanmingyu92/rtfreport/model"
)

// ColumnWidth is one resolved column: its absolute width and its cumulative
// right-edge offset from the left text margin, both in twips.
type ColumnWidth struct {
	Twips     int
	RightEdge int
}

// Config holds configuration for content-driven width resolution.
type Config struct {
	// MinChars is the minimum column width in characters.
	// Default: 8
	MinChars int

	// TwipsPerChar is the width allotted per character of the longest
	// content in a column. Default: 120 (one 9pt monospace cell plus
	// padding).
	TwipsPerChar int
}

// DefaultConfig returns sensible default configuration.
func DefaultConfig() Config {
	return Config{
		MinChars:     8,
		TwipsPerChar: 120,
	}
}

// Engine resolves table width specifications into column geometry.
type Engine struct {
	config Config
}

// NewEngine creates an engine with default configuration.
func NewEngine() *Engine {
	return &Engine{config: DefaultConfig()}
}

// NewEngineWithConfig creates an engine with custom configuration. Zero
// fields fall back to defaults.
func NewEngineWithConfig(config Config) *Engine {
	def := DefaultConfig()
	if config.MinChars <= 0 {
		config.MinChars = def.MinChars
	}
	if config.TwipsPerChar <= 0 {
		config.TwipsPerChar = def.TwipsPerChar
	}
	return &Engine{config: config}
}

// Resolve computes column widths for the table within the usable width.
//
// When the table supplies relative weights and their count matches the
// column count, widths are distributed proportionally and sum to usableWidth
// exactly. Otherwise content-driven sizing is used; mismatch reports
// mismatched=true so the caller can surface a warning rather than fail.
func (e *Engine) Resolve(table *model.TableContent, usableWidth int) (widths []ColumnWidth, mismatched bool) {
	n := len(table.Columns)
	if n == 0 {
		return nil, false
	}

	if len(table.Widths) == n {
		return e.Relative(table.Widths, usableWidth), false
	}
	mismatched = len(table.Widths) > 0
	return e.FromContent(table, usableWidth), mismatched
}

// Relative distributes usableWidth across columns in proportion to the given
// weights. The last column absorbs the rounding residue so the widths sum to
// usableWidth exactly. Non-positive weights count as weight one.
func (e *Engine) Relative(weights []float64, usableWidth int) []ColumnWidth {
	n := len(weights)
	if n == 0 {
		return nil
	}

	var total float64
	for _, w := range weights {
		if w <= 0 {
			w = 1
		}
		total += w
	}

	widths := make([]ColumnWidth, n)
	edge := 0
	for i, w := range weights {
		if w <= 0 {
			w = 1
		}
		tw := int(math.Round(float64(usableWidth) * w / total))
		if i == n-1 {
			tw = usableWidth - edge
		}
		edge += tw
		widths[i] = ColumnWidth{Twips: tw, RightEdge: edge}
	}
	return widths
}

// FromContent sizes each column to its longest content: the maximum of the
// header label length, the longest cell in the column, and the configured
// minimum, scaled by the per-character constant.
func (e *Engine) FromContent(table *model.TableContent, usableWidth int) []ColumnWidth {
	n := len(table.Columns)
	if n == 0 {
		return nil
	}

	widths := make([]ColumnWidth, n)
	edge := 0
	for i, col := range table.Columns {
		chars := len([]rune(col.Label))
		for r := range table.Rows {
			if l := len([]rune(table.Cell(r, i))); l > chars {
				chars = l
			}
		}
		if chars < e.config.MinChars {
			chars = e.config.MinChars
		}
		tw := chars * e.config.TwipsPerChar
		edge += tw
		widths[i] = ColumnWidth{Twips: tw, RightEdge: edge}
	}
	return widths
}
