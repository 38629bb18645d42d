// Package config loads report definitions from YAML files.
//
// A report definition carries the configuration surface the report layer
// supplies to the encoder: attribution, titles and footnotes, page setup,
// and column layout. Table rows and figure files come from the statistics
// and plotting collaborators at run time, not from the definition.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/yanmingyu92/rtfreport/model"
)

// ColumnDef describes one table column in a report definition.
type ColumnDef struct {
	Label   string  `yaml:"label"`
	Width   float64 `yaml:"width,omitempty"`
	Justify string  `yaml:"justify,omitempty"`
}

// MarginsDef holds page margins in inches. Zero values fall back to one
// inch.
type MarginsDef struct {
	Left   float64 `yaml:"left"`
	Right  float64 `yaml:"right"`
	Top    float64 `yaml:"top"`
	Bottom float64 `yaml:"bottom"`
}

// FontDef holds the base typeface.
type FontDef struct {
	Family string  `yaml:"family"`
	Size   float64 `yaml:"size"`
}

// Report is a YAML report definition.
type Report struct {
	Company    string   `yaml:"company"`
	Protocol   string   `yaml:"protocol"`
	Titles     []string `yaml:"titles"`
	Population string   `yaml:"population"`
	Footnotes  []string `yaml:"footnotes"`
	Source     string   `yaml:"source"`

	Orientation string      `yaml:"orientation"`
	Margins     *MarginsDef `yaml:"margins"`
	Font        *FontDef    `yaml:"font"`

	Columns []ColumnDef `yaml:"columns"`
}

// Load reads and parses a report definition file.
func Load(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	return Parse(data)
}

// Parse parses a YAML report definition.
func Parse(data []byte) (*Report, error) {
	var r Report
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := r.validate(); err != nil {
		return nil, err
	}
	return &r, nil
}

func (r *Report) validate() error {
	switch r.Orientation {
	case "", "portrait", "landscape":
	default:
		return fmt.Errorf("config: unknown orientation %q", r.Orientation)
	}
	for _, c := range r.Columns {
		switch c.Justify {
		case "", "left", "center", "right":
		default:
			return fmt.Errorf("config: column %q: unknown justification %q", c.Label, c.Justify)
		}
	}
	return nil
}

// Document builds a model.Document from the definition. The table body is
// created with the configured columns and no rows; callers append rows
// from the statistics collaborator and then encode.
func (r *Report) Document() *model.Document {
	doc := model.NewDocument()
	doc.Company = r.Company
	doc.Protocol = r.Protocol
	doc.Titles = append([]string(nil), r.Titles...)
	doc.Population = r.Population
	doc.Footnotes = append([]string(nil), r.Footnotes...)
	doc.Source = r.Source
	doc.Page = r.pageSettings()

	if len(r.Columns) > 0 {
		table := &model.TableContent{}
		hasWidths := false
		for _, c := range r.Columns {
			table.Columns = append(table.Columns, model.Column{
				Label:   c.Label,
				Justify: parseJustify(c.Justify),
			})
			if c.Width > 0 {
				hasWidths = true
			}
		}
		if hasWidths {
			for _, c := range r.Columns {
				table.Widths = append(table.Widths, c.Width)
			}
		}
		doc.SetTable(table)
	}
	return doc
}

func (r *Report) pageSettings() model.PageSettings {
	ps := model.DefaultPageSettings()
	if r.Orientation == "portrait" {
		ps.Orientation = model.Portrait
	}
	if r.Margins != nil {
		m := *r.Margins
		if m.Left <= 0 {
			m.Left = 1
		}
		if m.Right <= 0 {
			m.Right = 1
		}
		if m.Top <= 0 {
			m.Top = 1
		}
		if m.Bottom <= 0 {
			m.Bottom = 1
		}
		ps.Margins = model.Margins{Left: m.Left, Right: m.Right, Top: m.Top, Bottom: m.Bottom}
	}
	if r.Font != nil {
		if r.Font.Family != "" {
			ps.FontFamily = r.Font.Family
		}
		if r.Font.Size > 0 {
			ps.FontSize = r.Font.Size
		}
	}
	return ps
}

func parseJustify(s string) model.Justification {
	switch s {
	case "center":
		return model.JustifyCenter
	case "right":
		return model.JustifyRight
	default:
		return model.JustifyLeft
	}
}
