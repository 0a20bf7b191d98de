// Package theme loads declarative styling documents (YAML) into the options
// and models consumed by gosheet.Render. A theme document has three optional
// sections:
//
//	options:
//	  googleFonts: true
//	  debug: false
//	  imports:
//	    - url: https://example.com/extra.css
//	    - raw: "'print.css' print"
//	  base:
//	    css: "box-sizing: border-box"
//	styles:
//	  title:
//	    css: "font-family: Inter, sans-serif; font-size: 24px"
//	    hover:
//	      css: "text-decoration: underline"
//	layouts:
//	  toolbar:
//	    flow: flex
//	    direction: row
//	    halign: center
//	    valign: center
//	    spacing: [4, 8, 4, 8]
//
// Multi-document streams concatenate, earlier documents first. Declaration
// order within a document is preserved, which matters for deduplication and
// rule ordering downstream.
package theme

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	gosheet "github.com/reoring/gosheet"
	"github.com/reoring/gosheet/dsl"
)

type document struct {
	Options *optionsSpec `yaml:"options"`
	Styles  yaml.Node    `yaml:"styles"`
	Layouts yaml.Node    `yaml:"layouts"`
}

type optionsSpec struct {
	GoogleFonts bool         `yaml:"googleFonts"`
	Debug       bool         `yaml:"debug"`
	Imports     []importSpec `yaml:"imports"`
	Base        *styleSpec   `yaml:"base"`
}

type importSpec struct {
	URL string `yaml:"url"`
	Raw string `yaml:"raw"`
}

type styleSpec struct {
	CSS    string     `yaml:"css"`
	Props  []propSpec `yaml:"props"`
	Hover  *styleSpec `yaml:"hover"`
	Focus  *styleSpec `yaml:"focus"`
	Active *styleSpec `yaml:"active"`
}

type propSpec struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

type layoutSpec struct {
	Flow      string    `yaml:"flow"` // "text" (default), "table" or "flex"
	Direction string    `yaml:"direction"`
	Wrap      bool      `yaml:"wrap"`
	HAlign    string    `yaml:"halign"`
	VAlign    string    `yaml:"valign"`
	Inline    bool      `yaml:"inline"`
	Spacing   []float64 `yaml:"spacing"`
}

// Load decodes a theme document stream into render options and models.
func Load(data []byte) ([]gosheet.RenderOption, []gosheet.Model, error) {
	var opts []gosheet.RenderOption
	var models []gosheet.Model

	dec := yaml.NewDecoder(bytes.NewReader(data))
	for {
		var doc document
		if err := dec.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, nil, fmt.Errorf("theme: decode: %w", err)
		}

		if doc.Options != nil {
			o, err := doc.Options.toOptions()
			if err != nil {
				return nil, nil, err
			}
			opts = append(opts, o...)
		}

		styles, err := decodeStyles(&doc.Styles)
		if err != nil {
			return nil, nil, err
		}
		models = append(models, styles...)

		layouts, err := decodeLayouts(&doc.Layouts)
		if err != nil {
			return nil, nil, err
		}
		models = append(models, layouts...)
	}
	return opts, models, nil
}

func (o *optionsSpec) toOptions() ([]gosheet.RenderOption, error) {
	var out []gosheet.RenderOption
	if o.GoogleFonts {
		out = append(out, dsl.GoogleFonts())
	}
	for _, imp := range o.Imports {
		switch {
		case imp.URL != "":
			out = append(out, dsl.ImportURL(imp.URL))
		case imp.Raw != "":
			out = append(out, dsl.ImportRaw(imp.Raw))
		}
	}
	if o.Base != nil {
		props, err := o.Base.toProps()
		if err != nil {
			return nil, err
		}
		out = append(out, dsl.BaseStyle(props...))
	}
	if o.Debug {
		out = append(out, dsl.Debug())
	}
	return out, nil
}

// decodeStyles walks the styles mapping node pair-by-pair so that document
// order survives decoding.
func decodeStyles(node *yaml.Node) ([]gosheet.Model, error) {
	var models []gosheet.Model
	err := eachMappingEntry(node, func(key string, value *yaml.Node) error {
		var spec styleSpec
		if err := value.Decode(&spec); err != nil {
			return fmt.Errorf("theme: style %q: %w", key, err)
		}
		props, err := spec.toProps()
		if err != nil {
			return fmt.Errorf("theme: style %q: %w", key, err)
		}
		models = append(models, dsl.Style(key, props...))
		return nil
	})
	return models, err
}

func decodeLayouts(node *yaml.Node) ([]gosheet.Model, error) {
	var models []gosheet.Model
	err := eachMappingEntry(node, func(key string, value *yaml.Node) error {
		var spec layoutSpec
		if err := value.Decode(&spec); err != nil {
			return fmt.Errorf("theme: layout %q: %w", key, err)
		}
		props, err := spec.toProps()
		if err != nil {
			return fmt.Errorf("theme: layout %q: %w", key, err)
		}
		models = append(models, dsl.Layout(key, props...))
		return nil
	})
	return models, err
}

func eachMappingEntry(node *yaml.Node, fn func(key string, value *yaml.Node) error) error {
	if node == nil || node.Kind == 0 || node.Kind == yaml.ScalarNode && node.Value == "" {
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("theme: expected a mapping, got yaml kind %d", node.Kind)
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if err := fn(node.Content[i].Value, node.Content[i+1]); err != nil {
			return err
		}
	}
	return nil
}

func (s *styleSpec) toProps() ([]gosheet.Property, error) {
	var props []gosheet.Property
	if s.CSS != "" {
		parsed, err := ParseDeclarations(s.CSS)
		if err != nil {
			return nil, err
		}
		props = append(props, parsed...)
	}
	for _, p := range s.Props {
		props = append(props, dsl.Prop(p.Name, p.Value))
	}
	for _, sub := range []struct {
		spec *styleSpec
		wrap func(...gosheet.Property) gosheet.Property
	}{
		{s.Hover, dsl.Hover},
		{s.Focus, dsl.Focus},
		{s.Active, dsl.Active},
	} {
		if sub.spec == nil {
			continue
		}
		nested, err := sub.spec.toProps()
		if err != nil {
			return nil, err
		}
		props = append(props, sub.wrap(nested...))
	}
	return props, nil
}

func (l *layoutSpec) toProps() ([]gosheet.LayoutProperty, error) {
	var props []gosheet.LayoutProperty
	switch l.Flow {
	case "", "text":
		// The layout foundation already supplies text flow.
	case "table":
		props = append(props, dsl.TableFlow())
	case "flex":
		dir, err := flexDirection(l.Direction)
		if err != nil {
			return nil, err
		}
		h, err := alignment(l.HAlign)
		if err != nil {
			return nil, err
		}
		v, err := alignment(l.VAlign)
		if err != nil {
			return nil, err
		}
		props = append(props, dsl.Flex(dir, l.Wrap, h, v))
	default:
		return nil, fmt.Errorf("theme: unknown flow %q", l.Flow)
	}
	if l.Inline {
		props = append(props, dsl.Inline())
	}
	if len(l.Spacing) > 0 {
		e, err := spacingEdges(l.Spacing)
		if err != nil {
			return nil, err
		}
		props = append(props, dsl.Spacing(e))
	}
	return props, nil
}

func flexDirection(s string) (gosheet.FlexDirection, error) {
	switch s {
	case "", "row":
		return gosheet.Row, nil
	case "row-reverse":
		return gosheet.RowReverse, nil
	case "column":
		return gosheet.Column, nil
	case "column-reverse":
		return gosheet.ColumnReverse, nil
	}
	return gosheet.Row, fmt.Errorf("theme: unknown flex direction %q", s)
}

func alignment(s string) (gosheet.Alignment, error) {
	switch s {
	case "", "start":
		return gosheet.AlignStart, nil
	case "center":
		return gosheet.AlignCenter, nil
	case "end":
		return gosheet.AlignEnd, nil
	case "stretch":
		return gosheet.AlignStretch, nil
	case "space-between":
		return gosheet.AlignSpaceBetween, nil
	case "space-around":
		return gosheet.AlignSpaceAround, nil
	}
	return gosheet.AlignStart, fmt.Errorf("theme: unknown alignment %q", s)
}

func spacingEdges(vals []float64) (gosheet.Edges, error) {
	switch len(vals) {
	case 1:
		return gosheet.EdgesAll(vals[0]), nil
	case 4:
		return gosheet.Edges{Top: vals[0], Right: vals[1], Bottom: vals[2], Left: vals[3]}, nil
	}
	return gosheet.Edges{}, fmt.Errorf("theme: spacing wants 1 or 4 values, got %d", len(vals))
}
