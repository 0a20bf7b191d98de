package gosheet

// RenderOption is the closed variant set of rendering options. Constructors
// live in the dsl package.
type RenderOption interface{ isRenderOption() }

// OptGoogleFonts turns on automatic webfont import: after base merging, all
// non-standard font families referenced by any style are imported through one
// prelude line.
type OptGoogleFonts struct{}

// OptImportRaw emits `@import <text>;` into the prelude.
type OptImportRaw struct {
	Text string
}

// OptImportURL emits `@import url('<url>');` into the prelude.
type OptImportURL struct {
	URL string
}

// OptBaseStyle replaces the fixed foundation with the given property set. At
// most one base style is honored; the first one found wins.
type OptBaseStyle struct {
	Properties []Property
}

// OptDebug enables debug mode: lookup warnings are emitted and the fixed
// diagnostic CSS joins the prelude.
type OptDebug struct{}

// OptWarnSink injects the diagnostic sink used by the lookup functions.
type OptWarnSink struct {
	Sink WarnSink
}

// OptRenderer injects the rule renderer, replacing the built-in one.
type OptRenderer struct {
	Renderer Renderer
}

func (OptGoogleFonts) isRenderOption() {}
func (OptImportRaw) isRenderOption()   {}
func (OptImportURL) isRenderOption()   {}
func (OptBaseStyle) isRenderOption()   {}
func (OptDebug) isRenderOption()       {}
func (OptWarnSink) isRenderOption()    {}
func (OptRenderer) isRenderOption()    {}

// Foundation is the fixed base property set merged into every style when no
// base-style option is given: border-box sizing, relative positioning at the
// top-left anchor with zero offset.
func Foundation() []Property {
	return []Property{
		Plain{Name: "box-sizing", Value: "border-box"},
		PositionProp{Corner: TopLeft},
		PositionModeProp{Mode: CurrentPosition},
	}
}

// LayoutFoundation is the fixed base layout-property set; no option currently
// overrides it.
func LayoutFoundation() []LayoutProperty {
	return []LayoutProperty{TextFlow{}}
}

// DebugCSS is the fixed diagnostic CSS emitted by the debug-mode option. It
// flags float and inline misuse with dashed outlines and tinted backgrounds.
const DebugCSS = `[style*="float:"] { outline: 2px dashed #f33 !important; background-color: rgba(255,51,51,0.15) !important; }
[style*="display: inline"] > div { outline: 2px dashed #33f !important; background-color: rgba(51,51,255,0.15) !important; }`

// preludeEntry is one resolved prelude slot. A fonts entry is a placeholder
// whose text is computed after all styles are merged (font collection needs
// the full model list); it keeps the relative position of its option.
type preludeEntry struct {
	text  string
	fonts bool
}

// resolved carries the interpretation of an ordered option list.
type resolved struct {
	base       []Property
	baseSet    bool
	baseLayout []LayoutProperty
	debug      bool
	sink       WarnSink
	renderer   Renderer
	prelude    []preludeEntry
}

// resolveOptions interprets options in order. Duplicate base styles resolve
// deterministically by first-wins; this is not an error.
func resolveOptions(opts []RenderOption) resolved {
	r := resolved{
		baseLayout: LayoutFoundation(),
		sink:       defaultSink(),
		renderer:   defaultRenderer{},
	}
	for _, opt := range opts {
		switch o := opt.(type) {
		case OptGoogleFonts:
			r.prelude = append(r.prelude, preludeEntry{fonts: true})
		case OptImportRaw:
			r.prelude = append(r.prelude, preludeEntry{text: "@import " + o.Text + ";"})
		case OptImportURL:
			r.prelude = append(r.prelude, preludeEntry{text: "@import url('" + o.URL + "');"})
		case OptBaseStyle:
			if !r.baseSet {
				r.base = o.Properties
				r.baseSet = true
			}
		case OptDebug:
			r.debug = true
			r.prelude = append(r.prelude, preludeEntry{text: DebugCSS})
		case OptWarnSink:
			if o.Sink != nil {
				r.sink = o.Sink
			}
		case OptRenderer:
			if o.Renderer != nil {
				r.renderer = o.Renderer
			}
		}
	}
	if !r.baseSet {
		r.base = Foundation()
	}
	return r
}
