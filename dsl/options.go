package dsl

import (
	gosheet "github.com/reoring/gosheet"
)

// GoogleFonts enables the automatic webfont import: every non-standard
// font family referenced by any merged style joins one prelude import line.
func GoogleFonts() gosheet.RenderOption { return gosheet.OptGoogleFonts{} }

// ImportRaw emits `@import <text>;` into the prelude.
func ImportRaw(text string) gosheet.RenderOption { return gosheet.OptImportRaw{Text: text} }

// ImportURL emits `@import url('<url>');` into the prelude.
func ImportURL(url string) gosheet.RenderOption { return gosheet.OptImportURL{URL: url} }

// BaseStyle replaces the fixed foundation merged into every style. The first
// BaseStyle option wins; later ones are ignored.
func BaseStyle(props ...gosheet.Property) gosheet.RenderOption {
	return gosheet.OptBaseStyle{Properties: props}
}

// Debug enables lookup warnings and emits the fixed diagnostic CSS.
func Debug() gosheet.RenderOption { return gosheet.OptDebug{} }

// WarnTo injects the diagnostic sink the lookup methods warn through.
func WarnTo(sink gosheet.WarnSink) gosheet.RenderOption { return gosheet.OptWarnSink{Sink: sink} }

// WithRenderer replaces the built-in rule renderer.
func WithRenderer(r gosheet.Renderer) gosheet.RenderOption { return gosheet.OptRenderer{Renderer: r} }
