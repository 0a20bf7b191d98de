package gosheet

// Package gosheet provides:
//
// - Declarative styling keyed by opaque identifiers, compiled into one
//   deduplicated stylesheet artifact (Render)
// - A stable diagnostic model via Warnings (code, kind, key) that never fails
//   the computation
// - Lookup methods mapping identifiers to generated class names with a
//   deterministic fallback for unknown keys
// - Optional prelude rules (raw/URL imports, automatic webfont import, debug
//   CSS) resolved from render options
//
// Design policy:
// - Keep only public APIs in the root package; put detailed implementations under internal/.
// - Place the constructor DSL under dsl/, theme loading under theme/, and the CLI under cmd/gosheet.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//  sheet := gosheet.Render(
//      []gosheet.RenderOption{dsl.GoogleFonts()},
//      []gosheet.Model{
//          dsl.Style("title", dsl.FontFamily("Inter, sans-serif"), dsl.FontSize(dsl.Px(24))),
//      },
//  )
//  css := sheet.CSS()
//  attr := sheet.ClassOf("title")
//
