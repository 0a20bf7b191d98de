// Package dsl is the constructor catalog for gosheet: pure, stateless
// builders for style declarations, property values, layout properties and
// render options. Nothing here computes anything; every function just
// assembles model values for gosheet.Render.
package dsl
