package dsl

import (
	gosheet "github.com/reoring/gosheet"
)

// ---- colors ----

// RGB builds an opaque color from 0..255 channel values.
func RGB(r, g, b int) gosheet.Color {
	return gosheet.NewColor(float64(r)/255, float64(g)/255, float64(b)/255, 1)
}

// RGBA builds a color from 0..255 channel values plus 0..1 alpha.
func RGBA(r, g, b int, a float64) gosheet.Color {
	return gosheet.NewColor(float64(r)/255, float64(g)/255, float64(b)/255, a)
}

// Hex parses "#rrggbb" (or "#rgb") into an opaque color.
func Hex(s string) gosheet.Color { return gosheet.ParseHex(s) }

// HSL builds an opaque color from hue in degrees plus 0..1 saturation and
// lightness.
func HSL(h, s, l float64) gosheet.Color { return gosheet.HSL(h, s, l) }

// ---- lengths ----

// Px is a pixel length.
func Px(v float64) gosheet.Length { return gosheet.Length{Value: v, Unit: "px"} }

// Pct is a percentage length.
func Pct(v float64) gosheet.Length { return gosheet.Length{Value: v, Unit: "%"} }

// Em is a font-relative length.
func Em(v float64) gosheet.Length { return gosheet.Length{Value: v, Unit: "em"} }

// Rem is a root-font-relative length.
func Rem(v float64) gosheet.Length { return gosheet.Length{Value: v, Unit: "rem"} }

// Vh is a viewport-height-relative length.
func Vh(v float64) gosheet.Length { return gosheet.Length{Value: v, Unit: "vh"} }

// Vw is a viewport-width-relative length.
func Vw(v float64) gosheet.Length { return gosheet.Length{Value: v, Unit: "vw"} }

// ---- box edges ----

// Edges builds a 4-edge tuple in top, right, bottom, left order.
func Edges(top, right, bottom, left float64) gosheet.Edges {
	return gosheet.Edges{Top: top, Right: right, Bottom: bottom, Left: left}
}

// Padding declares per-edge padding.
func Padding(e gosheet.Edges) gosheet.Property {
	return gosheet.EdgesProp{Name: "padding", Value: e}
}

// PaddingAll declares uniform padding.
func PaddingAll(v float64) gosheet.Property {
	return gosheet.EdgesProp{Name: "padding", Value: gosheet.EdgesAll(v)}
}

// Margin declares per-edge margins.
func Margin(e gosheet.Edges) gosheet.Property {
	return gosheet.EdgesProp{Name: "margin", Value: e}
}

// MarginAll declares uniform margins.
func MarginAll(v float64) gosheet.Property {
	return gosheet.EdgesProp{Name: "margin", Value: gosheet.EdgesAll(v)}
}

// BorderWidth declares per-edge border widths.
func BorderWidth(e gosheet.Edges) gosheet.Property {
	return gosheet.EdgesProp{Name: "border-width", Value: e}
}

// ---- positioning ----

// Position anchors the element to a corner with x/y pixel offsets.
func Position(corner gosheet.Corner, x, y float64) gosheet.Property {
	return gosheet.PositionProp{Corner: corner, X: x, Y: y}
}

// Relative positions against the element's own flow position.
func Relative() gosheet.Property {
	return gosheet.PositionModeProp{Mode: gosheet.CurrentPosition}
}

// Absolute positions against the nearest positioned ancestor.
func Absolute() gosheet.Property {
	return gosheet.PositionModeProp{Mode: gosheet.Parent}
}

// Fixed positions against the screen.
func Fixed() gosheet.Property {
	return gosheet.PositionModeProp{Mode: gosheet.Screen}
}
