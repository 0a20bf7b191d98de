package gosheet

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an RGBA color value. Construction helpers live in the dsl package;
// the zero value is opaque black.
type Color struct {
	R, G, B float64 // 0..1
	A       float64 // 0..1, where 0 means fully transparent
	set     bool
}

// NewColor builds a color from 0..1 channel values.
func NewColor(r, g, b, a float64) Color {
	return Color{R: clamp01(r), G: clamp01(g), B: clamp01(b), A: clamp01(a), set: true}
}

// ParseHex parses "#rgb" or "#rrggbb" into an opaque color. Invalid input
// yields opaque black; the styling pipeline is total and never fails.
func ParseHex(s string) Color {
	c, err := colorful.Hex(normalizeHex(s))
	if err != nil {
		return NewColor(0, 0, 0, 1)
	}
	return NewColor(c.R, c.G, c.B, 1)
}

// HSL builds an opaque color from hue (degrees), saturation and lightness
// (0..1).
func HSL(h, s, l float64) Color {
	c := colorful.Hsl(h, s, l)
	return NewColor(c.R, c.G, c.B, 1)
}

func normalizeHex(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	return s
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// CSS renders the color as a CSS value: hex for opaque colors, rgba(...)
// otherwise.
func (c Color) CSS() string {
	if !c.set {
		c = NewColor(0, 0, 0, 1)
	}
	if c.A >= 1 {
		return colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped().Hex()
	}
	return fmt.Sprintf("rgba(%d,%d,%d,%s)",
		int(c.R*255+0.5), int(c.G*255+0.5), int(c.B*255+0.5), trimFloat(c.A))
}

// Length is a numeric CSS length with a unit.
type Length struct {
	Value float64
	Unit  string // "px", "%", "em", "rem", "vh", "vw", ...
}

// CSS renders the length, defaulting the unit to px.
func (l Length) CSS() string {
	u := l.Unit
	if u == "" {
		u = "px"
	}
	return trimFloat(l.Value) + u
}

// trimFloat formats a float without a trailing ".0" tail.
func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Shadow is one entry of a box-shadow or text-shadow list.
type Shadow struct {
	OffsetX float64
	OffsetY float64
	Blur    float64
	Spread  float64
	Color   Color
	Inset   bool
}

// CSS renders one shadow entry.
func (s Shadow) CSS() string {
	b := &strings.Builder{}
	if s.Inset {
		b.WriteString("inset ")
	}
	fmt.Fprintf(b, "%spx %spx %spx %spx %s",
		trimFloat(s.OffsetX), trimFloat(s.OffsetY), trimFloat(s.Blur), trimFloat(s.Spread), s.Color.CSS())
	return b.String()
}

// Transform is one entry of a transform list, e.g. {"rotate", "45deg"}.
type Transform struct {
	Fn   string
	Args string
}

// CSS renders one transform entry.
func (t Transform) CSS() string { return t.Fn + "(" + t.Args + ")" }

// Filter is one entry of a filter list, e.g. {"blur", "4px"}.
type Filter struct {
	Fn   string
	Args string
}

// CSS renders one filter entry.
func (f Filter) CSS() string { return f.Fn + "(" + f.Args + ")" }

// Transition describes a transition declaration.
type Transition struct {
	Property string  // Transitioned property, or "all" when empty.
	Duration float64 // Milliseconds.
	Easing   string  // Easing text; "ease" when empty.
	Delay    float64 // Milliseconds.
}

// CSS renders the transition value.
func (t Transition) CSS() string {
	prop := t.Property
	if prop == "" {
		prop = "all"
	}
	easing := t.Easing
	if easing == "" {
		easing = "ease"
	}
	out := fmt.Sprintf("%s %sms %s", prop, trimFloat(t.Duration), easing)
	if t.Delay != 0 {
		out += " " + trimFloat(t.Delay) + "ms"
	}
	return out
}

// AnimationStep is one keyframe: a percent position plus the properties that
// hold there. Nested groups are flattened before serialization.
type AnimationStep struct {
	Percent    float64
	Properties []Property
}

// Animation describes an animation declaration with its ordered keyframe
// steps. The keyframes rule itself is generated alongside the style's main
// block.
type Animation struct {
	Duration float64 // Milliseconds.
	Easing   string  // Easing text; "ease" when empty.
	Repeat   int     // Iteration count; <= 0 means infinite.
	Steps    []AnimationStep
}
