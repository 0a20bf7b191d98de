package dsl

import (
	"fmt"

	gosheet "github.com/reoring/gosheet"
)

// Shadow builds one shadow entry.
func Shadow(offsetX, offsetY, blur, spread float64, c gosheet.Color) gosheet.Shadow {
	return gosheet.Shadow{OffsetX: offsetX, OffsetY: offsetY, Blur: blur, Spread: spread, Color: c}
}

// InsetShadow builds one inset shadow entry.
func InsetShadow(offsetX, offsetY, blur, spread float64, c gosheet.Color) gosheet.Shadow {
	s := Shadow(offsetX, offsetY, blur, spread, c)
	s.Inset = true
	return s
}

// BoxShadows declares an ordered box-shadow list.
func BoxShadows(shadows ...gosheet.Shadow) gosheet.Property {
	return gosheet.ShadowsProp{Name: "box-shadow", Shadows: shadows}
}

// TextShadows declares an ordered text-shadow list.
func TextShadows(shadows ...gosheet.Shadow) gosheet.Property {
	return gosheet.ShadowsProp{Name: "text-shadow", Shadows: shadows}
}

// Transforms declares an ordered transform list.
func Transforms(ts ...gosheet.Transform) gosheet.Property {
	return gosheet.TransformsProp{Transforms: ts}
}

// Translate moves by x/y pixels.
func Translate(x, y float64) gosheet.Transform {
	return gosheet.Transform{Fn: "translate", Args: fmt.Sprintf("%gpx, %gpx", x, y)}
}

// Rotate rotates by degrees.
func Rotate(deg float64) gosheet.Transform {
	return gosheet.Transform{Fn: "rotate", Args: fmt.Sprintf("%gdeg", deg)}
}

// Scale scales uniformly.
func Scale(factor float64) gosheet.Transform {
	return gosheet.Transform{Fn: "scale", Args: fmt.Sprintf("%g", factor)}
}

// TransformOf is the generic transform entry constructor.
func TransformOf(fn, args string) gosheet.Transform {
	return gosheet.Transform{Fn: fn, Args: args}
}

// Filters declares an ordered filter list.
func Filters(fs ...gosheet.Filter) gosheet.Property {
	return gosheet.FiltersProp{Filters: fs}
}

// Blur blurs by the given pixel radius.
func Blur(px float64) gosheet.Filter {
	return gosheet.Filter{Fn: "blur", Args: fmt.Sprintf("%gpx", px)}
}

// Brightness scales brightness (1 = unchanged).
func Brightness(factor float64) gosheet.Filter {
	return gosheet.Filter{Fn: "brightness", Args: fmt.Sprintf("%g", factor)}
}

// Grayscale desaturates (1 = fully gray).
func Grayscale(factor float64) gosheet.Filter {
	return gosheet.Filter{Fn: "grayscale", Args: fmt.Sprintf("%g", factor)}
}

// FilterOf is the generic filter entry constructor.
func FilterOf(fn, args string) gosheet.Filter {
	return gosheet.Filter{Fn: fn, Args: args}
}
