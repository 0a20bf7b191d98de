package dsl

import (
	gosheet "github.com/reoring/gosheet"
)

// Prop is the plain name/value escape hatch for properties the catalog does
// not cover.
func Prop(name, value string) gosheet.Property {
	return gosheet.Plain{Name: name, Value: value}
}

// FontFamily declares the font stack verbatim, e.g. "Inter, sans-serif".
// Non-standard families feed the automatic webfont import when enabled.
func FontFamily(stack string) gosheet.Property {
	return gosheet.Plain{Name: "font-family", Value: stack}
}

// FontSize declares the font size.
func FontSize(l gosheet.Length) gosheet.Property {
	return gosheet.LengthProp{Name: "font-size", Value: l}
}

// Width declares the element width.
func Width(l gosheet.Length) gosheet.Property {
	return gosheet.LengthProp{Name: "width", Value: l}
}

// Height declares the element height.
func Height(l gosheet.Length) gosheet.Property {
	return gosheet.LengthProp{Name: "height", Value: l}
}

// LengthOf is the generic length-valued property constructor.
func LengthOf(name string, l gosheet.Length) gosheet.Property {
	return gosheet.LengthProp{Name: name, Value: l}
}

// TextColor declares the foreground color.
func TextColor(c gosheet.Color) gosheet.Property {
	return gosheet.ColorProp{Name: "color", Value: c}
}

// Background declares the background color.
func Background(c gosheet.Color) gosheet.Property {
	return gosheet.ColorProp{Name: "background-color", Value: c}
}

// BorderColor declares the border color.
func BorderColor(c gosheet.Color) gosheet.Property {
	return gosheet.ColorProp{Name: "border-color", Value: c}
}

// ColorOf is the generic color-valued property constructor.
func ColorOf(name string, c gosheet.Color) gosheet.Property {
	return gosheet.ColorProp{Name: name, Value: c}
}

// BackgroundImage declares a background image by URL.
func BackgroundImage(url string) gosheet.Property {
	return gosheet.BackgroundImageProp{URL: url}
}

// Show makes the element visible.
func Show() gosheet.Property { return gosheet.VisibilityProp{Value: gosheet.Visible} }

// Hide hides the element while keeping its layout box.
func Hide() gosheet.Property { return gosheet.VisibilityProp{Value: gosheet.Hidden} }

// Gone removes the element from layout entirely.
func Gone() gosheet.Property { return gosheet.VisibilityProp{Value: gosheet.Gone} }

// FloatLeft floats the element to the left.
func FloatLeft() gosheet.Property { return gosheet.FloatProp{Side: gosheet.FloatLeft} }

// FloatRight floats the element to the right.
func FloatRight() gosheet.Property { return gosheet.FloatProp{Side: gosheet.FloatRight} }

// ClearFloat resets any float.
func ClearFloat() gosheet.Property { return gosheet.FloatProp{Side: gosheet.FloatNone} }

// Hover scopes properties under the :hover pseudo class.
func Hover(props ...gosheet.Property) gosheet.Property {
	return gosheet.SubStyleProp{Suffix: ":hover", Properties: props}
}

// Focus scopes properties under the :focus pseudo class.
func Focus(props ...gosheet.Property) gosheet.Property {
	return gosheet.SubStyleProp{Suffix: ":focus", Properties: props}
}

// Active scopes properties under the :active pseudo class.
func Active(props ...gosheet.Property) gosheet.Property {
	return gosheet.SubStyleProp{Suffix: ":active", Properties: props}
}

// Before scopes properties under the ::before pseudo element.
func Before(props ...gosheet.Property) gosheet.Property {
	return gosheet.SubStyleProp{Suffix: "::before", Properties: props}
}

// After scopes properties under the ::after pseudo element.
func After(props ...gosheet.Property) gosheet.Property {
	return gosheet.SubStyleProp{Suffix: "::after", Properties: props}
}

// Pseudo scopes properties under an arbitrary pseudo suffix, e.g.
// ":nth-child(2n)".
func Pseudo(suffix string, props ...gosheet.Property) gosheet.Property {
	return gosheet.SubStyleProp{Suffix: suffix, Properties: props}
}

// Media scopes properties under a media query condition, e.g.
// "(max-width: 600px)".
func Media(query string, props ...gosheet.Property) gosheet.Property {
	return gosheet.MediaProp{Query: query, Properties: props}
}
