package dsl

import (
	gosheet "github.com/reoring/gosheet"
)

// Style declares one key-addressed style rule.
func Style(key string, props ...gosheet.Property) gosheet.Model {
	return gosheet.StyleDecl{Selector: gosheet.Key(key), Properties: props}
}

// StyleFor declares a style rule with a literal selector used verbatim.
// Literal rules render into the stylesheet but are excluded from lookups.
func StyleFor(selector string, props ...gosheet.Property) gosheet.Model {
	return gosheet.StyleDecl{Selector: gosheet.Literal(selector), Properties: props}
}

// Layout declares one key-addressed layout rule.
func Layout(key string, props ...gosheet.LayoutProperty) gosheet.Model {
	return gosheet.LayoutDecl{Selector: gosheet.Key(key), Properties: props}
}

// LayoutFor declares a layout rule with a literal selector.
func LayoutFor(selector string, props ...gosheet.LayoutProperty) gosheet.Model {
	return gosheet.LayoutDecl{Selector: gosheet.Literal(selector), Properties: props}
}

// Mix groups properties so one style can include others; the pipeline
// flattens it in place.
func Mix(props ...gosheet.Property) gosheet.Property {
	return gosheet.GroupProp{Properties: props}
}
