package dsl

import (
	gosheet "github.com/reoring/gosheet"
)

// TextFlow lays children out as normal document flow.
func TextFlow() gosheet.LayoutProperty { return gosheet.TextFlow{} }

// TableFlow lays children out as a table.
func TableFlow() gosheet.LayoutProperty { return gosheet.TableFlow{} }

// Flex lays children out along the given axis.
func Flex(dir gosheet.FlexDirection, wrap bool, halign, valign gosheet.Alignment) gosheet.LayoutProperty {
	return gosheet.FlexFlow{Direction: dir, Wrap: wrap, HAlign: halign, VAlign: valign}
}

// Row is a non-wrapping horizontal flex flow.
func Row(halign, valign gosheet.Alignment) gosheet.LayoutProperty {
	return Flex(gosheet.Row, false, halign, valign)
}

// Column is a non-wrapping vertical flex flow.
func Column(halign, valign gosheet.Alignment) gosheet.LayoutProperty {
	return Flex(gosheet.Column, false, halign, valign)
}

// Inline renders the element inline with surrounding content.
func Inline() gosheet.LayoutProperty { return gosheet.InlineMarker{} }

// Spacing applies a 4-edge spacing tuple around the content.
func Spacing(e gosheet.Edges) gosheet.LayoutProperty {
	return gosheet.SpacingProp{Value: e}
}

// SpacingAll applies uniform spacing.
func SpacingAll(v float64) gosheet.LayoutProperty {
	return gosheet.SpacingProp{Value: gosheet.EdgesAll(v)}
}
