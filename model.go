package gosheet

// Property is the closed variant set of one style property declaration. The
// constructor catalog in the dsl package is the intended way to build these;
// the variant structs are exported so that renderers can switch over them
// exhaustively.
type Property interface{ isProperty() }

// Plain is a name/value text pair, emitted verbatim.
type Plain struct {
	Name  string
	Value string
}

// ColorProp is a color-valued property such as "color" or "background-color".
type ColorProp struct {
	Name  string
	Value Color
}

// LengthProp is a length-valued property such as "width" or "font-size".
type LengthProp struct {
	Name  string
	Value Length
}

// EdgesProp is a 4-edge box value such as padding or margin.
type EdgesProp struct {
	Name  string
	Value Edges
}

// PositionProp anchors the element to a corner of its positioning context
// with x/y pixel offsets.
type PositionProp struct {
	Corner Corner
	X, Y   float64
}

// PositionModeProp declares which ancestor the element positions against
// (the relative-position-parent declaration).
type PositionModeProp struct {
	Mode PositionMode
}

// VisibilityProp is a visibility declaration.
type VisibilityProp struct {
	Value Visibility
}

// BackgroundImageProp declares a background image by URL.
type BackgroundImageProp struct {
	URL string
}

// ShadowsProp is an ordered list of shadow declarations. Name selects the
// property ("box-shadow" or "text-shadow").
type ShadowsProp struct {
	Name    string
	Shadows []Shadow
}

// TransformsProp is an ordered list of transform declarations.
type TransformsProp struct {
	Transforms []Transform
}

// FiltersProp is an ordered list of filter declarations.
type FiltersProp struct {
	Filters []Filter
}

// TransitionProp is a transition declaration.
type TransitionProp struct {
	Value Transition
}

// AnimationProp is an animation declaration; its keyframes rule is generated
// next to the style's main block.
type AnimationProp struct {
	Value Animation
}

// SubStyleProp scopes nested properties under a pseudo selector suffix such
// as ":hover" or "::before". Nested groups are flattened at render time.
type SubStyleProp struct {
	Suffix     string
	Properties []Property
}

// MediaProp scopes nested properties under a media query condition.
type MediaProp struct {
	Query      string
	Properties []Property
}

// FloatProp is a float declaration.
type FloatProp struct {
	Side FloatSide
}

// GroupProp is an ordered list of further properties flattened in place. It
// exists only as an authoring convenience ("mix one style into another");
// after flattening no group remains.
type GroupProp struct {
	Properties []Property
}

func (Plain) isProperty()               {}
func (ColorProp) isProperty()           {}
func (LengthProp) isProperty()          {}
func (EdgesProp) isProperty()           {}
func (PositionProp) isProperty()        {}
func (PositionModeProp) isProperty()    {}
func (VisibilityProp) isProperty()      {}
func (BackgroundImageProp) isProperty() {}
func (ShadowsProp) isProperty()         {}
func (TransformsProp) isProperty()      {}
func (FiltersProp) isProperty()         {}
func (TransitionProp) isProperty()      {}
func (AnimationProp) isProperty()       {}
func (SubStyleProp) isProperty()        {}
func (MediaProp) isProperty()           {}
func (FloatProp) isProperty()           {}
func (GroupProp) isProperty()           {}

// LayoutProperty is the closed variant set of one layout declaration. Layout
// lists have no group variant and are never flattened.
type LayoutProperty interface{ isLayoutProperty() }

// TextFlow lays children out as normal document flow.
type TextFlow struct{}

// TableFlow lays children out as a table.
type TableFlow struct{}

// FlexFlow lays children out along a flex axis.
type FlexFlow struct {
	Direction FlexDirection
	Wrap      bool
	HAlign    Alignment
	VAlign    Alignment
}

// InlineMarker renders the element inline with surrounding content.
type InlineMarker struct{}

// SpacingProp applies a 4-edge spacing tuple around the content.
type SpacingProp struct {
	Value Edges
}

func (TextFlow) isLayoutProperty()     {}
func (TableFlow) isLayoutProperty()    {}
func (FlexFlow) isLayoutProperty()     {}
func (InlineMarker) isLayoutProperty() {}
func (SpacingProp) isLayoutProperty()  {}

// Model is the unit the caller supplies to the pipeline: either a style
// declaration or a layout style declaration.
type Model interface{ isModel() }

// StyleDecl is one style rule's full authored content; immutable once
// constructed.
type StyleDecl struct {
	Selector   Selector
	Properties []Property
}

// LayoutDecl is one layout rule's full authored content.
type LayoutDecl struct {
	Selector   Selector
	Properties []LayoutProperty
}

func (StyleDecl) isModel()  {}
func (LayoutDecl) isModel() {}
