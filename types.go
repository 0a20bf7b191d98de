package gosheet

// SelectorKind distinguishes key-addressed selectors from literal ones.
type SelectorKind int

const (
	SelectorByKey   SelectorKind = iota // Opaque class key; participates in lookups.
	SelectorLiteral                     // Raw selector text used verbatim; no lookup guarantees.
)

// Selector addresses one style rule. A ByKey selector is an opaque identifier
// that the pipeline turns into a generated class name; a Literal selector is
// emitted verbatim and is excluded from every lookup association.
type Selector struct {
	kind SelectorKind
	text string
}

// Key returns a key-addressed selector.
func Key(key string) Selector { return Selector{kind: SelectorByKey, text: key} }

// Literal returns a raw selector used verbatim (for example "html, body").
func Literal(raw string) Selector { return Selector{kind: SelectorLiteral, text: raw} }

// Kind reports how the selector addresses its rule.
func (s Selector) Kind() SelectorKind { return s.kind }

// Text returns the key text for ByKey selectors and the raw selector text for
// Literal ones.
func (s Selector) Text() string { return s.text }

// Corner anchors a positioning declaration to one corner of the containing
// box.
type Corner int

const (
	TopLeft Corner = iota
	TopRight
	BottomLeft
	BottomRight
)

// PositionMode selects which ancestor a positioned element offsets against.
type PositionMode int

const (
	CurrentPosition PositionMode = iota // position: relative
	Parent                              // position: absolute
	Screen                              // position: fixed
)

// Visibility expresses the visibility declaration variants.
type Visibility int

const (
	Visible Visibility = iota
	Hidden             // visibility: hidden (keeps layout)
	Gone               // display: none (removes from layout)
)

// FloatSide expresses the float declaration variants.
type FloatSide int

const (
	FloatNone FloatSide = iota
	FloatLeft
	FloatRight
)

// FlexDirection is the main axis direction of a flex-flow layout.
type FlexDirection int

const (
	Row FlexDirection = iota
	RowReverse
	Column
	ColumnReverse
)

// Alignment positions children along one axis of a flex-flow layout.
type Alignment int

const (
	AlignStart Alignment = iota
	AlignCenter
	AlignEnd
	AlignStretch
	AlignSpaceBetween
	AlignSpaceAround
)

// Edges is a 4-edge numeric tuple (top, right, bottom, left), in pixels.
type Edges struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// EdgesAll returns an Edges with every side set to v.
func EdgesAll(v float64) Edges { return Edges{Top: v, Right: v, Bottom: v, Left: v} }

// RenderedRule is the output of a Renderer for one model: a generated selector
// token plus the full rule text. GeneratedName must be stable and
// deterministic for identical (selector, flattened properties) input so that
// repeated renders of equal styles dedupe correctly.
type RenderedRule struct {
	Name string // Generated selector/class token.
	Text string // Complete rule text (main block plus any sub/keyframes blocks).
}

// Renderer turns one model into a rendered rule. Implementations must be
// deterministic and total; Name must be a valid selector-class token for
// key-addressed models.
type Renderer interface {
	Render(m Model) RenderedRule
}

// ClassToggle pairs a class key with an include flag, for Stylesheet.ClassListOf.
type ClassToggle struct {
	Key     string
	Include bool
}

// On is shorthand for an included ClassToggle.
func On(key string) ClassToggle { return ClassToggle{Key: key, Include: true} }

// Off is shorthand for an excluded ClassToggle.
func Off(key string) ClassToggle { return ClassToggle{Key: key} }
