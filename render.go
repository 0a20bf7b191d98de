package gosheet

import (
	"fmt"
	"strings"

	"github.com/reoring/gosheet/internal/cssw"
)

// defaultRenderer is the built-in rule renderer. It derives the generated
// name from the selector alone, so a key declared twice renders the same name
// and the deduplicator keeps the first occurrence.
type defaultRenderer struct{}

func (defaultRenderer) Render(m Model) RenderedRule {
	switch d := m.(type) {
	case StyleDecl:
		return renderStyle(d)
	case LayoutDecl:
		return renderLayout(d)
	}
	return RenderedRule{}
}

// selectorName resolves the generated name and the selector text for a model.
// Literal selectors render verbatim.
func selectorName(sel Selector, class func(string) string) (name, selText string) {
	if sel.Kind() == SelectorLiteral {
		return sel.Text(), sel.Text()
	}
	name = class(sel.Text())
	return name, "." + name
}

func renderStyle(d StyleDecl) RenderedRule {
	name, selText := selectorName(d.Selector, cssw.StyleClass)

	st := styleText{name: name, selector: selText}
	decls := st.decls(Flatten(d.Properties))

	blocks := []string{cssw.Block(selText, decls)}
	blocks = append(blocks, st.extra...)
	return RenderedRule{Name: name, Text: strings.Join(blocks, "\n")}
}

// styleText accumulates the blocks of one style rule: sub-element and media
// blocks plus generated keyframes land in extra, after the main block.
type styleText struct {
	name     string
	selector string
	extra    []string
	kfCount  int
}

func (st *styleText) decls(props []Property) []string {
	out := make([]string, 0, len(props))
	for _, p := range props {
		switch d := p.(type) {
		case Plain:
			out = append(out, d.Name+": "+d.Value)
		case ColorProp:
			out = append(out, d.Name+": "+d.Value.CSS())
		case LengthProp:
			out = append(out, d.Name+": "+d.Value.CSS())
		case EdgesProp:
			out = append(out, d.Name+": "+edgesCSS(d.Value))
		case PositionProp:
			v, h := cornerEdges(d.Corner)
			out = append(out, v+": "+trimFloat(d.Y)+"px", h+": "+trimFloat(d.X)+"px")
		case PositionModeProp:
			out = append(out, "position: "+positionCSS(d.Mode))
		case VisibilityProp:
			switch d.Value {
			case Hidden:
				out = append(out, "visibility: hidden")
			case Gone:
				out = append(out, "display: none")
			default:
				out = append(out, "visibility: visible")
			}
		case BackgroundImageProp:
			out = append(out, "background-image: url('"+cssw.EscapeSingleQuoted(d.URL)+"')")
		case ShadowsProp:
			propName := d.Name
			if propName == "" {
				propName = "box-shadow"
			}
			out = append(out, propName+": "+joinCSS(len(d.Shadows), ", ", func(i int) string { return d.Shadows[i].CSS() }))
		case TransformsProp:
			out = append(out, "transform: "+joinCSS(len(d.Transforms), " ", func(i int) string { return d.Transforms[i].CSS() }))
		case FiltersProp:
			out = append(out, "filter: "+joinCSS(len(d.Filters), " ", func(i int) string { return d.Filters[i].CSS() }))
		case TransitionProp:
			out = append(out, "transition: "+d.Value.CSS())
		case AnimationProp:
			out = append(out, st.animation(d.Value))
		case SubStyleProp:
			nested := st.decls(Flatten(d.Properties))
			st.extra = append(st.extra, cssw.Block(st.selector+d.Suffix, nested))
		case MediaProp:
			nested := st.decls(Flatten(d.Properties))
			st.extra = append(st.extra, cssw.AtBlock("@media "+d.Query, []string{cssw.Block(st.selector, nested)}))
		case FloatProp:
			out = append(out, "float: "+floatCSS(d.Side))
		case GroupProp:
			// Flatten is applied on entry; a stray group still flattens here.
			out = append(out, st.decls(Flatten(d.Properties))...)
		}
	}
	return out
}

// animation emits the @keyframes block for the animation and returns its
// animation declaration. Keyframes names derive from the style name plus an
// ordinal, keeping repeated renders byte-identical.
func (st *styleText) animation(a Animation) string {
	kf := cssw.KeyframesName(st.name, st.kfCount)
	st.kfCount++

	steps := make([]string, 0, len(a.Steps))
	for _, step := range a.Steps {
		steps = append(steps, cssw.Block(trimFloat(step.Percent)+"%", st.decls(Flatten(step.Properties))))
	}
	st.extra = append(st.extra, cssw.AtBlock("@keyframes "+kf, steps))

	easing := a.Easing
	if easing == "" {
		easing = "ease"
	}
	repeat := "infinite"
	if a.Repeat > 0 {
		repeat = fmt.Sprintf("%d", a.Repeat)
	}
	return fmt.Sprintf("animation: %s %sms %s %s", kf, trimFloat(a.Duration), easing, repeat)
}

func renderLayout(d LayoutDecl) RenderedRule {
	name, selText := selectorName(d.Selector, cssw.LayoutClass)

	out := make([]string, 0, len(d.Properties))
	for _, p := range d.Properties {
		switch l := p.(type) {
		case TextFlow:
			out = append(out, "display: block")
		case TableFlow:
			out = append(out, "display: table")
		case FlexFlow:
			out = append(out, flexDecls(l)...)
		case InlineMarker:
			out = append(out, "display: inline-block")
		case SpacingProp:
			out = append(out, "padding: "+edgesCSS(l.Value))
		}
	}
	return RenderedRule{Name: name, Text: cssw.Block(selText, out)}
}

func flexDecls(f FlexFlow) []string {
	wrap := "nowrap"
	if f.Wrap {
		wrap = "wrap"
	}
	// The main axis takes the alignment matching its direction: horizontal
	// alignment justifies a row, vertical alignment justifies a column.
	justify, align := f.HAlign, f.VAlign
	if f.Direction == Column || f.Direction == ColumnReverse {
		justify, align = f.VAlign, f.HAlign
	}
	return []string{
		"display: flex",
		"flex-direction: " + flexDirectionCSS(f.Direction),
		"flex-wrap: " + wrap,
		"justify-content: " + alignCSS(justify),
		"align-items: " + alignCSS(align),
	}
}

func edgesCSS(e Edges) string {
	return trimFloat(e.Top) + "px " + trimFloat(e.Right) + "px " +
		trimFloat(e.Bottom) + "px " + trimFloat(e.Left) + "px"
}

func cornerEdges(c Corner) (vertical, horizontal string) {
	switch c {
	case TopRight:
		return "top", "right"
	case BottomLeft:
		return "bottom", "left"
	case BottomRight:
		return "bottom", "right"
	default:
		return "top", "left"
	}
}

func positionCSS(m PositionMode) string {
	switch m {
	case Parent:
		return "absolute"
	case Screen:
		return "fixed"
	default:
		return "relative"
	}
}

func floatCSS(s FloatSide) string {
	switch s {
	case FloatLeft:
		return "left"
	case FloatRight:
		return "right"
	default:
		return "none"
	}
}

func flexDirectionCSS(d FlexDirection) string {
	switch d {
	case RowReverse:
		return "row-reverse"
	case Column:
		return "column"
	case ColumnReverse:
		return "column-reverse"
	default:
		return "row"
	}
}

func alignCSS(a Alignment) string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignEnd:
		return "flex-end"
	case AlignStretch:
		return "stretch"
	case AlignSpaceBetween:
		return "space-between"
	case AlignSpaceAround:
		return "space-around"
	default:
		return "flex-start"
	}
}

func joinCSS(n int, sep string, at func(int) string) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = at(i)
	}
	return strings.Join(parts, sep)
}
