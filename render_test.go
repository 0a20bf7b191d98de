package gosheet_test

import (
	"strings"
	"testing"

	gosheet "github.com/reoring/gosheet"
	"github.com/reoring/gosheet/dsl"
)

// bare renders models with an empty base so only authored declarations show.
func bare(models ...gosheet.Model) *gosheet.Stylesheet {
	return gosheet.Render([]gosheet.RenderOption{dsl.BaseStyle()}, models)
}

func wantInCSS(t *testing.T, sheet *gosheet.Stylesheet, wants ...string) {
	t.Helper()
	for _, w := range wants {
		if !strings.Contains(sheet.CSS(), w) {
			t.Fatalf("expected %q in css, got:\n%s", w, sheet.CSS())
		}
	}
}

func TestRenderer_ColorsAndLengths(t *testing.T) {
	sheet := bare(dsl.Style("a",
		dsl.TextColor(dsl.RGB(255, 0, 0)),
		dsl.Background(dsl.RGBA(0, 0, 255, 0.5)),
		dsl.FontSize(dsl.Px(14)),
		dsl.Width(dsl.Pct(50)),
		dsl.Height(dsl.Em(1.5)),
	))
	wantInCSS(t, sheet,
		"color: #ff0000",
		"background-color: rgba(0,0,255,0.5)",
		"font-size: 14px",
		"width: 50%",
		"height: 1.5em",
	)
}

func TestRenderer_BoxEdgesAndSpacing(t *testing.T) {
	sheet := bare(
		dsl.Style("a", dsl.Padding(dsl.Edges(1, 2, 3, 4)), dsl.MarginAll(8)),
		dsl.Layout("b", dsl.Spacing(dsl.Edges(5, 6, 7, 8))),
	)
	wantInCSS(t, sheet,
		"padding: 1px 2px 3px 4px",
		"margin: 8px 8px 8px 8px",
		"padding: 5px 6px 7px 8px",
	)
}

func TestRenderer_PositionVariants(t *testing.T) {
	sheet := bare(dsl.Style("a",
		dsl.Absolute(),
		dsl.Position(gosheet.BottomRight, 10, 20),
	))
	wantInCSS(t, sheet, "position: absolute", "bottom: 20px", "right: 10px")
}

func TestRenderer_VisibilityAndFloat(t *testing.T) {
	sheet := bare(
		dsl.Style("hide", dsl.Hide()),
		dsl.Style("gone", dsl.Gone()),
		dsl.Style("float", dsl.FloatLeft()),
	)
	wantInCSS(t, sheet, "visibility: hidden", "display: none", "float: left")
}

func TestRenderer_BackgroundImageEscaped(t *testing.T) {
	sheet := bare(dsl.Style("a", dsl.BackgroundImage("https://example.com/it's.png")))
	wantInCSS(t, sheet, `background-image: url('https://example.com/it\'s.png')`)
}

func TestRenderer_ShadowTransformFilterLists(t *testing.T) {
	sheet := bare(dsl.Style("a",
		dsl.BoxShadows(
			dsl.Shadow(0, 1, 2, 0, dsl.Hex("#000000")),
			dsl.InsetShadow(0, 0, 4, 0, dsl.RGBA(0, 0, 0, 0.25)),
		),
		dsl.Transforms(dsl.Translate(1, 2), dsl.Rotate(45)),
		dsl.Filters(dsl.Blur(4), dsl.Brightness(1.2)),
	))
	wantInCSS(t, sheet,
		"box-shadow: 0px 1px 2px 0px #000000, inset 0px 0px 4px 0px rgba(0,0,0,0.25)",
		"transform: translate(1px, 2px) rotate(45deg)",
		"filter: blur(4px) brightness(1.2)",
	)
}

func TestRenderer_TransitionAndAnimation(t *testing.T) {
	sheet := bare(dsl.Style("a",
		dsl.Transition("opacity", 200, "ease-in"),
		dsl.Animate(500, "", 2,
			dsl.Step(0, dsl.Prop("opacity", "0")),
			dsl.Step(100, dsl.Prop("opacity", "1")),
		),
	))

	wantInCSS(t, sheet,
		"transition: opacity 200ms ease-in",
		"animation: ",
		"ms ease 2",
		"@keyframes ",
		"0% { opacity: 0; }",
		"100% { opacity: 1; }",
	)
}

func TestRenderer_PseudoAndMediaBlocks(t *testing.T) {
	sheet := bare(dsl.Style("a",
		dsl.Prop("color", "black"),
		dsl.Hover(dsl.Prop("color", "red")),
		dsl.Media("(max-width: 600px)", dsl.Prop("display", "block")),
	))

	name := sheet.ClassOf("a")
	wantInCSS(t, sheet,
		"."+name+":hover { color: red; }",
		"@media (max-width: 600px) { ."+name+" { display: block; } }",
	)
}

func TestRenderer_LayoutFlows(t *testing.T) {
	sheet := bare(
		dsl.Layout("flow", dsl.TextFlow()),
		dsl.Layout("tab", dsl.TableFlow()),
		dsl.Layout("row", dsl.Flex(gosheet.Row, true, gosheet.AlignCenter, gosheet.AlignEnd)),
		dsl.Layout("col", dsl.Column(gosheet.AlignCenter, gosheet.AlignStart)),
		dsl.Layout("chip", dsl.Inline()),
	)

	wantInCSS(t, sheet,
		"display: table",
		"display: flex; flex-direction: row; flex-wrap: wrap; justify-content: center; align-items: flex-end",
		"flex-direction: column; flex-wrap: nowrap; justify-content: flex-start; align-items: center",
		"display: inline-block",
	)
}

// TestRenderer_LayoutBaseFoundation: layout declarations get text flow
// prepended by default.
func TestRenderer_LayoutBaseFoundation(t *testing.T) {
	sheet := gosheet.Render(nil, []gosheet.Model{dsl.Layout("plain")})
	name := sheet.LayoutOf("plain")
	wantInCSS(t, sheet, "."+name+" { display: block; }")
}
