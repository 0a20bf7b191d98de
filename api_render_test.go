package gosheet_test

import (
	"strings"
	"testing"

	gosheet "github.com/reoring/gosheet"
	"github.com/reoring/gosheet/dsl"
)

// TestRender_Idempotent checks that rendering the same inputs twice yields
// byte-identical CSS and identical lookup results.
func TestRender_Idempotent(t *testing.T) {
	opts := []gosheet.RenderOption{dsl.GoogleFonts(), dsl.Debug()}
	models := []gosheet.Model{
		dsl.Style("a", dsl.FontFamily("CustomFont, serif"), dsl.PaddingAll(4)),
		dsl.Style("b", dsl.TextColor(dsl.Hex("#123456"))),
		dsl.Layout("grid", dsl.Row(gosheet.AlignCenter, gosheet.AlignStart)),
	}

	s1 := gosheet.Render(opts, models)
	s2 := gosheet.Render(opts, models)

	if s1.CSS() != s2.CSS() {
		t.Fatalf("expected byte-identical css across renders")
	}
	if s1.ClassOf("a") != s2.ClassOf("a") || s1.LayoutOf("grid") != s2.LayoutOf("grid") {
		t.Fatalf("expected identical lookup results across renders")
	}
}

// TestRender_BaseMergePrecedence verifies that a style with no authored
// properties renders exactly the resolved base properties, in base order.
func TestRender_BaseMergePrecedence(t *testing.T) {
	sheet := gosheet.Render(nil, []gosheet.Model{dsl.Style("empty")})

	name := sheet.ClassOf("empty")
	want := "." + name + " { box-sizing: border-box; top: 0px; left: 0px; position: relative; }"
	if !strings.Contains(sheet.CSS(), want) {
		t.Fatalf("expected foundation-only rule %q in css, got:\n%s", want, sheet.CSS())
	}
}

// TestRender_BaseStyleFirstWins: at most one base-style option is honored.
func TestRender_BaseStyleFirstWins(t *testing.T) {
	sheet := gosheet.Render(
		[]gosheet.RenderOption{
			dsl.BaseStyle(dsl.Prop("color", "red")),
			dsl.BaseStyle(dsl.Prop("color", "blue")),
		},
		[]gosheet.Model{dsl.Style("empty")},
	)

	name := sheet.ClassOf("empty")
	want := "." + name + " { color: red; }"
	if !strings.Contains(sheet.CSS(), want) {
		t.Fatalf("expected first base style to win, got:\n%s", sheet.CSS())
	}
	if strings.Contains(sheet.CSS(), "blue") {
		t.Fatalf("expected second base style to be ignored, got:\n%s", sheet.CSS())
	}
}

// TestRender_DedupKeepsFirst: a selector key declared twice keeps only the
// first declaration's content.
func TestRender_DedupKeepsFirst(t *testing.T) {
	sheet := gosheet.Render(nil, []gosheet.Model{
		dsl.Style("dup", dsl.Prop("color", "first")),
		dsl.Style("dup", dsl.Prop("color", "second")),
	})

	css := sheet.CSS()
	name := sheet.ClassOf("dup")
	if got := strings.Count(css, "."+name+" {"); got != 1 {
		t.Fatalf("expected exactly one rule block for %q, got %d:\n%s", name, got, css)
	}
	if !strings.Contains(css, "color: first") || strings.Contains(css, "color: second") {
		t.Fatalf("expected first declaration to survive dedup, got:\n%s", css)
	}
}

// TestRender_RuleOrderFollowsDeclarationOrder also covers the assembler's
// newline joining with no prelude.
func TestRender_RuleOrderFollowsDeclarationOrder(t *testing.T) {
	sheet := gosheet.Render(nil, []gosheet.Model{
		dsl.Style("one", dsl.Prop("color", "red")),
		dsl.Style("two", dsl.Prop("color", "green")),
	})

	css := sheet.CSS()
	one := strings.Index(css, "."+sheet.ClassOf("one"))
	two := strings.Index(css, "."+sheet.ClassOf("two"))
	if one < 0 || two < 0 || one > two {
		t.Fatalf("expected rules in declaration order, got:\n%s", css)
	}
	if strings.HasPrefix(css, "\n") {
		t.Fatalf("expected no prelude separator without prelude, got:\n%s", css)
	}
}

// TestRender_PreludeOrderAndSeparator: prelude entries keep option order
// (with the webfont line at its option's position) and a blank line separates
// prelude from rules.
func TestRender_PreludeOrderAndSeparator(t *testing.T) {
	sheet := gosheet.Render(
		[]gosheet.RenderOption{
			dsl.ImportRaw("'print.css' print"),
			dsl.GoogleFonts(),
			dsl.ImportURL("https://example.com/x.css"),
		},
		[]gosheet.Model{dsl.Style("a", dsl.FontFamily("CustomFont"))},
	)

	css := sheet.CSS()
	lines := strings.Split(css, "\n")
	if len(lines) < 5 {
		t.Fatalf("expected prelude + blank + rules, got:\n%s", css)
	}
	if lines[0] != "@import 'print.css' print;" {
		t.Fatalf("expected raw import first, got %q", lines[0])
	}
	if lines[1] != "@import url('https://fonts.googleapis.com/css?family=CustomFont');" {
		t.Fatalf("expected webfont import at its option position, got %q", lines[1])
	}
	if lines[2] != "@import url('https://example.com/x.css');" {
		t.Fatalf("expected url import last, got %q", lines[2])
	}
	if lines[3] != "" {
		t.Fatalf("expected blank separator line, got %q", lines[3])
	}
}

// TestRender_LiteralSelector: literal rules render verbatim but never match a
// key lookup.
func TestRender_LiteralSelector(t *testing.T) {
	sink := &gosheet.CollectSink{}
	sheet := gosheet.Render(
		[]gosheet.RenderOption{dsl.Debug(), dsl.WarnTo(sink)},
		[]gosheet.Model{dsl.StyleFor("html, body", dsl.MarginAll(0))},
	)

	if !strings.Contains(sheet.CSS(), "html, body { ") {
		t.Fatalf("expected literal selector verbatim in css, got:\n%s", sheet.CSS())
	}
	got := sheet.ClassOf("html, body")
	if got == "html, body" || got == "" {
		t.Fatalf("expected deterministic fallback for literal lookup, got %q", got)
	}
	if len(sink.Warnings) != 1 || sink.Warnings[0].Code != gosheet.CodeUnknownClass {
		t.Fatalf("expected one unknown_class warning, got: %v", sink.Warnings)
	}
}

// TestRender_DebugCSSInPrelude: the debug option contributes the fixed
// diagnostic CSS.
func TestRender_DebugCSSInPrelude(t *testing.T) {
	sheet := gosheet.Render(
		[]gosheet.RenderOption{dsl.Debug()},
		[]gosheet.Model{dsl.Style("a")},
	)
	if !strings.Contains(sheet.CSS(), gosheet.DebugCSS) {
		t.Fatalf("expected debug css in prelude, got:\n%s", sheet.CSS())
	}
}
