package theme_test

import (
	"strings"
	"testing"

	gosheet "github.com/reoring/gosheet"
	"github.com/reoring/gosheet/theme"
)

const sample = `
options:
  googleFonts: true
  debug: true
  imports:
    - url: https://example.com/reset.css
    - raw: "'print.css' print"
styles:
  title:
    css: "font-family: Inter, sans-serif; font-size: 24px"
    hover:
      css: "text-decoration: underline"
  button:
    props:
      - name: border-radius
        value: 4px
layouts:
  toolbar:
    flow: flex
    direction: row
    wrap: true
    halign: center
    valign: center
    spacing: [4, 8, 4, 8]
`

func TestLoad_FullDocument(t *testing.T) {
	opts, models, err := theme.Load([]byte(sample))
	if err != nil {
		t.Fatalf("expected document to load, got: %v", err)
	}
	if len(opts) != 4 {
		t.Fatalf("expected 4 options (fonts, 2 imports, debug), got %d", len(opts))
	}
	if len(models) != 3 {
		t.Fatalf("expected 3 models, got %d", len(models))
	}

	// Declaration order survives decoding.
	first, ok := models[0].(gosheet.StyleDecl)
	if !ok || first.Selector.Text() != "title" {
		t.Fatalf("expected first model to be style %q, got %#v", "title", models[0])
	}

	sheet := gosheet.Render(opts, models)
	css := sheet.CSS()
	for _, want := range []string{
		"font-family: Inter, sans-serif",
		"font-size: 24px",
		":hover { text-decoration: underline; }",
		"border-radius: 4px",
		"@import url('https://example.com/reset.css');",
		"@import 'print.css' print;",
		"display: flex",
		"flex-wrap: wrap",
		"padding: 4px 8px 4px 8px",
	} {
		if !strings.Contains(css, want) {
			t.Fatalf("expected %q in compiled css, got:\n%s", want, css)
		}
	}
}

func TestLoad_MultiDocumentConcatenates(t *testing.T) {
	doc := "styles:\n  a:\n    css: \"color: red\"\n---\nstyles:\n  b:\n    css: \"color: blue\"\n"
	_, models, err := theme.Load([]byte(doc))
	if err != nil {
		t.Fatalf("expected multi-doc stream to load, got: %v", err)
	}
	if len(models) != 2 {
		t.Fatalf("expected 2 models, got %d", len(models))
	}
	if models[0].(gosheet.StyleDecl).Selector.Text() != "a" {
		t.Fatalf("expected earlier document first")
	}
}

func TestLoad_RejectsUnknownFlow(t *testing.T) {
	doc := "layouts:\n  x:\n    flow: bogus\n"
	if _, _, err := theme.Load([]byte(doc)); err == nil {
		t.Fatalf("expected error for unknown flow")
	}
}

func TestParseDeclarations_Shorthand(t *testing.T) {
	props, err := theme.ParseDeclarations("color: #333; padding: 4px 8px")
	if err != nil {
		t.Fatalf("expected shorthand to parse, got: %v", err)
	}
	if len(props) != 2 {
		t.Fatalf("expected 2 declarations, got %d: %#v", len(props), props)
	}
	first, ok := props[0].(gosheet.Plain)
	if !ok || first.Name != "color" || first.Value != "#333" {
		t.Fatalf("unexpected first declaration: %#v", props[0])
	}
	second := props[1].(gosheet.Plain)
	if second.Name != "padding" || second.Value != "4px 8px" {
		t.Fatalf("unexpected second declaration: %#v", second)
	}
}
