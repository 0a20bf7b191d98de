package gosheet_test

import (
	"reflect"
	"strings"
	"testing"

	gosheet "github.com/reoring/gosheet"
	"github.com/reoring/gosheet/dsl"
)

// TestFlatten_RemovesGroupsInPlace: groups expand at their position,
// recursively, and everything else stays where it was.
func TestFlatten_RemovesGroupsInPlace(t *testing.T) {
	a := dsl.Prop("a", "1")
	b := dsl.Prop("b", "2")
	c := dsl.Prop("c", "3")
	d := dsl.Prop("d", "4")

	got := gosheet.Flatten([]gosheet.Property{
		a,
		dsl.Mix(b, dsl.Mix(c)),
		d,
	})

	want := []gosheet.Property{a, b, c, d}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for _, p := range got {
		if _, isGroup := p.(gosheet.GroupProp); isGroup {
			t.Fatalf("expected no group variants after flatten")
		}
	}
}

// TestFlatten_EmptyInput has no failure mode.
func TestFlatten_EmptyInput(t *testing.T) {
	if got := gosheet.Flatten(nil); len(got) != 0 {
		t.Fatalf("expected empty output, got %v", got)
	}
}

// TestMix_StyleIncludesAnother: the group variant lets one style reuse the
// properties of another declaration verbatim.
func TestMix_StyleIncludesAnother(t *testing.T) {
	common := dsl.Mix(dsl.Prop("color", "navy"), dsl.PaddingAll(2))
	sheet := gosheet.Render(nil, []gosheet.Model{
		dsl.Style("a", common, dsl.Prop("font-weight", "bold")),
	})

	css := sheet.CSS()
	for _, want := range []string{"color: navy", "padding: 2px 2px 2px 2px", "font-weight: bold"} {
		if !strings.Contains(css, want) {
			t.Fatalf("expected %q in css, got:\n%s", want, css)
		}
	}
}
