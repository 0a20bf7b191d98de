package gosheet

import (
	"strings"

	gojson "github.com/goccy/go-json"

	"github.com/reoring/gosheet/internal/cssw"
)

// Stylesheet is the artifact returned by Render: the assembled stylesheet
// text plus pure lookup methods closed over the deduplicated rendered-rule
// set built at render time. It is immutable after construction.
type Stylesheet struct {
	css     string
	fonts   []string
	classes map[string]RenderedRule
	layouts map[string]RenderedRule
	debug   bool
	sink    WarnSink
}

// CSS returns the complete stylesheet text, ready to embed verbatim inside a
// <style>-equivalent element.
func (s *Stylesheet) CSS() string { return s.css }

// Fonts returns the collected non-standard font families in first-seen
// order (empty unless styles referenced any).
func (s *Stylesheet) Fonts() []string {
	out := make([]string, len(s.fonts))
	copy(out, s.fonts)
	return out
}

// ClassOf maps a style key to its generated class name. For an unknown key it
// returns the deterministic fallback name the key would have rendered to, so
// the attribute value stays valid; in debug mode it additionally emits a
// diagnostic warning. The fallback is produced identically whether or not
// debug mode is active.
func (s *Stylesheet) ClassOf(key string) string {
	if rule, ok := s.classes[key]; ok {
		return rule.Name
	}
	fallback := cssw.StyleClass(key)
	s.warn(Warning{
		Code:     CodeUnknownClass,
		Key:      key,
		Fallback: fallback,
		Message:  "no style declared for key",
	})
	return fallback
}

// LayoutOf maps a layout key to its generated class name, with the same
// fallback and diagnostic semantics as ClassOf.
func (s *Stylesheet) LayoutOf(key string) string {
	if rule, ok := s.layouts[key]; ok {
		return rule.Name
	}
	fallback := cssw.LayoutClass(key)
	s.warn(Warning{
		Code:     CodeUnknownLayout,
		Key:      key,
		Fallback: fallback,
		Message:  "no layout declared for key",
	})
	return fallback
}

// ClassListOf resolves each toggle like ClassOf would (identical warning
// behavior) and space-joins the names whose Include flag is set. Unlike
// ClassOf, keys with no backing declaration are excluded from the result
// even when their flag is set, so a multi-class attribute never carries a
// name no rule defines. Diagnostics still fire in debug mode.
func (s *Stylesheet) ClassListOf(toggles ...ClassToggle) string {
	names := make([]string, 0, len(toggles))
	for _, t := range toggles {
		rule, ok := s.classes[t.Key]
		if !ok {
			s.warn(Warning{
				Code:     CodeUnknownClass,
				Key:      t.Key,
				Fallback: cssw.StyleClass(t.Key),
				Message:  "no style declared for key",
			})
			continue
		}
		if t.Include {
			names = append(names, rule.Name)
		}
	}
	return strings.Join(names, " ")
}

// warn forwards to the sink in debug mode only. The warning never changes
// what the lookup returns.
func (s *Stylesheet) warn(w Warning) {
	if s.debug && s.sink != nil {
		s.sink.Warn(w)
	}
}

// Manifest is the JSON projection of the compiled artifact, for tooling that
// inspects what a render produced.
type Manifest struct {
	Classes map[string]string `json:"classes"`
	Layouts map[string]string `json:"layouts"`
	Fonts   []string          `json:"fonts,omitempty"`
	Rules   int               `json:"rules"`
}

// ManifestJSON serializes the name tables, collected fonts and rule count.
func (s *Stylesheet) ManifestJSON() ([]byte, error) {
	m := Manifest{
		Classes: make(map[string]string, len(s.classes)),
		Layouts: make(map[string]string, len(s.layouts)),
		Fonts:   s.fonts,
	}
	for k, r := range s.classes {
		m.Classes[k] = r.Name
	}
	for k, r := range s.layouts {
		m.Layouts[k] = r.Name
	}
	m.Rules = len(s.classes) + len(s.layouts)
	return gojson.MarshalIndent(m, "", "  ")
}
