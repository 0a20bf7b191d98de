package gosheet

import "strings"

// mergeBase prepends the resolved base properties to every style declaration
// and re-flattens; layout declarations get the base layout properties
// prepended without flattening (layout lists have no group variant). The
// merge happens exactly once per model, before rendering and before font
// collection, so base-contributed font families are also considered for
// auto-import.
func mergeBase(r resolved, models []Model) []Model {
	out := make([]Model, 0, len(models))
	for _, m := range models {
		switch d := m.(type) {
		case StyleDecl:
			props := make([]Property, 0, len(r.base)+len(d.Properties))
			props = append(props, r.base...)
			props = append(props, d.Properties...)
			out = append(out, StyleDecl{Selector: d.Selector, Properties: Flatten(props)})
		case LayoutDecl:
			props := make([]LayoutProperty, 0, len(r.baseLayout)+len(d.Properties))
			props = append(props, r.baseLayout...)
			props = append(props, d.Properties...)
			out = append(out, LayoutDecl{Selector: d.Selector, Properties: props})
		default:
			out = append(out, m)
		}
	}
	return out
}

// renderedModel pairs a rendered rule with the model that produced it, so the
// lookup maps can be rebuilt from the post-dedup set.
type renderedModel struct {
	rule  RenderedRule
	model Model
}

// renderAll renders every merged model in declaration order.
func renderAll(r Renderer, models []Model) []renderedModel {
	out := make([]renderedModel, 0, len(models))
	for _, m := range models {
		out = append(out, renderedModel{rule: r.Render(m), model: m})
	}
	return out
}

// dedupe keeps only the first rendered rule for each distinct generated name,
// preserving first-occurrence order. Detection is by name equality only, not
// deep content equality: styles that render the same content under different
// names stay separate, and a selector key declared twice keeps only the
// first declaration's content.
func dedupe(rules []renderedModel) []renderedModel {
	seen := map[string]struct{}{}
	out := make([]renderedModel, 0, len(rules))
	for _, rm := range rules {
		if _, dup := seen[rm.rule.Name]; dup {
			continue
		}
		seen[rm.rule.Name] = struct{}{}
		out = append(out, rm)
	}
	return out
}

// assemble joins prelude rules and deduplicated rule text into the final
// stylesheet string. With a non-empty prelude a blank line separates the two
// sections; otherwise the rules stand alone.
func assemble(prelude []string, rules []renderedModel) string {
	texts := make([]string, 0, len(rules))
	for _, rm := range rules {
		texts = append(texts, rm.rule.Text)
	}
	body := strings.Join(texts, "\n")
	if len(prelude) == 0 {
		return body
	}
	return strings.Join(prelude, "\n") + "\n\n" + body
}

// preludeTexts fills the deferred fonts slot (if present) with the collected
// webfont import, keeping every entry at the relative position of its option.
// An empty font set emits nothing.
func preludeTexts(entries []preludeEntry, fonts []string) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.fonts {
			if line := fontPrelude(fonts); line != "" {
				out = append(out, line)
			}
			continue
		}
		out = append(out, e.text)
	}
	return out
}
