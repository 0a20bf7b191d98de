package gosheet

// Render compiles an ordered list of render options and an ordered list of
// models into one Stylesheet artifact. The computation is a pure, synchronous
// function of its inputs: no shared state crosses invocations, nothing fails,
// and concurrent calls with different inputs are safe. The only side effects
// are the optional diagnostic warnings emitted later by the artifact's lookup
// methods in debug mode.
func Render(opts []RenderOption, models []Model) *Stylesheet {
	r := resolveOptions(opts)

	merged := mergeBase(r, models)
	fonts := collectFonts(merged)

	rules := dedupe(renderAll(r.renderer, merged))
	css := assemble(preludeTexts(r.prelude, fonts), rules)

	classes := map[string]RenderedRule{}
	layouts := map[string]RenderedRule{}
	for _, rm := range rules {
		switch d := rm.model.(type) {
		case StyleDecl:
			if d.Selector.Kind() == SelectorByKey {
				classes[d.Selector.Text()] = rm.rule
			}
		case LayoutDecl:
			if d.Selector.Kind() == SelectorByKey {
				layouts[d.Selector.Text()] = rm.rule
			}
		}
	}

	return &Stylesheet{
		css:     css,
		fonts:   fonts,
		classes: classes,
		layouts: layouts,
		debug:   r.debug,
		sink:    r.sink,
	}
}
