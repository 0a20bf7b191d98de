package gosheet

import (
	"github.com/reoring/gosheet/internal/cssw"
)

// collectFonts scans merged style declarations for font-family declarations
// and returns the unique non-standard family names in first-seen order. This
// is the only place global, cross-style aggregation occurs.
func collectFonts(models []Model) []string {
	seen := map[string]struct{}{}
	var fonts []string
	for _, m := range models {
		sd, ok := m.(StyleDecl)
		if !ok {
			continue
		}
		for _, p := range sd.Properties {
			pl, ok := p.(Plain)
			if !ok || pl.Name != "font-family" {
				continue
			}
			for _, fam := range cssw.SplitFontFamilies(pl.Value) {
				if cssw.IsStandardFont(fam) {
					continue
				}
				if _, dup := seen[fam]; dup {
					continue
				}
				seen[fam] = struct{}{}
				fonts = append(fonts, fam)
			}
		}
	}
	return fonts
}

// fontPrelude renders the single webfont import line for the collected
// families, or "" when nothing needs importing.
func fontPrelude(fonts []string) string {
	if len(fonts) == 0 {
		return ""
	}
	return "@import url('" + cssw.WebfontURL(fonts) + "');"
}
