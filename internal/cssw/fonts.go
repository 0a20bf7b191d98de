package cssw

import (
	"strings"
)

// standardFonts is the fixed set of family names considered standard and
// therefore never auto-imported. Compared case-insensitively.
var standardFonts = []string{
	"arial",
	"sans-serif",
	"serif",
	"courier",
	"times",
	"times new roman",
	"verdana",
	"tahoma",
	"georgia",
	"helvetica",
}

// SplitFontFamilies splits a font-family value on commas, trimming whitespace
// and surrounding quote characters per entry. Empty entries are dropped.
func SplitFontFamilies(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		name := strings.TrimSpace(part)
		name = strings.Trim(name, `"'`)
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		out = append(out, name)
	}
	return out
}

// IsStandardFont reports whether the family name matches the built-in
// standard list, case-insensitively.
func IsStandardFont(name string) bool {
	for _, std := range standardFonts {
		if strings.EqualFold(name, std) {
			return true
		}
	}
	return false
}

// WebfontURL builds the single Google Fonts request for all families:
// internal spaces become '+' and families join with '|'.
func WebfontURL(families []string) string {
	joined := make([]string, 0, len(families))
	for _, f := range families {
		joined = append(joined, strings.ReplaceAll(f, " ", "+"))
	}
	return "https://fonts.googleapis.com/css?family=" + strings.Join(joined, "|")
}
