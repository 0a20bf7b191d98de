package cssw

import (
	"strings"
)

// EscapeSingleQuoted escapes a string for use inside CSS single quotes.
// Backslashes and single quotes are escaped per CSS syntax: \' and \\.
func EscapeSingleQuoted(s string) string {
	if !strings.ContainsAny(s, `'\`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 4)
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '\'':
			b.WriteString(`\'`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Block assembles one rule block: `selector { a: b; c: d; }`. Declarations
// arrive already formatted as "name: value".
func Block(selector string, decls []string) string {
	b := &strings.Builder{}
	b.WriteString(selector)
	b.WriteString(" { ")
	for _, d := range decls {
		b.WriteString(d)
		b.WriteString("; ")
	}
	b.WriteString("}")
	return b.String()
}

// AtBlock assembles a nested at-rule block such as @media or @keyframes.
func AtBlock(header string, inner []string) string {
	b := &strings.Builder{}
	b.WriteString(header)
	b.WriteString(" { ")
	for _, blk := range inner {
		b.WriteString(blk)
		b.WriteString(" ")
	}
	b.WriteString("}")
	return b.String()
}
