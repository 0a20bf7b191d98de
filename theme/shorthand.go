package theme

import (
	"errors"
	"fmt"
	"io"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"

	gosheet "github.com/reoring/gosheet"
	"github.com/reoring/gosheet/dsl"
)

// ParseDeclarations parses an inline declaration list (the `css:` shorthand,
// e.g. "color: #333; padding: 4px 8px") into plain properties, preserving
// declaration order.
func ParseDeclarations(s string) ([]gosheet.Property, error) {
	p := css.NewParser(parse.NewInput(strings.NewReader(s)), true)

	var props []gosheet.Property
	for {
		gt, _, data := p.Next()
		switch gt {
		case css.ErrorGrammar:
			if err := p.Err(); err != nil && !errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("theme: css shorthand: %w", err)
			}
			return props, nil
		case css.DeclarationGrammar, css.CustomPropertyGrammar:
			name := string(data)
			if value := tokensText(p.Values()); value != "" {
				props = append(props, dsl.Prop(name, value))
			}
		}
	}
}

// tokensText rebuilds a declaration value from its tokens, collapsing
// whitespace runs to single spaces.
func tokensText(tokens []css.Token) string {
	var parts []string
	for _, t := range tokens {
		if t.TokenType == css.WhitespaceToken {
			if len(parts) > 0 {
				parts = append(parts, " ")
			}
			continue
		}
		parts = append(parts, string(t.Data))
	}
	return strings.TrimSpace(strings.Join(parts, ""))
}
