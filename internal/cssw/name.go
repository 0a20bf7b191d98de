// Package cssw holds the low-level CSS writing mechanics: deterministic
// class-name derivation, escaping, rule-block assembly and webfont URL
// building. It knows nothing about the declaration model.
package cssw

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/gosimple/slug"
)

// shortHash returns the first 6 hex chars of sha256(s), the scoping suffix
// that keeps distinct keys with identical slugs apart.
func shortHash(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])[:6]
}

// className derives the deterministic class token for a key under a
// namespace prefix. The same function backs both successful lookups and the
// missing-key fallback, which is what makes the fallback identical to what
// the name would have been.
func className(prefix, key string) string {
	s := slug.Make(key)
	if s == "" {
		s = "x"
	}
	return prefix + "-" + s + "-" + shortHash(key)
}

// StyleClass derives the class token for a style key.
func StyleClass(key string) string { return className("s", key) }

// LayoutClass derives the class token for a layout key. Layout and style
// namespaces stay disjoint so one key may name both.
func LayoutClass(key string) string { return className("l", key) }

// KeyframesName derives the identifier for the i-th keyframes rule generated
// for a style. The style name is slugged first since literal selectors may
// contain characters invalid in an identifier.
func KeyframesName(styleName string, i int) string {
	s := slug.Make(styleName)
	if s == "" {
		s = "x"
	}
	return fmt.Sprintf("%s-kf%d", s, i)
}
