// Package slug derives URL-safe identifiers from article titles.
package slug

import (
	"regexp"
	"strings"
)

var (
	invalidChars = regexp.MustCompile(`[^a-z0-9\s-]`)
	whitespace   = regexp.MustCompile(`\s+`)
)

// Make converts a title to a URL-safe slug.
//
// The transformation rules are:
//   - The input is lowercased
//   - Characters other than a-z, 0-9, whitespace and hyphens are removed
//   - Runs of whitespace collapse into a single hyphen
//
// Make is pure and deterministic: the same title always yields the same
// slug. It makes no uniqueness guarantee by itself; uniqueness is enforced
// by the store at persistence time. A title consisting entirely of stripped
// characters yields an empty slug.
func Make(title string) string {
	s := strings.ToLower(title)
	s = invalidChars.ReplaceAllString(s, "")
	s = whitespace.ReplaceAllString(s, "-")
	return s
}
