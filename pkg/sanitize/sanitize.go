// Package sanitize cleans user supplied free text before it is stored.
package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// Text strips every HTML element from s, drops invalid UTF-8 and trims surrounding space.
// Entities escaped by the policy are decoded again so plain text such as "Food & shelter" survives.
func Text(s string) string {
	s = strings.ToValidUTF8(s, "")
	return strings.TrimSpace(html.UnescapeString(strict.Sanitize(s)))
}
