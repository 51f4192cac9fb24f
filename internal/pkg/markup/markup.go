// Package markup strips HTML from user supplied text before it is stored or
// used in a query.
package markup

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// Clean removes every tag (and the content of script/style elements) from s and
// returns the remaining literal text, trimmed. Entities produced by the policy are
// unescaped again so that "Fish & Chips" survives unchanged.
func Clean(s string) string {
	return strings.TrimSpace(html.UnescapeString(strict.Sanitize(s)))
}
