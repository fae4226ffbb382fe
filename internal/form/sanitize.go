package form

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var markupPolicy = bluemonday.StrictPolicy()

// StripMarkup removes any HTML from free text and returns plain text.
func StripMarkup(s string) string {
	return strings.TrimSpace(html.UnescapeString(markupPolicy.Sanitize(s)))
}
