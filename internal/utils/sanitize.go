package utils

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = bluemonday.StrictPolicy()

// PlainText strips every HTML element from s and decodes the entities the
// sanitiser leaves behind, giving text that is safe to print on a terminal.
// Story fields and push payloads are user-controlled.
func PlainText(s string) string {
	if !strings.ContainsAny(s, "<>&") {
		return s
	}
	return html.UnescapeString(strictPolicy.Sanitize(s))
}
