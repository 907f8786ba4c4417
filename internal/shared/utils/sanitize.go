package utils

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = bluemonday.StrictPolicy()

// maxSanitizePasses bounds the decode/strip loop for nested entity encodings.
const maxSanitizePasses = 8

// SanitizeText strips all markup from user supplied text and trims surrounding whitespace.
// Entities are decoded before stripping, so encoded tags are removed as well, and
// characters like '&' stay readable. The text is stripped until it no longer changes.
func SanitizeText(s string) string {
	if s == "" {
		return s
	}
	for i := 0; i < maxSanitizePasses; i++ {
		out := html.UnescapeString(strictPolicy.Sanitize(html.UnescapeString(s)))
		if out == s {
			return strings.TrimSpace(out)
		}
		s = out
	}
	// still changing: keep the policy's escaped form
	return strings.TrimSpace(strictPolicy.Sanitize(s))
}
