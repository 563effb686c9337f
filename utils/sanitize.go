package utils

import "github.com/microcosm-cc/bluemonday"

// Profile names and emails are plain text; strip all markup.
var sanitizer = bluemonday.StrictPolicy()

// Sanitize cleans caller-supplied text to prevent stored XSS.
func Sanitize(input string) string {
	return sanitizer.Sanitize(input)
}
