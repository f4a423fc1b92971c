package utils

import "github.com/microcosm-cc/bluemonday"

// Notes and details fields are plain text, so strip markup entirely.
var sanitizer = bluemonday.StrictPolicy()

// Sanitize cleans user-supplied free text to prevent stored XSS.
func Sanitize(input string) string {
	return sanitizer.Sanitize(input)
}
