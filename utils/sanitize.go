package utils

import "github.com/microcosm-cc/bluemonday"

var sanitizer = bluemonday.UGCPolicy()

// Sanitize cleans user supplied text that is later rendered into HTML pages.
func Sanitize(input string) string {
	return sanitizer.Sanitize(input)
}
