// Package tracking extracts issue tracker identifiers from free text.
package tracking

import "regexp"

// Identifiers look like PROJ-123: an uppercase project prefix, a dash and a
// numeric id. The prefix is case-sensitive; lowercase never matches.
var pattern = regexp.MustCompile(`[A-Z]+-\d+`)

// Extract returns the first tracking identifier found in text.
// When multiple identifiers appear the first one wins. An empty string or a
// string without a match returns ok=false.
func Extract(text string) (string, bool) {
	id := pattern.FindString(text)
	return id, id != ""
}
