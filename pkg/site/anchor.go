package site

import "strings"

// Anchor derives the in-page fragment id of a name: lowercase, spaces
// replaced by hyphens. "Jane Doe" becomes "jane-doe".
func Anchor(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "-")
}
