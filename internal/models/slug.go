package models

import "strings"

// Slugify derives a URL-safe natural key from a product title: lowercased,
// apostrophes and whitespace runs collapsed to single hyphens. It is only
// the fallback for drafts that carry no explicit slug.
func Slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = strings.ReplaceAll(s, "'", " ")
	return strings.Join(strings.Fields(s), "-")
}
