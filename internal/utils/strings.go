package utils

import "strings"

// TrimOrEmpty normalizes user input without turning nil into "nil".
func TrimOrEmpty(s string) string {
	return strings.TrimSpace(s)
}

// NormalizeSpace collapses repeated whitespace into a single space.
func NormalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// FoldForSearch lowercases and collapses whitespace so free-text queries
// match regardless of casing or stray spaces.
func FoldForSearch(s string) string {
	return strings.ToLower(NormalizeSpace(s))
}
