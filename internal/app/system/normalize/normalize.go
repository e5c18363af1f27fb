// Package normalize holds the canonical string normalization applied
// to user input before it reaches the stores.
package normalize

import "strings"

// Email returns the canonical form of an email address: trimmed and
// lowercased. The users collection's unique index is on this form.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name trims surrounding whitespace, preserving case.
func Name(s string) string {
	return strings.TrimSpace(s)
}

// Role returns the canonical role string: trimmed and lowercased.
func Role(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Label trims a promotion label, preserving case.
func Label(s string) string {
	return strings.TrimSpace(s)
}
