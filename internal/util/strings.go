package util

import "strings"

// DefaultString returns fallback if v is empty or consists entirely of
// whitespace; otherwise it returns v unchanged.
//
// It is a small "coalesce" helper for values that may be missing or blank in
// hand-edited files, where a sensible default should be substituted instead of
// carrying an empty string forward.
//
// Call sites:
//   - internal/appconfig/config.go (normalize): restores the default output
//     path when config.yaml has "output:" with no value.
//
// Examples:
//
//	DefaultString("hello", "world")  → "hello"   // non-empty → kept
//	DefaultString("",      "world")  → "world"   // empty → fallback
//	DefaultString("  ",    "world")  → "world"   // whitespace-only → fallback
//	DefaultString("  hi",  "world")  → "  hi"    // leading space but non-blank → kept
func DefaultString(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}
