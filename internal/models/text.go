package models

import "unicode/utf8"

// Byte limits for stored names and texts. Longer values are truncated, see [Truncate].
const (
	MaxNameBytes = 49
	MaxTextBytes = 119
)

// Truncate shortens s to at most maxBytes bytes without splitting a UTF-8 sequence.
func Truncate(s string, maxBytes int) string {
	if len(s) <= maxBytes {
		return s
	}
	if maxBytes <= 0 {
		return ""
	}
	cut := maxBytes
	// Step back to the start of the rune that straddles the limit.
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

// TruncateName applies the name limit used for rooms and suspects.
func TruncateName(s string) string {
	return Truncate(s, MaxNameBytes)
}

// TruncateText applies the text limit used for clues.
func TruncateText(s string) string {
	return Truncate(s, MaxTextBytes)
}
