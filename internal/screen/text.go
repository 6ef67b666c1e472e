package screen

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Truncate cuts text longer than maxLength and ends it with "...".
func Truncate(text string, maxLength int) string {
	if utf8.RuneCountInString(text) <= maxLength {
		return text
	}
	if maxLength <= 3 {
		return strings.Repeat(".", max(maxLength, 0))
	}
	runes := []rune(text)
	return string(runes[:maxLength-3]) + "..."
}

// Fallback returns fallback when value is blank.
func Fallback(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

// TrimUnderscore replaces underscores with spaces.
func TrimUnderscore(text string) string {
	return strings.ReplaceAll(text, "_", " ")
}

// Capitalize upper-cases the first letter.
func Capitalize(text string) string {
	r, size := utf8.DecodeRuneInString(text)
	if r == utf8.RuneError {
		return text
	}
	return string(unicode.ToUpper(r)) + text[size:]
}

// Initials returns the upper-cased first letter of every word, or "AV" for an empty name.
func Initials(name string) string {
	words := strings.Fields(name)
	if len(words) == 0 {
		return "AV"
	}
	var b strings.Builder
	for _, w := range words {
		r, _ := utf8.DecodeRuneInString(w)
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

// Label turns a field name like warehouse_location_id into "Warehouse location id".
func Label(name string) string {
	return Capitalize(TrimUnderscore(name))
}
