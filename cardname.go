package edhgrab

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// maxCardNameLen is the longest string accepted as a card name.
const maxCardNameLen = 100

var (
	// Lowercase verbs and pronouns never appear uncapitalized in card
	// names, so a whole-word hit marks the string as prose or UI text.
	// Articles and prepositions (the, of, and, ...) are legitimate in
	// names and stay off this list.
	reStopword = regexp.MustCompile(`\b(is|are|was|were|has|have|had|will|would|could|should|this|that|these|those|you|your|we|our|they|their)\b`)

	reNumericOnly = regexp.MustCompile(`^[0-9.,%$€\s-]+$`)
)

// IsPlausibleCardName reports whether a string scraped out of markup
// looks like a card name. The checks are deliberately defensive: missing
// a real card is preferable to treating page furniture as one.
func IsPlausibleCardName(s string) bool {
	n := utf8.RuneCountInString(s)
	if n < 2 || n > maxCardNameLen {
		return false
	}
	first, _ := utf8.DecodeRuneInString(s)
	if unicode.IsDigit(first) || unicode.IsLower(first) {
		return false
	}
	if strings.Contains(s, "...") || strings.Contains(s, "…") {
		return false
	}
	if strings.Contains(s, "://") || strings.HasPrefix(strings.ToLower(s), "www.") {
		return false
	}
	if reNumericOnly.MatchString(s) {
		return false
	}
	if reStopword.MatchString(s) {
		return false
	}
	return true
}
