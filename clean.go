package edhgrab

import (
	"strings"
	"unicode"
)

// minCleanIterations bounds the repair loop even for very short inputs.
const minCleanIterations = 16

// ExactClean repairs duplicated text artifacts produced by inconsistent
// source markup, where a copy of the text is glued onto itself at a
// lowercase-to-uppercase boundary inside a single token (e.g.
// "Qal SismaGoreclaw, Terror of Qal Sisma"). The repair is heuristic:
// the duplicated span is removed only when the tokens on both sides of
// the boundary replay exactly, otherwise the input is left alone.
//
// Each repair strictly shrinks the string, so the loop terminates; the
// iteration cap is a guard against adversarial input and hitting it
// returns the text as cleaned so far.
func ExactClean(s string) string {
	if s == "" {
		return s
	}
	limit := len(s)
	if limit < minCleanIterations {
		limit = minCleanIterations
	}
	for i := 0; i < limit; i++ {
		cleaned, changed := cleanOnce(s)
		if !changed {
			return cleaned
		}
		s = cleaned
	}
	return s
}

// CleanText collapses runs of whitespace to single spaces, trims the
// result, and repairs duplication artifacts. Intended for name-like text
// pulled out of markup (headings, card names, list items).
func CleanText(s string) string {
	return ExactClean(strings.Join(strings.Fields(s), " "))
}

// cleanOnce performs a single repair pass.
func cleanOnce(s string) (string, bool) {
	runes := []rune(s)
	b := dupBoundary(runes)
	if b < 0 {
		return s, false
	}

	// First whitespace-delimited token after the boundary.
	end := b + 1
	for end < len(runes) && !unicode.IsSpace(runes[end]) {
		end++
	}
	first := string(runes[b+1 : end])

	back, found := tokensBefore(runes, b+1, first)
	if !found {
		// A truncated duplicate glued onto the front of the text: the
		// boundary sits inside the first token, so everything before it
		// is the leftover copy.
		if len(back) == 1 {
			return string(runes[b+1:]), true
		}
		return s, false
	}

	fwd, spanEnd := tokensAfter(runes, b+1, len(back))
	if len(fwd) < len(back) || !tokensMatch(back, fwd) {
		return s, false
	}
	return string(runes[:b+1]) + string(runes[spanEnd:]), true
}

// dupBoundary returns the index of the first lowercase rune immediately
// followed by an uppercase rune, or -1.
func dupBoundary(runes []rune) int {
	for i := 0; i+1 < len(runes); i++ {
		if unicode.IsLower(runes[i]) && unicode.IsUpper(runes[i+1]) {
			return i
		}
	}
	return -1
}

// tokensBefore walks backward from the boundary collecting whitespace
// delimited tokens until one equals target. The first collected token may
// be partial when the boundary sits mid-token. Tokens are returned in
// document order, starting with the matching token when found.
func tokensBefore(runes []rune, boundary int, target string) ([]string, bool) {
	var back []string
	i := boundary
	for i > 0 {
		j := i
		for j > 0 && !unicode.IsSpace(runes[j-1]) {
			j--
		}
		tok := string(runes[j:i])
		back = append([]string{tok}, back...)
		if tok == target {
			return back, true
		}
		i = j
		for i > 0 && unicode.IsSpace(runes[i-1]) {
			i--
		}
	}
	return back, false
}

// tokensAfter reads up to n whitespace delimited tokens starting at the
// boundary. It returns the tokens and the index one past the last token.
func tokensAfter(runes []rune, boundary, n int) ([]string, int) {
	var fwd []string
	i := boundary
	for len(fwd) < n && i < len(runes) {
		for i < len(runes) && unicode.IsSpace(runes[i]) {
			i++
		}
		j := i
		for j < len(runes) && !unicode.IsSpace(runes[j]) {
			j++
		}
		if j > i {
			fwd = append(fwd, string(runes[i:j]))
		}
		i = j
	}
	return fwd, i
}

// tokensMatch reports whether the forward tokens replay the backward
// ones. All but the last must match exactly; the last backward token may
// survive as a substring of its forward counterpart, which handles the
// earlier copy having been truncated.
func tokensMatch(back, fwd []string) bool {
	for i := 0; i < len(back)-1; i++ {
		if back[i] != fwd[i] {
			return false
		}
	}
	last := len(back) - 1
	return back[last] == fwd[last] || strings.Contains(fwd[last], back[last])
}
