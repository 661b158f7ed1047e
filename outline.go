package edhgrab

import (
	"strconv"
	"strings"
	"unicode"
)

// Section represents a heading in a guide outline.
type Section struct {
	Level  int    `json:"level"`
	Title  string `json:"title"`
	Anchor string `json:"anchor"`
}

// Outline returns the guide's headings in document order.
// It generates URL-safe anchors and handles duplicates with numeric
// suffixes, for use as a markdown table of contents.
func Outline(g *Guide) []Section {
	var sections []Section
	anchorCounts := make(map[string]int)

	for _, block := range g.Blocks {
		h, ok := block.(*Header)
		if !ok || h.Text == "" {
			continue
		}

		baseAnchor := generateAnchor(h.Text)
		anchor := baseAnchor
		if count, exists := anchorCounts[baseAnchor]; exists {
			anchor = baseAnchor + "-" + strconv.Itoa(count)
			anchorCounts[baseAnchor]++
		} else {
			anchorCounts[baseAnchor] = 1
		}

		sections = append(sections, Section{
			Level:  h.Level,
			Title:  h.Text,
			Anchor: anchor,
		})
	}

	return sections
}

// generateAnchor creates a URL-safe anchor from a title.
// Converts to lowercase, replaces spaces with hyphens, removes special chars.
func generateAnchor(title string) string {
	var sb strings.Builder
	prevHyphen := false

	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
			prevHyphen = false
		} else if unicode.IsSpace(r) || r == '-' {
			if !prevHyphen && sb.Len() > 0 {
				sb.WriteRune('-')
				prevHyphen = true
			}
		}
	}

	result := sb.String()
	// Trim trailing hyphen
	return strings.TrimSuffix(result, "-")
}
