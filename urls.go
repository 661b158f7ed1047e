package edhgrab

import (
	"net/url"
	"strings"
	"unicode"
)

// IsCommanderURL reports whether the URL points at a commander detail page.
func IsCommanderURL(rawURL string) bool {
	return CommanderSlug(rawURL) != ""
}

// CommanderSlug returns the slug segment of a commander detail URL, or
// "" when the URL has a different shape.
func CommanderSlug(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return slugAfter(u.Path, "commanders")
}

// IsGuideURL reports whether the URL points at an upgrade-guide article.
// Matching is case-insensitive.
func IsGuideURL(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	path := strings.ToLower(u.Path)
	if !strings.Contains(path, "/articles/") {
		return false
	}
	return strings.Contains(path, "guide") || strings.Contains(path, "upgrade")
}

// IsCardURL reports whether the URL points at a card detail page.
func IsCardURL(rawURL string) bool {
	return CardSlugFromURL(rawURL) != ""
}

// CardSlugFromURL returns the slug segment of a card detail URL, or "".
func CardSlugFromURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return slugAfter(u.Path, "cards")
}

// CardNameFromURL converts a card detail URL to a display card name.
// Returns "" when the URL is not a card link.
func CardNameFromURL(rawURL string) string {
	slug := CardSlugFromURL(rawURL)
	if slug == "" {
		return ""
	}
	return NameFromSlug(slug)
}

// NameFromSlug converts a URL slug to a display name: segments are
// capitalized and joined with spaces, with the conjunction "and" kept
// lowercase ("hinata-dawn-crowned" -> "Hinata Dawn Crowned").
func NameFromSlug(slug string) string {
	parts := strings.Split(slug, "-")
	for i, part := range parts {
		if part == "" {
			continue
		}
		r := []rune(part)
		r[0] = unicode.ToUpper(r[0])
		parts[i] = string(r)
	}
	name := strings.Join(parts, " ")
	return strings.ReplaceAll(name, " And ", " and ")
}

func slugAfter(path, segment string) string {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	for i, part := range parts {
		if part == segment && i+1 < len(parts) {
			return parts[i+1]
		}
	}
	return ""
}
