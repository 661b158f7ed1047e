package edhgrab

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// The input should be sanitized HTML (e.g., a paragraph's inline
	// markup or a located content region).
	Convert(html string) (string, error)
}
