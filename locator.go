package edhgrab

// LocatedContent holds the main content region located within a page.
type LocatedContent struct {
	// Title is the page title extracted from metadata.
	Title string

	// ContentHTML is the main content as clean HTML.
	// Boilerplate (nav, footer, sidebar, ads) has been removed.
	ContentHTML string
}

// ContentLocator finds the main content of an HTML page, removing
// boilerplate. It backs the permissive extraction path when the
// site-specific content selectors fail to match.
type ContentLocator interface {
	// Locate processes raw HTML and returns the main content region.
	Locate(html string) (*LocatedContent, error)
}
