// Package fs provides file-based storage for guide exports and set
// symbol files.
package fs

import (
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/fwojciec/edhgrab"
)

// GuideFileName converts an article URL to an export file name.
// Example: https://edhrec.com/articles/korvold-upgrade-guide → korvold-upgrade-guide.md
func GuideFileName(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", edhgrab.Errorf(edhgrab.EINVALID, "invalid guide URL %q", rawURL)
	}

	slug := path.Base(strings.TrimSuffix(u.Path, "/"))
	if slug == "" || slug == "." || slug == "/" {
		return "", edhgrab.Errorf(edhgrab.EINVALID, "guide URL %q has no article slug", rawURL)
	}

	return slug + ".md", nil
}

// FormatGuide prepends YAML frontmatter to rendered guide content.
func FormatGuide(g *edhgrab.Guide, rendered string) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("source: ")
	b.WriteString(g.URL)
	b.WriteString("\ntitle: ")
	b.WriteString(g.Title)
	if g.Author != "" {
		b.WriteString("\nauthor: ")
		b.WriteString(g.Author)
	}
	if g.Date != "" {
		b.WriteString("\ndate: ")
		b.WriteString(g.Date)
	}
	b.WriteString("\n---\n\n")
	b.WriteString(rendered)
	return b.String()
}

// Writer writes rendered guide exports as markdown files to a directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WriteGuide writes a rendered guide to disk and returns the file path.
// The file name is derived from the guide's article slug. The write goes
// through a temp file so a crash never leaves a half-written export.
func (w *Writer) WriteGuide(g *edhgrab.Guide, rendered string) (string, error) {
	if err := g.Validate(); err != nil {
		return "", err
	}

	name, err := GuideFileName(g.URL)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(w.baseDir, 0755); err != nil {
		return "", err
	}

	fullPath := filepath.Join(w.baseDir, name)
	content := FormatGuide(g, rendered)

	tmp := fullPath + ".tmp"
	if err := os.WriteFile(tmp, []byte(content), 0644); err != nil {
		return "", err
	}
	if err := os.Rename(tmp, fullPath); err != nil {
		os.Remove(tmp)
		return "", err
	}

	return fullPath, nil
}
