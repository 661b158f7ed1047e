package edhgrab

import (
	"fmt"
	"strings"
)

// ExportMarkdown renders a guide as a markdown document. Paragraph
// inline HTML is converted with conv when present, falling back to the
// plain text. Guides with three or more headings get a linked table of
// contents.
func ExportMarkdown(g *Guide, conv Converter) (string, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", g.Title)
	if byline := formatByline(g.Author, g.Date); byline != "" {
		fmt.Fprintf(&b, "*%s*\n\n", byline)
	}

	if sections := Outline(g); len(sections) >= 3 {
		for _, s := range sections {
			indent := strings.Repeat("  ", s.Level-1)
			fmt.Fprintf(&b, "%s- [%s](#%s)\n", indent, s.Title, s.Anchor)
		}
		b.WriteString("\n")
	}

	for _, block := range g.Blocks {
		switch v := block.(type) {
		case *Header:
			fmt.Fprintf(&b, "%s %s\n\n", strings.Repeat("#", v.Level), v.Text)
		case *Paragraph:
			text := v.Text
			if v.HTML != "" && conv != nil {
				md, err := conv.Convert(v.HTML)
				if err != nil {
					return "", fmt.Errorf("convert paragraph: %w", err)
				}
				text = strings.TrimSpace(md)
			}
			b.WriteString(text + "\n\n")
		case *CardList:
			for i, item := range v.Items {
				if v.Ordered {
					fmt.Fprintf(&b, "%d. %s\n", i+1, item)
				} else {
					fmt.Fprintf(&b, "- %s\n", item)
				}
			}
			b.WriteString("\n")
		case *Decklist:
			title := v.Title
			if title == "" {
				title = "Decklist"
			}
			fmt.Fprintf(&b, "#### %s\n\n", title)
			for _, section := range v.Sections {
				fmt.Fprintf(&b, "##### %s\n\n", section.Name)
				for _, card := range section.Cards {
					fmt.Fprintf(&b, "- %d %s\n", card.Quantity, card.Name)
				}
				b.WriteString("\n")
			}
		case *CardRef:
			fmt.Fprintf(&b, "**%s**\n\n", v.Name)
		}
	}

	if len(g.UpgradeCards) > 0 {
		b.WriteString("## Upgrade Cards\n\n")
		for _, name := range g.UpgradeCards {
			fmt.Fprintf(&b, "- %s\n", name)
		}
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n") + "\n", nil
}
