package edhgrab

import (
	"fmt"
	"strings"
)

// FormatGuide renders a guide as plain text for terminal display.
func FormatGuide(g *Guide) string {
	var b strings.Builder

	b.WriteString(g.Title + "\n")
	if byline := formatByline(g.Author, g.Date); byline != "" {
		b.WriteString(byline + "\n")
	}
	b.WriteString("\n")

	for _, block := range g.Blocks {
		switch v := block.(type) {
		case *Header:
			b.WriteString(strings.Repeat("#", v.Level) + " " + v.Text + "\n\n")
		case *Paragraph:
			b.WriteString(v.Text + "\n\n")
		case *CardList:
			for i, item := range v.Items {
				if v.Ordered {
					fmt.Fprintf(&b, "%d. %s\n", i+1, item)
				} else {
					b.WriteString("- " + item + "\n")
				}
			}
			b.WriteString("\n")
		case *Decklist:
			if v.Title != "" {
				b.WriteString(v.Title + "\n")
			}
			for _, section := range v.Sections {
				b.WriteString(section.Name + ":\n")
				for _, card := range section.Cards {
					fmt.Fprintf(&b, "  %d %s\n", card.Quantity, card.Name)
				}
			}
			b.WriteString("\n")
		case *CardRef:
			b.WriteString("[" + v.Name + "]\n\n")
		}
	}

	if len(g.UpgradeCards) > 0 {
		b.WriteString("Upgrade cards:\n")
		for _, name := range g.UpgradeCards {
			b.WriteString("- " + name + "\n")
		}
	}

	return b.String()
}

// FormatStats renders commander stats as plain text, one section per
// block with cards listed by descending inclusion.
func FormatStats(s *CommanderStats) string {
	var b strings.Builder

	b.WriteString(s.Commander + "\n")
	if s.DeckCountLabel != "" {
		fmt.Fprintf(&b, "%s decks\n", s.DeckCountLabel)
	}
	b.WriteString("\n")

	for _, section := range s.Sections {
		fmt.Fprintf(&b, "%s (%d)\n", section.Name, len(section.Cards))
		for _, card := range section.Cards {
			if card.Label != "" {
				fmt.Fprintf(&b, "  %s - %s\n", card.Name, card.Label)
			} else {
				b.WriteString("  " + card.Name + "\n")
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}

func formatByline(author, date string) string {
	switch {
	case author != "" && date != "":
		return author + ", " + date
	case author != "":
		return author
	default:
		return date
	}
}
