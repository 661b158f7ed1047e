package edhgrab

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseCardList reads the line-oriented card list format: a line ending
// in ")" with a "(" opens a named section, a leading "N " quantity
// prefix is stripped, "name - token" keeps the token as the inclusion
// label only when it contains "%", and "[token] name" is the bracket
// form. Blank lines are skipped. Lines before the first section header
// land in an unnamed section.
func ParseCardList(r io.Reader) (*CommanderStats, error) {
	stats := &CommanderStats{}
	cur := -1

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if name, ok := sectionHeader(line); ok {
			stats.Sections = append(stats.Sections, StatSection{Name: name})
			cur = len(stats.Sections) - 1
			continue
		}

		card := parseCardLine(line)
		if card.Name == "" {
			continue
		}
		if cur == -1 {
			stats.Sections = append(stats.Sections, StatSection{})
			cur = 0
		}
		stats.Sections[cur].Cards = append(stats.Sections[cur].Cards, card)
	}
	if err := scanner.Err(); err != nil {
		return nil, Errorf(EINVALID, "read card list: %v", err)
	}
	return stats, nil
}

// FormatCardList renders stats in the importable card list format.
// Sections become "Name (count)" headers separated by blank lines; a
// card with an inclusion label renders as "Name - label". The output of
// FormatCardList survives ParseCardList without loss.
func FormatCardList(s *CommanderStats) string {
	var b strings.Builder
	for i, section := range s.Sections {
		if i > 0 {
			b.WriteString("\n")
		}
		if section.Name != "" {
			fmt.Fprintf(&b, "%s (%d)\n", section.Name, len(section.Cards))
		}
		for _, card := range section.Cards {
			label := card.Label
			if label == "" && card.Inclusion > 0 {
				label = strconv.FormatFloat(card.Inclusion, 'f', -1, 64) + "%"
			}
			if label != "" {
				fmt.Fprintf(&b, "%s - %s\n", card.Name, label)
			} else {
				b.WriteString(card.Name + "\n")
			}
		}
	}
	return b.String()
}

func sectionHeader(line string) (string, bool) {
	if !strings.HasSuffix(line, ")") {
		return "", false
	}
	i := strings.Index(line, "(")
	if i < 0 {
		return "", false
	}
	return strings.TrimSpace(line[:i]), true
}

func parseCardLine(line string) CardStat {
	if strings.HasPrefix(line, "[") {
		if i := strings.Index(line, "]"); i > 0 {
			label := strings.TrimSpace(line[1:i])
			name := strings.TrimSpace(line[i+1:])
			if !strings.Contains(label, "%") {
				return CardStat{Name: name}
			}
			return CardStat{Name: name, Label: label, Inclusion: parsePercent(label)}
		}
	}

	line = stripQuantity(line)

	// Split on the last dash so hyphenated names stay intact.
	if i := strings.LastIndex(line, "-"); i >= 0 {
		label := strings.TrimSpace(line[i+1:])
		if strings.Contains(label, "%") {
			return CardStat{
				Name:      strings.TrimSpace(line[:i]),
				Label:     label,
				Inclusion: parsePercent(label),
			}
		}
	}
	return CardStat{Name: line}
}

// stripQuantity removes a leading "N " deck quantity prefix.
func stripQuantity(line string) string {
	i := 0
	for i < len(line) && line[i] >= '0' && line[i] <= '9' {
		i++
	}
	if i > 0 && i < len(line) && line[i] == ' ' {
		return strings.TrimSpace(line[i+1:])
	}
	return line
}

func parsePercent(label string) float64 {
	v := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(label), "%"))
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0
	}
	return f
}
