package goquery

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/edhgrab"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// StatsParser extracts card inclusion statistics from commander pages.
type StatsParser struct {
	sections  string
	headers   string
	cards     string
	cardName  string
	cardLabel string
}

var _ edhgrab.StatsParser = (*StatsParser)(nil)

// NewStatsParser creates a stats parser for commander page markup.
func NewStatsParser() *StatsParser {
	return &StatsParser{
		sections:  ".cardlist, div[class*='CardList_container']",
		headers:   "h2, h3, .subheader, [class*='CardList_header']",
		cards:     ".card, div[class*='Card_container']",
		cardName:  ".card__name, [class*='Card_name']",
		cardLabel: ".card__label, [class*='Card_label']",
	}
}

// ParseStats implements edhgrab.StatsParser. Sections are grouped by
// their enclosing container, deduplicated by card name, and sorted by
// descending inclusion percentage.
func (p *StatsParser) ParseStats(html string, commander string) (*edhgrab.CommanderStats, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, edhgrab.Errorf(edhgrab.EPARSE, "parse HTML: %v", err)
	}

	containers := doc.Find(p.sections)
	if containers.Length() == 0 {
		return nil, edhgrab.Errorf(edhgrab.EPARSE, "no card stat containers matched")
	}

	stats := &edhgrab.CommanderStats{Commander: commander}
	stats.DeckCount, stats.DeckCountLabel = deckCount(html)

	containers.Each(func(_ int, container *goquery.Selection) {
		section := edhgrab.StatSection{Name: p.sectionName(container)}
		seen := make(map[string]struct{})
		container.Find(p.cards).Each(func(_ int, tile *goquery.Selection) {
			name := edhgrab.CleanText(tile.Find(p.cardName).First().Text())
			if name == "" {
				return
			}
			inclusion, label, ok := parseInclusion(tile.Find(p.cardLabel).First().Text())
			if !ok {
				return
			}
			if _, dup := seen[name]; dup {
				return
			}
			seen[name] = struct{}{}
			section.Cards = append(section.Cards, edhgrab.CardStat{
				Name:      name,
				Inclusion: inclusion,
				Label:     label,
			})
		})
		if len(section.Cards) == 0 {
			return
		}
		sort.SliceStable(section.Cards, func(i, j int) bool {
			return section.Cards[i].Inclusion > section.Cards[j].Inclusion
		})
		stats.Sections = append(stats.Sections, section)
	})

	return stats, nil
}

// sectionName derives a section title from its header element, falling
// back to the container id converted from camel case to spaced title
// case ("highSynergyCards" -> "High Synergy Cards").
func (p *StatsParser) sectionName(container *goquery.Selection) string {
	if name := edhgrab.CleanText(container.Find(p.headers).First().Text()); name != "" {
		return name
	}
	if id, ok := container.Attr("id"); ok {
		return camelToTitle(id)
	}
	return ""
}

var inclusionRe = regexp.MustCompile(`(\d+(?:\.\d+)?)%`)

// parseInclusion extracts a percentage from a card stat label. Labels
// without a percent sign or with a currency symbol carry prices, not
// inclusion rates, and are rejected.
func parseInclusion(label string) (float64, string, bool) {
	if strings.ContainsAny(label, "$€£¥") {
		return 0, "", false
	}
	m := inclusionRe.FindStringSubmatch(label)
	if m == nil {
		return 0, "", false
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, "", false
	}
	return v, m[1] + "%", true
}

var deckCountRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)"num_?decks"\s*:\s*(\d+)`),
	regexp.MustCompile(`(?i)([\d,]+)\s+decks?\b`),
}

var deckCountPrinter = message.NewPrinter(language.English)

// deckCount scans the raw page for the total number of decks, trying
// the embedded JSON blob before visible text. The label is re-formatted
// with locale-aware digit grouping regardless of how the page spelled
// the number.
func deckCount(html string) (int, string) {
	for _, re := range deckCountRes {
		m := re.FindStringSubmatch(html)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(strings.ReplaceAll(m[1], ",", ""))
		if err != nil || n <= 0 {
			continue
		}
		return n, deckCountPrinter.Sprintf("%d", n)
	}
	return 0, ""
}

func camelToTitle(id string) string {
	var words []string
	var cur []rune
	for _, r := range id {
		if unicode.IsUpper(r) && len(cur) > 0 {
			words = append(words, string(cur))
			cur = cur[:0]
		}
		cur = append(cur, unicode.ToLower(r))
	}
	if len(cur) > 0 {
		words = append(words, string(cur))
	}
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
