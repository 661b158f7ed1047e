package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/edhgrab"
	"golang.org/x/net/html"
)

// parseGuide locates the article container for the given profile and
// classifies its contents into typed blocks.
func parseGuide(p *profile, html string, url string) (*edhgrab.Guide, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, edhgrab.Errorf(edhgrab.EPARSE, "parse HTML: %v", err)
	}

	root := findMainContent(doc, p)
	if root == nil {
		return nil, edhgrab.Errorf(edhgrab.EPARSE, "no %s content container matched", p.name)
	}

	g := &edhgrab.Guide{
		URL:    url,
		Title:  edhgrab.CleanText(firstText(doc, p.title)),
		Author: edhgrab.CleanText(firstText(doc, p.author)),
		Date:   collapseText(firstText(doc, p.date)),
	}

	c := newClassifier(p)
	c.run(root)
	g.Blocks = c.blocks
	g.UpgradeCards = c.upgrades
	return g, nil
}

// findMainContent returns the first matching content container, the
// document body when the profile permits falling back, or nil.
func findMainContent(doc *goquery.Document, p *profile) *goquery.Selection {
	for _, sel := range p.mainContent {
		if s := doc.Find(sel).First(); s.Length() > 0 {
			return s
		}
	}
	if p.bodyFallback {
		if s := doc.Find("body").First(); s.Length() > 0 {
			return s
		}
	}
	return nil
}

// firstText returns the text of the first selector that matches. Meta
// tags contribute their content attribute, time tags prefer datetime.
func firstText(doc *goquery.Document, selectors []string) string {
	for _, sel := range selectors {
		s := doc.Find(sel).First()
		if s.Length() == 0 {
			continue
		}
		if goquery.NodeName(s) == "meta" {
			if v, ok := s.Attr("content"); ok && strings.TrimSpace(v) != "" {
				return v
			}
			continue
		}
		if v, ok := s.Attr("datetime"); ok && strings.TrimSpace(v) != "" {
			return v
		}
		if t := strings.TrimSpace(s.Text()); t != "" {
			return t
		}
	}
	return ""
}

// classifier walks a content subtree and accumulates typed blocks in
// document order. A single pass can stop early when it reaches a
// related-content sentinel.
type classifier struct {
	p *profile

	blocks   []edhgrab.Block
	upgrades []string
	seen     map[string]struct{}
	clipped  bool
}

func newClassifier(p *profile) *classifier {
	return &classifier{p: p, seen: make(map[string]struct{})}
}

// run classifies the direct children of root in document order.
func (c *classifier) run(root *goquery.Selection) {
	root.Children().EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		c.classify(sel)
		return !c.clipped
	})
}

// classify applies the block rules to a single element, most specific
// first, then recurses into generic containers.
func (c *classifier) classify(sel *goquery.Selection) {
	text := collapseText(sel.Text())
	lower := strings.ToLower(text)

	for _, sentinel := range c.p.sentinels {
		if strings.Contains(lower, sentinel) {
			c.clipped = true
			return
		}
	}

	if c.skippable(sel, text) {
		return
	}

	tag := goquery.NodeName(sel)

	if level := headerLevel(tag); level > 0 {
		if level <= c.p.maxHeaderLevel {
			if t := edhgrab.CleanText(text); t != "" {
				c.blocks = append(c.blocks, &edhgrab.Header{Level: level, Text: t})
			}
		}
		return
	}

	if matchesAny(sel, c.p.cardContainers) {
		c.collectUpgrades(sel)
		return
	}

	if sel.Is(c.p.decklist) {
		if d := parseDecklist(sel); d != nil {
			c.blocks = append(c.blocks, d)
		}
		return
	}

	if tag == "p" {
		if len([]rune(text)) >= c.p.minParagraphLen {
			c.emitParagraph(sel, text)
		}
		return
	}

	if tag == "ul" || tag == "ol" {
		c.emitCardList(sel, tag == "ol")
		return
	}

	if c.p.cardRefs && isCardCandidate(sel, c.p) {
		if name, ok := cardRefName(sel, c.p); ok {
			c.blocks = append(c.blocks, &edhgrab.CardRef{Name: name})
		}
		return
	}

	if isGenericContainer(tag) {
		if own := collapseText(ownText(sel)); len([]rune(own)) >= c.p.minParagraphLen {
			c.emitParagraph(sel, own)
		}
		sel.Children().EachWithBreak(func(_ int, child *goquery.Selection) bool {
			c.classify(child)
			return !c.clipped
		})
	}
}

// skippable reports whether an element is page furniture: invisible,
// non-content tags, deny-listed classes, or text below the minimum
// length. Card candidates are exempt from the length check since their
// name may live in an attribute rather than text.
func (c *classifier) skippable(sel *goquery.Selection, text string) bool {
	if isInvisible(sel) {
		return true
	}
	tag := goquery.NodeName(sel)
	for _, skip := range c.p.skipSelectors {
		if tag == skip {
			return true
		}
	}
	if hasAnyClass(sel, c.p.skipClasses) {
		return true
	}
	if len([]rune(text)) < c.p.minTextLen {
		if c.p.cardRefs && isCardCandidate(sel, c.p) {
			return false
		}
		return true
	}
	return false
}

func (c *classifier) emitParagraph(sel *goquery.Selection, text string) {
	html, err := sel.Html()
	if err != nil {
		html = ""
	}
	c.blocks = append(c.blocks, &edhgrab.Paragraph{
		Text:      text,
		HTML:      strings.TrimSpace(html),
		CardNames: collectMentions(sel),
	})
}

// emitCardList turns a list element into a card list block, dropping
// items whose cleaned text is empty.
func (c *classifier) emitCardList(sel *goquery.Selection, ordered bool) {
	var items []string
	sel.ChildrenFiltered("li").Each(func(_ int, li *goquery.Selection) {
		if t := edhgrab.CleanText(li.Text()); t != "" {
			items = append(items, t)
		}
	})
	if len(items) > 0 {
		c.blocks = append(c.blocks, &edhgrab.CardList{Ordered: ordered, Items: items})
	}
}

// collectUpgrades pulls card names out of a card grid container and
// records each plausible name once.
func (c *classifier) collectUpgrades(sel *goquery.Selection) {
	add := func(raw string) {
		name := edhgrab.CleanText(raw)
		if !edhgrab.IsPlausibleCardName(name) {
			return
		}
		if _, ok := c.seen[name]; ok {
			return
		}
		c.seen[name] = struct{}{}
		c.upgrades = append(c.upgrades, name)
	}
	sel.Find(c.p.cardNameSelector).Each(func(_ int, tile *goquery.Selection) {
		if c.p.cardNameAttr != "" {
			if v, ok := tile.Attr(c.p.cardNameAttr); ok && strings.TrimSpace(v) != "" {
				add(v)
				return
			}
		}
		add(tile.Text())
	})
	if len(c.upgrades) > 0 {
		return
	}
	sel.Find("img[alt]").Each(func(_ int, img *goquery.Selection) {
		if alt, ok := img.Attr("alt"); ok {
			add(alt)
		}
	})
}

// collectMentions gathers card names from inline links to card pages,
// in document order without duplicates.
func collectMentions(sel *goquery.Selection) []string {
	var names []string
	seen := make(map[string]struct{})
	sel.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		if !edhgrab.IsCardURL(href) {
			return
		}
		name := edhgrab.CleanText(a.Text())
		if name == "" {
			name = edhgrab.CardNameFromURL(href)
		}
		if name == "" {
			return
		}
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		names = append(names, name)
	})
	return names
}

// isCardCandidate reports whether an element is individually marked up
// as a card: a card ref selector match, a card name attribute, or an
// image whose alt text is a plausible card name.
func isCardCandidate(sel *goquery.Selection, p *profile) bool {
	for _, s := range p.cardRefSelectors {
		if sel.Is(s) {
			return true
		}
	}
	if p.cardRefAttr != "" {
		if _, ok := sel.Attr(p.cardRefAttr); ok {
			return true
		}
	}
	if goquery.NodeName(sel) == "img" {
		if alt, ok := sel.Attr("alt"); ok {
			return edhgrab.IsPlausibleCardName(edhgrab.CleanText(alt))
		}
	}
	return false
}

// cardRefName resolves a card element's name, preferring the name
// attribute, then a contained image's alt text, then the element text.
func cardRefName(sel *goquery.Selection, p *profile) (string, bool) {
	if p.cardRefAttr != "" {
		if v, ok := sel.Attr(p.cardRefAttr); ok {
			if name := edhgrab.CleanText(v); edhgrab.IsPlausibleCardName(name) {
				return name, true
			}
		}
	}
	img := sel
	if goquery.NodeName(sel) != "img" {
		img = sel.Find("img[alt]").First()
	}
	if img.Length() > 0 {
		if alt, ok := img.Attr("alt"); ok {
			if name := edhgrab.CleanText(alt); edhgrab.IsPlausibleCardName(name) {
				return name, true
			}
		}
	}
	if name := edhgrab.CleanText(sel.Text()); edhgrab.IsPlausibleCardName(name) {
		return name, true
	}
	return "", false
}

func headerLevel(tag string) int {
	if len(tag) == 2 && tag[0] == 'h' && tag[1] >= '1' && tag[1] <= '6' {
		return int(tag[1] - '0')
	}
	return 0
}

func isGenericContainer(tag string) bool {
	switch tag {
	case "div", "section", "article", "main", "span", "figure", "blockquote":
		return true
	}
	return false
}

func matchesAny(sel *goquery.Selection, selectors []string) bool {
	for _, s := range selectors {
		if sel.Is(s) {
			return true
		}
	}
	return false
}

func hasAnyClass(sel *goquery.Selection, classes []string) bool {
	attr, ok := sel.Attr("class")
	if !ok {
		return false
	}
	for _, token := range strings.Fields(attr) {
		for _, class := range classes {
			if token == class {
				return true
			}
		}
	}
	return false
}

func isInvisible(sel *goquery.Selection) bool {
	if _, ok := sel.Attr("hidden"); ok {
		return true
	}
	if v, _ := sel.Attr("aria-hidden"); v == "true" {
		return true
	}
	style, ok := sel.Attr("style")
	if !ok {
		return false
	}
	style = strings.ToLower(strings.ReplaceAll(style, " ", ""))
	return strings.Contains(style, "display:none") || strings.Contains(style, "visibility:hidden")
}

// ownText concatenates an element's direct text nodes, excluding the
// text of child elements.
func ownText(sel *goquery.Selection) string {
	var b strings.Builder
	for _, node := range sel.Nodes {
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			if child.Type == html.TextNode {
				b.WriteString(child.Data)
			}
		}
	}
	return b.String()
}

func collapseText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
