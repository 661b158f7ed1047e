package edhgrab

// BlockKind identifies a content block variant.
type BlockKind string

// Content block kinds.
const (
	KindHeader    BlockKind = "header"
	KindParagraph BlockKind = "paragraph"
	KindCardList  BlockKind = "card_list"
	KindDecklist  BlockKind = "decklist"
	KindCardRef   BlockKind = "card_ref"
)

// Block is one typed unit of article content. The set of variants is
// closed: renderers switch on Kind and handle every case.
type Block interface {
	Kind() BlockKind

	// isBlock restricts implementations to this package.
	isBlock()
}

// Header is a section heading.
type Header struct {
	// Level is the heading level, 1 through 6.
	Level int    `json:"level"`
	Text  string `json:"text"`
}

// Paragraph is a run of body text.
type Paragraph struct {
	// Text is the cleaned plain text.
	Text string `json:"text"`

	// HTML is the sanitized inline markup, kept for markdown export.
	HTML string `json:"html,omitempty"`

	// CardNames lists cards mentioned via links inside the paragraph,
	// in document order, deduplicated.
	CardNames []string `json:"cardNames,omitempty"`
}

// CardList is a bulleted or numbered list of card names.
type CardList struct {
	Ordered bool     `json:"ordered"`
	Items   []string `json:"items"`
}

// Decklist is a structured deck embedded in an article.
type Decklist struct {
	Title    string        `json:"title"`
	Sections []DeckSection `json:"sections"`
}

// DeckSection groups deck entries under a named category (e.g. "Lands").
type DeckSection struct {
	Name  string      `json:"name"`
	Cards []DeckEntry `json:"cards"`
}

// DeckEntry is a single card with its count.
type DeckEntry struct {
	Quantity int    `json:"quantity"`
	Name     string `json:"name"`
}

// CardRef is an individually highlighted card, produced only by the
// legacy page markup.
type CardRef struct {
	Name string `json:"name"`
}

func (h *Header) Kind() BlockKind    { return KindHeader }
func (p *Paragraph) Kind() BlockKind { return KindParagraph }
func (c *CardList) Kind() BlockKind  { return KindCardList }
func (d *Decklist) Kind() BlockKind  { return KindDecklist }
func (r *CardRef) Kind() BlockKind   { return KindCardRef }

func (h *Header) isBlock()    {}
func (p *Paragraph) isBlock() {}
func (c *CardList) isBlock()  {}
func (d *Decklist) isBlock()  {}
func (r *CardRef) isBlock()   {}
