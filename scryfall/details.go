package scryfall

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/fwojciec/edhgrab"
)

// Ensure CardService implements edhgrab.CardService at compile time.
var _ edhgrab.CardService = (*CardService)(nil)

// CardService looks up card details on Scryfall. Set metadata is cached
// per service instance; a guide references far fewer sets than cards.
type CardService struct {
	client *Client

	mu   sync.Mutex
	sets map[string]*Set
}

// NewCardService creates a CardService on top of the API client.
func NewCardService(client *Client) *CardService {
	return &CardService{
		client: client,
		sets:   make(map[string]*Set),
	}
}

// FindCardByName retrieves enrichment details for a card by exact name.
// A missing set lookup degrades to partial set metadata rather than
// failing the card.
func (s *CardService) FindCardByName(ctx context.Context, name string) (*edhgrab.CardDetails, error) {
	if name == "" {
		return nil, edhgrab.Errorf(edhgrab.EINVALID, "card name required")
	}

	card, err := s.client.CardByName(ctx, name)
	if err != nil {
		if IsNotFound(err) {
			return nil, edhgrab.Errorf(edhgrab.ENOTFOUND, "card %q not found", name)
		}
		return nil, edhgrab.Errorf(edhgrab.EFETCH, "look up card %q: %v", name, err)
	}

	details := detailsFromCard(card)

	if set, err := s.setByCode(ctx, card.SetCode); err == nil {
		details.Set.Name = set.Name
		details.Set.SymbolURL = set.IconSVGURI
		details.Set.ReleaseYear = releaseYear(set.ReleasedAt)
	}

	return details, nil
}

// setByCode returns set metadata, caching successful lookups.
func (s *CardService) setByCode(ctx context.Context, code string) (*Set, error) {
	if code == "" {
		return nil, fmt.Errorf("empty set code")
	}

	s.mu.Lock()
	set, ok := s.sets[code]
	s.mu.Unlock()
	if ok {
		return set, nil
	}

	set, err := s.client.SetByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.sets[code] = set
	s.mu.Unlock()
	return set, nil
}

// detailsFromCard maps a wire card onto the domain record. Multi-faced
// cards fold their faces into single display strings.
func detailsFromCard(card *Card) *edhgrab.CardDetails {
	d := &edhgrab.CardDetails{
		Name:       card.Name,
		ManaCost:   card.ManaCost,
		TypeLine:   card.TypeLine,
		OracleText: card.OracleText,
		FlavorText: card.FlavorText,
		Power:      card.Power,
		Toughness:  card.Toughness,
		Loyalty:    card.Loyalty,
		Defense:    card.Defense,
		Price:      formatPrice(card.Prices),
		Set: edhgrab.SetInfo{
			Code:        card.SetCode,
			Name:        card.SetName,
			ReleaseYear: releaseYear(card.ReleasedAt),
		},
	}

	if len(card.CardFaces) > 0 {
		front := card.CardFaces[0]
		if d.ManaCost == "" {
			d.ManaCost = front.ManaCost
		}
		if d.OracleText == "" {
			d.OracleText = joinFaces(card.CardFaces, func(f CardFace) string { return f.OracleText })
		}
		if d.FlavorText == "" {
			d.FlavorText = front.FlavorText
		}
		if d.Power == "" {
			d.Power = front.Power
		}
		if d.Toughness == "" {
			d.Toughness = front.Toughness
		}
		if d.Loyalty == "" {
			d.Loyalty = front.Loyalty
		}
		if d.Defense == "" {
			d.Defense = front.Defense
		}
	}

	return d
}

// joinFaces joins a non-empty field across faces with the double-faced
// card separator.
func joinFaces(faces []CardFace, field func(CardFace) string) string {
	var out string
	for _, f := range faces {
		v := field(f)
		if v == "" {
			continue
		}
		if out != "" {
			out += " // "
		}
		out += v
	}
	return out
}

// formatPrice renders the dual-currency display string, e.g.
// "$4.99 / €4.20". Missing currencies are omitted; no price at all
// yields an empty string.
func formatPrice(p Prices) string {
	usd := derefOr(p.USD, derefOr(p.USDFoil, ""))
	eur := derefOr(p.EUR, derefOr(p.EURFoil, ""))

	switch {
	case usd != "" && eur != "":
		return fmt.Sprintf("$%s / €%s", usd, eur)
	case usd != "":
		return "$" + usd
	case eur != "":
		return "€" + eur
	default:
		return ""
	}
}

func derefOr(s *string, fallback string) string {
	if s != nil && *s != "" {
		return *s
	}
	return fallback
}

// releaseYear parses the year out of a Scryfall release date.
func releaseYear(released string) int {
	if released == "" {
		return 0
	}
	t, err := time.Parse("2006-01-02", released)
	if err != nil {
		return 0
	}
	return t.Year()
}
